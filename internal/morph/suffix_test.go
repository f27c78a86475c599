package morph

import (
	"reflect"
	"testing"
)

func TestEncodeSuffixVariants(t *testing.T) {
	tests := []struct {
		name          string
		lemma         string
		forms         []string
		dropNonPrefix bool
		want          []string
	}{
		{
			name:  "form equal to lemma",
			lemma: "learn",
			forms: []string{"learn"},
			want:  []string{"learn"},
		},
		{
			name:  "prefix forms become lemma#suffix",
			lemma: "learn",
			forms: []string{"learn", "learned", "learning", "learns"},
			want:  []string{"learn", "learn#ed", "learn#ing", "learn#s"},
		},
		{
			name:  "non-prefix form kept when not dropping",
			lemma: "go",
			forms: []string{"went", "goes"},
			want:  []string{"go#es", "went"},
		},
		{
			name:          "non-prefix form dropped",
			lemma:         "go",
			forms:         []string{"went", "goes"},
			dropNonPrefix: true,
			want:          []string{"go#es"},
		},
		{
			name:  "duplicates collapse",
			lemma: "run",
			forms: []string{"run", "runs", "runs", "run"},
			want:  []string{"run", "run#s"},
		},
		{
			name:  "output sorted regardless of input order",
			lemma: "ask",
			forms: []string{"asks", "asked", "ask", "asking"},
			want:  []string{"ask", "ask#ed", "ask#ing", "ask#s"},
		},
		{
			name:  "no forms yields empty set",
			lemma: "word",
			forms: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeSuffixVariants(tt.lemma, tt.forms, tt.dropNonPrefix)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("EncodeSuffixVariants(%q, %v, %v) = %v, want %v",
					tt.lemma, tt.forms, tt.dropNonPrefix, got, tt.want)
			}
		})
	}
}

func TestDecodeToken(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"learn", "learn"},
		{"learn#ed", "learned"},
		{"книга#ми", "книгами"},
		{"study#ing", "studying"},
	}

	for _, tt := range tests {
		if got := DecodeToken(tt.token); got != tt.want {
			t.Errorf("DecodeToken(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

// Round-trip property: any form that literally starts with its lemma must
// survive encode→decode unchanged.
func TestSuffixRoundTrip(t *testing.T) {
	cases := []struct {
		lemma string
		form  string
	}{
		{"learn", "learned"},
		{"learn", "learn"},
		{"study", "studying"},
		{"книга", "книгами"},
		{"стол", "столами"},
	}

	for _, tc := range cases {
		encoded := EncodeSuffixVariants(tc.lemma, []string{tc.form}, true)
		if len(encoded) != 1 {
			t.Fatalf("EncodeSuffixVariants(%q, [%q]) = %v, want single token", tc.lemma, tc.form, encoded)
		}
		if got := DecodeToken(encoded[0]); got != tc.form {
			t.Errorf("round trip %q/%q: decoded %q", tc.lemma, tc.form, got)
		}
	}
}
