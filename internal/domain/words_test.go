package domain

import (
	"reflect"
	"testing"
)

func TestNormalizeWord(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Study", "study"},
		{"  learn\t", "learn"},
		{"ВОДА", "вода"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeWord(tt.in); got != tt.want {
			t.Errorf("NormalizeWord(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDeduplicateWords(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"first occurrence wins", []string{"a", "b", "a", "c", "b"}, []string{"a", "b", "c"}},
		{"no duplicates", []string{"x", "y"}, []string{"x", "y"}},
		{"empty", []string{}, []string{}},
		{"nil passes through", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeduplicateWords(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DeduplicateWords(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
