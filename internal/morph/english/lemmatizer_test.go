package english

import (
	"path/filepath"
	"runtime"
	"testing"
)

func wordnetFixture(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(file), "testdata", "wordnet")
}

func TestLoadLemmatizer_Degraded(t *testing.T) {
	l, err := LoadLemmatizer("")
	if err != nil {
		t.Fatalf("LoadLemmatizer(\"\") returned error: %v", err)
	}
	if l.ResourceAvailable() {
		t.Error("empty dir should produce a degraded lemmatizer")
	}

	// Degraded lemmatization is the identity.
	for _, pos := range allPartsOfSpeech {
		if got := l.lemmatize("running", pos); got != "running" {
			t.Errorf("degraded lemmatize(running, %s) = %q, want identity", pos, got)
		}
	}
}

func TestLoadLemmatizer_MissingDir(t *testing.T) {
	if _, err := LoadLemmatizer("/nonexistent/wordnet"); err == nil {
		t.Error("configured but missing resource dir should be an error")
	}
}

func TestLemmatize(t *testing.T) {
	l, err := LoadLemmatizer(wordnetFixture(t))
	if err != nil {
		t.Fatalf("LoadLemmatizer returned error: %v", err)
	}
	if !l.ResourceAvailable() {
		t.Fatal("fixture lemmatizer should report resource available")
	}

	tests := []struct {
		name string
		word string
		pos  partOfSpeech
		want string
	}{
		{"exception list wins", "children", posNoun, "child"},
		{"irregular verb via exception", "went", posVerb, "go"},
		{"word already a lemma", "study", posVerb, "study"},
		{"ies detachment validated by lexicon", "studies", posVerb, "study"},
		{"noun ies detachment", "studies", posNoun, "study"},
		{"ed detachment", "learned", posVerb, "learn"},
		{"ing detachment", "learning", posVerb, "learn"},
		{"doubled-stem comparative via exception", "bigger", posAdjective, "big"},
		{"adjective exception", "best", posAdjective, "good"},
		{"unknown word falls through", "zzzz", posVerb, "zzzz"},
		{"rule candidate not in lexicon rejected", "carries", posVerb, "carries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.lemmatize(tt.word, tt.pos); got != tt.want {
				t.Errorf("lemmatize(%q, %s) = %q, want %q", tt.word, tt.pos, got, tt.want)
			}
		})
	}
}
