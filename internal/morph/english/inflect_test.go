package english

import (
	"reflect"
	"testing"
)

func TestVerbForms(t *testing.T) {
	tests := []struct {
		lemma string
		want  []string
	}{
		{"learn", []string{"learns", "learned", "learning"}},
		{"study", []string{"studies", "studied", "studying"}},
		{"stop", []string{"stops", "stopped", "stopping"}},
		{"move", []string{"moves", "moved", "moving"}},
		{"visit", []string{"visits", "visited", "visiting"}},
		{"tie", []string{"ties", "tied", "tying"}},
		{"watch", []string{"watches", "watched", "watching"}},
		{"go", []string{"goes", "went", "gone", "going"}},
	}

	for _, tt := range tests {
		t.Run(tt.lemma, func(t *testing.T) {
			if got := verbForms(tt.lemma); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("verbForms(%q) = %v, want %v", tt.lemma, got, tt.want)
			}
		})
	}
}

func TestNounForms(t *testing.T) {
	tests := []struct {
		lemma string
		want  []string
	}{
		{"book", []string{"books"}},
		{"box", []string{"boxes"}},
		{"study", []string{"studies"}},
		{"child", []string{"children"}},
		{"sheep", []string{"sheep"}},
	}

	for _, tt := range tests {
		if got := nounForms(tt.lemma); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("nounForms(%q) = %v, want %v", tt.lemma, got, tt.want)
		}
	}
}

func TestAdjectiveForms(t *testing.T) {
	tests := []struct {
		lemma string
		want  []string
	}{
		{"tall", []string{"taller", "tallest"}},
		{"big", []string{"bigger", "biggest"}},
		{"happy", []string{"happier", "happiest"}},
		{"nice", []string{"nicer", "nicest"}},
		{"good", []string{"better", "best"}},
	}

	for _, tt := range tests {
		if got := adjectiveForms(tt.lemma); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("adjectiveForms(%q) = %v, want %v", tt.lemma, got, tt.want)
		}
	}
}

func TestDoublesFinalConsonant(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"stop", true},
		{"run", true},
		{"learn", false}, // consonant cluster before final
		{"visit", false}, // two syllables
		{"play", false},  // final y never doubles
		{"mix", false},   // final x never doubles
		{"see", false},   // ends in vowel
	}

	for _, tt := range tests {
		if got := doublesFinalConsonant(tt.word); got != tt.want {
			t.Errorf("doublesFinalConsonant(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}
