package russian

import (
	"sort"
	"unicode/utf8"

	"github.com/heartmarshall/hanzifier/internal/morph"
)

// endingClass describes one productive inflection class for the rule-based
// fallback: the ending the lemma carries and the full ending set of the
// paradigm. Classes are tried in order; within a class the longest ending
// wins.
type endingClass struct {
	lemmaEnding string
	endings     []string
}

var endingClasses = []endingClass{
	// Hard adjectives (новый).
	{"ый", []string{"ый", "ого", "ому", "ым", "ом", "ая", "ой", "ую", "ое", "ые", "ых", "ыми"}},
	// Soft adjectives (синий).
	{"ий", []string{"ий", "его", "ему", "им", "ем", "яя", "юю", "ее", "ие", "их", "ими"}},
	// First-conjugation verbs (читать).
	{"ать", []string{"ать", "аю", "аешь", "ает", "аем", "аете", "ают", "ал", "ала", "ало", "али"}},
	// Second-conjugation verbs (учить).
	{"ить", []string{"ить", "у", "ю", "ишь", "ит", "им", "ите", "ат", "ят", "ил", "ила", "ило", "или"}},
	// е-stem verbs (смотреть).
	{"еть", []string{"еть", "ю", "ишь", "ит", "им", "ите", "ят", "ел", "ела", "ело", "ели"}},
	// Feminine nouns in -а (книга).
	{"а", []string{"а", "ы", "и", "е", "у", "ой", "ам", "ами", "ах"}},
	// Feminine nouns in -я (неделя).
	{"я", []string{"я", "и", "е", "ю", "ей", "ям", "ями", "ях"}},
	// Neuter nouns in -о (слово).
	{"о", []string{"о", "а", "у", "ом", "е", "ам", "ами", "ах"}},
	// Soft-sign nouns (тетрадь).
	{"ь", []string{"ь", "я", "ю", "ем", "и", "ей", "ям", "ями", "ях"}},
	// Masculine consonant-stem nouns (стол). Empty ending matches any word,
	// so this class must stay last.
	{"", []string{"", "а", "у", "ом", "е", "ы", "ов", "ам", "ами", "ах"}},
}

// Analyzer is the Russian surface-form oracle.
type Analyzer struct {
	dict *Dictionary
}

var _ morph.Oracle = (*Analyzer)(nil)

// New builds the Russian oracle. dictPath points at a compiled paradigm
// dictionary; empty means rule-based fallback only. A configured path that
// fails to load is an error.
func New(dictPath string) (*Analyzer, error) {
	if dictPath == "" {
		return &Analyzer{}, nil
	}
	dict, err := LoadDictionary(dictPath)
	if err != nil {
		return nil, err
	}
	return &Analyzer{dict: dict}, nil
}

// ResourceAvailable reports whether the compiled dictionary loaded.
func (a *Analyzer) ResourceAvailable() bool { return a.dict != nil }

// LemmasOf returns the single lemma of the best-scoring parse of word.
func (a *Analyzer) LemmasOf(word string) []string {
	lemma, _ := a.parse(word)
	return []string{lemma}
}

// InflectionsOf returns the full lexeme of lemma.
func (a *Analyzer) InflectionsOf(lemma string) []string {
	_, forms := a.parse(lemma)
	return forms
}

// parse resolves word to its lemma and the form set of the chosen
// paradigm. Dictionary parses win; otherwise the ending tables apply.
// Unknown words parse as their own single-form lexeme.
func (a *Analyzer) parse(word string) (string, []string) {
	if a.dict != nil {
		if paradigm, ok := a.dict.bestParadigm(word); ok {
			forms := make([]string, len(paradigm))
			copy(forms, paradigm)
			return paradigm[0], forms
		}
	}
	return parseByEndings(word)
}

func parseByEndings(word string) (string, []string) {
	for _, class := range endingClasses {
		stem, ok := matchClass(word, class)
		if !ok {
			continue
		}
		lemma := stem + class.lemmaEnding
		seen := make(map[string]struct{}, len(class.endings))
		forms := make([]string, 0, len(class.endings))
		for _, ending := range class.endings {
			form := stem + ending
			if _, dup := seen[form]; dup {
				continue
			}
			seen[form] = struct{}{}
			forms = append(forms, form)
		}
		sort.Strings(forms)
		return lemma, forms
	}
	return word, []string{word}
}

// matchClass strips the longest class ending off word and returns the stem.
// Stems shorter than two letters are rejected to avoid degenerate parses.
func matchClass(word string, class endingClass) (string, bool) {
	best := -1
	for i, ending := range class.endings {
		if ending == "" || len(ending) > len(word) {
			continue
		}
		if word[len(word)-len(ending):] != ending {
			continue
		}
		if best == -1 || len(ending) > len(class.endings[best]) {
			best = i
		}
	}

	var stem string
	switch {
	case best >= 0:
		stem = word[:len(word)-len(class.endings[best])]
	case class.lemmaEnding == "":
		stem = word
	default:
		return "", false
	}

	if utf8.RuneCountInString(stem) < 2 {
		return "", false
	}
	return stem, true
}
