package english

import (
	"github.com/heartmarshall/hanzifier/internal/domain"
	"github.com/heartmarshall/hanzifier/internal/morph"
)

// Oracle is the English surface-form oracle.
type Oracle struct {
	lemm *Lemmatizer
}

var _ morph.Oracle = (*Oracle)(nil)

// New builds the English oracle. wordnetDir points at the WordNet data
// directory; empty means degraded mode (identity lemmatization).
func New(wordnetDir string) (*Oracle, error) {
	lemm, err := LoadLemmatizer(wordnetDir)
	if err != nil {
		return nil, err
	}
	return &Oracle{lemm: lemm}, nil
}

// ResourceAvailable reports whether the WordNet lexicon loaded.
func (o *Oracle) ResourceAvailable() bool { return o.lemm.ResourceAvailable() }

// LemmasOf returns the word itself plus its lemma under each of the four
// open word classes. In degraded mode lemmatization is a no-op, so the
// result collapses to the word alone.
func (o *Oracle) LemmasOf(word string) []string {
	lemmas := make([]string, 0, 1+len(allPartsOfSpeech))
	lemmas = append(lemmas, word)
	for _, pos := range allPartsOfSpeech {
		lemmas = append(lemmas, o.lemm.lemmatize(word, pos))
	}
	return domain.DeduplicateWords(lemmas)
}

// InflectionsOf returns the full surface-form set of lemma: the lemma plus
// nominal, verbal and adjectival inflections. With a loaded lexicon each
// class is generated only when the lexicon lists the lemma under it; in
// degraded mode nominal and verbal forms are generated unconditionally and
// adjectival grading is skipped to limit spurious forms.
func (o *Oracle) InflectionsOf(lemma string) []string {
	forms := []string{lemma}

	if o.lemm.knownAs(lemma, posNoun) {
		forms = append(forms, nounForms(lemma)...)
	}
	if o.lemm.knownAs(lemma, posVerb) {
		forms = append(forms, verbForms(lemma)...)
	}
	if o.lemm.ResourceAvailable() && o.lemm.knownAs(lemma, posAdjective) {
		forms = append(forms, adjectiveForms(lemma)...)
	}

	return domain.DeduplicateWords(forms)
}
