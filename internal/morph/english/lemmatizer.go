// Package english implements the English surface-form oracle: WordNet-style
// lemmatization across the four open word classes and rule-based inflection
// generation.
//
// The lemmatizer needs a WordNet data directory (index.* lexicon files plus
// *.exc morphological exception files, as distributed by Princeton WordNet).
// Without one it runs in degraded mode where lemmatization is the identity,
// which yields smaller but still valid expansions.
package english

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type partOfSpeech string

const (
	posNoun      partOfSpeech = "noun"
	posVerb      partOfSpeech = "verb"
	posAdjective partOfSpeech = "adj"
	posAdverb    partOfSpeech = "adv"
)

var allPartsOfSpeech = []partOfSpeech{posNoun, posVerb, posAdjective, posAdverb}

// detachmentRule is one suffix-substitution candidate from the WordNet
// morphy tables. Rules are tried in order; longer suffixes come first.
type detachmentRule struct {
	suffix      string
	replacement string
}

var detachments = map[partOfSpeech][]detachmentRule{
	posNoun: {
		{"ches", "ch"}, {"shes", "sh"}, {"ses", "s"}, {"xes", "x"},
		{"zes", "z"}, {"ies", "y"}, {"men", "man"}, {"s", ""},
	},
	posVerb: {
		{"ies", "y"}, {"ing", "e"}, {"ing", ""}, {"es", "e"},
		{"es", ""}, {"ed", "e"}, {"ed", ""}, {"s", ""},
	},
	posAdjective: {
		{"est", ""}, {"est", "e"}, {"er", ""}, {"er", "e"},
	},
	posAdverb: nil,
}

// Lemmatizer recovers dictionary forms using the WordNet lexicon and
// morphological exception lists. The zero value is not usable; construct
// via LoadLemmatizer.
type Lemmatizer struct {
	available  bool
	lexicon    map[partOfSpeech]map[string]struct{}
	exceptions map[partOfSpeech]map[string]string
}

// LoadLemmatizer reads the WordNet data directory at dir. An empty dir
// returns a degraded lemmatizer (identity lemmatization). A non-empty dir
// that cannot be fully loaded is an error: the caller asked for the
// resource, so silently degrading would produce wrong output.
func LoadLemmatizer(dir string) (*Lemmatizer, error) {
	if dir == "" {
		return &Lemmatizer{}, nil
	}

	l := &Lemmatizer{
		available:  true,
		lexicon:    make(map[partOfSpeech]map[string]struct{}, len(allPartsOfSpeech)),
		exceptions: make(map[partOfSpeech]map[string]string, len(allPartsOfSpeech)),
	}

	for _, pos := range allPartsOfSpeech {
		lexicon, err := loadIndexFile(filepath.Join(dir, "index."+string(pos)))
		if err != nil {
			return nil, fmt.Errorf("wordnet lexicon %s: %w", pos, err)
		}
		l.lexicon[pos] = lexicon

		exceptions, err := loadExceptionFile(filepath.Join(dir, string(pos)+".exc"))
		if err != nil {
			return nil, fmt.Errorf("wordnet exceptions %s: %w", pos, err)
		}
		l.exceptions[pos] = exceptions
	}

	return l, nil
}

// ResourceAvailable reports whether the WordNet data directory loaded.
func (l *Lemmatizer) ResourceAvailable() bool { return l.available }

// lemmatize returns the lemma of word under the given part of speech,
// following the WordNet morphy procedure: exception list first, then the
// word itself if it is already a lemma, then detachment-rule candidates
// validated against the lexicon. Falls back to the word unchanged.
func (l *Lemmatizer) lemmatize(word string, pos partOfSpeech) string {
	if !l.available {
		return word
	}

	if lemma, ok := l.exceptions[pos][word]; ok {
		return lemma
	}
	if _, ok := l.lexicon[pos][word]; ok {
		return word
	}

	for _, rule := range detachments[pos] {
		if !strings.HasSuffix(word, rule.suffix) {
			continue
		}
		candidate := word[:len(word)-len(rule.suffix)] + rule.replacement
		if len(candidate) < 2 {
			continue
		}
		if _, ok := l.lexicon[pos][candidate]; ok {
			return candidate
		}
	}

	return word
}

// knownAs reports whether the lexicon lists lemma under the given part of
// speech. When no lexicon is loaded every class is assumed possible.
func (l *Lemmatizer) knownAs(lemma string, pos partOfSpeech) bool {
	if !l.available {
		return true
	}
	_, ok := l.lexicon[pos][lemma]
	return ok
}

// loadIndexFile reads a WordNet index.<pos> file: one lemma per line in the
// first whitespace-separated field. Lines starting with a space carry the
// license header and are skipped.
func loadIndexFile(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	lexicon := make(map[string]struct{})

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, " ") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		lexicon[fields[0]] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}

	return lexicon, nil
}

// loadExceptionFile reads a WordNet <pos>.exc file: "surface lemma [lemma…]"
// per line. Only the first lemma is kept; short or malformed lines are
// skipped individually.
func loadExceptionFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	exceptions := make(map[string]string)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		exceptions[fields[0]] = fields[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}

	return exceptions, nil
}
