// Package morph defines the surface-form oracle contract shared by the
// per-language morphology backends and the suffix codec used to encode
// inflected forms relative to their lemma.
package morph

import (
	"sort"
	"strings"
)

// SuffixSeparator joins a lemma and the suffix that turns it into a
// surface form inside an encoded token.
const SuffixSeparator = "#"

// Oracle is the narrow morphology contract the expansion pipeline depends
// on. LemmasOf returns the candidate lemmas for a word (always including
// at least one entry). InflectionsOf returns the full surface-form set of
// a lemma. ResourceAvailable reports whether the backing lexical resource
// loaded; when false the oracle runs in a degraded mode (smaller but still
// valid output) and callers may want to log that.
type Oracle interface {
	LemmasOf(word string) []string
	InflectionsOf(lemma string) []string
	ResourceAvailable() bool
}

// EncodeSuffixVariants encodes each surface form relative to its lemma:
//
//   - a form equal to the lemma is emitted as the bare lemma
//   - a form with the lemma as a literal prefix is emitted as
//     "lemma#suffix" (an empty remainder collapses to the bare lemma)
//   - any other form is emitted unchanged, unless dropNonPrefix is set,
//     in which case it is silently dropped
//
// The result is the encoded set sorted lexicographically, so callers get
// a deterministic enumeration regardless of input order.
func EncodeSuffixVariants(lemma string, forms []string, dropNonPrefix bool) []string {
	encoded := make(map[string]struct{}, len(forms))

	for _, form := range forms {
		switch {
		case form == lemma:
			encoded[lemma] = struct{}{}
		case strings.HasPrefix(form, lemma):
			suffix := form[len(lemma):]
			if suffix == "" {
				encoded[lemma] = struct{}{}
				continue
			}
			encoded[lemma+SuffixSeparator+suffix] = struct{}{}
		case !dropNonPrefix:
			encoded[form] = struct{}{}
		}
	}

	result := make([]string, 0, len(encoded))
	for token := range encoded {
		result = append(result, token)
	}
	sort.Strings(result)

	return result
}

// DecodeToken reconstructs the surface form from an encoded token:
// "lemma#suffix" becomes lemma+suffix, a bare token decodes to itself.
func DecodeToken(token string) string {
	lemma, suffix, found := strings.Cut(token, SuffixSeparator)
	if !found {
		return token
	}
	return lemma + suffix
}
