package domain

import "unicode"

// Language identifies the source language of a candidate word.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageRussian Language = "ru"
)

func (l Language) String() string { return string(l) }

// DetectLanguage classifies a word by script: any Cyrillic letter means
// Russian, everything else is treated as English.
func DetectLanguage(word string) Language {
	for _, r := range word {
		if unicode.Is(unicode.Cyrillic, r) {
			return LanguageRussian
		}
	}
	return LanguageEnglish
}

// Root is a candidate source word selected for morphological expansion,
// tagged with the language it was detected as.
type Root struct {
	Word string
	Lang Language
}

// HanziEntry holds the final ordered meaning list for one character.
// Meanings are encoded tokens: either a bare lemma or "lemma#suffix".
type HanziEntry struct {
	Hanzi    string   `json:"hanzi"`
	Meanings []string `json:"meanings"`
}

// Dataset is the full ordered sequence of entries, in frequency-list order.
// It is built once per run and never mutated after assembly.
type Dataset []HanziEntry
