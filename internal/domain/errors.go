package domain

import "errors"

// ErrUnknownLanguage is returned when a word's detected language has no
// registered morphology backend.
var ErrUnknownLanguage = errors.New("unknown language")
