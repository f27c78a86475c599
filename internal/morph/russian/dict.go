// Package russian implements the Russian surface-form oracle: the best
// morphological parse's lemma and the full lexeme of that parse.
//
// The analyzer prefers a compiled paradigm dictionary (a gzip-compressed
// gob file mapped into memory). Without one it falls back to embedded
// ending-substitution tables covering the productive declension and
// conjugation classes.
package russian

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// dictPayload is the on-disk layout of a compiled dictionary:
// every paradigm is the ordered form list of one lexeme with the lemma at
// index 0; Forms maps each surface form to its paradigm IDs, most frequent
// parse first.
type dictPayload struct {
	Paradigms [][]string
	Forms     map[string][]uint32
}

// Dictionary is a loaded compiled paradigm dictionary.
type Dictionary struct {
	paradigms [][]string
	forms     map[string][]uint32
}

// LoadDictionary memory-maps the compiled dictionary file at path and
// decodes it. The mapping is released once decoding finishes; lookups run
// against the decoded tables.
func LoadDictionary(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap dictionary: %w", err)
	}
	defer m.Unmap()

	gz, err := gzip.NewReader(bytes.NewReader(m))
	if err != nil {
		return nil, fmt.Errorf("gzip header: %w", err)
	}
	defer gz.Close()

	var payload dictPayload
	if err := gob.NewDecoder(gz).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode dictionary: %w", err)
	}
	if payload.Forms == nil {
		return nil, fmt.Errorf("decode dictionary: empty form index")
	}

	return &Dictionary{paradigms: payload.Paradigms, forms: payload.Forms}, nil
}

// WriteDictionary serializes paradigms into the compiled on-disk format.
// Used by dictionary build tooling and tests.
func WriteDictionary(path string, paradigms [][]string) error {
	forms := make(map[string][]uint32)
	for id, paradigm := range paradigms {
		for _, form := range paradigm {
			forms[form] = append(forms[form], uint32(id))
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dictionary: %w", err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	if err := gob.NewEncoder(gz).Encode(dictPayload{Paradigms: paradigms, Forms: forms}); err != nil {
		return fmt.Errorf("encode dictionary: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("flush dictionary: %w", err)
	}
	return f.Close()
}

// bestParadigm returns the form list of the most frequent paradigm
// containing word, or false if the word is not in the dictionary.
func (d *Dictionary) bestParadigm(word string) ([]string, bool) {
	ids, ok := d.forms[word]
	if !ok || len(ids) == 0 {
		return nil, false
	}
	id := int(ids[0])
	if id >= len(d.paradigms) || len(d.paradigms[id]) == 0 {
		return nil, false
	}
	return d.paradigms[id], true
}
