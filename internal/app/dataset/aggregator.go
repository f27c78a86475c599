package dataset

import (
	"fmt"

	"github.com/heartmarshall/hanzifier/internal/domain"
)

// Aggregator assembles one meaning list per character by driving root
// selection and paradigm expansion.
type Aggregator struct {
	cache    *ExpansionCache
	maxRoots int
}

// NewAggregator builds an Aggregator over the given cache. maxRoots <= 0
// falls back to DefaultMaxRoots.
func NewAggregator(cache *ExpansionCache, maxRoots int) *Aggregator {
	if maxRoots <= 0 {
		maxRoots = DefaultMaxRoots
	}
	return &Aggregator{cache: cache, maxRoots: maxRoots}
}

// BuildEntry produces the HanziEntry for one character from its candidate
// words: selected roots expand in order, and each variant joins the
// meaning list on first occurrence only. Variant sets are sorted, so the
// result is byte-reproducible across runs. A character without candidates
// gets an empty meaning list.
func (a *Aggregator) BuildEntry(hanzi string, primary, secondary []string) (domain.HanziEntry, error) {
	entry := domain.HanziEntry{Hanzi: hanzi, Meanings: []string{}}

	seen := make(map[string]struct{})
	for _, root := range SelectRoots(primary, secondary, a.maxRoots) {
		variants, err := a.cache.Expand(root.Word, root.Lang)
		if err != nil {
			return domain.HanziEntry{}, fmt.Errorf("expand %q (%s): %w", root.Word, root.Lang, err)
		}
		for _, variant := range variants {
			if _, dup := seen[variant]; dup {
				continue
			}
			seen[variant] = struct{}{}
			entry.Meanings = append(entry.Meanings, variant)
		}
	}

	return entry, nil
}
