package dataset

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/hanzifier/internal/domain"
	"github.com/heartmarshall/hanzifier/internal/morph"
)

// ExpansionCache memoizes, per (word, language), the sorted set of encoded
// surface-form variants. Entries are computed at most once for the process
// lifetime: concurrent first access for the same key is collapsed through
// singleflight, so the oracle is never invoked twice for one key.
type ExpansionCache struct {
	oracles map[domain.Language]morph.Oracle

	group singleflight.Group

	mu       sync.RWMutex
	variants map[string][]string
}

// NewExpansionCache builds a cache over the given per-language oracles.
func NewExpansionCache(oracles map[domain.Language]morph.Oracle) *ExpansionCache {
	return &ExpansionCache{
		oracles:  oracles,
		variants: make(map[string][]string),
	}
}

// Expand returns the encoded variant set of word under lang, sorted
// lexicographically. The returned slice is shared and must not be mutated.
func (c *ExpansionCache) Expand(word string, lang domain.Language) ([]string, error) {
	key := string(lang) + "\x00" + word

	c.mu.RLock()
	cached, ok := c.variants[key]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	result, err, _ := c.group.Do(key, func() (any, error) {
		// Re-check: a previous flight may have stored the entry between
		// the read above and this call.
		c.mu.RLock()
		stored, ok := c.variants[key]
		c.mu.RUnlock()
		if ok {
			return stored, nil
		}

		oracle, ok := c.oracles[lang]
		if !ok {
			return nil, fmt.Errorf("language %q: %w", lang, domain.ErrUnknownLanguage)
		}

		variants := expand(oracle, word)

		c.mu.Lock()
		c.variants[key] = variants
		c.mu.Unlock()

		return variants, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]string), nil
}

// Size returns the number of memoized keys, for run statistics.
func (c *ExpansionCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.variants)
}

// expand unions the suffix-encoded paradigms of every lemma the oracle
// recovers for word. Non-prefix irregular forms are dropped to keep the
// dataset compact and prefix-decodable.
func expand(oracle morph.Oracle, word string) []string {
	set := make(map[string]struct{})
	for _, lemma := range oracle.LemmasOf(word) {
		forms := oracle.InflectionsOf(lemma)
		for _, token := range morph.EncodeSuffixVariants(lemma, forms, true) {
			set[token] = struct{}{}
		}
	}

	variants := make([]string, 0, len(set))
	for token := range set {
		variants = append(variants, token)
	}
	sort.Strings(variants)
	return variants
}
