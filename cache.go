package voikko

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

const baseCacheEntries = 1024

// spellCache memoises spelling results by exact surface word. A nil
// *spellCache is a disabled cache.
type spellCache struct {
	c *lru.Cache[string, bool]
}

// newSpellCache returns a cache of 1024<<size entries, or nil for size -1.
func newSpellCache(size int) *spellCache {
	if size < 0 {
		return nil
	}
	c, err := lru.New[string, bool](baseCacheEntries << size)
	if err != nil {
		tracer().Errorf("voikko: speller cache disabled: %v", err)
		return nil
	}
	return &spellCache{c: c}
}

func (sc *spellCache) get(word string) (ok, hit bool) {
	if sc == nil {
		return false, false
	}
	return sc.c.Get(word)
}

func (sc *spellCache) add(word string, ok bool) {
	if sc != nil {
		sc.c.Add(word, ok)
	}
}

func (sc *spellCache) purge() {
	if sc != nil {
		sc.c.Purge()
	}
}

func (sc *spellCache) len() int {
	if sc == nil {
		return 0
	}
	return sc.c.Len()
}
