package cms

import (
	"sync"
	"time"
)

type cachedPage struct {
	page    ContentPage
	expires time.Time
}

// pageCache is a TTL map of rendered pages keyed by kind, lang and slug.
type pageCache struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]cachedPage
	now   func() time.Time
}

func newPageCache(ttl time.Duration) *pageCache {
	return &pageCache{ttl: ttl, items: map[string]cachedPage{}, now: time.Now}
}

func cacheKey(kind, lang, slug string) string {
	return kind + "|" + lang + "|" + slug
}

func (pc *pageCache) get(key string) (ContentPage, bool) {
	if pc.ttl <= 0 {
		return ContentPage{}, false
	}
	pc.mu.RLock()
	entry, ok := pc.items[key]
	pc.mu.RUnlock()
	if !ok || pc.now().After(entry.expires) {
		return ContentPage{}, false
	}
	return entry.page.clone(), true
}

func (pc *pageCache) put(key string, page ContentPage) {
	if pc.ttl <= 0 {
		return
	}
	pc.mu.Lock()
	pc.items[key] = cachedPage{page: page.clone(), expires: pc.now().Add(pc.ttl)}
	pc.mu.Unlock()
}
