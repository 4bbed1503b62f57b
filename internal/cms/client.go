package cms

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

// ErrNotFound is returned when a CMS resource cannot be located.
var ErrNotFound = errors.New("cms: not found")

const (
	defaultLang       = "en"
	defaultContentDir = "content"
	defaultCacheTTL   = 5 * time.Minute
)

// Client resolves static pages from a remote CMS, a content directory, and the
// pages compiled into the binary, in that order. Rendered pages are cached per client.
type Client struct {
	baseURL    string
	contentDir string
	http       *http.Client
	cache      *pageCache
}

// NewClient constructs a Client with the provided base URL. An empty baseURL
// serves local and embedded content only.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		contentDir: defaultContentDir,
		http:       &http.Client{Timeout: 5 * time.Second},
		cache:      newPageCache(defaultCacheTTL),
	}
}

// WithHTTPClient swaps the HTTP client, mainly for tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	if hc != nil {
		c.http = hc
	}
	return c
}

// WithCacheTTL replaces the page cache with an empty one using ttl.
// A non-positive ttl disables caching.
func (c *Client) WithCacheTTL(ttl time.Duration) *Client {
	c.cache = newPageCache(ttl)
	return c
}

// SetContentDir configures the on-disk directory checked before the embedded pages.
func (c *Client) SetContentDir(dir string) {
	if dir = strings.TrimSpace(dir); dir == "" {
		dir = defaultContentDir
	}
	c.contentDir = dir
}

// ContentDir returns the configured content directory.
func (c *Client) ContentDir() string { return c.contentDir }

func normalizeLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return defaultLang
	}
	return lang
}
