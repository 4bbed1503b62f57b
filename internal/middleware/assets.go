package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
)

const (
	assetCacheControl = "public, max-age=604800, stale-while-revalidate=86400"
	etagLength        = 16
)

// AssetsWithCache serves dir with ETag and Cache-Control headers.
// Request paths are expected relative to dir (mount it behind http.StripPrefix).
func AssetsWithCache(dir string) http.Handler {
	fsys := os.DirFS(dir)
	etags := assetETags(fsys)
	files := http.FileServer(http.FS(fsys))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Add("Vary", "Accept-Encoding")
		h.Set("Cache-Control", assetCacheControl)
		if et, ok := etags[path.Clean("/"+r.URL.Path)]; ok {
			h.Set("ETag", et)
			if etagMatches(r.Header.Get("If-None-Match"), et) {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
		files.ServeHTTP(w, r)
	})
}

// assetETags hashes every file under fsys once, keyed by its URL path.
func assetETags(fsys fs.FS) map[string]string {
	etags := map[string]string{}
	_ = fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		f, err := fsys.Open(p)
		if err != nil {
			return nil
		}
		defer f.Close()
		h := sha256.New()
		if _, err := io.Copy(h, f); err != nil {
			return nil
		}
		etags["/"+p] = `W/"` + hex.EncodeToString(h.Sum(nil))[:etagLength] + `"`
		return nil
	})
	return etags
}

func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}
