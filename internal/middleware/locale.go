package middleware

import (
	"context"
	"net/http"
	"strings"

	"axiomai.dev/marketplace-web/internal/i18n"
)

const langCookieName = "hl"

// Locale resolves the request language. An explicit ?hl= wins and is remembered
// in the hl cookie; otherwise the cookie, then Accept-Language, decide.
func Locale(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang, explicit := pickLang(bundle, r)
			if explicit {
				http.SetCookie(w, &http.Cookie{Name: langCookieName, Value: lang, Path: "/", SameSite: http.SameSiteLaxMode})
			}
			h := w.Header()
			h.Add("Vary", "Accept-Language")
			h.Add("Vary", "Cookie")
			h.Set("Content-Language", lang)

			ctx := context.WithValue(r.Context(), langFallbackKey{}, bundle.Fallback())
			next.ServeHTTP(w, r.WithContext(WithLang(ctx, lang)))
		})
	}
}

func pickLang(bundle *i18n.Bundle, r *http.Request) (lang string, explicit bool) {
	if q := normalizeLang(r.URL.Query().Get("hl")); q != "" && bundle.IsSupported(q) {
		return q, true
	}
	if c, err := r.Cookie(langCookieName); err == nil {
		if v := normalizeLang(c.Value); bundle.IsSupported(v) {
			return v, false
		}
	}
	return bundle.Resolve(r.Header.Get("Accept-Language")), false
}

func normalizeLang(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Lang returns the resolved language, the bundle fallback, or "en".
func Lang(r *http.Request) string {
	ctx := r.Context()
	if v, _ := ctx.Value(langKey{}).(string); v != "" {
		return v
	}
	if fb, _ := ctx.Value(langFallbackKey{}).(string); fb != "" {
		return fb
	}
	return "en"
}
