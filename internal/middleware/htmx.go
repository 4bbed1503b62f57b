package middleware

import "net/http"

// HTMX marks requests that expect an htmx fragment. Boosted navigations swap the
// whole body, so they are served full pages like any other browser request.
// Responses vary on HX-Request since the same URL may return a page or a fragment.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "HX-Request")
		fragment := r.Header.Get("HX-Request") == "true" && r.Header.Get("HX-Boosted") != "true"
		next.ServeHTTP(w, r.WithContext(WithHTMX(r.Context(), fragment)))
	})
}
