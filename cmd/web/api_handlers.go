package main

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"axiomai.dev/marketplace-web/internal/catalog"
	"axiomai.dev/marketplace-web/internal/observability"
	"axiomai.dev/marketplace-web/internal/pricing"
)

type agentsResponse struct {
	catalog.Result
	Summary    string   `json:"summary"`
	Categories []string `json:"categories"`
}

// APIAgentsHandler returns the filtered and sorted listings for category, q and sort.
func (s *server) APIAgentsHandler(w http.ResponseWriter, r *http.Request) {
	res := s.content.Catalog.Query(catalog.FilterStateFromValues(r.URL.Query()))
	writeJSON(w, r, http.StatusOK, agentsResponse{
		Result:     res,
		Summary:    res.Summary(),
		Categories: s.content.Catalog.Categories(),
	})
}

// APIPlansHandler returns the plans priced for the billing parameter.
func (s *server) APIPlansHandler(w http.ResponseWriter, r *http.Request) {
	b := pricing.ParseBilling(r.URL.Query().Get("billing"))
	writeJSON(w, r, http.StatusOK, s.content.Plans.View(b))
}

func writeJSON(w http.ResponseWriter, r *http.Request, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		observability.FromContext(r.Context()).Warn("encode json", zap.Error(err))
	}
}
