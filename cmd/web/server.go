package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"axiomai.dev/marketplace-web/internal/cms"
	"axiomai.dev/marketplace-web/internal/config"
	"axiomai.dev/marketplace-web/internal/format"
	handlersPkg "axiomai.dev/marketplace-web/internal/handlers"
	"axiomai.dev/marketplace-web/internal/i18n"
	mw "axiomai.dev/marketplace-web/internal/middleware"
	"axiomai.dev/marketplace-web/internal/observability"
	"axiomai.dev/marketplace-web/internal/seo"
	"axiomai.dev/marketplace-web/internal/site"
)

const defaultRequestTimeout = 30 * time.Second

// server carries the loaded content and rendering state shared by handlers.
type server struct {
	cfg     config.Config
	log     *zap.Logger
	content *site.Content
	bundle  *i18n.Bundle
	cms     *cms.Client

	templatesDir string
	publicDir    string
	// devMode reparses templates on every request
	devMode   bool
	tmplCache *templateSet
}

type serverOptions struct {
	Config       config.Config
	Logger       *zap.Logger
	Content      *site.Content
	Bundle       *i18n.Bundle
	CMS          *cms.Client
	TemplatesDir string
	PublicDir    string
	DevMode      bool
}

func newServer(opts serverOptions) (*server, error) {
	if opts.Content == nil || opts.Bundle == nil {
		return nil, fmt.Errorf("server: content and i18n bundle are required")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.CMS == nil {
		opts.CMS = cms.NewClient("")
	}
	s := &server{
		cfg:          opts.Config,
		log:          opts.Logger,
		content:      opts.Content,
		bundle:       opts.Bundle,
		cms:          opts.CMS,
		templatesDir: opts.TemplatesDir,
		publicDir:    opts.PublicDir,
		devMode:      opts.DevMode,
	}
	if !s.devMode {
		// Parse templates once in production
		tc, err := s.parseTemplates()
		if err != nil {
			return nil, fmt.Errorf("parse templates: %w", err)
		}
		s.tmplCache = tc
	}
	return s, nil
}

func (s *server) routes() http.Handler {
	timeout := s.cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP.
	r.Use(middleware.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Locale(s.bundle))
	r.Use(mw.Logger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(timeout))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Static assets under /assets/
	assets := http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(s.publicDir, "assets")))
	r.Handle("/assets/*", assets)

	r.Get("/", s.HomeHandler)
	r.Route("/marketplace", func(r chi.Router) {
		r.Get("/", s.MarketplaceHandler)
		r.Get("/results", s.MarketplaceResultsFrag)
		r.Get("/agents/{id}", s.AgentDetailHandler)
	})
	r.Route("/pricing", func(r chi.Router) {
		r.Get("/", s.PricingHandler)
		r.Get("/plans", s.PricingPlansFrag)
	})
	r.Get("/pages/{slug}", s.ContentPageHandler)
	r.Route("/api", func(r chi.Router) {
		r.Get("/agents", s.APIAgentsHandler)
		r.Get("/plans", s.APIPlansHandler)
	})

	r.NotFound(s.NotFoundHandler)
	return r
}

func (s *server) funcMap() template.FuncMap {
	return template.FuncMap{
		"now":    time.Now,
		"t":      s.bundle.T,
		"date":   format.Date,
		"safeJS": func(v string) template.JS { return template.JS(v) },
	}
}

// templateSet holds the shared templates plus one clone per page, each with its own "content".
type templateSet struct {
	root  *template.Template
	pages map[string]*template.Template
}

func (s *server) parseTemplates() (*templateSet, error) {
	// Recursively discover and parse all .tmpl files. Note: ParseGlob doesn't support **.
	var shared, pages []string
	pagesDir := filepath.Join(s.templatesDir, "pages")
	if err := filepath.WalkDir(s.templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".tmpl") {
			return nil
		}
		if filepath.Dir(path) == pagesDir {
			pages = append(pages, path)
		} else {
			shared = append(shared, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(shared) == 0 {
		return nil, fmt.Errorf("no templates found under %s", s.templatesDir)
	}
	root, err := template.New("_root").Funcs(s.funcMap()).ParseFiles(shared...)
	if err != nil {
		return nil, err
	}
	set := &templateSet{root: root, pages: make(map[string]*template.Template, len(pages))}
	for _, file := range pages {
		tc, err := root.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := tc.ParseFiles(file); err != nil {
			return nil, err
		}
		set.pages[strings.TrimSuffix(filepath.Base(file), ".tmpl")] = tc
	}
	return set, nil
}

func (s *server) templates() (*templateSet, error) {
	if s.devMode {
		return s.parseTemplates()
	}
	if s.tmplCache == nil {
		return nil, fmt.Errorf("template not initialized")
	}
	return s.tmplCache, nil
}

// renderTemplate executes a named fragment. Output is buffered so a failure never leaves a half-written response.
func (s *server) renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	set, err := s.templates()
	if err != nil {
		s.serverError(w, r, "template parse error", err)
		return
	}
	s.execute(w, r, http.StatusOK, set.root, name, data)
}

// renderPage renders a page through the base layout.
func (s *server) renderPage(w http.ResponseWriter, r *http.Request, page string, vm handlersPkg.PageData) {
	s.renderPageStatus(w, r, http.StatusOK, page, vm)
}

func (s *server) renderPageStatus(w http.ResponseWriter, r *http.Request, code int, page string, vm handlersPkg.PageData) {
	set, err := s.templates()
	if err != nil {
		s.serverError(w, r, "template parse error", err)
		return
	}
	t, ok := set.pages[page]
	if !ok {
		s.serverError(w, r, "template missing", fmt.Errorf("page template %q not found", page))
		return
	}
	s.execute(w, r, code, t, "base", vm)
}

func (s *server) execute(w http.ResponseWriter, r *http.Request, code int, t *template.Template, name string, data any) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		s.serverError(w, r, "template exec error", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = buf.WriteTo(w)
}

func (s *server) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	observability.FromContext(r.Context()).Error(msg, zap.Error(err))
	mw.WriteError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// pageData builds the layout view model shared by every full page.
func (s *server) pageData(r *http.Request, title, description string) handlersPkg.PageData {
	lang := mw.Lang(r)
	vm := handlersPkg.New(lang, s.siteName(lang), r.URL.Path, s.cfg.Analytics)
	vm.SetTitle(title, description)
	vm.SEO.Fill(vm.SiteName, s.absoluteURL(r, r.URL.Path))
	vm.SEO.Alternates = s.buildAlternates(r)
	vm.Languages = s.languageLinks(r, lang)
	return vm
}

func (s *server) siteName(lang string) string {
	if s.content.Name != "" {
		return s.content.Name
	}
	return s.i18nOrDefault(lang, "brand.name", "AXIOM AI")
}

func (s *server) i18nOrDefault(lang, key, def string) string {
	if s.bundle != nil && s.bundle.Has(lang, key) {
		return s.bundle.T(lang, key)
	}
	return def
}

// baseURL prefers SITE_BASE_URL and otherwise derives scheme and host from the request.
func (s *server) baseURL(r *http.Request) string {
	if b := strings.TrimRight(strings.TrimSpace(s.cfg.SiteBaseURL), "/"); b != "" {
		return b
	}
	scheme := "http"
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

func (s *server) absoluteURL(r *http.Request, path string) string {
	return s.baseURL(r) + path
}

func (s *server) buildAlternates(r *http.Request) []seo.Alternate {
	langs := s.bundle.Supported()
	out := make([]seo.Alternate, 0, len(langs)+1)
	for _, l := range langs {
		out = append(out, seo.Alternate{Href: s.absoluteURL(r, withLang(r.URL, l)), Hreflang: l})
	}
	out = append(out, seo.Alternate{Href: s.absoluteURL(r, r.URL.Path), Hreflang: "x-default"})
	return out
}

func (s *server) languageLinks(r *http.Request, active string) []handlersPkg.LanguageLink {
	langs := s.bundle.Supported()
	out := make([]handlersPkg.LanguageLink, 0, len(langs))
	for _, l := range langs {
		out = append(out, handlersPkg.LanguageLink{Lang: l, Href: withLang(r.URL, l), Active: l == active})
	}
	return out
}

func withLang(u *url.URL, lang string) string {
	q := u.Query()
	q.Set("hl", lang)
	return u.Path + "?" + q.Encode()
}
