package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"axiomai.dev/marketplace-web/internal/cms"
	"axiomai.dev/marketplace-web/internal/config"
	"axiomai.dev/marketplace-web/internal/i18n"
	"axiomai.dev/marketplace-web/internal/observability"
	"axiomai.dev/marketplace-web/internal/site"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var addr string
	flag.StringVar(&addr, "addr", cfg.Addr(), "HTTP listen address")
	flag.StringVar(&cfg.TemplatesDir, "templates", cfg.TemplatesDir, "templates directory")
	flag.StringVar(&cfg.PublicDir, "public", cfg.PublicDir, "public assets directory")
	flag.StringVar(&cfg.DataDir, "data", cfg.DataDir, "fixture directory (empty uses the built-in data)")
	flag.Parse()

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	content, err := site.Load(cfg.DataDir)
	if err != nil {
		logger.Error("load site content", zap.String("dir", cfg.DataDir), zap.Error(err))
		return err
	}
	logger.Info("site content loaded",
		zap.String("dir", cfg.DataDir),
		zap.Int("listings", content.Catalog.Len()),
		zap.Int("plans", len(content.Plans.Plans())),
	)

	localesDir := cfg.LocalesDir
	if info, statErr := os.Stat(localesDir); statErr != nil || !info.IsDir() {
		localesDir = ""
	}
	bundle, err := i18n.Load(localesDir, cfg.DefaultLang, []string{"en", "ja"})
	if err != nil {
		return fmt.Errorf("load i18n: %w", err)
	}

	cmsClient := cms.NewClient(cfg.CMSBaseURL)
	if cfg.Dev {
		// edits to content/ show up on reload
		cmsClient.WithCacheTTL(0)
	} else {
		cmsClient.WithCacheTTL(cfg.CMSCacheTTL)
	}
	cmsClient.SetContentDir(cfg.ContentDir)

	srv, err := newServer(serverOptions{
		Config:       cfg,
		Logger:       logger,
		Content:      content,
		Bundle:       bundle,
		CMS:          cmsClient,
		TemplatesDir: cfg.TemplatesDir,
		PublicDir:    cfg.PublicDir,
		DevMode:      cfg.Dev,
	})
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("web listening", zap.String("addr", addr), zap.Bool("dev_mode", cfg.Dev), zap.String("env", cfg.Environment))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
