// Copyright (c) 2026 nirek13. All rights reserved. See LICENSE for details.

// Package main is the entry point for the portfolio server. It loads
// configuration, opens the content files, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nirek13/newportfolio/internal/cache"
	"github.com/nirek13/newportfolio/internal/config"
	"github.com/nirek13/newportfolio/internal/handlers"
	"github.com/nirek13/newportfolio/internal/render"
	"github.com/nirek13/newportfolio/internal/router"
	"github.com/nirek13/newportfolio/internal/session"
	"github.com/nirek13/newportfolio/internal/site"
	"github.com/nirek13/newportfolio/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"data_file", cfg.DataFile,
	)

	// Site settings (navigation, about copy, photography, projects).
	siteSettings, err := site.Load(cfg.SiteFile)
	if err != nil {
		slog.Error("failed to load site settings", "error", err)
		os.Exit(1)
	}

	// The blog data file must exist and decode at startup so a broken
	// deploy fails fast instead of 500ing on the first request.
	posts := store.NewPostStore(cfg.DataFile)
	if _, err := posts.ListAll(); err != nil {
		slog.Error("failed to read blog data file", "path", cfg.DataFile, "error", err)
		os.Exit(1)
	}

	// Valkey is optional. With it, sessions survive restarts and public
	// pages are cached; without it, sessions live in process memory and
	// every request renders fresh.
	var sessionBackend session.Backend
	var pageCache *cache.PageCache
	if cfg.ValkeyAddr() != "" {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyAddr(), cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
		sessionBackend = session.NewValkeyBackend(valkeyClient)
		pageCache = cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)
	} else {
		slog.Warn("valkey not configured, using in-memory sessions and no page cache")
		sessionBackend = session.NewMemoryBackend()
	}

	// In non-development environments, mark cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(sessionBackend, secureCookies)

	renderer, err := render.New(siteSettings)
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Create handler groups with their dependencies.
	publicHandlers := handlers.NewPublic(renderer, posts, pageCache)
	authHandlers := handlers.NewAuth(renderer, sessionStore, cfg.AdminPasswordHash, cfg.AdminTOTPSecret)
	adminHandlers := handlers.NewAdmin(renderer, posts, siteSettings.Title, cfg.AdminTOTPSecret)
	apiHandlers := handlers.NewAPI(posts, pageCache)

	r := router.New(sessionStore, publicHandlers, authHandlers, adminHandlers, apiHandlers)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
