// Command socialscore-server runs the Facebook scoring HTTP service.
//
// Cookies for the authenticated session come from FACEBOOK_* environment
// variables (optionally via a .env file), a persisted cookie file, or
// browser stores. Without any cookie source the server still runs; profile
// fetches then degrade per-identifier.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/faydalink/socialscore"
	"github.com/faydalink/socialscore/facebook"
	"github.com/faydalink/socialscore/httpcache"
	"github.com/faydalink/socialscore/server"
)

func main() {
	addr := flag.String("addr", ":8000", "listen address")
	debug := flag.Bool("debug", false, "enable debug logging")
	strictAuth := flag.Bool("strict-auth", false, "refuse to start without facebook session cookies")
	noBrowser := flag.Bool("no-browser", false, "disable reading cookies from browser stores")
	noCache := flag.Bool("no-cache", false, "disable HTTP caching")
	cacheTTL := flag.Duration("cache-ttl", 6*time.Hour, "cache time-to-live")
	cookieFile := flag.String("cookie-file", "cookies/facebook_cookies.json", "JSON cookie file path")
	concurrency := flag.Int("concurrency", 4, "max parallel profile fetches per request")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	logLevel := slog.LevelInfo
	if *debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	var httpCache *httpcache.Cache
	if !*noCache {
		var err error
		httpCache, err = httpcache.New(*cacheTTL)
		if err != nil {
			logger.Warn("failed to initialize cache, continuing without cache", "error", err)
		}
	}

	ctx := context.Background()

	opts := []facebook.Option{
		facebook.WithLogger(logger),
		facebook.WithCookieFile(*cookieFile),
	}
	if !*noBrowser {
		opts = append(opts, facebook.WithBrowserCookies())
	}
	if *strictAuth {
		opts = append(opts, facebook.WithStrictAuth())
	}
	if httpCache != nil {
		opts = append(opts, facebook.WithHTTPCache(httpCache))
	}

	client, err := facebook.New(ctx, opts...)
	if err != nil {
		logger.Error("failed to create facebook client", "error", err)
		os.Exit(1)
	}

	svc := socialscore.NewService(client,
		socialscore.WithLogger(logger),
		socialscore.WithConcurrency(*concurrency),
	)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           server.New(svc, logger).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", *addr, "authenticated", client.Authenticated())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	if httpCache != nil {
		if err := httpCache.Close(); err != nil {
			logger.Warn("failed to close cache", "error", err)
		}
	}
}
