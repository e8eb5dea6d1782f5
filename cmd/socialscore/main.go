// Command socialscore scores one or more Facebook profiles from the
// command line and prints the aggregated response as JSON.
//
// Usage:
//
//	socialscore zuck
//	socialscore -fayda 614079852391 zuck 100044213212345
//	socialscore -no-browser -debug zuck   # requires FACEBOOK_* env vars
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/faydalink/socialscore"
	"github.com/faydalink/socialscore/facebook"
	"github.com/faydalink/socialscore/httpcache"
	"github.com/faydalink/socialscore/report"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	fayda := flag.String("fayda", "", "identity number to report the score under")
	noBrowser := flag.Bool("no-browser", false, "disable reading cookies from browser stores (enabled by default)")
	noCache := flag.Bool("no-cache", false, "disable HTTP caching")
	cacheTTL := flag.Duration("cache-ttl", 24*time.Hour, "cache time-to-live")
	cookieFile := flag.String("cookie-file", "cookies/facebook_cookies.json", "JSON cookie file path")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: socialscore [options] <username> [username...]")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr, "\nCookies are read from (in order): FACEBOOK_* env vars,")
		fmt.Fprintln(os.Stderr, "the cookie file, then browser stores unless -no-browser is set.")
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	if *debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	var httpCache *httpcache.Cache
	if !*noCache {
		var err error
		httpCache, err = httpcache.New(*cacheTTL)
		if err != nil {
			logger.Warn("failed to initialize cache, continuing without cache", "error", err)
		} else {
			defer func() {
				if err := httpCache.Close(); err != nil {
					logger.Warn("failed to close cache", "error", err)
				}
			}()
			logger.Debug("HTTP cache initialized", "ttl", cacheTTL.String())
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
	if httpCache != nil {
		opts = append(opts, facebook.WithHTTPCache(httpCache))
	}

	client, err := facebook.New(ctx, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1) //nolint:gocritic // exitAfterDefer is acceptable in main
	}

	data := make([]socialscore.SocialMediaRequest, 0, flag.NArg())
	for _, username := range flag.Args() {
		data = append(data, socialscore.SocialMediaRequest{
			SocialMedia: facebook.Platform,
			Username:    username,
		})
	}

	svc := socialscore.NewService(client, socialscore.WithLogger(logger))
	resp, err := svc.Score(ctx, socialscore.CentralScoreRequest{
		FaydaNumber: *fayda,
		Requests: []socialscore.ScoreRequest{{
			Type: report.ResponseType,
			Data: data,
		}},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Output error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
