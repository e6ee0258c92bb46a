// secretcache is a small CLI for fetching secret strings from AWS
// Secrets Manager through the in-process cache. It exists mainly for
// smoke-testing credentials and cache behavior against real endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/chainguard-dev/clog"

	secretcache "github.com/adamjq/aws-secretsmanager-cache-go"
)

const usage = `secretcache - fetch a secret string through the Secrets Manager cache

Usage:
  secretcache [flags] <secret-id> [<secret-id>...]

Flags:
  -region string     AWS region (defaults to the SDK's resolution)
  -endpoint string   Custom endpoint, e.g. a LocalStack URL
  -stage string      Version stage to request (default "AWSCURRENT")
  -ttl duration      Cache item TTL (default 1h)
  -max int           Maximum number of cached secrets (default 1024)
  -force             Bypass the cache and force a refresh
  -debug             Enable debug output

Examples:
  # Fetch a secret with default settings
  secretcache service/api-key

  # Force a refresh after the secret was rotated
  secretcache -force service/api-key

  # Fetch from LocalStack with a short TTL
  secretcache -endpoint http://localhost:4566 -ttl 30s service/api-key
`

func main() {
	region := flag.String("region", "", "AWS region")
	endpoint := flag.String("endpoint", "", "custom Secrets Manager endpoint")
	stage := flag.String("stage", secretcache.DefaultVersionStage, "version stage to request")
	ttl := flag.Duration("ttl", secretcache.DefaultCacheItemTTL, "cache item TTL")
	maxSize := flag.Int("max", secretcache.DefaultMaxCacheSize, "maximum number of cached secrets")
	force := flag.Bool("force", false, "force a refresh, bypassing the cache")
	debug := flag.Bool("debug", false, "enable debug output")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
	}
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := clog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ctx := clog.WithLogger(context.Background(), logger)

	ids := flag.Args()
	if len(ids) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(ctx, ids, *region, *endpoint, *stage, *ttl, *maxSize, *force); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, ids []string, region, endpoint, stage string, ttl time.Duration, maxSize int, force bool) error {
	log := clog.FromContext(ctx)

	cfg := secretcache.NewConfig().
		WithMaxCacheSize(maxSize).
		WithCacheItemTTL(ttl).
		WithVersionStage(stage)

	opts := []secretcache.Option{secretcache.WithCacheConfig(cfg)}
	if region != "" {
		opts = append(opts, secretcache.WithRegion(region))
	}
	if endpoint != "" {
		opts = append(opts, secretcache.WithEndpoint(endpoint))
	}

	cache, err := secretcache.NewFromConfig(ctx, opts...)
	if err != nil {
		return fmt.Errorf("building cache: %w", err)
	}

	for _, id := range ids {
		log.Debugf("fetching secret %q (stage %s, force=%t)", id, stage, force)

		req := cache.GetSecretString(id)
		if force {
			req = req.ForceRefresh()
		}

		value, err := req.Send(ctx)
		if err != nil {
			switch {
			case secretcache.IsSecretNotFound(err):
				return fmt.Errorf("secret %q not found", id)
			case secretcache.IsAccessDenied(err):
				return fmt.Errorf("access denied for secret %q", id)
			default:
				return fmt.Errorf("getting secret %q: %w", id, err)
			}
		}
		fmt.Println(value)
	}
	return nil
}
