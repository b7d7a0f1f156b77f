// Command digest builds the daily promo digest: new ZcashMe accounts and
// newly verified profiles from the last 24 hours, each correlated with an
// X/Twitter handle, rendered as tweet drafts and written to the drafts
// directory for the task-card step.
//
// Usage:
//
//	digest [-at 2025-06-01T12:00:00Z] [-out drafts] [-preview]
//
// -at pins the window's reference time for reproducible re-runs; -preview
// prints both drafts to stdout instead of writing artifacts.
// Requires DATABASE_DSN (environment or config.yaml; .env is honored).
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/zcashme/promote-bot/internal/adapter/postgres"
	accountrepo "github.com/zcashme/promote-bot/internal/adapter/postgres/account"
	sociallinkrepo "github.com/zcashme/promote-bot/internal/adapter/postgres/sociallink"
	verificationrepo "github.com/zcashme/promote-bot/internal/adapter/postgres/verification"
	"github.com/zcashme/promote-bot/internal/app"
	"github.com/zcashme/promote-bot/internal/app/digest"
	"github.com/zcashme/promote-bot/internal/config"
)

func main() {
	at := flag.String("at", "", "pin the window reference time (RFC 3339), instead of now")
	out := flag.String("out", "", "output directory for draft artifacts (default from config)")
	preview := flag.Bool("preview", false, "print the drafts to stdout instead of writing files")
	flag.Parse()

	// Same convention as the rest of the tooling: a local .env is loaded if
	// present, real environment wins.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	// Window first: a malformed override must fail before any remote query.
	since, reference, err := digest.ComputeWindow(*at)
	if err != nil {
		logger.Error("compute window", slog.String("error", err.Error()))
		os.Exit(1)
	}

	outDir := cfg.Digest.OutDir
	if *out != "" {
		outDir = *out
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	correlator := digest.NewCorrelator(logger,
		accountrepo.New(pool),
		sociallinkrepo.New(pool),
		verificationrepo.New(pool),
	)

	var persister *digest.Persister
	if !*preview {
		persister = digest.NewPersister(logger, outDir)
	}

	pipeline := digest.NewPipeline(logger, correlator, persister)

	result, err := pipeline.Run(ctx, since, reference)
	if err != nil {
		logger.Error("digest run failed",
			slog.String("error", err.Error()),
			slog.Time("since", since),
			slog.Time("reference", reference),
		)
		os.Exit(1)
	}

	if *preview {
		fmt.Println(result.Users.Tweet)
		fmt.Println()
		fmt.Println(result.Verified.Tweet)
		return
	}

	logger.Info("digest run completed",
		slog.Int("new_users", result.Users.Count),
		slog.Int("new_verified", result.Verified.Count),
		slog.String("out_dir", outDir),
	)
}
