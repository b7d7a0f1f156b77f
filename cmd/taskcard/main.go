// Command taskcard turns one digest run's artifacts into a Trello card:
// the card title is the digest date, the description is the combined
// markdown report.
//
// Usage:
//
//	taskcard [-dir drafts]
//
// Requires TRELLO_KEY, TRELLO_TOKEN and TRELLO_LIST_ID (environment or
// config.yaml; .env is honored).
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/zcashme/promote-bot/internal/adapter/trello"
	"github.com/zcashme/promote-bot/internal/app"
	"github.com/zcashme/promote-bot/internal/app/digest"
	"github.com/zcashme/promote-bot/internal/config"
	"github.com/zcashme/promote-bot/internal/domain"
)

func main() {
	dir := flag.String("dir", "", "digest artifact directory (default from config)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadTaskcard()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	artifactDir := cfg.Digest.OutDir
	if *dir != "" {
		artifactDir = *dir
	}

	title, desc, err := readArtifacts(artifactDir)
	if err != nil {
		logger.Error("read digest artifacts", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := trello.NewClient(cfg.Trello, logger)
	card, err := client.CreateCard(ctx, title, desc)
	if err != nil {
		logger.Error("create trello card", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("Created Trello card: %s\n", card.URL)
}

// readArtifacts derives the card title from the structured artifact's
// timestamp (date part only) and takes the markdown report as description.
func readArtifacts(dir string) (title, desc string, err error) {
	raw, err := os.ReadFile(filepath.Join(dir, digest.NewUsersName+".json"))
	if err != nil {
		return "", "", fmt.Errorf("read digest json: %w", err)
	}

	var d domain.Digest
	if err := json.Unmarshal(raw, &d); err != nil {
		return "", "", fmt.Errorf("decode digest json: %w", err)
	}
	if len(d.TimestampUTC) < 10 {
		return "", "", fmt.Errorf("digest timestamp %q is not a usable date", d.TimestampUTC)
	}

	report, err := os.ReadFile(filepath.Join(dir, digest.ReportName))
	if err != nil {
		return "", "", fmt.Errorf("read digest report: %w", err)
	}

	return d.TimestampUTC[:10], string(report), nil
}
