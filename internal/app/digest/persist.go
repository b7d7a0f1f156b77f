package digest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zcashme/promote-bot/internal/domain"
)

// Artifact base names. Paths are fixed functions of the output directory,
// so every run overwrites the previous drafts; retention is the downstream's
// concern.
const (
	NewUsersName    = "new_users"
	NewVerifiedName = "new_verified"
	ReportName      = "daily_digest.md"
)

// TimestampLayout is the minute-precision artifact timestamp. The downstream
// card step slices the first 10 characters off it as the card title date.
const TimestampLayout = "2006-01-02T15:04"

// Persister writes digest artifacts into one output directory.
type Persister struct {
	log    *slog.Logger
	outDir string
}

// NewPersister creates a Persister for outDir. The directory is created on
// the first write, not here.
func NewPersister(log *slog.Logger, outDir string) *Persister {
	return &Persister{
		log:    log.With("component", "persister"),
		outDir: outDir,
	}
}

// Persist writes the structured and plain-text artifact for one record set
// and returns the Digest that was written. Any write failure is returned
// as-is and aborts the run; artifacts already written stay on disk.
func (p *Persister) Persist(name string, items []domain.Record, tweet string, reference time.Time) (*domain.Digest, error) {
	if err := os.MkdirAll(p.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", p.outDir, err)
	}

	if items == nil {
		items = []domain.Record{}
	}
	digest := &domain.Digest{
		TimestampUTC: reference.UTC().Format(TimestampLayout),
		Count:        len(items),
		Items:        items,
		Tweet:        tweet,
	}

	data, err := json.MarshalIndent(digest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal %s digest: %w", name, err)
	}

	jsonPath := filepath.Join(p.outDir, name+".json")
	if err := os.WriteFile(jsonPath, append(data, '\n'), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", jsonPath, err)
	}

	textPath := filepath.Join(p.outDir, name+".txt")
	if err := os.WriteFile(textPath, []byte(tweet+"\n"), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", textPath, err)
	}

	p.log.Info("wrote digest artifacts",
		slog.String("json", jsonPath),
		slog.String("text", textPath),
		slog.Int("count", digest.Count),
	)
	return digest, nil
}

// WriteReport writes the combined markdown report that becomes the task-card
// body: both sections with counts, tweet previews, and per-record bullets.
func (p *Persister) WriteReport(users, verified *domain.Digest) error {
	path := filepath.Join(p.outDir, ReportName)
	if err := os.WriteFile(path, []byte(renderReport(users, verified)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	p.log.Info("wrote digest report", slog.String("path", path))
	return nil
}

func renderReport(users, verified *domain.Digest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "**Generated at:** %s UTC\n\n---\n\n", users.TimestampUTC)

	fmt.Fprintf(&b, "# 🚀 New to ZcashMe (last 24h)\n**Count:** %d\n\n", users.Count)
	fmt.Fprintf(&b, "### 📝 Tweet Preview\n%s\n\n### 👥 New Users\n", users.Tweet)
	writeRecordList(&b, users.Items)

	fmt.Fprintf(&b, "\n---\n\n# 🔐 Newly Verified (last 24h)\n**Count:** %d\n\n", verified.Count)
	fmt.Fprintf(&b, "### 📝 Tweet Preview\n%s\n\n### 🔎 Verification Details\n", verified.Tweet)
	writeRecordList(&b, verified.Items)

	b.WriteString("\n---\n\nThis summary was automatically generated by the **ZcashMe Promote-Bot**.\n")
	return b.String()
}

func writeRecordList(b *strings.Builder, items []domain.Record) {
	for _, item := range items {
		handle := "no handle"
		if item.Handle != "" {
			handle = "@" + item.Handle
		}
		if item.Method != "" {
			fmt.Fprintf(b, "- %s (%s) — %s\n", item.Name, handle, item.Method)
		} else {
			fmt.Fprintf(b, "- %s (%s)\n", item.Name, handle)
		}
	}
}
