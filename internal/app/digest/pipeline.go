package digest

import (
	"context"
	"log/slog"
	"time"

	"github.com/zcashme/promote-bot/internal/domain"
)

// Result carries everything one run produced. When the pipeline runs in
// preview mode the digests are built but nothing is written.
type Result struct {
	Users    *domain.Digest
	Verified *domain.Digest
}

// Pipeline is the strictly sequential digest run: correlate accounts, then
// verifications, render both drafts, then persist (accounts first). A nil
// persister means preview mode.
type Pipeline struct {
	log        *slog.Logger
	correlator *Correlator
	persister  *Persister
}

// NewPipeline wires a pipeline. Pass a nil persister for preview mode.
func NewPipeline(log *slog.Logger, correlator *Correlator, persister *Persister) *Pipeline {
	return &Pipeline{
		log:        log.With("component", "pipeline"),
		correlator: correlator,
		persister:  persister,
	}
}

// Run executes one digest for the [since, reference) window. The first error
// aborts the run; there is no partial recovery or retry.
func (p *Pipeline) Run(ctx context.Context, since, reference time.Time) (*Result, error) {
	users, err := p.correlator.FetchNewAccounts(ctx, since)
	if err != nil {
		return nil, err
	}
	verified, err := p.correlator.FetchNewVerifications(ctx, since)
	if err != nil {
		return nil, err
	}

	userTweet := RenderUserTweet(users, reference)
	verifiedTweet := RenderVerifiedTweet(verified, reference)

	result := &Result{
		Users:    buildDigest(users, userTweet, reference),
		Verified: buildDigest(verified, verifiedTweet, reference),
	}

	if p.persister == nil {
		p.log.InfoContext(ctx, "preview run, skipping artifacts")
		return result, nil
	}

	if result.Users, err = p.persister.Persist(NewUsersName, users, userTweet, reference); err != nil {
		return nil, err
	}
	if result.Verified, err = p.persister.Persist(NewVerifiedName, verified, verifiedTweet, reference); err != nil {
		return nil, err
	}
	if err := p.persister.WriteReport(result.Users, result.Verified); err != nil {
		return nil, err
	}

	return result, nil
}

func buildDigest(items []domain.Record, tweet string, reference time.Time) *domain.Digest {
	if items == nil {
		items = []domain.Record{}
	}
	return &domain.Digest{
		TimestampUTC: reference.UTC().Format(TimestampLayout),
		Count:        len(items),
		Items:        items,
		Tweet:        tweet,
	}
}
