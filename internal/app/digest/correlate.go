package digest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zcashme/promote-bot/internal/domain"
)

// accountSource and friends are the store reads the correlator depends on.
// The postgres repositories satisfy them; tests use in-memory fakes.
type accountSource interface {
	ListCreatedSince(ctx context.Context, since time.Time) ([]domain.Account, error)
	NamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

type linkSource interface {
	ListByAccountIDs(ctx context.Context, accountIDs []uuid.UUID) (map[uuid.UUID][]domain.SocialLink, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.SocialLink, error)
}

type verificationSource interface {
	ListCompletedSince(ctx context.Context, since time.Time) ([]domain.Verification, error)
}

// Correlator joins window-selected accounts and verifications with the social
// link that yields their X/Twitter handle. It only reads; every record it
// produces is owned by the current run.
type Correlator struct {
	log           *slog.Logger
	accounts      accountSource
	links         linkSource
	verifications verificationSource
}

// NewCorrelator creates a Correlator over the given sources.
func NewCorrelator(log *slog.Logger, accounts accountSource, links linkSource, verifications verificationSource) *Correlator {
	return &Correlator{
		log:           log.With("component", "correlator"),
		accounts:      accounts,
		links:         links,
		verifications: verifications,
	}
}

// FetchNewAccounts returns one record per account created in the window, in
// store order. The handle comes from the first link whose label looks social;
// accounts without such a link, or whose link does not parse to a handle,
// still appear with an empty handle.
//
// Links for the whole window are resolved in one batched query.
func (c *Correlator) FetchNewAccounts(ctx context.Context, since time.Time) ([]domain.Record, error) {
	accounts, err := c.accounts.ListCreatedSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("fetch new accounts: %w", err)
	}

	ids := make([]uuid.UUID, len(accounts))
	for i, account := range accounts {
		ids[i] = account.ID
	}

	linksByAccount, err := c.links.ListByAccountIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch new accounts: %w", err)
	}

	records := make([]domain.Record, 0, len(accounts))
	for _, account := range accounts {
		record := domain.Record{ID: account.ID, Name: account.Name}
		if link, ok := firstSocialLink(linksByAccount[account.ID]); ok {
			record.Handle = ExtractHandle(link.URL)
		}
		records = append(records, record)
	}

	c.log.InfoContext(ctx, "correlated new accounts",
		slog.Int("count", len(records)),
		slog.Time("since", since),
	)
	return records, nil
}

// FetchNewVerifications returns one record per verification completed in the
// window, in store order, each carrying the verification method. The owning
// account must still exist: a dangling account reference fails the whole run
// with domain.ErrNotFound rather than silently skewing the count.
//
// Handle provenance is exact: only the proof link referenced by the
// verification is consulted, never the account's other links. A verification
// without a proof link has no handle.
func (c *Correlator) FetchNewVerifications(ctx context.Context, since time.Time) ([]domain.Record, error) {
	verifications, err := c.verifications.ListCompletedSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("fetch new verifications: %w", err)
	}

	accountIDs := make([]uuid.UUID, 0, len(verifications))
	linkIDs := make([]uuid.UUID, 0, len(verifications))
	for _, v := range verifications {
		accountIDs = append(accountIDs, v.AccountID)
		if v.LinkID != nil {
			linkIDs = append(linkIDs, *v.LinkID)
		}
	}

	names, err := c.accounts.NamesByIDs(ctx, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch new verifications: %w", err)
	}

	linksByID, err := c.links.ListByIDs(ctx, linkIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch new verifications: %w", err)
	}

	records := make([]domain.Record, 0, len(verifications))
	for _, v := range verifications {
		name, ok := names[v.AccountID]
		if !ok {
			return nil, fmt.Errorf("verification %s: account %s: %w", v.ID, v.AccountID, domain.ErrNotFound)
		}

		record := domain.Record{ID: v.AccountID, Name: name, Method: v.Method}
		if v.LinkID != nil {
			link, ok := linksByID[*v.LinkID]
			if !ok {
				return nil, fmt.Errorf("verification %s: proof link %s: %w", v.ID, *v.LinkID, domain.ErrNotFound)
			}
			record.Handle = ExtractHandle(link.URL)
		}
		records = append(records, record)
	}

	c.log.InfoContext(ctx, "correlated new verifications",
		slog.Int("count", len(records)),
		slog.Time("since", since),
	)
	return records, nil
}

// firstSocialLink picks the first link whose label contains "twitter" or "x"
// (case-insensitive). Labels are free text, so this is a substring match.
func firstSocialLink(links []domain.SocialLink) (domain.SocialLink, bool) {
	for _, link := range links {
		label := strings.ToLower(link.Label)
		if strings.Contains(label, "twitter") || strings.Contains(label, "x") {
			return link, true
		}
	}
	return domain.SocialLink{}, false
}
