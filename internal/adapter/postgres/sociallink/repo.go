// Package sociallink implements the read-only SocialLink repository.
// Both lookups are batched: the correlator resolves links for a whole window
// of accounts (or verifications) in a single query instead of one per row.
package sociallink

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/zcashme/promote-bot/internal/adapter/postgres"
	"github.com/zcashme/promote-bot/internal/domain"
)

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides social link reads backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new social link repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// ListByAccountIDs returns all links belonging to the given accounts, grouped
// by account id. Within one account, links keep their insertion order
// (created_at ascending), which is what "first matching link" is evaluated
// against. Accounts without links are absent from the map.
func (r *Repo) ListByAccountIDs(ctx context.Context, accountIDs []uuid.UUID) (map[uuid.UUID][]domain.SocialLink, error) {
	grouped := make(map[uuid.UUID][]domain.SocialLink, len(accountIDs))
	if len(accountIDs) == 0 {
		return grouped, nil
	}

	sql, args, err := builder.
		Select("id", "account_id", "label", "url").
		From("social_links").
		Where(squirrel.Eq{"account_id": accountIDs}).
		OrderBy("account_id", "created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build social links query: %w", err)
	}

	var links []domain.SocialLink
	if err := pgxscan.Select(ctx, r.q, &links, sql, args...); err != nil {
		return nil, postgres.MapError(err, "social links for accounts", len(accountIDs))
	}

	for _, link := range links {
		grouped[link.AccountID] = append(grouped[link.AccountID], link)
	}
	return grouped, nil
}

// ListByIDs returns the links with the given ids, keyed by id. Missing ids are
// absent from the map; the caller decides whether that is fatal.
func (r *Repo) ListByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.SocialLink, error) {
	byID := make(map[uuid.UUID]domain.SocialLink, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}

	sql, args, err := builder.
		Select("id", "account_id", "label", "url").
		From("social_links").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build social links by id query: %w", err)
	}

	var links []domain.SocialLink
	if err := pgxscan.Select(ctx, r.q, &links, sql, args...); err != nil {
		return nil, postgres.MapError(err, "social links", len(ids))
	}

	for _, link := range links {
		byID[link.ID] = link
	}
	return byID, nil
}
