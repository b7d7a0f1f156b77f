// Package verification implements the read-only Verification repository.
package verification

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/zcashme/promote-bot/internal/adapter/postgres"
	"github.com/zcashme/promote-bot/internal/domain"
)

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides verification reads backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new verification repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// ListCompletedSince returns every verification with verified_at >= since that
// actually completed (verified = true), ordered by verification time with id
// as tiebreaker. Returns an empty slice, not nil, for an empty window.
func (r *Repo) ListCompletedSince(ctx context.Context, since time.Time) ([]domain.Verification, error) {
	sql, args, err := builder.
		Select("id", "account_id", "verified_at", "method", "link_id", "verified").
		From("verifications").
		Where(squirrel.GtOrEq{"verified_at": since}).
		Where(squirrel.Eq{"verified": true}).
		OrderBy("verified_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build verifications query: %w", err)
	}

	verifications := []domain.Verification{}
	if err := pgxscan.Select(ctx, r.q, &verifications, sql, args...); err != nil {
		return nil, postgres.MapError(err, "verifications since", since)
	}

	return verifications, nil
}
