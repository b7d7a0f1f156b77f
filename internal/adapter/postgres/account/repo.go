// Package account implements the read-only Account repository.
// Accounts are owned by the main application; the digest job only selects.
package account

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/zcashme/promote-bot/internal/adapter/postgres"
	"github.com/zcashme/promote-bot/internal/domain"
)

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides account reads backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new account repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// ListCreatedSince returns every account with created_at >= since, ordered by
// creation time (id as tiebreaker, so the order is stable). Returns an empty
// slice, not nil, when nothing registered in the window.
func (r *Repo) ListCreatedSince(ctx context.Context, since time.Time) ([]domain.Account, error) {
	sql, args, err := builder.
		Select("id", "name", "created_at").
		From("accounts").
		Where(squirrel.GtOrEq{"created_at": since}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build accounts query: %w", err)
	}

	accounts := []domain.Account{}
	if err := pgxscan.Select(ctx, r.q, &accounts, sql, args...); err != nil {
		return nil, postgres.MapError(err, "accounts since", since)
	}

	return accounts, nil
}

// NamesByIDs returns a display-name lookup for the given account ids in one
// query. IDs that do not exist are simply absent from the map; the caller
// decides whether that is fatal.
func (r *Repo) NamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	sql, args, err := builder.
		Select("id", "name").
		From("accounts").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build account names query: %w", err)
	}

	var rows []struct {
		ID   uuid.UUID `db:"id"`
		Name string    `db:"name"`
	}
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "account names", len(ids))
	}

	for _, row := range rows {
		names[row.ID] = row.Name
	}
	return names, nil
}
