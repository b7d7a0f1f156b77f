package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/zcashme/promote-bot/internal/domain"
)

// MapError converts pgx errors to domain errors, wrapping them with the
// entity and key for diagnosis. context.DeadlineExceeded and context.Canceled
// are NOT mapped; they pass through.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}

	return fmt.Errorf("%s %v: %w", entity, key, err)
}
