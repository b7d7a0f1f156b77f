package testhelper

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zcashme/promote-bot/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAccount creates an account with the given creation time.
// Returns the filled domain.Account.
func SeedAccount(t *testing.T, pool *pgxpool.Pool, createdAt time.Time) domain.Account {
	t.Helper()

	account := domain.Account{
		ID:        uuid.New(),
		Name:      "Test Account " + uniqueSuffix(),
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO accounts (id, name, created_at) VALUES ($1, $2, $3)`,
		account.ID, account.Name, account.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount: %v", err)
	}

	return account
}

// linkSeq spaces out created_at so links seeded back to back keep a stable
// relative order regardless of the database clock resolution.
var linkSeq atomic.Int64

// SeedLink attaches a social link to an account.
func SeedLink(t *testing.T, pool *pgxpool.Pool, accountID uuid.UUID, label, url string) domain.SocialLink {
	t.Helper()

	link := domain.SocialLink{
		ID:        uuid.New(),
		AccountID: accountID,
		Label:     label,
		URL:       url,
	}

	createdAt := time.Unix(0, 0).UTC().Add(time.Duration(linkSeq.Add(1)) * time.Millisecond)
	_, err := pool.Exec(context.Background(),
		`INSERT INTO social_links (id, account_id, label, url, created_at) VALUES ($1, $2, $3, $4, $5)`,
		link.ID, link.AccountID, link.Label, link.URL, createdAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLink: %v", err)
	}

	return link
}

// SeedVerification creates a completed (or pending, per verified) verification.
// linkID may be nil for verifications without a proof link. The accountID is
// not constrained by the schema, so dangling references can be seeded to
// exercise the pipeline's consistency failure.
func SeedVerification(t *testing.T, pool *pgxpool.Pool, accountID uuid.UUID, verifiedAt time.Time, method string, linkID *uuid.UUID, verified bool) domain.Verification {
	t.Helper()

	verification := domain.Verification{
		ID:         uuid.New(),
		AccountID:  accountID,
		VerifiedAt: verifiedAt.UTC().Truncate(time.Microsecond),
		Method:     method,
		LinkID:     linkID,
		Verified:   verified,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO verifications (id, account_id, verified_at, method, link_id, verified)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		verification.ID, verification.AccountID, verification.VerifiedAt,
		verification.Method, verification.LinkID, verification.Verified,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVerification: %v", err)
	}

	return verification
}
