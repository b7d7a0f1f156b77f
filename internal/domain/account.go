package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a registered ZcashMe profile. Accounts are created by the
// main application; this pipeline only reads them.
type Account struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// SocialLink is one external link attached to an account. Label is free text
// entered by the profile owner ("Twitter", "Website", ...), so any matching
// against it is substring-based and case-insensitive.
type SocialLink struct {
	ID        uuid.UUID `db:"id"`
	AccountID uuid.UUID `db:"account_id"`
	Label     string    `db:"label"`
	URL       string    `db:"url"`
}
