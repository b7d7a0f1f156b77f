package domain

import (
	"time"

	"github.com/google/uuid"
)

// Verification records a completed identity verification for an account.
// LinkID, when set, points at the social link that was used as proof.
type Verification struct {
	ID         uuid.UUID  `db:"id"`
	AccountID  uuid.UUID  `db:"account_id"`
	VerifiedAt time.Time  `db:"verified_at"`
	Method     string     `db:"method"`
	LinkID     *uuid.UUID `db:"link_id"`
	Verified   bool       `db:"verified"`
}
