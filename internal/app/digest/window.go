// Package digest implements the daily promo digest pipeline: compute the
// 24-hour window, correlate new accounts and verifications with their
// X/Twitter handles, render tweet drafts, and persist them for the
// downstream task-card step.
package digest

import (
	"fmt"
	"time"

	"github.com/zcashme/promote-bot/internal/domain"
)

// WindowLength is the fixed lookback for "new" records. It is deliberately
// not configurable; both record sets share the same window.
const WindowLength = 24 * time.Hour

// ComputeWindow derives the [since, reference) window. An empty override
// pins reference to the current UTC instant; otherwise it must parse as an
// RFC 3339 timestamp, or a zone-less "2006-01-02T15:04:05" assumed UTC.
// A malformed override yields domain.ErrInvalidInput before any query runs.
//
// The function is pure for a given override, so pinned re-runs reproduce the
// exact same window.
func ComputeWindow(override string) (since, reference time.Time, err error) {
	if override == "" {
		reference = time.Now().UTC()
		return reference.Add(-WindowLength), reference, nil
	}

	reference, err = parseOverride(override)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("window override %q: %w", override, domain.ErrInvalidInput)
	}

	reference = reference.UTC()
	return reference.Add(-WindowLength), reference, nil
}

func parseOverride(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	// Zone-less form, assumed UTC.
	return time.ParseInLocation("2006-01-02T15:04:05", s, time.UTC)
}
