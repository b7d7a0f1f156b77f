package domain

import "github.com/google/uuid"

// Record is one correlated digest entry: an account (or its verification)
// joined with the X/Twitter handle resolved from its social links. Records are
// built fresh on every run and exist only to be flattened into a Digest.
//
// Handle is empty unless a link with a recognized social label resolved to a
// syntactically valid handle. Method is set for verification records only.
type Record struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Handle string    `json:"handle,omitempty"`
	Method string    `json:"method,omitempty"`
}

// DisplayToken returns how the record appears in a rendered tweet list:
// "@handle" when a handle was resolved, the bare display name otherwise.
func (r Record) DisplayToken() string {
	if r.Handle != "" {
		return "@" + r.Handle
	}
	return r.Name
}

// Digest is the structured artifact written per record set and run.
// Re-running overwrites the previous digest at the same path.
type Digest struct {
	TimestampUTC string   `json:"timestamp_utc"`
	Count        int      `json:"count"`
	Items        []Record `json:"items"`
	Tweet        string   `json:"tweet"`
}
