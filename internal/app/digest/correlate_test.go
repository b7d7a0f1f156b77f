package digest

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/zcashme/promote-bot/internal/domain"
)

type fakeStore struct {
	accounts      []domain.Account
	names         map[uuid.UUID]string
	linksByAcc    map[uuid.UUID][]domain.SocialLink
	linksByID     map[uuid.UUID]domain.SocialLink
	verifications []domain.Verification

	accountsErr error
	linksErr    error
}

func (f *fakeStore) ListCreatedSince(ctx context.Context, since time.Time) ([]domain.Account, error) {
	if f.accountsErr != nil {
		return nil, f.accountsErr
	}
	return f.accounts, nil
}

func (f *fakeStore) NamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := map[uuid.UUID]string{}
	for _, id := range ids {
		if name, ok := f.names[id]; ok {
			names[id] = name
		}
	}
	return names, nil
}

func (f *fakeStore) ListByAccountIDs(ctx context.Context, accountIDs []uuid.UUID) (map[uuid.UUID][]domain.SocialLink, error) {
	if f.linksErr != nil {
		return nil, f.linksErr
	}
	return f.linksByAcc, nil
}

func (f *fakeStore) ListByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.SocialLink, error) {
	if f.linksErr != nil {
		return nil, f.linksErr
	}
	return f.linksByID, nil
}

func (f *fakeStore) ListCompletedSince(ctx context.Context, since time.Time) ([]domain.Verification, error) {
	return f.verifications, nil
}

func newTestCorrelator(store *fakeStore) *Correlator {
	return NewCorrelator(slog.New(slog.DiscardHandler), store, store, store)
}

var testSince = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestCorrelator_FetchNewAccounts(t *testing.T) {
	acc1, acc2 := uuid.New(), uuid.New()
	store := &fakeStore{
		accounts: []domain.Account{
			{ID: acc1, Name: "Alice"},
			{ID: acc2, Name: "Name2"},
		},
		linksByAcc: map[uuid.UUID][]domain.SocialLink{
			acc1: {
				{ID: uuid.New(), AccountID: acc1, Label: "Website", URL: "https://example.com/alice"},
				{ID: uuid.New(), AccountID: acc1, Label: "Twitter", URL: "https://x.com/handle1"},
			},
		},
	}

	records, err := newTestCorrelator(store).FetchNewAccounts(context.Background(), testSince)
	if err != nil {
		t.Fatalf("FetchNewAccounts: unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].ID != acc1 || records[1].ID != acc2 {
		t.Error("store order not preserved")
	}
	if records[0].Handle != "handle1" {
		t.Errorf("Handle = %q, want %q", records[0].Handle, "handle1")
	}
	// No matching link: record still emitted, handle absent.
	if records[1].Handle != "" {
		t.Errorf("Handle = %q, want empty", records[1].Handle)
	}
}

func TestCorrelator_FetchNewAccounts_LabelMatchIsCaseInsensitiveSubstring(t *testing.T) {
	acc := uuid.New()
	store := &fakeStore{
		accounts: []domain.Account{{ID: acc, Name: "Alice"}},
		linksByAcc: map[uuid.UUID][]domain.SocialLink{
			acc: {{ID: uuid.New(), AccountID: acc, Label: "My X profile", URL: "https://x.com/alice_z"}},
		},
	}

	records, err := newTestCorrelator(store).FetchNewAccounts(context.Background(), testSince)
	if err != nil {
		t.Fatal(err)
	}
	if records[0].Handle != "alice_z" {
		t.Errorf("Handle = %q, want %q", records[0].Handle, "alice_z")
	}
}

func TestCorrelator_FetchNewAccounts_FirstMatchingLinkWins(t *testing.T) {
	acc := uuid.New()
	store := &fakeStore{
		accounts: []domain.Account{{ID: acc, Name: "Alice"}},
		linksByAcc: map[uuid.UUID][]domain.SocialLink{
			acc: {
				// First matching link has a URL that fails extraction; the
				// correlator must NOT fall through to the second one.
				{ID: uuid.New(), AccountID: acc, Label: "Twitter", URL: "https://example.com/alice"},
				{ID: uuid.New(), AccountID: acc, Label: "Twitter", URL: "https://x.com/alice_z"},
			},
		},
	}

	records, err := newTestCorrelator(store).FetchNewAccounts(context.Background(), testSince)
	if err != nil {
		t.Fatal(err)
	}
	if records[0].Handle != "" {
		t.Errorf("Handle = %q, want empty (first matching link is authoritative)", records[0].Handle)
	}
}

func TestCorrelator_FetchNewAccounts_EmptyWindow(t *testing.T) {
	records, err := newTestCorrelator(&fakeStore{}).FetchNewAccounts(context.Background(), testSince)
	if err != nil {
		t.Fatalf("empty result must not error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestCorrelator_FetchNewAccounts_StoreError(t *testing.T) {
	boom := errors.New("store down")
	_, err := newTestCorrelator(&fakeStore{accountsErr: boom}).FetchNewAccounts(context.Background(), testSince)
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped store error, got %v", err)
	}
}

func TestCorrelator_FetchNewVerifications(t *testing.T) {
	acc1, acc2 := uuid.New(), uuid.New()
	proof := uuid.New()
	store := &fakeStore{
		names: map[uuid.UUID]string{acc1: "Alice", acc2: "Bob"},
		verifications: []domain.Verification{
			{ID: uuid.New(), AccountID: acc1, Method: "tweet", LinkID: &proof, Verified: true},
			{ID: uuid.New(), AccountID: acc2, Method: "manual", Verified: true},
		},
		linksByID: map[uuid.UUID]domain.SocialLink{
			proof: {ID: proof, AccountID: acc1, Label: "Twitter", URL: "https://x.com/alice_z"},
		},
	}

	records, err := newTestCorrelator(store).FetchNewVerifications(context.Background(), testSince)
	if err != nil {
		t.Fatalf("FetchNewVerifications: unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Handle != "alice_z" || records[0].Method != "tweet" {
		t.Errorf("record 0 = %+v", records[0])
	}
	// No proof link: handle stays absent even though the account may have
	// other social links.
	if records[1].Handle != "" {
		t.Errorf("Handle = %q, want empty without proof link", records[1].Handle)
	}
	if records[1].Name != "Bob" {
		t.Errorf("Name = %q, want %q", records[1].Name, "Bob")
	}
}

func TestCorrelator_FetchNewVerifications_MissingAccountFailsRun(t *testing.T) {
	store := &fakeStore{
		names: map[uuid.UUID]string{},
		verifications: []domain.Verification{
			{ID: uuid.New(), AccountID: uuid.New(), Method: "tweet", Verified: true},
		},
	}

	_, err := newTestCorrelator(store).FetchNewVerifications(context.Background(), testSince)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound for dangling account, got %v", err)
	}
}

func TestCorrelator_FetchNewVerifications_MissingProofLinkFailsRun(t *testing.T) {
	acc := uuid.New()
	proof := uuid.New()
	store := &fakeStore{
		names: map[uuid.UUID]string{acc: "Alice"},
		verifications: []domain.Verification{
			{ID: uuid.New(), AccountID: acc, Method: "tweet", LinkID: &proof, Verified: true},
		},
		linksByID: map[uuid.UUID]domain.SocialLink{},
	}

	_, err := newTestCorrelator(store).FetchNewVerifications(context.Background(), testSince)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound for dangling proof link, got %v", err)
	}
}

func TestCorrelator_FetchNewVerifications_EmptyWindow(t *testing.T) {
	records, err := newTestCorrelator(&fakeStore{}).FetchNewVerifications(context.Background(), testSince)
	if err != nil {
		t.Fatalf("empty result must not error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}
