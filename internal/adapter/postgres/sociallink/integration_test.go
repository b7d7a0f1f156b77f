package sociallink_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/zcashme/promote-bot/internal/adapter/postgres/sociallink"
	"github.com/zcashme/promote-bot/internal/adapter/postgres/testhelper"
)

var base = time.Date(2100, 6, 1, 0, 0, 0, 0, time.UTC)

func TestRepo_ListByAccountIDs_Integration(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := sociallink.New(pool)
	ctx := context.Background()

	acc := testhelper.SeedAccount(t, pool, base)
	other := testhelper.SeedAccount(t, pool, base)
	website := testhelper.SeedLink(t, pool, acc.ID, "Website", "https://example.com")
	twitter := testhelper.SeedLink(t, pool, acc.ID, "Twitter", "https://x.com/alice")
	testhelper.SeedLink(t, pool, other.ID, "X", "https://x.com/bob")

	grouped, err := repo.ListByAccountIDs(ctx, []uuid.UUID{acc.ID})
	if err != nil {
		t.Fatalf("ListByAccountIDs: unexpected error: %v", err)
	}

	links := grouped[acc.ID]
	if len(links) != 2 {
		t.Fatalf("got %d links, want 2", len(links))
	}
	if links[0].ID != website.ID || links[1].ID != twitter.ID {
		t.Error("insertion order not preserved within the account")
	}
	if _, ok := grouped[other.ID]; ok {
		t.Error("unrequested account must not appear")
	}
}

func TestRepo_ListByIDs_Integration(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := sociallink.New(pool)
	ctx := context.Background()

	acc := testhelper.SeedAccount(t, pool, base)
	link := testhelper.SeedLink(t, pool, acc.ID, "Twitter", "https://x.com/alice_z")

	byID, err := repo.ListByIDs(ctx, []uuid.UUID{link.ID, uuid.New()})
	if err != nil {
		t.Fatalf("ListByIDs: unexpected error: %v", err)
	}

	if len(byID) != 1 {
		t.Fatalf("got %d links, want 1", len(byID))
	}
	if byID[link.ID].URL != "https://x.com/alice_z" {
		t.Errorf("URL = %q", byID[link.ID].URL)
	}
}
