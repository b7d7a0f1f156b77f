package digest

import (
	"fmt"
	"strings"
	"time"

	"github.com/zcashme/promote-bot/internal/domain"
)

// tweetVariant fixes the wording that differs between the two record sets.
// The structure is shared: headline with count and HH:MM UTC reference time,
// labeled token list, CTA, then a closing line mentioning only records that
// actually have a handle.
type tweetVariant struct {
	headline  string
	listLabel string
	cta       string
}

var (
	userVariant = tweetVariant{
		headline:  "🚀 New to ZcashMe",
		listLabel: "Welcome:",
		cta:       "P.S. Easiest way to Zcash you is ZcashMe in your bio 😉",
	}
	verifiedVariant = tweetVariant{
		headline:  "🔐 Newly verified on ZcashMe",
		listLabel: "Verified:",
		cta:       "P.S. Secure your ZcashMe profile to unlock full trust ✓",
	}
)

// RenderUserTweet renders the new-accounts draft. Byte-deterministic for a
// given list and reference time.
func RenderUserTweet(items []domain.Record, reference time.Time) string {
	return userVariant.render(items, reference)
}

// RenderVerifiedTweet renders the new-verifications draft.
func RenderVerifiedTweet(items []domain.Record, reference time.Time) string {
	return verifiedVariant.render(items, reference)
}

func (v tweetVariant) render(items []domain.Record, reference time.Time) string {
	tokens := make([]string, len(items))
	var mentions []string
	for i, item := range items {
		tokens[i] = item.DisplayToken()
		if item.Handle != "" {
			mentions = append(mentions, "@"+item.Handle)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (last 24h, as of %s UTC): %d\n", v.headline, reference.UTC().Format("15:04"), len(items))
	fmt.Fprintf(&b, "%s %s\n\n", v.listLabel, strings.Join(tokens, ", "))
	b.WriteString(v.cta)
	b.WriteString("\n")
	b.WriteString(strings.Join(mentions, ", "))
	return b.String()
}
