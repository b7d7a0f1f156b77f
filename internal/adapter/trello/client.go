// Package trello implements the downstream task-card collaborator: one card
// per digest run, created from the persisted artifacts.
package trello

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/zcashme/promote-bot/internal/config"
)

// Client creates Trello cards. There is no retry; any non-success status
// fails the run, surfaced with the raw status and body for diagnosis.
type Client struct {
	baseURL    string
	key        string
	token      string
	listID     string
	memberID   string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from validated Trello configuration.
func NewClient(cfg config.TrelloConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		key:        cfg.Key,
		token:      cfg.Token,
		listID:     cfg.ListID,
		memberID:   cfg.MemberID,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        logger.With("adapter", "trello"),
	}
}

// Card is the subset of Trello's card response the bot cares about.
type Card struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CreateCard creates one card at the top of the configured list.
func (c *Client) CreateCard(ctx context.Context, title, desc string) (*Card, error) {
	params := url.Values{
		"key":    {c.key},
		"token":  {c.token},
		"idList": {c.listID},
		"name":   {title},
		"desc":   {desc},
		"pos":    {"top"},
	}
	if c.memberID != "" {
		params.Set("idMembers", c.memberID)
	}

	reqURL := c.baseURL + "/cards?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("trello: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("trello: create card: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("trello: read response: %w", err)
	}

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("trello: create card: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var card Card
	if err := json.Unmarshal(body, &card); err != nil {
		return nil, fmt.Errorf("trello: decode response: %w", err)
	}

	c.log.InfoContext(ctx, "created trello card",
		slog.String("title", title),
		slog.String("url", card.URL),
	)
	return &card, nil
}
