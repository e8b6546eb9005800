// Package mochi is a client for the Mochi flashcards HTTP API
// (https://mochi.cards/docs/api/). It covers the listing endpoints with
// bookmark-cursor pagination and single-card field updates; auth is HTTP
// basic with the API key as username and an empty password.
package mochi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/kotonoha-dev/pitchcard/pkg/ctxutil"
)

const defaultBaseURL = "https://app.mochi.cards/api/"

// cardsPageLimit is the page size requested from the cards endpoint, the
// maximum the API accepts.
const cardsPageLimit = 100

// ErrNotFound reports a 404 from the API.
var ErrNotFound = errors.New("mochi: not found")

// Client talks to the Mochi API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client against the production API.
func NewClient(apiKey string, logger *slog.Logger) *Client {
	return NewClientWithURL(defaultBaseURL, apiKey, logger)
}

// NewClientWithURL creates a Client with a custom base URL (for tests and
// config overrides). The base URL must end with a slash.
func NewClientWithURL(baseURL, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logger.With("adapter", "mochi"),
	}
}

// ListDecks fetches every deck in the account.
func (c *Client) ListDecks(ctx context.Context) ([]Deck, error) {
	return listAll[Deck](ctx, c, "decks", nil)
}

// ListTemplates fetches every template in the account.
func (c *Client) ListTemplates(ctx context.Context) ([]Template, error) {
	return listAll[Template](ctx, c, "templates", nil)
}

// ListCards fetches every card of the given deck.
func (c *Client) ListCards(ctx context.Context, deckID string) ([]Card, error) {
	query := url.Values{}
	query.Set("deck-id", deckID)
	query.Set("limit", strconv.Itoa(cardsPageLimit))
	return listAll[Card](ctx, c, "cards", query)
}

// UpdateCard posts new values for the given card fields and returns the
// updated card.
func (c *Client) UpdateCard(ctx context.Context, cardID string, fields map[string]CardField) (*Card, error) {
	body, err := json.Marshal(updateCardRequest{Fields: fields})
	if err != nil {
		return nil, fmt.Errorf("mochi: marshal update: %w", err)
	}

	reqURL := c.baseURL + "cards/" + url.PathEscape(cardID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("mochi: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var card Card
	if err := c.do(ctx, req, &card); err != nil {
		return nil, fmt.Errorf("mochi: update card %s: %w", cardID, err)
	}

	c.log.DebugContext(ctx, "card updated", runIDAttr(ctx), slog.String("card_id", cardID))
	return &card, nil
}

// listAll walks a paginated listing endpoint. Each page carries a
// bookmark cursor; paging stops at the first empty page — the final
// bookmark still points past the last document, so an extra round trip
// is unavoidable.
func listAll[T any](ctx context.Context, c *Client, endpoint string, query url.Values) ([]T, error) {
	var all []T
	bookmark := ""
	pageNum := 1

	for {
		q := url.Values{}
		for k, vs := range query {
			q[k] = vs
		}
		if bookmark != "" {
			q.Set("bookmark", bookmark)
		}

		reqURL := c.baseURL + endpoint
		if len(q) > 0 {
			reqURL += "?" + q.Encode()
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("mochi: create request: %w", err)
		}

		var pg page[T]
		if err := c.do(ctx, req, &pg); err != nil {
			return nil, fmt.Errorf("mochi: list %s page %d: %w", endpoint, pageNum, err)
		}

		c.log.DebugContext(ctx, "page fetched", runIDAttr(ctx),
			slog.String("endpoint", endpoint),
			slog.Int("page", pageNum),
			slog.Int("docs", len(pg.Docs)),
		)

		if len(pg.Docs) == 0 {
			return all, nil
		}
		all = append(all, pg.Docs...)
		bookmark = pg.Bookmark
		pageNum++
	}
}

// do authenticates and executes the request, retries once on 5xx or
// network failure, and decodes the JSON response into out.
func (c *Client) do(ctx context.Context, req *http.Request, out any) error {
	req.SetBasicAuth(c.apiKey, "")

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// doWithRetry executes the request with a single retry on 5xx or network
// errors.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "retrying request", runIDAttr(ctx),
		slog.String("url", req.URL.Path),
		slog.String("reason", reason),
	)

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	retry := req.Clone(ctx)
	if req.GetBody != nil {
		body, bodyErr := req.GetBody()
		if bodyErr != nil {
			return nil, bodyErr
		}
		retry.Body = body
	}
	return c.httpClient.Do(retry)
}

// runIDAttr exposes the bulk-update run ID carried in the context, so
// client logs correlate with the pipeline that issued them.
func runIDAttr(ctx context.Context) slog.Attr {
	if id, ok := ctxutil.RunIDFromCtx(ctx); ok {
		return slog.String("run_id", id.String())
	}
	return slog.Attr{}
}
