// Package payment reads the guest's stored card from the external card
// vault. The vault is an opaque REST resource; at most one instrument
// exists per guest and replacing it happens on the payment-methods screen,
// not here.
package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bungalowparadise/storefront/internal/model"
)

// ErrCardNotFound signals that the guest has no stored card. Checkout
// treats this as the first-time-entry path, not a failure.
var ErrCardNotFound = errors.New("payment: no stored card")

// Vault is the lookup surface checkout depends on.
type Vault interface {
	UserCard(ctx context.Context, userID string, masked bool) (*model.Card, error)
}

// Client is the HTTP Vault implementation.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient returns a Client for the given vault base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// UserCard fetches the guest's stored card. masked=false is only used on
// the checkout prefill path; everywhere else the masked form is requested.
func (c *Client) UserCard(ctx context.Context, userID string, masked bool) (*model.Card, error) {
	u := c.baseURL + "/api/CardDetail/user-card?userId=" + url.QueryEscape(userID) +
		"&masked=" + strconv.FormatBool(masked)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusNoContent {
		return nil, ErrCardNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("payment: card lookup failed: %s", resp.Status)
	}
	var card model.Card
	if err := json.NewDecoder(resp.Body).Decode(&card); err != nil {
		return nil, fmt.Errorf("payment: decode card: %w", err)
	}
	if card.CardNumber == "" {
		return nil, ErrCardNotFound
	}
	return &card, nil
}
