// Package catalog fetches room records from the upstream room catalog
// service. The storefront never owns room data; it browses what the catalog
// publishes, including each room's reserved date ranges when the richer
// catalog variant supplies them.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/bungalowparadise/storefront/internal/model"
)

// Provider is the read surface the browse view composes with the
// availability filter and the cart store.
type Provider interface {
	Rooms(ctx context.Context) ([]model.Room, error)
}

// Client is an HTTP Provider talking to the catalog's REST endpoint.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient returns a Client for the given catalog base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Rooms fetches the full room list. Callers on the browse path degrade a
// failure to an empty result with a notice rather than surfacing it.
func (c *Client) Rooms(ctx context.Context) ([]model.Room, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/room", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog: room list failed: %s", resp.Status)
	}
	var rooms []model.Room
	if err := json.NewDecoder(resp.Body).Decode(&rooms); err != nil {
		return nil, fmt.Errorf("catalog: decode room list: %w", err)
	}
	return rooms, nil
}
