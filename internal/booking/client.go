// Package booking talks to the external reservation engine: the single
// atomic confirmation call plus the reservation list/cancel CRUD around it.
package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bungalowparadise/storefront/internal/model"
)

// ConfirmRequest is the body of the confirmation call. CheckIn/CheckOut are
// ISO-8601; RoomIDs lists every room in the cart. The engine reserves all of
// them for the window or none — the storefront carries no rollback logic.
type ConfirmRequest struct {
	UserID      string   `json:"userId"`
	UserEmail   string   `json:"userEmail"`
	CheckIn     string   `json:"checkIn"`
	CheckOut    string   `json:"checkOut"`
	RoomIDs     []int    `json:"roomIds"`
	CardNumber  string   `json:"cardNumber"`
	CardName    string   `json:"cardName"`
	ExpiryMonth string   `json:"expiryMonth"`
	ExpiryYear  string   `json:"expiryYear"`
	CVV         string   `json:"cVV"`
	GuestCount  int      `json:"guestCount,omitempty"`
	TotalAmount float64  `json:"totalAmount"`
}

// ConfirmResponse carries the engine-assigned reservation id, the confirmed
// room count and the charged amount. These values, not the client-side
// computation, are what the confirmation view displays.
type ConfirmResponse struct {
	ReservationID string  `json:"reservationId"`
	Rooms         int     `json:"rooms"`
	Amount        float64 `json:"amount"`
}

// APIError is a non-2xx reply from the engine. Message holds the error
// payload verbatim; it is shown to the guest unedited.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("booking: %d: %s", e.Status, e.Message)
}

// Engine is the outbound surface consumed by checkout and the reservation
// views. Handlers depend on this interface so tests can stub the engine.
type Engine interface {
	Confirm(ctx context.Context, req ConfirmRequest) (*ConfirmResponse, error)
	Reservations(ctx context.Context, userID string) ([]model.Reservation, error)
	Cancel(ctx context.Context, reservationID string) error
}

// Client is the HTTP Engine implementation.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient returns a Client for the given engine base URL. No timeout is
// set on the confirmation path beyond the transport default: the call is
// fire-once, await-response.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Confirm issues the single reservation-confirmation call. On a non-2xx
// reply the body text comes back inside an APIError so the UI layer can
// surface it verbatim.
func (c *Client) Confirm(ctx context.Context, confirm ConfirmRequest) (*ConfirmResponse, error) {
	body, err := json.Marshal(confirm)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/Reservation/confirm-reservation", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Message: readErrorPayload(resp.Body)}
	}
	var out ConfirmResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("booking: decode confirmation: %w", err)
	}
	return &out, nil
}

// Reservations returns the guest's reservations, newest first as the engine
// orders them.
func (c *Client) Reservations(ctx context.Context, userID string) ([]model.Reservation, error) {
	u := c.baseURL + "/api/Reservation/user/view-reservations?userId=" + url.QueryEscape(userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("booking: reservation list failed: %s", resp.Status)
	}
	var out []model.Reservation
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("booking: decode reservation list: %w", err)
	}
	return out, nil
}

// Cancel asks the engine to cancel a reservation.
func (c *Client) Cancel(ctx context.Context, reservationID string) error {
	u := c.baseURL + "/api/Reservation/cancel-reservation?reservationId=" + url.QueryEscape(reservationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: readErrorPayload(resp.Body)}
	}
	return nil
}

// readErrorPayload extracts the error text from a failed reply. Engines
// answer with either a plain-text body or a JSON string/object; whatever
// arrives is preserved for verbatim display.
func readErrorPayload(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, 8<<10))
	if err != nil || len(b) == 0 {
		return "reservation could not be confirmed"
	}
	text := strings.TrimSpace(string(b))
	// A bare JSON string unquotes cleanly; anything else stays as-is.
	var s string
	if json.Unmarshal(b, &s) == nil {
		return s
	}
	return text
}
