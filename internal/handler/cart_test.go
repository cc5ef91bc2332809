package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bungalowparadise/storefront/internal/cart"
	"github.com/bungalowparadise/storefront/internal/model"
)

// memStorage is an in-memory cart.Storage for handler tests.
type memStorage struct {
	mu      sync.Mutex
	records map[string][]byte
}

func newMemStorage() *memStorage { return &memStorage{records: make(map[string][]byte)} }

func (m *memStorage) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.records[key]
	if !ok {
		return nil, cart.ErrNoRecord
	}
	return data, nil
}

func (m *memStorage) Save(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[key] = data
	return nil
}

var testGuest = model.Guest{ID: "guest-1", Email: "g@example.com", Name: "Grace"}

// newContext builds an echo context with the guest identity already on it,
// as the session middleware would leave it.
func newContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("guest", testGuest)
	return c, rec
}

func testRoom(id int, price float64) model.Room {
	return model.Room{ID: id, Name: "Room", Price: price, Type: model.RoomTypeDouble, GuestsPerRoom: 2}
}

func seededCartHandler(t *testing.T) *CartHandler {
	t.Helper()
	store := cart.NewStore(newMemStorage())
	stay := model.StayWindow{
		CheckIn:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
	}
	res := store.AddToCart(context.Background(), testGuest.ID, model.SnapshotRoom(testRoom(4, 100), stay))
	require.True(t, res.Success)
	return NewCartHandler(store)
}

func TestCartGet(t *testing.T) {
	h := seededCartHandler(t)
	c, rec := newContext(t, http.MethodGet, "/api/cart", "")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"total":200`)
	assert.Contains(t, body, `"checkIn"`)
}

func TestCartAddRejectionIsNotAnError(t *testing.T) {
	h := seededCartHandler(t)
	// Same room again: rejected as feedback, still HTTP 200.
	c, rec := newContext(t, http.MethodPost, "/api/cart/items",
		`{"room":{"id":4,"name":"Room","price":100},"checkIn":"2026-09-01","checkOut":"2026-09-03"}`)

	require.NoError(t, h.AddItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), "already in your cart")
}

func TestCartAddRequiresValidDates(t *testing.T) {
	h := seededCartHandler(t)
	c, rec := newContext(t, http.MethodPost, "/api/cart/items",
		`{"room":{"id":9},"checkIn":"2026-09-03","checkOut":"2026-09-01"}`)

	require.NoError(t, h.AddItem(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartRemoveByIndex(t *testing.T) {
	h := seededCartHandler(t)
	c, rec := newContext(t, http.MethodDelete, "/api/cart/items/0", "")
	c.SetParamNames("index")
	c.SetParamValues("0")

	require.NoError(t, h.RemoveItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":0`)
}

func TestCartClear(t *testing.T) {
	h := seededCartHandler(t)
	c, rec := newContext(t, http.MethodDelete, "/api/cart", "")

	require.NoError(t, h.Clear(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, h.Cart.Items(context.Background(), testGuest.ID))
}

func TestCartRequiresGuest(t *testing.T) {
	h := seededCartHandler(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
