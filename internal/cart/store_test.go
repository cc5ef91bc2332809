package cart

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bungalowparadise/storefront/internal/model"
)

func setupStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(NewRedisStorage(client)), mr
}

func stay(in, out int) model.StayWindow {
	return model.StayWindow{
		CheckIn:  time.Date(2026, time.October, in, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, time.October, out, 0, 0, 0, 0, time.UTC),
	}
}

func item(id int, price float64, w model.StayWindow) model.CartItem {
	return model.CartItem{ID: id, Name: "Room", Price: price, StayWindow: w}
}

func TestAddToCart_DuplicateRoomRejected(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	res := s.AddToCart(ctx, "u1", item(1, 100, stay(1, 3)))
	require.True(t, res.Success)

	res = s.AddToCart(ctx, "u1", item(1, 100, stay(1, 3)))
	assert.False(t, res.Success)
	assert.Equal(t, msgAlreadyInCart, res.Message)
	assert.Len(t, s.Items(ctx, "u1"), 1)
}

func TestAddToCart_SingleTripInvariant(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.True(t, s.AddToCart(ctx, "u1", item(1, 100, stay(1, 3))).Success)

	res := s.AddToCart(ctx, "u1", item(2, 150, stay(2, 4)))
	assert.False(t, res.Success)
	assert.Equal(t, msgDatesMismatch, res.Message)

	// Same calendar days with a different time-of-day still match.
	w := stay(1, 3)
	w.CheckIn = w.CheckIn.Add(14 * time.Hour)
	res = s.AddToCart(ctx, "u1", item(3, 200, w))
	assert.True(t, res.Success)

	items := s.Items(ctx, "u1")
	require.Len(t, items, 2)
	for _, it := range items {
		assert.True(t, it.SameDays(items[0].StayWindow))
	}
}

func TestAddToCart_CartsAreIndependentPerGuest(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.True(t, s.AddToCart(ctx, "alice", item(1, 100, stay(1, 3))).Success)
	require.True(t, s.AddToCart(ctx, "bob", item(1, 100, stay(5, 9))).Success)

	assert.Len(t, s.Items(ctx, "alice"), 1)
	assert.Len(t, s.Items(ctx, "bob"), 1)
}

func TestCartDates(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	_, ok := s.CartDates(ctx, "u1")
	assert.False(t, ok, "empty cart has no dates")

	require.True(t, s.AddToCart(ctx, "u1", item(1, 100, stay(1, 3))).Success)
	w, ok := s.CartDates(ctx, "u1")
	require.True(t, ok)
	assert.True(t, w.SameDays(stay(1, 3)))
}

func TestTotalPrice_Monotonic(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	assert.Zero(t, s.TotalPrice(ctx, "u1"))

	require.True(t, s.AddToCart(ctx, "u1", item(1, 100, stay(1, 3))).Success)
	after1 := s.TotalPrice(ctx, "u1")
	assert.Equal(t, 200.0, after1) // 100/night * 2 nights

	require.True(t, s.AddToCart(ctx, "u1", item(2, 150, stay(1, 3))).Success)
	after2 := s.TotalPrice(ctx, "u1")
	assert.Equal(t, 500.0, after2)
	assert.Greater(t, after2, after1)

	s.RemoveFromCart(ctx, "u1", 1)
	assert.Less(t, s.TotalPrice(ctx, "u1"), after2)
}

func TestRemoveFromCart_ByIndex(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.True(t, s.AddToCart(ctx, "u1", item(1, 100, stay(1, 3))).Success)
	require.True(t, s.AddToCart(ctx, "u1", item(2, 150, stay(1, 3))).Success)
	require.True(t, s.AddToCart(ctx, "u1", item(3, 200, stay(1, 3))).Success)

	s.RemoveFromCart(ctx, "u1", 1)
	items := s.Items(ctx, "u1")
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 3, items[1].ID)

	// Out-of-range removal is a no-op.
	s.RemoveFromCart(ctx, "u1", 99)
	s.RemoveFromCart(ctx, "u1", -1)
	assert.Len(t, s.Items(ctx, "u1"), 2)
}

func TestClearCart(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.True(t, s.AddToCart(ctx, "u1", item(1, 100, stay(1, 3))).Success)
	s.ClearCart(ctx, "u1")
	assert.Empty(t, s.Items(ctx, "u1"))
	assert.False(t, s.IsRoomInCart(ctx, "u1", 1))
}

func TestPersistence_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	storage := NewRedisStorage(client)
	ctx := context.Background()

	first := NewStore(storage)
	require.True(t, first.AddToCart(ctx, "u1", item(1, 100, stay(1, 3))).Success)
	require.True(t, first.AddToCart(ctx, "u1", item(2, 150, stay(1, 3))).Success)

	// A fresh store hydrates the same cart from the shared record.
	second := NewStore(storage)
	items := second.Items(ctx, "u1")
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 2, items[1].ID)
	assert.Equal(t, 150.0, items[1].Price)
	assert.True(t, items[0].SameDays(stay(1, 3)), "dates survive the round trip at day granularity")
}

func TestHydrate_CorruptRecordResetsToEmptyCart(t *testing.T) {
	s, mr := setupStore(t)
	ctx := context.Background()

	mr.Set(Key("u1"), "{not json")
	assert.Empty(t, s.Items(ctx, "u1"))

	// The store stays usable after recovery.
	assert.True(t, s.AddToCart(ctx, "u1", item(1, 100, stay(1, 3))).Success)
}

func TestHydrate_ReadOnlyAccessNeverOverwritesStorage(t *testing.T) {
	s, mr := setupStore(t)
	ctx := context.Background()

	stored, err := encodeItems([]model.CartItem{item(7, 100, stay(1, 3))})
	require.NoError(t, err)
	mr.Set(Key("u1"), string(stored))

	// Reads hydrate but must not persist; the stored record is untouched.
	_ = s.TotalPrice(ctx, "u1")
	_, _ = s.CartDates(ctx, "u1")
	got, err := mr.Get(Key("u1"))
	require.NoError(t, err)
	assert.JSONEq(t, string(stored), got)

	items := s.Items(ctx, "u1")
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].ID)
}
