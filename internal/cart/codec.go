package cart

import (
	"encoding/json"
	"time"

	"github.com/bungalowparadise/storefront/internal/model"
)

// storedItem is the wire shape of one cart item at rest. Date fields are
// written as ISO-8601 text so the stored record stays readable and the
// in-memory model never holds raw strings. Decoding re-materializes them
// into time.Time values.
type storedItem struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	ImageURL      []string `json:"imageUrl"`
	Type          string   `json:"type,omitempty"`
	GuestsPerRoom int      `json:"guestsPerRoom,omitempty"`
	Bathrooms     int      `json:"bathrooms,omitempty"`
	CheckIn       string   `json:"checkIn"`
	CheckOut      string   `json:"checkOut"`
}

// encodeItems serializes cart items for storage, converting dates to
// ISO-8601 form.
func encodeItems(items []model.CartItem) ([]byte, error) {
	stored := make([]storedItem, 0, len(items))
	for _, it := range items {
		stored = append(stored, storedItem{
			ID:            it.ID,
			Name:          it.Name,
			Price:         it.Price,
			ImageURL:      it.ImageURL,
			Type:          it.Type,
			GuestsPerRoom: it.GuestsPerRoom,
			Bathrooms:     it.Bathrooms,
			CheckIn:       it.CheckIn.UTC().Format(time.RFC3339),
			CheckOut:      it.CheckOut.UTC().Format(time.RFC3339),
		})
	}
	return json.Marshal(stored)
}

// decodeItems parses a stored record back into typed cart items. Any
// malformed item or date fails the whole decode; the store treats that as
// corruption and falls back to an empty cart.
func decodeItems(data []byte) ([]model.CartItem, error) {
	var stored []storedItem
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, err
	}
	items := make([]model.CartItem, 0, len(stored))
	for _, s := range stored {
		in, err := time.Parse(time.RFC3339, s.CheckIn)
		if err != nil {
			return nil, err
		}
		out, err := time.Parse(time.RFC3339, s.CheckOut)
		if err != nil {
			return nil, err
		}
		items = append(items, model.CartItem{
			ID:            s.ID,
			Name:          s.Name,
			Price:         s.Price,
			ImageURL:      s.ImageURL,
			Type:          s.Type,
			GuestsPerRoom: s.GuestsPerRoom,
			Bathrooms:     s.Bathrooms,
			StayWindow:    model.StayWindow{CheckIn: in, CheckOut: out},
		})
	}
	return items, nil
}
