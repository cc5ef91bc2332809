package model

// CartItem is a room snapshot taken at add-time together with the stay
// window it was added for. The snapshot is deliberate: a later catalog price
// change must not silently reprice a cart the guest has already reviewed.
//
// Fields:
//  ID            – room identifier (unique within a cart).
//  Name          – room display name.
//  Price         – nightly price at add-time.
//  ImageURL      – image references carried over for the cart view.
//  Type          – room type label.
//  GuestsPerRoom – guest capacity, summed for the checkout guest-count guard.
//  Bathrooms     – bathroom count.
//  StayWindow    – the shared trip window (embedded, so check-in/check-out
//                  serialize flat on the item); every item in one cart
//                  carries the same days.
type CartItem struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	ImageURL      []string `json:"imageUrl"`
	Type          string   `json:"type,omitempty"`
	GuestsPerRoom int      `json:"guestsPerRoom,omitempty"`
	Bathrooms     int      `json:"bathrooms,omitempty"`
	StayWindow
}

// Total returns the item price over its stay: nightly price times nights.
func (i CartItem) Total() float64 {
	return i.Price * float64(i.Nights())
}

// SnapshotRoom builds a cart item from a catalog room and a stay window.
func SnapshotRoom(r Room, stay StayWindow) CartItem {
	return CartItem{
		ID:            r.ID,
		Name:          r.Name,
		Price:         r.Price,
		ImageURL:      r.ImageURL,
		Type:          r.Type,
		GuestsPerRoom: r.GuestsPerRoom,
		Bathrooms:     r.Bathrooms,
		StayWindow:    stay,
	}
}
