package handler

import (
	"net/http" // HTTP status codes
	"strconv"  // parsing path parameters

	"github.com/labstack/echo/v4"

	"github.com/bungalowparadise/storefront/internal/cart"
	"github.com/bungalowparadise/storefront/internal/model"
)

// CartHandler exposes the guest's cart: listing, adding a room, removing by
// position and clearing. Every route requires an authenticated guest.
type CartHandler struct {
	Cart *cart.Store
}

// NewCartHandler constructs a CartHandler.
func NewCartHandler(cartStore *cart.Store) *CartHandler {
	if cartStore == nil {
		panic("nil store passed to NewCartHandler")
	}
	return &CartHandler{Cart: cartStore}
}

// Get handles GET /api/cart.  It returns the items in insertion order, the
// shared stay window when the cart is non-empty, and the freshly computed
// total.
func (h *CartHandler) Get(c echo.Context) error {
	guest, ok := currentGuest(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx := c.Request().Context()
	items := h.Cart.Items(ctx, guest.ID)

	resp := echo.Map{
		"items": items,
		"total": h.Cart.TotalPrice(ctx, guest.ID),
	}
	if dates, found := h.Cart.CartDates(ctx, guest.ID); found {
		resp["checkIn"] = dates.CheckIn
		resp["checkOut"] = dates.CheckOut
	}
	return c.JSON(http.StatusOK, resp)
}

// addItemRequest is the payload for adding a room to the cart.  The client
// sends the room snapshot it is displaying plus the selected dates.
type addItemRequest struct {
	Room     model.Room `json:"room"`
	CheckIn  string     `json:"checkIn"`
	CheckOut string     `json:"checkOut"`
}

// AddItem handles POST /api/cart/items.  Rejections (duplicate room,
// mismatched dates) come back as 200 responses with success=false; they are
// user feedback, not request errors.
func (h *CartHandler) AddItem(c echo.Context) error {
	guest, ok := currentGuest(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body addItemRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Room.ID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room is required"})
	}
	stay := parseStay(body.CheckIn, body.CheckOut)
	if stay == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "valid checkIn and checkOut dates are required"})
	}

	result := h.Cart.AddToCart(c.Request().Context(), guest.ID,
		model.SnapshotRoom(body.Room, *stay))
	return c.JSON(http.StatusOK, result)
}

// RemoveItem handles DELETE /api/cart/items/:index.  The index addresses the
// item's position in the current ordering; an out-of-range index is a
// no-op, mirroring how the cart store treats it.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	guest, ok := currentGuest(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item index"})
	}
	h.Cart.RemoveFromCart(c.Request().Context(), guest.ID, index)
	return h.Get(c)
}

// Clear handles DELETE /api/cart.  It empties the cart entirely.
func (h *CartHandler) Clear(c echo.Context) error {
	guest, ok := currentGuest(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	h.Cart.ClearCart(c.Request().Context(), guest.ID)
	return c.NoContent(http.StatusNoContent)
}
