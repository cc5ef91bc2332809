package handler

import (
	"net/http" // HTTP status codes
	"strconv"  // parsing query parameters
	"time"     // parsing stay dates

	"github.com/labstack/echo/v4"

	"github.com/bungalowparadise/storefront/internal/availability"
	"github.com/bungalowparadise/storefront/internal/cart"
	"github.com/bungalowparadise/storefront/internal/catalog"
	"github.com/bungalowparadise/storefront/internal/model"
)

// maxNightlyPrice is the open upper bound used when the guest sets no
// price ceiling.
const maxNightlyPrice = 100000

// RoomHandler serves the browse view: the catalog's room list narrowed by
// the guest's price, type and stay criteria.
type RoomHandler struct {
	Catalog catalog.Provider
	Cart    *cart.Store
}

// NewRoomHandler constructs a RoomHandler.
func NewRoomHandler(provider catalog.Provider, cartStore *cart.Store) *RoomHandler {
	if provider == nil || cartStore == nil {
		panic("nil dependency passed to NewRoomHandler")
	}
	return &RoomHandler{Catalog: provider, Cart: cartStore}
}

// roomView is a catalog room annotated with its relationship to the current
// guest's cart.
type roomView struct {
	model.Room
	InCart bool `json:"inCart"`
}

// List handles GET /api/room.  Query parameters minPrice, maxPrice, type,
// checkIn and checkOut narrow the result.  Once the guest's cart is
// non-empty its stay window overrides any dates in the query, so the browse
// view can never offer rooms for a different trip than the one in progress.
// A catalog outage degrades to an empty list with a notice instead of an
// error page.
func (h *RoomHandler) List(c echo.Context) error {
	filter := availability.Filter{
		MinPrice: parseFloat(c.QueryParam("minPrice"), 0),
		MaxPrice: parseFloat(c.QueryParam("maxPrice"), maxNightlyPrice),
		Type:     c.QueryParam("type"),
	}

	stay := parseStay(c.QueryParam("checkIn"), c.QueryParam("checkOut"))

	var cartDates *model.StayWindow
	if guest, ok := currentGuest(c); ok {
		if dates, found := h.Cart.CartDates(c.Request().Context(), guest.ID); found {
			cartDates = &dates
			stay = &dates
		}
	}
	filter.Stay = stay

	rooms, err := h.Catalog.Rooms(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("room list: catalog unavailable: %v", err)
		return c.JSON(http.StatusOK, echo.Map{
			"rooms":  []roomView{},
			"notice": "rooms are temporarily unavailable, please try again shortly",
		})
	}

	matched := filter.Apply(rooms)
	views := make([]roomView, 0, len(matched))
	for _, r := range matched {
		v := roomView{Room: r}
		if guest, ok := currentGuest(c); ok {
			v.InCart = h.Cart.IsRoomInCart(c.Request().Context(), guest.ID, r.ID)
		}
		views = append(views, v)
	}

	resp := echo.Map{"rooms": views}
	if cartDates != nil {
		resp["cartDates"] = cartDates
	}
	return c.JSON(http.StatusOK, resp)
}

// parseFloat parses a query parameter, falling back to def when absent or
// malformed.
func parseFloat(s string, def float64) float64 {
	if s == "" {
		return def
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return def
}

// parseStay builds a stay window from checkIn/checkOut query parameters.
// Dates arrive as calendar days (2006-01-02) or full RFC3339 instants.  An
// absent or invalid pair yields nil and disables availability narrowing.
func parseStay(checkIn, checkOut string) *model.StayWindow {
	in, okIn := parseDate(checkIn)
	out, okOut := parseDate(checkOut)
	if !okIn || !okOut {
		return nil
	}
	stay := model.StayWindow{CheckIn: in, CheckOut: out}
	if !stay.Valid() {
		return nil
	}
	return &stay
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
