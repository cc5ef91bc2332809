package handler

import (
	"errors"
	"net/http" // HTTP status codes
	"time"     // cancellation cutoff check

	"github.com/labstack/echo/v4"

	"github.com/bungalowparadise/storefront/internal/booking"
)

// ReservationHandler lets guests review and cancel their reservations.  The
// reservation records live in the reservation engine; this handler proxies
// reads and enforces the cancellation cutoff before forwarding a cancel.
type ReservationHandler struct {
	Engine booking.Engine
}

// NewReservationHandler constructs a ReservationHandler.
func NewReservationHandler(engine booking.Engine) *ReservationHandler {
	if engine == nil {
		panic("nil engine passed to NewReservationHandler")
	}
	return &ReservationHandler{Engine: engine}
}

// List handles GET /api/reservations.  It returns the guest's reservations
// with a cancellable flag computed against the current time, so the client
// can render the cancel button without re-deriving the cutoff rule.
func (h *ReservationHandler) List(c echo.Context) error {
	guest, ok := currentGuest(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	reservations, err := h.Engine.Reservations(c.Request().Context(), guest.ID)
	if err != nil {
		c.Logger().Errorf("reservation list for %s: %v", guest.ID, err)
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "could not load reservations"})
	}
	now := time.Now().UTC()
	items := make([]echo.Map, 0, len(reservations))
	for _, r := range reservations {
		items = append(items, echo.Map{
			"reservation": r,
			"cancellable": r.CancellableNow(now),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Cancel handles PUT /api/reservations/:id/cancel.  The reservation must
// belong to the guest and still be inside the cancellation window; past or
// already-cancelled stays return 409.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	guest, ok := currentGuest(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	resID := c.Param("id")
	if resID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	ctx := c.Request().Context()

	// Ownership and cutoff are checked against the guest's own list; the
	// engine has no per-storefront ACL of its own.
	reservations, err := h.Engine.Reservations(ctx, guest.ID)
	if err != nil {
		c.Logger().Errorf("reservation lookup for %s: %v", guest.ID, err)
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "could not load reservations"})
	}
	found := false
	for _, r := range reservations {
		if r.ReservationID != resID {
			continue
		}
		found = true
		if !r.CancellableNow(time.Now().UTC()) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "this reservation can no longer be cancelled"})
		}
		break
	}
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	}

	if err := h.Engine.Cancel(ctx, resID); err != nil {
		var apiErr *booking.APIError
		if errors.As(err, &apiErr) {
			return c.JSON(apiErr.Status, echo.Map{"error": apiErr.Message})
		}
		c.Logger().Errorf("cancel %s: %v", resID, err)
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "cancellation failed, please try again"})
	}
	return c.NoContent(http.StatusNoContent)
}
