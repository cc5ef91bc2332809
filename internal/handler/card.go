package handler

import (
	"errors"
	"net/http" // HTTP status codes

	"github.com/labstack/echo/v4"

	"github.com/bungalowparadise/storefront/internal/payment"
)

// CardHandler serves the guest's stored payment instrument for the
// payment-methods screen.  The vault is always queried masked here; the
// unmasked variant is reserved for the checkout orchestrator.
type CardHandler struct {
	Vault payment.Vault
}

// NewCardHandler constructs a CardHandler.
func NewCardHandler(vault payment.Vault) *CardHandler {
	if vault == nil {
		panic("nil vault passed to NewCardHandler")
	}
	return &CardHandler{Vault: vault}
}

// Get handles GET /api/card.  A guest with no stored card gets 404, which
// the client renders as the add-a-card form.
func (h *CardHandler) Get(c echo.Context) error {
	guest, ok := currentGuest(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	card, err := h.Vault.UserCard(c.Request().Context(), guest.ID, true)
	if err != nil {
		if errors.Is(err, payment.ErrCardNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no stored card"})
		}
		c.Logger().Errorf("card lookup for %s: %v", guest.ID, err)
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "could not load card"})
	}
	return c.JSON(http.StatusOK, card)
}
