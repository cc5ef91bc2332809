package handler

import (
	"errors"
	"net/http" // HTTP status codes
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bungalowparadise/storefront/internal/checkout"
	"github.com/bungalowparadise/storefront/internal/model"
)

// CheckoutHandler drives the checkout flow over the orchestrator: opening a
// session, navigating between steps and submitting the confirmation.
type CheckoutHandler struct {
	Checkout *checkout.Orchestrator
}

// NewCheckoutHandler constructs a CheckoutHandler.
func NewCheckoutHandler(orc *checkout.Orchestrator) *CheckoutHandler {
	if orc == nil {
		panic("nil orchestrator passed to NewCheckoutHandler")
	}
	return &CheckoutHandler{Checkout: orc}
}

// sessionView is the session as rendered to the client.  The stored card is
// shown masked and the CVV never leaves the server.
type sessionView struct {
	ID         string          `json:"id"`
	Guest      model.Guest     `json:"guest"`
	Card       *maskedCardView `json:"card,omitempty"`
	CardLocked bool            `json:"cardLocked"`
	Step       checkout.Step   `json:"step"`
	LastError  string          `json:"lastError,omitempty"`
	Result     *checkout.Result `json:"result,omitempty"`
}

type maskedCardView struct {
	CardNumber  string `json:"cardNumber"`
	CardHolder  string `json:"cardHolder"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
	CardType    string `json:"cardType,omitempty"`
}

func viewOf(sess *checkout.Session) sessionView {
	v := sessionView{
		ID:         sess.ID,
		Guest:      sess.Guest,
		CardLocked: sess.CardLocked,
		Step:       sess.Step,
		LastError:  sess.LastError,
		Result:     sess.Result,
	}
	if sess.Card != nil {
		v.Card = &maskedCardView{
			CardNumber:  maskNumber(sess.Card.CardNumber),
			CardHolder:  sess.Card.CardHolder,
			ExpiryMonth: sess.Card.ExpiryMonth,
			ExpiryYear:  sess.Card.ExpiryYear,
			CardType:    sess.Card.CardType,
		}
	}
	return v
}

// maskNumber keeps only the last four digits visible.
func maskNumber(number string) string {
	digits := strings.ReplaceAll(number, " ", "")
	if len(digits) <= 4 {
		return digits
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// Begin handles POST /api/checkout/session.  An empty cart is rejected
// before any upstream call is made.
func (h *CheckoutHandler) Begin(c echo.Context) error {
	guest, ok := currentGuest(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	sess, err := h.Checkout.Begin(c.Request().Context(), guest)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "your cart is empty"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not start checkout"})
	}
	return c.JSON(http.StatusCreated, viewOf(sess))
}

// Get handles GET /api/checkout/session/:id.
func (h *CheckoutHandler) Get(c echo.Context) error {
	guest, ok := currentGuest(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	sess, err := h.Checkout.Session(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "checkout session not found"})
	}
	if sess.Guest.ID != guest.ID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	return c.JSON(http.StatusOK, viewOf(sess))
}

// advanceRequest names the step the client wants to show next.
type advanceRequest struct {
	Step checkout.Step `json:"step"`
}

// Advance handles POST /api/checkout/session/:id/advance.  Movement is free
// between the guest-info and payment steps until a submission completes.
func (h *CheckoutHandler) Advance(c echo.Context) error {
	guest, ok := currentGuest(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body advanceRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if owned, err := h.ownedSession(c.Param("id"), guest.ID); err != nil {
		return err2response(c, err)
	} else if !owned {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	sess, err := h.Checkout.Advance(c.Param("id"), body.Step)
	if err != nil {
		return err2response(c, err)
	}
	return c.JSON(http.StatusOK, viewOf(sess))
}

// Confirm handles POST /api/checkout/session/:id/confirm.  A rejected
// submission keeps the session on the payment step with the engine's error
// text attached; the response is still 200 because the session itself is in
// a valid, resubmittable state.
func (h *CheckoutHandler) Confirm(c echo.Context) error {
	guest, ok := currentGuest(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body checkout.ConfirmInput
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if owned, err := h.ownedSession(c.Param("id"), guest.ID); err != nil {
		return err2response(c, err)
	} else if !owned {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	sess, err := h.Checkout.Confirm(c.Request().Context(), c.Param("id"), body)
	if err != nil {
		return err2response(c, err)
	}
	return c.JSON(http.StatusOK, viewOf(sess))
}

// ownedSession reports whether the session belongs to the given guest.
func (h *CheckoutHandler) ownedSession(id, guestID string) (bool, error) {
	sess, err := h.Checkout.Session(id)
	if err != nil {
		return false, err
	}
	return sess.Guest.ID == guestID, nil
}

// err2response maps orchestrator sentinels and validation failures to HTTP
// responses.
func err2response(c echo.Context, err error) error {
	var vErr *checkout.ValidationError
	switch {
	case errors.Is(err, checkout.ErrSessionNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "checkout session not found"})
	case errors.Is(err, checkout.ErrEmptyCart):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "your cart is empty"})
	case errors.Is(err, checkout.ErrInFlight):
		return c.JSON(http.StatusConflict, echo.Map{"error": "a confirmation is already in progress"})
	case errors.As(err, &vErr):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": vErr.Message})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "checkout failed"})
	}
}
