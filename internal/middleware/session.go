package middleware // reusable HTTP middleware for the storefront API

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5" // JWT parsing and validation
	"github.com/labstack/echo/v4"  // Echo framework middleware types

	"github.com/bungalowparadise/storefront/internal/model"
)

// contextGuestKey is where the authenticated guest identity is stored on
// the Echo context for downstream handlers.
const contextGuestKey = "guest"

// Session returns middleware that validates the Bearer access token issued
// by the external auth service and injects the guest identity carried in
// its claims into the request context. The storefront never issues tokens
// itself; it only shares the signing secret with the auth service. Identity
// fields (name, email, phone) ride along as claims so checkout can render
// them read-only without an extra lookup.
func Session(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// A valid header is "Bearer <token>"; anything else is a 401.
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			// Parse with HS256 only; a token signed any other way is
			// rejected outright.
			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
			}

			guest := guestFromClaims(claims)
			if guest.ID == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "token has no subject"})
			}
			c.Set(contextGuestKey, guest)
			// Kept as a plain string for key builders (rate limiting).
			c.Set("user_id", guest.ID)
			return next(c)
		}
	}
}

// guestFromClaims maps token claims onto the guest identity. The subject
// claim may be a string or a number depending on the auth service version.
func guestFromClaims(claims jwt.MapClaims) model.Guest {
	g := model.Guest{
		Email:    claimString(claims, "email"),
		Name:     claimString(claims, "name"),
		LastName: claimString(claims, "last_name"),
		Phone:    claimString(claims, "phone"),
	}
	switch sub := claims["sub"].(type) {
	case string:
		g.ID = sub
	case float64:
		g.ID = fmt.Sprintf("%.0f", sub)
	}
	return g
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

// CurrentGuest returns the guest identity injected by Session. Handlers
// behind the protected group can assume it is present; the boolean guards
// misuse on unprotected routes.
func CurrentGuest(c echo.Context) (model.Guest, bool) {
	g, ok := c.Get(contextGuestKey).(model.Guest)
	return g, ok
}
