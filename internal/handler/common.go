// Package handler contains the HTTP layer. Handlers bind request payloads,
// call into the cart, checkout and upstream clients, and translate their
// results and sentinel errors into JSON responses. No business rules live
// here.
package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/bungalowparadise/storefront/internal/middleware"
	"github.com/bungalowparadise/storefront/internal/model"
)

// currentGuest extracts the authenticated guest placed on the context by the
// session middleware. The second return is false when the middleware did not
// run or the token carried no usable identity.
func currentGuest(c echo.Context) (model.Guest, bool) {
	return middleware.CurrentGuest(c)
}
