package handler

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bungalowparadise/storefront/internal/repository"
)

// Validation runs before the repository is touched, so a repo over a nil DB
// handle is safe for these rejection cases.
func reviewHandlerNoDB() *ReviewHandler {
	return NewReviewHandler(repository.NewReviewRepo(nil))
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	h := reviewHandlerNoDB()
	for _, rating := range []int{0, 6, -3} {
		c, rec := newContext(t, http.MethodPost, "/api/reviews",
			`{"comment":"a perfectly lovely stay","rating":`+strconv.Itoa(rating)+`}`)
		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "rating %d", rating)
		assert.Contains(t, rec.Body.String(), "rating must be between 1 and 5")
	}
}

func TestCreateReviewRejectsShortComment(t *testing.T) {
	h := reviewHandlerNoDB()
	c, rec := newContext(t, http.MethodPost, "/api/reviews", `{"comment":"   nice   ","rating":5}`)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "at least 10 characters")
}

func TestCreateReviewRequiresGuest(t *testing.T) {
	h := reviewHandlerNoDB()
	c, rec := newContext(t, http.MethodPost, "/api/reviews", `{"comment":"a perfectly lovely stay","rating":5}`)
	c.Set("guest", nil)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
