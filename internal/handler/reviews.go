package handler

import (
	"net/http" // HTTP status codes
	"strings"  // comment validation

	"github.com/labstack/echo/v4"

	"github.com/bungalowparadise/storefront/internal/model"
	"github.com/bungalowparadise/storefront/internal/repository"
)

// minCommentLen is the shortest comment accepted for a review.
const minCommentLen = 10

// ReviewHandler stores and lists guest reviews.  Reviews are the one entity
// the storefront persists itself rather than proxying to an upstream.
type ReviewHandler struct {
	Reviews *repository.ReviewRepo
}

// NewReviewHandler constructs a ReviewHandler.
func NewReviewHandler(repo *repository.ReviewRepo) *ReviewHandler {
	if repo == nil {
		panic("nil repository passed to NewReviewHandler")
	}
	return &ReviewHandler{Reviews: repo}
}

// List handles GET /api/reviews.  It returns the most recent reviews,
// newest first.  The route is public so prospective guests can read reviews
// before signing in.
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.Reviews.ListRecent(c.Request().Context(), 50)
	if err != nil {
		c.Logger().Errorf("review list: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load reviews"})
	}
	if reviews == nil {
		reviews = []*model.Review{}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": reviews})
}

// createReviewRequest is the submission payload for a new review.
type createReviewRequest struct {
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

// Create handles POST /api/reviews.  Ratings run 1 to 5 and comments must
// carry at least a sentence's worth of text.
func (h *ReviewHandler) Create(c echo.Context) error {
	guest, ok := currentGuest(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body createReviewRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Rating < 1 || body.Rating > 5 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating must be between 1 and 5"})
	}
	comment := strings.TrimSpace(body.Comment)
	if len(comment) < minCommentLen {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "comment must be at least 10 characters"})
	}

	review := &model.Review{
		UserID:  guest.ID,
		Comment: comment,
		Rating:  body.Rating,
	}
	if err := h.Reviews.Create(c.Request().Context(), review); err != nil {
		c.Logger().Errorf("review create for %s: %v", guest.ID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not save review"})
	}
	return c.JSON(http.StatusCreated, review)
}
