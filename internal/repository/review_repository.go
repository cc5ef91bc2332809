// Package repository contains data access logic separated from HTTP handlers.
// This file defines repository methods for guest reviews, the only entity the
// storefront persists in MySQL itself; rooms and reservations live behind the
// catalog and reservation services.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to define custom error values
	"time"

	"github.com/bungalowparadise/storefront/internal/model"
)

// ErrReviewNotFound is returned when a review cannot be found in the DB.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepo encapsulates all database queries related to guest reviews.
// It depends on a sql.DB connection which should be configured elsewhere.
type ReviewRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewReviewRepo constructs a ReviewRepo with the provided DB handle.  This
// function allows dependency injection of the database in tests and at
// startup.
func NewReviewRepo(db *sql.DB) *ReviewRepo {
	return &ReviewRepo{db: db}
}

// Create inserts a new review into the database.  On success the review's
// ID and CreatedAt fields are populated so callers receive the row exactly
// as stored.
func (r *ReviewRepo) Create(ctx context.Context, rv *model.Review) error {
	const qInsert = "INSERT INTO reviews (user_id, comment, rating) VALUES (?, ?, ?)"
	res, err := r.db.ExecContext(ctx, qInsert, rv.UserID, rv.Comment, rv.Rating)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rv.ID = uint64(id)

	const qSelect = "SELECT created_at FROM reviews WHERE id = ?"
	var created time.Time
	if err := r.db.QueryRowContext(ctx, qSelect, rv.ID).Scan(&created); err != nil {
		return err
	}
	rv.CreatedAt = created
	return nil
}

// GetByID fetches a single review by its ID.  It returns ErrReviewNotFound
// when no row matches.
func (r *ReviewRepo) GetByID(ctx context.Context, id uint64) (*model.Review, error) {
	const q = "SELECT id, user_id, comment, rating, created_at FROM reviews WHERE id = ?"
	var rv model.Review
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&rv.ID, &rv.UserID, &rv.Comment, &rv.Rating, &rv.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &rv, nil
}

// ListRecent returns the most recent reviews, newest first, capped at limit.
// A non-positive limit falls back to 50.
func (r *ReviewRepo) ListRecent(ctx context.Context, limit int) ([]*model.Review, error) {
	if limit <= 0 {
		limit = 50
	}
	const q = `SELECT id, user_id, comment, rating, created_at
	           FROM reviews ORDER BY created_at DESC, id DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Review
	for rows.Next() {
		rv := new(model.Review)
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.Comment, &rv.Rating, &rv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByUser returns all reviews written by a single guest ordered by id.
func (r *ReviewRepo) ListByUser(ctx context.Context, userID string) ([]*model.Review, error) {
	const q = `SELECT id, user_id, comment, rating, created_at
	           FROM reviews WHERE user_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Review
	for rows.Next() {
		rv := new(model.Review)
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.Comment, &rv.Rating, &rv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
