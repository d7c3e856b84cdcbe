// Package handler implements the HTTP handlers of the games and reviews API.
package handler

import (
	"context"
	"strings"

	"gametracker/backend/internal/models"
	"gametracker/backend/internal/repository"
	"gametracker/backend/internal/stats"

	"github.com/google/uuid"
)

// GameStore is the game persistence used by the handlers.
type GameStore interface {
	List(ctx context.Context, f repository.GameFilter) ([]models.Game, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Game, error)
	Create(ctx context.Context, game *models.Game) error
	Update(ctx context.Context, id uuid.UUID, patch models.GamePatch) (*models.Game, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleCompleted(ctx context.Context, id uuid.UUID) (*models.Game, error)
	LibraryCounts(ctx context.Context) (stats.LibraryCounts, error)
}

// ReviewStore is the review persistence used by the handlers.
type ReviewStore interface {
	List(ctx context.Context, f repository.ReviewFilter) ([]models.Review, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Review, error)
	Create(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, id uuid.UUID, patch models.ReviewPatch) (*models.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GameStats(ctx context.Context, gameID uuid.UUID) (*stats.GameReviewStats, error)
	Counts(ctx context.Context) (stats.ReviewCounts, error)
}

// Handler serves the /api routes.
type Handler struct {
	games   GameStore
	reviews ReviewStore
}

// New returns a Handler over the given stores.
func New(games GameStore, reviews ReviewStore) *Handler {
	return &Handler{games: games, reviews: reviews}
}

// trimAll trims every non-nil string in place.
func trimAll(fields ...*string) {
	for _, f := range fields {
		if f != nil {
			*f = strings.TrimSpace(*f)
		}
	}
}
