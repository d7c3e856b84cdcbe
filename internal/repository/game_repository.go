package repository

import (
	"context"
	"fmt"
	"time"

	"gametracker/backend/internal/models"
	"gametracker/backend/internal/stats"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GameFilter narrows a game listing. Zero values are ignored; all set
// fields must match.
type GameFilter struct {
	Genre       models.Genre
	Platform    models.Platform
	Completed   *bool
	ReleaseYear *int
	Developer   string // case-insensitive substring
	Sort        Sort
}

// GameRepository stores games.
type GameRepository struct {
	db *gorm.DB
}

// NewGameRepository returns a GameRepository backed by db.
func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

// List returns every game matching f.
func (r *GameRepository) List(ctx context.Context, f GameFilter) ([]models.Game, error) {
	q := r.db.WithContext(ctx).Model(&models.Game{})

	if f.Genre != "" {
		q = q.Where("genre = ?", f.Genre)
	}
	if f.Platform != "" {
		q = q.Where("platform = ?", f.Platform)
	}
	if f.Completed != nil {
		q = q.Where("completed = ?", *f.Completed)
	}
	if f.ReleaseYear != nil {
		q = q.Where("release_year = ?", *f.ReleaseYear)
	}
	if f.Developer != "" {
		q = q.Where("developer ILIKE ?", containsPattern(f.Developer))
	}

	games := make([]models.Game, 0)
	if err := q.Clauses(f.Sort.orderBy("games")).Find(&games).Error; err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

// FindByID returns the game with the given id or ErrNotFound.
func (r *GameRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Game, error) {
	var game models.Game
	if err := r.db.WithContext(ctx).First(&game, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("find game %s: %w", id, notFound(err))
	}
	return &game, nil
}

// Create inserts game, filling its id and timestamps.
func (r *GameRepository) Create(ctx context.Context, game *models.Game) error {
	if err := r.db.WithContext(ctx).Create(game).Error; err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	return nil
}

// Update applies the supplied fields of patch and returns the stored game.
func (r *GameRepository) Update(ctx context.Context, id uuid.UUID, patch models.GamePatch) (*models.Game, error) {
	var game models.Game
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&game, "id = ?", id).Error; err != nil {
			return notFound(err)
		}
		if cols := patch.Columns(); len(cols) > 0 {
			if err := tx.Model(&game).Updates(cols).Error; err != nil {
				return err
			}
		}
		return tx.First(&game, "id = ?", id).Error
	})
	if err != nil {
		return nil, fmt.Errorf("update game %s: %w", id, err)
	}
	return &game, nil
}

// Delete removes the game and all of its reviews in one transaction.
func (r *GameRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Game{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete game %s: %w", id, err)
	}
	return nil
}

// ToggleCompleted flips the completed flag in a single statement and
// returns the updated game.
func (r *GameRepository) ToggleCompleted(ctx context.Context, id uuid.UUID) (*models.Game, error) {
	var games []models.Game
	res := r.db.WithContext(ctx).Model(&games).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"completed":  gorm.Expr("NOT completed"),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return nil, fmt.Errorf("toggle game %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 || len(games) == 0 {
		return nil, fmt.Errorf("toggle game %s: %w", id, ErrNotFound)
	}
	return &games[0], nil
}

// LibraryCounts aggregates totals and the genre and platform frequencies.
func (r *GameRepository) LibraryCounts(ctx context.Context) (stats.LibraryCounts, error) {
	var out stats.LibraryCounts
	db := r.db.WithContext(ctx)

	var totals struct {
		Total     int64
		Completed int64
	}
	err := db.Model(&models.Game{}).
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN completed THEN 1 ELSE 0 END), 0) AS completed").
		Scan(&totals).Error
	if err != nil {
		return out, fmt.Errorf("count games: %w", err)
	}
	out.Total, out.Completed = totals.Total, totals.Completed

	if out.Genres, err = groupCount(db.Model(&models.Game{}), "genre"); err != nil {
		return out, fmt.Errorf("count games by genre: %w", err)
	}
	if out.Platforms, err = groupCount(db.Model(&models.Game{}), "platform"); err != nil {
		return out, fmt.Errorf("count games by platform: %w", err)
	}
	return out, nil
}

// groupCount runs SELECT column, COUNT(*) ... GROUP BY column on q.
func groupCount(q *gorm.DB, column string) ([]stats.Bucket, error) {
	buckets := make([]stats.Bucket, 0)
	err := q.Select(fmt.Sprintf(`CAST(%s AS TEXT) AS "key", COUNT(*) AS "count"`, column)).
		Group(column).
		Order(column).
		Scan(&buckets).Error
	return buckets, err
}
