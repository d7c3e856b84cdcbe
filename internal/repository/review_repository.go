package repository

import (
	"context"
	"fmt"

	"gametracker/backend/internal/models"
	"gametracker/backend/internal/stats"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewFilter narrows a review listing. Zero values are ignored.
type ReviewFilter struct {
	GameID         *uuid.UUID
	Score          *int
	Difficulty     models.Difficulty
	WouldRecommend *bool
	Sort           Sort
}

// ReviewRepository stores reviews.
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository returns a ReviewRepository backed by db.
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// withGame preloads the summary columns of the reviewed game.
// Reviews whose game is gone keep a nil Game.
func withGame(db *gorm.DB) *gorm.DB {
	return db.Preload("Game", func(tx *gorm.DB) *gorm.DB {
		return tx.Select("id", "title", "genre", "platform", "developer", "cover_image_url")
	})
}

// List returns every review matching f with its game summary.
func (r *ReviewRepository) List(ctx context.Context, f ReviewFilter) ([]models.Review, error) {
	q := withGame(r.db.WithContext(ctx).Model(&models.Review{}))

	if f.GameID != nil {
		q = q.Where("game_id = ?", *f.GameID)
	}
	if f.Score != nil {
		q = q.Where("score = ?", *f.Score)
	}
	if f.Difficulty != "" {
		q = q.Where("difficulty = ?", f.Difficulty)
	}
	if f.WouldRecommend != nil {
		q = q.Where("would_recommend = ?", *f.WouldRecommend)
	}

	reviews := make([]models.Review, 0)
	if err := q.Clauses(f.Sort.orderBy("reviews")).Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// FindByID returns the review with its game summary or ErrNotFound.
func (r *ReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	var review models.Review
	if err := withGame(r.db.WithContext(ctx)).First(&review, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("find review %s: %w", id, notFound(err))
	}
	return &review, nil
}

// Create inserts review and reloads it with its game summary.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	db := r.db.WithContext(ctx)
	if err := db.Omit("Game").Create(review).Error; err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	if err := withGame(db).First(review, "id = ?", review.ID).Error; err != nil {
		return fmt.Errorf("reload review %s: %w", review.ID, err)
	}
	return nil
}

// Update applies the supplied fields of patch, refreshing the update time,
// and returns the stored review.
func (r *ReviewRepository) Update(ctx context.Context, id uuid.UUID, patch models.ReviewPatch) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&review, "id = ?", id).Error; err != nil {
			return notFound(err)
		}
		// Updates with an empty map is a no-op, so the timestamp is touched explicitly.
		cols := patch.Columns()
		cols["updated_at"] = tx.NowFunc()
		if err := tx.Model(&review).Omit("Game").Updates(cols).Error; err != nil {
			return err
		}
		review = models.Review{}
		return withGame(tx).First(&review, "id = ?", id).Error
	})
	if err != nil {
		return nil, fmt.Errorf("update review %s: %w", id, err)
	}
	return &review, nil
}

// Delete removes the review or returns ErrNotFound.
func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Review{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete review %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete review %s: %w", id, ErrNotFound)
	}
	return nil
}

// GameStats summarises the reviews of one game. It returns nil when the
// game has no reviews.
func (r *ReviewRepository) GameStats(ctx context.Context, gameID uuid.UUID) (*stats.GameReviewStats, error) {
	var row struct {
		Total       int64
		Average     float64
		Hours       float64
		Recommended int64
	}
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Select(`COUNT(*) AS total,
			COALESCE(AVG(score), 0) AS average,
			COALESCE(SUM(hours_played), 0) AS hours,
			COALESCE(SUM(CASE WHEN would_recommend THEN 1 ELSE 0 END), 0) AS recommended`).
		Where("game_id = ?", gameID).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("review stats for game %s: %w", gameID, err)
	}
	if row.Total == 0 {
		return nil, nil
	}
	return &stats.GameReviewStats{
		TotalReviews:    row.Total,
		AverageScore:    row.Average,
		TotalHours:      row.Hours,
		Recommendations: row.Recommended,
	}, nil
}

// Counts aggregates the global review totals, distributions and the
// top-rated games.
func (r *ReviewRepository) Counts(ctx context.Context) (stats.ReviewCounts, error) {
	var out stats.ReviewCounts
	db := r.db.WithContext(ctx)

	var totals struct {
		Total       int64
		Average     float64
		Hours       float64
		Recommended int64
	}
	err := db.Model(&models.Review{}).
		Select(`COUNT(*) AS total,
			COALESCE(AVG(score), 0) AS average,
			COALESCE(SUM(hours_played), 0) AS hours,
			COALESCE(SUM(CASE WHEN would_recommend THEN 1 ELSE 0 END), 0) AS recommended`).
		Scan(&totals).Error
	if err != nil {
		return out, fmt.Errorf("count reviews: %w", err)
	}
	out.Total, out.AverageScore = totals.Total, totals.Average
	out.TotalHours, out.Recommended = totals.Hours, totals.Recommended

	if out.Scores, err = groupCount(db.Model(&models.Review{}), "score"); err != nil {
		return out, fmt.Errorf("count reviews by score: %w", err)
	}
	if out.Difficulties, err = groupCount(db.Model(&models.Review{}), "difficulty"); err != nil {
		return out, fmt.Errorf("count reviews by difficulty: %w", err)
	}

	out.Top = make([]stats.TopGameRow, 0, stats.TopGamesLimit)
	err = db.Table("reviews AS r").
		Select("r.game_id, g.title, g.genre, AVG(r.score) AS average_score, COUNT(*) AS total_reviews").
		Joins("JOIN games AS g ON g.id = r.game_id").
		Group("r.game_id, g.title, g.genre").
		Order("average_score DESC, total_reviews DESC, g.title ASC").
		Limit(stats.TopGamesLimit).
		Scan(&out.Top).Error
	if err != nil {
		return out, fmt.Errorf("rank games by score: %w", err)
	}
	return out, nil
}
