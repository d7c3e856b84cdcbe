package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review represents a user review of a game in the library.
// GameID is a plain reference; the store does not enforce it.
type Review struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	GameID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	Score          int        `gorm:"not null;index:,sort:desc"`
	Text           string     `gorm:"size:1000;not null"`
	HoursPlayed    float64    `gorm:"not null"`
	Difficulty     Difficulty `gorm:"size:32;not null"`
	WouldRecommend bool       `gorm:"not null"`
	CreatedAt      time.Time  `gorm:"index:,sort:desc"`
	UpdatedAt      time.Time

	Game *Game `gorm:"foreignKey:GameID"` // Belongs to Game
}

// BeforeCreate assigns a fresh UUID unless one was set by the caller.
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// ReviewPatch carries the fields of a partial review update.
type ReviewPatch struct {
	GameID         *uuid.UUID
	Score          *int
	Text           *string
	HoursPlayed    *float64
	Difficulty     *Difficulty
	WouldRecommend *bool
}

// Columns maps the supplied fields to their column names.
func (p ReviewPatch) Columns() map[string]any {
	cols := make(map[string]any)
	if p.GameID != nil {
		cols["game_id"] = *p.GameID
	}
	if p.Score != nil {
		cols["score"] = *p.Score
	}
	if p.Text != nil {
		cols["text"] = *p.Text
	}
	if p.HoursPlayed != nil {
		cols["hours_played"] = *p.HoursPlayed
	}
	if p.Difficulty != nil {
		cols["difficulty"] = *p.Difficulty
	}
	if p.WouldRecommend != nil {
		cols["would_recommend"] = *p.WouldRecommend
	}
	return cols
}
