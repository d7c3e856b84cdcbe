package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlaceholderCoverURL is stored when a game is created without a cover image.
const PlaceholderCoverURL = "https://via.placeholder.com/400x600?text=Sin+Imagen"

// MinReleaseYear is the earliest release year a game may have.
const MinReleaseYear = 1970

// MaxReleaseYear returns the latest accepted release year (current year + 2).
func MaxReleaseYear() int {
	return time.Now().Year() + 2
}

// Game represents a game in the user's library.
type Game struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title         string    `gorm:"size:100;not null"`
	Genre         Genre     `gorm:"size:32;not null;index"`
	Platform      Platform  `gorm:"size:32;not null;index"`
	ReleaseYear   int       `gorm:"not null;index:,sort:desc"`
	Developer     string    `gorm:"size:50;not null"`
	CoverImageURL string    `gorm:"size:2048;not null"`
	Description   string    `gorm:"size:500;not null"`
	Completed     bool      `gorm:"not null;default:false;index"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}

// BeforeCreate assigns a fresh UUID unless one was set by the caller.
func (g *Game) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.CoverImageURL == "" {
		g.CoverImageURL = PlaceholderCoverURL
	}
	return nil
}

// GamePatch carries the fields of a partial game update. Nil means "not supplied".
type GamePatch struct {
	Title         *string
	Genre         *Genre
	Platform      *Platform
	ReleaseYear   *int
	Developer     *string
	CoverImageURL *string
	Description   *string
	Completed     *bool
}

// Columns maps the supplied fields to their column names.
func (p GamePatch) Columns() map[string]any {
	cols := make(map[string]any)
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Genre != nil {
		cols["genre"] = *p.Genre
	}
	if p.Platform != nil {
		cols["platform"] = *p.Platform
	}
	if p.ReleaseYear != nil {
		cols["release_year"] = *p.ReleaseYear
	}
	if p.Developer != nil {
		cols["developer"] = *p.Developer
	}
	if p.CoverImageURL != nil {
		cols["cover_image_url"] = *p.CoverImageURL
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.Completed != nil {
		cols["completed"] = *p.Completed
	}
	return cols
}
