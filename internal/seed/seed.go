// Package seed fills the database with fake games and reviews for local
// development and demos.
package seed

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gametracker/backend/internal/logging"
	"gametracker/backend/internal/models"
)

var developers = []string{
	"Rockstar Games", "Valve", "Blizzard Entertainment", "Naughty Dog", "CD Projekt Red",
	"FromSoftware", "Nintendo", "Epic Games", "Bethesda", "Square Enix",
	"Ubisoft", "Electronic Arts", "Activision", "Sony Interactive", "Microsoft Studios",
	"Kojima Productions", "BioWare", "Bungie", "Riot Games", "Mojang Studios",
}

var titles = []string{
	"Grand Theft Auto V", "The Witcher 3", "Red Dead Redemption 2", "Cyberpunk 2077",
	"Elden Ring", "The Last of Us Part II", "God of War", "Spider-Man", "Horizon Zero Dawn",
	"Ghost of Tsushima", "Death Stranding", "Control", "Hades", "Among Us",
	"Fall Guys", "Valorant", "League of Legends", "Fortnite", "Apex Legends",
	"Call of Duty: Warzone", "Minecraft", "Terraria", "Stardew Valley", "Hollow Knight",
	"Celeste", "Ori and the Will of the Wisps", "Assassin's Creed Valhalla", "FIFA 23",
	"NBA 2K23", "Rocket League", "Overwatch 2", "Destiny 2", "World of Warcraft",
}

var coverExtensions = []string{"jpg", "jpeg", "png", "webp"}

const (
	maxDescription = 500
	maxReviewText  = 1000
	minReviewText  = 10
)

// Generator produces fake rows. The same seed yields the same sequence.
type Generator struct {
	faker *gofakeit.Faker
	now   time.Time
}

// NewGenerator returns a Generator. A zero seed picks a random one.
func NewGenerator(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(seed), now: time.Now()}
}

// Game returns a valid fake game.
func (g *Generator) Game() models.Game {
	f := g.faker
	return models.Game{
		Title:         f.RandomString(titles),
		Genre:         models.Genres[f.IntRange(0, len(models.Genres)-1)],
		Platform:      models.Platforms[f.IntRange(0, len(models.Platforms)-1)],
		ReleaseYear:   f.IntRange(2010, 2024),
		Developer:     f.RandomString(developers),
		CoverImageURL: fmt.Sprintf("https://picsum.photos/400/600.%s?random=%d", f.RandomString(coverExtensions), f.IntRange(100, 999)),
		Description:   truncate(f.Paragraph(1, f.IntRange(2, 4), 12, " "), maxDescription),
		Completed:     f.Float64() < 0.3,
		CreatedAt:     f.DateRange(time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC), g.now),
	}
}

// Review returns a valid fake review of gameID. Good scores are recommended
// far more often than bad ones.
func (g *Generator) Review(gameID uuid.UUID) models.Review {
	f := g.faker
	score := f.IntRange(1, 5)
	recommendChance := 0.2
	if score >= 3 {
		recommendChance = 0.8
	}

	text := truncate(f.Paragraph(f.IntRange(1, 3), 3, 10, "\n\n"), maxReviewText)
	if utf8.RuneCountInString(text) < minReviewText {
		text = "Una experiencia de juego memorable."
	}

	return models.Review{
		GameID:         gameID,
		Score:          score,
		Text:           text,
		HoursPlayed:    float64(f.IntRange(1, 500)),
		Difficulty:     models.Difficulties[f.IntRange(0, len(models.Difficulties)-1)],
		WouldRecommend: f.Float64() < recommendChance,
		CreatedAt:      f.DateRange(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), g.now),
	}
}

// ReviewCount returns how many reviews a game gets, between 0 and max.
func (g *Generator) ReviewCount(max int) int {
	if max <= 0 {
		return 0
	}
	return g.faker.IntRange(0, max)
}

func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:limit]))
}

// Options controls a seeding run.
type Options struct {
	Games      int
	MaxReviews int
	Clean      bool
	Seed       uint64
}

// Result counts the rows a run inserted.
type Result struct {
	Games   int
	Reviews int
}

// Run inserts fake data. With Clean set, existing games and reviews are removed
// first. Everything happens in one transaction.
func Run(ctx context.Context, db *gorm.DB, opts Options) (Result, error) {
	gen := NewGenerator(opts.Seed)
	var res Result

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if opts.Clean {
			all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
			if err := all.Delete(&models.Review{}).Error; err != nil {
				return fmt.Errorf("clean reviews: %w", err)
			}
			if err := all.Delete(&models.Game{}).Error; err != nil {
				return fmt.Errorf("clean games: %w", err)
			}
			logging.Info().Msg("Existing games and reviews removed")
		}

		if opts.Games <= 0 {
			return nil
		}

		games := make([]models.Game, opts.Games)
		for i := range games {
			games[i] = gen.Game()
		}
		if err := tx.CreateInBatches(&games, 100).Error; err != nil {
			return fmt.Errorf("insert games: %w", err)
		}
		res.Games = len(games)

		var reviews []models.Review
		for _, game := range games {
			for n := gen.ReviewCount(opts.MaxReviews); n > 0; n-- {
				reviews = append(reviews, gen.Review(game.ID))
			}
		}
		if len(reviews) > 0 {
			if err := tx.Omit("Game").CreateInBatches(&reviews, 100).Error; err != nil {
				return fmt.Errorf("insert reviews: %w", err)
			}
		}
		res.Reviews = len(reviews)
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	logging.Info().
		Int("games", res.Games).
		Int("reviews", res.Reviews).
		Msg("Seed data inserted")
	return res, nil
}
