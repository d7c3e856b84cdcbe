// Package stats turns raw aggregate rows (counts, sums, averages grouped by the
// store) into the summaries returned by the statistics endpoints.
package stats

import (
	"math"

	"github.com/google/uuid"
)

// TopGamesLimit is the number of games in the top-rated ranking.
const TopGamesLimit = 5

// Bucket is one row of a GROUP BY count.
type Bucket struct {
	Key   string
	Count int64
}

// Distribution converts buckets into a frequency map. It never returns nil.
func Distribution(buckets []Bucket) map[string]int64 {
	out := make(map[string]int64, len(buckets))
	for _, b := range buckets {
		out[b.Key] += b.Count
	}
	return out
}

// Percentage returns round(part/total*100), or 0 when total is not positive.
func Percentage(part, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// Round1 rounds f to one decimal place.
func Round1(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return math.Round(f*10) / 10
}

// region --- Library ---

// LibraryCounts is what the store aggregates over the games table.
type LibraryCounts struct {
	Total     int64
	Completed int64
	Genres    []Bucket
	Platforms []Bucket
}

// LibrarySummary is the library-wide statistics payload.
type LibrarySummary struct {
	TotalGames           int64            `json:"totalJuegos"`
	CompletedGames       int64            `json:"juegosCompletados"`
	CompletedPercentage  int              `json:"porcentajeCompletado"`
	GenreDistribution    map[string]int64 `json:"distribucionGeneros"`
	PlatformDistribution map[string]int64 `json:"distribucionPlataformas"`
}

// Library builds the library summary. An empty library yields zeros and empty maps.
func Library(c LibraryCounts) LibrarySummary {
	return LibrarySummary{
		TotalGames:           c.Total,
		CompletedGames:       c.Completed,
		CompletedPercentage:  Percentage(c.Completed, c.Total),
		GenreDistribution:    Distribution(c.Genres),
		PlatformDistribution: Distribution(c.Platforms),
	}
}

// endregion

// region --- Reviews ---

// GameReviewStats summarises the reviews of one game.
type GameReviewStats struct {
	TotalReviews    int64   `json:"totalReseñas"`
	AverageScore    float64 `json:"puntuacionPromedio"`
	TotalHours      float64 `json:"horasTotales"`
	Recommendations int64   `json:"recomendaciones"`
}

// TopGameRow is one group of the per-game average ranking, already joined with its game.
type TopGameRow struct {
	GameID       uuid.UUID
	Title        string
	Genre        string
	AverageScore float64
	TotalReviews int64
}

// TopGame is one entry of the top-rated ranking.
type TopGame struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"titulo"`
	Genre        string    `json:"genero"`
	AverageScore float64   `json:"puntuacionPromedio"`
	TotalReviews int64     `json:"totalResenas"`
}

// ReviewCounts is what the store aggregates over the reviews table.
type ReviewCounts struct {
	Total        int64
	AverageScore float64
	TotalHours   float64
	Recommended  int64
	Scores       []Bucket
	Difficulties []Bucket
	Top          []TopGameRow
}

// ReviewSummary is the global review statistics payload.
type ReviewSummary struct {
	TotalReviews             int64            `json:"totalResenas"`
	AverageScore             float64          `json:"puntuacionPromedio"`
	TotalHoursPlayed         float64          `json:"horasTotalesJugadas"`
	TotalRecommendations     int64            `json:"totalRecomendaciones"`
	RecommendationPercentage int              `json:"porcentajeRecomendacion"`
	ScoreDistribution        map[string]int64 `json:"distribucionPuntuaciones"`
	DifficultyDistribution   map[string]int64 `json:"distribucionDificultad"`
	TopRatedGames            []TopGame        `json:"topJuegosPuntuacion"`
}

// Reviews builds the global review summary.
func Reviews(c ReviewCounts) ReviewSummary {
	top := make([]TopGame, 0, len(c.Top))
	for i, row := range c.Top {
		if i == TopGamesLimit {
			break
		}
		top = append(top, TopGame{
			ID:           row.GameID,
			Title:        row.Title,
			Genre:        row.Genre,
			AverageScore: Round1(row.AverageScore),
			TotalReviews: row.TotalReviews,
		})
	}

	avg := 0.0
	if c.Total > 0 {
		avg = Round1(c.AverageScore)
	}

	return ReviewSummary{
		TotalReviews:             c.Total,
		AverageScore:             avg,
		TotalHoursPlayed:         c.TotalHours,
		TotalRecommendations:     c.Recommended,
		RecommendationPercentage: Percentage(c.Recommended, c.Total),
		ScoreDistribution:        Distribution(c.Scores),
		DifficultyDistribution:   Distribution(c.Difficulties),
		TopRatedGames:            top,
	}
}

// endregion
