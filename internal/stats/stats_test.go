package stats

import (
	"math"
	"testing"

	"github.com/google/uuid"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		part, total int64
		want        int
	}{
		{0, 0, 0},
		{3, 0, 0},
		{0, 4, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{5, 5, 100},
	}
	for _, tt := range tests {
		if got := Percentage(tt.part, tt.total); got != tt.want {
			t.Errorf("Percentage(%d, %d) = %d, want %d", tt.part, tt.total, got, tt.want)
		}
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{3.333, 3.3},
		{3.36, 3.4},
		{4, 4},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}
	for _, tt := range tests {
		if got := Round1(tt.in); got != tt.want {
			t.Errorf("Round1(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLibrary_Empty(t *testing.T) {
	got := Library(LibraryCounts{})

	if got.TotalGames != 0 || got.CompletedGames != 0 || got.CompletedPercentage != 0 {
		t.Errorf("Library(empty) = %+v, want zeros", got)
	}
	if got.GenreDistribution == nil || got.PlatformDistribution == nil {
		t.Error("distributions should be empty maps, not nil")
	}
}

func TestLibrary_Counts(t *testing.T) {
	got := Library(LibraryCounts{
		Total:     4,
		Completed: 1,
		Genres:    []Bucket{{Key: "RPG", Count: 3}, {Key: "Lucha", Count: 1}},
		Platforms: []Bucket{{Key: "PC", Count: 4}},
	})

	if got.CompletedPercentage != 25 {
		t.Errorf("CompletedPercentage = %d, want 25", got.CompletedPercentage)
	}
	if got.GenreDistribution["RPG"] != 3 || got.GenreDistribution["Lucha"] != 1 {
		t.Errorf("GenreDistribution = %v", got.GenreDistribution)
	}
	if got.PlatformDistribution["PC"] != 4 {
		t.Errorf("PlatformDistribution = %v", got.PlatformDistribution)
	}
}

func TestReviews_Empty(t *testing.T) {
	got := Reviews(ReviewCounts{AverageScore: math.NaN()})

	if got.AverageScore != 0 || got.RecommendationPercentage != 0 {
		t.Errorf("Reviews(empty) = %+v, want zeros", got)
	}
	if got.TopRatedGames == nil {
		t.Error("TopRatedGames should be an empty slice, not nil")
	}
}

func TestReviews_RoundsAndLimitsTop(t *testing.T) {
	var rows []TopGameRow
	for i := 0; i < 7; i++ {
		rows = append(rows, TopGameRow{GameID: uuid.New(), Title: "g", AverageScore: 4.66, TotalReviews: 3})
	}

	got := Reviews(ReviewCounts{
		Total:        9,
		AverageScore: 3.777,
		TotalHours:   120.5,
		Recommended:  6,
		Scores:       []Bucket{{Key: "5", Count: 4}, {Key: "1", Count: 5}},
		Difficulties: []Bucket{{Key: "Normal", Count: 9}},
		Top:          rows,
	})

	if got.AverageScore != 3.8 {
		t.Errorf("AverageScore = %v, want 3.8", got.AverageScore)
	}
	if got.RecommendationPercentage != 67 {
		t.Errorf("RecommendationPercentage = %d, want 67", got.RecommendationPercentage)
	}
	if len(got.TopRatedGames) != TopGamesLimit {
		t.Fatalf("len(TopRatedGames) = %d, want %d", len(got.TopRatedGames), TopGamesLimit)
	}
	if got.TopRatedGames[0].AverageScore != 4.7 {
		t.Errorf("top average = %v, want 4.7", got.TopRatedGames[0].AverageScore)
	}
	if got.ScoreDistribution["1"] != 5 || got.DifficultyDistribution["Normal"] != 9 {
		t.Errorf("distributions = %v / %v", got.ScoreDistribution, got.DifficultyDistribution)
	}
}
