package handler_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"gametracker/backend/internal/models"
	"gametracker/backend/internal/repository"
	"gametracker/backend/internal/stats"

	"github.com/google/uuid"
)

// memStore is an in-memory stand-in for both repositories.
type memStore struct {
	mu      sync.Mutex
	games   map[uuid.UUID]models.Game
	reviews map[uuid.UUID]models.Review

	lastGameFilter   repository.GameFilter
	lastReviewFilter repository.ReviewFilter
	failWith         error
}

func newMemStore() *memStore {
	return &memStore{
		games:   make(map[uuid.UUID]models.Game),
		reviews: make(map[uuid.UUID]models.Review),
	}
}

type gameStore struct{ *memStore }
type reviewStore struct{ *memStore }

func notFound(what string, id uuid.UUID) error {
	return fmt.Errorf("find %s %s: %w", what, id, repository.ErrNotFound)
}

// region --- games ---

func (s gameStore) List(_ context.Context, f repository.GameFilter) ([]models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastGameFilter = f
	if s.failWith != nil {
		return nil, s.failWith
	}

	out := make([]models.Game, 0)
	for _, g := range s.games {
		if f.Genre != "" && g.Genre != f.Genre {
			continue
		}
		if f.Platform != "" && g.Platform != f.Platform {
			continue
		}
		if f.Completed != nil && g.Completed != *f.Completed {
			continue
		}
		if f.ReleaseYear != nil && g.ReleaseYear != *f.ReleaseYear {
			continue
		}
		if f.Developer != "" && !strings.Contains(strings.ToLower(g.Developer), strings.ToLower(f.Developer)) {
			continue
		}
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Title < out[j].Title
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s gameStore) FindByID(_ context.Context, id uuid.UUID) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[id]
	if !ok {
		return nil, notFound("game", id)
	}
	return &g, nil
}

func (s gameStore) Create(_ context.Context, g *models.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	if err := g.BeforeCreate(nil); err != nil {
		return err
	}
	now := time.Now()
	g.CreatedAt, g.UpdatedAt = now, now
	s.games[g.ID] = *g
	return nil
}

func (s gameStore) Update(_ context.Context, id uuid.UUID, p models.GamePatch) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[id]
	if !ok {
		return nil, notFound("game", id)
	}
	if p.Title != nil {
		g.Title = *p.Title
	}
	if p.Genre != nil {
		g.Genre = *p.Genre
	}
	if p.Platform != nil {
		g.Platform = *p.Platform
	}
	if p.ReleaseYear != nil {
		g.ReleaseYear = *p.ReleaseYear
	}
	if p.Developer != nil {
		g.Developer = *p.Developer
	}
	if p.CoverImageURL != nil {
		g.CoverImageURL = *p.CoverImageURL
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.Completed != nil {
		g.Completed = *p.Completed
	}
	g.UpdatedAt = time.Now()
	s.games[id] = g
	return &g, nil
}

func (s gameStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		return notFound("game", id)
	}
	for rid, r := range s.reviews {
		if r.GameID == id {
			delete(s.reviews, rid)
		}
	}
	delete(s.games, id)
	return nil
}

func (s gameStore) ToggleCompleted(_ context.Context, id uuid.UUID) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[id]
	if !ok {
		return nil, notFound("game", id)
	}
	g.Completed = !g.Completed
	s.games[id] = g
	return &g, nil
}

func (s gameStore) LibraryCounts(_ context.Context) (stats.LibraryCounts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var c stats.LibraryCounts
	genres, platforms := map[string]int64{}, map[string]int64{}
	for _, g := range s.games {
		c.Total++
		if g.Completed {
			c.Completed++
		}
		genres[string(g.Genre)]++
		platforms[string(g.Platform)]++
	}
	for k, v := range genres {
		c.Genres = append(c.Genres, stats.Bucket{Key: k, Count: v})
	}
	for k, v := range platforms {
		c.Platforms = append(c.Platforms, stats.Bucket{Key: k, Count: v})
	}
	return c, nil
}

// endregion

// region --- reviews ---

func (s reviewStore) withGame(r models.Review) models.Review {
	if g, ok := s.games[r.GameID]; ok {
		r.Game = &g
	}
	return r
}

func (s reviewStore) List(_ context.Context, f repository.ReviewFilter) ([]models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastReviewFilter = f

	out := make([]models.Review, 0)
	for _, r := range s.reviews {
		if f.GameID != nil && r.GameID != *f.GameID {
			continue
		}
		if f.Score != nil && r.Score != *f.Score {
			continue
		}
		if f.Difficulty != "" && r.Difficulty != f.Difficulty {
			continue
		}
		if f.WouldRecommend != nil && r.WouldRecommend != *f.WouldRecommend {
			continue
		}
		out = append(out, s.withGame(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s reviewStore) FindByID(_ context.Context, id uuid.UUID) (*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reviews[id]
	if !ok {
		return nil, notFound("review", id)
	}
	r = s.withGame(r)
	return &r, nil
}

func (s reviewStore) Create(_ context.Context, r *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := r.BeforeCreate(nil); err != nil {
		return err
	}
	now := time.Now()
	r.CreatedAt, r.UpdatedAt = now, now
	s.reviews[r.ID] = *r
	*r = s.withGame(*r)
	return nil
}

func (s reviewStore) Update(_ context.Context, id uuid.UUID, p models.ReviewPatch) (*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reviews[id]
	if !ok {
		return nil, notFound("review", id)
	}
	if p.GameID != nil {
		r.GameID = *p.GameID
	}
	if p.Score != nil {
		r.Score = *p.Score
	}
	if p.Text != nil {
		r.Text = *p.Text
	}
	if p.HoursPlayed != nil {
		r.HoursPlayed = *p.HoursPlayed
	}
	if p.Difficulty != nil {
		r.Difficulty = *p.Difficulty
	}
	if p.WouldRecommend != nil {
		r.WouldRecommend = *p.WouldRecommend
	}
	r.UpdatedAt = time.Now()
	s.reviews[id] = r
	r = s.withGame(r)
	return &r, nil
}

func (s reviewStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reviews[id]; !ok {
		return notFound("review", id)
	}
	delete(s.reviews, id)
	return nil
}

func (s reviewStore) GameStats(_ context.Context, gameID uuid.UUID) (*stats.GameReviewStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out stats.GameReviewStats
	var sum int
	for _, r := range s.reviews {
		if r.GameID != gameID {
			continue
		}
		out.TotalReviews++
		sum += r.Score
		out.TotalHours += r.HoursPlayed
		if r.WouldRecommend {
			out.Recommendations++
		}
	}
	if out.TotalReviews == 0 {
		return nil, nil
	}
	out.AverageScore = float64(sum) / float64(out.TotalReviews)
	return &out, nil
}

func (s reviewStore) Counts(_ context.Context) (stats.ReviewCounts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var c stats.ReviewCounts
	var sum int
	scores, difficulties := map[string]int64{}, map[string]int64{}
	for _, r := range s.reviews {
		c.Total++
		sum += r.Score
		c.TotalHours += r.HoursPlayed
		if r.WouldRecommend {
			c.Recommended++
		}
		scores[fmt.Sprint(r.Score)]++
		difficulties[string(r.Difficulty)]++
	}
	if c.Total > 0 {
		c.AverageScore = float64(sum) / float64(c.Total)
	}
	for k, v := range scores {
		c.Scores = append(c.Scores, stats.Bucket{Key: k, Count: v})
	}
	for k, v := range difficulties {
		c.Difficulties = append(c.Difficulties, stats.Bucket{Key: k, Count: v})
	}
	return c, nil
}

// endregion
