package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"gametracker/backend/internal/config"
	"gametracker/backend/internal/database"
	"gametracker/backend/internal/logging"
	"gametracker/backend/internal/repository"
	"gametracker/backend/internal/seed"
	"gametracker/backend/internal/stats"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts seed.Options

	cmd := &cobra.Command{
		Use:          "seed",
		Short:        "Fill the GameTracker database with fake games and reviews",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.Games, "games", 25, "number of games to create")
	flags.IntVar(&opts.MaxReviews, "max-reviews", 3, "maximum number of reviews per game")
	flags.BoolVar(&opts.Clean, "clean", true, "delete existing games and reviews first")
	flags.Uint64Var(&opts.Seed, "seed", 0, "random seed, 0 for a random one")
	return cmd
}

func run(ctx context.Context, opts seed.Options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	db, err := database.Connect(cfg.DatabaseURL, database.Options{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logging.Error().Err(err).Msg("Failed to close database")
		}
	}()

	if _, err := seed.Run(ctx, db, opts); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	libraryCounts, err := repository.NewGameRepository(db).LibraryCounts(ctx)
	if err != nil {
		return err
	}
	reviewCounts, err := repository.NewReviewRepository(db).Counts(ctx)
	if err != nil {
		return err
	}

	library := stats.Library(libraryCounts)
	reviews := stats.Reviews(reviewCounts)
	logging.Info().
		Int64("games", library.TotalGames).
		Int64("completed", library.CompletedGames).
		Int64("reviews", reviews.TotalReviews).
		Interface("genres", library.GenreDistribution).
		Interface("platforms", library.PlatformDistribution).
		Msg("Database summary")
	for i, g := range reviews.TopRatedGames {
		logging.Info().
			Int("rank", i+1).
			Str("title", g.Title).
			Float64("average", g.AverageScore).
			Int64("reviews", g.TotalReviews).
			Msg("Top rated game")
	}
	return nil
}
