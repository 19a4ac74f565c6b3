package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/srinix/gamehub/internal/dependencies/clock"
	"github.com/srinix/gamehub/internal/model"
	"github.com/srinix/gamehub/internal/storage"
)

// DefaultLeaderboardLimit is the number of entries returned by the
// leaderboard aggregations when no limit is given.
const DefaultLeaderboardLimit = 5

// Service owns per-(user, game) play statistics: the write-side atomic
// increment and the read-side aggregation views.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new ledger Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// GameStats is a PlayRecord annotated for display
type GameStats struct {
	GameTitle              string
	Plays                  int64
	TotalDuration          float64
	TotalDurationFormatted string
	LastPlayedFormatted    string // "N/A" when the record has no timestamp
}

// UserStats aggregates a user's play records with caller-computed totals
type UserStats struct {
	Games                  []GameStats
	GamesPlayed            int
	TotalPlays             int64
	TotalDuration          float64
	TotalDurationFormatted string
}

// GameRank is one entry of the top-games leaderboard
type GameRank struct {
	GameTitle  string
	TotalPlays int64
}

// PlayerRank is one entry of the top-players leaderboard
type PlayerRank struct {
	Username   string
	TotalPlays int64
}

// RecordPlay validates a play report and applies the atomic
// find-or-create-and-increment for (userID, gameTitle). Validation
// failures leave the ledger untouched.
func (s *Service) RecordPlay(ctx context.Context, userID model.UserID, gameTitle string, durationSeconds float64) error {
	if gameTitle == "" {
		return model.ErrInvalidGameTitle
	}
	if durationSeconds < 0 || math.IsNaN(durationSeconds) || math.IsInf(durationSeconds, 0) {
		return model.ErrInvalidDuration
	}

	now := s.clock.Now()
	if err := s.storage.RecordPlay(ctx, userID, gameTitle, durationSeconds, now); err != nil {
		return fmt.Errorf("record play for %q: %w", gameTitle, err)
	}

	s.logger.Debug("play recorded",
		slog.String("user_id", string(userID)),
		slog.String("game_title", gameTitle),
		slog.Float64("duration", durationSeconds),
	)
	return nil
}

// GetUserStats returns the user's play records annotated for display.
// A user with no records gets empty stats, never an error.
func (s *Service) GetUserStats(ctx context.Context, userID model.UserID) (*UserStats, error) {
	records, err := s.storage.GetPlaysForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get plays for user: %w", err)
	}

	stats := &UserStats{Games: make([]GameStats, 0, len(records))}
	for _, record := range records {
		lastPlayed := "N/A"
		if !record.LastPlayed.IsZero() {
			lastPlayed = record.LastPlayed.UTC().Format("2006-01-02 15:04:05")
		}

		stats.Games = append(stats.Games, GameStats{
			GameTitle:              record.GameTitle,
			Plays:                  record.Plays,
			TotalDuration:          record.TotalDuration,
			TotalDurationFormatted: FormatDuration(record.TotalDuration),
			LastPlayedFormatted:    lastPlayed,
		})

		stats.TotalPlays += record.Plays
		stats.TotalDuration += record.TotalDuration
	}

	stats.GamesPlayed = len(stats.Games)
	stats.TotalDurationFormatted = FormatDuration(stats.TotalDuration)
	return stats, nil
}

// TopGamesByPlays returns up to limit game titles ordered by summed play
// count, descending. Ties keep their grouping order.
func (s *Service) TopGamesByPlays(ctx context.Context, limit int) ([]GameRank, error) {
	records, err := s.storage.AllPlays(ctx)
	if err != nil {
		return nil, fmt.Errorf("aggregate plays: %w", err)
	}

	totals := make(map[string]int64)
	order := []string{}
	for _, record := range records {
		if _, ok := totals[record.GameTitle]; !ok {
			order = append(order, record.GameTitle)
		}
		totals[record.GameTitle] += record.Plays
	}

	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]] > totals[order[j]]
	})
	if limit >= 0 && len(order) > limit {
		order = order[:limit]
	}

	ranks := make([]GameRank, len(order))
	for i, title := range order {
		ranks[i] = GameRank{GameTitle: title, TotalPlays: totals[title]}
	}
	return ranks, nil
}

// TopPlayersByPlays returns up to limit usernames ordered by summed play
// count, descending. Aggregates whose user no longer exists are dropped
// after truncation, mirroring an inner join against the user store.
func (s *Service) TopPlayersByPlays(ctx context.Context, limit int) ([]PlayerRank, error) {
	records, err := s.storage.AllPlays(ctx)
	if err != nil {
		return nil, fmt.Errorf("aggregate plays: %w", err)
	}

	totals := make(map[model.UserID]int64)
	order := []model.UserID{}
	for _, record := range records {
		if _, ok := totals[record.UserID]; !ok {
			order = append(order, record.UserID)
		}
		totals[record.UserID] += record.Plays
	}

	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]] > totals[order[j]]
	})
	if limit >= 0 && len(order) > limit {
		order = order[:limit]
	}

	ranks := make([]PlayerRank, 0, len(order))
	for _, userID := range order {
		user, err := s.storage.GetUser(ctx, userID)
		if err != nil {
			// Inner-join semantics: orphaned aggregates are excluded
			continue
		}
		ranks = append(ranks, PlayerRank{Username: user.Username, TotalPlays: totals[userID]})
	}
	return ranks, nil
}
