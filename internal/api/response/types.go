package response

import (
	"github.com/srinix/gamehub/internal/services/ledger"
)

// Message is a simple acknowledgment response
type Message struct {
	Message string `json:"message"`
}

// Login is the response for a successful login
type Login struct {
	Message      string `json:"message"`
	Username     string `json:"username"`
	SessionToken string `json:"session_token"`
}

// GameRank is one top-games leaderboard entry
type GameRank struct {
	GameTitle  string `json:"game_title"`
	TotalPlays int64  `json:"total_plays"`
}

// PlayerRank is one top-players leaderboard entry
type PlayerRank struct {
	Username   string `json:"username"`
	TotalPlays int64  `json:"total_plays"`
}

// Leaderboards is the response for the leaderboards endpoint
type Leaderboards struct {
	TopGames   []GameRank   `json:"top_games"`
	TopPlayers []PlayerRank `json:"top_players"`
}

// LeaderboardsFromRanks converts ledger aggregation results
func LeaderboardsFromRanks(games []ledger.GameRank, players []ledger.PlayerRank) Leaderboards {
	topGames := make([]GameRank, len(games))
	for i, g := range games {
		topGames[i] = GameRank{GameTitle: g.GameTitle, TotalPlays: g.TotalPlays}
	}

	topPlayers := make([]PlayerRank, len(players))
	for i, p := range players {
		topPlayers[i] = PlayerRank{Username: p.Username, TotalPlays: p.TotalPlays}
	}

	return Leaderboards{TopGames: topGames, TopPlayers: topPlayers}
}
