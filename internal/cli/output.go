package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case MessageResult:
		fmt.Println(v.Message)
	case LoginResult:
		o.printLoginResult(v)
	case Leaderboards:
		o.printLeaderboards(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// MessageResult response type (matches API)
type MessageResult struct {
	Message string `json:"message"`
}

// LoginResult response type
type LoginResult struct {
	Message      string `json:"message"`
	Username     string `json:"username"`
	SessionToken string `json:"session_token"`
}

// GameRank response type
type GameRank struct {
	GameTitle  string `json:"game_title"`
	TotalPlays int64  `json:"total_plays"`
}

// PlayerRank response type
type PlayerRank struct {
	Username   string `json:"username"`
	TotalPlays int64  `json:"total_plays"`
}

// Leaderboards response type
type Leaderboards struct {
	TopGames   []GameRank   `json:"top_games"`
	TopPlayers []PlayerRank `json:"top_players"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printLoginResult(l LoginResult) {
	fmt.Printf("Logged in as: %s\n", l.Username)
	fmt.Printf("Token: %s\n", l.SessionToken)
}

func (o *Output) printLeaderboards(l Leaderboards) {
	fmt.Printf("Top Games (%d):\n", len(l.TopGames))
	for i, g := range l.TopGames {
		fmt.Printf("  %d. %s - %d plays\n", i+1, g.GameTitle, g.TotalPlays)
	}
	fmt.Printf("Top Players (%d):\n", len(l.TopPlayers))
	for i, p := range l.TopPlayers {
		fmt.Printf("  %d. %s - %d plays\n", i+1, p.Username, p.TotalPlays)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
