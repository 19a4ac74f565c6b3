package cli

import (
	"github.com/spf13/cobra"
)

func newLeaderboardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboards",
		Short: "Show the top games and top players",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Leaderboards

			if err := client.Get("/api/leaderboards", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
