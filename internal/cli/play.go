package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newTrackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "track <game-title> <seconds>",
		Short: "Report a finished play session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			duration, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid duration %q: %w", args[1], err)
			}

			req := map[string]any{
				"gameTitle": args[0],
				"duration":  duration,
			}
			var result MessageResult

			if err := client.Post("/api/track_play", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
