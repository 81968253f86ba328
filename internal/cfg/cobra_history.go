package cfg

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ytcli/internal/domain/consts"
	"ytcli/internal/models"
	"ytcli/internal/utils/logging"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

const defaultHistoryLimit = 20

// initHistoryCmd lists recent downloads from the history database.
func initHistoryCmd() *cobra.Command {
	var limit int

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recent downloads",
		Long:  "List recent downloads and how each one ended, newest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := LoadConfig()
			if err != nil {
				return err
			}
			logging.Level = c.DebugLevel

			if c.DBPath == "" {
				return usageErr("no history database path set (use --%s)", "db-path")
			}
			if limit < 0 {
				return usageErr("--limit must be 0 or more, got %d", limit)
			}

			store, closer, err := openHistory(c.DBPath)
			if err != nil {
				return usageErr("could not open history database %q: %w", c.DBPath, err)
			}
			defer closer.Close()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			entries, err := store.Recent(ctx, limit)
			if err != nil {
				return usageErr("%w", err)
			}

			if len(entries) == 0 {
				logging.I("No downloads recorded yet")
				return nil
			}
			for _, e := range entries {
				logging.P("%s", formatHistoryEntry(e, time.Now()))
			}
			return nil
		},
	}

	historyCmd.Flags().IntVarP(&limit, "limit", "n", defaultHistoryLimit, "Number of entries to show, 0 for all")
	return historyCmd
}

// formatHistoryEntry renders one history line relative to now.
func formatHistoryEntry(e models.HistoryEntry, now time.Time) string {
	var b strings.Builder

	b.WriteString(humanize.RelTime(e.StartedAt, now, "ago", "from now"))
	b.WriteString("  ")
	b.WriteString(colorOutcome(e.Outcome))
	if e.Outcome != "ok" && e.ExitCode >= 0 {
		fmt.Fprintf(&b, " (exit %d)", e.ExitCode)
	}
	b.WriteString("  ")
	b.WriteString(e.URL)

	if d := e.Duration(); d > 0 {
		fmt.Fprintf(&b, "  [%s]", d.Round(time.Second))
	}
	if e.Error != "" && e.Outcome != "ok" {
		fmt.Fprintf(&b, "\n    %s", e.Error)
	}
	return b.String()
}

func colorOutcome(outcome string) string {
	switch outcome {
	case "ok":
		return consts.ColorGreen + outcome + consts.ColorReset
	case "partial", "cancelled":
		return consts.ColorYellow + outcome + consts.ColorReset
	default:
		return consts.ColorRed + outcome + consts.ColorReset
	}
}
