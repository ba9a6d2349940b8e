package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rcliao/activity-tracker/internal/activity"
	"github.com/rcliao/activity-tracker/internal/store"
)

type statsOutput struct {
	activity.Summary
	Store *store.Stats `json:"store,omitempty"`
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show activity and database statistics",
		Args:  cobra.NoArgs,
		RunE:  a.runStats,
	}
}

func (a *app) runStats(cmd *cobra.Command, args []string) error {
	m, kv, err := a.openManager(cmd.Context())
	if err != nil {
		return err
	}
	defer kv.Close()

	out := statsOutput{Summary: activity.Summarize(m.Activities())}
	if s, ok := kv.(*store.SQLiteStore); ok {
		st, err := s.Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("stats: %w", err)
		}
		out.Store = st
	}

	if a.format == "text" {
		writeStats(cmd.OutOrStdout(), out)
		return nil
	}
	printJSON(cmd.OutOrStdout(), out)
	return nil
}

func writeStats(w io.Writer, out statsOutput) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "total\t%d\n", out.Total)
	fmt.Fprintf(tw, "completed\t%d\n", out.Completed)
	for _, c := range out.Categories {
		fmt.Fprintf(tw, "%s\t%d\t%d done\n", c.Category, c.Count, c.Completed)
	}
	if out.Store != nil {
		fmt.Fprintf(tw, "db\t%s\n", out.Store.DBPath)
		fmt.Fprintf(tw, "size\t%d bytes\n", out.Store.DBSizeBytes)
	}
	tw.Flush()
}
