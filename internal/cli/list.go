package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rcliao/activity-tracker/internal/model"
)

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List activities",
		Args:  cobra.NoArgs,
		RunE:  a.runList,
	}

	cmd.Flags().StringP("category", "c", string(model.FilterAll), "Filter by category")
	cmd.Flags().Bool("ids-only", false, "Only output ids")

	return cmd
}

func (a *app) runList(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	idsOnly, _ := cmd.Flags().GetBool("ids-only")

	m, kv, err := a.openManager(cmd.Context())
	if err != nil {
		return err
	}
	defer kv.Close()

	if err := m.SetFilter(model.Category(category)); err != nil {
		return err
	}
	view := m.FilteredView()

	if idsOnly {
		for _, act := range view {
			fmt.Fprintln(cmd.OutOrStdout(), act.ID)
		}
		return nil
	}

	a.printList(cmd.OutOrStdout(), view)
	return nil
}

// printList writes activities as a JSON array or as text rows.
func (a *app) printList(w io.Writer, acts []model.Activity) {
	if a.format == "text" {
		writeRows(w, acts)
		return
	}
	if acts == nil {
		acts = []model.Activity{}
	}
	printJSON(w, acts)
}

// printOne writes a single activity as a JSON object or a text row.
func (a *app) printOne(w io.Writer, act model.Activity) {
	if a.format == "text" {
		writeRows(w, []model.Activity{act})
		return
	}
	printJSON(w, act)
}

func writeRows(w io.Writer, acts []model.Activity) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, act := range acts {
		mark := " "
		if act.Completed {
			mark = "x"
		}
		fmt.Fprintf(tw, "[%s]\t%s\t%s\t%s\t%s\n", mark, act.Date.Display(), act.ActivityType, act.Title, act.ID)
	}
	tw.Flush()
}
