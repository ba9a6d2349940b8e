package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/activity-tracker/internal/activity"
	"github.com/rcliao/activity-tracker/internal/model"
)

func newEditCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an activity",
		Long:  "Replace the title, date or category of an activity. Unset flags keep the current value. Asks for confirmation unless --yes is given.",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runEdit,
	}

	cmd.Flags().StringP("title", "t", "", "New title")
	cmd.Flags().StringP("category", "c", "", "New category")
	cmd.Flags().String("date", "", "New date as YYYY-MM-DD")
	cmd.Flags().BoolP("yes", "y", false, "Skip confirmation")

	return cmd
}

func (a *app) runEdit(cmd *cobra.Command, args []string) error {
	id := args[0]
	yes, _ := cmd.Flags().GetBool("yes")

	m, kv, err := a.openManager(cmd.Context())
	if err != nil {
		return err
	}
	defer kv.Close()

	cur, ok := m.BeginEdit(id)
	if !ok {
		return fmt.Errorf("activity not found: %s", id)
	}

	title, category, date := cur.Title, cur.ActivityType, cur.Date
	if cmd.Flags().Changed("title") {
		title, _ = cmd.Flags().GetString("title")
	}
	if cmd.Flags().Changed("category") {
		c, _ := cmd.Flags().GetString("category")
		category = model.Category(c)
	}
	if cmd.Flags().Changed("date") {
		s, _ := cmd.Flags().GetString("date")
		if date, err = model.ParseDate(s); err != nil {
			return err
		}
	}

	if err := m.ProposeEdit(id, title, date, category); err != nil {
		return fmt.Errorf("edit: %w", err)
	}
	if !yes && !confirm(cmd.InOrStdin(), cmd.ErrOrStderr(), "Save changes to this activity?") {
		m.CancelEdit()
		fmt.Fprintln(cmd.OutOrStdout(), `{"ok":false,"cancelled":true}`)
		return nil
	}

	outcome, err := m.Confirm(cmd.Context())
	if err != nil && !activity.IsSaveError(err) {
		return fmt.Errorf("edit: %w", err)
	}
	updated, _ := m.Get(id)
	a.printOne(cmd.OutOrStdout(), updated)
	if err != nil {
		return fmt.Errorf("edit: %w", err)
	}
	a.log.Info().Str("id", id).Msg(outcome.Message())
	return nil
}
