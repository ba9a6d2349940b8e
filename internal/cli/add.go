package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/activity-tracker/internal/activity"
	"github.com/rcliao/activity-tracker/internal/model"
)

func newAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add an activity",
		Long:  "Add an activity. The title needs at least 5 characters and the category must be one of `activity-tracker categories`.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.runAdd,
	}

	cmd.Flags().StringP("category", "c", "", "Category (required)")
	cmd.Flags().String("date", "", "Date as YYYY-MM-DD (default: today)")

	cmd.MarkFlagRequired("category")

	return cmd
}

func (a *app) runAdd(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	dateStr, _ := cmd.Flags().GetString("date")

	date := model.Today()
	if dateStr != "" {
		d, err := model.ParseDate(dateStr)
		if err != nil {
			return err
		}
		date = d
	}

	m, kv, err := a.openManager(cmd.Context())
	if err != nil {
		return err
	}
	defer kv.Close()

	rec, err := m.Add(cmd.Context(), strings.Join(args, " "), date, model.Category(category))
	if err != nil && !activity.IsSaveError(err) {
		return fmt.Errorf("add: %w", err)
	}
	a.printOne(cmd.OutOrStdout(), rec)
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	a.log.Info().Str("id", rec.ID).Msg(activity.OutcomeAdded.Message())
	return nil
}
