package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/activity-tracker/internal/model"
)

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List activity categories",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if a.format == "text" {
				for _, c := range model.Categories {
					fmt.Fprintln(cmd.OutOrStdout(), c)
				}
				return
			}
			printJSON(cmd.OutOrStdout(), model.Categories)
		},
	}
}
