package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/activity-tracker/internal/activity"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export activities as JSON",
		Long:  "Print the stored activity collection in its storage format. The output is accepted by import.",
		Args:  cobra.NoArgs,
		RunE:  a.runExport,
	}
}

func (a *app) runExport(cmd *cobra.Command, args []string) error {
	m, kv, err := a.openManager(cmd.Context())
	if err != nil {
		return err
	}
	defer kv.Close()

	blob, err := activity.Encode(m.Activities())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), blob)
	return nil
}
