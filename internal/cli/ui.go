package cli

import (
	"github.com/spf13/cobra"

	"github.com/rcliao/activity-tracker/internal/activity"
	"github.com/rcliao/activity-tracker/internal/tui"
)

func newUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive activity screen",
		Args:  cobra.NoArgs,
		RunE:  a.runUI,
	}
}

func (a *app) runUI(cmd *cobra.Command, args []string) error {
	kv, err := a.openStore()
	if err != nil {
		return err
	}
	defer kv.Close()

	m := activity.NewManager(kv, a.log)
	// A load failure is shown on screen; the session starts empty.
	loadErr := m.Load(cmd.Context())
	return tui.Run(cmd.Context(), m, loadErr)
}
