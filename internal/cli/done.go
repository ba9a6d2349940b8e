package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/activity-tracker/internal/activity"
)

func newDoneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle an activity's completion",
		Long:  "Toggle an activity's completion. Toggling an unknown id does nothing.",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runDone,
	}
}

func (a *app) runDone(cmd *cobra.Command, args []string) error {
	m, kv, err := a.openManager(cmd.Context())
	if err != nil {
		return err
	}
	defer kv.Close()

	act, ok, err := m.ToggleCompleted(cmd.Context(), args[0])
	if !ok {
		fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"id":%q,"toggled":false}`+"\n", args[0])
		return nil
	}
	if err != nil && !activity.IsSaveError(err) {
		return err
	}
	a.printOne(cmd.OutOrStdout(), act)
	if err != nil {
		return fmt.Errorf("done: %w", err)
	}
	return nil
}
