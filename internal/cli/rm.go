package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/activity-tracker/internal/activity"
)

func newRmCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an activity",
		Long:  "Delete an activity. Asks for confirmation unless --yes is given. Deleting an unknown id does nothing.",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runRm,
	}

	cmd.Flags().BoolP("yes", "y", false, "Skip confirmation")

	return cmd
}

func (a *app) runRm(cmd *cobra.Command, args []string) error {
	id := args[0]
	yes, _ := cmd.Flags().GetBool("yes")

	m, kv, err := a.openManager(cmd.Context())
	if err != nil {
		return err
	}
	defer kv.Close()

	m.ProposeDelete(id)
	if !yes && !confirm(cmd.InOrStdin(), cmd.ErrOrStderr(), "Delete this activity?") {
		m.Cancel()
		fmt.Fprintf(cmd.OutOrStdout(), `{"ok":false,"cancelled":true,"id":%q}`+"\n", id)
		return nil
	}

	outcome, err := m.Confirm(cmd.Context())
	if err != nil {
		return fmt.Errorf("rm: %w", err)
	}
	if outcome == activity.OutcomeDeleted {
		a.log.Info().Str("id", id).Msg(outcome.Message())
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"id":%q,"deleted":%t}`+"\n", id, outcome == activity.OutcomeDeleted)
	return nil
}
