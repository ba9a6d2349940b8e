package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one activity",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runShow,
	}
}

func (a *app) runShow(cmd *cobra.Command, args []string) error {
	m, kv, err := a.openManager(cmd.Context())
	if err != nil {
		return err
	}
	defer kv.Close()

	act, ok := m.Get(args[0])
	if !ok {
		return fmt.Errorf("activity not found: %s", args[0])
	}
	a.printOne(cmd.OutOrStdout(), act)
	return nil
}
