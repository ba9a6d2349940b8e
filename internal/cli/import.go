package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rcliao/activity-tracker/internal/activity"
)

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Import activities from JSON",
		Long:  "Import activities from JSON on stdin. Expects the format produced by export. Known ids are skipped.",
		Args:  cobra.NoArgs,
		RunE:  a.runImport,
	}
}

func (a *app) runImport(cmd *cobra.Command, args []string) error {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	incoming, err := activity.Decode(string(data))
	if err != nil {
		return fmt.Errorf("parse json: %w", err)
	}

	m, kv, err := a.openManager(cmd.Context())
	if err != nil {
		return err
	}
	defer kv.Close()

	res, err := m.Import(cmd.Context(), incoming)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"imported":%d,"duplicates":%d,"rejected":%d}`+"\n",
		res.Imported, res.Duplicates, res.Rejected)
	return nil
}
