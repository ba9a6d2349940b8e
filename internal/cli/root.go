// Package cli implements the activity-tracker CLI commands.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rcliao/activity-tracker/internal/activity"
	"github.com/rcliao/activity-tracker/internal/config"
	"github.com/rcliao/activity-tracker/internal/logger"
	"github.com/rcliao/activity-tracker/internal/store"
)

// app carries flag values and the resources shared by every subcommand.
type app struct {
	dbPath    string
	format    string
	ephemeral bool

	cfg *config.Config
	log zerolog.Logger
}

// NewRootCmd constructs the root command and its subcommands.
func NewRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "activity-tracker",
		Short:         "Track personal activities",
		Long:          "Track dated activities in six categories. SQLite-backed, single binary, with an interactive screen (ui).",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			if a.format != "json" && a.format != "text" {
				return fmt.Errorf("unsupported format %q (use json or text)", a.format)
			}
			a.cfg = cfg
			a.log = logger.New(cfg.LogLevel, cfg.LogFormat)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.dbPath, "db", "d", "", "Database path (default: $ACTIVITY_TRACKER_DB or ~/.activity-tracker/activities.db)")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", "json", "Output format: json or text")
	root.PersistentFlags().BoolVar(&a.ephemeral, "ephemeral", false, "Keep activities in memory only")

	root.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newShowCmd(a),
		newEditCmd(a),
		newRmCmd(a),
		newDoneCmd(a),
		newCategoriesCmd(a),
		newStatsCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newUICmd(a),
	)
	return root
}

func (a *app) getDBPath() string {
	if a.cfg == nil {
		return config.DefaultDBPath()
	}
	return a.cfg.DBPath(a.dbPath)
}

func (a *app) openStore() (store.KV, error) {
	if a.ephemeral {
		return store.NewMemoryStore(), nil
	}
	return store.NewSQLiteStore(a.getDBPath())
}

// openManager opens the store and loads the collection. The caller closes
// the returned store.
func (a *app) openManager(ctx context.Context) (*activity.Manager, store.KV, error) {
	kv, err := a.openStore()
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	m := activity.NewManager(kv, a.log)
	if err := m.Load(ctx); err != nil {
		kv.Close()
		return nil, nil, err
	}
	return m, kv, nil
}

func printJSON(w io.Writer, v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(w, string(b))
}

// confirm asks question on out and reads a yes/no answer from in.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
