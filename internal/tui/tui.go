// Package tui implements the interactive single-screen activity tracker.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rcliao/activity-tracker/internal/activity"
	"github.com/rcliao/activity-tracker/internal/datesel"
)

// Run shows the screen until the user quits. loadErr, if any, is surfaced
// as the initial alert.
func Run(ctx context.Context, mgr *activity.Manager, loadErr error) error {
	m := newScreenModel(ctx, mgr, datesel.New(), loadErr)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
