package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/srivalli27/dhanai/internal/ai"
	"github.com/srivalli27/dhanai/internal/session"
)

// Run starts the interactive app and blocks until the user quits.
func Run(ctx context.Context, store *session.Store, gateway *ai.Gateway) error {
	program := tea.NewProgram(New(store, gateway), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
