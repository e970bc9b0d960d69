package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"hearth/internal/engine"
)

func RunDashboard(ctx context.Context, svc *engine.Service, out io.Writer) error {
	m := newDashModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
