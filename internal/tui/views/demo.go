package views

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dallionking/stepview/internal/tui/models"
)

// RunDemo launches the interactive Bubble Tea demo.
func RunDemo(opts models.DemoOptions) error {
	model := models.NewDemoModel(opts)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running demo: %w", err)
	}
	return nil
}
