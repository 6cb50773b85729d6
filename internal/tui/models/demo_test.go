package models

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dallionking/stepview/internal/stepview"
)

func newDemo(t *testing.T, start int) DemoModel {
	t.Helper()
	m := NewDemoModel(DemoOptions{StartPage: start, Logger: quietLogger(), NotesStyle: "notty"})
	return send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
}

func send(t *testing.T, m DemoModel, msg tea.Msg) DemoModel {
	t.Helper()
	next, _ := m.Update(msg)
	dm, ok := next.(DemoModel)
	require.True(t, ok)
	return dm
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewDemoModelStartPage(t *testing.T) {
	tests := []struct {
		start int
		want  DemoPage
	}{
		{start: 0, want: PageBasicHorizontal},
		{start: 3, want: PageStateChange},
		{start: 9, want: PageBasicHorizontal},
		{start: -1, want: PageBasicHorizontal},
	}

	for _, tt := range tests {
		m := NewDemoModel(DemoOptions{StartPage: tt.start, Logger: quietLogger(), NotesStyle: "notty"})
		assert.Equal(t, tt.want, m.Page(), "start %d", tt.start)
	}
}

func TestDemoPagesMatchTheirSetup(t *testing.T) {
	m := newDemo(t, 0)

	basic := m.StepView(PageBasicHorizontal)
	assert.Equal(t, "horizontal", basic.Orientation())
	assert.False(t, basic.NotCompletedLineDashed())

	reverse := m.StepView(PageVerticalReverse)
	assert.Equal(t, "vertical", reverse.Orientation())
	assert.True(t, reverse.Reverse())
	assert.Len(t, reverse.Steps(), 9)

	assert.False(t, m.StepView(PageVerticalForward).Reverse())

	custom := m.StepView(PageCustom)
	assert.Equal(t, 15, custom.TextSize())
	assert.Equal(t, "✔", custom.CompletedIcon().Glyph)
}

func TestDemoPageNavigation(t *testing.T) {
	m := newDemo(t, 0)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, PageVerticalReverse, m.Page())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, PageCustom, m.Page(), "wraps backwards")

	m = send(t, m, runes("4"))
	assert.Equal(t, PageStateChange, m.Page())
}

func TestDemoStepKeysOnlyOnStateChangePage(t *testing.T) {
	m := newDemo(t, 0)
	before := m.StepView(PageBasicHorizontal).Steps()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, before, m.StepView(PageBasicHorizontal).Steps())
	assert.Equal(t, 0, m.Changer().Index())

	m = send(t, m, runes("4"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = send(t, m, runes("t"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})

	assert.Equal(t, 2, m.Changer().Index())
	assert.Equal(t, []stepview.State{nc, cmp, cur, nc, nc}, states(m.StepView(PageStateChange)))
}

func TestDemoStateSurvivesPageSwitch(t *testing.T) {
	m := newDemo(t, int(PageStateChange))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})

	assert.Equal(t, 1, m.Changer().Index())
}

func TestDemoQuit(t *testing.T) {
	m := newDemo(t, 0)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestDemoViewShowsPage(t *testing.T) {
	m := newDemo(t, int(PageVerticalReverse))
	out := ansi.Strip(m.View())

	assert.Contains(t, out, "Vertical (reverse)")
	assert.Contains(t, out, "6. Enter payment information")
	assert.Contains(t, out, "Notes")
	assert.Contains(t, out, "Events")
}

func TestDemoViewStateChangeButtons(t *testing.T) {
	m := newDemo(t, int(PageStateChange))
	out := ansi.Strip(m.View())

	assert.Contains(t, out, "← Prev")
	assert.Contains(t, out, "Mark completed")
	assert.Contains(t, out, "prev step")
}

func TestDemoEventsRecordActions(t *testing.T) {
	m := newDemo(t, int(PageStateChange))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})

	lines := m.Events()
	require.NotEmpty(t, lines)
	assert.Equal(t, "current step is now 2", lines[len(lines)-1].Message)
}
