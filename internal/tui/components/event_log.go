package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/stepview/internal/tui/styles"
)

// EventLine is a single entry of the event log.
type EventLine struct {
	Time    time.Time
	Level   string // "info", "warn", "error", "success"
	Message string
}

// EventLog is a scrollable, auto-following list of widget events.
type EventLog struct {
	lines      []EventLine
	viewport   viewport.Model
	autoScroll bool
	maxLines   int
	width      int
	height     int
}

// NewEventLog creates a new EventLog with the given dimensions.
func NewEventLog(width, height int) EventLog {
	vp := viewport.New(width, height)
	return EventLog{
		viewport:   vp,
		autoScroll: true,
		maxLines:   200,
		width:      width,
		height:     height,
	}
}

// Init satisfies tea.Model. No initial command needed.
func (l EventLog) Init() tea.Cmd {
	return nil
}

// Update handles scrolling keys.
func (l EventLog) Update(msg tea.Msg) (EventLog, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "G" {
		// Jump to bottom and re-enable auto-scroll.
		l.autoScroll = true
		l.viewport.GotoBottom()
		return l, nil
	}

	l.viewport, cmd = l.viewport.Update(msg)
	l.autoScroll = l.viewport.AtBottom()
	return l, cmd
}

// View returns the rendered viewport with its title.
func (l EventLog) View() string {
	title := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Bold(true).
		Render("Events")

	if !l.autoScroll {
		title += lipgloss.NewStyle().
			Foreground(styles.StatusWarn).
			Render(" (paused, G to follow)")
	}
	return title + "\n" + l.viewport.View()
}

// SetSize resizes the viewport.
func (l *EventLog) SetSize(width, height int) {
	l.width, l.height = width, height
	l.viewport.Width = width
	l.viewport.Height = height
	l.viewport.SetContent(l.renderLines())
	if l.autoScroll {
		l.viewport.GotoBottom()
	}
}

// Add appends a line and refreshes the viewport content.
func (l *EventLog) Add(level, format string, args ...any) {
	l.AddLine(EventLine{Time: time.Now(), Level: level, Message: fmt.Sprintf(format, args...)})
}

// AddLine appends a line and refreshes the viewport content.
func (l *EventLog) AddLine(line EventLine) {
	l.lines = append(l.lines, line)

	if len(l.lines) > l.maxLines {
		overflow := len(l.lines) - l.maxLines
		l.lines = l.lines[overflow:]
	}

	l.viewport.SetContent(l.renderLines())
	if l.autoScroll {
		l.viewport.GotoBottom()
	}
}

// Lines returns the retained lines, oldest first.
func (l EventLog) Lines() []EventLine {
	out := make([]EventLine, len(l.lines))
	copy(out, l.lines)
	return out
}

// levelColor returns the foreground color for a log level.
func levelColor(level string) lipgloss.Color {
	switch strings.ToLower(level) {
	case "info":
		return styles.TextSecondary
	case "warn":
		return styles.StatusWarn
	case "error":
		return styles.StatusError
	case "success":
		return styles.StatusOK
	default:
		return styles.TextMuted
	}
}

func (l *EventLog) renderLines() string {
	var b strings.Builder
	for _, line := range l.lines {
		color := levelColor(line.Level)

		ts := lipgloss.NewStyle().Foreground(styles.TextMuted).
			Render(line.Time.Format("15:04:05"))
		msg := lipgloss.NewStyle().Foreground(color).
			Render(line.Message)

		b.WriteString(ts + " " + msg + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
