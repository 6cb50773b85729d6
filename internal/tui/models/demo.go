package models

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Dallionking/stepview/internal/stepview"
	"github.com/Dallionking/stepview/internal/tui/components"
	"github.com/Dallionking/stepview/internal/tui/styles"
)

// ---------------------------------------------------------------------------
// DemoModel
// ---------------------------------------------------------------------------

// DemoOptions configures the demo.
type DemoOptions struct {
	StartPage  int
	Logger     *log.Logger
	NotesStyle string // glamour style, "auto" by default
	Density    stepview.Density
}

// DemoModel is the Bubble Tea model for the interactive demo. Each page
// owns a view built once at startup, so state changes survive page switches.
type DemoModel struct {
	keys    DemoKeyMap
	page    DemoPage
	views   [demoPageCount]*stepview.View
	changer *StateChanger

	notes         components.Notes
	events        components.EventLog
	eventsFocused bool

	logger *log.Logger
	err    error

	width  int
	height int
}

// NewDemoModel builds every page. StartPage is 0-based; out of range values
// start on the first page.
func NewDemoModel(opts DemoOptions) DemoModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	density := opts.Density
	if density.Cols <= 0 || density.Rows <= 0 {
		density = stepview.DefaultDensity
	}

	page := DemoPage(opts.StartPage)
	if page < 0 || page >= demoPageCount {
		page = PageBasicHorizontal
	}

	m := DemoModel{
		keys:   DefaultDemoKeyMap(),
		page:   page,
		notes:  components.NewNotes(48, 6, opts.NotesStyle),
		events: components.NewEventLog(30, 6),
		logger: logger,
		width:  80,
		height: 24,
	}

	for i, p := range demoPages {
		m.views[i] = p.build(stepview.WithDensity(density), stepview.WithLogger(logger))
	}

	changer, err := NewStateChanger(m.views[PageStateChange])
	if err != nil {
		m.err = err
	}
	m.changer = changer

	m.notes.SetMarkdown(demoPages[m.page].notes)
	m.events.Add("info", "opened %s", demoPages[m.page].title)
	m.resize()
	return m
}

// Page returns the page on screen.
func (m DemoModel) Page() DemoPage { return m.page }

// StepView returns the step view of page p.
func (m DemoModel) StepView(p DemoPage) *stepview.View { return m.views[p] }

// Changer returns the state changer of the state change page.
func (m DemoModel) Changer() *StateChanger { return m.changer }

// Events returns the event log lines.
func (m DemoModel) Events() []components.EventLine { return m.events.Lines() }

// ---------------------------------------------------------------------------
// Bubble Tea Interface
// ---------------------------------------------------------------------------

// Init satisfies tea.Model.
func (m DemoModel) Init() tea.Cmd {
	return nil
}

// Update handles all messages for the demo.
func (m DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextPage):
			return m.showPage((m.page + 1) % demoPageCount), nil
		case key.Matches(msg, m.keys.PrevPage):
			return m.showPage((m.page + demoPageCount - 1) % demoPageCount), nil
		case key.Matches(msg, m.keys.JumpPage):
			return m.showPage(DemoPage(msg.Runes[0] - '1')), nil
		case key.Matches(msg, m.keys.FocusPane):
			m.eventsFocused = !m.eventsFocused
			return m, nil
		}

		if m.page == PageStateChange && m.changer != nil {
			switch {
			case key.Matches(msg, m.keys.PrevStep):
				return m.moveStep(-1), nil
			case key.Matches(msg, m.keys.NextStep):
				return m.moveStep(1), nil
			case key.Matches(msg, m.keys.Toggle):
				state := m.changer.Toggle()
				m.events.Add("info", "step %d will be left %s", m.changer.Index()+1, state)
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	if m.eventsFocused {
		m.events, cmd = m.events.Update(msg)
	} else {
		m.notes, cmd = m.notes.Update(msg)
	}
	return m, cmd
}

// View renders the full demo screen.
func (m DemoModel) View() string {
	header := components.Header{
		Title: demoPages[m.page].title,
		Page:  int(m.page),
		Pages: demoPageCount,
		Width: m.width,
	}.Render()

	titles := make([]string, demoPageCount)
	for i, p := range demoPages {
		titles[i] = p.title
	}
	tabs := components.TabBar{Tabs: titles, ActiveTab: int(m.page), Width: m.width}.Render()

	panel := m.panel().Render()

	sections := []string{header, tabs, "", panel}
	if m.page == PageStateChange {
		sections = append(sections, m.renderButtons())
	}
	if m.err != nil {
		sections = append(sections, styles.ErrorText.Render("Error: "+m.err.Error()))
	}
	sections = append(sections, "", m.renderPanes(), m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// ---------------------------------------------------------------------------
// Navigation
// ---------------------------------------------------------------------------

func (m DemoModel) showPage(p DemoPage) DemoModel {
	if p < 0 || p >= demoPageCount || p == m.page {
		return m
	}
	m.page = p
	m.notes.SetMarkdown(demoPages[p].notes)
	m.events.Add("info", "opened %s", demoPages[p].title)
	m.logger.Debug("demo page", "page", int(p), "title", demoPages[p].title)
	m.resize()
	return m
}

func (m DemoModel) moveStep(delta int) DemoModel {
	var err error
	if delta < 0 {
		if !m.changer.CanPrev() {
			return m
		}
		err = m.changer.Prev()
	} else {
		if !m.changer.CanNext() {
			return m
		}
		err = m.changer.Next()
	}
	if err != nil {
		m.err = err
		m.events.Add("error", "%v", err)
		return m
	}
	m.events.Add("success", "current step is now %d", m.changer.Index()+1)
	return m
}

// ---------------------------------------------------------------------------
// Layout
// ---------------------------------------------------------------------------

func (m DemoModel) panel() components.StepPanel {
	return components.StepPanel{
		View:    m.views[m.page],
		Focused: true,
		Width:   m.width,
	}
}

// resize divides the space below the step panel between notes and events.
func (m *DemoModel) resize() {
	used := 1 + 1 + 1 + m.panel().Height() + 1 + 1 + 1 // header, tabs, gap, panel, gap, pane titles, footer
	if m.page == PageStateChange {
		used++
	}
	paneHeight := max(m.height-used, 3)

	notesWidth := m.width * 3 / 5
	eventsWidth := max(m.width-notesWidth-2, 10)
	m.notes.SetSize(notesWidth, paneHeight)
	m.events.SetSize(eventsWidth, paneHeight)
}

func (m DemoModel) renderPanes() string {
	notes := m.notes.View()
	events := m.events.View()
	if m.eventsFocused {
		events = lipgloss.NewStyle().BorderLeft(true).BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(styles.BorderFocused).Render(events)
	} else {
		notes = lipgloss.NewStyle().BorderLeft(true).BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(styles.BorderFocused).Render(notes)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, notes, "  ", events)
}

func (m DemoModel) renderButtons() string {
	button := func(label string, enabled bool) string {
		style := styles.Card
		if enabled {
			style = style.Foreground(styles.AccentPrimary).BorderForeground(styles.AccentPrimary)
		} else {
			style = style.Foreground(styles.TextMuted)
		}
		return style.Render(label)
	}
	if m.changer == nil {
		return ""
	}
	return strings.Join([]string{
		button("← Prev", m.changer.CanPrev()),
		button("Next →", m.changer.CanNext()),
		button("t "+m.changer.ToggleLabel(), true),
		styles.StateBadge(m.changer.Saved().String()),
	}, " ")
}

func (m DemoModel) renderFooter() string {
	var hints []components.KeyHint
	for _, b := range m.keys.ShortHelp(m.page == PageStateChange) {
		h := b.Help()
		hints = append(hints, components.KeyHint{Key: h.Key, Desc: h.Desc})
	}
	return components.Footer{Hints: hints, Width: m.width}.Render()
}
