package stepview

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// DefaultTextSize is the label text size in sp.
const DefaultTextSize = 14

// labelGap separates the icon column from labels in the vertical layout.
const labelGap = 1

// View is a step indicator with a text label per step. It owns the step
// list; the indicator only ever sees copies.
//
// A View is not safe for concurrent use. Confine it to the goroutine that
// drives the UI.
type View struct {
	layout    Layout
	indicator *Indicator
	logger    *log.Logger
	measure   TextMeasurer

	steps  []Step
	labels []*Label

	textSize              int
	completedTextColor    lipgloss.TerminalColor
	currentTextColor      lipgloss.TerminalColor
	notCompletedTextColor lipgloss.TerminalColor

	container Size // label container extent from the last layout pass
}

// NewHorizontal returns a view laying steps out left to right with labels
// underneath.
func NewHorizontal(opts ...Option) *View {
	return newView(Horizontal{}, opts)
}

// NewVertical returns a view laying steps out top to bottom (bottom to top
// while Reverse is set) with labels to the right.
func NewVertical(opts ...Option) *View {
	return newView(Vertical{}, opts)
}

func newView(layout Layout, opts []Option) *View {
	o := buildOptions(opts)
	v := &View{
		layout:                layout,
		indicator:             NewIndicator(layout, o.density, o.logger),
		logger:                o.logger,
		measure:               o.measure,
		textSize:              DefaultTextSize,
		completedTextColor:    white,
		currentTextColor:      white,
		notCompletedTextColor: white,
	}
	v.indicator.OnUpdate(v.updateLabels)
	return v
}

// Orientation returns "horizontal" or "vertical".
func (v *View) Orientation() string {
	if v.layout.Axis() == AxisX {
		return "horizontal"
	}
	return "vertical"
}

// ---------------------------------------------------------------------------
// Steps
// ---------------------------------------------------------------------------

// Steps returns a copy of the step list, or nil when none is set.
func (v *View) Steps() []Step {
	return slices.Clone(v.steps)
}

// SetSteps replaces the step list. A nil or empty list means no steps.
func (v *View) SetSteps(steps []Step) *View {
	v.logger.Debug("steps set", "count", len(steps), "orientation", v.Orientation())
	v.steps = slices.Clone(steps)
	v.ensureLabelCount()
	v.indicator.SetSteps(v.steps)
	return v
}

// SetStepState changes the state of the step at index.
func (v *View) SetStepState(state State, index int) error {
	if err := v.checkIndex(index, "change step state"); err != nil {
		return err
	}
	v.steps[index].State = state
	v.ensureLabelCount()
	v.indicator.SetSteps(v.steps)
	return nil
}

// Step returns the step at index.
func (v *View) Step(index int) (Step, error) {
	if err := v.checkIndex(index, "get step"); err != nil {
		return Step{}, err
	}
	return v.steps[index], nil
}

// SetStep replaces the step at index.
func (v *View) SetStep(step Step, index int) error {
	if err := v.checkIndex(index, "set step"); err != nil {
		return err
	}
	v.steps[index] = step
	v.ensureLabelCount()
	v.indicator.SetSteps(v.steps)
	return nil
}

func (v *View) checkIndex(index int, op string) error {
	if v.steps == nil {
		return fmt.Errorf("%s at position %d: %w (call SetSteps first)", op, index, ErrStepsUnset)
	}
	if index < 0 || index >= len(v.steps) {
		return fmt.Errorf("%s at position %d: %w: list has %d items", op, index, ErrStepIndex, len(v.steps))
	}
	return nil
}

// ensureLabelCount grows or shrinks the label pool to one label per step.
func (v *View) ensureLabelCount() {
	stepCount := len(v.steps)
	delta := len(v.labels) - stepCount
	switch {
	case stepCount == 0:
		v.labels = nil
	case delta < 0:
		for range -delta {
			v.labels = append(v.labels, &Label{})
		}
	case delta > 0:
		clear(v.labels[stepCount:])
		v.labels = v.labels[:stepCount]
	}
}

// updateLabels places and styles every label from the current geometry.
// It is the indicator's update listener.
func (v *View) updateLabels() {
	centers := v.indicator.Centers()
	if v.steps == nil || len(centers) == 0 {
		return
	}
	if len(v.steps) != len(v.labels) || len(centers) != len(v.steps) {
		return
	}

	p := v.indicator.params()
	textSize := v.indicator.Density().ToCells(float64(v.textSize), AxisY)
	for i, step := range v.steps {
		l := v.labels[i]
		l.Text = step.Name
		l.TextSize = v.textSize
		l.measured = v.measure(l.Text)
		l.X, l.Y = v.layout.LabelAnchor(centers[i], l.measured, p, textSize)

		switch step.State {
		case Current:
			l.Bold, l.Color = true, v.currentTextColor
		case Completed:
			l.Bold, l.Color = false, v.completedTextColor
		default:
			l.Bold, l.Color = false, v.notCompletedTextColor
		}
	}
	v.layoutLabels()
}

// layoutLabels computes the extent of the label container.
func (v *View) layoutLabels() {
	var ext Size
	for _, l := range v.labels {
		x, y := l.Cell()
		ext.Width = max(ext.Width, x+l.measured.Width)
		ext.Height = max(ext.Height, y+l.measured.Height)
	}
	v.container = ext
}

// Labels returns copies of the label pool.
func (v *View) Labels() []Label {
	out := make([]Label, len(v.labels))
	for i, l := range v.labels {
		out[i] = *l
	}
	return out
}

// Centers returns the current geometry snapshot.
func (v *View) Centers() []float64 {
	return v.indicator.Centers()
}

// ---------------------------------------------------------------------------
// Sizing and rendering
// ---------------------------------------------------------------------------

// SetBounds measures the indicator against the offered width and height and
// applies the result, recomputing geometry and labels.
func (v *View) SetBounds(w, h Constraint) *View {
	v.indicator.SetSize(v.indicator.Measure(w, h))
	return v
}

// IndicatorSize returns the size of the icon strip.
func (v *View) IndicatorSize() Size {
	return v.indicator.Size()
}

// Draw paints the indicator onto c.
func (v *View) Draw(c Canvas) {
	v.indicator.Draw(c)
}

// Render draws the indicator and labels and returns the styled text. A view
// that was never bounded is measured without constraints first.
func (v *View) Render() string {
	if !v.indicator.measured {
		v.SetBounds(Unbounded(), Unbounded())
	}
	return v.Canvas().Render()
}

// Canvas draws the view onto a fresh cell canvas sized to hold the
// indicator and every label.
func (v *View) Canvas() *CellCanvas {
	ind := v.indicator.Size()

	// Draw into a scratch canvas first: drawing recomputes geometry and the
	// label container extent, which the final size depends on.
	scratch := NewCellCanvas(ind.Width, ind.Height)
	v.indicator.Draw(scratch)

	var (
		c      *CellCanvas
		ox, oy int
	)
	if v.layout.Axis() == AxisX {
		oy = ind.Height
		c = NewCellCanvas(ind.Width, ind.Height+v.container.Height)
	} else {
		ox = ind.Width + labelGap
		c = NewCellCanvas(ox+v.container.Width, max(ind.Height, v.container.Height))
	}
	c.blit(scratch)

	for _, l := range v.labels {
		x, y := l.Cell()
		for j, line := range strings.Split(l.Text, "\n") {
			c.SetText(ox+x, oy+y+j, line, l.Color, l.Bold)
		}
	}
	return c
}

// ---------------------------------------------------------------------------
// Text style
// ---------------------------------------------------------------------------

// TextSize returns the label text size in sp.
func (v *View) TextSize() int { return v.textSize }

// SetTextSize sets the label text size in sp. It must be positive.
func (v *View) SetTextSize(sp int) error {
	if sp <= 0 {
		return fmt.Errorf("%w %d: must be greater than zero", ErrInvalidTextSize, sp)
	}
	v.textSize = sp
	v.indicator.invalidate()
	return nil
}

func (v *View) CompletedTextColor() lipgloss.TerminalColor { return v.completedTextColor }

func (v *View) SetCompletedTextColor(c lipgloss.TerminalColor) *View {
	v.completedTextColor = c
	return v
}

func (v *View) CurrentTextColor() lipgloss.TerminalColor { return v.currentTextColor }

func (v *View) SetCurrentTextColor(c lipgloss.TerminalColor) *View {
	v.currentTextColor = c
	return v
}

func (v *View) NotCompletedTextColor() lipgloss.TerminalColor { return v.notCompletedTextColor }

func (v *View) SetNotCompletedTextColor(c lipgloss.TerminalColor) *View {
	v.notCompletedTextColor = c
	return v
}

// ---------------------------------------------------------------------------
// Indicator style, forwarded
// ---------------------------------------------------------------------------

func (v *View) CompletedIcon() Icon { return v.indicator.CompletedIcon() }

func (v *View) SetCompletedIcon(i Icon) *View {
	v.indicator.SetCompletedIcon(i)
	return v
}

func (v *View) CurrentIcon() Icon { return v.indicator.CurrentIcon() }

func (v *View) SetCurrentIcon(i Icon) *View {
	v.indicator.SetCurrentIcon(i)
	return v
}

func (v *View) NotCompletedIcon() Icon { return v.indicator.NotCompletedIcon() }

func (v *View) SetNotCompletedIcon(i Icon) *View {
	v.indicator.SetNotCompletedIcon(i)
	return v
}

func (v *View) CompletedLineColor() lipgloss.TerminalColor {
	return v.indicator.CompletedLineColor()
}

func (v *View) SetCompletedLineColor(c lipgloss.TerminalColor) *View {
	v.indicator.SetCompletedLineColor(c)
	return v
}

func (v *View) NotCompletedLineColor() lipgloss.TerminalColor {
	return v.indicator.NotCompletedLineColor()
}

func (v *View) SetNotCompletedLineColor(c lipgloss.TerminalColor) *View {
	v.indicator.SetNotCompletedLineColor(c)
	return v
}

// NotCompletedLineDashed reports whether unfinished connectors are dashed.
func (v *View) NotCompletedLineDashed() bool { return v.indicator.NotCompletedLineDashed() }

// SetNotCompletedLineDashed picks dashed (true) or solid (false) connectors
// for steps that are not completed.
func (v *View) SetNotCompletedLineDashed(dashed bool) *View {
	v.indicator.SetNotCompletedLineDashed(dashed)
	return v
}

// LineLengthCells returns the spacing between icons in cells.
func (v *View) LineLengthCells() float64 { return v.indicator.LineLengthCells() }

// SetLineLength sets the spacing between icons in dp.
func (v *View) SetLineLength(dp float64) *View {
	v.indicator.SetLineLength(dp)
	return v
}

// SetLineLengthCells sets the spacing between icons in cells.
func (v *View) SetLineLengthCells(cells float64) *View {
	v.indicator.SetLineLengthCells(cells)
	return v
}

// CircleRadiusCells returns the icon radius in cells.
func (v *View) CircleRadiusCells() float64 { return v.indicator.CircleRadiusCells() }

// SetCircleRadius sets the icon radius in dp.
func (v *View) SetCircleRadius(dp float64) *View {
	v.indicator.SetCircleRadius(dp)
	return v
}

// SetCircleRadiusCells sets the icon radius in cells.
func (v *View) SetCircleRadiusCells(cells float64) *View {
	v.indicator.SetCircleRadiusCells(cells)
	return v
}

// Reverse reports whether step 0 is drawn at the bottom. Vertical only.
func (v *View) Reverse() bool { return v.indicator.Reverse() }

// SetReverse sets the vertical drawing direction. Horizontal views ignore it.
func (v *View) SetReverse(reverse bool) *View {
	v.indicator.SetReverse(reverse)
	return v
}

// SetInsets pads the main axis of a vertical view.
func (v *View) SetInsets(in Insets) *View {
	v.indicator.SetInsets(in)
	return v
}

// OnGeometryUpdated chains fn after the view's own label placement on every
// geometry recompute.
func (v *View) OnGeometryUpdated(fn func()) *View {
	v.indicator.OnUpdate(func() {
		v.updateLabels()
		if fn != nil {
			fn()
		}
	})
	return v
}
