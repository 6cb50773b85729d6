package stepview

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Default proportions of the base indicator dimension.
const (
	defaultRadiusRatio    = 0.28
	defaultSpacingRatio   = 0.85
	defaultThicknessRatio = 0.05
)

// BarOverlap is how far, in cells, a solid bar reaches under each icon it
// connects. It is a fixed cell count and does not scale with Density.
const BarOverlap = 1.0

// Indicator paints step icons and the connectors between them. It reads a
// snapshot of the step list and never modifies it.
type Indicator struct {
	layout  Layout
	density Density
	logger  *log.Logger

	completedIcon    Icon
	currentIcon      Icon
	notCompletedIcon Icon

	completedLineColor    lipgloss.TerminalColor
	notCompletedLineColor lipgloss.TerminalColor
	dashed                bool

	radius    float64 // main-axis cells
	spacing   float64 // main-axis cells
	thickness float64 // cross-axis cells
	reverse   bool
	insets    Insets

	steps   []Step
	centers []float64

	wc, hc   Constraint
	size     Size
	measured bool

	onUpdate func()
}

// NewIndicator returns an indicator with the built-in style for the layout.
func NewIndicator(layout Layout, density Density, logger *log.Logger) *Indicator {
	if logger == nil {
		logger = log.Default()
	}
	main := density.ToCells(baseIndicatorDP, layout.Axis())
	cross := density.ToCells(baseIndicatorDP, crossAxis(layout.Axis()))
	return &Indicator{
		layout:                layout,
		density:               density,
		logger:                logger,
		completedIcon:         DefaultCompletedIcon,
		currentIcon:           DefaultCurrentIcon,
		notCompletedIcon:      DefaultNotCompletedIcon,
		completedLineColor:    white,
		notCompletedLineColor: white,
		dashed:                true,
		radius:                defaultRadiusRatio * main,
		spacing:               defaultSpacingRatio * main,
		thickness:             defaultThicknessRatio * cross,
		reverse:               true,
	}
}

func crossAxis(a Axis) Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

// OnUpdate registers the single listener told about every geometry
// recompute. It runs synchronously inside the call that triggered it.
func (ind *Indicator) OnUpdate(fn func()) {
	ind.onUpdate = fn
}

func (ind *Indicator) params() Params {
	return Params{
		Radius:  ind.radius,
		Spacing: ind.spacing,
		Reverse: ind.reverse,
		Insets:  ind.insets,
		Base:    ind.density.Base(),
	}
}

// NumSteps returns the number of steps, zero when none are set.
func (ind *Indicator) NumSteps() int {
	return len(ind.steps)
}

// SetSteps replaces the step snapshot. A change in step count triggers a new
// measure pass; a sized indicator then recomputes its geometry.
func (ind *Indicator) SetSteps(steps []Step) {
	prev := len(ind.steps)
	ind.logger.Debug("indicator steps set", "count", len(steps), "previous", prev)
	ind.steps = slices.Clone(steps)
	if prev != len(ind.steps) {
		ind.requestLayout()
		return
	}
	ind.invalidate()
}

// Measure computes and stores the size the indicator wants under the offers.
func (ind *Indicator) Measure(w, h Constraint) Size {
	ind.wc, ind.hc = w, h
	ind.measured = true
	return ind.layout.Measure(len(ind.steps), ind.params(), w, h)
}

// SetSize applies a new size and recomputes the geometry.
func (ind *Indicator) SetSize(size Size) {
	ind.size = size
	ind.recompute()
}

// Size returns the last applied size.
func (ind *Indicator) Size() Size {
	return ind.size
}

// requestLayout re-runs measure with the last offers and applies the result.
func (ind *Indicator) requestLayout() {
	if !ind.measured {
		return
	}
	ind.SetSize(ind.Measure(ind.wc, ind.hc))
}

// invalidate recomputes the geometry of an already sized indicator.
func (ind *Indicator) invalidate() {
	if !ind.measured {
		return
	}
	ind.recompute()
}

func (ind *Indicator) recompute() {
	ind.centers = ind.layout.Centers(len(ind.steps), ind.params(), ind.size)
	if ind.onUpdate != nil {
		ind.onUpdate()
	}
}

// Centers returns a copy of the current geometry snapshot.
func (ind *Indicator) Centers() []float64 {
	return slices.Clone(ind.centers)
}

// Draw paints connectors, then icons. Geometry is recomputed first on every
// pass, listener included, even when nothing changed since the last one.
func (ind *Indicator) Draw(c Canvas) {
	if ind.measured {
		ind.recompute()
	}
	n := len(ind.steps)
	if n == 0 || len(ind.centers) != n {
		return
	}

	for i := 0; i < n-1; i++ {
		ind.drawSegment(c, i)
	}
	for i, step := range ind.steps {
		ind.drawIcon(c, ind.iconFor(step.State), ind.centers[i])
	}
}

// drawSegment paints the connector between step i and i+1. Its style is
// decided by the state of step i+1.
func (ind *Indicator) drawSegment(c Canvas, i int) {
	from, to := ind.centers[i], ind.centers[i+1]
	r := ind.radius
	next := ind.steps[i+1].State

	// Edges of the two icons facing each other, earlier icon first.
	a, b := from+r, to-r
	if to < from {
		a, b = from-r, to+r
	}
	lo, hi := min(a, b), max(a, b)
	bar := ind.crossRect(lo-BarOverlap, hi+BarOverlap)

	switch {
	case next == Completed:
		c.FillRect(bar, ind.completedLineColor)
	case ind.dashed:
		c.DashedLine(ind.point(a), ind.point(b), ind.notCompletedLineColor)
	default:
		c.FillRect(bar, ind.notCompletedLineColor)
	}
}

func (ind *Indicator) drawIcon(c Canvas, icon Icon, center float64) {
	cross := ind.crossCenter()
	r := ind.radius
	if ind.layout.Axis() == AxisX {
		c.DrawIcon(icon, Rect{Left: center - r, Top: cross - r, Right: center + r, Bottom: cross + r})
		return
	}
	c.DrawIcon(icon, Rect{Left: cross - r, Top: center - r, Right: cross + r, Bottom: center + r})
}

func (ind *Indicator) iconFor(s State) Icon {
	switch s {
	case Completed:
		return ind.completedIcon
	case Current:
		return ind.currentIcon
	default:
		return ind.notCompletedIcon
	}
}

// crossCenter is the fixed cross-axis coordinate of the icon row/column.
func (ind *Indicator) crossCenter() float64 {
	if ind.layout.Axis() == AxisX {
		return 0.5 * float64(ind.size.Height)
	}
	return 0.5 * float64(ind.size.Width)
}

// crossRect builds a bar spanning [lo, hi] on the main axis, centred on the
// cross axis with the configured thickness.
func (ind *Indicator) crossRect(lo, hi float64) Rect {
	cc := ind.crossCenter()
	t0, t1 := cc-ind.thickness/2, cc+ind.thickness/2
	if ind.layout.Axis() == AxisX {
		return Rect{Left: lo, Top: t0, Right: hi, Bottom: t1}
	}
	return Rect{Left: t0, Top: lo, Right: t1, Bottom: hi}
}

func (ind *Indicator) point(main float64) Point {
	if ind.layout.Axis() == AxisX {
		return Point{X: main, Y: ind.crossCenter()}
	}
	return Point{X: ind.crossCenter(), Y: main}
}

// Icons.

func (ind *Indicator) CompletedIcon() Icon { return ind.completedIcon }
func (ind *Indicator) SetCompletedIcon(i Icon) { ind.completedIcon = i }
func (ind *Indicator) CurrentIcon() Icon { return ind.currentIcon }
func (ind *Indicator) SetCurrentIcon(i Icon) { ind.currentIcon = i }
func (ind *Indicator) NotCompletedIcon() Icon { return ind.notCompletedIcon }
func (ind *Indicator) SetNotCompletedIcon(i Icon) { ind.notCompletedIcon = i }

// Lines.

func (ind *Indicator) CompletedLineColor() lipgloss.TerminalColor { return ind.completedLineColor }

func (ind *Indicator) SetCompletedLineColor(c lipgloss.TerminalColor) {
	ind.completedLineColor = c
}

func (ind *Indicator) NotCompletedLineColor() lipgloss.TerminalColor {
	return ind.notCompletedLineColor
}

func (ind *Indicator) SetNotCompletedLineColor(c lipgloss.TerminalColor) {
	ind.notCompletedLineColor = c
}

// NotCompletedLineDashed reports whether connectors to unfinished steps are
// dashed (true) or solid bars (false).
func (ind *Indicator) NotCompletedLineDashed() bool { return ind.dashed }

func (ind *Indicator) SetNotCompletedLineDashed(dashed bool) { ind.dashed = dashed }

// BarThickness is the cross-axis thickness of solid bars, in cells.
func (ind *Indicator) BarThickness() float64 { return ind.thickness }

func (ind *Indicator) SetBarThickness(cells float64) { ind.thickness = cells }

// Geometry inputs.

// CircleRadiusCells returns the icon radius in main-axis cells.
func (ind *Indicator) CircleRadiusCells() float64 { return ind.radius }

// SetCircleRadiusCells sets the icon radius in main-axis cells.
func (ind *Indicator) SetCircleRadiusCells(cells float64) {
	ind.radius = cells
	ind.requestLayout()
}

// SetCircleRadius sets the icon radius in dp.
func (ind *Indicator) SetCircleRadius(dp float64) {
	cells := ind.density.ToCells(dp, ind.layout.Axis())
	ind.logger.Debug("circle radius set", "dp", dp, "cells", cells)
	ind.SetCircleRadiusCells(cells)
}

// LineLengthCells returns the spacing between icons in main-axis cells.
func (ind *Indicator) LineLengthCells() float64 { return ind.spacing }

// SetLineLengthCells sets the spacing between icons in main-axis cells.
func (ind *Indicator) SetLineLengthCells(cells float64) {
	ind.spacing = cells
	ind.requestLayout()
}

// SetLineLength sets the spacing between icons in dp.
func (ind *Indicator) SetLineLength(dp float64) {
	ind.SetLineLengthCells(ind.density.ToCells(dp, ind.layout.Axis()))
}

// Reverse reports whether step 0 is drawn at the end of the main axis. Only
// the vertical layout honours it.
func (ind *Indicator) Reverse() bool { return ind.reverse }

func (ind *Indicator) SetReverse(reverse bool) {
	ind.reverse = reverse
	ind.invalidate()
}

// Insets returns the main-axis padding.
func (ind *Indicator) Insets() Insets { return ind.insets }

func (ind *Indicator) SetInsets(in Insets) {
	ind.insets = in
	ind.requestLayout()
}

// Density returns the unit converter in use.
func (ind *Indicator) Density() Density { return ind.density }
