package stepview

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type drawOp struct {
	kind     string // "rect", "dash", "icon"
	rect     Rect
	from, to Point
	color    lipgloss.TerminalColor
	icon     Icon
}

// recorder is a Canvas that keeps every call for inspection.
type recorder struct {
	ops []drawOp
}

func (r *recorder) FillRect(rect Rect, color lipgloss.TerminalColor) {
	r.ops = append(r.ops, drawOp{kind: "rect", rect: rect, color: color})
}

func (r *recorder) DashedLine(from, to Point, color lipgloss.TerminalColor) {
	r.ops = append(r.ops, drawOp{kind: "dash", from: from, to: to, color: color})
}

func (r *recorder) DrawIcon(icon Icon, bounds Rect) {
	r.ops = append(r.ops, drawOp{kind: "icon", rect: bounds, icon: icon})
}

func (r *recorder) segments() []drawOp {
	var out []drawOp
	for _, op := range r.ops {
		if op.kind != "icon" {
			out = append(out, op)
		}
	}
	return out
}

func (r *recorder) icons() []drawOp {
	var out []drawOp
	for _, op := range r.ops {
		if op.kind == "icon" {
			out = append(out, op)
		}
	}
	return out
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

var (
	doneColor    = lipgloss.Color("#ea655c")
	pendingColor = lipgloss.Color("#eaac5c")
)

func newTestIndicator(layout Layout) *Indicator {
	ind := NewIndicator(layout, DefaultDensity, quietLogger())
	ind.SetCompletedLineColor(doneColor)
	ind.SetNotCompletedLineColor(pendingColor)
	return ind
}

func abcSteps() []Step {
	return []Step{
		NewStepWithState("A", Completed),
		NewStepWithState("B", Current),
		NewStepWithState("C", NotCompleted),
	}
}

func TestIndicatorDefaults(t *testing.T) {
	ind := NewIndicator(Horizontal{}, DefaultDensity, nil)

	assert.True(t, ind.NotCompletedLineDashed())
	assert.True(t, ind.Reverse())
	assert.Equal(t, DefaultCompletedIcon, ind.CompletedIcon())
	assert.Equal(t, DefaultCurrentIcon, ind.CurrentIcon())
	assert.Equal(t, DefaultNotCompletedIcon, ind.NotCompletedIcon())
	assert.Equal(t, lipgloss.Color("#ffffff"), ind.CompletedLineColor())
	assert.Equal(t, lipgloss.Color("#ffffff"), ind.NotCompletedLineColor())
	// 0.28 and 0.85 of the 8-column base.
	assert.InDelta(t, 2.24, ind.CircleRadiusCells(), 1e-9)
	assert.InDelta(t, 6.8, ind.LineLengthCells(), 1e-9)
}

func TestIndicatorDrawsNothingBeforeSizing(t *testing.T) {
	ind := newTestIndicator(Horizontal{})
	ind.SetSteps(abcSteps())

	rec := &recorder{}
	ind.Draw(rec)
	assert.Empty(t, rec.ops)
	assert.Empty(t, ind.Centers())
}

func TestIndicatorDrawsNothingWithoutSteps(t *testing.T) {
	ind := newTestIndicator(Horizontal{})
	ind.SetSize(ind.Measure(Exact(60), Unbounded()))
	ind.SetSteps(nil)

	rec := &recorder{}
	ind.Draw(rec)
	assert.Empty(t, rec.ops)
}

func TestIndicatorSegmentStyleFollowsNextStep(t *testing.T) {
	ind := newTestIndicator(Horizontal{})
	ind.SetSize(ind.Measure(Exact(60), Unbounded()))
	ind.SetSteps(abcSteps())

	rec := &recorder{}
	ind.Draw(rec)
	segs := rec.segments()
	require.Len(t, segs, 2)

	// B is current and C is not completed: both connectors are dashed.
	assert.Equal(t, "dash", segs[0].kind)
	assert.Equal(t, pendingColor, segs[0].color)
	assert.Equal(t, "dash", segs[1].kind)

	// Completing B turns only the A->B connector into a completed bar.
	steps := abcSteps()
	steps[1].State = Completed
	ind.SetSteps(steps)

	rec = &recorder{}
	ind.Draw(rec)
	segs = rec.segments()
	require.Len(t, segs, 2)
	assert.Equal(t, "rect", segs[0].kind)
	assert.Equal(t, doneColor, segs[0].color)
	assert.Equal(t, "dash", segs[1].kind)
	assert.Equal(t, pendingColor, segs[1].color)
}

func TestIndicatorSolidNotCompletedLine(t *testing.T) {
	ind := newTestIndicator(Horizontal{})
	ind.SetNotCompletedLineDashed(false)
	ind.SetSize(ind.Measure(Exact(60), Unbounded()))
	ind.SetSteps(abcSteps())

	rec := &recorder{}
	ind.Draw(rec)
	segs := rec.segments()
	require.Len(t, segs, 2)
	for _, s := range segs {
		assert.Equal(t, "rect", s.kind)
		assert.Equal(t, pendingColor, s.color)
	}
}

func TestIndicatorHorizontalSegmentGeometry(t *testing.T) {
	ind := newTestIndicator(Horizontal{})
	ind.SetCircleRadiusCells(2)
	ind.SetLineLengthCells(4)
	ind.SetSize(ind.Measure(Exact(40), Unbounded()))
	steps := abcSteps()
	steps[2].State = Completed
	ind.SetSteps(steps)

	rec := &recorder{}
	ind.Draw(rec)
	segs := rec.segments()
	require.Len(t, segs, 2)

	// Centres are 12, 20, 28 and the cross centre is half the height.
	cy := 0.5 * float64(ind.Size().Height)
	assert.Equal(t, Point{X: 14, Y: cy}, segs[0].from)
	assert.Equal(t, Point{X: 18, Y: cy}, segs[0].to)

	bar := segs[1].rect
	assert.InDelta(t, 22-BarOverlap, bar.Left, 1e-9)
	assert.InDelta(t, 26+BarOverlap, bar.Right, 1e-9)
	assert.InDelta(t, ind.BarThickness(), bar.Bottom-bar.Top, 1e-9)
}

func TestIndicatorIconsFollowState(t *testing.T) {
	ind := newTestIndicator(Horizontal{})
	custom := Icon{Glyph: "★", Color: doneColor}
	ind.SetCompletedIcon(custom)
	ind.SetCircleRadiusCells(2)
	ind.SetLineLengthCells(4)
	ind.SetSize(ind.Measure(Exact(40), Unbounded()))
	ind.SetSteps(abcSteps())

	rec := &recorder{}
	ind.Draw(rec)
	icons := rec.icons()
	require.Len(t, icons, 3)
	assert.Equal(t, custom, icons[0].icon)
	assert.Equal(t, DefaultCurrentIcon, icons[1].icon)
	assert.Equal(t, DefaultNotCompletedIcon, icons[2].icon)

	// Bounds are a 2R square around each centre.
	b := icons[1].rect
	assert.InDelta(t, 18.0, b.Left, 1e-9)
	assert.InDelta(t, 22.0, b.Right, 1e-9)
	assert.InDelta(t, 4.0, b.Bottom-b.Top, 1e-9)
}

func TestIndicatorVerticalReverseRunsFromEarlierStep(t *testing.T) {
	ind := newTestIndicator(Vertical{})
	ind.SetCircleRadiusCells(1)
	ind.SetLineLengthCells(2)
	ind.SetSize(ind.Measure(Unbounded(), Unbounded()))
	ind.SetSteps(abcSteps())

	// Height is 3*2 + 2*2 = 10: centres 9, 5, 1.
	assert.Equal(t, []float64{9, 5, 1}, ind.Centers())

	rec := &recorder{}
	ind.Draw(rec)
	segs := rec.segments()
	require.Len(t, segs, 2)
	assert.Equal(t, "dash", segs[0].kind)
	assert.InDelta(t, 8.0, segs[0].from.Y, 1e-9)
	assert.InDelta(t, 6.0, segs[0].to.Y, 1e-9)
	assert.Equal(t, segs[0].from.X, segs[0].to.X)

	ind.SetReverse(false)
	assert.Equal(t, []float64{1, 5, 9}, ind.Centers())

	rec = &recorder{}
	ind.Draw(rec)
	segs = rec.segments()
	assert.InDelta(t, 2.0, segs[0].from.Y, 1e-9)
	assert.InDelta(t, 4.0, segs[0].to.Y, 1e-9)
}

func TestIndicatorVerticalBarIsNormalised(t *testing.T) {
	ind := newTestIndicator(Vertical{})
	ind.SetCircleRadiusCells(1)
	ind.SetLineLengthCells(2)
	ind.SetSize(ind.Measure(Unbounded(), Unbounded()))
	ind.SetSteps([]Step{NewStepWithState("A", Completed), NewStepWithState("B", Completed)})

	rec := &recorder{}
	ind.Draw(rec)
	segs := rec.segments()
	require.Len(t, segs, 1)
	bar := segs[0].rect
	assert.Less(t, bar.Top, bar.Bottom)
	assert.InDelta(t, 2-BarOverlap, bar.Top, 1e-9)
	assert.InDelta(t, 4+BarOverlap, bar.Bottom, 1e-9)
}

func TestIndicatorNotifiesOncePerRecompute(t *testing.T) {
	ind := newTestIndicator(Horizontal{})
	calls := 0
	ind.OnUpdate(func() { calls++ })

	ind.SetSteps(abcSteps())
	assert.Equal(t, 0, calls, "not sized yet")

	ind.SetSize(ind.Measure(Exact(60), Unbounded()))
	assert.Equal(t, 1, calls)

	ind.SetSteps(abcSteps())
	assert.Equal(t, 2, calls)

	ind.SetCircleRadius(10)
	assert.Equal(t, 3, calls)
}

// Drawing recomputes the geometry and notifies the listener on every pass,
// even when no input changed. This repeats work but matches the behaviour
// hosts of the widget already observe.
func TestDrawRecomputesGeometryOnEveryPass(t *testing.T) {
	ind := newTestIndicator(Horizontal{})
	ind.SetSize(ind.Measure(Exact(60), Unbounded()))
	ind.SetSteps(abcSteps())

	calls := 0
	ind.OnUpdate(func() { calls++ })
	before := ind.Centers()

	ind.Draw(&recorder{})
	ind.Draw(&recorder{})
	assert.Equal(t, 2, calls)
	assert.Equal(t, before, ind.Centers())
}

func TestIndicatorDoesNotAliasCallerSlice(t *testing.T) {
	ind := newTestIndicator(Horizontal{})
	ind.SetSize(ind.Measure(Exact(60), Unbounded()))
	steps := abcSteps()
	ind.SetSteps(steps)

	steps[1].State = Completed
	rec := &recorder{}
	ind.Draw(rec)
	assert.Equal(t, "dash", rec.segments()[0].kind)
}
