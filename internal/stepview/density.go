package stepview

// Axis identifies one of the two screen axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Density converts density-independent pixels (dp) into terminal cells.
// Terminal cells are roughly twice as tall as they are wide, so each axis
// carries its own factor.
type Density struct {
	Cols float64 // cells per dp along X
	Rows float64 // cells per dp along Y
}

// DefaultDensity maps the 40dp base indicator to 8 columns by 2 rows.
var DefaultDensity = Density{Cols: 0.2, Rows: 0.05}

// baseIndicatorDP is the platform default indicator dimension.
const baseIndicatorDP = 40

// ToCells converts dp to cells along the given axis.
func (d Density) ToCells(dp float64, axis Axis) float64 {
	if axis == AxisY {
		return dp * d.Rows
	}
	return dp * d.Cols
}

// ToDP converts cells along the given axis back to dp. A zero factor yields 0.
func (d Density) ToDP(cells float64, axis Axis) float64 {
	f := d.Cols
	if axis == AxisY {
		f = d.Rows
	}
	if f == 0 {
		return 0
	}
	return cells / f
}

// Base returns the base indicator dimension in whole cells along both axes.
func (d Density) Base() Size {
	return Size{
		Width:  int(d.ToCells(baseIndicatorDP, AxisX)),
		Height: int(d.ToCells(baseIndicatorDP, AxisY)),
	}
}

// Size is a width/height pair in cells.
type Size struct {
	Width  int
	Height int
}

// MeasureMode says how a parent constrains one dimension.
type MeasureMode int

const (
	Unspecified MeasureMode = iota // no bound
	AtMost                         // at most Size cells
	Exactly                        // exactly Size cells
)

// Constraint is the parent's offer for one dimension.
type Constraint struct {
	Mode MeasureMode
	Size int
}

// Exact returns an Exactly constraint.
func Exact(n int) Constraint { return Constraint{Mode: Exactly, Size: n} }

// UpTo returns an AtMost constraint.
func UpTo(n int) Constraint { return Constraint{Mode: AtMost, Size: n} }

// Unbounded returns an Unspecified constraint.
func Unbounded() Constraint { return Constraint{Mode: Unspecified} }

// clamp applies c to a preferred size: Exactly wins outright, AtMost takes
// the smaller of the two, Unspecified keeps the preference.
func (c Constraint) clamp(preferred int) int {
	switch c.Mode {
	case Exactly:
		return c.Size
	case AtMost:
		return min(preferred, c.Size)
	default:
		return preferred
	}
}

// bound caps a preferred size by any bounded offer, Exactly included.
func (c Constraint) bound(preferred int) int {
	if c.Mode == Unspecified {
		return preferred
	}
	return min(preferred, c.Size)
}
