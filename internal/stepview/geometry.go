package stepview

import "math"

// Insets pads the main axis of a vertical indicator.
type Insets struct {
	Top    float64
	Bottom float64
}

// Params is everything the geometry engine needs besides the step count.
// Radius and Spacing are in cells along the layout's main axis.
type Params struct {
	Radius  float64
	Spacing float64
	Reverse bool
	Insets  Insets
	Base    Size
}

// pitch is the distance between two consecutive icon centres.
func (p Params) pitch() float64 {
	return 2*p.Radius + p.Spacing
}

// extent is the main-axis length taken by n icons and their connectors.
func (p Params) extent(n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*2*p.Radius + float64(n-1)*p.Spacing
}

// Layout computes icon centre positions along one axis. Implementations are
// stateless.
type Layout interface {
	// Axis is the main axis steps are laid out along.
	Axis() Axis
	// Measure returns the indicator size for n steps under the given offers.
	Measure(n int, p Params, w, h Constraint) Size
	// Centers returns n main-axis centre coordinates for an indicator of the
	// given size.
	Centers(n int, p Params, size Size) []float64
	// LabelAnchor positions a measured label relative to the label container.
	LabelAnchor(center float64, label Size, p Params, textSize float64) (x, y float64)
}

// Horizontal lays steps out left to right, centred in the available width.
type Horizontal struct{}

var _ Layout = Horizontal{}

func (Horizontal) Axis() Axis { return AxisX }

func (Horizontal) Measure(_ int, p Params, w, h Constraint) Size {
	return Size{
		Width:  w.clamp(2 * p.Base.Width),
		Height: h.bound(p.Base.Height),
	}
}

// Centers spreads the strip around the middle of size.Width. A strip wider
// than the indicator gets a negative left padding and overflows both sides.
func (Horizontal) Centers(n int, p Params, size Size) []float64 {
	if n <= 0 {
		return nil
	}
	left := (float64(size.Width) - p.extent(n)) / 2
	centers := make([]float64, n)
	for i := range n {
		centers[i] = left + p.Radius + float64(i)*p.pitch()
	}
	return centers
}

// LabelAnchor centres the label under its icon.
func (Horizontal) LabelAnchor(center float64, label Size, _ Params, _ float64) (float64, float64) {
	return center - float64(label.Width)/2, 0
}

// Vertical lays steps out along Y. With Reverse set step 0 sits at the bottom.
type Vertical struct{}

var _ Layout = Vertical{}

func (Vertical) Axis() Axis { return AxisY }

func (Vertical) Measure(n int, p Params, w, _ Constraint) Size {
	height := 0
	if n > 0 {
		// Rounded up so the outermost icon is not cut off by a partial row.
		height = int(math.Ceil(p.Insets.Top + p.Insets.Bottom + p.extent(n)))
	}
	return Size{
		Width:  w.bound(p.Base.Width),
		Height: height,
	}
}

func (Vertical) Centers(n int, p Params, size Size) []float64 {
	if n <= 0 {
		return nil
	}
	centers := make([]float64, n)
	for i := range n {
		offset := p.Radius + float64(i)*p.pitch()
		if p.Reverse {
			centers[i] = float64(size.Height) - offset
		} else {
			centers[i] = offset
		}
	}
	return centers
}

// LabelAnchor places the label beside its icon. The offset approximates
// vertical centring from the radius and text size rather than glyph metrics.
func (Vertical) LabelAnchor(center float64, _ Size, p Params, textSize float64) (float64, float64) {
	return 0, center - p.Radius/2 - textSize/2
}
