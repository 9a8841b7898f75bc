package lantern

import "math"

// Vec is a 2D point or vector. It is a value type: every operation returns a
// new Vec and leaves the receiver untouched, so assignment is a copy.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Scale returns v with both components multiplied by f.
func (v Vec) Scale(f float64) Vec {
	return Vec{v.X * f, v.Y * f}
}

// Floor rounds both components down.
func (v Vec) Floor() Vec {
	return Vec{math.Floor(v.X), math.Floor(v.Y)}
}

// Round rounds both components to the nearest integer, halves away from zero.
func (v Vec) Round() Vec {
	return Vec{math.Round(v.X), math.Round(v.Y)}
}

// Len returns the magnitude of v.
func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Manhattan returns the block distance between v and o.
func (v Vec) Manhattan(o Vec) float64 {
	return math.Abs(v.X-o.X) + math.Abs(v.Y-o.Y)
}

// Clamp returns v limited to the closed box spanned by r.
func (v Vec) Clamp(r Rect) Vec {
	return Vec{
		X: clamp(v.X, r.X, r.X+r.Width),
		Y: clamp(v.Y, r.Y, r.Y+r.Height),
	}
}

// Axis selects one of the two coordinate axes.
type Axis uint8

const (
	AxisX Axis = iota // horizontal; its dimension is Width
	AxisY             // vertical; its dimension is Height
)

// String implements fmt.Stringer.
func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
//
// Negative dimensions are not rejected; they produce degenerate geometry.
// Shrink is the only operation that clamps them at zero.
type Rect struct {
	X, Y, Width, Height float64
}

// Pos returns the top-left corner.
func (r Rect) Pos() Vec {
	return Vec{r.X, r.Y}
}

// Center returns the midpoint of r.
func (r Rect) Center() Vec {
	return Vec{r.X + r.Width/2, r.Y + r.Height/2}
}

// CenterOn returns r moved so that its center lies on v.
func (r Rect) CenterOn(v Vec) Rect {
	r.X = v.X - r.Width/2
	r.Y = v.Y - r.Height/2
	return r
}

// Zoom scales the dimensions of r by f about its center.
func (r Rect) Zoom(f float64) Rect {
	c := r.Center()
	r.Width *= f
	r.Height *= f
	return r.CenterOn(c)
}

// Scale multiplies position and dimensions by f.
func (r Rect) Scale(f float64) Rect {
	return Rect{r.X * f, r.Y * f, r.Width * f, r.Height * f}
}

// Shrink insets every edge by d, keeping the center. Dimensions stop at zero.
// A negative d grows the rectangle.
func (r Rect) Shrink(d float64) Rect {
	c := r.Center()
	r.Width = math.Max(0, r.Width-2*d)
	r.Height = math.Max(0, r.Height-2*d)
	return r.CenterOn(c)
}

// Round rounds all four fields to the nearest integer.
func (r Rect) Round() Rect {
	return Rect{math.Round(r.X), math.Round(r.Y), math.Round(r.Width), math.Round(r.Height)}
}

// Floor rounds all four fields down.
func (r Rect) Floor() Rect {
	return Rect{math.Floor(r.X), math.Floor(r.Y), math.Floor(r.Width), math.Floor(r.Height)}
}

// Area returns Width * Height.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// DimInRange reports whether both dimensions lie in [lo, hi].
func (r Rect) DimInRange(lo, hi float64) bool {
	return lo <= r.Width && r.Width <= hi && lo <= r.Height && r.Height <= hi
}

// Contains reports whether v lies inside r. The horizontal test includes both
// edges; the vertical test excludes both.
func (r Rect) Contains(v Vec) bool {
	return r.X <= v.X && v.X <= r.X+r.Width &&
		r.Y < v.Y && v.Y < r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		other.X <= r.X+r.Width &&
		r.Y <= other.Y+other.Height &&
		other.Y <= r.Y+r.Height
}

// Intersection returns the shared region of r and other. ok is false when
// they do not intersect.
func (r Rect) Intersection(other Rect) (Rect, bool) {
	if !r.Intersects(other) {
		return Rect{}, false
	}
	x0 := math.Max(r.X, other.X)
	y0 := math.Max(r.Y, other.Y)
	x1 := math.Min(r.X+r.Width, other.X+other.Width)
	y1 := math.Min(r.Y+r.Height, other.Y+other.Height)
	return Rect{x0, y0, x1 - x0, y1 - y0}, true
}

// Split partitions r into two adjoining rectangles. AxisX divides the width,
// AxisY the height; ratio is the share given to the first part.
func (r Rect) Split(ratio float64, axis Axis) [2]Rect {
	if axis == AxisX {
		p := r.Width * ratio
		return [2]Rect{
			{r.X, r.Y, p, r.Height},
			{r.X + p, r.Y, r.Width - p, r.Height},
		}
	}
	p := r.Height * ratio
	return [2]Rect{
		{r.X, r.Y, r.Width, p},
		{r.X, r.Y + p, r.Width, r.Height - p},
	}
}

// span returns the position and extent of r along axis.
func (r Rect) span(axis Axis) (pos, dim float64) {
	if axis == AxisY {
		return r.Y, r.Height
	}
	return r.X, r.Width
}

// Overlap returns the shared interval of r and other projected on axis.
// ok is false when the projections only touch or are disjoint.
func (r Rect) Overlap(other Rect, axis Axis) (start, end float64, ok bool) {
	lowPos, lowDim := r.span(axis)
	highPos, highDim := other.span(axis)
	if highPos < lowPos {
		lowPos, lowDim, highPos, highDim = highPos, highDim, lowPos, lowDim
	}
	if lowPos+lowDim > highPos {
		return highPos, math.Min(lowPos+lowDim, highPos+highDim), true
	}
	return 0, 0, false
}

// SeparatingAxes returns the axes along which r and other do not overlap.
// An empty result means the rectangles overlap with positive area.
func (r Rect) SeparatingAxes(other Rect) []Axis {
	var axes []Axis
	for _, a := range [2]Axis{AxisX, AxisY} {
		if _, _, ok := r.Overlap(other, a); !ok {
			axes = append(axes, a)
		}
	}
	return axes
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
