package huepick

import "math"

// Rect is an axis-aligned region in pointer coordinates. X, Y is the
// top-left corner; Width and Height span the region so that X+Width maps
// to fraction 1.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether the point lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Fractions returns the unclamped position of a point relative to r,
// 0 at the top-left edge and 1 at the bottom-right edge. A zero-sized
// axis reports 0.
func (r Rect) Fractions(x, y float64) (fx, fy float64) {
	if r.Width > 0 {
		fx = (x - r.X) / r.Width
	}
	if r.Height > 0 {
		fy = (y - r.Y) / r.Height
	}
	return fx, fy
}

// Layout locates the saturation/lightness surface and the hue strip.
type Layout struct {
	Surface  Rect
	HueStrip Rect
}

// SurfaceAt maps a pointer position on the 2D surface to saturation
// (left to right, 0 to 100) and lightness (top to bottom, 100 to 0).
// Positions outside the surface clamp to its edges.
func SurfaceAt(surface Rect, x, y float64) (s, l int) {
	fx, fy := surface.Fractions(x, y)
	fx, fy = clamp01(fx), clamp01(fy)
	return int(math.Round(100 * fx)), int(math.Round(100 * (1 - fy)))
}

// SurfacePoint is the inverse of SurfaceAt: the position of a
// saturation/lightness pair on the surface.
func SurfacePoint(surface Rect, s, l int) (x, y float64) {
	x = surface.X + surface.Width*float64(clampPercent(s))/100
	y = surface.Y + surface.Height*(1-float64(clampPercent(l))/100)
	return x, y
}

// HueAt maps a vertical pointer position on the hue strip to a hue in
// [0,360). The bottom edge folds back to 0 (red).
func HueAt(strip Rect, y float64) int {
	_, fy := strip.Fractions(strip.X, y)
	hue := int(math.Round(360 * clamp01(fy)))
	return hue % 360
}

// HuePoint returns the vertical position of hue on the strip.
func HuePoint(strip Rect, hue int) float64 {
	return strip.Y + strip.Height*float64(hue)/360
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
