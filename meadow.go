package meadow

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// RGB8 builds an opaque Color from 8-bit channel values.
func RGB8(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// Scale multiplies the RGB channels by f, leaving alpha untouched.
func (c Color) Scale(f float64) Color {
	return Color{c.R * f, c.G * f, c.B * f, c.A}
}

// Scale8 multiplies the 8-bit RGB channels by f, truncating each result to
// a whole 8-bit value.
func (c Color) Scale8(f float64) Color {
	scale := func(v float64) float64 {
		return float64(uint8(float64(channel8(v))*f)) / 255
	}
	return Color{scale(c.R), scale(c.G), scale(c.B), c.A}
}

// RGBA returns the color as a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: channel8(c.R * c.A),
		G: channel8(c.G * c.A),
		B: channel8(c.B * c.A),
		A: channel8(c.A),
	}
}

func channel8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Vec2 is a 2D vector. Simulation code measures it in tiles, the camera in
// world pixels.
type Vec2 struct {
	X, Y float64
}

// FromAngle returns the unit vector pointing at angle rad (clockwise, Y down).
func FromAngle(rad float64) Vec2 {
	sin, cos := math.Sincos(rad)
	return Vec2{cos, sin}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * f.
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Angle returns the direction of v in radians.
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// AngleTo returns the signed angle in (-pi, pi] that rotates v onto o.
func (v Vec2) AngleTo(o Vec2) float64 {
	cross := v.X*o.Y - v.Y*o.X
	dot := v.X*o.X + v.Y*o.Y
	return math.Atan2(cross, dot)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// TileRect is a square block of tiles anchored at its top-left tile.
type TileRect struct {
	X, Y, Size int
}

// Overlaps reports whether r and o share at least one tile.
func (r TileRect) Overlaps(o TileRect) bool {
	right, bottom := r.X+r.Size-1, r.Y+r.Size-1
	oRight, oBottom := o.X+o.Size-1, o.Y+o.Size-1
	return !(r.X > oRight || o.X > right || r.Y > oBottom || o.Y > bottom)
}

// Mode selects what the primary and secondary pointer actions operate on.
type Mode uint8

const (
	ModeTiles   Mode = iota // paint terrain
	ModePlants              // place and remove plants
	ModeAnimals             // place and remove animals
	modeCount
)

func (m Mode) String() string {
	switch m {
	case ModeTiles:
		return "tiles"
	case ModePlants:
		return "plants"
	case ModeAnimals:
		return "animals"
	default:
		return "unknown"
	}
}
