package meadow

import "math"

// TileKind groups tile types by how plants and animals treat them.
type TileKind uint8

const (
	KindWater TileKind = iota // blocks plants and animals, wets nearby tiles
	KindDirt                  // holds wet-dirt plants while wet
	KindGrass                 // holds dry plants
	kindCount
)

func (k TileKind) String() string {
	switch k {
	case KindWater:
		return "water"
	case KindDirt:
		return "dirt"
	case KindGrass:
		return "grass"
	default:
		return "unknown"
	}
}

// ParseTileKind maps a kind name back to its TileKind.
func ParseTileKind(s string) (TileKind, bool) {
	for k := TileKind(0); k < kindCount; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// TileType describes one terrain type. Height drives the shadows cast onto
// lower neighbours.
type TileType struct {
	Name   string
	Kind   TileKind
	Height int
	Dark   Color // checkerboard cells where (x+y) is even
	Light  Color
}

// DefaultTileType is the terrain a fresh level is filled with.
const DefaultTileType = 2

// wetDirtFactor darkens dirt that is within reach of water.
const wetDirtFactor = 0.65

// Tile is one cell of the level grid.
type Tile struct {
	Type int
	Wet  bool
}

// okForPlant reports whether a plant with the given watering need may grow on t.
func (t Tile) okForPlant(cat *Catalog, growsOnWetDirt bool) bool {
	tt, ok := cat.Tile(t.Type)
	if !ok {
		return false
	}
	switch tt.Kind {
	case KindDirt:
		return growsOnWetDirt && t.Wet
	case KindGrass:
		return !growsOnWetDirt
	default:
		return false
	}
}

// okForAnimal reports whether a circle may rest on the tile at (x, y). Only
// water blocks, and only where the circle actually reaches into the tile.
func (t Tile) okForAnimal(cat *Catalog, x, y int, center Vec2, radius float64) bool {
	tt, ok := cat.Tile(t.Type)
	if !ok {
		return false
	}
	if circleOverlapsTile(x, y, center, radius) && tt.Kind == KindWater {
		return false
	}
	return true
}

// color returns the fill color for the tile drawn at (x, y).
func (t Tile) color(cat *Catalog, x, y int) (Color, bool) {
	tt, ok := cat.Tile(t.Type)
	if !ok {
		return Color{}, false
	}
	c := tt.Light
	if (x+y)%2 == 0 {
		c = tt.Dark
	}
	if tt.Kind == KindDirt && t.Wet {
		c = c.Scale8(wetDirtFactor)
	}
	return c, true
}

// circleOverlapsTile clamps the circle center onto the unit square of tile
// (x, y) and tests the closest point against the radius. Touching does not
// count.
func circleOverlapsTile(x, y int, center Vec2, radius float64) bool {
	left, top := float64(x), float64(y)
	closest := Vec2{
		X: math.Min(math.Max(center.X, left), left+1),
		Y: math.Min(math.Max(center.Y, top), top+1),
	}
	return center.Sub(closest).Len() < radius
}
