package meadow

// WetRadius is how far, in tiles (Chebyshev distance), water wets its
// surroundings.
const WetRadius = 2

// ShadowMask records which of the eight neighbours cast a shadow onto a tile.
type ShadowMask uint8

// Shadow bits in grid order, skipping the center tile.
const (
	ShadowTopLeft ShadowMask = 1 << iota
	ShadowTop
	ShadowTopRight
	ShadowLeft
	ShadowRight
	ShadowBottomLeft
	ShadowBottom
	ShadowBottomRight
)

// shadowOffsets maps each shadow bit (by bit index) to its neighbour offset.
var shadowOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Has reports whether bit is set.
func (m ShadowMask) Has(bit ShadowMask) bool { return m&bit != 0 }

// Level is the fixed-size grid of tiles plus the placement queries plants and
// animals use.
type Level struct {
	catalog  *Catalog
	tiles    []Tile
	width    int
	height   int
	selected int
	revision uint64
}

// NewLevel creates a w by h level filled with defaultType.
func NewLevel(cat *Catalog, w, h, defaultType int) *Level {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	l := &Level{
		catalog: cat,
		tiles:   make([]Tile, w*h),
		width:   w,
		height:  h,
	}
	for i := range l.tiles {
		l.tiles[i].Type = defaultType
	}
	l.refreshAllWet()
	return l
}

// Width returns the level width in tiles.
func (l *Level) Width() int { return l.width }

// Height returns the level height in tiles.
func (l *Level) Height() int { return l.height }

// Catalog returns the type tables the level was built with.
func (l *Level) Catalog() *Catalog { return l.catalog }

// Revision increments every time a tile changes type.
func (l *Level) Revision() uint64 { return l.revision }

// InBounds reports whether (x, y) is a tile of the level.
func (l *Level) InBounds(x, y int) bool {
	return x >= 0 && x < l.width && y >= 0 && y < l.height
}

// Tile returns the tile at (x, y).
func (l *Level) Tile(x, y int) (Tile, bool) {
	if !l.InBounds(x, y) {
		return Tile{}, false
	}
	return l.tiles[x+y*l.width], true
}

// TypeAt returns the tile type id at (x, y), or -1 out of bounds.
func (l *Level) TypeAt(x, y int) int {
	if !l.InBounds(x, y) {
		return -1
	}
	return l.tiles[x+y*l.width].Type
}

// SelectTileType sets the type PlaceSelected paints.
func (l *Level) SelectTileType(id int) {
	l.selected = id
}

// SelectedTileType returns the type PlaceSelected paints.
func (l *Level) SelectedTileType() int {
	return l.selected
}

// PlaceSelected paints the selected type at (x, y) and refreshes wetness
// around it. It reports whether the tile's type changed.
func (l *Level) PlaceSelected(x, y int) bool {
	return l.SetTile(x, y, l.selected)
}

// SetTile paints type id at (x, y). Out-of-bounds positions and unknown ids
// are ignored.
func (l *Level) SetTile(x, y, id int) bool {
	if !l.InBounds(x, y) {
		return false
	}
	t := &l.tiles[x+y*l.width]
	changed := false
	if _, ok := l.catalog.Tile(id); ok && t.Type != id {
		t.Type = id
		changed = true
		l.revision++
	}
	l.refreshWetAround(x, y)
	return changed
}

// refreshWetAround recomputes Wet for every tile within WetRadius of (x, y).
func (l *Level) refreshWetAround(x, y int) {
	for x2 := x - WetRadius; x2 <= x+WetRadius; x2++ {
		for y2 := y - WetRadius; y2 <= y+WetRadius; y2++ {
			if l.InBounds(x2, y2) {
				l.tiles[x2+y2*l.width].Wet = l.nearWater(x2, y2)
			}
		}
	}
}

func (l *Level) refreshAllWet() {
	for y := 0; y < l.height; y++ {
		for x := 0; x < l.width; x++ {
			l.tiles[x+y*l.width].Wet = l.nearWater(x, y)
		}
	}
}

// nearWater reports whether any tile within WetRadius of (x, y) is water.
func (l *Level) nearWater(x, y int) bool {
	for x3 := x - WetRadius; x3 <= x+WetRadius; x3++ {
		for y3 := y - WetRadius; y3 <= y+WetRadius; y3++ {
			if !l.InBounds(x3, y3) {
				continue
			}
			tt, ok := l.catalog.Tile(l.tiles[x3+y3*l.width].Type)
			if ok && tt.Kind == KindWater {
				return true
			}
		}
	}
	return false
}

// TileOKForPlant reports whether the tile at (x, y) can hold a plant with the
// given watering need. Out-of-bounds tiles never can.
func (l *Level) TileOKForPlant(x, y int, growsOnWetDirt bool) bool {
	t, ok := l.Tile(x, y)
	if !ok {
		return false
	}
	return t.okForPlant(l.catalog, growsOnWetDirt)
}

// PositionOKForAnimal reports whether a circle fits inside the level without
// touching any tile animals cannot stand on.
func (l *Level) PositionOKForAnimal(center Vec2, radius float64) bool {
	// int() truncates toward zero, so -0.1 would pass as 0; check the float
	// edges as well.
	if center.X-radius < 0 || center.Y-radius < 0 {
		return false
	}
	left := int(center.X - radius)
	top := int(center.Y - radius)
	right := int(center.X + radius)
	bottom := int(center.Y + radius)
	if left < 0 || top < 0 || right >= l.width || bottom >= l.height {
		return false
	}

	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			if !l.tiles[x+y*l.width].okForAnimal(l.catalog, x, y, center, radius) {
				return false
			}
		}
	}
	return true
}

// Higher reports whether the tile at (ox, oy) exists and stands taller than
// the tile at (x, y).
func (l *Level) Higher(x, y, ox, oy int) bool {
	self, ok := l.Tile(x, y)
	if !ok {
		return false
	}
	other, ok := l.Tile(ox, oy)
	if !ok {
		return false
	}
	st, ok := l.catalog.Tile(self.Type)
	if !ok {
		return false
	}
	ot, ok := l.catalog.Tile(other.Type)
	if !ok {
		return false
	}
	return ot.Height > st.Height
}

// Shadows returns the neighbours that cast a shadow onto tile (x, y). A corner
// only casts when neither of the edge neighbours next to it already does, so
// shadows never double up.
func (l *Level) Shadows(x, y int) ShadowMask {
	var m ShadowMask
	for i, off := range shadowOffsets {
		dx, dy := off[0], off[1]
		corner := dx != 0 && dy != 0
		if corner {
			if l.Higher(x, y, x+dx, y+dy) &&
				!l.Higher(x, y, x+dx, y) &&
				!l.Higher(x, y, x, y+dy) {
				m |= 1 << i
			}
		} else if l.Higher(x, y, x+dx, y+dy) {
			m |= 1 << i
		}
	}
	return m
}

// TileColor returns the fill color for the tile at (x, y).
func (l *Level) TileColor(x, y int) (Color, bool) {
	t, ok := l.Tile(x, y)
	if !ok {
		return Color{}, false
	}
	return t.color(l.catalog, x, y)
}
