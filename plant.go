package meadow

// PlantType describes one kind of plant. Size is the edge length of the
// square of tiles the plant covers.
type PlantType struct {
	Name           string
	Size           int
	GrowsOnWetDirt bool
}

// offset is the distance from the center of the top-left tile to the center
// of the whole footprint, on each axis.
func (pt PlantType) offset() float64 {
	return float64(pt.Size-1) / 2
}

// radius approximates the plant by a circle for overlap with animals.
func (pt PlantType) radius() float64 {
	return float64(pt.Size) * 0.8 / 2
}

const (
	growthMin      = 7.5 // seconds before a plant or animal may be fully grown
	growthSpread   = 7.5
	bobPeriod      = 2.0
	bobMinScale    = 0.95
	bobPhaseSpread = 2.0
)

// Rand is the random source the simulation draws from. *rand.Rand satisfies
// it.
type Rand interface {
	Float64() float64
}

// Plant is a placed plant. Pos is the center of its footprint, in tiles.
type Plant struct {
	TypeID int
	Pos    Vec2

	kind   PlantType
	growth Timer
	bob    *Bob
	grown  bool
}

// NewPlant creates a plant of type typeID covering the tiles starting at
// (x, y). It returns false for unknown types.
func NewPlant(cat *Catalog, typeID, x, y int, rng Rand) (*Plant, bool) {
	pt, ok := cat.Plant(typeID)
	if !ok {
		return nil, false
	}
	off := pt.offset()
	return &Plant{
		TypeID: typeID,
		Pos:    Vec2{float64(x) + 0.5 + off, float64(y) + 0.5 + off},
		kind:   pt,
		growth: NewTimer(growthMin+rng.Float64()*growthSpread, 0),
		bob:    NewBob(bobMinScale, bobPeriod, rng.Float64()*bobPhaseSpread),
	}, true
}

// Type returns the plant's type.
func (p *Plant) Type() PlantType { return p.kind }

// Update grows the plant and advances its bob. It reports true on the frame
// the plant becomes fully grown.
func (p *Plant) Update(dt float64) bool {
	p.growth.CountUp(dt)
	p.bob.Update(dt)
	if !p.grown && p.growth.Done() {
		p.grown = true
		return true
	}
	return false
}

// Grown reports whether the growth timer has completed.
func (p *Plant) Grown() bool { return p.growth.Done() }

// Growth returns growth progress in [0, 1].
func (p *Plant) Growth() float64 { return p.growth.Fraction() }

// Scale returns the current draw scale from the bob animation.
func (p *Plant) Scale() float64 { return p.bob.Value() }

// Footprint returns the tiles the plant covers.
func (p *Plant) Footprint() TileRect {
	off := p.kind.offset()
	return TileRect{
		X:    int(p.Pos.X - off),
		Y:    int(p.Pos.Y - off),
		Size: p.kind.Size,
	}
}

// OverlapsFootprint reports whether the plant shares a tile with r.
func (p *Plant) OverlapsFootprint(r TileRect) bool {
	return p.Footprint().Overlaps(r)
}

// OverlapsTile reports whether the plant covers tile (x, y).
func (p *Plant) OverlapsTile(x, y int) bool {
	return p.OverlapsFootprint(TileRect{X: x, Y: y, Size: 1})
}

// OverlapsCircle approximates the plant by a circle and tests it against
// another circle. Touching counts.
func (p *Plant) OverlapsCircle(center Vec2, radius float64) bool {
	return p.Pos.Sub(center).Len() <= p.kind.radius()+radius
}

// TilesOK reports whether every tile under the plant still suits it.
func (p *Plant) TilesOK(l *Level) bool {
	fp := p.Footprint()
	return plantTilesOK(l, p.kind, fp.X, fp.Y)
}

// plantTilesOK checks the footprint of pt anchored at (x, y) against the level.
func plantTilesOK(l *Level, pt PlantType, x, y int) bool {
	for y2 := y; y2 < y+pt.Size; y2++ {
		for x2 := x; x2 < x+pt.Size; x2++ {
			if !l.TileOKForPlant(x2, y2, pt.GrowsOnWetDirt) {
				return false
			}
		}
	}
	return true
}
