package meadow

import (
	"math"

	"go.uber.org/zap"
)

// World is the whole sandbox: the level, every plant and animal, and the
// current placement mode and selections.
type World struct {
	level   *Level
	catalog *Catalog
	plants  []*Plant
	animals []*Animal

	mode           Mode
	selectedPlant  int
	selectedAnimal int

	rng  Rand
	sink EventSink
	log  *zap.Logger
}

// NewWorld creates a world around level, drawing randomness from rng.
func NewWorld(level *Level, rng Rand) *World {
	return &World{
		level:   level,
		catalog: level.Catalog(),
		rng:     rng,
		sink:    nopSink{},
		log:     zap.NewNop(),
	}
}

// SetEventSink sets the optional event consumer. nil disables forwarding.
func (w *World) SetEventSink(sink EventSink) {
	if sink == nil {
		sink = nopSink{}
	}
	w.sink = sink
}

// SetLogger sets the logger. nil disables logging.
func (w *World) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	w.log = log
}

// Level returns the terrain grid.
func (w *World) Level() *Level { return w.level }

// Catalog returns the type tables.
func (w *World) Catalog() *Catalog { return w.catalog }

// Plants returns the placed plants. The returned slice MUST NOT be mutated.
func (w *World) Plants() []*Plant { return w.plants }

// Animals returns the placed animals. The returned slice MUST NOT be mutated.
func (w *World) Animals() []*Animal { return w.animals }

// Mode returns the current placement mode.
func (w *World) Mode() Mode { return w.mode }

// SetMode switches the placement mode.
func (w *World) SetMode(m Mode) {
	if m >= modeCount || m == w.mode {
		return
	}
	w.mode = m
	w.log.Debug("mode changed", zap.Stringer("mode", m))
	w.sink.EmitEvent(Event{Type: EventModeChanged, TypeID: int(m)})
}

// CycleMode advances to the next placement mode.
func (w *World) CycleMode() {
	w.SetMode((w.mode + 1) % modeCount)
}

// SelectedPlant returns the plant type AddPlant places.
func (w *World) SelectedPlant() int { return w.selectedPlant }

// SelectedAnimal returns the animal type AddAnimal places.
func (w *World) SelectedAnimal() int { return w.selectedAnimal }

// Select picks type index for the current mode. Unknown indexes are ignored.
func (w *World) Select(index int) bool {
	switch w.mode {
	case ModeTiles:
		if _, ok := w.catalog.Tile(index); ok {
			w.level.SelectTileType(index)
			return true
		}
	case ModePlants:
		if _, ok := w.catalog.Plant(index); ok {
			w.selectedPlant = index
			return true
		}
	case ModeAnimals:
		if _, ok := w.catalog.Animal(index); ok {
			w.selectedAnimal = index
			return true
		}
	}
	return false
}

// SelectedName returns the name of the selected type for the current mode.
func (w *World) SelectedName() string {
	switch w.mode {
	case ModeTiles:
		if tt, ok := w.catalog.Tile(w.level.SelectedTileType()); ok {
			return tt.Name
		}
	case ModePlants:
		if pt, ok := w.catalog.Plant(w.selectedPlant); ok {
			return pt.Name
		}
	case ModeAnimals:
		if at, ok := w.catalog.Animal(w.selectedAnimal); ok {
			return at.Name
		}
	}
	return ""
}

// tileAt converts a position in tiles to the tile containing it.
func tileAt(pos Vec2) (int, int) {
	return int(math.Floor(pos.X)), int(math.Floor(pos.Y))
}

// Primary applies the current mode's main action at pos: paint, plant or
// place an animal.
func (w *World) Primary(pos Vec2) {
	switch w.mode {
	case ModeTiles:
		x, y := tileAt(pos)
		w.PaintTile(x, y)
	case ModePlants:
		x, y := tileAt(pos)
		w.AddPlant(w.selectedPlant, x, y)
	case ModeAnimals:
		w.AddAnimal(w.selectedAnimal, pos)
	}
}

// Secondary applies the current mode's alternate action at pos: pick the
// tile type under the cursor, or remove plants or animals.
func (w *World) Secondary(pos Vec2) {
	switch w.mode {
	case ModeTiles:
		x, y := tileAt(pos)
		if t, ok := w.level.Tile(x, y); ok {
			w.level.SelectTileType(t.Type)
		}
	case ModePlants:
		x, y := tileAt(pos)
		w.RemovePlantsAt(x, y)
	case ModeAnimals:
		w.RemoveAnimalsAt(pos)
	}
}

// PlacementOK reports whether Primary at pos would change anything. The
// renderer uses it to tint the placement preview.
func (w *World) PlacementOK(pos Vec2) bool {
	x, y := tileAt(pos)
	switch w.mode {
	case ModeTiles:
		return w.level.InBounds(x, y)
	case ModePlants:
		return w.PlantPositionOK(w.selectedPlant, x, y)
	case ModeAnimals:
		return w.AnimalPositionOK(w.selectedAnimal, pos, nil)
	}
	return false
}

// PaintTile paints the selected tile type at (x, y) and removes any plants
// and animals the new terrain no longer supports.
func (w *World) PaintTile(x, y int) bool {
	if !w.level.PlaceSelected(x, y) {
		return false
	}
	id := w.level.SelectedTileType()
	w.sink.EmitEvent(Event{Type: EventTilePlaced, TypeID: id, X: float64(x), Y: float64(y)})
	w.PruneInvalid()
	return true
}

// PlantPositionOK reports whether a plant of type typeID fits with its
// top-left tile at (x, y).
func (w *World) PlantPositionOK(typeID, x, y int) bool {
	pt, ok := w.catalog.Plant(typeID)
	if !ok {
		return false
	}
	if !plantTilesOK(w.level, pt, x, y) {
		return false
	}

	off := pt.offset()
	center := Vec2{float64(x) + 0.5 + off, float64(y) + 0.5 + off}
	for _, a := range w.animals {
		if a.OverlapsCircle(center, pt.radius()) {
			return false
		}
	}

	fp := TileRect{X: x, Y: y, Size: pt.Size}
	for _, p := range w.plants {
		if p.OverlapsFootprint(fp) {
			return false
		}
	}
	return true
}

// AnimalPositionOK reports whether an animal of type typeID fits at pos.
// exclude, when not nil, is ignored in the overlap scan so a moving animal
// does not block itself.
func (w *World) AnimalPositionOK(typeID int, pos Vec2, exclude *Animal) bool {
	at, ok := w.catalog.Animal(typeID)
	if !ok {
		return false
	}
	if !w.level.PositionOKForAnimal(pos, at.Radius) {
		return false
	}
	for _, a := range w.animals {
		if a != exclude && a.OverlapsCircle(pos, at.Radius) {
			return false
		}
	}
	for _, p := range w.plants {
		if p.OverlapsCircle(pos, at.Radius) {
			return false
		}
	}
	return true
}

// AddPlant places a plant of type typeID with its top-left tile at (x, y) if
// the position is free and the terrain suits it.
func (w *World) AddPlant(typeID, x, y int) (*Plant, bool) {
	if !w.PlantPositionOK(typeID, x, y) {
		return nil, false
	}
	p, ok := NewPlant(w.catalog, typeID, x, y, w.rng)
	if !ok {
		return nil, false
	}
	w.plants = append(w.plants, p)
	w.log.Debug("plant added", zap.Int("type", typeID), zap.Int("x", x), zap.Int("y", y))
	w.sink.EmitEvent(Event{Type: EventPlantAdded, TypeID: typeID, X: p.Pos.X, Y: p.Pos.Y})
	return p, true
}

// AddAnimal places an animal of type typeID at pos, facing a random direction,
// if the position is free.
func (w *World) AddAnimal(typeID int, pos Vec2) (*Animal, bool) {
	if !w.AnimalPositionOK(typeID, pos, nil) {
		return nil, false
	}
	a, ok := NewAnimal(w.catalog, typeID, pos, w.rng.Float64()*2*math.Pi, w.rng)
	if !ok {
		return nil, false
	}
	w.animals = append(w.animals, a)
	w.log.Debug("animal added", zap.Int("type", typeID), zap.Float64("x", pos.X), zap.Float64("y", pos.Y))
	w.sink.EmitEvent(Event{Type: EventAnimalAdded, TypeID: typeID, X: pos.X, Y: pos.Y})
	return a, true
}

// RemovePlantsAt removes every plant covering tile (x, y) and returns how
// many were removed.
func (w *World) RemovePlantsAt(x, y int) int {
	return w.removePlants(func(p *Plant) bool { return p.OverlapsTile(x, y) }, false)
}

// RemoveAnimalsAt removes every animal whose circle contains pos and returns
// how many were removed.
func (w *World) RemoveAnimalsAt(pos Vec2) int {
	return w.removeAnimals(func(a *Animal) bool { return a.OverlapsCircle(pos, 0) }, false)
}

// PruneInvalid removes plants and animals standing on terrain that no longer
// supports them.
func (w *World) PruneInvalid() {
	np := w.removePlants(func(p *Plant) bool { return !p.TilesOK(w.level) }, true)
	na := w.removeAnimals(func(a *Animal) bool { return !a.TilesOK(w.level) }, true)
	if np > 0 || na > 0 {
		w.log.Debug("pruned after terrain change", zap.Int("plants", np), zap.Int("animals", na))
	}
}

func (w *World) removePlants(match func(*Plant) bool, pruned bool) int {
	kept := w.plants[:0]
	removed := 0
	for _, p := range w.plants {
		if match(p) {
			removed++
			w.sink.EmitEvent(Event{Type: EventPlantRemoved, TypeID: p.TypeID, X: p.Pos.X, Y: p.Pos.Y, Pruned: pruned})
			continue
		}
		kept = append(kept, p)
	}
	clear(w.plants[len(kept):])
	w.plants = kept
	return removed
}

func (w *World) removeAnimals(match func(*Animal) bool, pruned bool) int {
	kept := w.animals[:0]
	removed := 0
	for _, a := range w.animals {
		if match(a) {
			removed++
			w.sink.EmitEvent(Event{Type: EventAnimalRemoved, TypeID: a.TypeID, X: a.Pos.X, Y: a.Pos.Y, Pruned: pruned})
			continue
		}
		kept = append(kept, a)
	}
	clear(w.animals[len(kept):])
	w.animals = kept
	return removed
}

// Update advances every plant and then every animal by dt seconds.
func (w *World) Update(dt float64) {
	for _, p := range w.plants {
		if p.Update(dt) {
			w.sink.EmitEvent(Event{Type: EventPlantGrown, TypeID: p.TypeID, X: p.Pos.X, Y: p.Pos.Y})
		}
	}
	for _, a := range w.animals {
		if a.Update(dt, w) {
			w.sink.EmitEvent(Event{Type: EventAnimalGrown, TypeID: a.TypeID, X: a.Pos.X, Y: a.Pos.Y})
		}
	}
}
