package meadow

import (
	"errors"
	"fmt"
	"math"
)

// Catalog holds the type tables shared by the level, plants and animals.
// Type ids are indexes into these slices.
type Catalog struct {
	Tiles   []TileType
	Plants  []PlantType
	Animals []AnimalType
}

// DefaultCatalog returns the built-in terrain, plant and animal tables.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Tiles: []TileType{
			{Name: "water", Kind: KindWater, Height: 0, Dark: RGB8(0, 67, 190), Light: RGB8(0, 67, 190)},
			{Name: "dirt", Kind: KindDirt, Height: 1, Dark: RGB8(138, 47, 50), Light: RGB8(158, 56, 62)},
			{Name: "grassPurple", Kind: KindGrass, Height: 2, Dark: RGB8(184, 33, 117), Light: RGB8(218, 50, 143)},
			{Name: "grassGreen", Kind: KindGrass, Height: 2, Dark: RGB8(11, 100, 100), Light: RGB8(14, 131, 131)},
			{Name: "grassYellow", Kind: KindGrass, Height: 2, Dark: RGB8(184, 176, 33), Light: RGB8(218, 209, 50)},
			{Name: "grassBlue", Kind: KindGrass, Height: 2, Dark: RGB8(33, 41, 184), Light: RGB8(50, 59, 218)},
			{Name: "grassWhite", Kind: KindGrass, Height: 2, Dark: RGB8(167, 167, 167), Light: RGB8(199, 199, 199)},
		},
		Plants: []PlantType{
			{Name: "Plant 1", Size: 1, GrowsOnWetDirt: true},
			{Name: "Plant 2", Size: 1, GrowsOnWetDirt: true},
			{Name: "Plant 3", Size: 1, GrowsOnWetDirt: false},
			{Name: "Plant 4", Size: 2, GrowsOnWetDirt: false},
			{Name: "Plant 5", Size: 2, GrowsOnWetDirt: false},
		},
		Animals: []AnimalType{
			{Name: "Animal 1", Radius: 0.5, Speed: defaultAnimalSpeed, TurnSpeed: defaultAnimalTurnSpeed},
			{Name: "Animal 2", Radius: 0.6, Speed: defaultAnimalSpeed, TurnSpeed: defaultAnimalTurnSpeed},
			{Name: "Animal 3", Radius: 0.95, Speed: defaultAnimalSpeed, TurnSpeed: defaultAnimalTurnSpeed},
		},
	}
}

const (
	defaultAnimalSpeed     = 1.5     // tiles per second
	defaultAnimalTurnSpeed = math.Pi // radians per second
)

// Tile returns the tile type for id.
func (c *Catalog) Tile(id int) (TileType, bool) {
	if id < 0 || id >= len(c.Tiles) {
		return TileType{}, false
	}
	return c.Tiles[id], true
}

// Plant returns the plant type for id.
func (c *Catalog) Plant(id int) (PlantType, bool) {
	if id < 0 || id >= len(c.Plants) {
		return PlantType{}, false
	}
	return c.Plants[id], true
}

// Animal returns the animal type for id.
func (c *Catalog) Animal(id int) (AnimalType, bool) {
	if id < 0 || id >= len(c.Animals) {
		return AnimalType{}, false
	}
	return c.Animals[id], true
}

// TileID returns the id of the tile type with the given name.
func (c *Catalog) TileID(name string) (int, bool) {
	for i, tt := range c.Tiles {
		if tt.Name == name {
			return i, true
		}
	}
	return 0, false
}

// Validate reports every problem found in the tables.
func (c *Catalog) Validate() error {
	var errs []error
	if len(c.Tiles) == 0 {
		errs = append(errs, errors.New("catalog: no tile types"))
	}
	seen := make(map[string]bool, len(c.Tiles))
	for i, tt := range c.Tiles {
		if tt.Name == "" {
			errs = append(errs, fmt.Errorf("catalog: tile %d: empty name", i))
		}
		if seen[tt.Name] {
			errs = append(errs, fmt.Errorf("catalog: tile %d: duplicate name %q", i, tt.Name))
		}
		seen[tt.Name] = true
		if tt.Kind >= kindCount {
			errs = append(errs, fmt.Errorf("catalog: tile %q: unknown kind %d", tt.Name, tt.Kind))
		}
	}
	for i, pt := range c.Plants {
		if pt.Size < 1 {
			errs = append(errs, fmt.Errorf("catalog: plant %d (%q): size must be >= 1", i, pt.Name))
		}
	}
	for i, at := range c.Animals {
		if at.Radius <= 0 {
			errs = append(errs, fmt.Errorf("catalog: animal %d (%q): radius must be > 0", i, at.Name))
		}
		if at.Speed <= 0 || at.TurnSpeed <= 0 {
			errs = append(errs, fmt.Errorf("catalog: animal %d (%q): speeds must be > 0", i, at.Name))
		}
	}
	return errors.Join(errs...)
}
