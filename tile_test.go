package meadow

import (
	"image/color"
	"testing"
)

const (
	tWater = 0
	tDirt  = 1
	tGrass = 2
)

func TestTileKindParse(t *testing.T) {
	for k := TileKind(0); k < kindCount; k++ {
		got, ok := ParseTileKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseTileKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseTileKind("lava"); ok {
		t.Error("ParseTileKind accepted an unknown kind")
	}
}

func TestTileOKForPlant(t *testing.T) {
	cat := DefaultCatalog()
	tests := []struct {
		name   string
		tile   Tile
		wetOK  bool // plant that grows on wet dirt
		dryOK  bool // plant that grows on grass
	}{
		{"water", Tile{Type: tWater, Wet: true}, false, false},
		{"dry dirt", Tile{Type: tDirt}, false, false},
		{"wet dirt", Tile{Type: tDirt, Wet: true}, true, false},
		{"grass", Tile{Type: tGrass}, false, true},
		{"wet grass", Tile{Type: tGrass, Wet: true}, false, true},
		{"bad type", Tile{Type: 99, Wet: true}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tile.okForPlant(cat, true); got != tt.wetOK {
				t.Errorf("wet-dirt plant: got %v, want %v", got, tt.wetOK)
			}
			if got := tt.tile.okForPlant(cat, false); got != tt.dryOK {
				t.Errorf("grass plant: got %v, want %v", got, tt.dryOK)
			}
		})
	}
}

func TestTileOKForAnimal(t *testing.T) {
	cat := DefaultCatalog()
	water := Tile{Type: tWater}
	grass := Tile{Type: tGrass}

	// Circle centered in the tile overlaps it.
	in := Vec2{3.5, 3.5}
	if water.okForAnimal(cat, 3, 3, in, 0.3) {
		t.Error("water under the circle should block")
	}
	if !grass.okForAnimal(cat, 3, 3, in, 0.3) {
		t.Error("grass should not block")
	}

	// Circle next to the tile that only touches the edge does not overlap.
	touch := Vec2{2.5, 3.5}
	if !water.okForAnimal(cat, 3, 3, touch, 0.5) {
		t.Error("touching water should not block")
	}
	if water.okForAnimal(cat, 3, 3, touch, 0.51) {
		t.Error("reaching into water should block")
	}

	if (Tile{Type: 99}).okForAnimal(cat, 3, 3, touch, 0.1) {
		t.Error("unknown type should never be OK")
	}
}

func TestCircleOverlapsTileCorner(t *testing.T) {
	// Diagonal distance from (0.5,0.5) to corner (1,1) is ~0.707.
	c := Vec2{0.5, 0.5}
	if circleOverlapsTile(1, 1, c, 0.7) {
		t.Error("radius 0.7 should not reach the corner")
	}
	if !circleOverlapsTile(1, 1, c, 0.71) {
		t.Error("radius 0.71 should reach the corner")
	}
}

func TestTileColor(t *testing.T) {
	cat := DefaultCatalog()
	dirt := cat.Tiles[tDirt]

	got, ok := (Tile{Type: tDirt}).color(cat, 0, 0)
	if !ok || got != dirt.Dark {
		t.Errorf("(0,0) = %v, want dark", got)
	}
	got, _ = (Tile{Type: tDirt}).color(cat, 1, 0)
	if got != dirt.Light {
		t.Errorf("(1,0) = %v, want light", got)
	}
	got, _ = (Tile{Type: tDirt, Wet: true}).color(cat, 1, 1)
	if rgba := got.RGBA(); rgba != (color.RGBA{89, 30, 32, 255}) {
		t.Errorf("wet dark dirt = %v, want 89,30,32", rgba)
	}
	got, _ = (Tile{Type: tDirt, Wet: true}).color(cat, 1, 0)
	if rgba := got.RGBA(); rgba != (color.RGBA{102, 36, 40, 255}) {
		t.Errorf("wet light dirt = %v, want 102,36,40", rgba)
	}
	grass := cat.Tiles[tGrass]
	got, _ = (Tile{Type: tGrass, Wet: true}).color(cat, 0, 0)
	if got != grass.Dark {
		t.Errorf("wet grass = %v, want unchanged dark", got)
	}
	if _, ok := (Tile{Type: -1}).color(cat, 0, 0); ok {
		t.Error("unknown type should have no color")
	}
}
