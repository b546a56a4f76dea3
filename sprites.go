package meadow

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Sprites are generated procedurally at the tile size in use, so the repo
// ships no image assets.

const (
	smallScale      = 0.55 // growing entities are drawn at this fraction of full size
	tileShadowDepth = 0.3  // fraction of a tile an edge shadow reaches into
	tileShadowAlpha = 0.45
	cornerSegments  = 8 // triangles in a corner shadow fan
)

var plantPalette = []Color{
	RGB8(74, 180, 72),
	RGB8(242, 166, 48),
	RGB8(120, 210, 220),
	RGB8(40, 120, 60),
	RGB8(210, 90, 160),
}

var animalPalette = []Color{
	RGB8(236, 226, 208),
	RGB8(150, 96, 60),
	RGB8(90, 90, 96),
}

// shadowFill is the fill for shadow variants; the shadow layer sets the
// final opacity.
var shadowFill = color.RGBA{A: 255}

// entitySprites holds the four images an entity type is drawn with.
type entitySprites struct {
	small, smallShadow *ebiten.Image
	full, fullShadow   *ebiten.Image
}

// spriteCache builds sprites lazily per type id.
type spriteCache struct {
	tileSize    int
	catalog     *Catalog
	plants      map[int]*entitySprites
	animals     map[int]*entitySprites
	tileShadows [8]*ebiten.Image
}

func newSpriteCache(cat *Catalog, tileSize int) *spriteCache {
	c := &spriteCache{
		tileSize: tileSize,
		catalog:  cat,
		plants:   make(map[int]*entitySprites),
		animals:  make(map[int]*entitySprites),
	}
	for i, off := range shadowOffsets {
		c.tileShadows[i] = tileShadowImage(tileSize, off[0], off[1])
	}
	return c
}

func (c *spriteCache) plant(id int) *entitySprites {
	if s, ok := c.plants[id]; ok {
		return s
	}
	pt, ok := c.catalog.Plant(id)
	if !ok {
		return nil
	}
	col := plantPalette[id%len(plantPalette)]
	d := float64(pt.Size*c.tileSize) * 0.8
	s := &entitySprites{
		full:        plantImage(d, col, false),
		fullShadow:  plantImage(d, col, true),
		small:       plantImage(d*smallScale, col, false),
		smallShadow: plantImage(d*smallScale, col, true),
	}
	c.plants[id] = s
	return s
}

func (c *spriteCache) animal(id int) *entitySprites {
	if s, ok := c.animals[id]; ok {
		return s
	}
	at, ok := c.catalog.Animal(id)
	if !ok {
		return nil
	}
	col := animalPalette[id%len(animalPalette)]
	d := 2 * at.Radius * float64(c.tileSize)
	s := &entitySprites{
		full:        animalImage(d, col, false),
		fullShadow:  animalImage(d, col, true),
		small:       animalImage(d*smallScale, col, false),
		smallShadow: animalImage(d*smallScale, col, true),
	}
	c.animals[id] = s
	return s
}

// spriteSize is the edge of the square image holding a sprite of diameter d,
// with a pixel of margin for antialiasing on each side.
func spriteSize(d float64) int {
	return int(math.Ceil(d)) + 2
}

// plantImage draws a rosette of leaves around a bud, diameter d pixels.
func plantImage(d float64, col Color, shadow bool) *ebiten.Image {
	size := spriteSize(d)
	img := ebiten.NewImage(size, size)
	c := float32(size) / 2
	r := float32(d / 2)
	var leaf, bud color.Color = col.RGBA(), col.Scale(0.7).RGBA()
	if shadow {
		leaf, bud = shadowFill, shadowFill
	}
	const leaves = 6
	for i := 0; i < leaves; i++ {
		sin, cos := math.Sincos(float64(i) * 2 * math.Pi / leaves)
		vector.FillCircle(img, c+float32(cos)*r*0.5, c+float32(sin)*r*0.5, r*0.45, leaf, true)
	}
	vector.FillCircle(img, c, c, r*0.4, bud, true)
	return img
}

// animalImage draws a top-down animal facing +X, diameter d pixels.
func animalImage(d float64, col Color, shadow bool) *ebiten.Image {
	size := spriteSize(d)
	img := ebiten.NewImage(size, size)
	c := float32(size) / 2
	r := float32(d / 2)
	var body, head color.Color = col.RGBA(), col.Scale(0.85).RGBA()
	if shadow {
		body, head = shadowFill, shadowFill
	}
	vector.FillCircle(img, c-r*0.15, c, r*0.8, body, true)
	vector.FillCircle(img, c+r*0.55, c, r*0.42, head, true)
	if !shadow {
		eye := color.RGBA{A: 255}
		vector.FillCircle(img, c+r*0.75, c-r*0.18, r*0.08, eye, true)
		vector.FillCircle(img, c+r*0.75, c+r*0.18, r*0.08, eye, true)
	}
	return img
}

// tileShadowImage draws the shadow a higher neighbour at (dx, dy) casts onto
// a tile.
func tileShadowImage(tileSize, dx, dy int) *ebiten.Image {
	img := ebiten.NewImage(tileSize, tileSize)
	verts, inds := tileShadowMesh(tileSize, dx, dy)
	var op ebiten.DrawTrianglesOptions
	op.AntiAlias = true
	img.DrawTriangles(verts, inds, WhitePixel, &op)
	return img
}

// tileShadowMesh builds the shadow gradient for neighbour (dx, dy) as black
// triangles whose alpha fades from tileShadowAlpha at the shared edge or
// corner to zero tileShadowDepth into the tile. Edges are a quad; corners
// are a quarter-disc fan around the corner.
func tileShadowMesh(tileSize, dx, dy int) ([]ebiten.Vertex, []uint16) {
	ts := float32(tileSize)
	depth := float32(tileShadowDepth) * ts
	// Corner (or edge midpoint) of the tile nearest the neighbour.
	ox := float32(dx+1) / 2 * ts
	oy := float32(dy+1) / 2 * ts

	vert := func(x, y, a float32) ebiten.Vertex {
		return ebiten.Vertex{DstX: x, DstY: y, SrcX: 0.5, SrcY: 0.5, ColorA: a}
	}

	switch {
	case dx != 0 && dy != 0:
		verts := make([]ebiten.Vertex, 0, cornerSegments+2)
		verts = append(verts, vert(ox, oy, tileShadowAlpha))
		from := math.Atan2(0, float64(-dx))
		sweep := math.Remainder(math.Atan2(float64(-dy), 0)-from, 2*math.Pi)
		for i := 0; i <= cornerSegments; i++ {
			sin, cos := math.Sincos(from + sweep*float64(i)/cornerSegments)
			verts = append(verts, vert(ox+depth*float32(cos), oy+depth*float32(sin), 0))
		}
		inds := make([]uint16, 0, cornerSegments*3)
		for i := 1; i <= cornerSegments; i++ {
			inds = append(inds, 0, uint16(i), uint16(i+1))
		}
		return verts, inds
	case dx != 0:
		in := -float32(dx) * depth
		return []ebiten.Vertex{
			vert(ox, 0, tileShadowAlpha),
			vert(ox, ts, tileShadowAlpha),
			vert(ox+in, ts, 0),
			vert(ox+in, 0, 0),
		}, []uint16{0, 1, 2, 0, 2, 3}
	case dy != 0:
		in := -float32(dy) * depth
		return []ebiten.Vertex{
			vert(0, oy, tileShadowAlpha),
			vert(ts, oy, tileShadowAlpha),
			vert(ts, oy+in, 0),
			vert(0, oy+in, 0),
		}, []uint16{0, 1, 2, 0, 2, 3}
	}
	return nil, nil
}
