package meadow

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	entityShadowAlpha = 0.35
	// Entity shadow offsets in pixels at a 64 pixel tile; scaled with the tile.
	shadowOffsetFull  = 8.0
	shadowOffsetSmall = 5.0
	referenceTileSize = 64.0
)

var (
	previewOK      = color.RGBA{255, 255, 255, 200}
	previewBlocked = color.RGBA{230, 40, 40, 200}
)

// WhitePixel is a 1x1 white image scaled and tinted to draw solid rectangles.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(color.White)
}

// renderer draws a World through a Camera. Draw order: tiles, tile shadows,
// entity shadows (flattened on one layer so overlaps do not darken twice),
// plants, animals, then the placement preview.
type renderer struct {
	tileSize    int
	sprites     *spriteCache
	shadowLayer *ebiten.Image
}

func newRenderer(cat *Catalog, tileSize int) *renderer {
	return &renderer{
		tileSize: tileSize,
		sprites:  newSpriteCache(cat, tileSize),
	}
}

// renderPass is one named step of a frame.
type renderPass struct {
	name string
	draw func(screen *ebiten.Image)
}

// passes lists the steps that draw w, in order.
func (r *renderer) passes(w *World, cam *Camera, cursor Vec2, showPreview bool) []renderPass {
	view := geoM(cam.computeViewMatrix())
	passes := []renderPass{
		{"tiles", func(s *ebiten.Image) { r.drawTiles(s, w.Level(), view) }},
		{"tile shadows", func(s *ebiten.Image) { r.drawTileShadows(s, w.Level(), view) }},
		{"entity shadows", func(s *ebiten.Image) { r.drawEntityShadows(s, w, view) }},
		{"plants", func(s *ebiten.Image) {
			for _, p := range w.Plants() {
				r.drawPlant(s, p, view, false)
			}
		}},
		{"animals", func(s *ebiten.Image) {
			for _, a := range w.Animals() {
				r.drawAnimal(s, a, view, false)
			}
		}},
	}
	if showPreview {
		passes = append(passes, renderPass{"preview", func(s *ebiten.Image) { r.drawPreview(s, w, cam, cursor) }})
	}
	return passes
}

func (r *renderer) drawTiles(screen *ebiten.Image, l *Level, view ebiten.GeoM) {
	ts := float64(r.tileSize)
	var op ebiten.DrawImageOptions
	for y := 0; y < l.Height(); y++ {
		for x := 0; x < l.Width(); x++ {
			c, ok := l.TileColor(x, y)
			if !ok {
				continue
			}
			op.GeoM.Reset()
			op.GeoM.Scale(ts, ts)
			op.GeoM.Translate(float64(x)*ts, float64(y)*ts)
			op.GeoM.Concat(view)
			op.ColorScale.Reset()
			op.ColorScale.ScaleWithColor(c.RGBA())
			screen.DrawImage(WhitePixel, &op)
		}
	}
}

func (r *renderer) drawTileShadows(screen *ebiten.Image, l *Level, view ebiten.GeoM) {
	ts := float64(r.tileSize)
	var op ebiten.DrawImageOptions
	for y := 0; y < l.Height(); y++ {
		for x := 0; x < l.Width(); x++ {
			mask := l.Shadows(x, y)
			if mask == 0 {
				continue
			}
			for i, img := range r.sprites.tileShadows {
				if !mask.Has(1 << i) {
					continue
				}
				op.GeoM.Reset()
				op.GeoM.Translate(float64(x)*ts, float64(y)*ts)
				op.GeoM.Concat(view)
				screen.DrawImage(img, &op)
			}
		}
	}
}

func (r *renderer) drawEntityShadows(screen *ebiten.Image, w *World, view ebiten.GeoM) {
	b := screen.Bounds()
	if r.shadowLayer == nil || r.shadowLayer.Bounds().Dx() != b.Dx() || r.shadowLayer.Bounds().Dy() != b.Dy() {
		if r.shadowLayer != nil {
			r.shadowLayer.Deallocate()
		}
		r.shadowLayer = ebiten.NewImage(b.Dx(), b.Dy())
	}
	r.shadowLayer.Clear()
	for _, p := range w.Plants() {
		r.drawPlant(r.shadowLayer, p, view, true)
	}
	for _, a := range w.Animals() {
		r.drawAnimal(r.shadowLayer, a, view, true)
	}
	var op ebiten.DrawImageOptions
	op.ColorScale.ScaleAlpha(entityShadowAlpha)
	screen.DrawImage(r.shadowLayer, &op)
}

func (r *renderer) shadowOffset(grown bool) float64 {
	off := shadowOffsetSmall
	if grown {
		off = shadowOffsetFull
	}
	return off * float64(r.tileSize) / referenceTileSize
}

func (r *renderer) drawPlant(dst *ebiten.Image, p *Plant, view ebiten.GeoM, shadow bool) {
	s := r.sprites.plant(p.TypeID)
	if s == nil {
		return
	}
	img := pick(s, p.Grown(), shadow)
	var off float64
	if shadow {
		off = r.shadowOffset(p.Grown())
	}
	r.drawCentered(dst, img, p.Pos, p.Scale(), 0, off, view)
}

func (r *renderer) drawAnimal(dst *ebiten.Image, a *Animal, view ebiten.GeoM, shadow bool) {
	s := r.sprites.animal(a.TypeID)
	if s == nil {
		return
	}
	img := pick(s, a.Grown(), shadow)
	var off float64
	if shadow {
		off = r.shadowOffset(a.Grown())
	}
	r.drawCentered(dst, img, a.Pos, 1, a.Angle, off, view)
}

func pick(s *entitySprites, grown, shadow bool) *ebiten.Image {
	switch {
	case grown && shadow:
		return s.fullShadow
	case grown:
		return s.full
	case shadow:
		return s.smallShadow
	default:
		return s.small
	}
}

// drawCentered draws img centered on pos (in tiles), scaled and rotated about
// its center, shifted left and down by shadowOff pixels.
func (r *renderer) drawCentered(dst, img *ebiten.Image, pos Vec2, scale, angle, shadowOff float64, view ebiten.GeoM) {
	b := img.Bounds()
	ts := float64(r.tileSize)
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(pos.X*ts-shadowOff, pos.Y*ts+shadowOff)
	op.GeoM.Concat(view)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, &op)
}

// drawPreview outlines what the primary action would affect under the cursor.
func (r *renderer) drawPreview(screen *ebiten.Image, w *World, cam *Camera, cursor Vec2) {
	clr := previewOK
	if !w.PlacementOK(cursor) {
		clr = previewBlocked
	}
	ts := float64(r.tileSize)
	stroke := float32(2)
	x, y := tileAt(cursor)

	switch w.Mode() {
	case ModeTiles, ModePlants:
		size := 1
		if w.Mode() == ModePlants {
			if pt, ok := w.Catalog().Plant(w.SelectedPlant()); ok {
				size = pt.Size
			}
		}
		sx, sy := cam.WorldToScreen(float64(x)*ts, float64(y)*ts)
		side := float32(float64(size) * ts * cam.Zoom)
		vector.StrokeRect(screen, float32(sx), float32(sy), side, side, stroke, clr, false)
	case ModeAnimals:
		at, ok := w.Catalog().Animal(w.SelectedAnimal())
		if !ok {
			return
		}
		sx, sy := cam.WorldToScreen(cursor.X*ts, cursor.Y*ts)
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(at.Radius*ts*cam.Zoom), stroke, clr, true)
	}
}
