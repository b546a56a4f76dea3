package meadow

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Overlay supplies extra HUD lines, e.g. lifetime event counts.
type Overlay interface {
	Lines() []string
}

const (
	hudLineHeight = 16 // ebitenutil debug font line height
	hudPadding    = 4
	hudCharWidth  = 6
)

var hudBackground = color.RGBA{0, 0, 0, 128}

// hudLines builds the status text for the current frame.
func (g *Game) hudLines() []string {
	w := g.world
	lines := []string{
		fmt.Sprintf("mode: %s  [Tab/T/P/A]", w.Mode()),
		fmt.Sprintf("selected: %s  [1-9]", w.SelectedName()),
		fmt.Sprintf("plants: %d  animals: %d", len(w.Plants()), len(w.Animals())),
	}
	if g.showFPS {
		lines = append(lines, fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	if g.showDebug {
		lines = append(lines, g.debugLines()...)
		if g.overlay != nil {
			lines = append(lines, g.overlay.Lines()...)
		}
	}
	return lines
}

// drawHUD prints the status text over a translucent panel in the top-left
// corner.
func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := g.hudLines()
	if len(lines) == 0 {
		return
	}
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	panelW := float64(width*hudCharWidth + 2*hudPadding)
	panelH := float64(len(lines)*hudLineHeight + 2*hudPadding)

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(panelW, panelH)
	op.ColorScale.ScaleWithColor(hudBackground)
	screen.DrawImage(WhitePixel, &op)

	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), hudPadding, hudPadding)
}
