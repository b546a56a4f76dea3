package meadow

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// debugLogInterval is how many frames are averaged per debug log line.
const debugLogInterval = 120

// frameStats accumulates update and draw timings between debug log lines.
// Only populated when the game runs in debug mode.
type frameStats struct {
	frames     int
	updateTime time.Duration
	drawTime   time.Duration
	lastUpdate time.Duration
	lastDraw   time.Duration
}

func (s *frameStats) addUpdate(d time.Duration) {
	s.updateTime += d
	s.lastUpdate = d
}

func (s *frameStats) addDraw(d time.Duration) {
	s.drawTime += d
	s.lastDraw = d
	s.frames++
}

func (s *frameStats) reset() {
	*s = frameStats{lastUpdate: s.lastUpdate, lastDraw: s.lastDraw}
}

// debugLog writes averaged timings and entity counts every debugLogInterval
// frames.
func (g *Game) debugLog() {
	if !g.debug || g.stats.frames < debugLogInterval {
		return
	}
	n := time.Duration(g.stats.frames)
	g.log.Debug("frame stats",
		zap.Duration("update_avg", g.stats.updateTime/n),
		zap.Duration("draw_avg", g.stats.drawTime/n),
		zap.Int("plants", len(g.world.Plants())),
		zap.Int("animals", len(g.world.Animals())),
		zap.Uint64("level_revision", g.world.Level().Revision()),
	)
	g.stats.reset()
}

// debugLines returns the extra HUD lines shown with F3.
func (g *Game) debugLines() []string {
	x, y := tileAt(g.cursor)
	lines := []string{
		fmt.Sprintf("update: %v  draw: %v", g.stats.lastUpdate.Round(time.Microsecond), g.stats.lastDraw.Round(time.Microsecond)),
		fmt.Sprintf("cursor: %d,%d  zoom: %.2f", x, y, g.camera.Zoom),
	}
	if t, ok := g.world.Level().Tile(x, y); ok {
		name := "?"
		if tt, ok := g.world.Catalog().Tile(t.Type); ok {
			name = tt.Name
		}
		lines = append(lines, fmt.Sprintf("tile: %s wet=%v shadows=%08b", name, t.Wet, g.world.Level().Shadows(x, y)))
	}
	return lines
}
