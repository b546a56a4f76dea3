package meadow

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// GameConfig configures a Game.
type GameConfig struct {
	// TileSize is the edge of one tile in pixels at zoom 1. Defaults to 64.
	TileSize int
	// Width and Height are the initial screen size in pixels.
	Width, Height int
	// ScreenshotDir receives PNGs from F12 and scripted screenshots.
	// Defaults to "screenshots".
	ScreenshotDir string
	// ShowFPS adds FPS and TPS to the HUD.
	ShowFPS bool
	// Debug enables frame stats logging and starts with the debug HUD shown.
	Debug bool
	// ExitWhenScriptDone ends the game loop once an attached TestRunner
	// finishes.
	ExitWhenScriptDone bool
	// Logger receives game logs. nil disables logging.
	Logger *zap.Logger
	// Overlay adds lines to the debug HUD.
	Overlay Overlay
	// Input overrides the live Ebitengine input source.
	Input InputSource
}

var clearColor = color.RGBA{20, 20, 26, 255}

const (
	defaultTileSize      = 64
	defaultScreenshotDir = "screenshots"
)

// Game implements ebiten.Game around a World: it reads input, advances the
// simulation at a fixed tick and draws the level.
type Game struct {
	world    *World
	camera   *Camera
	renderer *renderer
	tileSize int
	width    int
	height   int

	input       InputSource
	injectQueue []syntheticEvent
	keyBuf      []ebiten.Key
	prevPointer PointerState
	cursor      Vec2

	updateFunc         func() error
	testRunner         *TestRunner
	exitWhenScriptDone bool
	quit               bool

	screenshotQueue []string
	screenshotDir   string
	screenshotSeq   int

	showFPS   bool
	showDebug bool
	debug     bool
	stats     frameStats
	overlay   Overlay
	log       *zap.Logger
}

// NewGame creates a game showing world, with the camera centered on the level.
func NewGame(world *World, cfg GameConfig) *Game {
	if cfg.TileSize <= 0 {
		cfg.TileSize = defaultTileSize
	}
	if cfg.Width <= 0 {
		cfg.Width = world.Level().Width() * cfg.TileSize
	}
	if cfg.Height <= 0 {
		cfg.Height = world.Level().Height() * cfg.TileSize
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = defaultScreenshotDir
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Input == nil {
		cfg.Input = ebitenInput{}
	}

	g := &Game{
		world:              world,
		camera:             NewCamera(Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)}),
		tileSize:           cfg.TileSize,
		width:              cfg.Width,
		height:             cfg.Height,
		input:              cfg.Input,
		exitWhenScriptDone: cfg.ExitWhenScriptDone,
		screenshotDir:      cfg.ScreenshotDir,
		showFPS:            cfg.ShowFPS,
		showDebug:          cfg.Debug,
		debug:              cfg.Debug,
		overlay:            cfg.Overlay,
		log:                cfg.Logger,
	}
	ts := float64(cfg.TileSize)
	lw, lh := float64(world.Level().Width())*ts, float64(world.Level().Height())*ts
	g.camera.X, g.camera.Y = lw/2, lh/2
	g.camera.SetBounds(Rect{Width: lw, Height: lh})
	g.camera.MarkDirty()
	return g
}

// World returns the simulated world.
func (g *Game) World() *World { return g.world }

// Camera returns the game camera.
func (g *Game) Camera() *Camera { return g.camera }

// Cursor returns the last pointer position in tiles.
func (g *Game) Cursor() Vec2 { return g.cursor }

// SetUpdateFunc registers fn to run after the simulation every tick. A
// non-nil error from fn stops the game loop with that error.
func (g *Game) SetUpdateFunc(fn func() error) {
	g.updateFunc = fn
}

// Update advances the game by one tick.
func (g *Game) Update() error {
	g.step(1.0 / float64(ebiten.TPS()))
	if g.updateFunc != nil {
		if err := g.updateFunc(); err != nil {
			return err
		}
	}
	if g.quit {
		return ebiten.Termination
	}
	if g.exitWhenScriptDone && g.testRunner != nil && g.testRunner.Done() && len(g.screenshotQueue) == 0 {
		g.log.Info("test script finished")
		return ebiten.Termination
	}
	return nil
}

// step runs one tick of dt seconds: scripted input, live input, camera, then
// the simulation.
func (g *Game) step(dt float64) {
	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}

	if g.testRunner != nil {
		g.testRunner.step(g)
	}
	g.processInput(dt)
	g.camera.update(float32(dt))
	g.world.Update(dt)

	if g.debug {
		g.stats.addUpdate(time.Since(t0))
	}
}

// Draw renders the level, entities, placement preview and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}

	screen.Fill(clearColor)
	for _, p := range g.framePasses() {
		p.draw(screen)
	}
	g.flushScreenshots(screen)

	if g.debug {
		g.stats.addDraw(time.Since(t0))
		g.debugLog()
	}
}

// framePasses returns the world passes followed by the HUD. The placement
// preview is dropped once an attached script has finished.
func (g *Game) framePasses() []renderPass {
	if g.renderer == nil {
		g.renderer = newRenderer(g.world.Catalog(), g.tileSize)
	}
	showPreview := g.testRunner == nil || !g.testRunner.Done()
	passes := g.renderer.passes(g.world, g.camera, g.cursor, showPreview)
	return append(passes, renderPass{"hud", g.drawHUD})
}

// Layout tracks the window size so the camera viewport always fills it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.camera.Viewport = Rect{Width: float64(outsideWidth), Height: float64(outsideHeight)}
		if g.camera.BoundsEnabled {
			g.camera.clampToBounds()
		}
		g.camera.MarkDirty()
	}
	return g.width, g.height
}

// recenter scrolls the camera back to the middle of the level.
func (g *Game) recenter() {
	l := g.world.Level()
	ts := float64(g.tileSize)
	g.camera.ScrollTo(float64(l.Width())*ts/2, float64(l.Height())*ts/2, scrollTime, ease.OutCubic)
}

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title     string
	Resizable bool
}

// Run opens a window and runs g until the window closes, Escape is pressed,
// or an attached script finishes with ExitWhenScriptDone set.
func Run(g *Game, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(g.width, g.height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	g.log.Info("starting game loop",
		zap.Int("width", g.width),
		zap.Int("height", g.height),
		zap.Int("tiles_x", g.world.Level().Width()),
		zap.Int("tiles_y", g.world.Level().Height()),
	)
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	return nil
}
