package meadow

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary action
	MouseButtonRight                     // secondary action
	MouseButtonMiddle                    // drag to pan
	mouseButtonCount
)

const (
	panSpeed   = 480.0 // screen pixels per second for keyboard panning
	wheelZoom  = 1.1   // zoom factor per wheel notch
	scrollTime = 0.4   // seconds for the Home recenter animation
)

// PointerState is one frame's view of the mouse, in screen pixels.
type PointerState struct {
	X, Y    float64
	Buttons [mouseButtonCount]bool
	WheelY  float64
}

// Down reports whether button b is held.
func (p PointerState) Down(b MouseButton) bool {
	return b < mouseButtonCount && p.Buttons[b]
}

// InputSource supplies raw pointer and keyboard state once per frame. The
// default source reads Ebitengine; tests substitute their own.
type InputSource interface {
	Pointer() PointerState
	AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key
	KeyPressed(k ebiten.Key) bool
}

// ebitenInput reads the live Ebitengine input state.
type ebitenInput struct{}

func (ebitenInput) Pointer() PointerState {
	x, y := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	return PointerState{
		X: float64(x),
		Y: float64(y),
		Buttons: [mouseButtonCount]bool{
			ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
			ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
			ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		},
		WheelY: wy,
	}
}

func (ebitenInput) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustPressedKeys(keys)
}

func (ebitenInput) KeyPressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

// digitKeys maps number keys to type indexes.
var digitKeys = map[ebiten.Key]int{
	ebiten.Key1: 0, ebiten.Key2: 1, ebiten.Key3: 2,
	ebiten.Key4: 3, ebiten.Key5: 4, ebiten.Key6: 5,
	ebiten.Key7: 6, ebiten.Key8: 7, ebiten.Key9: 8,
}

// keyNames is the vocabulary test scripts may use for the "key" action.
var keyNames = map[string]ebiten.Key{
	"1": ebiten.Key1, "2": ebiten.Key2, "3": ebiten.Key3,
	"4": ebiten.Key4, "5": ebiten.Key5, "6": ebiten.Key6,
	"7": ebiten.Key7, "8": ebiten.Key8, "9": ebiten.Key9,
	"tab": ebiten.KeyTab, "t": ebiten.KeyT, "p": ebiten.KeyP, "a": ebiten.KeyA,
	"home": ebiten.KeyHome, "f3": ebiten.KeyF3, "f12": ebiten.KeyF12,
	"escape": ebiten.KeyEscape,
}

// ParseKey looks up a key by its script name (case-insensitive).
func ParseKey(name string) (ebiten.Key, bool) {
	k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// processInput reads one frame of input (injected events first), applies key
// commands, camera moves and the pointer actions of the current mode.
func (g *Game) processInput(dt float64) {
	ptr, keys, injected := g.nextInput()

	for _, k := range keys {
		g.handleKey(k)
	}

	if !injected {
		g.panFromKeys(dt)
	}
	if ptr.WheelY != 0 {
		factor := wheelZoom
		if ptr.WheelY < 0 {
			factor = 1 / wheelZoom
		}
		g.camera.ZoomAt(factor, ptr.X, ptr.Y)
	}
	if ptr.Down(MouseButtonMiddle) && g.prevPointer.Down(MouseButtonMiddle) {
		g.camera.Pan(g.prevPointer.X-ptr.X, g.prevPointer.Y-ptr.Y)
	}

	g.cursor = g.screenToTiles(ptr.X, ptr.Y)
	switch {
	case ptr.Down(MouseButtonLeft):
		g.world.Primary(g.cursor)
	case ptr.Down(MouseButtonRight):
		g.world.Secondary(g.cursor)
	}
	g.prevPointer = ptr
}

// nextInput returns this frame's pointer state and newly pressed keys. An
// injected event, when queued, replaces live input for the frame.
func (g *Game) nextInput() (PointerState, []ebiten.Key, bool) {
	g.keyBuf = g.keyBuf[:0]
	if evt, ok := g.popInjected(); ok {
		if evt.key {
			g.keyBuf = append(g.keyBuf, evt.keyCode)
			ptr := g.prevPointer
			ptr.WheelY = 0
			return ptr, g.keyBuf, true
		}
		ptr := PointerState{X: evt.screenX, Y: evt.screenY}
		if evt.pressed {
			ptr.Buttons[evt.button] = true
		}
		return ptr, g.keyBuf, true
	}
	g.keyBuf = g.input.AppendJustPressedKeys(g.keyBuf)
	return g.input.Pointer(), g.keyBuf, false
}

// handleKey applies a single key press.
func (g *Game) handleKey(k ebiten.Key) {
	if idx, ok := digitKeys[k]; ok {
		g.world.Select(idx)
		return
	}
	switch k {
	case ebiten.KeyTab:
		g.world.CycleMode()
	case ebiten.KeyT:
		g.world.SetMode(ModeTiles)
	case ebiten.KeyP:
		g.world.SetMode(ModePlants)
	case ebiten.KeyA:
		g.world.SetMode(ModeAnimals)
	case ebiten.KeyHome:
		g.recenter()
	case ebiten.KeyF3:
		g.showDebug = !g.showDebug
	case ebiten.KeyF12:
		g.Screenshot("manual")
	case ebiten.KeyEscape:
		g.quit = true
	}
}

// panFromKeys scrolls the camera while arrow keys are held. WASD is not used
// because A selects animal mode.
func (g *Game) panFromKeys(dt float64) {
	var dx, dy float64
	if g.input.KeyPressed(ebiten.KeyArrowLeft) {
		dx--
	}
	if g.input.KeyPressed(ebiten.KeyArrowRight) {
		dx++
	}
	if g.input.KeyPressed(ebiten.KeyArrowUp) {
		dy--
	}
	if g.input.KeyPressed(ebiten.KeyArrowDown) {
		dy++
	}
	if dx != 0 || dy != 0 {
		g.camera.Pan(dx*panSpeed*dt, dy*panSpeed*dt)
	}
}

// screenToTiles converts a screen position to level coordinates in tiles.
func (g *Game) screenToTiles(sx, sy float64) Vec2 {
	wx, wy := g.camera.ScreenToWorld(sx, sy)
	ts := float64(g.tileSize)
	return Vec2{wx / ts, wy / ts}
}
