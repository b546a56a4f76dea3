package meadow

import "github.com/hajimehoshi/ebiten/v2"

// syntheticEvent represents a single injected pointer or key event. Screen
// coordinates are used and converted to level coordinates via the camera,
// identical to real mouse input.
type syntheticEvent struct {
	screenX, screenY float64
	pressed          bool
	button           MouseButton
	key              bool
	keyCode          ebiten.Key
}

// InjectPress queues a pointer press at the given screen coordinates. The
// event is consumed on the next frame's input pass.
func (g *Game) InjectPress(x, y float64, button MouseButton) {
	if button >= mouseButtonCount {
		button = MouseButtonLeft
	}
	g.injectQueue = append(g.injectQueue, syntheticEvent{
		screenX: x, screenY: y,
		pressed: true,
		button:  button,
	})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (g *Game) InjectMove(x, y float64, button MouseButton) {
	g.InjectPress(x, y, button)
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (g *Game) InjectRelease(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{
		screenX: x, screenY: y,
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (g *Game) InjectClick(x, y float64, button MouseButton) {
	g.InjectPress(x, y, button)
	g.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The total sequence consumes `frames` frames. Minimum frames is
// 2 (press + release).
func (g *Game) InjectDrag(fromX, fromY, toX, toY float64, frames int, button MouseButton) {
	if frames < 2 {
		frames = 2
	}
	g.InjectPress(fromX, fromY, button)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		g.InjectMove(x, y, button)
	}
	g.InjectRelease(toX, toY)
}

// InjectKey queues a single key press. Consumes one frame.
func (g *Game) InjectKey(k ebiten.Key) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{key: true, keyCode: k})
}

// popInjected removes and returns the oldest queued event.
func (g *Game) popInjected() (syntheticEvent, bool) {
	if len(g.injectQueue) == 0 {
		return syntheticEvent{}, false
	}
	evt := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]
	return evt, true
}
