package meadow

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	if cam.Zoom != 1.0 {
		t.Errorf("Zoom = %f, want 1.0", cam.Zoom)
	}
	if cam.BoundsEnabled {
		t.Error("BoundsEnabled = true, want false")
	}
	if cam.Viewport.Width != 800 || cam.Viewport.Height != 600 {
		t.Errorf("Viewport = %v, want 800x600", cam.Viewport)
	}
}

func TestCameraIdentityViewMatrix(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	vm := cam.computeViewMatrix()
	// At (0,0), zoom 1, the origin maps to the viewport center.
	sx, sy := transformPoint(vm, 0, 0)
	if !approxEqual(sx, 400, epsilon) || !approxEqual(sy, 300, epsilon) {
		t.Errorf("WorldToScreen(0,0) = (%f,%f), want (400,300)", sx, sy)
	}
}

func TestCameraTranslation(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.X = 100
	cam.Y = 50
	cam.MarkDirty()
	sx, sy := cam.WorldToScreen(100, 50)
	if !approxEqual(sx, 400, epsilon) || !approxEqual(sy, 300, epsilon) {
		t.Errorf("WorldToScreen(100,50) with cam at (100,50) = (%f,%f), want (400,300)", sx, sy)
	}
}

func TestCameraZoom(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.Zoom = 2.0
	cam.MarkDirty()

	sx1, _ := cam.WorldToScreen(1, 0)
	sx0, _ := cam.WorldToScreen(0, 0)
	if !approxEqual(sx1-sx0, 2.0, epsilon) {
		t.Errorf("zoom 2x: 1 world unit = %f screen pixels, want 2.0", sx1-sx0)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.X = 42
	cam.Y = -17
	cam.Zoom = 1.5
	cam.MarkDirty()

	origWX, origWY := 123.0, -456.0
	sx, sy := cam.WorldToScreen(origWX, origWY)
	wx, wy := cam.ScreenToWorld(sx, sy)
	if !approxEqual(wx, origWX, 1e-6) || !approxEqual(wy, origWY, 1e-6) {
		t.Errorf("roundtrip: got (%f,%f), want (%f,%f)", wx, wy, origWX, origWY)
	}
}

func TestVisibleBounds(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.X = 400
	cam.Y = 300
	cam.MarkDirty()
	b := cam.VisibleBounds()
	if !approxEqual(b.X, 0, 1e-6) || !approxEqual(b.Y, 0, 1e-6) ||
		!approxEqual(b.Width, 800, 1e-6) || !approxEqual(b.Height, 600, 1e-6) {
		t.Errorf("VisibleBounds = %+v, want (0,0,800,600)", b)
	}

	cam.Zoom = 2
	cam.MarkDirty()
	b = cam.VisibleBounds()
	if !approxEqual(b.Width, 400, 1e-6) || !approxEqual(b.Height, 300, 1e-6) {
		t.Errorf("VisibleBounds at zoom 2 size = (%f,%f), want (400,300)", b.Width, b.Height)
	}
}

func TestCameraPan(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.Zoom = 2
	cam.Pan(100, -50)
	if !approxEqual(cam.X, 50, epsilon) || !approxEqual(cam.Y, -25, epsilon) {
		t.Errorf("Pan at zoom 2: cam = (%f,%f), want (50,-25)", cam.X, cam.Y)
	}
}

func TestCameraPanCancelsScroll(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.ScrollTo(500, 500, 1, ease.Linear)
	cam.Pan(1, 0)
	if cam.Scrolling() {
		t.Error("Pan should cancel an active scroll")
	}
}

func TestCameraZoomAtKeepsPointFixed(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.X, cam.Y = 300, 200
	cam.MarkDirty()

	wx, wy := cam.ScreenToWorld(100, 500)
	cam.ZoomAt(1.5, 100, 500)
	nx, ny := cam.ScreenToWorld(100, 500)
	if !approxEqual(wx, nx, 1e-6) || !approxEqual(wy, ny, 1e-6) {
		t.Errorf("point under cursor moved: (%f,%f) -> (%f,%f)", wx, wy, nx, ny)
	}
	if !approxEqual(cam.Zoom, 1.5, epsilon) {
		t.Errorf("Zoom = %f, want 1.5", cam.Zoom)
	}
}

func TestCameraZoomClamped(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	for i := 0; i < 50; i++ {
		cam.ZoomAt(2, 400, 300)
	}
	if cam.Zoom != MaxZoom {
		t.Errorf("Zoom = %f, want MaxZoom", cam.Zoom)
	}
	for i := 0; i < 50; i++ {
		cam.ZoomAt(0.5, 400, 300)
	}
	if cam.Zoom != MinZoom {
		t.Errorf("Zoom = %f, want MinZoom", cam.Zoom)
	}
}

func TestCameraScrollTo(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.ScrollTo(100, 200, 1.0, ease.Linear)

	cam.update(0.5)
	if !approxEqual(cam.X, 50, 1.0) || !approxEqual(cam.Y, 100, 1.0) {
		t.Errorf("scroll halfway: cam = (%f,%f), want ~(50,100)", cam.X, cam.Y)
	}

	cam.update(0.5)
	if !approxEqual(cam.X, 100, 1.0) || !approxEqual(cam.Y, 200, 1.0) {
		t.Errorf("scroll end: cam = (%f,%f), want ~(100,200)", cam.X, cam.Y)
	}
	if cam.Scrolling() {
		t.Error("still scrolling after completion")
	}
}

func TestCameraScrollToTile(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.ScrollToTile(3, 2, 32, 0.0001, ease.Linear)

	// tile center: (3*32+16, 2*32+16) = (112, 80)
	cam.update(1.0)
	if !approxEqual(cam.X, 112, 1.0) || !approxEqual(cam.Y, 80, 1.0) {
		t.Errorf("scrollToTile: cam = (%f,%f), want ~(112,80)", cam.X, cam.Y)
	}
}

func TestCameraBounds(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 100, Height: 100})
	cam.SetBounds(Rect{X: 0, Y: 0, Width: 1000, Height: 1000})

	cam.X = 0
	cam.Y = 0
	cam.update(0)
	if cam.X < 50 || cam.Y < 50 {
		t.Errorf("bounds clamp min: cam = (%f,%f), want >= (50,50)", cam.X, cam.Y)
	}

	cam.X = 999
	cam.Y = 999
	cam.update(0)
	if cam.X > 950 || cam.Y > 950 {
		t.Errorf("bounds clamp max: cam = (%f,%f), want <= (950,950)", cam.X, cam.Y)
	}
}

func TestCameraClearBounds(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 100, Height: 100})
	cam.SetBounds(Rect{X: 0, Y: 0, Width: 1000, Height: 1000})
	cam.ClearBounds()

	cam.X = -999
	cam.Y = -999
	cam.update(0)
	if cam.X != -999 || cam.Y != -999 {
		t.Errorf("after ClearBounds: cam = (%f,%f), want (-999,-999)", cam.X, cam.Y)
	}
}

func TestCameraBoundsSmallWorld(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	// Level smaller than the viewport is centered.
	cam.SetBounds(Rect{X: 0, Y: 0, Width: 100, Height: 100})
	cam.X = 0
	cam.Y = 0
	cam.update(0)
	if !approxEqual(cam.X, 50, epsilon) || !approxEqual(cam.Y, 50, epsilon) {
		t.Errorf("small world center: cam = (%f,%f), want (50,50)", cam.X, cam.Y)
	}
	if math.IsNaN(cam.X) {
		t.Error("cam.X is NaN")
	}
}
