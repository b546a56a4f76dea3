package meadow

import (
	"strings"
	"testing"
)

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"bad json", `{"steps":`, "parse test script"},
		{"no steps", `{"steps":[]}`, "no steps"},
		{"unknown action", `{"steps":[{"action":"jump"}]}`, `unknown action "jump"`},
		{"unknown key", `{"steps":[{"action":"key","key":"space"}]}`, `unknown key "space"`},
		{"unknown button", `{"steps":[{"action":"click","button":"fourth"}]}`, `unknown button "fourth"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTestScript([]byte(tt.script))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadTestScriptStepIndex(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps":[{"action":"wait","frames":1},{"action":"nope"}]}`))
	if err == nil || !strings.Contains(err.Error(), "step 1") {
		t.Errorf("error = %v, want step 1", err)
	}
}

func TestTestRunnerPlaysScript(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps":[
		{"action":"key","key":"p"},
		{"action":"key","key":"3"},
		{"action":"click","x":48,"y":48},
		{"action":"wait","frames":3},
		{"action":"screenshot","label":"after plant"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	g, _ := newTestGame()
	g.SetTestRunner(runner)

	for i := 0; i < 20 && !runner.Done(); i++ {
		g.step(1.0 / 60)
	}
	if !runner.Done() {
		t.Fatal("script did not finish in 20 frames")
	}

	w := g.World()
	if w.Mode() != ModePlants || w.SelectedPlant() != 2 {
		t.Errorf("mode %v selected %d, want plants/2", w.Mode(), w.SelectedPlant())
	}
	plants := w.Plants()
	if len(plants) != 1 {
		t.Fatalf("plants = %d, want 1", len(plants))
	}
	if plants[0].Pos != (Vec2{1.5, 1.5}) {
		t.Errorf("plant at %v, want (1.5,1.5)", plants[0].Pos)
	}
	if len(g.screenshotQueue) != 1 || g.screenshotQueue[0] != "after plant" {
		t.Errorf("screenshotQueue = %v", g.screenshotQueue)
	}
}

func TestTestRunnerWaitCountsFrames(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps":[{"action":"wait","frames":4}]}`))
	if err != nil {
		t.Fatal(err)
	}
	g, _ := newTestGame()
	g.SetTestRunner(runner)

	frames := 0
	for !runner.Done() && frames < 10 {
		g.step(1.0 / 60)
		frames++
	}
	// Four frames of waiting, then one frame to notice the end.
	if frames != 5 {
		t.Errorf("finished after %d frames, want 5", frames)
	}
}

func TestTestRunnerDragPaints(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps":[
		{"action":"key","key":"1"},
		{"action":"drag","fromX":16,"fromY":200,"toX":144,"toY":200,"frames":5}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	g, _ := newTestGame()
	g.SetTestRunner(runner)
	for i := 0; i < 20 && !runner.Done(); i++ {
		g.step(1.0 / 60)
	}

	l := g.World().Level()
	for x := 0; x <= 3; x++ {
		if l.TypeAt(x, 6) != tWater {
			t.Errorf("tile (%d,6) = %d, want water", x, l.TypeAt(x, 6))
		}
	}
}
