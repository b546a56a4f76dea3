package meadow

import (
	"math"
	"testing"
)

// bobFormula is the closed form the eased tweens reproduce.
func bobFormula(minScale, period, t float64) float64 {
	return minScale + (1-minScale)*(math.Cos(2*math.Pi*t/period)+1)/2
}

func TestBobFollowsCosine(t *testing.T) {
	b := NewBob(0.95, 2, 0)
	if !approxEqual(b.Value(), 1, 1e-5) {
		t.Fatalf("start = %f, want 1", b.Value())
	}
	elapsed := 0.0
	for i := 0; i < 40; i++ {
		b.Update(0.125)
		elapsed += 0.125
		if want := bobFormula(0.95, 2, elapsed); !approxEqual(b.Value(), want, 1e-4) {
			t.Fatalf("t=%.3f: value = %f, want %f", elapsed, b.Value(), want)
		}
	}
}

func TestBobBounds(t *testing.T) {
	b := NewBob(0.95, 2, 0.3)
	for i := 0; i < 300; i++ {
		v := b.Update(1.0 / 60)
		if v < 0.95-1e-6 || v > 1+1e-6 {
			t.Fatalf("value %f out of [0.95, 1]", v)
		}
	}
}

func TestBobPhase(t *testing.T) {
	b := NewBob(0.95, 2, 1)
	if !approxEqual(b.Value(), 0.95, 1e-5) {
		t.Errorf("half-period phase = %f, want 0.95", b.Value())
	}
	b = NewBob(0.95, 2, 0.5)
	if !approxEqual(b.Value(), 0.975, 1e-5) {
		t.Errorf("quarter-period phase = %f, want 0.975", b.Value())
	}
}

func TestBobZeroPeriod(t *testing.T) {
	b := NewBob(0.5, 0, 0)
	if b.Update(1) != 1 {
		t.Error("zero-period bob should hold at 1")
	}
}
