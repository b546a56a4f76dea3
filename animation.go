package meadow

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Bob drives a looping scale pulse: from 1 down to Min over half the period
// and back up over the other half, eased with a sine curve. That is exactly
// Min + (1-Min)*(cos(2*pi*t/period)+1)/2.
type Bob struct {
	period float32
	phase  float32
	down   *gween.Tween
	up     *gween.Tween
	value  float64
}

// NewBob creates a bob between 1 and minScale with the given period in
// seconds, starting at phase seconds into the cycle.
func NewBob(minScale float64, period, phase float64) *Bob {
	half := float32(period / 2)
	b := &Bob{
		period: float32(period),
		down:   gween.New(1, float32(minScale), half, ease.InOutSine),
		up:     gween.New(float32(minScale), 1, half, ease.InOutSine),
		value:  1,
	}
	b.Update(phase)
	return b
}

// Update advances the cycle by dt seconds and returns the current scale.
func (b *Bob) Update(dt float64) float64 {
	if b.period <= 0 {
		return b.value
	}
	b.phase += float32(dt)
	for b.phase >= b.period {
		b.phase -= b.period
	}
	half := b.period / 2
	var v float32
	if b.phase < half {
		v, _ = b.down.Set(b.phase)
	} else {
		v, _ = b.up.Set(b.phase - half)
	}
	b.value = float64(v)
	return b.value
}

// Value returns the current scale.
func (b *Bob) Value() float64 {
	return b.value
}
