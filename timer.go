package meadow

// Timer counts up from zero and saturates at its maximum.
type Timer struct {
	max float64
	t   float64
}

// NewTimer creates a timer that completes after max seconds, starting at start.
func NewTimer(max, start float64) Timer {
	tm := Timer{max: max}
	tm.CountUp(start)
	return tm
}

// CountUp advances the timer by dt seconds, clamped to the maximum.
func (tm *Timer) CountUp(dt float64) {
	tm.t += dt
	if tm.t > tm.max {
		tm.t = tm.max
	}
	if tm.t < 0 {
		tm.t = 0
	}
}

// Done reports whether the timer has reached its maximum.
func (tm *Timer) Done() bool {
	return tm.t >= tm.max
}

// Reset rewinds the timer to zero.
func (tm *Timer) Reset() {
	tm.t = 0
}

// Elapsed returns the seconds counted so far.
func (tm *Timer) Elapsed() float64 {
	return tm.t
}

// Fraction returns elapsed/max in [0, 1]. A zero-length timer reports 1.
func (tm *Timer) Fraction() float64 {
	if tm.max <= 0 {
		return 1
	}
	return tm.t / tm.max
}
