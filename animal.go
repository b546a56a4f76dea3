package meadow

import "math"

// AnimalType describes one kind of animal. Radius is in tiles, Speed in tiles
// per second and TurnSpeed in radians per second.
type AnimalType struct {
	Name      string
	Radius    float64
	Speed     float64
	TurnSpeed float64
}

// AnimalState is the behavior an animal is currently running.
type AnimalState uint8

const (
	AnimalIdle AnimalState = iota
	AnimalMoving
	AnimalRotating
)

func (s AnimalState) String() string {
	switch s {
	case AnimalIdle:
		return "idle"
	case AnimalMoving:
		return "moving"
	case AnimalRotating:
		return "rotating"
	default:
		return "unknown"
	}
}

const (
	idleInterval   = 1.0 // seconds between idle decisions
	probMove       = 0.1
	probRotate     = 0.2
	moveAttempts   = 10
	moveDistMin    = 0.5
	moveDistSpread = 1.0
)

// Animal is a wandering animal. Pos is its center in tiles and Angle its
// heading in radians.
type Animal struct {
	TypeID int
	Pos    Vec2
	Angle  float64

	kind      AnimalType
	state     AnimalState
	idle      Timer
	growth    Timer
	grown     bool
	direction Vec2
	distance  float64
}

// NewAnimal creates an animal of type typeID at pos facing angle. It returns
// false for unknown types.
func NewAnimal(cat *Catalog, typeID int, pos Vec2, angle float64, rng Rand) (*Animal, bool) {
	at, ok := cat.Animal(typeID)
	if !ok {
		return nil, false
	}
	return &Animal{
		TypeID: typeID,
		Pos:    pos,
		Angle:  angle,
		kind:   at,
		state:  AnimalIdle,
		idle:   NewTimer(idleInterval, 0),
		growth: NewTimer(growthMin+rng.Float64()*growthSpread, 0),
	}, true
}

// Type returns the animal's type.
func (a *Animal) Type() AnimalType { return a.kind }

// State returns the current behavior.
func (a *Animal) State() AnimalState { return a.state }

// Grown reports whether the growth timer has completed.
func (a *Animal) Grown() bool { return a.growth.Done() }

// Growth returns growth progress in [0, 1].
func (a *Animal) Growth() float64 { return a.growth.Fraction() }

// Update grows the animal and runs one step of its state machine. It reports
// true on the frame the animal becomes fully grown.
func (a *Animal) Update(dt float64, w *World) bool {
	a.growth.CountUp(dt)

	switch a.state {
	case AnimalIdle:
		a.updateIdle(dt, w)
	case AnimalMoving:
		// Both must step every frame.
		moved := a.updateMove(dt)
		turned := a.updateAngle(dt)
		if moved && turned {
			a.state = AnimalIdle
		}
	case AnimalRotating:
		if a.updateAngle(dt) {
			a.state = AnimalIdle
		}
	}

	if !a.grown && a.growth.Done() {
		a.grown = true
		return true
	}
	return false
}

func (a *Animal) updateIdle(dt float64, w *World) {
	a.idle.CountUp(dt)
	if !a.idle.Done() {
		return
	}
	a.idle.Reset()

	p := w.rng.Float64()
	switch {
	case p < probMove:
		a.moveToRandomPosition(w)
	case p < probMove+probRotate:
		a.rotateToRandomAngle(w.rng)
	}
}

// updateMove walks toward the target and reports whether it was reached.
func (a *Animal) updateMove(dt float64) bool {
	step := a.kind.Speed * dt
	reached := false
	if step > a.distance {
		step = a.distance
		reached = true
	}
	a.Pos = a.Pos.Add(a.direction.Scale(step))
	a.distance -= step
	return reached
}

// updateAngle turns toward the target direction and reports whether it now
// faces it.
func (a *Animal) updateAngle(dt float64) bool {
	remaining := FromAngle(a.Angle).AngleTo(a.direction)
	step := math.Copysign(a.kind.TurnSpeed*dt, remaining)
	if math.Abs(step) > math.Abs(remaining) {
		a.Angle = a.direction.Angle()
		return true
	}
	a.Angle += step
	return false
}

func (a *Animal) moveToRandomPosition(w *World) {
	for i := 0; i < moveAttempts; i++ {
		dir := FromAngle(w.rng.Float64() * 2 * math.Pi)
		dist := w.rng.Float64()*moveDistSpread + moveDistMin
		if w.AnimalPositionOK(a.TypeID, a.Pos.Add(dir.Scale(dist)), a) {
			a.direction = dir
			a.distance = dist
			a.state = AnimalMoving
			return
		}
	}
}

func (a *Animal) rotateToRandomAngle(rng Rand) {
	a.direction = FromAngle(rng.Float64() * 2 * math.Pi)
	a.distance = 0
	a.state = AnimalRotating
}

// OverlapsCircle reports whether the animal's circle touches another circle.
func (a *Animal) OverlapsCircle(center Vec2, radius float64) bool {
	return a.Pos.Sub(center).Len() <= a.kind.Radius+radius
}

// TilesOK reports whether the level still accepts the animal where it stands.
func (a *Animal) TilesOK(l *Level) bool {
	return l.PositionOKForAnimal(a.Pos, a.kind.Radius)
}
