package ecs

import (
	"fmt"

	"github.com/phanxgames/meadow"

	"github.com/yohamta/donburi"
)

// Tally keeps lifetime counts of world events. It implements meadow.Overlay
// so the counts can be shown on the debug HUD.
type Tally struct {
	counts [meadow.EventModeChanged + 1]int
	pruned int
}

// NewTally subscribes a new Tally to WorldEventType on world. Counts update
// whenever the world's events are processed.
func NewTally(world donburi.World) *Tally {
	t := &Tally{}
	WorldEventType.Subscribe(world, t.observe)
	return t
}

func (t *Tally) observe(_ donburi.World, e meadow.Event) {
	if int(e.Type) < len(t.counts) {
		t.counts[e.Type]++
	}
	if e.Pruned {
		t.pruned++
	}
}

// Count returns how many events of type et have been observed.
func (t *Tally) Count(et meadow.EventType) int {
	if int(et) >= len(t.counts) {
		return 0
	}
	return t.counts[et]
}

// Pruned returns how many removals were caused by terrain changes.
func (t *Tally) Pruned() int {
	return t.pruned
}

// Lines reports the counts as HUD text.
func (t *Tally) Lines() []string {
	return []string{
		fmt.Sprintf("tiles painted: %d", t.counts[meadow.EventTilePlaced]),
		fmt.Sprintf("plants: +%d -%d grown %d",
			t.counts[meadow.EventPlantAdded], t.counts[meadow.EventPlantRemoved], t.counts[meadow.EventPlantGrown]),
		fmt.Sprintf("animals: +%d -%d grown %d",
			t.counts[meadow.EventAnimalAdded], t.counts[meadow.EventAnimalRemoved], t.counts[meadow.EventAnimalGrown]),
		fmt.Sprintf("lost to terrain: %d", t.pruned),
	}
}
