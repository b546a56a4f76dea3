package meadow

// EventType identifies a kind of world event.
type EventType uint8

const (
	EventTilePlaced    EventType = iota // a tile changed type
	EventPlantAdded                     // a plant was placed
	EventPlantRemoved                   // a plant was removed by hand or by terrain change
	EventPlantGrown                     // a plant finished growing
	EventAnimalAdded                    // an animal was placed
	EventAnimalRemoved                  // an animal was removed by hand or by terrain change
	EventAnimalGrown                    // an animal finished growing
	EventModeChanged                    // the placement mode changed
)

func (e EventType) String() string {
	switch e {
	case EventTilePlaced:
		return "tile_placed"
	case EventPlantAdded:
		return "plant_added"
	case EventPlantRemoved:
		return "plant_removed"
	case EventPlantGrown:
		return "plant_grown"
	case EventAnimalAdded:
		return "animal_added"
	case EventAnimalRemoved:
		return "animal_removed"
	case EventAnimalGrown:
		return "animal_grown"
	case EventModeChanged:
		return "mode_changed"
	default:
		return "unknown"
	}
}

// Event carries what happened and where, in tiles.
type Event struct {
	Type   EventType
	TypeID int // tile, plant or animal type id; the new Mode for EventModeChanged
	X, Y   float64
	// Pruned is set on removals caused by a terrain change rather than by hand.
	Pruned bool
}

// EventSink is the interface for optional event consumers. When set on a
// World, every state change is forwarded to it.
type EventSink interface {
	EmitEvent(event Event)
}

type nopSink struct{}

func (nopSink) EmitEvent(Event) {}
