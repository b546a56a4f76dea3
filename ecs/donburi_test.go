package ecs

import (
	"math/rand/v2"
	"testing"

	"github.com/phanxgames/meadow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestDonburiSinkPublishes(t *testing.T) {
	dw := donburi.NewWorld()
	var got []meadow.Event
	WorldEventType.Subscribe(dw, func(_ donburi.World, e meadow.Event) {
		got = append(got, e)
	})

	sink := NewDonburiSink(dw)
	sink.EmitEvent(meadow.Event{Type: meadow.EventTilePlaced, TypeID: 1, X: 3, Y: 4})
	sink.EmitEvent(meadow.Event{Type: meadow.EventPlantAdded, TypeID: 2, X: 1, Y: 1})

	assert.Empty(t, got, "events are queued until processed")
	WorldEventType.ProcessEvents(dw)
	require.Len(t, got, 2)
	assert.Equal(t, meadow.EventTilePlaced, got[0].Type)
	assert.Equal(t, 3.0, got[0].X)
	assert.Equal(t, meadow.EventPlantAdded, got[1].Type)
}

func TestTallyCountsWorldEvents(t *testing.T) {
	dw := donburi.NewWorld()
	tally := NewTally(dw)

	cat := meadow.DefaultCatalog()
	water, ok := cat.TileID("water")
	require.True(t, ok)

	level := meadow.NewLevel(cat, 8, 8, meadow.DefaultTileType)
	world := meadow.NewWorld(level, rand.New(rand.NewPCG(1, 2)))
	world.SetEventSink(NewDonburiSink(dw))

	// Grass plant type, placed on default grass.
	grassPlant := -1
	for i, p := range cat.Plants {
		if !p.GrowsOnWetDirt && p.Size == 1 {
			grassPlant = i
			break
		}
	}
	require.GreaterOrEqual(t, grassPlant, 0)
	_, ok = world.AddPlant(grassPlant, 5, 5)
	require.True(t, ok)

	// Flooding the tile under the plant prunes it.
	level.SelectTileType(water)
	require.True(t, world.PaintTile(5, 5))

	events.ProcessAllEvents(dw)

	assert.Equal(t, 1, tally.Count(meadow.EventTilePlaced))
	assert.Equal(t, 1, tally.Count(meadow.EventPlantAdded))
	assert.Equal(t, 1, tally.Count(meadow.EventPlantRemoved))
	assert.Equal(t, 1, tally.Pruned())
	assert.Equal(t, 0, tally.Count(meadow.EventType(99)))

	lines := tally.Lines()
	require.Len(t, lines, 4)
	assert.Equal(t, "tiles painted: 1", lines[0])
	assert.Equal(t, "plants: +1 -1 grown 0", lines[1])
	assert.Equal(t, "lost to terrain: 1", lines[3])
}
