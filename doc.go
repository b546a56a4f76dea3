// Package meadow is a small tile-based farming sandbox for [Ebitengine].
//
// A [Level] is a fixed grid of terrain tiles. Water wets every tile within
// [WetRadius]; taller terrain casts shadows onto lower neighbours. Plants
// grow on wet dirt or on grass depending on their type, and animals wander
// anywhere that is not water. A [World] ties the level, plants and animals
// together and applies the placement rules; a [Game] wraps the world in an
// [ebiten.Game] with a camera, input handling and rendering.
//
// # Quick start
//
//	cat := meadow.DefaultCatalog()
//	level := meadow.NewLevel(cat, 20, 12, meadow.DefaultTileType)
//	world := meadow.NewWorld(level, rand.New(rand.NewPCG(1, 2)))
//	game := meadow.NewGame(world, meadow.GameConfig{TileSize: 64})
//	if err := meadow.Run(game, meadow.RunConfig{Title: "meadow"}); err != nil {
//		log.Fatal(err)
//	}
//
// # Controls
//
// Left mouse applies the current mode (paint the selected tile, plant, or
// place an animal); right mouse picks the tile under the cursor or removes
// plants and animals. Tab cycles modes, T/P/A pick one directly and 1-9
// select a type. Arrow keys and middle-drag pan, the wheel zooms, Home
// recenters, F3 toggles the debug HUD and F12 saves a screenshot.
//
// # Scripted input
//
// [LoadTestScript] reads a JSON list of steps (click, press, release, drag,
// key, wait, screenshot) that [Game.SetTestRunner] plays back one step per
// frame, for unattended playthroughs and visual checks.
//
// [Ebitengine]: https://ebitengine.org
package meadow
