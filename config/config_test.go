package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/phanxgames/meadow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meadow.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "meadow", cfg.Window.Title)
	assert.Equal(t, 20, cfg.Level.Width)
	assert.Equal(t, 12, cfg.Level.Height)
	assert.Equal(t, 64, cfg.Level.TileSize)
	assert.Equal(t, "grassPurple", cfg.Level.DefaultTile)
	assert.Equal(t, "screenshots", cfg.ScreenshotDir)
	require.NoError(t, cfg.Validate())

	cat, err := cfg.BuildCatalog()
	require.NoError(t, err)
	if diff := cmp.Diff(meadow.DefaultCatalog(), cat); diff != "" {
		t.Errorf("default catalog mismatch (-want +got):\n%s", diff)
	}

	id, err := cfg.DefaultTileID(cat)
	require.NoError(t, err)
	assert.Equal(t, meadow.DefaultTileType, id)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Level, cfg.Level)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
level:
  width: 8
  height: 6
  default_tile: dirt
seed: 42
logging:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Level.Width)
	assert.Equal(t, 6, cfg.Level.Height)
	assert.Equal(t, 64, cfg.Level.TileSize, "unset keys keep their defaults")
	assert.Equal(t, "dirt", cfg.Level.DefaultTile)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel())
	assert.Equal(t, "meadow", cfg.Window.Title)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Level.Width)
}

func TestLoad_UnknownKey(t *testing.T) {
	_, err := Load(writeConfig(t, "level:\n  widht: 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "widht")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MEADOW_LEVEL_WIDTH", "30")
	t.Setenv("MEADOW_SEED", "7")
	t.Setenv("MEADOW_DEBUG", "true")
	t.Setenv("MEADOW_DEFAULT_TILE", "grassGreen")

	path := writeConfig(t, "level:\n  width: 8\n  height: 9\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Level.Width, "env wins over file")
	assert.Equal(t, 9, cfg.Level.Height, "file value kept when env unset")
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "grassGreen", cfg.Level.DefaultTile)
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("MEADOW_TILE_SIZE", "big")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestValidate_JoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Level.Width = 0
	cfg.Level.TileSize = 2
	cfg.Logging.Level = "loud"
	cfg.Level.DefaultTile = "lava"

	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "level: size")
	assert.Contains(t, msg, "tile_size")
	assert.Contains(t, msg, "logging")
	assert.Contains(t, msg, `default_tile "lava"`)
}

func TestBuildCatalog_Overrides(t *testing.T) {
	path := writeConfig(t, `
level:
  default_tile: meadow
catalog:
  tiles:
    - name: pond
      kind: water
      height: 0
      dark: "#0000ff"
    - name: meadow
      kind: grass
      height: 2
      dark: "#00ff00"
      light: "#22ff22"
  animals:
    - name: sheep
      radius: 0.4
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	cat, err := cfg.BuildCatalog()
	require.NoError(t, err)

	want := []meadow.TileType{
		{Name: "pond", Kind: meadow.KindWater, Height: 0, Dark: meadow.RGB8(0, 0, 255), Light: meadow.RGB8(0, 0, 255)},
		{Name: "meadow", Kind: meadow.KindGrass, Height: 2, Dark: meadow.RGB8(0, 255, 0), Light: meadow.RGB8(0x22, 0xff, 0x22)},
	}
	if diff := cmp.Diff(want, cat.Tiles); diff != "" {
		t.Errorf("tiles mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, cat.Plants, len(meadow.DefaultCatalog().Plants), "plants fall back to defaults")

	require.Len(t, cat.Animals, 1)
	def := meadow.DefaultCatalog().Animals[0]
	assert.Equal(t, 0.4, cat.Animals[0].Radius)
	assert.Equal(t, def.Speed, cat.Animals[0].Speed)
	assert.Equal(t, def.TurnSpeed, cat.Animals[0].TurnSpeed)

	id, err := cfg.DefaultTileID(cat)
	require.NoError(t, err)
	assert.Equal(t, 1, id)
}

func TestBuildCatalog_BadTile(t *testing.T) {
	cfg := Default()
	cfg.Catalog.Tiles = []TileConfig{
		{Name: "lava", Kind: "fire", Dark: "#ff0000"},
		{Name: "mud", Kind: "dirt", Dark: "brown"},
	}
	_, err := cfg.BuildCatalog()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown kind "fire"`)
	assert.Contains(t, err.Error(), `"mud": dark`)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    meadow.Color
		wantErr bool
	}{
		{in: "#8a2f32", want: meadow.RGB8(138, 47, 50)},
		{in: "0043be", want: meadow.RGB8(0, 67, 190)},
		{in: "#fff", wantErr: true},
		{in: "#gggggg", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
