package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/arcade-mines/internal/mines"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "minesweeper.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	require.NoError(t, config.Validate())

	assert.Equal(t, "classic", config.DefaultBoard)
	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, 30, config.Display.BlockSize)
	assert.Len(t, config.Boards, 4)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
default_board = "tiny"

log {
  level = "warn"
  file  = "mines.log"
}

display {
  block_size = 24
  fullscreen = true
  language   = "de"
}

buttons {
  enabled = true
  a       = 17
  b       = 27
}

board "tiny" {
  columns = 4
  rows    = 3
  mines   = 2
}

board "classic" {
  columns = 12
  rows    = 12
  mines   = 20
}
`)
	config, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, config.Validate())

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "mines.log", config.Log.File)
	assert.Equal(t, 10, config.Log.MaxSizeMB)
	assert.Equal(t, 24, config.Display.BlockSize)
	assert.Equal(t, 1600, config.Display.Width)
	assert.True(t, config.Display.Fullscreen)
	assert.Equal(t, "de", config.Display.Language)

	assert.True(t, config.Buttons.Enabled)
	pins := map[string]int{}
	for name, p := range config.Buttons.Pins() {
		pins[name] = p
	}
	assert.Equal(t, map[string]int{
		"up": 0, "left": 1, "right": 2, "down": 3, "a": 17, "b": 27,
	}, pins)

	tiny, err := config.Board("tiny")
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Columns: 4, Rows: 3, Mines: 2}, tiny)

	classic, err := config.Board("classic")
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Columns: 12, Rows: 12, Mines: 20}, classic)
	assert.Len(t, config.Boards, 5)
}

func TestLoadBoardNamesIgnoreCase(t *testing.T) {
	config, err := Load(writeConfig(t, `
default_board = "Big"

board "Big" {
  columns = 20
  rows    = 20
  mines   = 50
}

board " Expert" {
  columns = 30
  rows    = 20
  mines   = 120
}
`))
	require.NoError(t, err)
	require.NoError(t, config.Validate())
	assert.Len(t, config.Boards, 5)

	big, err := config.ParseBoard("")
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Columns: 20, Rows: 20, Mines: 50}, big)

	expert, err := config.Board("EXPERT")
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Columns: 30, Rows: 20, Mines: 120}, expert)
}

func TestLoadSyntaxError(t *testing.T) {
	_, err := Load(writeConfig(t, `log {`))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `board "x" { columns = 3 }`))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"log level", func(c *Config) { c.Log.Level = "loud" }},
		{"block size", func(c *Config) { c.Display.BlockSize = 1 }},
		{"shared pin", func(c *Config) { c.Buttons.B = c.Buttons.A }},
		{"board", func(c *Config) {
			c.Boards = append(c.Boards, BoardConfig{Name: "full", Columns: 2, Rows: 2, Mines: 4})
		}},
		{"default board", func(c *Config) { c.DefaultBoard = "huge" }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			config := Default()
			test.mutate(config)
			assert.Error(t, config.Validate())
		})
	}
}

func TestEnv(t *testing.T) {
	t.Setenv("MINES_DEVELOPMENT", "1")
	t.Setenv("MINES_LOG_FILE", "/tmp/mines.log")

	config, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "/tmp/mines.log", config.Log.File)

	t.Setenv("MINES_DEVELOPMENT", "0")
	assert.False(t, Development())
}

func TestParseBoard(t *testing.T) {
	config := Default()

	tests := []struct {
		arg  string
		want mines.GameParams
		err  bool
	}{
		{arg: "", want: mines.GameParams{Columns: 10, Rows: 10, Mines: 16}},
		{arg: "expert", want: mines.GameParams{Columns: 30, Rows: 16, Mines: 99}},
		{arg: " Beginner ", want: mines.GameParams{Columns: 9, Rows: 9, Mines: 10}},
		{arg: "5:4:3", want: mines.GameParams{Columns: 5, Rows: 4, Mines: 3}},
		{arg: "columns=8&rows=6&mines=7", want: mines.GameParams{Columns: 8, Rows: 6, Mines: 7}},
		{arg: "columns=8&rows=6&mines=7&unique=1", want: mines.GameParams{Columns: 8, Rows: 6, Mines: 7}},
		{arg: "columns=8&rows=6", err: true},
		{arg: "columns=x&rows=6&mines=1", err: true},
		{arg: "2:2:4", err: true},
		{arg: "2:2", err: true},
		{arg: "nightmare", err: true},
	}
	for _, test := range tests {
		t.Run(test.arg, func(t *testing.T) {
			t.Parallel()
			got, err := config.ParseBoard(test.arg)
			if test.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}

	_, err := config.ParseBoard("nightmare")
	assert.ErrorIs(t, err, ErrUnknownPreset)
	_, err = config.ParseBoard("0:3:0")
	assert.ErrorIs(t, err, mines.ErrInvalidParams)
}

func TestFields(t *testing.T) {
	fields := Default().Fields()
	assert.Equal(t, "classic", fields["default_board"])
	assert.Equal(t, "beginner,intermediate,expert,classic", fields["boards"])
}
