package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/arcade-mines/internal/config"
	"github.com/vancomm/arcade-mines/internal/mines"
	"github.com/vancomm/arcade-mines/internal/render"
	"github.com/vancomm/arcade-mines/internal/session"
)

func TestMain(m *testing.M) {
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	os.Exit(m.Run())
}

func newSession(t *testing.T, params mines.GameParams) *session.Session {
	t.Helper()
	s, err := session.New(params, nil, quartz.NewMock(t))
	require.NoError(t, err)
	return s
}

func TestRunScript(t *testing.T) {
	s := newSession(t, mines.GameParams{Columns: 2, Rows: 1, Mines: 1})
	in := strings.NewReader("g\nz 1 1\n\no 0 0\nf 1 0\n")
	var out bytes.Buffer

	require.NoError(t, runScript(in, &out, s, render.Text{RevealOnLoss: true}, false))
	assert.Equal(t, strings.Join([]string{
		"- -",
		"state=playing mines_left=1 cells_to_open=1",
		`error: unknown command: "z"`,
		"1 -",
		"state=won mines_left=1 cells_to_open=0",
		"",
	}, "\n"), out.String())
}

func TestRunScriptJSON(t *testing.T) {
	s := newSession(t, mines.GameParams{Columns: 2, Rows: 1, Mines: 1})
	in := strings.NewReader("o 5 5\no 0 0\n")
	var out bytes.Buffer

	require.NoError(t, runScript(in, &out, s, render.Text{}, true))

	dec := json.NewDecoder(&out)
	var errLine map[string]string
	require.NoError(t, dec.Decode(&errLine))
	assert.Contains(t, errLine["error"], "out of bounds")

	var snapshot struct {
		Won  bool     `json:"won"`
		Grid []string `json:"grid"`
	}
	require.NoError(t, dec.Decode(&snapshot))
	assert.True(t, snapshot.Won)
	assert.Equal(t, []string{"1-"}, snapshot.Grid)
}

func TestRunBatch(t *testing.T) {
	params := mines.GameParams{Columns: 2, Rows: 1, Mines: 1}

	var out bytes.Buffer
	in := strings.NewReader("g\n\nz 1\no 0 0\n")
	require.NoError(t, runBatch(in, &out, newSession(t, params), render.Text{}, false))
	assert.Equal(t, strings.Join([]string{
		`error: line 3: unknown command: "z"`,
		"- -",
		"state=playing mines_left=1 cells_to_open=1",
		"",
	}, "\n"), out.String())

	out.Reset()
	in = strings.NewReader("o 0 0\nf 1 0\nbogus\n")
	require.NoError(t, runBatch(in, &out, newSession(t, params), render.Text{RevealOnLoss: true}, false))
	assert.Equal(t, strings.Join([]string{
		"1 -",
		"state=won mines_left=1 cells_to_open=0",
		"",
	}, "\n"), out.String())
}

func TestParseRandSeed(t *testing.T) {
	r, err := parseRandSeed("")
	require.NoError(t, err)
	assert.Nil(t, r)

	a, err := parseRandSeed("1:2")
	require.NoError(t, err)
	b, err := parseRandSeed("1:2")
	require.NoError(t, err)
	assert.Equal(t, a.Uint64(), b.Uint64())

	for _, bad := range []string{"1", "a:b", "-1:2"} {
		_, err := parseRandSeed(bad)
		assert.Error(t, err, bad)
	}
}

func TestListPresets(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, listPresets(&out, config.Default()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, []string{"NAME", "COLUMNS", "ROWS", "MINES", "SEED"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"classic", "*", "10", "10", "16", "10:10:16"}, strings.Fields(lines[4]))
}

func TestSetupAndNewSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minesweeper.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
default_board = "tiny"
board "tiny" {
  columns = 3
  rows    = 2
  mines   = 1
}
`), 0o644))

	g := &Globals{Config: path, Lang: "de"}
	a, err := g.setup(io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "de", a.catalog.Language())

	s, name, err := a.newSession(BoardFlags{Seed: "3:4"})
	require.NoError(t, err)
	assert.Equal(t, "tiny", name)
	assert.Equal(t, mines.GameParams{Columns: 3, Rows: 2, Mines: 1}, s.Board().Params())

	_, _, err = a.newSession(BoardFlags{Board: "nightmare"})
	assert.ErrorIs(t, err, config.ErrUnknownPreset)

	a, err = (&Globals{Config: path, Lang: "xx"}).setup(io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "en", a.catalog.Language())
}
