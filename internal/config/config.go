package config

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/arcade-mines/internal/mines"
)

const DefaultPath = "minesweeper.hcl"

var ErrUnknownPreset = errors.New("unknown board preset")

type Config struct {
	DefaultBoard string         `hcl:"default_board,optional"`
	Log          *LogConfig     `hcl:"log,block"`
	Display      *DisplayConfig `hcl:"display,block"`
	Buttons      *ButtonsConfig `hcl:"buttons,block"`
	Boards       []BoardConfig  `hcl:"board,block"`
}

type LogConfig struct {
	Level      string `hcl:"level,optional"`
	File       string `hcl:"file,optional"`
	MaxSizeMB  int    `hcl:"max_size_mb,optional"`
	MaxBackups int    `hcl:"max_backups,optional"`
	MaxAgeDays int    `hcl:"max_age_days,optional"`
}

type DisplayConfig struct {
	BlockSize  int    `hcl:"block_size,optional"`
	Fullscreen bool   `hcl:"fullscreen,optional"`
	Language   string `hcl:"language,optional"`
	Width      int    `hcl:"width,optional"`
	Height     int    `hcl:"height,optional"`
}

// ButtonsConfig holds BCM pin numbers of the button panel.
type ButtonsConfig struct {
	Enabled bool `hcl:"enabled,optional"`
	Up      *int `hcl:"up,optional"`
	Left    *int `hcl:"left,optional"`
	Right   *int `hcl:"right,optional"`
	Down    *int `hcl:"down,optional"`
	A       *int `hcl:"a,optional"`
	B       *int `hcl:"b,optional"`
}

type BoardConfig struct {
	Name    string `hcl:"name,label"`
	Columns int    `hcl:"columns"`
	Rows    int    `hcl:"rows"`
	Mines   int    `hcl:"mines"`
}

func (b BoardConfig) Params() mines.GameParams {
	return mines.GameParams{Columns: b.Columns, Rows: b.Rows, Mines: b.Mines}
}

func pin(n int) *int { return &n }

func defaultLog() *LogConfig {
	return &LogConfig{
		Level:      "info",
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}
}

func defaultDisplay() *DisplayConfig {
	return &DisplayConfig{
		BlockSize: 30,
		Language:  "en",
		Width:     1600,
		Height:    900,
	}
}

func defaultButtons() *ButtonsConfig {
	return &ButtonsConfig{
		Up:    pin(0),
		Left:  pin(1),
		Right: pin(2),
		Down:  pin(3),
		A:     pin(4),
		B:     pin(5),
	}
}

// Presets returns the built-in boards. Configured boards are added on top of
// them and replace a preset of the same name.
func Presets() []BoardConfig {
	return []BoardConfig{
		{Name: "beginner", Columns: 9, Rows: 9, Mines: 10},
		{Name: "intermediate", Columns: 16, Rows: 16, Mines: 40},
		{Name: "expert", Columns: 30, Rows: 16, Mines: 99},
		{Name: "classic", Columns: 10, Rows: 10, Mines: 16},
	}
}

func Default() *Config {
	return &Config{
		DefaultBoard: "classic",
		Log:          defaultLog(),
		Display:      defaultDisplay(),
		Buttons:      defaultButtons(),
		Boards:       Presets(),
	}
}

// Load reads the config file at path. A missing file yields [Default].
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		config := Default()
		config.applyEnv()
		return config, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("unable to parse config %s: %s", path, diags.Error())
	}

	var config Config
	if diags := gohcl.DecodeBody(file.Body, nil, &config); diags.HasErrors() {
		return nil, fmt.Errorf("unable to decode config %s: %s", path, diags.Error())
	}
	config.applyDefaults()
	config.applyEnv()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.DefaultBoard == "" {
		c.DefaultBoard = "classic"
	}

	if c.Log == nil {
		c.Log = defaultLog()
	} else {
		d := defaultLog()
		if c.Log.Level == "" {
			c.Log.Level = d.Level
		}
		if c.Log.MaxSizeMB == 0 {
			c.Log.MaxSizeMB = d.MaxSizeMB
		}
		if c.Log.MaxBackups == 0 {
			c.Log.MaxBackups = d.MaxBackups
		}
		if c.Log.MaxAgeDays == 0 {
			c.Log.MaxAgeDays = d.MaxAgeDays
		}
	}

	if c.Display == nil {
		c.Display = defaultDisplay()
	} else {
		d := defaultDisplay()
		if c.Display.BlockSize == 0 {
			c.Display.BlockSize = d.BlockSize
		}
		if c.Display.Language == "" {
			c.Display.Language = d.Language
		}
		if c.Display.Width == 0 {
			c.Display.Width = d.Width
		}
		if c.Display.Height == 0 {
			c.Display.Height = d.Height
		}
	}

	d := defaultButtons()
	if c.Buttons == nil {
		c.Buttons = d
	} else {
		for _, p := range []struct{ dst, def **int }{
			{&c.Buttons.Up, &d.Up},
			{&c.Buttons.Left, &d.Left},
			{&c.Buttons.Right, &d.Right},
			{&c.Buttons.Down, &d.Down},
			{&c.Buttons.A, &d.A},
			{&c.Buttons.B, &d.B},
		} {
			if *p.dst == nil {
				*p.dst = *p.def
			}
		}
	}

	boards := Presets()
	for _, b := range c.Boards {
		b.Name = strings.ToLower(strings.TrimSpace(b.Name))
		i := slices.IndexFunc(boards, func(p BoardConfig) bool { return p.Name == b.Name })
		if i < 0 {
			boards = append(boards, b)
		} else {
			boards[i] = b
		}
	}
	c.Boards = boards
}

func (c *Config) applyEnv() {
	if Development() {
		c.Log.Level = "debug"
	}
	if file, ok := LogFile(); ok {
		c.Log.File = file
	}
}

func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return errors.New("log: rotation limits must not be negative")
	}
	if c.Display.BlockSize < 4 {
		return fmt.Errorf("display: block size must be at least 4, got %d", c.Display.BlockSize)
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("display: invalid window size %dx%d", c.Display.Width, c.Display.Height)
	}

	pins := map[int]string{}
	for name, p := range c.Buttons.Pins() {
		if p < 0 {
			return fmt.Errorf("buttons: %s: invalid pin %d", name, p)
		}
		if other, ok := pins[p]; ok {
			return fmt.Errorf("buttons: %s and %s share pin %d", other, name, p)
		}
		pins[p] = name
	}

	for _, b := range c.Boards {
		if err := b.Params().Validate(); err != nil {
			return fmt.Errorf("board %s: %w", b.Name, err)
		}
	}
	if _, err := c.Board(c.DefaultBoard); err != nil {
		return fmt.Errorf("default_board: %w", err)
	}
	return nil
}

// Pins yields the button names with their pin numbers in panel order.
func (b *ButtonsConfig) Pins() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, p := range []struct {
			name string
			pin  *int
		}{
			{"up", b.Up}, {"left", b.Left}, {"right", b.Right},
			{"down", b.Down}, {"a", b.A}, {"b", b.B},
		} {
			if p.pin == nil {
				continue
			}
			if !yield(p.name, *p.pin) {
				return
			}
		}
	}
}

// Board looks up a preset or configured board by name.
func (c *Config) Board(name string) (mines.GameParams, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, b := range c.Boards {
		if b.Name == name {
			return b.Params(), nil
		}
	}
	return mines.GameParams{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

func (c *Config) Fields() logrus.Fields {
	names := make([]string, 0, len(c.Boards))
	for _, b := range c.Boards {
		names = append(names, b.Name)
	}
	return map[string]any{
		"default_board":   c.DefaultBoard,
		"boards":          strings.Join(names, ","),
		"log_level":       c.Log.Level,
		"log_file":        c.Log.File,
		"log_max_size_mb": c.Log.MaxSizeMB,
		"block_size":      c.Display.BlockSize,
		"fullscreen":      c.Display.Fullscreen,
		"language":        c.Display.Language,
		"buttons":         c.Buttons.Enabled,
	}
}
