package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/vancomm/arcade-mines/internal/config"
)

// New builds a logger from the log config. Console output goes to console,
// which may be [io.Discard] when a user interface owns the terminal. If a log
// file is configured every entry at or above the level is also written there.
func New(c *config.LogConfig, console io.Writer, colors bool) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetLevel(level)
	log.SetOutput(console)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: colors})

	if c.File == "" {
		return log, nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   c.File,
		MaxSize:    c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAgeDays,
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to open log file %s: %w", c.File, err)
	}
	log.AddHook(hook)
	return log, nil
}
