// Package logging sets up the process logger and logs engine events.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/minefield"
)

const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

// New writes to stderr and, when cfg.LogFile is set, to a rotating file.
func New(cfg *config.App) (*logrus.Logger, error) {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg *config.App, out io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(out)

	level := logrus.WarnLevel
	if cfg.Development {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if cfg.LogFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   cfg.LogFile,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Level:      level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return nil, fmt.Errorf("unable to open log file %s: %w", cfg.LogFile, err)
		}
		log.AddHook(hook)
	}
	return log, nil
}

// EventLogger records engine events of one session.
type EventLogger struct {
	log *logrus.Entry
}

func NewEventLogger(log *logrus.Logger, session uuid.UUID) *EventLogger {
	return &EventLogger{log: log.WithField("session", session)}
}

// [EventLogger] implements [minefield.Sink]
func (l *EventLogger) Emit(e minefield.Event) {
	entry := l.log.WithField("kind", e.Kind())
	if player := minefield.EventPlayer(e); player != "" {
		entry = entry.WithField("player", player)
	}
	switch e := e.(type) {
	case minefield.BoardShown:
		// views are large and only interesting on the terminal
		entry.Debug("event")
	case minefield.GameOver:
		entry.WithFields(logrus.Fields{
			"outcome": e.Outcome,
			"winners": e.Winners,
		}).Info("game over")
	case minefield.Collision:
		entry.WithFields(logrus.Fields{
			"x": e.X, "y": e.Y, "players": e.Players,
		}).Info("event")
	case minefield.PlayerEliminated:
		entry.Info("event")
	default:
		entry.WithField("data", fmt.Sprintf("%+v", e)).Debug("event")
	}
}
