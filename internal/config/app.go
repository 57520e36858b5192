package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minefield/internal/minefield"
)

type App struct {
	Development bool
	// LogFile enables the rotating file hook when set.
	LogFile string
	// SpectateAddr is the listen address of the spectator feed, disabled when
	// empty.
	SpectateAddr string
	Seed         uint64
	HasSeed      bool
	Limits       minefield.Limits
}

func LogFile() string {
	return os.Getenv("MINEFIELD_LOG_FILE")
}

func SpectateAddr() string {
	return os.Getenv("MINEFIELD_SPECTATE_ADDR")
}

func Seed() (seed uint64, ok bool, err error) {
	str, ok := os.LookupEnv("MINEFIELD_SEED")
	if !ok {
		return 0, false, nil
	}
	seed, err = strconv.ParseUint(str, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("unable to parse MINEFIELD_SEED: %w", err)
	}
	return seed, true, nil
}

func lookupInt(name string, fallback int) (int, error) {
	str, ok := os.LookupEnv(name)
	if !ok {
		return fallback, nil
	}
	v, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %s to int: %w", name, err)
	}
	return v, nil
}

// NewLimits starts from [minefield.DefaultLimits]. MINEFIELD_BOARD_MIN and
// MINEFIELD_BOARD_MAX bound both measures.
func NewLimits() (minefield.Limits, error) {
	l := minefield.DefaultLimits()

	boardMin, err := lookupInt("MINEFIELD_BOARD_MIN", l.MinWidth)
	if err != nil {
		return l, err
	}
	boardMax, err := lookupInt("MINEFIELD_BOARD_MAX", l.MaxWidth)
	if err != nil {
		return l, err
	}
	l.MinWidth, l.MinHeight = boardMin, boardMin
	l.MaxWidth, l.MaxHeight = boardMax, boardMax

	if l.MinMines, err = lookupInt("MINEFIELD_MINES_MIN", l.MinMines); err != nil {
		return l, err
	}
	if l.MaxMines, err = lookupInt("MINEFIELD_MINES_MAX", l.MaxMines); err != nil {
		return l, err
	}

	if err := l.Validate(); err != nil {
		return l, fmt.Errorf("invalid limits: %w", err)
	}
	return l, nil
}

func NewApp() (*App, error) {
	seed, hasSeed, err := Seed()
	if err != nil {
		return nil, err
	}
	limits, err := NewLimits()
	if err != nil {
		return nil, err
	}
	return &App{
		Development:  Development(),
		LogFile:      LogFile(),
		SpectateAddr: SpectateAddr(),
		Seed:         seed,
		HasSeed:      hasSeed,
		Limits:       limits,
	}, nil
}

func (a App) Fields() logrus.Fields {
	return logrus.Fields{
		"development":   a.Development,
		"log_file":      a.LogFile,
		"spectate_addr": a.SpectateAddr,
		"seed":          a.Seed,
		"has_seed":      a.HasSeed,
		"limits":        a.Limits,
	}
}
