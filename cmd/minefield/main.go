package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minefield/internal/app"
	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/console"
	"github.com/vancomm/minefield/internal/logging"
	"github.com/vancomm/minefield/internal/minefield"
	"github.com/vancomm/minefield/internal/spectate"
)

var (
	spectateAddr string
	seed         uint64
)

func init() {
	flag.StringVar(&spectateAddr, "spectate", "", "spectator feed listen address (overrides MINEFIELD_SPECTATE_ADDR)")
	flag.Uint64Var(&seed, "seed", 0, "random seed for computer players (overrides MINEFIELD_SEED)")
}

func createRand(cfg *config.App) *rand.Rand {
	if cfg.HasSeed {
		return rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func loadConfig() (*config.App, error) {
	cfg, err := config.NewApp()
	if err != nil {
		return nil, err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "spectate":
			cfg.SpectateAddr = spectateAddr
		case "seed":
			cfg.Seed, cfg.HasSeed = seed, true
		}
	})
	return cfg, nil
}

// finished reports errors that end a session without anything going wrong.
func finished(err error) bool {
	return err == nil ||
		errors.Is(err, minefield.ErrInputClosed) ||
		errors.Is(err, context.Canceled)
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "unable to load config:", err)
		os.Exit(2)
	}

	log, err := logging.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "unable to set up logging:", err)
		os.Exit(2)
	}
	minefield.Log = log
	log.WithFields(cfg.Fields()).Debug("config")

	session := minefield.NewSession()
	term := console.New(os.Stdin, os.Stdout)
	hub := spectate.NewHub(log, session.ID)
	engine := minefield.NewEngine(
		term,
		createRand(cfg),
		minefield.Sinks(term, logging.NewEventLogger(log, session.ID), hub),
		cfg.Limits,
	)

	g, gCtx := errgroup.WithContext(mainCtx)
	serveCtx, stopServing := context.WithCancel(gCtx)
	defer stopServing()

	g.Go(func() error {
		defer stopServing()
		defer hub.Close()
		err := engine.RunFrom(gCtx, session, minefield.MainMenu)
		if finished(err) {
			log.WithField("session", session.ID).Info("session finished")
			return nil
		}
		return err
	})

	if cfg.SpectateAddr != "" {
		g.Go(func() error {
			return app.New(log, hub).Start(serveCtx, cfg.SpectateAddr)
		})
	}

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("exit reason")
		os.Exit(1)
	}
}
