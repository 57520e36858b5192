// Package minefield is the game engine: players secretly place mines on a
// shared board, then take turns guessing where their opponents put theirs.
package minefield

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Phase int

const (
	MainMenu Phase = iota
	EnteringBoardMeasures
	EnteringMineCount
	CreatingPlayers
	PuttingMines
	ProcessingMines
	GuessingMines
	ProcessingGuesses
	CheckingNextTurn
	Terminal
)

func (p Phase) String() string {
	switch p {
	case MainMenu:
		return "main_menu"
	case EnteringBoardMeasures:
		return "entering_board_measures"
	case EnteringMineCount:
		return "entering_mine_count"
	case CreatingPlayers:
		return "creating_players"
	case PuttingMines:
		return "putting_mines"
	case ProcessingMines:
		return "processing_mines"
	case GuessingMines:
		return "guessing_mines"
	case ProcessingGuesses:
		return "processing_guesses"
	case CheckingNextTurn:
		return "checking_next_turn"
	case Terminal:
		return "terminal"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

type Session struct {
	ID           uuid.UUID
	Board        *Board
	Players      Players
	Round        int
	Mines        int // current round quota
	InitialMines int
}

func NewSession() *Session {
	return &Session{
		ID:    uuid.New(),
		Board: NewBoard(0, 0),
		Round: 1,
	}
}

// Engine runs sessions. It is not safe for concurrent use.
type Engine struct {
	Input  Input
	Random Random
	Sink   Sink
	Limits Limits
}

func NewEngine(input Input, random Random, sink Sink, limits Limits) *Engine {
	return &Engine{Input: input, Random: random, Sink: sink, Limits: limits}
}

func (e *Engine) emit(ev Event) {
	if e.Sink != nil {
		e.Sink.Emit(ev)
	}
}

// Step runs phase to completion and returns the phase to run next.
func (e *Engine) Step(ctx context.Context, phase Phase, s *Session) (Phase, error) {
	switch phase {
	case MainMenu:
		return e.mainMenu(ctx)
	case EnteringBoardMeasures:
		return e.enterBoardMeasures(ctx, s)
	case EnteringMineCount:
		return e.enterMineCount(ctx, s)
	case CreatingPlayers:
		return e.createPlayers(ctx, s)
	case PuttingMines:
		return e.putMines(ctx, s)
	case ProcessingMines:
		return e.processMines(s), nil
	case GuessingMines:
		return e.guessMines(ctx, s)
	case ProcessingGuesses:
		return e.processGuesses(s), nil
	case CheckingNextTurn:
		return e.checkNextTurn(s), nil
	case Terminal:
		return Terminal, nil
	default:
		return Terminal, fmt.Errorf("unknown phase %s", phase)
	}
}

// Run plays a new session from the main menu until it terminates.
func (e *Engine) Run(ctx context.Context) (*Session, error) {
	s := NewSession()
	return s, e.RunFrom(ctx, s, MainMenu)
}

// RunFrom drives s from phase until Terminal, the context is done or a phase
// fails.
func (e *Engine) RunFrom(ctx context.Context, s *Session, phase Phase) error {
	log := Log.WithField("session", s.ID)
	for phase != Terminal {
		if err := ctx.Err(); err != nil {
			return err
		}
		next, err := e.Step(ctx, phase, s)
		if err != nil {
			return fmt.Errorf("%s: %w", phase, err)
		}
		log.WithFields(logrus.Fields{
			"from":  phase,
			"to":    next,
			"round": s.Round,
		}).Debug("phase done")
		phase = next
	}
	return nil
}

func (e *Engine) mainMenu(ctx context.Context) (Phase, error) {
	choice, err := e.boundedInteger(ctx, Prompt{Kind: PromptMenu, Min: MenuStart, Max: MenuQuit})
	if err != nil {
		return Terminal, err
	}
	if choice == MenuQuit {
		e.emit(GameOver{Outcome: OutcomeQuit})
		return Terminal, nil
	}
	return EnteringBoardMeasures, nil
}

func (e *Engine) enterBoardMeasures(ctx context.Context, s *Session) (Phase, error) {
	width, err := e.boundedInteger(ctx, Prompt{
		Kind: PromptBoardWidth, Min: e.Limits.MinWidth, Max: e.Limits.MaxWidth,
	})
	if err != nil {
		return Terminal, err
	}
	height, err := e.boundedInteger(ctx, Prompt{
		Kind: PromptBoardHeight, Min: e.Limits.MinHeight, Max: e.Limits.MaxHeight,
	})
	if err != nil {
		return Terminal, err
	}
	s.Board = NewBoard(height, width)
	e.emit(BoardCreated{Width: width, Height: height})
	return EnteringMineCount, nil
}

func (e *Engine) enterMineCount(ctx context.Context, s *Session) (Phase, error) {
	mines, err := e.boundedInteger(ctx, Prompt{
		Kind: PromptMineCount, Min: e.Limits.MinMines, Max: e.Limits.MaxMines,
	})
	if err != nil {
		return Terminal, err
	}
	s.InitialMines = mines
	s.Mines = mines
	e.emit(MinesConfigured{Mines: mines})
	return CreatingPlayers, nil
}

func (e *Engine) createPlayers(ctx context.Context, s *Session) (Phase, error) {
	for {
		line, err := e.Input.Line(ctx, Prompt{Kind: PromptPlayerName})
		if err != nil {
			return Terminal, err
		}
		name := strings.TrimSpace(line)
		if name == StopCreation {
			break
		}
		if name == "" || s.Players.NameExists(name) {
			e.emit(NameRejected{Name: name, Blank: name == ""})
			continue
		}
		t, err := e.playerType(ctx, name)
		if err != nil {
			return Terminal, err
		}
		s.Players = append(s.Players, NewPlayer(name, t, s.InitialMines))
		e.emit(PlayerAdded{Player: name, Type: t})
	}

	switch len(s.Players) {
	case 0:
		e.emit(GameOver{Outcome: OutcomeNoPlayers})
		return Terminal, nil
	case 1:
		pc := NewPlayer(s.Players.computerName(), Computer, s.InitialMines)
		s.Players = append(s.Players, pc)
		e.emit(OpponentAdded{Player: s.Players[0].Name, Opponent: pc.Name})
	}
	e.emit(PlayersReady{Players: s.Players.Names()})
	return PuttingMines, nil
}

func (e *Engine) playerType(ctx context.Context, name string) (PlayerType, error) {
	for {
		answer, err := e.Input.Line(ctx, Prompt{Kind: PromptPlayerType, Player: name})
		if err != nil {
			return Human, err
		}
		switch strings.ToUpper(strings.TrimSpace(answer)) {
		case HumanSelector:
			return Human, nil
		case ComputerSelector:
			return Computer, nil
		}
		e.emit(InputRejected{Prompt: PromptPlayerType, Value: answer})
	}
}
