package minefield

import (
	"context"
	"errors"
)

// ErrInputClosed is returned by an [Input] whose source has no more data.
var ErrInputClosed = errors.New("input closed")

type PromptKind int

const (
	PromptMenu PromptKind = iota
	PromptBoardWidth
	PromptBoardHeight
	PromptMineCount
	PromptPlayerName
	PromptPlayerType
	PromptX
	PromptY
)

func (k PromptKind) String() string {
	switch k {
	case PromptMenu:
		return "menu"
	case PromptBoardWidth:
		return "board_width"
	case PromptBoardHeight:
		return "board_height"
	case PromptMineCount:
		return "mine_count"
	case PromptPlayerName:
		return "player_name"
	case PromptPlayerType:
		return "player_type"
	case PromptX:
		return "x"
	case PromptY:
		return "y"
	default:
		return "unknown"
	}
}

type Purpose int

const (
	Placing Purpose = iota
	Guessing
)

func (p Purpose) String() string {
	if p == Guessing {
		return "guessing"
	}
	return "placing"
}

// Prompt describes what is being asked for. Min and Max bound integer prompts;
// Player, Purpose, Index and Total give position prompts their context.
type Prompt struct {
	Kind    PromptKind
	Min     int
	Max     int
	Player  string
	Purpose Purpose
	Index   int
	Total   int
}

// Input is the synchronous source of human answers. Integer may return any
// integer; the engine re-asks until the answer is within the prompt bounds.
type Input interface {
	Integer(ctx context.Context, p Prompt) (int, error)
	Line(ctx context.Context, p Prompt) (string, error)
}

// Random yields uniform integers in [0, n). *rand.Rand from math/rand/v2
// satisfies it.
type Random interface {
	IntN(n int) int
}

// Menu options.
const (
	MenuStart = 1
	MenuQuit  = 2
)

type Limits struct {
	MinWidth, MaxWidth   int
	MinHeight, MaxHeight int
	MinMines, MaxMines   int
}

func DefaultLimits() Limits {
	return Limits{
		MinWidth: 24, MaxWidth: 50,
		MinHeight: 24, MaxHeight: 50,
		MinMines: 3, MaxMines: 8,
	}
}

func (l Limits) Validate() error {
	switch {
	case l.MinWidth <= 0 || l.MinHeight <= 0 || l.MinMines <= 0:
		return errors.New("limits must be positive")
	case l.MinWidth > l.MaxWidth:
		return errors.New("minimum width exceeds maximum width")
	case l.MinHeight > l.MaxHeight:
		return errors.New("minimum height exceeds maximum height")
	case l.MinMines > l.MaxMines:
		return errors.New("minimum mine count exceeds maximum mine count")
	}
	return nil
}
