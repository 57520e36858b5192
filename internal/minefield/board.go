package minefield

import (
	"cmp"
	"strconv"
)

type PositionState int

// Values double as the display code of a cell.
const (
	Empty        PositionState = 0
	WithMine     PositionState = 1
	Removed      PositionState = 2 // two or more mines in the same position
	GuessedEmpty PositionState = 3
	GuessedMine  PositionState = 4
)

func (s PositionState) String() string {
	switch s {
	case Empty:
		return "empty"
	case WithMine:
		return "with_mine"
	case Removed:
		return "removed"
	case GuessedEmpty:
		return "guessed_empty"
	case GuessedMine:
		return "guessed_mine"
	default:
		return "state(" + strconv.Itoa(int(s)) + ")"
	}
}

type Reason int

const (
	ReasonNone Reason = iota
	ReasonAlreadyGuessed
	ReasonAlreadyDetected
	ReasonRemoved
)

func (r Reason) String() string {
	switch r {
	case ReasonAlreadyGuessed:
		return "already_guessed"
	case ReasonAlreadyDetected:
		return "already_detected"
	case ReasonRemoved:
		return "removed"
	default:
		return "none"
	}
}

// A position that can never again be placed on or guessed.
func IsInvalidState(state PositionState) bool {
	return state == GuessedEmpty || state == GuessedMine || state == Removed
}

func InvalidReason(state PositionState) Reason {
	switch state {
	case GuessedEmpty:
		return ReasonAlreadyGuessed
	case GuessedMine:
		return ReasonAlreadyDetected
	case Removed:
		return ReasonRemoved
	default:
		return ReasonNone
	}
}

type Position struct {
	X     int           `json:"x"`
	Y     int           `json:"y"`
	State PositionState `json:"state"`
}

// Same reports whether p and o share coordinates. State is ignored.
func (p Position) Same(o Position) bool {
	return p.X == o.X && p.Y == o.Y
}

// Compare orders positions by x, then y.
func (p Position) Compare(o Position) int {
	if c := cmp.Compare(p.X, o.X); c != 0 {
		return c
	}
	return cmp.Compare(p.Y, o.Y)
}

func containsPosition(positions []Position, p Position) bool {
	for _, q := range positions {
		if q.Same(p) {
			return true
		}
	}
	return false
}

type Board struct {
	Width, Height int
	cells         []Position
}

func NewBoard(height, width int) *Board {
	if height < 0 || width < 0 {
		height, width = 0, 0
	}
	b := &Board{Width: width, Height: height, cells: make([]Position, width*height)}
	for y := range height {
		for x := range width {
			b.cells[y*width+x] = Position{X: x, Y: y, State: Empty}
		}
	}
	return b
}

func (b *Board) InBounds(x, y int) bool {
	return b != nil && 0 <= x && x < b.Width && 0 <= y && y < b.Height
}

// At returns the cell at x, y. Out-of-bounds coordinates yield the zero Position
// and false.
func (b *Board) At(x, y int) (Position, bool) {
	if !b.InBounds(x, y) {
		return Position{}, false
	}
	return b.cells[y*b.Width+x], true
}

// Set moves the cell at x, y to state. Terminal cells never change; Set reports
// whether the cell was written.
func (b *Board) Set(x, y int, state PositionState) bool {
	if !b.InBounds(x, y) {
		return false
	}
	cell := &b.cells[y*b.Width+x]
	if IsInvalidState(cell.State) {
		return cell.State == state
	}
	cell.State = state
	return true
}

func (b *Board) HasEmptyPositions() bool {
	if b == nil {
		return false
	}
	for _, c := range b.cells {
		if c.State == Empty {
			return true
		}
	}
	return false
}

// Full reports whether no cell is Empty. An uninitialized board is full.
func (b *Board) Full() bool {
	return !b.HasEmptyPositions()
}

// Available counts the cells that can still be placed on or guessed.
func (b *Board) Available() (n int) {
	if b == nil {
		return 0
	}
	for _, c := range b.cells {
		if !IsInvalidState(c.State) {
			n++
		}
	}
	return
}

// ViewFor returns what player can see, indexed [y][x]. Guessed and removed cells
// show their real state, the player's own mines show WithMine, anything else is
// Empty.
func (b *Board) ViewFor(player *Player) [][]PositionState {
	if b == nil {
		return nil
	}
	view := make([][]PositionState, b.Height)
	for y := range b.Height {
		view[y] = make([]PositionState, b.Width)
		for x := range b.Width {
			cell := b.cells[y*b.Width+x]
			switch {
			case containsPosition(player.GuessesHistory, cell) || cell.State == Removed:
				view[y][x] = cell.State
			case containsPosition(player.MinesHistory, cell) || containsPosition(player.PlacedMines, cell):
				view[y][x] = WithMine
			default:
				view[y][x] = Empty
			}
		}
	}
	return view
}
