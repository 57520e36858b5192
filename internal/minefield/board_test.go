package minefield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard(3, 5)
	require.Equal(t, 5, b.Width)
	require.Equal(t, 3, b.Height)
	for y := range 3 {
		for x := range 5 {
			cell, ok := b.At(x, y)
			require.True(t, ok)
			assert.Equal(t, Position{X: x, Y: y, State: Empty}, cell)
		}
	}
	_, ok := b.At(5, 0)
	assert.False(t, ok)
	_, ok = b.At(0, -1)
	assert.False(t, ok)
}

func TestPositionIgnoresState(t *testing.T) {
	a := Position{X: 1, Y: 2, State: Empty}
	b := Position{X: 1, Y: 2, State: GuessedMine}
	assert.True(t, a.Same(b))
	assert.Equal(t, 0, a.Compare(b))
	assert.Equal(t, -1, Position{X: 0, Y: 9}.Compare(Position{X: 1, Y: 0}))
	assert.Equal(t, 1, Position{X: 1, Y: 1}.Compare(Position{X: 1, Y: 0}))
}

func TestStateValues(t *testing.T) {
	assert.Equal(t, 0, int(Empty))
	assert.Equal(t, 1, int(WithMine))
	assert.Equal(t, 2, int(Removed))
	assert.Equal(t, 3, int(GuessedEmpty))
	assert.Equal(t, 4, int(GuessedMine))
}

func TestInvalidStates(t *testing.T) {
	tests := []struct {
		state   PositionState
		invalid bool
		reason  Reason
	}{
		{Empty, false, ReasonNone},
		{WithMine, false, ReasonNone},
		{Removed, true, ReasonRemoved},
		{GuessedEmpty, true, ReasonAlreadyGuessed},
		{GuessedMine, true, ReasonAlreadyDetected},
	}
	for _, test := range tests {
		t.Run(test.state.String(), func(t *testing.T) {
			assert.Equal(t, test.invalid, IsInvalidState(test.state))
			assert.Equal(t, test.reason, InvalidReason(test.state))
		})
	}
}

func TestTerminalStatesNeverChange(t *testing.T) {
	all := []PositionState{Empty, WithMine, Removed, GuessedEmpty, GuessedMine}
	for _, terminal := range []PositionState{Removed, GuessedEmpty, GuessedMine} {
		for _, next := range all {
			b := NewBoard(1, 1)
			require.True(t, b.Set(0, 0, WithMine))
			require.True(t, b.Set(0, 0, terminal))
			written := b.Set(0, 0, next)
			assert.Equal(t, next == terminal, written)
			assert.Equal(t, terminal, stateAt(t, b, 0, 0))
		}
	}
}

func TestBoardFull(t *testing.T) {
	b := NewBoard(5, 5)
	assert.False(t, b.Full())
	assert.True(t, b.HasEmptyPositions())

	for y := range 5 {
		for x := range 5 {
			b.Set(x, y, WithMine)
		}
	}
	assert.True(t, b.Full())
	assert.False(t, b.HasEmptyPositions())
	assert.Equal(t, 25, b.Available())

	b = NewBoard(2, 2)
	b.Set(0, 0, GuessedEmpty)
	b.Set(1, 0, WithMine)
	b.Set(0, 1, WithMine)
	b.Set(1, 1, Removed)
	assert.True(t, b.Full())
	assert.Equal(t, 2, b.Available())

	b = NewBoard(2, 2)
	b.Set(1, 1, WithMine)
	assert.False(t, b.Full())
}

func TestZeroBoard(t *testing.T) {
	b := NewBoard(0, 0)
	assert.True(t, b.Full())
	assert.Zero(t, b.Available())
	assert.False(t, b.Set(0, 0, WithMine))

	var nilBoard *Board
	assert.True(t, nilBoard.Full())
	_, ok := nilBoard.At(0, 0)
	assert.False(t, ok)
}

func TestViewFor(t *testing.T) {
	b := NewBoard(2, 3)
	p := NewPlayer("p1", Human, 3)

	b.Set(0, 0, WithMine)
	p.MinesHistory = []Position{{X: 0, Y: 0, State: WithMine}}
	b.Set(1, 0, WithMine) // somebody else's
	b.Set(2, 0, WithMine)
	b.Set(2, 0, Removed)
	b.Set(0, 1, GuessedEmpty)
	p.GuessesHistory = []Position{{X: 0, Y: 1}}
	b.Set(1, 1, WithMine)
	b.Set(1, 1, GuessedMine) // guessed by somebody else

	assert.Equal(t, [][]PositionState{
		{WithMine, Empty, Removed},
		{GuessedEmpty, Empty, Empty},
	}, b.ViewFor(&p))
}
