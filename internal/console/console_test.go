package console

import (
	"bytes"
	"context"
	"io"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minefield/internal/minefield"
)

func TestInteger(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("abc\n 12 \n"), &out)

	v, err := c.Integer(context.Background(), minefield.Prompt{
		Kind: minefield.PromptBoardWidth, Min: 24, Max: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, v)
	assert.Equal(t, 2, strings.Count(out.String(), "Enter board width (24-50): "))
	assert.Contains(t, out.String(), "not a number")

	_, err = c.Integer(context.Background(), minefield.Prompt{Kind: minefield.PromptMineCount})
	assert.ErrorIs(t, err, minefield.ErrInputClosed)
}

func TestLine(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("ana\n"), &out)
	line, err := c.Line(context.Background(), minefield.Prompt{Kind: minefield.PromptPlayerName})
	require.NoError(t, err)
	assert.Equal(t, "ana", line)
	assert.Equal(t, "Enter player name (* to finish): ", out.String())
}

func TestReadRespectsContext(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	c := New(r, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Line(ctx, minefield.Prompt{Kind: minefield.PromptPlayerName})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPromptText(t *testing.T) {
	tests := []struct {
		name   string
		prompt minefield.Prompt
		want   string
	}{
		{
			name:   "player type",
			prompt: minefield.Prompt{Kind: minefield.PromptPlayerType, Player: "ana"},
			want:   "Is ana a human (H) or a computer (P)? ",
		},
		{
			name: "placing x",
			prompt: minefield.Prompt{
				Kind: minefield.PromptX, Max: 23, Player: "ana",
				Purpose: minefield.Placing, Index: 1, Total: 3,
			},
			want: "ana, mine 1 of 3, enter X (0-23): ",
		},
		{
			name: "guessing y",
			prompt: minefield.Prompt{
				Kind: minefield.PromptY, Max: 29, Player: "bob",
				Purpose: minefield.Guessing, Index: 2, Total: 4,
			},
			want: "bob, guess 2 of 4, enter Y (0-29): ",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, promptText(test.prompt))
		})
	}
}

func TestRenderView(t *testing.T) {
	var out bytes.Buffer
	RenderView(&out, [][]minefield.PositionState{
		{minefield.WithMine, minefield.Empty},
		{minefield.Removed, minefield.GuessedMine},
	})
	assert.Equal(t, "     0  1\n  0  1  0\n  1  2  4\n", out.String())
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name  string
		event minefield.Event
		want  string
	}{
		{
			name:  "collision",
			event: minefield.Collision{X: 1, Y: 2, Players: []string{"ana", "bob"}},
			want:  "Collision at 1:2 between ana and bob, the mines are removed.\n",
		},
		{
			name:  "opponent mine",
			event: minefield.GuessResolved{Player: "ana", X: 3, Y: 4, Outcome: minefield.OpponentMine, Owner: "bob"},
			want:  "ana found a mine at 3:4! It was bob's.\n",
		},
		{
			name:  "own mine",
			event: minefield.GuessResolved{Player: "ana", X: 0, Y: 0, Outcome: minefield.OwnMine, RemainingMines: 2},
			want:  "ana hit their own mine at 0:0, 2 mines left.\n",
		},
		{
			name:  "quit",
			event: minefield.GameOver{Outcome: minefield.OutcomeQuit},
			want:  "\n=== GAME OVER ===\nThanks for playing!\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, Describe(test.event))
		})
	}

	over := Describe(minefield.GameOver{
		Outcome: minefield.OutcomeBoardFull,
		Winners: []string{"ana"},
		Scores:  []minefield.Score{{Player: "ana", Score: 2}, {Player: "bob", Score: -1}},
	})
	assert.Contains(t, over, "ana wins on points")
	assert.Contains(t, over, "  bob: -1\n")
}

func TestPlayAgainstComputer(t *testing.T) {
	script := strings.Join([]string{
		"1", "24", "24", "3",
		"ana", "h", "*",
		"0", "0", "1", "0", "2", "0",
	}, "\n") + "\n"
	var out bytes.Buffer
	c := New(strings.NewReader(script), &out)
	e := minefield.NewEngine(c, rand.New(rand.NewPCG(1, 2)), c, minefield.DefaultLimits())

	_, err := e.Run(context.Background())
	// the script runs out at the first guess prompt
	require.ErrorIs(t, err, minefield.ErrInputClosed)
	text := out.String()
	assert.Contains(t, text, "ana plays alone, so PC joins as the opponent.")
	assert.Contains(t, text, "ana placed mine 3 of 3 at 2:0.")
	assert.Contains(t, text, "Board of PC:")
	assert.Contains(t, text, "ana, guess 1 of 3, enter X (0-23): ")
}
