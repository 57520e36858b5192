package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/vancomm/minefield/internal/minefield"
)

const colWidth = 3

// [Console] implements [minefield.Sink]
func (c *Console) Emit(e minefield.Event) {
	fmt.Fprint(c.out, Describe(e))
	if b, ok := e.(minefield.BoardShown); ok {
		RenderView(c.out, b.View)
	}
}

// Describe renders an event as one or more lines of text.
func Describe(e minefield.Event) string {
	switch e := e.(type) {
	case minefield.BoardCreated:
		return fmt.Sprintf("Board set to %dx%d.\n", e.Width, e.Height)
	case minefield.MinesConfigured:
		return fmt.Sprintf("Every player starts with %d mines.\n", e.Mines)
	case minefield.InputRejected:
		if e.Prompt == minefield.PromptPlayerType {
			return fmt.Sprintf(
				"Invalid type %q, answer %s or %s.\n",
				e.Value, minefield.HumanSelector, minefield.ComputerSelector,
			)
		}
		return fmt.Sprintf("%s is out of range (%d-%d), try again.\n", e.Value, e.Min, e.Max)
	case minefield.NameRejected:
		if e.Blank {
			return "The name cannot be blank.\n"
		}
		return fmt.Sprintf("The name %s is already taken.\n", e.Name)
	case minefield.PlayerAdded:
		return fmt.Sprintf("Player %s added (%s).\n", e.Player, e.Type)
	case minefield.OpponentAdded:
		return fmt.Sprintf("%s plays alone, so %s joins as the opponent.\n", e.Player, e.Opponent)
	case minefield.PlayersReady:
		return fmt.Sprintf("%d players: %s.\n", len(e.Players), strings.Join(e.Players, ", "))
	case minefield.RoundStarted:
		return fmt.Sprintf("\n=== ROUND %d ===\nEvery player places %d mines.\n", e.Round, e.Quota)
	case minefield.TurnStarted:
		if e.Purpose == minefield.Guessing {
			return fmt.Sprintf("\n%s, make %d guesses.\n", e.Player, e.Quota)
		}
		return fmt.Sprintf("\n%s, place %d mines.\n", e.Player, e.Quota)
	case minefield.PositionRejected:
		return fmt.Sprintf("Position %d:%d is %s, choose another one.\n", e.X, e.Y, reasonText(e.Reason))
	case minefield.TurnSkipped:
		noun := "mines"
		if e.Purpose == minefield.Guessing {
			noun = "guesses"
		}
		return fmt.Sprintf("No valid positions left, %s skips %d %s.\n", e.Player, e.Remaining, noun)
	case minefield.MinePlaced:
		return fmt.Sprintf("%s placed mine %d of %d at %d:%d.\n", e.Player, e.Index, e.Total, e.X, e.Y)
	case minefield.BoardShown:
		return fmt.Sprintf("Board of %s:\n", e.Player)
	case minefield.Collision:
		return fmt.Sprintf(
			"Collision at %d:%d between %s, the mines are removed.\n",
			e.X, e.Y, strings.Join(e.Players, " and "),
		)
	case minefield.NoCollisions:
		return "No collisions this round.\n"
	case minefield.GuessPlaced:
		return fmt.Sprintf("%s guessed %d:%d.\n", e.Player, e.X, e.Y)
	case minefield.GuessResolved:
		return describeGuess(e)
	case minefield.Scoreboard:
		var b strings.Builder
		b.WriteString("\nCurrent scores:\n")
		for _, s := range e.Scores {
			fmt.Fprintf(&b, "  %s: %d opponent mines, %d own mines\n",
				s.Player, s.OpponentMinesDetected, s.OwnMinesDetected)
		}
		return b.String()
	case minefield.RoundSummary:
		var b strings.Builder
		fmt.Fprintf(&b, "\n=== RESULTS OF ROUND %d ===\n", e.Round)
		for _, p := range e.Players {
			fmt.Fprintf(&b, "  %s: found %d of %d opponent mines, %d mines left\n",
				p.Player, p.OpponentMinesDetected, p.TotalOpponentMines, p.RemainingMines)
		}
		return b.String()
	case minefield.PlayerEliminated:
		return fmt.Sprintf("%s has no mines left and is out.\n", e.Player)
	case minefield.NextRound:
		return fmt.Sprintf("On to round %d.\n", e.Round)
	case minefield.GameOver:
		return describeGameOver(e)
	default:
		return ""
	}
}

func reasonText(r minefield.Reason) string {
	switch r {
	case minefield.ReasonAlreadyGuessed:
		return "already guessed"
	case minefield.ReasonAlreadyDetected:
		return "an already detected mine"
	case minefield.ReasonRemoved:
		return "removed"
	default:
		return "not available"
	}
}

func describeGuess(e minefield.GuessResolved) string {
	switch e.Outcome {
	case minefield.OwnMine:
		return fmt.Sprintf("%s hit their own mine at %d:%d, %d mines left.\n", e.Player, e.X, e.Y, e.RemainingMines)
	case minefield.OpponentMine:
		if e.Owner != "" {
			return fmt.Sprintf("%s found a mine at %d:%d! It was %s's.\n", e.Player, e.X, e.Y, e.Owner)
		}
		return fmt.Sprintf("%s found a mine at %d:%d!\n", e.Player, e.X, e.Y)
	case minefield.Void:
		return fmt.Sprintf("%d:%d was already resolved, %s's guess does not count.\n", e.X, e.Y, e.Player)
	default:
		return fmt.Sprintf("%s missed at %d:%d.\n", e.Player, e.X, e.Y)
	}
}

func describeGameOver(e minefield.GameOver) string {
	var b strings.Builder
	b.WriteString("\n=== GAME OVER ===\n")
	switch e.Outcome {
	case minefield.OutcomeQuit:
		b.WriteString("Thanks for playing!\n")
		return b.String()
	case minefield.OutcomeNoPlayers:
		b.WriteString("No players were added.\n")
		return b.String()
	case minefield.OutcomeWinners:
		if len(e.Winners) == 1 {
			fmt.Fprintf(&b, "%s found every opponent mine and wins. Congratulations!\n", e.Winners[0])
		} else {
			fmt.Fprintf(&b, "It's a tie between %s.\n", strings.Join(e.Winners, ", "))
		}
	case minefield.OutcomeLastPlayerStanding:
		fmt.Fprintf(&b, "%s is the last player standing and wins.\n", e.Winners[0])
	case minefield.OutcomeNoPlayersLeft:
		b.WriteString("No players remain, it's a tie.\n")
	case minefield.OutcomeBoardFull:
		b.WriteString("The board has no more available positions.\n")
		if len(e.Winners) > 0 {
			fmt.Fprintf(&b, "%s wins on points.\n", e.Winners[0])
		} else {
			b.WriteString("Nobody scored, no winner.\n")
		}
	case minefield.OutcomeNoMinesLeft:
		b.WriteString("A player has no mines left to place, the game ends without a winner.\n")
	}
	if len(e.Scores) > 0 {
		b.WriteString("Final scores:\n")
		for _, s := range e.Scores {
			fmt.Fprintf(&b, "  %s: %d\n", s.Player, s.Score)
		}
	}
	return b.String()
}

// RenderView prints a board view with column and row indexes.
func RenderView(w io.Writer, view [][]minefield.PositionState) {
	if len(view) == 0 {
		return
	}
	fmt.Fprintf(w, "%*s", colWidth, "")
	for x := range view[0] {
		fmt.Fprintf(w, "%*d", colWidth, x)
	}
	fmt.Fprintln(w)
	for y, row := range view {
		fmt.Fprintf(w, "%*d", colWidth, y)
		for _, state := range row {
			fmt.Fprintf(w, "%*d", colWidth, int(state))
		}
		fmt.Fprintln(w)
	}
}
