// Package console plays the game on a terminal: it renders prompts and engine
// events as text and reads answers line by line.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vancomm/minefield/internal/minefield"
)

type Console struct {
	out   io.Writer
	lines chan string
}

// New starts reading r in the background. Reads stop at the first error or EOF.
func New(r io.Reader, w io.Writer) *Console {
	c := &Console{out: w, lines: make(chan string)}
	go c.scan(r)
	return c
}

func (c *Console) scan(r io.Reader) {
	defer close(c.lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		c.lines <- scanner.Text()
	}
}

func (c *Console) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", minefield.ErrInputClosed
		}
		return line, nil
	}
}

// [Console] implements [minefield.Input]
func (c *Console) Integer(ctx context.Context, p minefield.Prompt) (int, error) {
	for {
		fmt.Fprint(c.out, promptText(p))
		line, err := c.readLine(ctx)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(c.out, "That is not a number, try again.")
			continue
		}
		return v, nil
	}
}

func (c *Console) Line(ctx context.Context, p minefield.Prompt) (string, error) {
	fmt.Fprint(c.out, promptText(p))
	return c.readLine(ctx)
}

func promptText(p minefield.Prompt) string {
	switch p.Kind {
	case minefield.PromptMenu:
		return fmt.Sprintf(
			"\n=== MINEFIELD ===\n%d. Start\n%d. Quit\nSelect an option: ",
			minefield.MenuStart, minefield.MenuQuit,
		)
	case minefield.PromptBoardWidth:
		return fmt.Sprintf("Enter board width (%d-%d): ", p.Min, p.Max)
	case minefield.PromptBoardHeight:
		return fmt.Sprintf("Enter board height (%d-%d): ", p.Min, p.Max)
	case minefield.PromptMineCount:
		return fmt.Sprintf("Enter number of mines per player (%d-%d): ", p.Min, p.Max)
	case minefield.PromptPlayerName:
		return fmt.Sprintf("Enter player name (%s to finish): ", minefield.StopCreation)
	case minefield.PromptPlayerType:
		return fmt.Sprintf(
			"Is %s a human (%s) or a computer (%s)? ",
			p.Player, minefield.HumanSelector, minefield.ComputerSelector,
		)
	case minefield.PromptX, minefield.PromptY:
		verb := "mine"
		if p.Purpose == minefield.Guessing {
			verb = "guess"
		}
		axis := "X"
		if p.Kind == minefield.PromptY {
			axis = "Y"
		}
		return fmt.Sprintf(
			"%s, %s %d of %d, enter %s (%d-%d): ",
			p.Player, verb, p.Index, p.Total, axis, p.Min, p.Max,
		)
	default:
		return "> "
	}
}
