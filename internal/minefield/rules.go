package minefield

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"
)

// boundedInteger asks until the answer is within [p.Min, p.Max].
func (e *Engine) boundedInteger(ctx context.Context, p Prompt) (int, error) {
	for {
		v, err := e.Input.Integer(ctx, p)
		if err != nil {
			return 0, err
		}
		if p.Min <= v && v <= p.Max {
			return v, nil
		}
		e.emit(InputRejected{Prompt: p.Kind, Value: strconv.Itoa(v), Min: p.Min, Max: p.Max})
	}
}

func (e *Engine) candidate(
	ctx context.Context, b *Board, player *Player,
	purpose Purpose, index, total int,
) (pos Position, err error) {
	if player.Type == Computer {
		pos.X = e.Random.IntN(b.Width)
		pos.Y = e.Random.IntN(b.Height)
		return
	}
	prompt := Prompt{
		Player: player.Name, Purpose: purpose,
		Index: index, Total: total,
	}
	prompt.Kind, prompt.Max = PromptX, b.Width-1
	if pos.X, err = e.boundedInteger(ctx, prompt); err != nil {
		return
	}
	prompt.Kind, prompt.Max = PromptY, b.Height-1
	pos.Y, err = e.boundedInteger(ctx, prompt)
	return
}

// obtainPosition keeps asking player for a cell until one that is neither
// removed nor already guessed comes back. There is no retry limit: callers make
// sure b.Available() > 0 first. Positions obtained for placing carry WithMine;
// nothing is written to the board here.
func (e *Engine) obtainPosition(
	ctx context.Context, b *Board, player *Player,
	purpose Purpose, index, total int,
) (Position, error) {
	for {
		pos, err := e.candidate(ctx, b, player, purpose, index, total)
		if err != nil {
			return Position{}, err
		}
		cell, _ := b.At(pos.X, pos.Y)
		if IsInvalidState(cell.State) {
			reason := InvalidReason(cell.State)
			Log.WithFields(logrus.Fields{
				"player":  player.Name,
				"purpose": purpose,
				"x":       pos.X,
				"y":       pos.Y,
				"reason":  reason,
			}).Debug("position rejected")
			e.emit(PositionRejected{
				Player: player.Name, Purpose: purpose,
				X: pos.X, Y: pos.Y, Reason: reason,
			})
			continue
		}
		if purpose == Placing {
			pos.State = WithMine
		}
		return pos, nil
	}
}
