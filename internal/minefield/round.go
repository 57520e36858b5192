package minefield

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

func (e *Engine) putMines(ctx context.Context, s *Session) (Phase, error) {
	if len(s.Players) == 0 {
		Log.Warn("no players to place mines, back to player creation")
		return CreatingPlayers, nil
	}

	quota := s.InitialMines
	if s.Round > 1 {
		// with more than two players the quota is capped by whoever has the
		// fewest mines left
		quota = s.Players.LeastAvailableMines()
		if quota == 0 {
			e.emit(GameOver{Outcome: OutcomeNoMinesLeft, Scores: scores(s.Players)})
			return Terminal, nil
		}
	}
	s.Mines = quota
	e.emit(RoundStarted{Round: s.Round, Quota: quota})

	for i := range s.Players {
		p := &s.Players[i]
		e.emit(TurnStarted{Player: p.Name, Purpose: Placing, Quota: quota})
		for n := range quota {
			if s.Board.Available() == 0 {
				e.emit(TurnSkipped{Player: p.Name, Purpose: Placing, Remaining: quota - n})
				break
			}
			pos, err := e.obtainPosition(ctx, s.Board, p, Placing, n+1, quota)
			if err != nil {
				return Terminal, fmt.Errorf("unable to place mine for %s: %w", p.Name, err)
			}
			s.Board.Set(pos.X, pos.Y, WithMine)
			p.PlacedMines = append(p.PlacedMines, pos)
			e.emit(MinePlaced{Player: p.Name, X: pos.X, Y: pos.Y, Index: n + 1, Total: quota})
		}
		e.emit(BoardShown{Player: p.Name, View: s.Board.ViewFor(p)})
	}

	s.Round++
	return ProcessingMines, nil
}

type coord struct{ x, y int }

// processMines removes every coordinate claimed more than once this round, for
// all claimants, then files the round's placements into history.
func (e *Engine) processMines(s *Session) Phase {
	claims := make(map[coord][]string)
	var order []coord
	for _, p := range s.Players {
		for _, m := range p.PlacedMines {
			c := coord{m.X, m.Y}
			if _, seen := claims[c]; !seen {
				order = append(order, c)
			}
			claims[c] = append(claims[c], p.Name)
		}
	}

	collisions := 0
	for _, c := range order {
		if len(claims[c]) < 2 {
			continue
		}
		collisions++
		s.Board.Set(c.x, c.y, Removed)
		Log.WithFields(logrus.Fields{
			"x": c.x, "y": c.y, "players": claims[c],
		}).Debug("mine collision")
		e.emit(Collision{X: c.x, Y: c.y, Players: claims[c]})
	}
	if collisions == 0 {
		e.emit(NoCollisions{})
	}

	for i := range s.Players {
		s.Players[i].saveMines()
	}
	return GuessingMines
}

// guessMines collects as many guesses per player as mines were placed this
// round.
func (e *Engine) guessMines(ctx context.Context, s *Session) (Phase, error) {
	for i := range s.Players {
		p := &s.Players[i]
		e.emit(TurnStarted{Player: p.Name, Purpose: Guessing, Quota: s.Mines})
		for n := range s.Mines {
			if s.Board.Available() == 0 {
				e.emit(TurnSkipped{Player: p.Name, Purpose: Guessing, Remaining: s.Mines - n})
				break
			}
			pos, err := e.obtainPosition(ctx, s.Board, p, Guessing, n+1, s.Mines)
			if err != nil {
				return Terminal, fmt.Errorf("unable to take guess from %s: %w", p.Name, err)
			}
			p.PlacedGuesses = append(p.PlacedGuesses, pos)
			e.emit(GuessPlaced{Player: p.Name, X: pos.X, Y: pos.Y, Index: n + 1, Total: s.Mines})
		}
	}
	return ProcessingGuesses, nil
}

func (e *Engine) processGuesses(s *Session) Phase {
	for i := range s.Players {
		p := &s.Players[i]
		for _, g := range p.PlacedGuesses {
			e.emit(resolveGuess(s, p, g))
		}
		p.saveGuesses()
		e.emit(BoardShown{Player: p.Name, View: s.Board.ViewFor(p)})
	}
	e.emit(Scoreboard{Scores: scores(s.Players)})
	return CheckingNextTurn
}

// resolveGuess classifies one guess of p and applies it to the board and p's
// counters.
func resolveGuess(s *Session, p *Player, g Position) GuessResolved {
	r := GuessResolved{Player: p.Name, X: g.X, Y: g.Y}
	cell, ok := s.Board.At(g.X, g.Y)
	switch {
	case !ok || IsInvalidState(cell.State):
		r.Outcome = Void
	case p.ownsMine(g):
		// hitting an own mine costs a placement credit
		r.Outcome = OwnMine
		p.OwnMinesDetected++
		if p.RemainingMines > 0 {
			p.RemainingMines--
			s.Board.Set(g.X, g.Y, Removed)
		}
	case cell.State == WithMine:
		r.Outcome = OpponentMine
		p.OpponentMinesDetected++
		s.Board.Set(g.X, g.Y, GuessedMine)
		r.Owner = s.Players.owner(p.Name, g)
	default:
		r.Outcome = Miss
		s.Board.Set(g.X, g.Y, GuessedEmpty)
	}
	r.RemainingMines = p.RemainingMines
	Log.WithFields(logrus.Fields{
		"player":  p.Name,
		"x":       g.X,
		"y":       g.Y,
		"outcome": r.Outcome,
	}).Debug("guess resolved")
	return r
}
