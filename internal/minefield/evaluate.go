package minefield

// Verdict is the result of evaluating a finished round.
type Verdict struct {
	Statuses   []PlayerStatus
	Winners    []string
	Eliminated []string
	Remaining  Players
	Over       bool
	Outcome    Outcome
}

// Evaluate decides who won, who is out and whether the game ends. It does not
// modify s.
//
// The game ends when a player has detected all of this round's opponent mines,
// when at most one player is left, or when the board has no empty cell.
func Evaluate(s *Session) Verdict {
	var v Verdict
	for _, p := range s.Players {
		total := s.Players.CountOpponentMines(p.Name)
		v.Statuses = append(v.Statuses, PlayerStatus{
			Player:                p.Name,
			OpponentMinesDetected: p.OpponentMinesDetected,
			TotalOpponentMines:    total,
			RemainingMines:        p.RemainingMines,
		})
		if p.OpponentMinesDetected >= total && total > 0 {
			v.Winners = append(v.Winners, p.Name)
		}
		if p.RemainingMines == 0 {
			v.Eliminated = append(v.Eliminated, p.Name)
		}
	}
	v.Remaining = s.Players.Without(v.Eliminated)

	switch {
	case len(v.Winners) > 0:
		v.Over, v.Outcome = true, OutcomeWinners
	case len(v.Remaining) == 1:
		v.Over, v.Outcome = true, OutcomeLastPlayerStanding
		v.Winners = []string{v.Remaining[0].Name}
	case len(v.Remaining) == 0:
		v.Over, v.Outcome = true, OutcomeNoPlayersLeft
	case s.Board.Full():
		v.Over, v.Outcome = true, OutcomeBoardFull
		if top := v.Remaining.TopScorer(); top != nil {
			v.Winners = []string{top.Name}
		}
	}
	return v
}

func (e *Engine) checkNextTurn(s *Session) Phase {
	v := Evaluate(s)

	e.emit(RoundSummary{Round: s.Round - 1, Players: v.Statuses})
	for _, name := range v.Eliminated {
		e.emit(PlayerEliminated{Player: name})
	}
	final := scores(s.Players)
	s.Players = v.Remaining

	if v.Over {
		Log.WithField("outcome", v.Outcome).Debug("game over")
		e.emit(GameOver{Outcome: v.Outcome, Winners: v.Winners, Scores: final})
		return Terminal
	}

	for i := range s.Players {
		s.Players[i].PlacedMines = nil
	}
	e.emit(NextRound{Round: s.Round})
	return PuttingMines
}
