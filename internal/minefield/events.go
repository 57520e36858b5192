package minefield

type EventKind string

const (
	KindBoardCreated     EventKind = "board_created"
	KindMinesConfigured  EventKind = "mines_configured"
	KindInputRejected    EventKind = "input_rejected"
	KindNameRejected     EventKind = "name_rejected"
	KindPlayerAdded      EventKind = "player_added"
	KindOpponentAdded    EventKind = "opponent_added"
	KindPlayersReady     EventKind = "players_ready"
	KindRoundStarted     EventKind = "round_started"
	KindTurnStarted      EventKind = "turn_started"
	KindPositionRejected EventKind = "position_rejected"
	KindTurnSkipped      EventKind = "turn_skipped"
	KindMinePlaced       EventKind = "mine_placed"
	KindBoardShown       EventKind = "board_shown"
	KindCollision        EventKind = "collision"
	KindNoCollisions     EventKind = "no_collisions"
	KindGuessPlaced      EventKind = "guess_placed"
	KindGuessResolved    EventKind = "guess_resolved"
	KindScoreboard       EventKind = "scoreboard"
	KindRoundSummary     EventKind = "round_summary"
	KindPlayerEliminated EventKind = "player_eliminated"
	KindNextRound        EventKind = "next_round"
	KindGameOver         EventKind = "game_over"
)

type Event interface {
	Kind() EventKind
}

// Sink receives engine events in the order they happen.
type Sink interface {
	Emit(Event)
}

type SinkFunc func(Event)

func (f SinkFunc) Emit(e Event) { f(e) }

type multiSink []Sink

func (m multiSink) Emit(e Event) {
	for _, s := range m {
		s.Emit(e)
	}
}

// Sinks fans events out to every non-nil sink.
func Sinks(sinks ...Sink) Sink {
	m := make(multiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			m = append(m, s)
		}
	}
	return m
}

var Discard Sink = SinkFunc(func(Event) {})

type BoardCreated struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type MinesConfigured struct {
	Mines int `json:"mines"`
}

// InputRejected reports an answer outside the prompt's bounds or an unknown
// selector.
type InputRejected struct {
	Prompt PromptKind `json:"prompt"`
	Value  string     `json:"value"`
	Min    int        `json:"min"`
	Max    int        `json:"max"`
}

type NameRejected struct {
	Name  string `json:"name"`
	Blank bool   `json:"blank"`
}

type PlayerAdded struct {
	Player string     `json:"player"`
	Type   PlayerType `json:"type"`
}

type OpponentAdded struct {
	Player   string `json:"player"`
	Opponent string `json:"opponent"`
}

type PlayersReady struct {
	Players []string `json:"players"`
}

type RoundStarted struct {
	Round int `json:"round"`
	Quota int `json:"quota"`
}

type TurnStarted struct {
	Player  string  `json:"player"`
	Purpose Purpose `json:"purpose"`
	Quota   int     `json:"quota"`
}

type PositionRejected struct {
	Player  string  `json:"player"`
	Purpose Purpose `json:"purpose"`
	X       int     `json:"x"`
	Y       int     `json:"y"`
	Reason  Reason  `json:"reason"`
}

// TurnSkipped is emitted when no valid cell is left for the remaining
// placements or guesses of a player.
type TurnSkipped struct {
	Player    string  `json:"player"`
	Purpose   Purpose `json:"purpose"`
	Remaining int     `json:"remaining"`
}

type MinePlaced struct {
	Player string `json:"player"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Index  int    `json:"index"`
	Total  int    `json:"total"`
}

type BoardShown struct {
	Player string            `json:"player"`
	View   [][]PositionState `json:"view"`
}

type Collision struct {
	X       int      `json:"x"`
	Y       int      `json:"y"`
	Players []string `json:"players"`
}

type NoCollisions struct{}

type GuessPlaced struct {
	Player string `json:"player"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Index  int    `json:"index"`
	Total  int    `json:"total"`
}

type GuessOutcome int

const (
	Miss GuessOutcome = iota
	OwnMine
	OpponentMine
	// Void marks a guess whose cell was already resolved earlier in the same
	// pass.
	Void
)

func (o GuessOutcome) String() string {
	switch o {
	case OwnMine:
		return "own_mine"
	case OpponentMine:
		return "opponent_mine"
	case Void:
		return "void"
	default:
		return "miss"
	}
}

type GuessResolved struct {
	Player         string       `json:"player"`
	X              int          `json:"x"`
	Y              int          `json:"y"`
	Outcome        GuessOutcome `json:"outcome"`
	Owner          string       `json:"owner,omitempty"`
	RemainingMines int          `json:"remaining_mines"`
}

type Score struct {
	Player                string `json:"player"`
	OpponentMinesDetected int    `json:"opponent_mines_detected"`
	OwnMinesDetected      int    `json:"own_mines_detected"`
	Score                 int    `json:"score"`
}

type Scoreboard struct {
	Scores []Score `json:"scores"`
}

type PlayerStatus struct {
	Player                string `json:"player"`
	OpponentMinesDetected int    `json:"opponent_mines_detected"`
	TotalOpponentMines    int    `json:"total_opponent_mines"`
	RemainingMines        int    `json:"remaining_mines"`
}

type RoundSummary struct {
	Round   int            `json:"round"`
	Players []PlayerStatus `json:"players"`
}

type PlayerEliminated struct {
	Player string `json:"player"`
}

type NextRound struct {
	Round int `json:"round"`
}

type Outcome int

const (
	OutcomeQuit Outcome = iota
	OutcomeNoPlayers
	OutcomeWinners
	OutcomeLastPlayerStanding
	OutcomeNoPlayersLeft
	OutcomeBoardFull
	OutcomeNoMinesLeft
)

func (o Outcome) String() string {
	switch o {
	case OutcomeQuit:
		return "quit"
	case OutcomeNoPlayers:
		return "no_players"
	case OutcomeWinners:
		return "winners"
	case OutcomeLastPlayerStanding:
		return "last_player_standing"
	case OutcomeNoPlayersLeft:
		return "no_players_left"
	case OutcomeBoardFull:
		return "board_full"
	case OutcomeNoMinesLeft:
		return "no_mines_left"
	default:
		return "unknown"
	}
}

// GameOver is the last event of a session. Winners is empty for draws and
// no-contest endings.
type GameOver struct {
	Outcome Outcome  `json:"outcome"`
	Winners []string `json:"winners,omitempty"`
	Scores  []Score  `json:"scores,omitempty"`
}

func (BoardCreated) Kind() EventKind     { return KindBoardCreated }
func (MinesConfigured) Kind() EventKind  { return KindMinesConfigured }
func (InputRejected) Kind() EventKind    { return KindInputRejected }
func (NameRejected) Kind() EventKind     { return KindNameRejected }
func (PlayerAdded) Kind() EventKind      { return KindPlayerAdded }
func (OpponentAdded) Kind() EventKind    { return KindOpponentAdded }
func (PlayersReady) Kind() EventKind     { return KindPlayersReady }
func (RoundStarted) Kind() EventKind     { return KindRoundStarted }
func (TurnStarted) Kind() EventKind      { return KindTurnStarted }
func (PositionRejected) Kind() EventKind { return KindPositionRejected }
func (TurnSkipped) Kind() EventKind      { return KindTurnSkipped }
func (MinePlaced) Kind() EventKind       { return KindMinePlaced }
func (BoardShown) Kind() EventKind       { return KindBoardShown }
func (Collision) Kind() EventKind        { return KindCollision }
func (NoCollisions) Kind() EventKind     { return KindNoCollisions }
func (GuessPlaced) Kind() EventKind      { return KindGuessPlaced }
func (GuessResolved) Kind() EventKind    { return KindGuessResolved }
func (Scoreboard) Kind() EventKind       { return KindScoreboard }
func (RoundSummary) Kind() EventKind     { return KindRoundSummary }
func (PlayerEliminated) Kind() EventKind { return KindPlayerEliminated }
func (NextRound) Kind() EventKind        { return KindNextRound }
func (GameOver) Kind() EventKind         { return KindGameOver }

// EventPlayer returns the player an event is about, if any.
func EventPlayer(e Event) string {
	switch e := e.(type) {
	case PlayerAdded:
		return e.Player
	case OpponentAdded:
		return e.Player
	case TurnStarted:
		return e.Player
	case PositionRejected:
		return e.Player
	case TurnSkipped:
		return e.Player
	case MinePlaced:
		return e.Player
	case BoardShown:
		return e.Player
	case GuessPlaced:
		return e.Player
	case GuessResolved:
		return e.Player
	case PlayerEliminated:
		return e.Player
	default:
		return ""
	}
}

func scores(ps Players) []Score {
	s := make([]Score, len(ps))
	for i := range ps {
		s[i] = Score{
			Player:                ps[i].Name,
			OpponentMinesDetected: ps[i].OpponentMinesDetected,
			OwnMinesDetected:      ps[i].OwnMinesDetected,
			Score:                 ps[i].Score(),
		}
	}
	return s
}

func (k PromptKind) MarshalText() ([]byte, error)   { return []byte(k.String()), nil }
func (p Purpose) MarshalText() ([]byte, error)      { return []byte(p.String()), nil }
func (r Reason) MarshalText() ([]byte, error)       { return []byte(r.String()), nil }
func (t PlayerType) MarshalText() ([]byte, error)   { return []byte(t.String()), nil }
func (o GuessOutcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }
func (o Outcome) MarshalText() ([]byte, error)      { return []byte(o.String()), nil }
