package minefield

import "strconv"

type PlayerType int

const (
	Human PlayerType = iota
	Computer
)

func (t PlayerType) String() string {
	if t == Computer {
		return "computer"
	}
	return "human"
}

// Player selectors accepted while creating players, and the name terminator.
const (
	HumanSelector    = "H"
	ComputerSelector = "P"
	StopCreation     = "*"
	ComputerName     = "PC"
)

type Player struct {
	Name                  string
	Type                  PlayerType
	RemainingMines        int
	RemainingGuesses      int
	OpponentMinesDetected int
	OwnMinesDetected      int

	// Current round only.
	PlacedMines   []Position
	PlacedGuesses []Position

	// Every round so far.
	MinesHistory   []Position
	GuessesHistory []Position
}

func NewPlayer(name string, t PlayerType, initialMines int) Player {
	return Player{
		Name:             name,
		Type:             t,
		RemainingMines:   initialMines,
		RemainingGuesses: initialMines,
	}
}

func (p *Player) Score() int {
	return p.OpponentMinesDetected - p.OwnMinesDetected
}

func (p *Player) saveMines() {
	p.MinesHistory = append(p.MinesHistory, p.PlacedMines...)
}

func (p *Player) saveGuesses() {
	p.GuessesHistory = append(p.GuessesHistory, p.PlacedGuesses...)
	p.PlacedGuesses = nil
}

func (p *Player) ownsMine(pos Position) bool {
	return containsPosition(p.MinesHistory, pos)
}

type Players []Player

func (ps Players) NameExists(name string) bool {
	for _, p := range ps {
		if p.Name == name {
			return true
		}
	}
	return false
}

func (ps Players) Names() []string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name
	}
	return names
}

// TopScorer returns the first player with the highest positive score, or nil.
func (ps Players) TopScorer() *Player {
	var top *Player
	best := 0
	for i := range ps {
		if score := ps[i].Score(); score > best {
			best = score
			top = &ps[i]
		}
	}
	return top
}

// LeastAvailableMines is the smallest RemainingMines among ps, 0 when ps is
// empty.
func (ps Players) LeastAvailableMines() int {
	if len(ps) == 0 {
		return 0
	}
	least := ps[0].RemainingMines
	for _, p := range ps[1:] {
		least = min(least, p.RemainingMines)
	}
	return least
}

// CountOpponentMines sums this round's placements of everyone but name.
func (ps Players) CountOpponentMines(name string) (total int) {
	for _, p := range ps {
		if p.Name != name {
			total += len(p.PlacedMines)
		}
	}
	return
}

// Without returns the players whose names are not in removed, keeping order.
func (ps Players) Without(removed []string) Players {
	result := make(Players, 0, len(ps))
	for _, p := range ps {
		found := false
		for _, name := range removed {
			if p.Name == name {
				found = true
				break
			}
		}
		if !found {
			result = append(result, p)
		}
	}
	return result
}

// owner returns the name of the first player other than guesser who placed a
// mine at pos.
func (ps Players) owner(guesser string, pos Position) string {
	for _, p := range ps {
		if p.Name != guesser && (containsPosition(p.PlacedMines, pos) || p.ownsMine(pos)) {
			return p.Name
		}
	}
	return ""
}

func (ps Players) computerName() string {
	name := ComputerName
	for i := 2; ps.NameExists(name); i++ {
		name = ComputerName + "-" + strconv.Itoa(i)
	}
	return name
}
