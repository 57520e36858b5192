package minefield

import (
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	Log.SetLevel(logrus.WarnLevel)
	os.Exit(m.Run())
}

// scriptedInput answers prompts from fixed queues and fails with
// ErrInputClosed once a queue runs dry.
type scriptedInput struct {
	ints    []int
	lines   []string
	prompts []Prompt
}

func (in *scriptedInput) Integer(_ context.Context, p Prompt) (int, error) {
	in.prompts = append(in.prompts, p)
	if len(in.ints) == 0 {
		return 0, ErrInputClosed
	}
	v := in.ints[0]
	in.ints = in.ints[1:]
	return v, nil
}

func (in *scriptedInput) Line(_ context.Context, p Prompt) (string, error) {
	in.prompts = append(in.prompts, p)
	if len(in.lines) == 0 {
		return "", ErrInputClosed
	}
	v := in.lines[0]
	in.lines = in.lines[1:]
	return v, nil
}

// sequence returns its values in order, ignoring n.
type sequence struct {
	values []int
	calls  []int
}

func (s *sequence) IntN(n int) int {
	s.calls = append(s.calls, n)
	v := s.values[0]
	s.values = s.values[1:]
	return v
}

type recorder struct {
	events []Event
}

func (r *recorder) Emit(e Event) {
	r.events = append(r.events, e)
}

func (r *recorder) kinds() []EventKind {
	kinds := make([]EventKind, len(r.events))
	for i, e := range r.events {
		kinds[i] = e.Kind()
	}
	return kinds
}

func eventsOf[T Event](r *recorder) (res []T) {
	for _, e := range r.events {
		if t, ok := e.(T); ok {
			res = append(res, t)
		}
	}
	return
}

func newTestEngine(in *scriptedInput, rnd *sequence) (*Engine, *recorder) {
	rec := &recorder{}
	e := NewEngine(in, nil, rec, DefaultLimits())
	if rnd != nil {
		e.Random = rnd
	}
	return e, rec
}

func addPlayer(s *Session, name string, remainingMines int) {
	p := NewPlayer(name, Human, remainingMines)
	s.Players = append(s.Players, p)
}

func stateAt(t *testing.T, b *Board, x, y int) PositionState {
	t.Helper()
	cell, ok := b.At(x, y)
	if !ok {
		t.Fatalf("no cell at %d:%d", x, y)
	}
	return cell.State
}
