// Package spectate streams the events of a running session to read-only
// websocket clients.
package spectate

import (
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minefield/internal/minefield"
)

const backlog = 64

type Envelope struct {
	Session uuid.UUID           `json:"session"`
	Seq     uint64              `json:"seq"`
	Kind    minefield.EventKind `json:"kind"`
	Data    minefield.Event     `json:"data"`
}

// Filter selects envelopes by kind and player. Empty lists match everything;
// events without a player only pass an empty player list.
type Filter struct {
	Kinds   []string `schema:"kind"`
	Players []string `schema:"player"`
}

func (f Filter) Match(env Envelope) bool {
	if len(f.Kinds) > 0 && !slices.Contains(f.Kinds, string(env.Kind)) {
		return false
	}
	if len(f.Players) > 0 && !slices.Contains(f.Players, minefield.EventPlayer(env.Data)) {
		return false
	}
	return true
}

type watcher struct {
	filter Filter
	ch     chan Envelope
}

// Hub fans the events of one session out to its watchers. Watchers that fall
// behind by more than backlog envelopes are dropped.
type Hub struct {
	session uuid.UUID
	log     logrus.FieldLogger

	mu       sync.Mutex
	seq      uint64
	closed   bool
	watchers map[*watcher]struct{}
}

func NewHub(log logrus.FieldLogger, session uuid.UUID) *Hub {
	return &Hub{
		session:  session,
		log:      log.WithField("session", session),
		watchers: make(map[*watcher]struct{}),
	}
}

// [Hub] implements [minefield.Sink]
func (h *Hub) Emit(e minefield.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.seq++
	env := Envelope{Session: h.session, Seq: h.seq, Kind: e.Kind(), Data: e}
	for w := range h.watchers {
		if !w.filter.Match(env) {
			continue
		}
		select {
		case w.ch <- env:
		default:
			h.log.WithField("seq", env.Seq).Warn("spectator too slow, dropping")
			h.remove(w)
		}
	}
}

func (h *Hub) subscribe(f Filter) (*watcher, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, false
	}
	w := &watcher{filter: f, ch: make(chan Envelope, backlog)}
	h.watchers[w] = struct{}{}
	return w, true
}

func (h *Hub) unsubscribe(w *watcher) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(w)
}

// remove must be called with mu held.
func (h *Hub) remove(w *watcher) {
	if _, ok := h.watchers[w]; !ok {
		return
	}
	delete(h.watchers, w)
	close(w.ch)
}

func (h *Hub) Watchers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.watchers)
}

// Close ends every stream once its pending envelopes are written. Later events
// are ignored.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for w := range h.watchers {
		h.remove(w)
	}
}
