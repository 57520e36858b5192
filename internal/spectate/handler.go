package spectate

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/schema"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minefield/internal/config"
)

const writeWait = 10 * time.Second

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}

func ParseFilter(src map[string][]string) (Filter, error) {
	var f Filter
	err := decoder.Decode(&f, src)
	return f, err
}

func sendJSONOrLog(w http.ResponseWriter, log logrus.FieldLogger, status int, v any) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("unable to send response")
	}
}

type Server struct {
	hub *Hub
	log logrus.FieldLogger
	ws  *config.WebSocket
}

func NewServer(hub *Hub, log logrus.FieldLogger, ws *config.WebSocket) *Server {
	return &Server{hub: hub, log: log, ws: ws}
}

func (s *Server) Session(w http.ResponseWriter, r *http.Request) {
	sendJSONOrLog(w, s.log, http.StatusOK, map[string]any{
		"session":  s.hub.session,
		"watchers": s.hub.Watchers(),
	})
}

func (s *Server) Events(w http.ResponseWriter, r *http.Request) {
	filter, err := ParseFilter(r.URL.Query())
	if err != nil {
		sendJSONOrLog(w, s.log, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	watcher, ok := s.hub.subscribe(filter)
	if !ok {
		sendJSONOrLog(w, s.log, http.StatusGone, map[string]string{"error": "session is over"})
		return
	}
	defer s.hub.unsubscribe(watcher)

	conn, err := s.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		s.log.WithError(err).Error("unable to upgrade")
		return
	}
	defer conn.Close()

	s.log.WithFields(logrus.Fields{
		"kinds":   filter.Kinds,
		"players": filter.Players,
	}).Debug("spectator connected")

	// the feed is read-only; reading only detects a closed client
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-gone:
			return
		case <-r.Context().Done():
			return
		case env, ok := <-watcher.ch:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(
					websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "stream ended"),
				)
				return
			}
			if err := conn.WriteJSON(env); err != nil {
				s.log.WithError(err).Debug("unable to write envelope")
				return
			}
		}
	}
}
