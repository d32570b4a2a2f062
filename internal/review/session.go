package review

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/rangevault/rangevault/internal/engine"
	"github.com/rangevault/rangevault/internal/logger"
	"github.com/rangevault/rangevault/internal/services"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for now
	},
}

// ClientMessage is what a hand-review client sends: either a fresh
// betting state to start from, or an action to apply to the current one.
type ClientMessage struct {
	Type   string        `json:"type"` // "start" or "action"
	State  *engine.State `json:"state,omitempty"`
	Action string        `json:"action,omitempty"`
	Amount int           `json:"amount,omitempty"`
}

// ServerMessage carries the session state back after every client message.
type ServerMessage struct {
	Type      string              `json:"type"` // "state" or "error"
	State     *engine.State       `json:"state,omitempty"`
	Actions   []engine.ActionKind `json:"actions,omitempty"`
	RoundOver bool                `json:"round_over,omitempty"`
	Error     string              `json:"error,omitempty"`
}

// SessionHandler runs interactive hand-review sessions over a websocket.
// Each connection owns its betting state; the engine itself stays pure
// and the session acts as the caller that holds state between decisions.
// Connections are independent: nothing is shared or broadcast.
type SessionHandler struct {
	log    logger.Logger
	review services.ReviewServicer
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(log logger.Logger, review services.ReviewServicer) *SessionHandler {
	return &SessionHandler{log: log, review: review}
}

// Serve upgrades the connection and runs the session loop until the
// client disconnects
func (s *SessionHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("Websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	s.log.Debug("Review session started", "remote", conn.RemoteAddr().String())

	var state engine.State
	started := false

	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			s.log.Debug("Review session closed", "error", err)
			return
		}

		switch msg.Type {
		case "start":
			if msg.State == nil {
				s.send(conn, ServerMessage{Type: "error", Error: "start requires a state"})
				continue
			}
			state = *msg.State
			started = true
			s.send(conn, ServerMessage{
				Type:    "state",
				State:   &state,
				Actions: s.review.AvailableActions(state.Level),
			})

		case "action":
			if !started {
				s.send(conn, ServerMessage{Type: "error", Error: "no active state; send start first"})
				continue
			}
			next, actions, err := s.review.Resolve(engine.ActionKind(msg.Action), msg.Amount, state)
			if err != nil {
				s.send(conn, ServerMessage{Type: "error", Error: err.Error()})
				continue
			}
			if engine.ActionKind(msg.Action) == engine.Fold {
				// Fold is terminal for the player; the client must send a
				// new start before acting again.
				started = false
				s.send(conn, ServerMessage{Type: "state", State: &next, RoundOver: true})
				continue
			}
			state = next
			s.send(conn, ServerMessage{Type: "state", State: &state, Actions: actions})

		default:
			s.send(conn, ServerMessage{Type: "error", Error: "unknown message type"})
		}
	}
}

func (s *SessionHandler) send(conn *websocket.Conn, msg ServerMessage) {
	if err := conn.WriteJSON(msg); err != nil {
		s.log.Debug("Review session write failed", "error", err)
	}
}
