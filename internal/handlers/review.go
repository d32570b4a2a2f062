package handlers

import (
	"net/http"
	"strconv"

	"github.com/rangevault/rangevault/internal/engine"
)

// handleAvailableActions returns the ordered legal actions for a betting
// level (?level=N, default 0)
func (h *Handlers) handleAvailableActions(w http.ResponseWriter, r *http.Request) {
	level := 0
	if v := r.URL.Query().Get("level"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 || parsed > engine.MaxLevel {
			respondError(w, BadRequest("Invalid level parameter"))
			return
		}
		level = parsed
	}

	respondOK(w, ActionsResponse{Level: level, Actions: h.Review.AvailableActions(level)})
}

// handleResolveAction applies one betting action to a state and returns
// the resulting state plus the actions available from it
func (h *Handlers) handleResolveAction(w http.ResponseWriter, r *http.Request) {
	var req ResolveActionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.Action == "" {
		respondError(w, BadRequest("Missing action"))
		return
	}

	state, actions, err := h.Review.Resolve(engine.ActionKind(req.Action), req.Amount, req.State)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, ResolveResponse{State: state, Actions: actions})
}
