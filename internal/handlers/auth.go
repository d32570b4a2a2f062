package handlers

import (
	"net/http"

	"github.com/rangevault/rangevault/internal/auth"
)

// handleRegister creates an account and returns a token for it
func (h *Handlers) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	user, err := h.Users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	token, err := h.Auth.IssueToken(user.ID)
	if err != nil {
		respondError(w, InternalError(err))
		return
	}

	respondCreated(w, AuthResponse{Token: token, UserID: user.ID})
}

// handleLogin checks credentials and returns a token
func (h *Handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	userID, err := h.Users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	token, err := h.Auth.IssueToken(userID)
	if err != nil {
		respondError(w, InternalError(err))
		return
	}

	respondOK(w, AuthResponse{Token: token, UserID: userID})
}

// handleDeleteAccount removes the authenticated user's account; their
// range sets are cascaded by the store
func (h *Handlers) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respondError(w, Unauthorized("Unauthorized"))
		return
	}

	if err := h.Users.Delete(r.Context(), userID); err != nil {
		respondError(w, err)
		return
	}
	respondDeleted(w)
}
