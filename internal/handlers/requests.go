package handlers

import "github.com/rangevault/rangevault/internal/engine"

// RegisterRequest represents a request to create an account
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RangeSetCreateRequest represents a request to create a range set
type RangeSetCreateRequest struct {
	Name          string         `json:"name"`
	Kind          string         `json:"kind"`
	TableType     string         `json:"table_type"`
	Category      string         `json:"category"`
	StartingStack int            `json:"starting_stack"`
	Bounty        bool           `json:"bounty"`
	RangeData     map[string]any `json:"range_data"`
}

// RangeSetUpdateRequest represents a request to update a range set.
// RangeData replaces the stored payload whole; Name is optional.
type RangeSetUpdateRequest struct {
	Name      string         `json:"name,omitempty"`
	RangeData map[string]any `json:"range_data"`
}

// ResolveActionRequest represents a betting action to resolve
type ResolveActionRequest struct {
	Action string       `json:"action"`
	Amount int          `json:"amount,omitempty"`
	State  engine.State `json:"state"`
}
