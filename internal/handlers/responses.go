package handlers

import (
	"github.com/rangevault/rangevault/internal/engine"
	"github.com/rangevault/rangevault/internal/models"
)

// AuthResponse is the response for register and login
type AuthResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"user_id"`
}

// RangeSetListResponse is the response for listing range sets
type RangeSetListResponse struct {
	RangeSets []models.RangeSet `json:"range_sets"`
}

// SkeletonResponse is the response for the canonical empty payload
type SkeletonResponse struct {
	Kind      string         `json:"kind"`
	RangeData map[string]any `json:"range_data"`
}

// ActionsResponse is the response for available betting actions
type ActionsResponse struct {
	Level   int                 `json:"level"`
	Actions []engine.ActionKind `json:"actions"`
}

// ResolveResponse is the response for a resolved betting action
type ResolveResponse struct {
	State   engine.State        `json:"state"`
	Actions []engine.ActionKind `json:"actions"`
}
