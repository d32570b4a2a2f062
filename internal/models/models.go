package models

import "time"

// User represents an account that owns range sets. Authentication itself
// is standard token auth; the rest of the system only ever sees the id.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// RangeSet is a complete pre-flop decision chart belonging to one user.
// RangeData is the nested stage/position/.../action document described by
// the rangeschema package; it is stored as JSON in a single column.
type RangeSet struct {
	ID            int64          `json:"id"`
	UserID        int64          `json:"user_id"`
	Name          string         `json:"name"`
	Kind          string         `json:"kind"` // hero or opponent, see rangeschema.Kind
	TableType     string         `json:"table_type"`
	Category      string         `json:"category"`
	StartingStack int            `json:"starting_stack"`
	Bounty        bool           `json:"bounty"`
	RangeData     map[string]any `json:"range_data"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// RangeSetFilter narrows a list query. Nil fields are ignored; supplied
// fields are combined with AND, never OR.
type RangeSetFilter struct {
	TableType     *string
	Category      *string
	StartingStack *int
	Bounty        *bool
}
