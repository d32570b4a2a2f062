package repository

import "errors"

// ErrNotFound is returned when no row matches a lookup. For range sets it
// also covers rows owned by another user: the repository never reveals
// whether an id exists outside the caller's ownership scope.
var ErrNotFound = errors.New("record not found")

// ErrEmailTaken is returned when a user registration collides with an
// existing email address.
var ErrEmailTaken = errors.New("email already registered")
