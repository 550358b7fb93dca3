// Package store provides durable storage for categories and items.
package store

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned when the requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails a field constraint.
var ErrValidation = errors.New("invalid input")

// Store wraps the shared database handle. It is constructed once and passed
// to every handler that needs it.
type Store struct {
	db *sql.DB
}

// New creates a Store backed by the given database.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}
