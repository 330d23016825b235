// Package repository implements persistence over PostgreSQL. Sentinel
// errors defined here let callers distinguish "no such row" from a hard
// database failure instead of inspecting side effects.
package repository

import "errors"

// ErrNotFound is returned when a targeted row does not exist, for
// example deleting a movie by an id that was never inserted.
var ErrNotFound = errors.New("not found")
