package usecase

import "errors"

// Business-rule failures surfaced to the console layer. Persistence
// failures are wrapped and propagated separately so callers can always
// tell a rejected request from a broken store.
var (
	ErrMovieNotFound     = errors.New("movie not found")
	ErrShowTimeNotFound  = errors.New("showtime not found")
	ErrInsufficientSeats = errors.New("not enough seats available")
)
