package database

import (
	"context"
	"fmt"
)

const createMoviesSQL = `
CREATE TABLE IF NOT EXISTS movies (
    movie_id     BIGSERIAL PRIMARY KEY,
    title        TEXT NOT NULL,
    language     TEXT NOT NULL,
    genre        TEXT NOT NULL,
    format       TEXT NOT NULL,
    imdb_rating  DOUBLE PRECISION NOT NULL,
    release_date TEXT NOT NULL,
    duration     INTEGER NOT NULL
);`

const createShowtimesSQL = `
CREATE TABLE IF NOT EXISTS showtimes (
    showtime_id BIGSERIAL PRIMARY KEY,
    movie_id    BIGINT NOT NULL REFERENCES movies(movie_id) ON DELETE CASCADE,
    day         TEXT NOT NULL,
    show_time   TEXT NOT NULL
);`

const createUsersSQL = `
CREATE TABLE IF NOT EXISTS users (
    user_id BIGSERIAL PRIMARY KEY,
    nic     TEXT NOT NULL UNIQUE,
    name    TEXT NOT NULL,
    email   TEXT NOT NULL
);`

const createBookingsSQL = `
CREATE TABLE IF NOT EXISTS bookings (
    booking_id  BIGSERIAL PRIMARY KEY,
    booking_ref TEXT NOT NULL,
    user_id     BIGINT NOT NULL REFERENCES users(user_id),
    showtime_id BIGINT NOT NULL REFERENCES showtimes(showtime_id) ON DELETE CASCADE,
    total_price DOUBLE PRECISION NOT NULL
);`

const createBookingSeatsSQL = `
CREATE TABLE IF NOT EXISTS booking_seats (
    booking_id BIGINT NOT NULL REFERENCES bookings(booking_id) ON DELETE CASCADE,
    seat_index INTEGER NOT NULL,
    seat_type  TEXT NOT NULL,
    price      DOUBLE PRECISION NOT NULL
);`

// Migrate creates the schema if it does not exist yet. Statements are
// ordered so foreign keys resolve.
func Migrate(ctx context.Context, db PgxIface) error {
	statements := []struct {
		table string
		sql   string
	}{
		{"movies", createMoviesSQL},
		{"showtimes", createShowtimesSQL},
		{"users", createUsersSQL},
		{"bookings", createBookingsSQL},
		{"booking_seats", createBookingSeatsSQL},
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt.sql); err != nil {
			return fmt.Errorf("create table %s: %w", stmt.table, err)
		}
	}

	return nil
}
