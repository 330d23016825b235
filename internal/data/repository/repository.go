package repository

import (
	"cinemahub/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Movie   MovieRepository
	User    UserRepository
	Booking BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	users := NewUserRepository(db, log)
	return &Repository{
		Movie:   NewMovieRepository(db, log),
		User:    users,
		Booking: NewBookingRepository(db, users, log),
	}
}
