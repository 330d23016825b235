package repository

import (
	"context"
	"fmt"

	"cinemahub/internal/data/entity"
	"cinemahub/pkg/database"

	"go.uber.org/zap"
)

type BookingRepository interface {
	// Save persists the booking atomically: the user is resolved or
	// created by NIC, the booking row is inserted, and one booking_seats
	// row is written per reserved seat. Any failure rolls the whole
	// transaction back.
	Save(ctx context.Context, booking *entity.Booking) error
}

type bookingRepository struct {
	db    database.PgxIface
	users UserRepository
	log   *zap.Logger
}

func NewBookingRepository(db database.PgxIface, users UserRepository, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:    db,
		users: users,
		log:   log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Save(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := r.users.GetOrCreate(ctx, tx, booking.User); err != nil {
		return err
	}

	insertBooking := `
		INSERT INTO bookings (booking_ref, user_id, showtime_id, total_price)
		VALUES ($1, $2, $3, $4)
		RETURNING booking_id
	`

	err = tx.QueryRow(ctx, insertBooking,
		booking.Ref,
		booking.User.ID,
		booking.ShowTime.ID,
		booking.TotalPrice,
	).Scan(&booking.ID)

	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("booking_ref", booking.Ref),
			zap.Int64("showtime_id", booking.ShowTime.ID),
		)
		return fmt.Errorf("insert booking %s: %w", booking.Ref, err)
	}

	insertSeat := `
		INSERT INTO booking_seats (booking_id, seat_index, seat_type, price)
		VALUES ($1, $2, $3, $4)
	`

	for _, seat := range booking.Seats {
		// The stamped index is the durable seat identity; a seat that does
		// not belong to the showtime's layout means the selection logic is
		// broken, so abort rather than persist garbage.
		if !booking.ShowTime.HasSeat(seat) {
			return fmt.Errorf("seat index %d not in showtime %d layout", seat.Index, booking.ShowTime.ID)
		}

		if _, err := tx.Exec(ctx, insertSeat, booking.ID, seat.Index, seat.Type, seat.Price); err != nil {
			r.log.Error("Failed to insert booking seat",
				zap.Error(err),
				zap.Int64("booking_id", booking.ID),
				zap.Int("seat_index", seat.Index),
			)
			return fmt.Errorf("insert seat %d for booking %d: %w", seat.Index, booking.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking transaction: %w", err)
	}

	r.log.Info("Booking saved",
		zap.Int64("booking_id", booking.ID),
		zap.String("booking_ref", booking.Ref),
		zap.Int64("user_id", booking.User.ID),
		zap.Int("seat_count", len(booking.Seats)),
		zap.Float64("total_price", booking.TotalPrice),
	)

	return nil
}
