package usecase

import (
	"context"
	"fmt"

	"cinemahub/internal/data/entity"
	"cinemahub/internal/data/repository"
	"cinemahub/internal/dto/request"
	"cinemahub/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	// ProcessBooking runs the whole booking flow: availability check,
	// seat selection in ascending index order, price calculation, and
	// atomic persistence. No partial booking is ever left behind: if the
	// store rejects the transaction the in-memory reservations are
	// released again before the error is returned.
	ProcessBooking(ctx context.Context, movie *entity.Movie, showTime *entity.ShowTime, req *request.CreateBookingRequest) (*entity.Booking, error)

	// CheckAvailability reports whether the showtime still has at least
	// count seats of the given type.
	CheckAvailability(showTime *entity.ShowTime, seatType entity.SeatType, count int) bool

	// LookupCustomer returns the stored details for a returning customer,
	// or nil when the NIC has never booked before.
	LookupCustomer(ctx context.Context, nic string) (*entity.User, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CheckAvailability(showTime *entity.ShowTime, seatType entity.SeatType, count int) bool {
	return showTime.AvailableByType(seatType) >= count
}

func (s *bookingService) LookupCustomer(ctx context.Context, nic string) (*entity.User, error) {
	user, err := s.repo.User.FindByNIC(ctx, nic)
	if err != nil {
		return nil, fmt.Errorf("look up customer: %w", err)
	}
	return user, nil
}

func (s *bookingService) ProcessBooking(ctx context.Context, movie *entity.Movie, showTime *entity.ShowTime, req *request.CreateBookingRequest) (*entity.Booking, error) {
	if showTime == nil {
		return nil, ErrShowTimeNotFound
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	seatType, err := entity.ParseSeatType(req.SeatType)
	if err != nil {
		return nil, err
	}

	if !s.CheckAvailability(showTime, seatType, req.SeatCount) {
		return nil, fmt.Errorf("%w: %d %s requested, %d available",
			ErrInsufficientSeats, req.SeatCount, seatType, showTime.AvailableByType(seatType))
	}

	selected := s.reserveSeats(showTime, seatType, req.SeatCount)

	totalPrice := 0.0
	for _, seat := range selected {
		totalPrice += seat.Price
	}

	booking := &entity.Booking{
		Ref: utils.GenerateBookingRef(),
		User: &entity.User{
			Name:  req.Name,
			NIC:   req.NIC,
			Email: req.Email,
		},
		Movie:      movie,
		ShowTime:   showTime,
		Seats:      selected,
		TotalPrice: totalPrice,
	}

	if err := s.repo.Booking.Save(ctx, booking); err != nil {
		// The store rejected the booking, so the reservations made above
		// must not survive in memory either.
		for _, seat := range selected {
			seat.Release()
		}
		s.log.Error("Failed to persist booking, seats released",
			zap.Error(err),
			zap.String("booking_ref", booking.Ref),
			zap.Int("seat_count", len(selected)),
		)
		return nil, fmt.Errorf("save booking: %w", err)
	}

	s.log.Info("Booking processed",
		zap.Int64("booking_id", booking.ID),
		zap.String("booking_ref", booking.Ref),
		zap.String("movie", movie.Title),
		zap.String("seat_type", string(seatType)),
		zap.Int("seat_count", len(selected)),
		zap.Float64("total_price", totalPrice),
	)

	return booking, nil
}

// reserveSeats takes the first count available seats of the requested
// type, walking the layout in index order.
func (s *bookingService) reserveSeats(showTime *entity.ShowTime, seatType entity.SeatType, count int) []*entity.Seat {
	selected := make([]*entity.Seat, 0, count)
	for _, seat := range showTime.Seats {
		if seat.Type == seatType && seat.Available {
			seat.Reserve()
			selected = append(selected, seat)
			if len(selected) == count {
				break
			}
		}
	}
	return selected
}
