package request

// CreateBookingRequest carries the customer's booking form input. The
// movie and showtime are selected separately from the cached catalogue.
type CreateBookingRequest struct {
	Name      string `validate:"required"`
	NIC       string `validate:"required"`
	Email     string `validate:"required,email"`
	SeatType  string `validate:"required,oneof=STANDARD PREMIUM VIP"`
	SeatCount int    `validate:"required,min=1"`
}
