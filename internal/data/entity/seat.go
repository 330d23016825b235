package entity

import "fmt"

type SeatType string

const (
	SeatStandard SeatType = "STANDARD"
	SeatPremium  SeatType = "PREMIUM"
	SeatVIP      SeatType = "VIP"
)

// Fixed price tiers per seat type.
const (
	PriceStandard = 500.0
	PricePremium  = 750.0
	PriceVIP      = 1000.0
)

// Layout block sizes. Every showtime gets the same 100-seat layout:
// standard seats first, then premium, then VIP.
const (
	StandardSeatCount = 50
	PremiumSeatCount  = 30
	VIPSeatCount      = 20
	TotalSeatCount    = StandardSeatCount + PremiumSeatCount + VIPSeatCount
)

// Seat is a single seat in a showtime's layout. Index is the seat's
// position in the layout, stamped at creation time, and is the identity
// stored in booking_seats rows.
type Seat struct {
	Index     int
	Type      SeatType
	Price     float64
	Available bool
}

// DefaultSeatLayout builds a fresh 100-seat layout: 50 standard, 30 premium,
// 20 VIP, in that order. All seats start available.
func DefaultSeatLayout() []*Seat {
	layout := make([]*Seat, 0, TotalSeatCount)

	add := func(count int, seatType SeatType, price float64) {
		for i := 0; i < count; i++ {
			layout = append(layout, &Seat{
				Index:     len(layout),
				Type:      seatType,
				Price:     price,
				Available: true,
			})
		}
	}

	add(StandardSeatCount, SeatStandard, PriceStandard)
	add(PremiumSeatCount, SeatPremium, PricePremium)
	add(VIPSeatCount, SeatVIP, PriceVIP)

	return layout
}

// Reserve marks the seat unavailable. Reserving an already-taken seat
// is a no-op.
func (s *Seat) Reserve() {
	s.Available = false
}

// Release returns the seat to the available pool.
func (s *Seat) Release() {
	s.Available = true
}

// ParseSeatType converts a persisted or user-supplied seat type string
// into a SeatType.
func ParseSeatType(value string) (SeatType, error) {
	switch SeatType(value) {
	case SeatStandard, SeatPremium, SeatVIP:
		return SeatType(value), nil
	}
	return "", fmt.Errorf("unknown seat type %q", value)
}
