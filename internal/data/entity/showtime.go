package entity

import "fmt"

// ShowTime is a scheduled screening of a movie on a given day and time.
// Each showtime owns an independent seat inventory.
type ShowTime struct {
	ID    int64
	Day   string
	Time  string
	Seats []*Seat
}

// NewShowTime creates a showtime with a fresh default seat layout.
func NewShowTime(day, time string) *ShowTime {
	return &ShowTime{
		Day:   day,
		Time:  time,
		Seats: DefaultSeatLayout(),
	}
}

// Info renders the showtime for console display.
func (st *ShowTime) Info() string {
	return fmt.Sprintf("Day: %s, Time: %s", st.Day, st.Time)
}

// AvailableByType counts currently-available seats of the given type.
func (st *ShowTime) AvailableByType(seatType SeatType) int {
	count := 0
	for _, seat := range st.Seats {
		if seat.Type == seatType && seat.Available {
			count++
		}
	}
	return count
}

// MarkBooked flags the seat at the given layout index as taken. Indices
// outside the layout are ignored; committed history may predate a layout
// change and must not panic a reload.
func (st *ShowTime) MarkBooked(index int) {
	if index >= 0 && index < len(st.Seats) {
		st.Seats[index].Reserve()
	}
}

// HasSeat reports whether the seat belongs to this showtime's layout at
// its stamped index.
func (st *ShowTime) HasSeat(seat *Seat) bool {
	return seat != nil && seat.Index >= 0 && seat.Index < len(st.Seats) && st.Seats[seat.Index] == seat
}
