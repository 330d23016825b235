package entity

import (
	"fmt"
	"strings"
)

// Booking is a confirmed reservation of a set of seats for one showtime.
// Ref is a human-shareable reference code generated at booking time;
// the numeric ID is assigned by the store.
type Booking struct {
	ID         int64
	Ref        string
	User       *User
	Movie      *Movie
	ShowTime   *ShowTime
	Seats      []*Seat
	TotalPrice float64
}

// Summary renders the booking confirmation shown to the customer.
func (b *Booking) Summary() string {
	var sb strings.Builder
	sb.WriteString("*** Booking Summary ***\n")
	fmt.Fprintf(&sb, "Reference: %s\n", b.Ref)
	fmt.Fprintf(&sb, "User: %s\n", b.User.Name)
	fmt.Fprintf(&sb, "NIC: %s\n", b.User.NIC)
	fmt.Fprintf(&sb, "Email: %s\n", b.User.Email)
	fmt.Fprintf(&sb, "Movie: %s\n", b.Movie.Title)
	fmt.Fprintf(&sb, "Showtime: %s at %s\n", b.ShowTime.Day, b.ShowTime.Time)
	if len(b.Seats) > 0 {
		fmt.Fprintf(&sb, "Seat Type: %s\n", b.Seats[0].Type)
	}
	fmt.Fprintf(&sb, "No of Seats: %d\n", len(b.Seats))
	fmt.Fprintf(&sb, "Total Price: Rs.%.2f", b.TotalPrice)
	return sb.String()
}
