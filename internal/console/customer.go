package console

import (
	"context"
	"errors"
	"fmt"

	"cinemahub/internal/data/entity"
	"cinemahub/internal/dto/request"
	"cinemahub/internal/usecase"

	"go.uber.org/zap"
)

func (c *Console) userMenu(ctx context.Context) {
	for !c.prompt.Exhausted() {
		fmt.Fprintln(c.out, "\n****** Welcome to CinemaHub QuickTickets ******")
		fmt.Fprintln(c.out, "1. View Movies")
		fmt.Fprintln(c.out, "2. Search Movies")
		fmt.Fprintln(c.out, "3. View Timetable")
		fmt.Fprintln(c.out, "4. Book Tickets")
		fmt.Fprintln(c.out, "5. Logout")

		switch c.prompt.Int("Select an option: ") {
		case 1:
			c.displayMovies()
		case 2:
			c.searchMovies()
		case 3:
			c.displayTimeTable()
		case 4:
			c.bookTickets(ctx)
		case 5:
			fmt.Fprintln(c.out, "Logging out. Thank you for using CinemaHub!")
			return
		default:
			if !c.prompt.Exhausted() {
				fmt.Fprintln(c.out, "Invalid option. Please try again.")
			}
		}
	}
}

func (c *Console) displayMovies() {
	movies := c.service.Movie.Movies()
	if len(movies) == 0 {
		fmt.Fprintln(c.out, "No movies available.")
		return
	}
	for _, movie := range movies {
		fmt.Fprintln(c.out, movie.Details())
	}
}

func (c *Console) searchMovies() {
	title := c.prompt.Line("Enter movie title to search: ")

	movie := c.service.Movie.Search(title)
	if movie == nil {
		fmt.Fprintf(c.out, "No movies found with the title: %s\n", title)
		return
	}

	fmt.Fprintln(c.out, movie.Details())
	fmt.Fprintln(c.out, "Show Times:")
	for _, st := range movie.ShowTimes {
		fmt.Fprintf(c.out, " - %s\n", st.Info())
	}
}

func (c *Console) displayTimeTable() {
	movies := c.service.Movie.Movies()
	if len(movies) == 0 {
		fmt.Fprintln(c.out, "No movies available for timetable display.")
		return
	}
	for _, movie := range movies {
		fmt.Fprintf(c.out, "Movie: %s\n", movie.Title)
		for _, st := range movie.ShowTimes {
			fmt.Fprintf(c.out, " - %s\n", st.Info())
		}
	}
}

func (c *Console) bookTickets(ctx context.Context) {
	nic := c.prompt.Line("Enter your NIC: ")
	req := &request.CreateBookingRequest{NIC: nic}

	// Returning customers are recognised by NIC; the lookup is best-effort,
	// a store failure just falls back to asking for the details.
	user, err := c.service.Booking.LookupCustomer(ctx, nic)
	if err != nil {
		c.log.Warn("Customer lookup failed", zap.Error(err))
	}
	if user != nil {
		fmt.Fprintf(c.out, "Welcome back, %s (%s).\n", user.Name, user.Email)
		req.Name = user.Name
		req.Email = user.Email
	} else {
		req.Name = c.prompt.Line("Enter your name: ")
		req.Email = c.prompt.Line("Enter your email: ")
	}

	fmt.Fprintln(c.out, "\n*** Available Movies ***")
	c.displayMovies()

	title := c.prompt.Line("\nEnter movie title to book: ")
	movie := c.service.Movie.Search(title)
	if movie == nil {
		fmt.Fprintf(c.out, "No movies found with title: %s\n", title)
		return
	}

	if len(movie.ShowTimes) == 0 {
		fmt.Fprintf(c.out, "No showtimes available for %s.\n", movie.Title)
		return
	}

	fmt.Fprintf(c.out, "Available showtimes for %s:\n", movie.Title)
	for i, st := range movie.ShowTimes {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, st.Info())
	}

	choice := c.prompt.Choice("Select a showtime (e.g., 1, 2): ", 1, len(movie.ShowTimes))
	if c.prompt.Exhausted() {
		return
	}
	showTime := movie.ShowTimes[choice-1]

	fmt.Fprintln(c.out, "\nRemaining seats for each seat type:")
	for _, seatType := range []entity.SeatType{entity.SeatStandard, entity.SeatPremium, entity.SeatVIP} {
		fmt.Fprintf(c.out, "%s: %d remaining\n", seatType, showTime.AvailableByType(seatType))
	}

	req.SeatType = c.selectSeatType()
	if c.prompt.Exhausted() {
		return
	}
	req.SeatCount = c.prompt.Int("Enter the number of seats: ")

	booking, err := c.service.Booking.ProcessBooking(ctx, movie, showTime, req)
	switch {
	case errors.Is(err, usecase.ErrInsufficientSeats):
		fmt.Fprintln(c.out, "Not enough seats available.")
	case err != nil:
		fmt.Fprintf(c.out, "Booking failed: %v\n", err)
	default:
		fmt.Fprintln(c.out, "Seats reserved successfully.")
		fmt.Fprintf(c.out, "\nBooking successful! Here are your details:\n%s\n", booking.Summary())
	}
}

func (c *Console) selectSeatType() string {
	fmt.Fprintln(c.out, "\nSelect seat type:")
	fmt.Fprintln(c.out, "1. STANDARD (Rs.500)")
	fmt.Fprintln(c.out, "2. PREMIUM (Rs.750)")
	fmt.Fprintln(c.out, "3. VIP (Rs.1000)")

	switch c.prompt.Choice("Enter your choice (1, 2, 3): ", 1, 3) {
	case 1:
		return string(entity.SeatStandard)
	case 2:
		return string(entity.SeatPremium)
	case 3:
		return string(entity.SeatVIP)
	}
	return ""
}
