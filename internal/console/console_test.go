package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"cinemahub/internal/data/entity"
	"cinemahub/internal/data/repository"
	"cinemahub/internal/usecase"
	"cinemahub/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubMovieRepo struct {
	movies []*entity.Movie
}

func (s *stubMovieRepo) FindAll(context.Context) ([]*entity.Movie, error) { return s.movies, nil }
func (s *stubMovieRepo) Create(_ context.Context, m *entity.Movie) error {
	m.ID = int64(len(s.movies) + 1)
	s.movies = append(s.movies, m)
	return nil
}
func (s *stubMovieRepo) Delete(context.Context, int64) error { return nil }
func (s *stubMovieRepo) AddShowTime(_ context.Context, _ int64, st *entity.ShowTime) error {
	st.ID = 99
	return nil
}

type stubBookingRepo struct {
	saved []*entity.Booking
}

func (s *stubBookingRepo) Save(_ context.Context, b *entity.Booking) error {
	b.ID = int64(len(s.saved) + 1)
	b.User.ID = b.ID
	s.saved = append(s.saved, b)
	return nil
}

type stubUserRepo struct {
	users map[string]*entity.User
}

func (s *stubUserRepo) FindByNIC(_ context.Context, nic string) (*entity.User, error) {
	return s.users[nic], nil
}

func (s *stubUserRepo) GetOrCreate(context.Context, pgx.Tx, *entity.User) error { return nil }

func newTestConsole(t *testing.T, input string, movies []*entity.Movie, users ...*entity.User) (*Console, *bytes.Buffer, *stubBookingRepo) {
	t.Helper()

	userRepo := &stubUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		userRepo.users[u.NIC] = u
	}

	bookings := &stubBookingRepo{}
	repo := &repository.Repository{
		Movie:   &stubMovieRepo{movies: movies},
		User:    userRepo,
		Booking: bookings,
	}
	service := usecase.NewService(repo, zap.NewNop())
	require.NoError(t, service.Movie.Refresh(context.Background()))

	var out bytes.Buffer
	admin := utils.AdminConfig{Username: "admin", Password: "password"}
	return New(strings.NewReader(input), &out, service, admin, zap.NewNop()), &out, bookings
}

func TestRunExit(t *testing.T) {
	c, out, _ := newTestConsole(t, "3\n", nil)

	c.Run(context.Background())

	assert.Contains(t, out.String(), "****** Welcome to CinemaHub! ******")
	assert.Contains(t, out.String(), "Thank you for using CinemaHub!")
}

func TestUserMenuViewMoviesEmpty(t *testing.T) {
	c, out, _ := newTestConsole(t, "2\n1\n5\n3\n", nil)

	c.Run(context.Background())

	assert.Contains(t, out.String(), "No movies available.")
	assert.Contains(t, out.String(), "Logging out. Thank you for using CinemaHub!")
}

func TestAdminLoginRejected(t *testing.T) {
	c, out, _ := newTestConsole(t, "1\nadmin\nwrong\n3\n", nil)

	c.Run(context.Background())

	assert.Contains(t, out.String(), "Invalid admin credentials.")
}

func TestAdminAddsMovie(t *testing.T) {
	input := strings.Join([]string{
		"1",          // login as admin
		"admin",      // username
		"password",   // password
		"1",          // add movie
		"Inception",  // title
		"English",    // language
		"Sci-Fi",     // genre
		"2D",         // format
		"8.8",        // rating
		"2010-07-16", // release date
		"148",        // duration
		"4",          // logout
		"3",          // exit
	}, "\n") + "\n"

	c, out, _ := newTestConsole(t, input, nil)

	c.Run(context.Background())

	assert.Contains(t, out.String(), "Movie added: Inception")
	assert.Contains(t, out.String(), "Movie saved to database.")
}

func TestCustomerBooksTickets(t *testing.T) {
	st := entity.NewShowTime("Friday", "20:00")
	st.ID = 7
	movies := []*entity.Movie{{
		ID:        1,
		Title:     "Inception",
		Language:  "English",
		Genre:     "Sci-Fi",
		Format:    "2D",
		ShowTimes: []*entity.ShowTime{st},
	}}

	input := strings.Join([]string{
		"2",                 // user menu
		"4",                 // book tickets
		"199012345678",      // NIC
		"Nimal Perera",      // name
		"nimal@example.com", // email
		"Inception",         // movie title
		"1",                 // showtime
		"3",                 // VIP
		"2",                 // seat count
		"5",                 // logout
		"3",                 // exit
	}, "\n") + "\n"

	c, out, bookings := newTestConsole(t, input, movies)

	c.Run(context.Background())

	assert.Contains(t, out.String(), "Seats reserved successfully.")
	assert.Contains(t, out.String(), "*** Booking Summary ***")
	assert.Contains(t, out.String(), "Total Price: Rs.2000.00")

	require.Len(t, bookings.saved, 1)
	booking := bookings.saved[0]
	assert.Equal(t, 80, booking.Seats[0].Index)
	assert.Equal(t, 81, booking.Seats[1].Index)
}

func TestReturningCustomerSkipsDetailPrompts(t *testing.T) {
	st := entity.NewShowTime("Friday", "20:00")
	st.ID = 7
	movies := []*entity.Movie{{ID: 1, Title: "Inception", ShowTimes: []*entity.ShowTime{st}}}

	input := strings.Join([]string{
		"2",            // user menu
		"4",            // book tickets
		"199012345678", // NIC of a known customer; no name/email prompts
		"Inception",    // movie title
		"1",            // showtime
		"1",            // STANDARD
		"1",            // seat count
		"5",            // logout
		"3",            // exit
	}, "\n") + "\n"

	known := &entity.User{ID: 4, Name: "Nimal Perera", NIC: "199012345678", Email: "nimal@example.com"}
	c, out, bookings := newTestConsole(t, input, movies, known)

	c.Run(context.Background())

	assert.Contains(t, out.String(), "Welcome back, Nimal Perera (nimal@example.com).")
	assert.Contains(t, out.String(), "Seats reserved successfully.")

	require.Len(t, bookings.saved, 1)
	booking := bookings.saved[0]
	assert.Equal(t, "Nimal Perera", booking.User.Name)
	assert.Equal(t, "nimal@example.com", booking.User.Email)
}

func TestCustomerBookingInsufficientSeats(t *testing.T) {
	st := entity.NewShowTime("Friday", "20:00")
	st.ID = 7
	movies := []*entity.Movie{{ID: 1, Title: "Inception", ShowTimes: []*entity.ShowTime{st}}}

	input := strings.Join([]string{
		"2", "4",
		"199012345678", "Nimal Perera", "nimal@example.com",
		"Inception", "1",
		"3",  // VIP
		"21", // more than the 20 VIP seats
		"5", "3",
	}, "\n") + "\n"

	c, out, bookings := newTestConsole(t, input, movies)

	c.Run(context.Background())

	assert.Contains(t, out.String(), "Not enough seats available.")
	assert.Empty(t, bookings.saved)
	assert.Equal(t, entity.VIPSeatCount, st.AvailableByType(entity.SeatVIP))
}
