package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cinemahub/internal/data/entity"
	"cinemahub/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRows struct {
	rows [][]any
	idx  int
}

var _ pgx.Rows = (*fakeRows)(nil)

func (r *fakeRows) Next() bool {
	r.idx++
	return r.idx <= len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error {
	return scanInto(dest, r.rows[r.idx-1])
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

// fakeCatalogDB serves the three read queries FindAll issues: the movie
// list, the showtimes per movie, and the booked seat indexes per showtime.
type fakeCatalogDB struct {
	movies    [][]any
	showtimes map[int64][][]any
	booked    map[int64][][]any
	users     map[string][]any
}

var _ database.PgxIface = (*fakeCatalogDB)(nil)

func (f *fakeCatalogDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	switch {
	case strings.Contains(sql, "FROM movies"):
		return &fakeRows{rows: f.movies}, nil
	case strings.Contains(sql, "FROM showtimes"):
		return &fakeRows{rows: f.showtimes[args[0].(int64)]}, nil
	case strings.Contains(sql, "FROM booking_seats"):
		return &fakeRows{rows: f.booked[args[0].(int64)]}, nil
	}
	return nil, errors.New("unexpected query: " + sql)
}

func (f *fakeCatalogDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	if strings.Contains(sql, "FROM users") {
		if vals, ok := f.users[args[0].(string)]; ok {
			return &fakeRow{vals: vals}
		}
		return &fakeRow{err: pgx.ErrNoRows}
	}
	return &fakeRow{err: errors.New("unexpected query row: " + sql)}
}

func (f *fakeCatalogDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("unexpected exec")
}

func (f *fakeCatalogDB) Begin(context.Context) (pgx.Tx, error) {
	return nil, errors.New("unexpected begin")
}

func (f *fakeCatalogDB) Ping(context.Context) error { return nil }
func (f *fakeCatalogDB) Close()                     {}

func TestMovieFindAllReconstructsAvailability(t *testing.T) {
	db := &fakeCatalogDB{
		movies: [][]any{
			{int64(1), "Inception", "English", "Sci-Fi", "2D", 8.8, "2010-07-16", 148},
			{int64(2), "Heat", "English", "Crime", "2D", 8.3, "1995-12-15", 170},
		},
		showtimes: map[int64][][]any{
			1: {{int64(7), "Friday", "20:00"}},
		},
		booked: map[int64][][]any{
			7: {{0}, {80}, {81}, {82}, {150}}, // 150 is out of range and ignored
		},
	}

	movies, err := NewMovieRepository(db, zap.NewNop()).FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 2)

	assert.Equal(t, "Inception", movies[0].Title)
	assert.Equal(t, 8.8, movies[0].Rating)
	require.Len(t, movies[0].ShowTimes, 1)
	assert.Empty(t, movies[1].ShowTimes)

	st := movies[0].ShowTimes[0]
	assert.Equal(t, int64(7), st.ID)
	assert.Equal(t, "Day: Friday, Time: 20:00", st.Info())

	// Availability is derived from booking history: seat 0 and the first
	// three VIP seats are taken, everything else is free again.
	assert.False(t, st.Seats[0].Available)
	assert.True(t, st.Seats[1].Available)
	assert.False(t, st.Seats[80].Available)
	assert.False(t, st.Seats[82].Available)
	assert.Equal(t, entity.StandardSeatCount-1, st.AvailableByType(entity.SeatStandard))
	assert.Equal(t, entity.PremiumSeatCount, st.AvailableByType(entity.SeatPremium))
	assert.Equal(t, entity.VIPSeatCount-3, st.AvailableByType(entity.SeatVIP))
}

func TestMovieFindAllEmptyCatalog(t *testing.T) {
	movies, err := NewMovieRepository(&fakeCatalogDB{}, zap.NewNop()).FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestUserFindByNIC(t *testing.T) {
	db := &fakeCatalogDB{
		users: map[string][]any{
			"199012345678": {int64(4), "199012345678", "Nimal Perera", "nimal@example.com"},
		},
	}
	repo := NewUserRepository(db, zap.NewNop())

	user, err := repo.FindByNIC(context.Background(), "199012345678")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(4), user.ID)
	assert.Equal(t, "Nimal Perera", user.Name)
	assert.Equal(t, "nimal@example.com", user.Email)

	// Unknown NIC is not an error, just absence.
	user, err = repo.FindByNIC(context.Background(), "000000000000")
	require.NoError(t, err)
	assert.Nil(t, user)
}
