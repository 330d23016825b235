package repository

import (
	"context"
	"fmt"

	"cinemahub/internal/data/entity"
	"cinemahub/pkg/database"

	"go.uber.org/zap"
)

type MovieRepository interface {
	// FindAll loads every movie with its showtimes, reconstructing seat
	// availability from committed booking history.
	FindAll(ctx context.Context) ([]*entity.Movie, error)

	// Create inserts the movie and cascade-inserts its showtimes in one
	// transaction, writing generated ids back onto the entities.
	Create(ctx context.Context, movie *entity.Movie) error

	Delete(ctx context.Context, id int64) error
	AddShowTime(ctx context.Context, movieID int64, showTime *entity.ShowTime) error
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `
		SELECT movie_id, title, language, genre, format, imdb_rating, release_date, duration
		FROM movies
		ORDER BY movie_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to query movies", zap.Error(err))
		return nil, fmt.Errorf("query movies: %w", err)
	}

	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Language,
			&movie.Genre,
			&movie.Format,
			&movie.Rating,
			&movie.ReleaseDate,
			&movie.Duration,
		)
		if err != nil {
			rows.Close()
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	for _, movie := range movies {
		if err := r.loadShowTimes(ctx, movie); err != nil {
			return nil, err
		}
	}

	return movies, nil
}

func (r *movieRepository) loadShowTimes(ctx context.Context, movie *entity.Movie) error {
	query := `
		SELECT showtime_id, day, show_time
		FROM showtimes
		WHERE movie_id = $1
		ORDER BY showtime_id
	`

	rows, err := r.db.Query(ctx, query, movie.ID)
	if err != nil {
		r.log.Error("Failed to query showtimes",
			zap.Error(err),
			zap.Int64("movie_id", movie.ID),
		)
		return fmt.Errorf("query showtimes for movie %d: %w", movie.ID, err)
	}

	movie.ShowTimes = nil
	for rows.Next() {
		var id int64
		var day, showTime string
		if err := rows.Scan(&id, &day, &showTime); err != nil {
			rows.Close()
			r.log.Error("Failed to scan showtime row", zap.Error(err))
			return fmt.Errorf("scan showtime row: %w", err)
		}

		st := entity.NewShowTime(day, showTime)
		st.ID = id
		movie.ShowTimes = append(movie.ShowTimes, st)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate showtime rows: %w", err)
	}

	for _, st := range movie.ShowTimes {
		if err := r.markBookedSeats(ctx, st); err != nil {
			return err
		}
	}

	return nil
}

// markBookedSeats flags seats referenced by committed bookings as taken.
// Availability is not persisted directly; it is derived from booking
// history every time the showtime is loaded.
func (r *movieRepository) markBookedSeats(ctx context.Context, showTime *entity.ShowTime) error {
	query := `
		SELECT bs.seat_index
		FROM booking_seats bs
		JOIN bookings b ON bs.booking_id = b.booking_id
		WHERE b.showtime_id = $1
	`

	rows, err := r.db.Query(ctx, query, showTime.ID)
	if err != nil {
		r.log.Error("Failed to query booked seats",
			zap.Error(err),
			zap.Int64("showtime_id", showTime.ID),
		)
		return fmt.Errorf("query booked seats for showtime %d: %w", showTime.ID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var seatIndex int
		if err := rows.Scan(&seatIndex); err != nil {
			r.log.Error("Failed to scan seat index row", zap.Error(err))
			return fmt.Errorf("scan seat index row: %w", err)
		}
		showTime.MarkBooked(seatIndex)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate seat index rows: %w", err)
	}

	return nil
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin movie transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertMovie := `
		INSERT INTO movies (title, language, genre, format, imdb_rating, release_date, duration)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING movie_id
	`

	err = tx.QueryRow(ctx, insertMovie,
		movie.Title,
		movie.Language,
		movie.Genre,
		movie.Format,
		movie.Rating,
		movie.ReleaseDate,
		movie.Duration,
	).Scan(&movie.ID)

	if err != nil {
		r.log.Error("Failed to insert movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("insert movie %q: %w", movie.Title, err)
	}

	insertShowTime := `
		INSERT INTO showtimes (movie_id, day, show_time)
		VALUES ($1, $2, $3)
		RETURNING showtime_id
	`

	for _, st := range movie.ShowTimes {
		if err := tx.QueryRow(ctx, insertShowTime, movie.ID, st.Day, st.Time).Scan(&st.ID); err != nil {
			r.log.Error("Failed to insert showtime",
				zap.Error(err),
				zap.Int64("movie_id", movie.ID),
				zap.String("day", st.Day),
			)
			return fmt.Errorf("insert showtime for movie %d: %w", movie.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit movie transaction: %w", err)
	}

	r.log.Info("Movie saved",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
		zap.Int("showtimes", len(movie.ShowTimes)),
	)

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM movies WHERE movie_id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return fmt.Errorf("delete movie %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}

	r.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}

func (r *movieRepository) AddShowTime(ctx context.Context, movieID int64, showTime *entity.ShowTime) error {
	query := `
		INSERT INTO showtimes (movie_id, day, show_time)
		VALUES ($1, $2, $3)
		RETURNING showtime_id
	`

	err := r.db.QueryRow(ctx, query, movieID, showTime.Day, showTime.Time).Scan(&showTime.ID)
	if err != nil {
		r.log.Error("Failed to add showtime",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
			zap.String("day", showTime.Day),
			zap.String("time", showTime.Time),
		)
		return fmt.Errorf("add showtime for movie %d: %w", movieID, err)
	}

	r.log.Info("Showtime added",
		zap.Int64("showtime_id", showTime.ID),
		zap.Int64("movie_id", movieID),
	)

	return nil
}
