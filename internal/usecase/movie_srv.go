package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"cinemahub/internal/data/entity"
	"cinemahub/internal/data/repository"
	"cinemahub/internal/dto/request"
	"cinemahub/pkg/utils"

	"go.uber.org/zap"
)

// MovieService fronts the movie catalogue. Reads are served from an
// in-memory cache populated from the store; mutations write through to
// the store and patch the cache locally.
type MovieService interface {
	// Refresh reloads the cache from the store, including showtime seat
	// availability reconstructed from booking history.
	Refresh(ctx context.Context) error

	Movies() []*entity.Movie
	Search(title string) *entity.Movie

	AddMovie(ctx context.Context, req *request.AddMovieRequest) (*entity.Movie, error)
	RemoveMovie(ctx context.Context, title string) error
	AddShowTime(ctx context.Context, req *request.AddShowTimeRequest) (*entity.ShowTime, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger

	mu     sync.RWMutex
	movies []*entity.Movie
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) Refresh(ctx context.Context) error {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to refresh movie cache", zap.Error(err))
		return fmt.Errorf("refresh movie cache: %w", err)
	}

	s.mu.Lock()
	s.movies = movies
	s.mu.Unlock()

	s.log.Info("Movie cache refreshed", zap.Int("count", len(movies)))
	return nil
}

func (s *movieService) Movies() []*entity.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Movie, len(s.movies))
	copy(out, s.movies)
	return out
}

func (s *movieService) Search(title string) *entity.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, movie := range s.movies {
		if strings.EqualFold(movie.Title, title) {
			return movie
		}
	}
	return nil
}

func (s *movieService) AddMovie(ctx context.Context, req *request.AddMovieRequest) (*entity.Movie, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movie := &entity.Movie{
		Title:       req.Title,
		Language:    req.Language,
		Genre:       req.Genre,
		Format:      req.Format,
		Rating:      req.Rating,
		ReleaseDate: req.ReleaseDate,
		Duration:    req.Duration,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("add movie: %w", err)
	}

	s.mu.Lock()
	s.movies = append(s.movies, movie)
	s.mu.Unlock()

	s.log.Info("Movie added",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	return movie, nil
}

func (s *movieService) RemoveMovie(ctx context.Context, title string) error {
	movie := s.Search(title)
	if movie == nil {
		return fmt.Errorf("%q: %w", title, ErrMovieNotFound)
	}

	if err := s.repo.Movie.Delete(ctx, movie.ID); err != nil {
		return fmt.Errorf("remove movie: %w", err)
	}

	s.mu.Lock()
	for i, m := range s.movies {
		if m == movie {
			s.movies = append(s.movies[:i], s.movies[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.log.Info("Movie removed",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	return nil
}

func (s *movieService) AddShowTime(ctx context.Context, req *request.AddShowTimeRequest) (*entity.ShowTime, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add showtime validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movie := s.Search(req.Title)
	if movie == nil {
		return nil, fmt.Errorf("%q: %w", req.Title, ErrMovieNotFound)
	}

	showTime := entity.NewShowTime(req.Day, req.Time)
	if err := s.repo.Movie.AddShowTime(ctx, movie.ID, showTime); err != nil {
		return nil, fmt.Errorf("add showtime: %w", err)
	}

	s.mu.Lock()
	movie.ShowTimes = append(movie.ShowTimes, showTime)
	s.mu.Unlock()

	s.log.Info("Showtime added",
		zap.Int64("showtime_id", showTime.ID),
		zap.String("title", movie.Title),
		zap.String("day", showTime.Day),
		zap.String("time", showTime.Time),
	)

	return showTime, nil
}
