package console

import (
	"context"
	"errors"
	"fmt"

	"cinemahub/internal/dto/request"
	"cinemahub/internal/usecase"
	"cinemahub/pkg/utils"

	"go.uber.org/zap"
)

func (c *Console) adminLogin(ctx context.Context) {
	username := c.prompt.Line("\nEnter admin username: ")
	password := c.prompt.Line("Enter admin password: ")

	if username != c.admin.Username || !utils.VerifyPassword(c.admin.Password, password) {
		fmt.Fprintln(c.out, "Invalid admin credentials.")
		c.log.Warn("Admin login rejected", zap.String("username", username))
		return
	}

	c.adminMenu(ctx)
}

func (c *Console) adminMenu(ctx context.Context) {
	for !c.prompt.Exhausted() {
		fmt.Fprintln(c.out, "\nAdmin Menu")
		fmt.Fprintln(c.out, "1. Add Movie")
		fmt.Fprintln(c.out, "2. Remove Movie")
		fmt.Fprintln(c.out, "3. Add Showtime")
		fmt.Fprintln(c.out, "4. Logout")

		switch c.prompt.Int("Select an option: ") {
		case 1:
			c.addMovie(ctx)
		case 2:
			c.removeMovie(ctx)
		case 3:
			c.addShowTime(ctx)
		case 4:
			return
		default:
			if !c.prompt.Exhausted() {
				fmt.Fprintln(c.out, "Invalid option. Please try again.")
			}
		}
	}
}

func (c *Console) addMovie(ctx context.Context) {
	req := &request.AddMovieRequest{
		Title:       c.prompt.Line("Enter movie title: "),
		Language:    c.prompt.Line("Enter movie language: "),
		Genre:       c.prompt.Line("Enter movie genre: "),
		Format:      c.prompt.Line("Enter movie format (2D/3D): "),
		Rating:      c.prompt.Float("Enter IMDB rating: "),
		ReleaseDate: c.prompt.Line("Enter release date (YYYY-MM-DD): "),
		Duration:    c.prompt.Int("Enter duration (in minutes): "),
	}

	movie, err := c.service.Movie.AddMovie(ctx, req)
	if err != nil {
		fmt.Fprintf(c.out, "Failed to add movie: %v\n", err)
		return
	}

	fmt.Fprintf(c.out, "Movie added: %s\n", movie.Title)
	fmt.Fprintln(c.out, "Movie saved to database.")
}

func (c *Console) removeMovie(ctx context.Context) {
	title := c.prompt.Line("Enter the title of the movie to remove: ")

	err := c.service.Movie.RemoveMovie(ctx, title)
	switch {
	case errors.Is(err, usecase.ErrMovieNotFound):
		fmt.Fprintln(c.out, "Movie not found.")
	case err != nil:
		fmt.Fprintf(c.out, "Failed to remove movie: %v\n", err)
	default:
		fmt.Fprintf(c.out, "Movie removed: %s\n", title)
	}
}

func (c *Console) addShowTime(ctx context.Context) {
	req := &request.AddShowTimeRequest{
		Title: c.prompt.Line("Enter the title of the movie to update: "),
	}

	if c.service.Movie.Search(req.Title) == nil {
		fmt.Fprintln(c.out, "Movie not found.")
		return
	}

	req.Day = c.prompt.Line("Enter showtime day: ")
	req.Time = c.prompt.Line("Enter showtime time: ")

	if _, err := c.service.Movie.AddShowTime(ctx, req); err != nil {
		fmt.Fprintf(c.out, "Failed to add showtime: %v\n", err)
		return
	}

	fmt.Fprintf(c.out, "Showtime added for movie: %s\n", req.Title)
}
