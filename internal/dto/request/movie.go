package request

// AddMovieRequest carries the admin's add-movie form input.
type AddMovieRequest struct {
	Title       string  `validate:"required"`
	Language    string  `validate:"required"`
	Genre       string  `validate:"required"`
	Format      string  `validate:"required,oneof=2D 3D"`
	Rating      float64 `validate:"gte=0,lte=10"`
	ReleaseDate string  `validate:"required,datetime=2006-01-02"`
	Duration    int     `validate:"required,min=1"`
}

// AddShowTimeRequest schedules a new screening for an existing movie,
// addressed by title.
type AddShowTimeRequest struct {
	Title string `validate:"required"`
	Day   string `validate:"required"`
	Time  string `validate:"required"`
}
