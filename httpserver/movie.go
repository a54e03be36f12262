package httpserver

import (
	"net/http"

	"getmovies/errs"
	"getmovies/pkg/sentry"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterMovieRoutes(guard echo.MiddlewareFunc) {
	s.Router.GET("/movies", s.handleListMovies, guard)
	s.Router.GET("/movies-sorted-by-rating", s.handleListMoviesByRating, guard)
	s.Router.GET("/movies-filtered-by-title", s.handleFilterMoviesByTitle)
	s.Router.POST("/movies", s.handleCreateMovie)
	s.Router.PUT("/movies/:id", s.handleUpdateMovie, guard)
	s.Router.DELETE("/movies/:id", s.handleDeleteMovie, guard)
}

// handleListMovies godoc
// @Summary List Movies
// @Description Get all movies with their store-assigned ids
// @Tags movies
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	movies, err := s.MovieService.ListMovies(c.Request().Context())
	if err != nil {
		sentry.WithContext(c).Error(err)
		return errs.Errorf(errs.EINTERNAL, "Failed to get movies")
	}

	return c.JSON(http.StatusOK, movies)
}

// handleListMoviesByRating godoc
// @Summary List Movies Sorted By Rating
// @Description Get all movies ordered by rating, highest first
// @Tags movies
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /movies-sorted-by-rating [get]
func (s *Server) handleListMoviesByRating(c echo.Context) error {
	movies, err := s.MovieService.ListMoviesByRating(c.Request().Context())
	if err != nil {
		sentry.WithContext(c).Error(err)
		return errs.Errorf(errs.EINTERNAL, "Failed to get movies sorted by rating")
	}

	return c.JSON(http.StatusOK, movies)
}

// handleFilterMoviesByTitle godoc
// @Summary Filter Movies By Title
// @Description Get movies whose title starts with the search term
// @Tags movies
// @Produce json
// @Param title query string false "Title prefix"
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /movies-filtered-by-title [get]
func (s *Server) handleFilterMoviesByTitle(c echo.Context) error {
	searchTerm := c.QueryParam("title")

	movies, err := s.MovieService.FilterMoviesByTitle(c.Request().Context(), searchTerm)
	if err != nil {
		sentry.WithContext(c).Error(err)
		return errs.Errorf(errs.EINTERNAL, "Failed to get movies with title: %s", searchTerm)
	}

	return c.JSON(http.StatusOK, movies)
}

// handleCreateMovie godoc
// @Summary Create Movie
// @Description Create a movie document from the request body as-is
// @Tags movies
// @Accept json
// @Produce json
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /movies [post]
func (s *Server) handleCreateMovie(c echo.Context) error {
	fields := map[string]interface{}{}
	if err := c.Bind(&fields); err != nil {
		return errs.Errorf(errs.EINVALID, "invalid request body")
	}

	if _, err := s.MovieService.AddMovie(c.Request().Context(), fields); err != nil {
		sentry.WithContext(c).Error(err)
		return errs.Errorf(errs.EINTERNAL, "Failed to create movie")
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message": "Movie created successfully",
	})
}

// handleUpdateMovie godoc
// @Summary Update Movie
// @Description Merge the request body into the movie document; omitted fields are preserved
// @Tags movies
// @Accept json
// @Produce json
// @Param id path string true "Movie id"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /movies/{id} [put]
func (s *Server) handleUpdateMovie(c echo.Context) error {
	movieID := c.Param("id")

	fields := map[string]interface{}{}
	if err := c.Bind(&fields); err != nil {
		return errs.Errorf(errs.EINVALID, "invalid request body")
	}

	if err := s.MovieService.UpdateMovie(c.Request().Context(), movieID, fields); err != nil {
		sentry.WithContext(c).Error(err)
		return errs.Errorf(errs.EINTERNAL, "Failed to update movie")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Movie updated successfully",
	})
}

// handleDeleteMovie godoc
// @Summary Delete Movie
// @Description Delete the movie document at id
// @Tags movies
// @Produce json
// @Param id path string true "Movie id"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /movies/{id} [delete]
func (s *Server) handleDeleteMovie(c echo.Context) error {
	movieID := c.Param("id")

	if err := s.MovieService.DeleteMovie(c.Request().Context(), movieID); err != nil {
		sentry.WithContext(c).Error(err)
		return errs.Errorf(errs.EINTERNAL, "Failed to delete movie")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Movie deleted successfully",
	})
}
