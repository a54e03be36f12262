package httpserver

import (
	"net/http"

	"getmovies/errs"
	"getmovies/pkg/sentry"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterActorRoutes(guard echo.MiddlewareFunc) {
	s.Router.GET("/actors", s.handleListActors, guard)
}

// handleListActors godoc
// @Summary List Actors
// @Description Get all actors with their store-assigned ids
// @Tags actors
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /actors [get]
func (s *Server) handleListActors(c echo.Context) error {
	actors, err := s.ActorService.ListActors(c.Request().Context())
	if err != nil {
		sentry.WithContext(c).Error(err)
		return errs.Errorf(errs.EINTERNAL, "Failed to get actors")
	}

	return c.JSON(http.StatusOK, actors)
}
