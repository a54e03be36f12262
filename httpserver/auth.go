package httpserver

import (
	"errors"
	"net/http"
	"time"

	"getmovies/auth"
	"getmovies/errs"
	"getmovies/pkg/sentry"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterAuthRoutes() {
	s.Router.POST("/login", s.handleLogin)
	s.Router.POST("/logout", s.handleLogout)
}

// handleLogin godoc
// @Summary Login
// @Description Issue a session cookie for the account registered under the given email
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /login [post]
func (s *Server) handleLogin(c echo.Context) error {
	var req LoginRequest

	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EINVALID, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := s.AuthService.Login(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return errs.Errorf(errs.EUNAUTHORIZED, "Invalid credentials")
		}
		sentry.WithContext(c).Error(err)
		return errs.Errorf(errs.EINTERNAL, "Failed to log in")
	}

	c.SetCookie(s.sessionCookie(token, auth.SessionTTL))

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Logged in successfully",
	})
}

// handleLogout godoc
// @Summary Logout
// @Description Clear the session cookie. The token itself stays valid until it expires.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /logout [post]
func (s *Server) handleLogout(c echo.Context) error {
	c.SetCookie(s.sessionCookie("", -time.Hour))

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Logged out successfully",
	})
}

func (s *Server) sessionCookie(token string, ttl time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.SecureCookies,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(ttl),
		MaxAge:   int(ttl.Seconds()),
	}
	return cookie
}
