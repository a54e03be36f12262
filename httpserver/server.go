package httpserver

import (
	"context"
	"net/http"
	"strings"

	"getmovies/actor"
	"getmovies/auth"
	"getmovies/errs"
	"getmovies/movie"
	"getmovies/pkg/config"

	sentryecho "github.com/getsentry/sentry-go/echo"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	// Allowed origins for CORS
	AllowOrigins []string

	MovieService movie.Service

	ActorService actor.Service

	AuthService auth.Service

	// SecureCookies marks session cookies Secure; enabled in production.
	SecureCookies bool
}

func Default(cfg *config.Config) *Server {
	s := Server{
		Router:        echo.New(),
		Addr:          ":8080",
		AllowOrigins:  allowOrigins(cfg),
		SecureCookies: cfg.IsProduction(),
	}

	s.Router.HTTPErrorHandler = customHTTPErrorHandler
	s.Router.Validator = NewValidator()
	s.RegisterGlobalMiddlewares()

	guard := s.sessionGuard()
	s.RegisterMovieRoutes(guard)
	s.RegisterActorRoutes(guard)
	s.RegisterAuthRoutes()
	s.RegisterHealthRoutes()
	s.RegisterSwaggerRoutes()
	return &s
}

func allowOrigins(cfg *config.Config) []string {
	if strings.TrimSpace(cfg.AllowOrigins) == "" {
		return []string{"*"}
	}
	return strings.Split(cfg.AllowOrigins, ",")
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.Gzip())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	// CORS
	if len(s.AllowOrigins) > 0 {
		s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     s.AllowOrigins,
			AllowCredentials: true,
		}))
	}
}

// sessionGuard verifies the session token cookie before a guarded handler
// runs. The decoded identity lands in the echo context under "user"; every
// failure mode is answered with the same 401 so callers cannot probe which
// check failed.
func (s *Server) sessionGuard() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + auth.SessionCookie,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return s.AuthService.VerifySession(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errs.Errorf(errs.EUNAUTHORIZED, "Unauthorized")
		},
	})
}

// CurrentIdentity returns the identity decoded by the session guard. No
// handler consults it yet; it is the seam for per-account authorization.
func CurrentIdentity(c echo.Context) (auth.Identity, bool) {
	identity, ok := c.Get("user").(auth.Identity)
	return identity, ok
}

func (s *Server) Start() error {
	return s.Router.Start(s.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

// customHTTPErrorHandler maps application errors to appropriate HTTP status codes
func customHTTPErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := "Internal server error"

	// Check if it's an Echo HTTPError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		}
	} else {
		// Map application error codes to HTTP status codes
		switch errs.ErrorCode(err) {
		case errs.EINVALID:
			code = http.StatusBadRequest
			message = errs.ErrorMessage(err)
		case errs.ENOTFOUND:
			code = http.StatusNotFound
			message = errs.ErrorMessage(err)
		case errs.ECONFLICT:
			code = http.StatusConflict
			message = errs.ErrorMessage(err)
		case errs.EUNAUTHORIZED:
			code = http.StatusUnauthorized
			message = errs.ErrorMessage(err)
		case errs.ENOTIMPLEMENTED:
			code = http.StatusNotImplemented
			message = errs.ErrorMessage(err)
		case errs.EINTERNAL:
			code = http.StatusInternalServerError
			message = errs.ErrorMessage(err)
		}
	}

	// Don't write response if already committed
	if !c.Response().Committed {
		err = c.JSON(code, map[string]string{"error": message})
		if err != nil {
			c.Logger().Error(err)
		}
	}
}
