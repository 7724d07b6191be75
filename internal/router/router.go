package router

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"railbook/internal/config"
	"railbook/internal/errors"
	"railbook/internal/handler"
	"railbook/internal/session"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	dashboardHandler *handler.DashboardHandler,
	bookingHandler *handler.BookingHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.HTTPErrorHandler = errorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// Public routes
	e.GET("/", authHandler.LoginPage)
	e.POST("/", authHandler.Login)
	e.GET("/register", authHandler.RegisterPage)
	e.POST("/register", authHandler.Register)
	e.GET("/logout", authHandler.Logout)

	// Secured routes: the session cookie is a signed JWT, so the cookie
	// guard validates it and redirects anonymous visitors to the login page.
	secured := e.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.SessionSecret),
		TokenLookup: "cookie:" + session.CookieName,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(session.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			session.Flash(c, "Please log in first.")
			return c.Redirect(http.StatusSeeOther, "/")
		},
	}))

	secured.GET("/dashboard", dashboardHandler.Dashboard)
	secured.GET("/train/:id/seats", bookingHandler.SeatMap)
	secured.POST("/confirm", bookingHandler.Confirm)
	secured.POST("/book", bookingHandler.Book)
}

// errorHandler renders any error that escapes a handler without leaking
// internal detail.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	httpErr := errors.MapErrorToHTTP(err)
	if echoErr, ok := err.(*echo.HTTPError); ok {
		httpErr = errors.NewHTTPError(echoErr.Code, http.StatusText(echoErr.Code), "HTTP_ERROR")
	}
	if httpErr.Code == "INTERNAL_ERROR" {
		slog.Error("unhandled request error", "path", c.Request().URL.Path, "error", err)
	}

	if err := c.String(httpErr.StatusCode, httpErr.Message); err != nil {
		slog.Error("error response failed", "error", err)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
