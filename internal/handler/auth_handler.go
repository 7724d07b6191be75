package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"railbook/internal/errors"
	"railbook/internal/service"
	"railbook/internal/session"
)

// AuthHandler handles the login and registration pages.
type AuthHandler struct {
	authService service.AuthService
	sessions    *session.Manager
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// CredentialsForm is the login and registration form payload.
type CredentialsForm struct {
	Username string `form:"username" validate:"required,max=64"`
	Password string `form:"password" validate:"required"`
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", echo.Map{})
}

// Login checks the submitted credentials and opens a session.
// A failed attempt re-renders the login page.
func (h *AuthHandler) Login(c echo.Context) error {
	var form CredentialsForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "login.html", echo.Map{"Error": "Enter a username and password."})
	}
	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusBadRequest, "login.html", echo.Map{"Error": "Enter a username and password."})
	}

	user, err := h.authService.Authenticate(c.Request().Context(), form.Username, form.Password)
	if err != nil {
		if err == errors.ErrInvalidCredentials {
			return c.Render(http.StatusUnauthorized, "login.html", echo.Map{"Error": "Invalid username or password."})
		}
		return c.Render(http.StatusInternalServerError, "login.html", echo.Map{"Error": "Something went wrong, try again."})
	}

	if err := h.sessions.Issue(c, user.Username, ""); err != nil {
		return c.Render(http.StatusInternalServerError, "login.html", echo.Map{"Error": "Something went wrong, try again."})
	}
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// RegisterPage renders the registration form.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", echo.Map{})
}

// Register creates a new account. Duplicate usernames re-render the form
// with a conflict message; exactly one outcome occurs per attempt.
func (h *AuthHandler) Register(c echo.Context) error {
	var form CredentialsForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "register.html", echo.Map{"Error": "Enter both a username and a password."})
	}
	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusBadRequest, "register.html", echo.Map{"Error": "Enter both a username and a password."})
	}

	if _, err := h.authService.Register(c.Request().Context(), form.Username, form.Password); err != nil {
		if err == errors.ErrUserExists {
			return c.Render(http.StatusConflict, "register.html", echo.Map{"Error": "That username is already taken."})
		}
		return c.Render(http.StatusInternalServerError, "register.html", echo.Map{"Error": "Something went wrong, try again."})
	}

	return c.Render(http.StatusOK, "register.html", echo.Map{"Success": "Account created. You can log in now."})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Clear(c)
	session.Flash(c, "You have been logged out.")
	return c.Redirect(http.StatusSeeOther, "/")
}
