package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gifthub/gifthub/internal/events"
	"github.com/gifthub/gifthub/internal/logging"
	"github.com/gifthub/gifthub/internal/service"
	"github.com/gifthub/gifthub/internal/session"
)

type AuthHandler struct {
	Auth     *service.AuthService
	Tokens   *service.TokenService
	Sessions session.Store
	Producer *events.Producer
}

func CreateCookie(name, value, path string, expTime time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Expires:  expTime,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHandler) publish(c echo.Context, key string, event map[string]interface{}) {
	if h.Producer == nil {
		return
	}
	if err := h.Producer.PublishEvent(c.Request().Context(), "user_events", key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_login")

	var req struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if cookie, err := c.Cookie(session.CookieName); err == nil {
		if _, err := h.Sessions.Get(ctx, cookie.Value); err == nil {
			l.Warn("login_failed", "status", 400, "reason", "already_logged_in")
			return echo.NewHTTPError(http.StatusBadRequest, service.ErrAlreadyLoggedIn.Error())
		}
	}

	user, err := h.Auth.Authenticate(ctx, req.Login, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			l.Warn("login_failed", "status", 403, "reason", "bad_credentials")
			return echo.NewHTTPError(http.StatusForbidden, "authentication failed")
		}
		l.Error("login_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	token, err := h.Tokens.Issue(user)
	if err != nil {
		l.Error("login_error", "status", 500, "reason", "cannot issue token", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	sessionID, err := h.Sessions.Create(ctx, session.Session{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
	})
	if err != nil {
		l.Error("login_error", "status", 500, "reason", "cannot create session", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	c.SetCookie(CreateCookie(session.CookieName, sessionID, "/", time.Now().Add(session.TTL)))

	h.publish(c, fmt.Sprint(user.ID), map[string]interface{}{
		"type":     "user_logged_in",
		"userID":   user.ID,
		"login":    user.Login,
		"username": user.Username,
	})

	l.Info("login_success", "status", 200, "userID", user.ID)
	return c.JSON(http.StatusOK, echo.Map{
		"token":    token,
		"userId":   strconv.FormatUint(uint64(user.ID), 10),
		"username": user.Username,
	})
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_register")

	var req struct {
		Login    string `json:"login"`
		Password string `json:"password"`
		Username string `json:"username"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Login == "" || req.Password == "" {
		l.Warn("register_error", "status", 400, "reason", "empty_credentials")
		return echo.NewHTTPError(http.StatusBadRequest, "login and password are required")
	}

	user, err := h.Auth.Register(ctx, req.Login, req.Password, req.Username)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUser) {
			l.Warn("register_failed", "status", 400, "reason", "user_exists")
			return echo.NewHTTPError(http.StatusBadRequest, "user already exists with this login")
		}
		l.Error("register_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	// The mailer consumes this event and sends the verification email;
	// registration succeeds whether or not the publish does.
	h.publish(c, fmt.Sprint(user.ID), map[string]interface{}{
		"type":               "user_registered",
		"userID":             user.ID,
		"login":              user.Login,
		"username":           user.Username,
		"verification_token": user.VerificationToken,
	})

	l.Info("register_success", "status", 200, "userID", user.ID)
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_logout")

	if cookie, err := c.Cookie(session.CookieName); err == nil {
		if err := h.Sessions.Delete(ctx, cookie.Value); err != nil {
			l.Error("logout_error", "error", err)
		}
		c.SetCookie(CreateCookie(session.CookieName, "", "/", time.Now().Add(-1*time.Hour)))
	}

	// Always acknowledged, with or without a session.
	return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}
