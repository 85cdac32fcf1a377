package session

import (
	"context"
	"errors"
	"time"
)

const (
	TTL = 24 * time.Hour

	// CookieName is the cookie carrying the session id on client requests.
	CookieName = "gifthub_session"
)

var ErrNotFound = errors.New("session not found")

// Session binds an issued token to the user it was issued for. It lives
// server-side, keyed by the id presented in the client's cookie.
type Session struct {
	Token    string `json:"token"`
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

type Store interface {
	Create(ctx context.Context, s Session) (string, error)
	Get(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
}
