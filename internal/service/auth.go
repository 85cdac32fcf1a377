package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gifthub/gifthub/internal/hash"
	"github.com/gifthub/gifthub/internal/logging"
	"github.com/gifthub/gifthub/internal/models"
)

var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrDuplicateUser        = errors.New("user already exists")
	ErrAlreadyLoggedIn      = errors.New("already logged in")
)

type AuthService struct {
	DB *gorm.DB
}

// Authenticate verifies a login/password pair. An unknown login and a
// wrong password return the same error, so callers cannot tell which
// part failed.
func (s *AuthService) Authenticate(ctx context.Context, login, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).Where("login = ?", login).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthenticationFailed
		}
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, ErrAuthenticationFailed
	}

	return &user, nil
}

func (s *AuthService) Register(ctx context.Context, login, password, username string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	var existing models.User
	err := s.DB.WithContext(ctx).Where("login = ?", login).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateUser
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := models.User{
		Login:             login,
		PasswordHash:      pwHash,
		Username:          username,
		VerificationToken: uuid.NewString(),
	}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		// The login column carries a unique constraint, so a racing
		// insert between the check and here still surfaces as a
		// duplicate, not an internal error.
		if isUniqueViolation(err) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}

	return &user, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
