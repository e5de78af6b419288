package service

import (
	"context"
	"errors"
	"fmt"

	"hmps-api/internal/config"
	"hmps-api/internal/logger"
	"hmps-api/internal/model"
	"hmps-api/internal/store"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when no account matches, so unknown
// accounts and wrong passwords take the same time.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("hmps-api-unknown-account"), bcrypt.DefaultCost)

type AuthService struct{ st *store.Store }

func NewAuthService(st *store.Store) *AuthService { return &AuthService{st: st} }

// Login looks the account up by username or email and checks the password.
// Unknown accounts and wrong passwords both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, login, password string) (*model.User, error) {
	var users []model.User
	err := s.st.Select(ctx, &users,
		"SELECT user_id, username, email, password_hash FROM users WHERE username = ? OR email = ? LIMIT 1",
		login, login)
	if err != nil {
		return nil, wrap("find user", err)
	}
	if len(users) == 0 {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}
	u := users[0]
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}

// EnsureAdmin seeds one bcrypt-hashed account. It reports created=false when
// the username or email is already taken.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, email, password string) (created bool, err error) {
	if err := checkRequired(
		requiredField{"username", model.Text(username)},
		requiredField{"email", model.Text(email)},
		requiredField{"password", model.Text(password)},
	); err != nil {
		return false, err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	u := model.User{Username: username, Email: email, PasswordHash: string(hashed)}
	if err := s.st.Insert(ctx, &u); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return false, nil
		}
		return false, wrap("insert admin", err)
	}
	return true, nil
}

// Bootstrap seeds the configured admin account. A missing password skips the
// seed instead of falling back to a built-in credential.
func (s *AuthService) Bootstrap(ctx context.Context, cfg config.AdminConfig) error {
	if cfg.Password == "" {
		logger.Warn("admin.seed_skipped", "reason", "ADMIN_PASSWORD not set")
		return nil
	}
	created, err := s.EnsureAdmin(ctx, cfg.Username, cfg.Email, cfg.Password)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if created {
		logger.Info("admin.created", "username", cfg.Username)
	} else {
		logger.Info("admin.exists", "username", cfg.Username)
	}
	return nil
}
