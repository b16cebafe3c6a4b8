package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"shopadmin/internal/domain"
	tokenrepo "shopadmin/internal/repository/token"
	"shopadmin/internal/repository/user"

	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is how long a login session stays valid.
const TokenTTL = 48 * time.Hour

// ErrBadCredentials covers both unknown usernames and wrong passwords
// so login failures are indistinguishable to the caller.
var ErrBadCredentials = errors.New("invalid username or password")

type Service struct {
	users  user.Repository
	tokens *tokenManager
	logger *log.Logger
}

func New(users user.Repository, tokens tokenrepo.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		users:  users,
		tokens: newTokenManager(tokens, TokenTTL),
		logger: logger,
	}
}

// Login verifies the password and issues a bearer token.
func (s *Service) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", fmt.Errorf("%w: username and password required", domain.ErrInvalid)
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrBadCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrBadCredentials
	}

	token, err := s.tokens.Issue(ctx, u.ID)
	if err != nil {
		return nil, "", err
	}
	s.logger.Printf("auth: login username=%s", u.Username)
	return u, token, nil
}

// LookupByToken resolves a bearer token to its user, dropping expired
// tokens on the way.
func (s *Service) LookupByToken(ctx context.Context, token string) (*domain.User, error) {
	meta, ok := s.tokens.Validate(ctx, token)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s.users.GetByID(ctx, meta.UserID)
}

func (s *Service) Logout(ctx context.Context, token string) error {
	err := s.tokens.Revoke(ctx, token)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}
