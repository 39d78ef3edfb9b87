package services

import (
	"context"
	"errors"
	"time"

	"farmventure-api/internal/core/domain"
	"farmventure-api/internal/core/ports/output"
)

type UserService struct {
	repo   ports.UserRepository
	tokens ports.TokenIssuer
}

func NewUserService(repo ports.UserRepository, tokens ports.TokenIssuer) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

// Signup registers a new customer account and returns a signed token.
func (s *UserService) Signup(ctx context.Context, username, email, password string) (*domain.User, string, error) {
	user := &domain.User{
		Username:  username,
		Email:     email,
		Role:      domain.RoleCustomer,
		CreatedAt: time.Now().UTC(),
	}
	if err := user.SetPassword(password); err != nil {
		return nil, "", err
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *UserService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !user.VerifyPassword(password) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}
