package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"farmventure-api/internal/core/domain"
	"farmventure-api/internal/testutil"
)

func TestUserService_Signup(t *testing.T) {
	repo := new(testutil.MockUserRepo)
	tokens := new(testutil.MockTokenIssuer)
	svc := NewUserService(repo, tokens)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "alice" && u.Role == domain.RoleCustomer && u.PasswordHash != ""
	})).Return(nil)
	tokens.On("Issue", mock.AnythingOfType("*domain.User")).Return("signed-token", nil)

	user, token, err := svc.Signup(context.Background(), "alice", "alice@farm.test", "hunter2hunter2")
	assert.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, domain.RoleCustomer, user.Role)
	repo.AssertExpectations(t)
}

func TestUserService_Signup_UsernameTaken(t *testing.T) {
	repo := new(testutil.MockUserRepo)
	tokens := new(testutil.MockTokenIssuer)
	svc := NewUserService(repo, tokens)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(domain.ErrUsernameTaken)

	_, _, err := svc.Signup(context.Background(), "alice", "alice@farm.test", "hunter2hunter2")
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	tokens.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestUserService_Login(t *testing.T) {
	repo := new(testutil.MockUserRepo)
	tokens := new(testutil.MockTokenIssuer)
	svc := NewUserService(repo, tokens)

	stored := &domain.User{ID: 3, Username: "alice", Role: domain.RoleCustomer}
	assert.NoError(t, stored.SetPassword("hunter2hunter2"))

	repo.On("GetByUsername", mock.Anything, "alice").Return(stored, nil)
	tokens.On("Issue", stored).Return("signed-token", nil)

	user, token, err := svc.Login(context.Background(), "alice", "hunter2hunter2")
	assert.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, int64(3), user.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	repo := new(testutil.MockUserRepo)
	tokens := new(testutil.MockTokenIssuer)
	svc := NewUserService(repo, tokens)

	stored := &domain.User{ID: 3, Username: "alice"}
	assert.NoError(t, stored.SetPassword("hunter2hunter2"))
	repo.On("GetByUsername", mock.Anything, "alice").Return(stored, nil)

	_, _, err := svc.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	tokens.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestUserService_Login_UnknownUserMasked(t *testing.T) {
	repo := new(testutil.MockUserRepo)
	tokens := new(testutil.MockTokenIssuer)
	svc := NewUserService(repo, tokens)

	repo.On("GetByUsername", mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	_, _, err := svc.Login(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
