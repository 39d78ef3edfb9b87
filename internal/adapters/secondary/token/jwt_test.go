package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"farmventure-api/internal/core/domain"
)

func TestJWTIssuer_RoundTrip(t *testing.T) {
	issuer := NewJWTIssuer("test-secret", time.Hour)
	user := &domain.User{ID: 42, Role: domain.RoleAdmin}

	signed, err := issuer.Issue(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)

	claims, err := issuer.Verify(signed)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestJWTIssuer_Verify_WrongSecret(t *testing.T) {
	issuer := NewJWTIssuer("test-secret", time.Hour)
	other := NewJWTIssuer("other-secret", time.Hour)

	signed, err := issuer.Issue(&domain.User{ID: 42, Role: domain.RoleCustomer})
	assert.NoError(t, err)

	_, err = other.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTIssuer_Verify_Expired(t *testing.T) {
	issuer := NewJWTIssuer("test-secret", -time.Minute)

	signed, err := issuer.Issue(&domain.User{ID: 42, Role: domain.RoleCustomer})
	assert.NoError(t, err)

	_, err = issuer.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTIssuer_Verify_Garbage(t *testing.T) {
	issuer := NewJWTIssuer("test-secret", time.Hour)

	_, err := issuer.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
