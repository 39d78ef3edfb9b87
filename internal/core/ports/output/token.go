package ports

import "farmventure-api/internal/core/domain"

type TokenClaims struct {
	UserID int64
	Role   domain.UserRole
}

// TokenIssuer signs and verifies bearer tokens for authenticated users.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
	Verify(token string) (*TokenClaims, error)
}
