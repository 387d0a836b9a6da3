package ports

import (
	"context"

	"github.com/leadflow/crm-api/internal/core/domain"
)

// AuthService covers the public registration and login flows plus the
// authenticated profile lookup.
type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
}
