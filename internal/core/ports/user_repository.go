package ports

import (
	"context"

	"github.com/leadflow/crm-api/internal/core/domain"
)

// UserPatch carries a partial update of a user record. Zero-valued fields
// are left unchanged; PasswordHash must already be hashed by the caller.
type UserPatch struct {
	Name         string
	Email        string
	PasswordHash string
}

// UserRepository defines persistence for user identity records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ListByRole(ctx context.Context, role string) ([]domain.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
