package ports

import (
	"context"

	"github.com/leadflow/crm-api/internal/core/domain"
)

// ManagerPatch carries a partial update of a manager account. Empty
// fields are treated as omitted; Password, when non-empty, is a new
// plaintext to be hashed before storage.
type ManagerPatch struct {
	Name     string
	Email    string
	Password string
}

// ManagerService covers employer-only provisioning of manager accounts.
type ManagerService interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, name, email, password string) (*domain.User, error)
	Update(ctx context.Context, managerID string, patch ManagerPatch) (*domain.User, error)
	Delete(ctx context.Context, managerID string) error
}
