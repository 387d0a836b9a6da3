package ports

import (
	"context"

	"github.com/leadflow/crm-api/internal/core/domain"
)

// LeadFilter narrows a lead listing by exact match. Empty fields are
// ignored.
type LeadFilter struct {
	ManagerID string
	Status    domain.LeadStatus
}

// LeadPatch carries a partial update of a lead document. Zero-valued
// fields are left unchanged. AppendNote, when non-empty, is pushed onto
// the notes array atomically alongside the other changes; ReplaceNotes,
// when non-nil, overwrites the whole array (employer edit path only).
type LeadPatch struct {
	ContactName  string
	ContactEmail string
	CompanyName  string
	Status       domain.LeadStatus
	ManagerID    string
	ReplaceNotes []string
	AppendNote   string
}

// LeadRepository defines persistence for lead records.
type LeadRepository interface {
	Create(ctx context.Context, lead *domain.Lead) (*domain.Lead, error)
	FindByID(ctx context.Context, id string) (*domain.Lead, error)
	List(ctx context.Context, filter LeadFilter) ([]domain.Lead, error)
	Update(ctx context.Context, id string, patch LeadPatch) (*domain.Lead, error)
	Delete(ctx context.Context, id string) error
	CountByManager(ctx context.Context, managerID string) (int64, error)
	CountByStatus(ctx context.Context, statuses ...domain.LeadStatus) (int64, error)
}
