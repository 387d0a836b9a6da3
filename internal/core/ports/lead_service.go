package ports

import (
	"context"

	"github.com/leadflow/crm-api/internal/core/domain"
)

// CreateLeadInput carries the employer-supplied fields for a new lead.
// Status is optional and defaults to PENDING.
type CreateLeadInput struct {
	ContactName  string
	ContactEmail string
	CompanyName  string
	Status       domain.LeadStatus
	ManagerID    string
}

// EmployerLeadPatch is the employer's full-edit patch. Empty fields are
// treated as omitted; Notes, when non-nil, replaces the whole sequence.
type EmployerLeadPatch struct {
	ContactName  string
	ContactEmail string
	CompanyName  string
	Status       domain.LeadStatus
	ManagerID    string
	Notes        []string
}

// ManagerLeadPatch is the owning manager's restricted patch: replace
// status and/or append a single note.
type ManagerLeadPatch struct {
	Status domain.LeadStatus
	Note   string
}

// LeadService owns the lead lifecycle: assignment, status changes, notes
// and the employer dashboard aggregates.
type LeadService interface {
	ListForEmployer(ctx context.Context, filter LeadFilter) ([]domain.Lead, error)
	ListForManager(ctx context.Context, managerID string) ([]domain.Lead, error)
	Create(ctx context.Context, input CreateLeadInput) (*domain.Lead, error)
	UpdateAsEmployer(ctx context.Context, leadID string, patch EmployerLeadPatch) (*domain.Lead, error)
	UpdateAsManager(ctx context.Context, leadID, managerID string, patch ManagerLeadPatch) (*domain.Lead, error)
	Delete(ctx context.Context, leadID string) error
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
