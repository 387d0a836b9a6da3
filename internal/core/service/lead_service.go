package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/leadflow/crm-api/internal/api/metrics"
	"github.com/leadflow/crm-api/internal/core/domain"
	"github.com/leadflow/crm-api/internal/core/ports"
)

// LeadService owns the lead lifecycle: creation with manager assignment,
// employer full edits, manager-scoped status/note updates and the
// dashboard aggregates.
type LeadService struct {
	leads  ports.LeadRepository
	users  ports.UserRepository
	stats  ports.StatsCache
	logger zerolog.Logger
}

// NewLeadService builds a LeadService. stats may be nil, in which case
// dashboard aggregates are computed on every call.
func NewLeadService(leads ports.LeadRepository, users ports.UserRepository, stats ports.StatsCache, logger zerolog.Logger) *LeadService {
	return &LeadService{leads: leads, users: users, stats: stats, logger: logger}
}

// ListForEmployer returns all leads matching the filter, with each
// lead's manager identity joined in. Leads whose manager was deleted
// keep a bare manager id and a nil Manager.
func (s *LeadService) ListForEmployer(ctx context.Context, filter ports.LeadFilter) ([]domain.Lead, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	leads, err := s.leads.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	managers, err := s.users.ListByRole(ctx, domain.RoleManager)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.ManagerRef, len(managers))
	for i := range managers {
		m := &managers[i]
		byID[m.ID] = &domain.ManagerRef{ID: m.ID, Name: m.Name, Email: m.Email}
	}

	for i := range leads {
		leads[i].Manager = byID[leads[i].ManagerID]
	}
	return leads, nil
}

// ListForManager returns only the caller's own leads.
func (s *LeadService) ListForManager(ctx context.Context, managerID string) ([]domain.Lead, error) {
	return s.leads.List(ctx, ports.LeadFilter{ManagerID: managerID})
}

// Create inserts a new lead after confirming the assignee exists and is
// a manager. Status defaults to PENDING.
func (s *LeadService) Create(ctx context.Context, input ports.CreateLeadInput) (*domain.Lead, error) {
	if input.Status == "" {
		input.Status = domain.StatusPending
	}
	if !input.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	if err := s.requireManager(ctx, input.ManagerID); err != nil {
		return nil, err
	}

	lead := &domain.Lead{
		ContactName:  input.ContactName,
		ContactEmail: input.ContactEmail,
		CompanyName:  input.CompanyName,
		Status:       input.Status,
		ManagerID:    input.ManagerID,
		Notes:        []string{},
	}

	created, err := s.leads.Create(ctx, lead)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create lead")
		return nil, err
	}

	metrics.LeadsCreatedTotal.WithLabelValues(string(created.Status)).Inc()
	s.logger.Info().Str("lead_id", created.ID).Str("manager_id", created.ManagerID).Msg("lead created")
	return created, nil
}

// UpdateAsEmployer applies a full edit. Empty fields leave the stored
// value unchanged; a reassignment re-runs the manager check.
func (s *LeadService) UpdateAsEmployer(ctx context.Context, leadID string, patch ports.EmployerLeadPatch) (*domain.Lead, error) {
	if patch.Status != "" && !patch.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	if patch.ManagerID != "" {
		if err := s.requireManager(ctx, patch.ManagerID); err != nil {
			return nil, err
		}
	}

	updated, err := s.leads.Update(ctx, leadID, ports.LeadPatch{
		ContactName:  patch.ContactName,
		ContactEmail: patch.ContactEmail,
		CompanyName:  patch.CompanyName,
		Status:       patch.Status,
		ManagerID:    patch.ManagerID,
		ReplaceNotes: patch.Notes,
	})
	if err != nil {
		return nil, err
	}

	if patch.Status != "" {
		metrics.LeadStatusChangesTotal.WithLabelValues(string(patch.Status), domain.RoleEmployer).Inc()
	}
	return updated, nil
}

// UpdateAsManager lets the owning manager replace the status and/or
// append one note. Anyone else's lead yields ErrForbidden with the lead
// untouched.
func (s *LeadService) UpdateAsManager(ctx context.Context, leadID, managerID string, patch ports.ManagerLeadPatch) (*domain.Lead, error) {
	if patch.Status != "" && !patch.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	lead, err := s.leads.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead.ManagerID != managerID {
		return nil, domain.ErrForbidden
	}

	updated, err := s.leads.Update(ctx, leadID, ports.LeadPatch{
		Status:     patch.Status,
		AppendNote: patch.Note,
	})
	if err != nil {
		return nil, err
	}

	if patch.Status != "" {
		metrics.LeadStatusChangesTotal.WithLabelValues(string(patch.Status), domain.RoleManager).Inc()
	}
	return updated, nil
}

// Delete removes a lead unconditionally.
func (s *LeadService) Delete(ctx context.Context, leadID string) error {
	if err := s.leads.Delete(ctx, leadID); err != nil {
		return err
	}
	s.logger.Info().Str("lead_id", leadID).Msg("lead deleted")
	return nil
}

// DashboardStats returns the employer dashboard aggregates, served from
// the cache when fresh. Cache errors fall through to live counts.
func (s *LeadService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	if s.stats != nil {
		cached, err := s.stats.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("stats cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	inProgress, err := s.leads.CountByStatus(ctx, domain.StatusPending, domain.StatusInProgress)
	if err != nil {
		return nil, err
	}
	completed, err := s.leads.CountByStatus(ctx, domain.StatusCompleted)
	if err != nil {
		return nil, err
	}
	canceled, err := s.leads.CountByStatus(ctx, domain.StatusCanceled)
	if err != nil {
		return nil, err
	}

	stats := &domain.DashboardStats{
		InProgressCount: inProgress,
		CompletedCount:  completed,
		CanceledCount:   canceled,
	}

	if s.stats != nil {
		if err := s.stats.Set(ctx, stats); err != nil {
			s.logger.Warn().Err(err).Msg("stats cache write failed")
		}
	}
	return stats, nil
}

// requireManager resolves id to a live user with role=manager.
func (s *LeadService) requireManager(ctx context.Context, id string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidManager
		}
		return err
	}
	if user.Role != domain.RoleManager {
		return domain.ErrInvalidManager
	}
	return nil
}
