package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/leadflow/crm-api/internal/api/metrics"
	"github.com/leadflow/crm-api/internal/core/domain"
	"github.com/leadflow/crm-api/internal/core/ports"
)

// ManagerService implements employer-only provisioning of manager
// accounts.
type ManagerService struct {
	users  ports.UserRepository
	leads  ports.LeadRepository
	logger zerolog.Logger
}

func NewManagerService(users ports.UserRepository, leads ports.LeadRepository, logger zerolog.Logger) *ManagerService {
	return &ManagerService{users: users, leads: leads, logger: logger}
}

// List returns all manager accounts.
func (s *ManagerService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.ListByRole(ctx, domain.RoleManager)
}

// Create provisions a manager account. The role is always manager, no
// matter what the request carried.
func (s *ManagerService) Create(ctx context.Context, name, email, password string) (*domain.User, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	manager := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleManager,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, manager)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(domain.RoleManager).Inc()
	s.logger.Info().Str("manager_id", created.ID).Msg("manager provisioned")
	return created, nil
}

// Update applies a partial edit of name/email/password. The stored hash
// is replaced only when the patch carries a new plaintext password;
// otherwise it is never touched, so a digest is never hashed twice.
func (s *ManagerService) Update(ctx context.Context, managerID string, patch ports.ManagerPatch) (*domain.User, error) {
	repoPatch := ports.UserPatch{
		Name:  patch.Name,
		Email: patch.Email,
	}
	if patch.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		repoPatch.PasswordHash = string(hash)
	}

	return s.users.Update(ctx, managerID, repoPatch)
}

// Delete removes a manager account, refusing while any lead still
// references it. The caller must reassign those leads first.
func (s *ManagerService) Delete(ctx context.Context, managerID string) error {
	if _, err := s.users.FindByID(ctx, managerID); err != nil {
		return err
	}

	assigned, err := s.leads.CountByManager(ctx, managerID)
	if err != nil {
		return err
	}
	if assigned > 0 {
		metrics.ManagerDeletionsBlockedTotal.Inc()
		return domain.ErrManagerHasLeads
	}

	if err := s.users.Delete(ctx, managerID); err != nil {
		return err
	}
	s.logger.Info().Str("manager_id", managerID).Msg("manager deleted")
	return nil
}
