package service

import (
	"context"
	"strconv"

	"github.com/leadflow/crm-api/internal/core/domain"
	"github.com/leadflow/crm-api/internal/core/ports"
)

// In-memory repository doubles used across the service tests. They mirror
// the storage semantics the services rely on: unique email, falsy-field
// patches, atomic note appends.

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = "u" + strconv.Itoa(r.nextID)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ListByRole(_ context.Context, role string) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, *cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, patch ports.UserPatch) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if patch.Name != "" {
		u.Name = patch.Name
	}
	if patch.Email != "" {
		u.Email = patch.Email
	}
	if patch.PasswordHash != "" {
		u.PasswordHash = patch.PasswordHash
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubLeadRepo struct {
	leads  map[string]*domain.Lead
	nextID int
}

func newStubLeadRepo() *stubLeadRepo {
	return &stubLeadRepo{leads: make(map[string]*domain.Lead)}
}

func cloneLead(l *domain.Lead) *domain.Lead {
	clone := *l
	clone.Notes = append([]string(nil), l.Notes...)
	return &clone
}

func (r *stubLeadRepo) Create(_ context.Context, lead *domain.Lead) (*domain.Lead, error) {
	r.nextID++
	created := cloneLead(lead)
	created.ID = "l" + strconv.Itoa(r.nextID)
	r.leads[created.ID] = cloneLead(created)
	return created, nil
}

func (r *stubLeadRepo) FindByID(_ context.Context, id string) (*domain.Lead, error) {
	l, ok := r.leads[id]
	if !ok {
		return nil, domain.ErrLeadNotFound
	}
	return cloneLead(l), nil
}

func (r *stubLeadRepo) List(_ context.Context, filter ports.LeadFilter) ([]domain.Lead, error) {
	leads := []domain.Lead{}
	for _, l := range r.leads {
		if filter.ManagerID != "" && l.ManagerID != filter.ManagerID {
			continue
		}
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		leads = append(leads, *cloneLead(l))
	}
	return leads, nil
}

func (r *stubLeadRepo) Update(_ context.Context, id string, patch ports.LeadPatch) (*domain.Lead, error) {
	l, ok := r.leads[id]
	if !ok {
		return nil, domain.ErrLeadNotFound
	}
	if patch.ContactName != "" {
		l.ContactName = patch.ContactName
	}
	if patch.ContactEmail != "" {
		l.ContactEmail = patch.ContactEmail
	}
	if patch.CompanyName != "" {
		l.CompanyName = patch.CompanyName
	}
	if patch.Status != "" {
		l.Status = patch.Status
	}
	if patch.ManagerID != "" {
		l.ManagerID = patch.ManagerID
	}
	if patch.ReplaceNotes != nil {
		l.Notes = append([]string(nil), patch.ReplaceNotes...)
	}
	if patch.AppendNote != "" {
		l.Notes = append(l.Notes, patch.AppendNote)
	}
	return cloneLead(l), nil
}

func (r *stubLeadRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.leads[id]; !ok {
		return domain.ErrLeadNotFound
	}
	delete(r.leads, id)
	return nil
}

func (r *stubLeadRepo) CountByManager(_ context.Context, managerID string) (int64, error) {
	var n int64
	for _, l := range r.leads {
		if l.ManagerID == managerID {
			n++
		}
	}
	return n, nil
}

func (r *stubLeadRepo) CountByStatus(_ context.Context, statuses ...domain.LeadStatus) (int64, error) {
	var n int64
	for _, l := range r.leads {
		for _, s := range statuses {
			if l.Status == s {
				n++
				break
			}
		}
	}
	return n, nil
}

type stubStatsCache struct {
	stats *domain.DashboardStats
	gets  int
	sets  int
}

func (c *stubStatsCache) Get(_ context.Context) (*domain.DashboardStats, error) {
	c.gets++
	if c.stats == nil {
		return nil, nil
	}
	clone := *c.stats
	return &clone, nil
}

func (c *stubStatsCache) Set(_ context.Context, stats *domain.DashboardStats) error {
	c.sets++
	clone := *stats
	c.stats = &clone
	return nil
}
