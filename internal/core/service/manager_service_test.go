package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/leadflow/crm-api/internal/core/domain"
	"github.com/leadflow/crm-api/internal/core/ports"
)

func TestManagerService_Create_ForcesManagerRole(t *testing.T) {
	users := newStubUserRepo()
	leads := newStubLeadRepo()
	svc := NewManagerService(users, leads, zerolog.Nop())

	manager, err := svc.Create(context.Background(), "M1", "m1@example.com", "secret1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if manager.Role != domain.RoleManager {
		t.Fatalf("expected role manager, got %s", manager.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(manager.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match: %v", err)
	}
}

func TestManagerService_Create_DuplicateEmail(t *testing.T) {
	users := newStubUserRepo()
	leads := newStubLeadRepo()
	svc := NewManagerService(users, leads, zerolog.Nop())

	if _, err := svc.Create(context.Background(), "M1", "m1@example.com", "secret1"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), "M2", "m1@example.com", "secret2"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestManagerService_Update_RehashOnlyOnNewPassword(t *testing.T) {
	users := newStubUserRepo()
	leads := newStubLeadRepo()
	svc := NewManagerService(users, leads, zerolog.Nop())

	manager, _ := svc.Create(context.Background(), "M1", "m1@example.com", "secret1")
	originalHash := manager.PasswordHash

	// A patch without a password must leave the hash byte-identical.
	updated, err := svc.Update(context.Background(), manager.ID, ports.ManagerPatch{Name: "M1 Renamed"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "M1 Renamed" {
		t.Fatalf("name not updated: %s", updated.Name)
	}
	if updated.PasswordHash != originalHash {
		t.Fatalf("hash mutated without a password change")
	}

	// A patch with a password replaces the hash and verifies against the
	// new plaintext only.
	updated, err = svc.Update(context.Background(), manager.ID, ports.ManagerPatch{Password: "newsecret"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.PasswordHash == originalHash {
		t.Fatalf("hash not replaced")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newsecret")); err != nil {
		t.Fatalf("new hash does not verify: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("secret1")) == nil {
		t.Fatalf("old password still verifies")
	}
}

func TestManagerService_Update_NotFound(t *testing.T) {
	users := newStubUserRepo()
	leads := newStubLeadRepo()
	svc := NewManagerService(users, leads, zerolog.Nop())

	if _, err := svc.Update(context.Background(), "missing", ports.ManagerPatch{Name: "X"}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestManagerService_Delete_BlockedByAssignedLeads(t *testing.T) {
	users := newStubUserRepo()
	leads := newStubLeadRepo()
	managerSvc := NewManagerService(users, leads, zerolog.Nop())
	leadSvc := NewLeadService(leads, users, nil, zerolog.Nop())

	m1, _ := managerSvc.Create(context.Background(), "M1", "m1@example.com", "secret1")
	m2, _ := managerSvc.Create(context.Background(), "M2", "m2@example.com", "secret2")
	lead, err := leadSvc.Create(context.Background(), ports.CreateLeadInput{
		ContactName: "Jane", ContactEmail: "jane@x.com", CompanyName: "Acme", ManagerID: m1.ID,
	})
	if err != nil {
		t.Fatalf("create lead: %v", err)
	}

	if err := managerSvc.Delete(context.Background(), m1.ID); !errors.Is(err, domain.ErrManagerHasLeads) {
		t.Fatalf("expected ErrManagerHasLeads, got %v", err)
	}

	// Reassign away, then deletion succeeds.
	if _, err := leadSvc.UpdateAsEmployer(context.Background(), lead.ID, ports.EmployerLeadPatch{ManagerID: m2.ID}); err != nil {
		t.Fatalf("reassign failed: %v", err)
	}
	if err := managerSvc.Delete(context.Background(), m1.ID); err != nil {
		t.Fatalf("delete after reassign failed: %v", err)
	}
	if _, err := users.FindByID(context.Background(), m1.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("manager still present after delete")
	}
}

func TestManagerService_Delete_NotFound(t *testing.T) {
	users := newStubUserRepo()
	leads := newStubLeadRepo()
	svc := NewManagerService(users, leads, zerolog.Nop())

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestManagerService_List(t *testing.T) {
	users := newStubUserRepo()
	leads := newStubLeadRepo()
	svc := NewManagerService(users, leads, zerolog.Nop())

	seedUser(t, users, "E1", "e1@example.com", domain.RoleEmployer)
	_, _ = svc.Create(context.Background(), "M1", "m1@example.com", "secret1")
	_, _ = svc.Create(context.Background(), "M2", "m2@example.com", "secret2")

	managers, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(managers) != 2 {
		t.Fatalf("expected 2 managers, got %d", len(managers))
	}
	for _, m := range managers {
		if m.Role != domain.RoleManager {
			t.Fatalf("non-manager in listing: %+v", m)
		}
	}
}
