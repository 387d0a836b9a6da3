package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/leadflow/crm-api/internal/core/domain"
)

func runRBAC(t *testing.T, requiredRole string, user *domain.User) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(UserContextKey, user)
	}

	called := false
	handler := RequireRole(requiredRole)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestRequireRole_Match(t *testing.T) {
	rec, called := runRBAC(t, domain.RoleEmployer, &domain.User{ID: "u1", Role: domain.RoleEmployer})
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_Mismatch(t *testing.T) {
	rec, called := runRBAC(t, domain.RoleEmployer, &domain.User{ID: "u1", Role: domain.RoleManager})
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRole_NoRoleHierarchy(t *testing.T) {
	// An employer is not implicitly a manager: each route admits exactly
	// one role.
	rec, called := runRBAC(t, domain.RoleManager, &domain.User{ID: "u1", Role: domain.RoleEmployer})
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRole_MissingIdentity(t *testing.T) {
	rec, called := runRBAC(t, domain.RoleEmployer, nil)
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
