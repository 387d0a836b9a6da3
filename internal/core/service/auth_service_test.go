package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/leadflow/crm-api/internal/core/domain"
)

func newAuthService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, "secret", time.Hour, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pass123", "")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleManager {
		t.Fatalf("expected default role manager, got %s", user.Role)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_EmployerRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Register(context.Background(), "Eve", "eve@example.com", "pass123", domain.RoleEmployer)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleEmployer {
		t.Fatalf("expected employer, got %s", user.Role)
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), "Bob", "bob@example.com", "pass", "superuser"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), "Bob", "bob@example.com", "pass", ""); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "Bobby", "bob@example.com", "pass2", ""); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_RoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	registered, err := svc.Register(context.Background(), "Carol", "carol@example.com", "s3cret", domain.RoleEmployer)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.ID != registered.ID || user.Email != registered.Email || user.Role != registered.Role {
		t.Fatalf("login returned different identity: %+v vs %+v", user, registered)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["id"] != registered.ID {
		t.Fatalf("expected id claim %s, got %v", registered.ID, claims["id"])
	}
	if claims["role"] != domain.RoleEmployer {
		t.Fatalf("expected role claim %s, got %v", domain.RoleEmployer, claims["role"])
	}

	// Profile with the token's subject resolves the same identity.
	profile, err := svc.Profile(context.Background(), registered.ID)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if profile.Email != registered.Email {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_, _ = svc.Register(context.Background(), "Dave", "dave@example.com", "goodpass", "")
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailSameError(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	// Unknown email and wrong password must be indistinguishable.
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Profile_DeletedUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, _ := svc.Register(context.Background(), "Gone", "gone@example.com", "pass12", "")
	if err := repo.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := svc.Profile(context.Background(), user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_TokenExpiry(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", -time.Minute, zerolog.Nop())

	// A negative TTL falls back to the 30-day default.
	if svc.tokenTTL != defaultTokenTTL {
		t.Fatalf("expected default TTL, got %v", svc.tokenTTL)
	}
}
