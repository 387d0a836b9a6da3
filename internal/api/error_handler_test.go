package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/leadflow/crm-api/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"lead not found", domain.ErrLeadNotFound, http.StatusNotFound},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"email taken", domain.ErrEmailTaken, http.StatusBadRequest},
		{"invalid manager", domain.ErrInvalidManager, http.StatusBadRequest},
		{"manager has leads", domain.ErrManagerHasLeads, http.StatusBadRequest},
		{"invalid status", domain.ErrInvalidStatus, http.StatusBadRequest},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := NewHTTPErrorHandler(zerolog.Nop())
			handler(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json body: %v", err)
			}
			if body["error"] == "" {
				t.Fatalf("missing error message")
			}
			if tc.code == http.StatusInternalServerError && body["error"] != "internal server error" {
				t.Fatalf("internal error leaked: %q", body["error"])
			}
		})
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(echo.NewHTTPError(http.StatusUnauthorized, "not authorized, no token"), c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	if body["error"] != "not authorized, no token" {
		t.Fatalf("unexpected message: %q", body["error"])
	}
}
