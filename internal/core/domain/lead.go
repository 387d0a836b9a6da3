package domain

import (
	"errors"
	"time"
)

// LeadStatus represents the lifecycle state of a lead.
type LeadStatus string

const (
	StatusPending    LeadStatus = "PENDING"
	StatusInProgress LeadStatus = "IN_PROGRESS"
	StatusCompleted  LeadStatus = "COMPLETED"
	StatusCanceled   LeadStatus = "CANCELED"
)

var ErrLeadNotFound = errors.New("lead not found")
var ErrInvalidManager = errors.New("invalid manager")
var ErrInvalidStatus = errors.New("invalid lead status")
var ErrForbidden = errors.New("access forbidden")

// IsValid reports whether s is one of the four enumerated statuses.
// There is no transition table: any authorised actor may move a lead
// between any two statuses, including reopening a completed one.
func (s LeadStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// ManagerRef is the joined-in identity of the manager a lead is assigned
// to. It is populated on employer-facing reads only.
type ManagerRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Lead is a tracked sales opportunity. ManagerID is a weak reference to a
// User with role=manager: deleting the user does not cascade here, so
// existence is validated wherever the reference is consumed.
type Lead struct {
	ID           string      `json:"id"`
	ContactName  string      `json:"contact_name"`
	ContactEmail string      `json:"contact_email"`
	CompanyName  string      `json:"company_name"`
	Status       LeadStatus  `json:"status"`
	ManagerID    string      `json:"manager_id"`
	Manager      *ManagerRef `json:"manager,omitempty"`
	Notes        []string    `json:"notes"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// DashboardStats aggregates lead counts for the employer dashboard.
// InProgress counts both PENDING and IN_PROGRESS leads: the dashboard
// treats everything not yet closed as in flight.
type DashboardStats struct {
	InProgressCount int64 `json:"inProgressCount"`
	CompletedCount  int64 `json:"completedCount"`
	CanceledCount   int64 `json:"canceledCount"`
}
