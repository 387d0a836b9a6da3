package handler

import "github.com/leadflow/crm-api/internal/core/domain"

type createLeadRequest struct {
	ContactName  string `json:"contactName"  validate:"required"`
	ContactEmail string `json:"contactEmail" validate:"required,email"`
	CompanyName  string `json:"companyName"  validate:"required"`
	Status       string `json:"status"       validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED CANCELED"`
	ManagerID    string `json:"managerId"    validate:"required"`
}

// updateLeadRequest is the employer's full-edit patch. Omitted and
// empty-string fields leave the stored value unchanged; notes, when
// present, replaces the whole sequence.
type updateLeadRequest struct {
	ContactName  string   `json:"contactName"`
	ContactEmail string   `json:"contactEmail" validate:"omitempty,email"`
	CompanyName  string   `json:"companyName"`
	Status       string   `json:"status"       validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED CANCELED"`
	ManagerID    string   `json:"managerId"`
	Notes        []string `json:"notes"`
}

// patchLeadRequest is the owning manager's patch: replace the status
// and/or append one note.
type patchLeadRequest struct {
	Status string `json:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED CANCELED"`
	Note   string `json:"note"`
}

type managerRefResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type leadResponse struct {
	ID           string              `json:"id"`
	ContactName  string              `json:"contactName"`
	ContactEmail string              `json:"contactEmail"`
	CompanyName  string              `json:"companyName"`
	Status       string              `json:"status"`
	ManagerID    string              `json:"managerId"`
	Manager      *managerRefResponse `json:"manager,omitempty"`
	Notes        []string            `json:"notes"`
	CreatedAt    string              `json:"createdAt"`
	UpdatedAt    string              `json:"updatedAt"`
}

func toLeadResponse(l *domain.Lead) leadResponse {
	resp := leadResponse{
		ID:           l.ID,
		ContactName:  l.ContactName,
		ContactEmail: l.ContactEmail,
		CompanyName:  l.CompanyName,
		Status:       string(l.Status),
		ManagerID:    l.ManagerID,
		Notes:        l.Notes,
		CreatedAt:    l.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		UpdatedAt:    l.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
	if resp.Notes == nil {
		resp.Notes = []string{}
	}
	if l.Manager != nil {
		resp.Manager = &managerRefResponse{
			ID:    l.Manager.ID,
			Name:  l.Manager.Name,
			Email: l.Manager.Email,
		}
	}
	return resp
}

func toLeadResponses(leads []domain.Lead) []leadResponse {
	out := make([]leadResponse, 0, len(leads))
	for i := range leads {
		out = append(out, toLeadResponse(&leads[i]))
	}
	return out
}
