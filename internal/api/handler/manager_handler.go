package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/leadflow/crm-api/internal/api/middleware"
	"github.com/leadflow/crm-api/internal/core/domain"
	"github.com/leadflow/crm-api/internal/core/ports"
)

// ManagerHandler serves the manager-facing surface: a manager sees and
// updates only leads assigned to them.
type ManagerHandler struct {
	leadService ports.LeadService
}

func NewManagerHandler(leadService ports.LeadService) *ManagerHandler {
	return &ManagerHandler{leadService: leadService}
}

// ListLeads returns the calling manager's own leads.
//
// @Summary      List own leads
// @Tags         managers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  leadResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/managers/leads [get]
func (h *ManagerHandler) ListLeads(c echo.Context) error {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, no token")
	}

	leads, err := h.leadService.ListForManager(c.Request().Context(), caller.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLeadResponses(leads))
}

// PatchLead replaces the status and/or appends a note on one of the
// calling manager's own leads.
//
// @Summary      Update own lead status or append a note
// @Tags         managers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Lead id"
// @Param        body  body      patchLeadRequest  true  "Status and/or note"
// @Success      200   {object}  leadResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/managers/leads/{id} [patch]
func (h *ManagerHandler) PatchLead(c echo.Context) error {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, no token")
	}

	var req patchLeadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lead, err := h.leadService.UpdateAsManager(c.Request().Context(), c.Param("id"), caller.ID, ports.ManagerLeadPatch{
		Status: domain.LeadStatus(req.Status),
		Note:   req.Note,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLeadResponse(lead))
}
