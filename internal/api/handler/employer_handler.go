package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/leadflow/crm-api/internal/core/domain"
	"github.com/leadflow/crm-api/internal/core/ports"
)

// EmployerHandler serves the employer-only surface: dashboard stats,
// manager provisioning and full lead administration. Every route behind
// it is guarded by Auth + RequireRole(employer) in the router.
type EmployerHandler struct {
	leadService    ports.LeadService
	managerService ports.ManagerService
}

func NewEmployerHandler(leadService ports.LeadService, managerService ports.ManagerService) *EmployerHandler {
	return &EmployerHandler{leadService: leadService, managerService: managerService}
}

type messageResponse struct {
	Message string `json:"message"`
}

// DashboardStats returns the aggregate lead counts.
//
// @Summary      Employer dashboard aggregates
// @Tags         employer
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.DashboardStats
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/employer/dashboard-stats [get]
func (h *EmployerHandler) DashboardStats(c echo.Context) error {
	stats, err := h.leadService.DashboardStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// ListManagers returns all manager accounts.
//
// @Summary      List managers
// @Tags         employer
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  userResponse
// @Router       /api/employer/managers [get]
func (h *EmployerHandler) ListManagers(c echo.Context) error {
	managers, err := h.managerService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponses(managers))
}

// CreateManager provisions a manager account.
//
// @Summary      Create a manager
// @Tags         employer
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createManagerRequest  true  "Manager details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/employer/managers [post]
func (h *EmployerHandler) CreateManager(c echo.Context) error {
	var req createManagerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	manager, err := h.managerService.Create(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toUserResponse(manager))
}

// UpdateManager partially edits a manager account.
//
// @Summary      Update a manager
// @Tags         employer
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Manager id"
// @Param        body  body      updateManagerRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/employer/managers/{id} [put]
func (h *EmployerHandler) UpdateManager(c echo.Context) error {
	var req updateManagerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	manager, err := h.managerService.Update(c.Request().Context(), c.Param("id"), ports.ManagerPatch{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(manager))
}

// DeleteManager removes a manager with no assigned leads.
//
// @Summary      Delete a manager
// @Tags         employer
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Manager id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/employer/managers/{id} [delete]
func (h *EmployerHandler) DeleteManager(c echo.Context) error {
	if err := h.managerService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Manager removed"})
}

// ListLeads returns all leads, optionally filtered by manager/status,
// with the assigned manager's identity joined in.
//
// @Summary      List leads
// @Tags         employer
// @Produce      json
// @Security     BearerAuth
// @Param        managerId  query  string  false  "Filter by assigned manager"
// @Param        status     query  string  false  "Filter by status"
// @Success      200  {array}  leadResponse
// @Router       /api/employer/leads [get]
func (h *EmployerHandler) ListLeads(c echo.Context) error {
	leads, err := h.leadService.ListForEmployer(c.Request().Context(), ports.LeadFilter{
		ManagerID: c.QueryParam("managerId"),
		Status:    domain.LeadStatus(c.QueryParam("status")),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLeadResponses(leads))
}

// CreateLead creates a lead assigned to an existing manager.
//
// @Summary      Create a lead
// @Tags         employer
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createLeadRequest  true  "Lead details"
// @Success      201   {object}  leadResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/employer/leads [post]
func (h *EmployerHandler) CreateLead(c echo.Context) error {
	var req createLeadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lead, err := h.leadService.Create(c.Request().Context(), ports.CreateLeadInput{
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		CompanyName:  req.CompanyName,
		Status:       domain.LeadStatus(req.Status),
		ManagerID:    req.ManagerID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toLeadResponse(lead))
}

// UpdateLead applies an employer full edit to a lead.
//
// @Summary      Update a lead
// @Tags         employer
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Lead id"
// @Param        body  body      updateLeadRequest  true  "Fields to change"
// @Success      200   {object}  leadResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/employer/leads/{id} [put]
func (h *EmployerHandler) UpdateLead(c echo.Context) error {
	var req updateLeadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lead, err := h.leadService.UpdateAsEmployer(c.Request().Context(), c.Param("id"), ports.EmployerLeadPatch{
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		CompanyName:  req.CompanyName,
		Status:       domain.LeadStatus(req.Status),
		ManagerID:    req.ManagerID,
		Notes:        req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLeadResponse(lead))
}

// DeleteLead removes a lead unconditionally.
//
// @Summary      Delete a lead
// @Tags         employer
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Lead id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/employer/leads/{id} [delete]
func (h *EmployerHandler) DeleteLead(c echo.Context) error {
	if err := h.leadService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Lead removed"})
}
