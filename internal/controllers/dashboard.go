package controllers

import (
	"net/http"

	"lab-portal/internal/dto"
	"lab-portal/internal/services"
	"lab-portal/pkg/session"
	"lab-portal/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// DashboardController serves the composed read views: the landing
// dashboard, the profile page and the project creation form.
type DashboardController struct {
	labService     services.LabServiceInterface
	projectService services.ProjectServiceInterface
	logger         *zap.Logger
}

func NewDashboardController(
	labService services.LabServiceInterface,
	projectService services.ProjectServiceInterface,
	logger *zap.Logger,
) *DashboardController {
	return &DashboardController{
		labService:     labService,
		projectService: projectService,
		logger:         logger,
	}
}

type dashboardView struct {
	Labs            []dto.LabView     `json:"labs"`
	ActiveProjects  []dto.ProjectView `json:"activeProjects"`
	PastProjects    []dto.ProjectView `json:"pastProjects"`
	CurrentUserName string            `json:"currentUserName"`
}

type profileView struct {
	User           session.User      `json:"user"`
	ActiveProjects []dto.ProjectView `json:"activeProjects"`
	PastProjects   []dto.ProjectView `json:"pastProjects"`
}

func (c *DashboardController) Dashboard(ctx echo.Context) error {
	rec, err := utils.CurrentSession(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	reqCtx := ctx.Request().Context()
	labs, err := c.labService.ListLabs(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	active, past, err := c.projectService.ProjectLists(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	view := dashboardView{
		Labs:            labs,
		ActiveProjects:  active,
		PastProjects:    past,
		CurrentUserName: rec.User.Name,
	}
	return utils.SuccessResponse(ctx, view, "dashboard", http.StatusOK)
}

func (c *DashboardController) Profile(ctx echo.Context) error {
	rec, err := utils.CurrentSession(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	active, past, err := c.projectService.UserProjects(ctx.Request().Context(), rec.User.ID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	view := profileView{
		User:           rec.User,
		ActiveProjects: active,
		PastProjects:   past,
	}
	return utils.SuccessResponse(ctx, view, "profile", http.StatusOK)
}

func (c *DashboardController) NewProjectForm(ctx echo.Context) error {
	rec, err := utils.CurrentSession(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	form, err := c.projectService.NewProjectForm(ctx.Request().Context(), rec.User)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, form, "new project form", http.StatusOK)
}
