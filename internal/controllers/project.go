package controllers

import (
	"net/http"
	"strconv"

	"lab-portal/internal/dto"
	"lab-portal/internal/services"
	apperrors "lab-portal/pkg/errors"
	"lab-portal/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ProjectController struct {
	projectService services.ProjectServiceInterface
	logger         *zap.Logger
}

func NewProjectController(projectService services.ProjectServiceInterface, logger *zap.Logger) *ProjectController {
	return &ProjectController{
		projectService: projectService,
		logger:         logger,
	}
}

func (c *ProjectController) projectID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewHttpError(http.StatusBadRequest, "invalid project id",
			err, map[string]interface{}{"param": ctx.Param("id")})
	}
	return id, nil
}

func (c *ProjectController) ProjectDetail(ctx echo.Context) error {
	id, err := c.projectID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	rec, err := utils.CurrentSession(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	detail, err := c.projectService.ProjectDetail(ctx.Request().Context(), id, rec.User)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, detail, "project detail", http.StatusOK)
}

func (c *ProjectController) SearchLabs(ctx echo.Context) error {
	var payload dto.SearchLabsDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	labs, err := c.projectService.SearchLabs(ctx.Request().Context(), payload.Equipment)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, labs, "matching labs", http.StatusOK)
}

func (c *ProjectController) CreateProject(ctx echo.Context) error {
	var payload dto.NewProjectDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	rec, err := utils.CurrentSession(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.projectService.CreateProject(ctx.Request().Context(), rec.User, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, created, "project created", http.StatusCreated)
}

func (c *ProjectController) ChangeStatus(ctx echo.Context) error {
	id, err := c.projectID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.ChangeStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	rec, err := utils.CurrentSession(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	updated, err := c.projectService.ChangeStatus(ctx.Request().Context(), rec.User, id, payload.Status)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, updated, "project status changed", http.StatusOK)
}

func (c *ProjectController) GenerateEquipment(ctx echo.Context) error {
	var payload dto.GenerateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	selection, err := c.projectService.GenerateEquipment(ctx.Request().Context(), payload.Description, payload.Selected)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, selection, "equipment suggestions merged", http.StatusOK)
}
