package controllers

import (
	"net/http"

	"lab-portal/internal/dto"
	"lab-portal/internal/services"
	apperrors "lab-portal/pkg/errors"
	"lab-portal/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type LabController struct {
	labService       services.LabServiceInterface
	equipmentService services.EquipmentServiceInterface
	logger           *zap.Logger
}

func NewLabController(
	labService services.LabServiceInterface,
	equipmentService services.EquipmentServiceInterface,
	logger *zap.Logger,
) *LabController {
	return &LabController{
		labService:       labService,
		equipmentService: equipmentService,
		logger:           logger,
	}
}

// manageLabsView is the manage-labs screen state: the full lab list plus
// the equipment of the selected lab when ?lab= names one.
type manageLabsView struct {
	Labs        []dto.LabView   `json:"labs"`
	SelectedLab string          `json:"selectedLab,omitempty"`
	Equipment   []dto.Equipment `json:"equipment,omitempty"`
}

func (c *LabController) ManageLabs(ctx echo.Context) error {
	labs, err := c.labService.ListLabs(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	view := manageLabsView{Labs: labs}
	if selected := ctx.QueryParam("lab"); selected != "" {
		equipment, err := c.equipmentService.ListEquipment(ctx.Request().Context(), selected)
		if err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
		view.SelectedLab = selected
		view.Equipment = equipment
	}

	return utils.SuccessResponse(ctx, view, "manage labs", http.StatusOK)
}

func (c *LabController) CreateLab(ctx echo.Context) error {
	var payload dto.CreateLabDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.labService.CreateLab(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, created, "lab created", http.StatusCreated)
}

// DeleteLab is destructive; the caller must send ?confirm=true so the
// acknowledgment travels with the request itself.
func (c *LabController) DeleteLab(ctx echo.Context) error {
	if ctx.QueryParam("confirm") != "true" {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "lab deletion requires confirm=true", nil, nil), c.logger)
	}

	labID := ctx.Param("id")
	if err := c.labService.DeleteLab(ctx.Request().Context(), labID); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	c.equipmentService.DropLab(labID)
	return utils.SuccessResponse(ctx, struct{}{}, "lab deleted", http.StatusOK)
}

func (c *LabController) OccupyLab(ctx echo.Context) error {
	var payload dto.OccupyLabDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil), c.logger)
	}

	occupancy, err := c.labService.OccupyLab(ctx.Request().Context(), ctx.Param("id"), payload.Reason)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, occupancy, "lab occupied", http.StatusOK)
}

func (c *LabController) FreeLab(ctx echo.Context) error {
	occupancy, err := c.labService.FreeLab(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, occupancy, "lab freed", http.StatusOK)
}
