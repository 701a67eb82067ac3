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

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(equipmentService services.EquipmentServiceInterface, logger *zap.Logger) *EquipmentController {
	return &EquipmentController{
		equipmentService: equipmentService,
		logger:           logger,
	}
}

func (c *EquipmentController) ListEquipment(ctx echo.Context) error {
	equipment, err := c.equipmentService.ListEquipment(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		c.logger.Error("ListEquipment: failed to load equipment", zap.String("labId", ctx.Param("id")), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, equipment, "equipment list", http.StatusOK)
}

func (c *EquipmentController) AddEquipment(ctx echo.Context) error {
	var payload dto.EquipmentRequest
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	equipment, err := c.equipmentService.AddEquipment(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, equipment, "equipment added", http.StatusCreated)
}

func (c *EquipmentController) RemoveEquipment(ctx echo.Context) error {
	equipmentID, err := strconv.ParseInt(ctx.Param("eqId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid equipment id",
				err, map[string]interface{}{"param": ctx.Param("eqId")}), c.logger)
	}

	quantity, err := strconv.Atoi(ctx.QueryParam("quantity"))
	if err != nil || quantity < 1 {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "quantity must be a positive integer", err, nil), c.logger)
	}

	equipment, err := c.equipmentService.RemoveEquipment(ctx.Request().Context(), ctx.Param("id"), equipmentID, quantity)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, equipment, "equipment removed", http.StatusOK)
}
