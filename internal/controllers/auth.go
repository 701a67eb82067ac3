package controllers

import (
	"net/http"
	"time"

	"lab-portal/internal/dto"
	"lab-portal/internal/services"
	apperrors "lab-portal/pkg/errors"
	"lab-portal/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthController struct {
	authService services.AuthServiceInterface
	cookieName  string
	cookieTTL   time.Duration
	logger      *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, cookieName string, cookieTTL time.Duration, logger *zap.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		cookieName:  cookieName,
		cookieTTL:   cookieTTL,
		logger:      logger,
	}
}

func (c *AuthController) Login(ctx echo.Context) error {
	var payload dto.LoginDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	rec, token, err := c.authService.Login(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Warn("login rejected", zap.String("email", payload.Email), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	utils.SetSessionCookie(ctx, c.cookieName, token, c.cookieTTL)
	return utils.SuccessResponse(ctx, rec.User, "signed in", http.StatusOK)
}

func (c *AuthController) Register(ctx echo.Context) error {
	var payload dto.RegisterDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	rec, token, err := c.authService.Register(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Warn("registration rejected", zap.String("email", payload.Email), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	utils.SetSessionCookie(ctx, c.cookieName, token, c.cookieTTL)
	return utils.SuccessResponse(ctx, rec.User, "account created", http.StatusCreated)
}

func (c *AuthController) Logout(ctx echo.Context) error {
	rec, err := utils.CurrentSession(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.authService.Logout(ctx.Request().Context(), rec.ID); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	utils.ClearSessionCookie(ctx, c.cookieName)
	return utils.SuccessResponse(ctx, struct{}{}, "signed out", http.StatusOK)
}

func (c *AuthController) Me(ctx echo.Context) error {
	rec, err := utils.CurrentSession(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, rec.User, "current session", http.StatusOK)
}
