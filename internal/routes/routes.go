package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"lab-portal/internal/clients"
	"lab-portal/internal/controllers"
	"lab-portal/internal/services"
	"lab-portal/pkg/config"
	"lab-portal/pkg/middleware"
	"lab-portal/pkg/service"
	"lab-portal/pkg/session"
	"lab-portal/pkg/utils"
)

// InitRouter builds the whole dependency graph and registers every route.
// The auth gate runs globally; paths listed in middleware.PublicPaths are
// the only ones reachable without a session.
func InitRouter(e *echo.Echo, cfg *config.Config, sessions session.Store, logger *zap.Logger) {
	tokens := service.NewTokenService(cfg.Session.SecretKey, cfg.Session.TTL)

	authMW := middleware.NewAuthMiddleware(tokens, sessions, cfg.Session.CookieName, logger)
	e.Use(authMW.Gate)

	// --- upstream clients ---
	labsClient := clients.NewLabsClient(cfg.Labs, logger)
	usersClient := clients.NewUsersClient(cfg.Users, logger)
	projectsClient := clients.NewProjectsClient(cfg.Projects, logger)

	// --- services ---
	authService := services.NewAuthService(usersClient, sessions, tokens, cfg.Session.TTL, logger)
	labService := services.NewLabService(labsClient, cfg.Cache.SnapshotTTL, logger)
	equipmentService := services.NewEquipmentService(labsClient, cfg.Cache.SnapshotTTL, logger)
	projectService := services.NewProjectService(projectsClient, usersClient, labsClient, logger)
	reportService := services.NewReportService(projectService, logger)

	// --- controllers ---
	authCtrl := controllers.NewAuthController(authService, cfg.Session.CookieName, cfg.Session.TTL, logger)
	labCtrl := controllers.NewLabController(labService, equipmentService, logger)
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)
	projectCtrl := controllers.NewProjectController(projectService, logger)
	dashboardCtrl := controllers.NewDashboardController(labService, projectService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)

	// --- public routes ---
	e.GET("/", func(ctx echo.Context) error {
		return utils.SuccessResponse(ctx, nil, "lab portal", http.StatusOK)
	})
	e.GET("/healthz", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	runAuthRouter(e, authCtrl)
	runViewRouter(e, dashboardCtrl, labCtrl, projectCtrl, reportCtrl)
	runLabRouter(e, labCtrl, equipmentCtrl)
	runProjectRouter(e, projectCtrl)
}
