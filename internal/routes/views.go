package routes

import (
	"github.com/labstack/echo/v4"

	"lab-portal/internal/controllers"
)

// runViewRouter registers the composed page views. The export route is
// static and must coexist with the :id detail route; Echo matches the
// static path first.
func runViewRouter(
	e *echo.Echo,
	dashboardCtrl *controllers.DashboardController,
	labCtrl *controllers.LabController,
	projectCtrl *controllers.ProjectController,
	reportCtrl *controllers.ReportController,
) {
	views := e.Group("/views")
	{
		views.GET("/dashboard", dashboardCtrl.Dashboard)
		views.GET("/profile", dashboardCtrl.Profile)
		views.GET("/labs", labCtrl.ManageLabs)
		views.GET("/new-project", dashboardCtrl.NewProjectForm)
		views.GET("/projects/export", reportCtrl.ExportProjects)
		views.GET("/projects/:id", projectCtrl.ProjectDetail)
	}
}
