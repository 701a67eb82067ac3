package routes

import (
	"github.com/labstack/echo/v4"

	"lab-portal/internal/controllers"
)

func runProjectRouter(e *echo.Echo, projectCtrl *controllers.ProjectController) {
	projectGroup := e.Group("/projects")
	{
		projectGroup.POST("", projectCtrl.CreateProject)
		projectGroup.POST("/search", projectCtrl.SearchLabs)
		projectGroup.POST("/generate-equipment", projectCtrl.GenerateEquipment)
		projectGroup.PUT("/:id/status", projectCtrl.ChangeStatus)
	}
}
