package routes

import (
	"github.com/labstack/echo/v4"

	"lab-portal/internal/controllers"
)

func runLabRouter(e *echo.Echo, labCtrl *controllers.LabController, equipmentCtrl *controllers.EquipmentController) {
	labGroup := e.Group("/labs")
	{
		labGroup.POST("", labCtrl.CreateLab)
		labGroup.DELETE("/:id", labCtrl.DeleteLab)
		labGroup.PATCH("/:id/occupy", labCtrl.OccupyLab)
		labGroup.PATCH("/:id/free", labCtrl.FreeLab)

		labGroup.GET("/:id/equipment", equipmentCtrl.ListEquipment)
		labGroup.POST("/:id/equipment", equipmentCtrl.AddEquipment)
		labGroup.DELETE("/:id/equipment/:eqId", equipmentCtrl.RemoveEquipment)
	}
}
