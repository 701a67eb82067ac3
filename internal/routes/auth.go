package routes

import (
	"github.com/labstack/echo/v4"

	"lab-portal/internal/controllers"
)

func runAuthRouter(e *echo.Echo, authCtrl *controllers.AuthController) {
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/logout", authCtrl.Logout)
		authGroup.GET("/me", authCtrl.Me)
	}
}
