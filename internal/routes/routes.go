package routes

import (
	"net/http"

	"roomly_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every HTTP route of the application. The auth
// middleware is built once in the app package and handed to each handler
// group that needs it.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authRequired gin.HandlerFunc,
) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api, authRequired)
		appHandlers.UserHandler.RegisterRoutes(api, authRequired)
		appHandlers.ApartmentHandler.RegisterRoutes(api, authRequired)
		appHandlers.RoomHandler.RegisterRoutes(api, authRequired)
	}
}
