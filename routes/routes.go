package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/podlesnov2602-commits/Dars2/handlers"
	"github.com/podlesnov2602-commits/Dars2/middleware"
)

// RegisterRoutes mounts the API under /api. Reads are public; writes and
// token verification sit behind the bearer-token gate.
func RegisterRoutes(e *echo.Echo, properties *handlers.PropertyController, auth *handlers.AuthController, verifier middleware.TokenVerifier) {
	api := e.Group("/api")

	api.GET("/", handlers.Root)
	api.GET("/properties", properties.ListProperties)
	api.GET("/properties/:id", properties.GetProperty)

	authRequired := middleware.JWTMiddleware(verifier)
	api.POST("/properties", properties.CreateProperty, authRequired)
	api.PUT("/properties/:id", properties.UpdateProperty, authRequired)
	api.DELETE("/properties/:id", properties.DeleteProperty, authRequired)

	api.POST("/admin/login", auth.Login)
	api.GET("/admin/verify", auth.Verify, authRequired)
}
