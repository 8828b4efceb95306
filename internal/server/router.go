package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/umzugo/packapp-backend/internal/handlers"
	"github.com/umzugo/packapp-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler      *handlers.AuthHandler
	AuthMiddleware   *middleware.AuthMiddleware
	MoveHandler      *handlers.MoveHandler
	RoomHandler      *handlers.RoomHandler
	FurnitureHandler *handlers.FurnitureHandler
	ExtrasHandler    *handlers.ExtrasHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/api/register", cfg.AuthHandler.Register)
	router.POST("/api/login", cfg.AuthHandler.Login)

	// ===============
	// || Protected ||
	// ===============
	api := router.Group("/api")
	api.Use(cfg.AuthMiddleware.RequireAuth())
	// Moves
	api.POST("/moves", cfg.MoveHandler.Create)
	api.GET("/moves", cfg.MoveHandler.List)
	api.GET("/moves/:id", cfg.MoveHandler.Get)
	api.PUT("/moves/:id", cfg.MoveHandler.Update)
	api.DELETE("/moves/:id", cfg.MoveHandler.Delete)
	api.POST("/moves/:id/rooms/standard", cfg.MoveHandler.AddStandardRooms)
	// Rooms
	api.GET("/rooms/types", cfg.RoomHandler.ListTypes)
	api.GET("/rooms/move/:moveId", cfg.RoomHandler.ListByMove)
	api.POST("/rooms", cfg.RoomHandler.Create)
	api.PUT("/rooms/:id", cfg.RoomHandler.Update)
	api.DELETE("/rooms/:id", cfg.RoomHandler.Delete)
	// Furniture
	api.GET("/furniture/categories", cfg.FurnitureHandler.ListCategories)
	api.GET("/furniture/room/:roomId", cfg.FurnitureHandler.ListByRoom)
	api.POST("/furniture", cfg.FurnitureHandler.Create)
	api.PUT("/furniture/:id", cfg.FurnitureHandler.Update)
	api.DELETE("/furniture/:id", cfg.FurnitureHandler.Delete)
	// Services & materials
	api.GET("/services/move/:moveId", cfg.ExtrasHandler.ListServices)
	api.POST("/services", cfg.ExtrasHandler.AddService)
	api.PUT("/services/:id", cfg.ExtrasHandler.UpdateService)
	api.DELETE("/services/:id", cfg.ExtrasHandler.DeleteService)
	api.GET("/services/materials/move/:moveId", cfg.ExtrasHandler.ListMaterials)
	api.POST("/services/materials", cfg.ExtrasHandler.AddMaterial)

	return router
}
