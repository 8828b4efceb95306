package main

import (
	"fmt"
	"os"
	"time"

	"github.com/umzugo/packapp-backend/internal/db"
	"github.com/umzugo/packapp-backend/internal/handlers"
	"github.com/umzugo/packapp-backend/internal/logger"
	"github.com/umzugo/packapp-backend/internal/middleware"
	"github.com/umzugo/packapp-backend/internal/repos"
	"github.com/umzugo/packapp-backend/internal/server"
	"github.com/umzugo/packapp-backend/internal/services"
	"github.com/umzugo/packapp-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()
	if err = db.SeedReferenceData(thePG, log); err != nil {
		log.Error("Reference data seeding failed", "error", err)
		os.Exit(1)
	}

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	moveRepo := repos.NewMoveRepo(thePG, log)
	roomRepo := repos.NewRoomRepo(thePG, log)
	furnitureRepo := repos.NewFurnitureRepo(thePG, log)
	serviceRepo := repos.NewServiceRepo(thePG, log)
	materialRepo := repos.NewMaterialRepo(thePG, log)
	catalogRepo := repos.NewCatalogRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	authService := services.NewAuthService(thePG, log, userRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second)
	moveService := services.NewMoveService(thePG, log, moveRepo, roomRepo)
	roomService := services.NewRoomService(thePG, log, moveRepo, roomRepo, furnitureRepo, catalogRepo)
	furnitureService := services.NewFurnitureService(thePG, log, roomRepo, furnitureRepo, catalogRepo)
	extrasService := services.NewExtrasService(thePG, log, moveRepo, serviceRepo, materialRepo)

	// Handlers
	log.Info("Setting up handlers from main...")
	authHandler := handlers.NewAuthHandler(log, authService)
	moveHandler := handlers.NewMoveHandler(log, moveService)
	roomHandler := handlers.NewRoomHandler(log, roomService)
	furnitureHandler := handlers.NewFurnitureHandler(log, furnitureService)
	extrasHandler := handlers.NewExtrasHandler(log, extrasService)

	// Middleware
	log.Info("Setting up middleware from main...")
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:      authHandler,
		AuthMiddleware:   authMiddleware,
		MoveHandler:      moveHandler,
		RoomHandler:      roomHandler,
		FurnitureHandler: furnitureHandler,
		ExtrasHandler:    extrasHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server stopped", "error", err)
	}
}
