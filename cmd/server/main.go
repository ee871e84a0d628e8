package main

import (
	"log"

	"smoothbux-be/internal/config"
	"smoothbux-be/internal/db"
	"smoothbux-be/internal/logger"
	"smoothbux-be/internal/menu"
	"smoothbux-be/internal/order"
	"smoothbux-be/internal/transport"
	"smoothbux-be/internal/user"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	menuRepo := menu.NewRepository(database)
	menuSvc := menu.NewService(menuRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, order.NewEngine(cfg.StrictTransitions))

	srv := transport.SetupRoutes(userSvc, menuSvc, orderSvc)

	log.Printf("🚀 API server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(srv.Run(":" + cfg.AppPort))
}
