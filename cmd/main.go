package main

import (
	"backend/config"
	"backend/controllers"
	"backend/logger"
	"backend/repository"
	"backend/routes"
	"backend/services"
)

func main() {
	log := logger.New("meal-tracker")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	userRepo := repository.NewUserRepository(db)
	mealRepo := repository.NewMealRepository(db)

	userCtl := controllers.NewUserController(services.NewUserService(userRepo, mealRepo))
	mealCtl := controllers.NewMealController(services.NewMealService(mealRepo, userRepo))

	r := routes.SetupRouter(userCtl, mealCtl, log)

	log.Info().Str("addr", cfg.ServerAddress).Msg("listening")
	if err := r.Run(cfg.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
