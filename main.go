package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/hurairaz/sqlite-crud-api/config"
	"github.com/hurairaz/sqlite-crud-api/controllers"
	"github.com/hurairaz/sqlite-crud-api/database"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := config.LoadEnvVars(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to load environment variables")
	}

	db, err := database.ConnectToDB(config.DBPath())
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Tables are created at startup if absent, never altered.
	if err := database.CreateTables(db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to create tables")
	}

	router := gin.Default()

	h := controllers.NewHandler(db)
	controllers.RegisterRoutes(router, h)

	logger.Info().Str("db", config.DBPath()).Msg("Starting server")

	var runErr error
	if addr := config.ServerAddr(); addr != "" {
		runErr = router.Run(addr)
	} else {
		runErr = router.Run()
	}
	if runErr != nil {
		logger.Fatal().Err(runErr).Msg("Server exited")
	}
}
