package main

import (
	"solar-sizing/internal/api/handlers"
	"solar-sizing/internal/api/middleware"
	"solar-sizing/internal/data"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func loadEnv() {
	viper.SetDefault("API_ADDR", ":8080")
	viper.SetDefault("API_ENV", "development")
	viper.SetDefault("CONFIG_DIR", data.GetDefaultConfigDir())
	viper.SetDefault("LIBRARY_FILE", data.GetDefaultLibraryPath())
	viper.AutomaticEnv()
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	loadEnv()

	if viper.GetString("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	session := handlers.NewSession()
	store := data.NewConfigStore(viper.GetString("CONFIG_DIR"))

	equipmentHandler := handlers.NewEquipmentHandler(session)
	reportHandler := handlers.NewReportHandler(session)
	libraryHandler := handlers.NewLibraryHandler(viper.GetString("LIBRARY_FILE"))
	configsHandler := handlers.NewConfigsHandler(session, store)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.GET("/equipment", equipmentHandler.List)
		api.POST("/equipment", equipmentHandler.Add)
		api.GET("/equipment/:name", equipmentHandler.Get)
		api.PUT("/equipment/:name", equipmentHandler.Edit)
		api.DELETE("/equipment/:name", equipmentHandler.Delete)
		api.DELETE("/equipment", equipmentHandler.DeleteAll)

		api.GET("/profile", equipmentHandler.Profile)
		api.POST("/report", reportHandler.Run)

		api.GET("/library", libraryHandler.Get)

		api.GET("/configs", configsHandler.List)
		api.POST("/configs/:name", configsHandler.Save)
		api.POST("/configs/:name/load", configsHandler.Load)
		api.DELETE("/configs/:name", configsHandler.Delete)
	}

	addr := viper.GetString("API_ADDR")
	log.Info().Str("addr", addr).Msg("api listening")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server exit")
	}
}
