package main

import (
	"os"

	"github.com/yigit/coursecraft/internal/pkg/logger"
	"github.com/yigit/coursecraft/internal/server"
)

// @title CourseCraft API
// @version 1.0
// @description Course authoring API: courses, chapters, previews and event functions
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@coursecraft.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Identity provider session token, "Bearer <token>"

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
