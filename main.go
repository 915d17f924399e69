package main

import (
	"pickleball-api/core/logger"
	"pickleball-api/core/server"

	_ "pickleball-api/docs" // Swagger docs
)

// @title Pickleball Facility API
// @version 1.0
// @description Backend for the pickleball facility platform: court booking, tournaments, pro shop and facility analytics
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@pickleball.local

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
