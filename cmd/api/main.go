package main

import (
	_ "dischley_intake/docs"
	"dischley_intake/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Dischley Intake API
// @version         1.0
// @description     Law-firm intranet API for client intake leads and post-hearing case results, with attorney email notification and Clio CRM forwarding.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the shared staff token.

func main() {
	routes.Run()
}
