package main

import (
	"kosan/config"
	"kosan/di"
	"kosan/shared/logger"
)

// @title Kosan API
// @version 1.0
// @description Boarding house rental booking API.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
