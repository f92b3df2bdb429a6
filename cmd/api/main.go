package main

import (
	"os"

	"opsdesk/cmd/internal/logger"
)

// @title           Opsdesk API
// @version         1.0
// @description     Back-office list endpoints for CRM, fleet, sales and audit data
// @BasePath        /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Log.Errorf("opsdesk-api: %v", err)
		os.Exit(1)
	}
}
