// FILE: cmd/rest/main.go
package main

import (
	"log"

	"finance-advisor-be/internal/bootstrap"
	"finance-advisor-be/internal/config"
	"finance-advisor-be/internal/server"

	"github.com/fatih/color"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	// All state is in-memory: restarting the server resets every ledger.
	container := bootstrap.NewContainer(cfg)

	color.Cyan("Patrimoine Dashboard API")
	color.Yellow("Environment: %s | Advisor delay: %s", cfg.App.Environment, cfg.Advisor.ProcessingDelay)

	// 3. Initialize and Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
