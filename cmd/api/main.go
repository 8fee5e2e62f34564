package main

import (
	"log"

	"github.com/joho/godotenv"

	"veredicto/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load .env (optional) and process config.
// 2) Build app wiring (ports + adapters + use cases).
// 3) Start HTTP server.
func main() {
	_ = godotenv.Load()

	app, err := bootstrap.BuildAPI()
	if err != nil {
		log.Fatalf("veredicto api bootstrap failed: %v", err)
	}
	defer func() {
		_ = app.Close()
	}()

	if err := app.Run(); err != nil {
		log.Fatalf("veredicto api stopped: %v", err)
	}
}
