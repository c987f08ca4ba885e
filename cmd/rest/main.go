package main

import (
	"context"
	"log"

	"voice-ecommerce-be/internal/bootstrap"
	"voice-ecommerce-be/internal/config"
	"voice-ecommerce-be/internal/server"
	"voice-ecommerce-be/internal/tracer"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()
	if !cfg.VoiceEnabled() {
		log.Println("OPENAI_API_KEY not found - voice features will be disabled")
	}

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	// 3. Initialize Server
	srv := server.New(cfg, container)

	// 4. Run Server
	log.Fatal(srv.Run())
}
