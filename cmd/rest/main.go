package main

import (
	"context"
	"log"

	"ai-beautybot-be/internal/bootstrap"
	"ai-beautybot-be/internal/config"
	"ai-beautybot-be/internal/server"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)

	// 3. Start Background Services
	go func() {
		log.Println("Background: Starting Event Relay Service...")
		if err := container.EventRelayService.Relay(context.Background()); err != nil {
			log.Printf("Background Event Relay Error: %v", err)
		}
	}()

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
