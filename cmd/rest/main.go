package main

import (
	"context"
	"log"

	"ai-studyaid-be/internal/bootstrap"
	"ai-studyaid-be/internal/config"
	"ai-studyaid-be/internal/server"
	"ai-studyaid-be/internal/tracer"
)

func main() {
	// 1. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Load Configuration
	cfg := config.Load()

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Speech Consumer...")
		if err := container.SpeechConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Speech Consumer Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
