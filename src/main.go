package main

import (
	"log"
	"monthwise-server/src/ai"
	"monthwise-server/src/api"
	"monthwise-server/src/config"
	"monthwise-server/src/db"
	"monthwise-server/src/ratelimit"
	"net/http"
)

func main() {
	cfg := config.Load()

	// Connect to database
	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}

	db.InitCache()

	limiter := ratelimit.NewLimiter(cfg.AIRateLimit, cfg.AIRateWindow)

	aiClient := ai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	if !aiClient.Enabled() {
		log.Println("INFO: OPENAI_API_KEY not set, AI insights disabled")
	}

	// Router
	router := api.NewRouter(pool, cfg, limiter, aiClient)

	log.Println("API server running on port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
