package main

import (
	"log"

	"github.com/joho/godotenv"

	"recipelens/adapters/datafile"
	"recipelens/internal/config"
	"recipelens/internal/session"
	"recipelens/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	tbl, err := datafile.NewReader(cfg.Dataset.Path).Read()
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	analysis, err := session.New(tbl, session.Options{
		Name:            cfg.Dataset.Name,
		DateStart:       cfg.Dataset.DateStart,
		DateEnd:         cfg.Dataset.DateEnd,
		StdThreshold:    cfg.Detection.StdThreshold,
		ZScoreThreshold: cfg.Detection.ZScoreThreshold,
	})
	if err != nil {
		log.Fatalf("Failed to initialize analysis session: %v", err)
	}

	server := ui.NewServer(analysis)
	log.Printf("Starting recipelens report server on port %s", cfg.Server.Port)
	log.Fatal(server.Start(":" + cfg.Server.Port))
}
