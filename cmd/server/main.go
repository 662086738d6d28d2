package main

import (
	"fmt"
	"log"

	"toolcrib/internal/config"
	"toolcrib/internal/database"
	"toolcrib/internal/server"
	"toolcrib/internal/storage"
)

func main() {
	cfg := config.Load()
	db := database.Open(cfg)

	saver, err := storage.NewSaver(cfg)
	if err != nil {
		log.Fatalf("storage init error: %v", err)
	}

	r := server.NewRouter(cfg, db, saver)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
