package main

import (
	"log"

	"pomodoro/solanum/internal/config"
	"pomodoro/solanum/internal/db"
	"pomodoro/solanum/internal/db/migrations"
)

func main() {
	cfg := config.Load()
	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database, migrations.Files); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	applied, err := db.AppliedMigrations(database)
	if err != nil {
		log.Fatalf("list migrations: %v", err)
	}
	for _, name := range applied {
		log.Printf("applied %s", name)
	}
	log.Printf("migrations applied successfully to %s", cfg.DBPath)
}
