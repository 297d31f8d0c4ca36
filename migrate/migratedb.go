package main

import (
	"log"

	"github.com/hurairaz/sqlite-crud-api/config"
	"github.com/hurairaz/sqlite-crud-api/database"
)

func main() {
	// Load environment variables
	if err := config.LoadEnvVars(); err != nil {
		log.Fatalf("Error loading environment variables: %v", err)
	}

	// Connect to DB and get the local DB instance
	db, err := database.ConnectToDB(config.DBPath())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Creating database tables...")

	if err := database.CreateTables(db); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	log.Println("Database tables created successfully!")
}
