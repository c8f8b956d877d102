// Drops every table the server owns, schema-migration bookkeeping
// included. Development reset tool.
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	if os.Getenv("ENVIRONMENT") == "prod" {
		log.Fatal("Refusing to drop tables in production")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = db.Close() }() // Error ignored: script exiting

	dropSQL := `
		DROP TABLE IF EXISTS suggestions CASCADE;
		DROP TABLE IF EXISTS documents CASCADE;
		DROP TABLE IF EXISTS streams CASCADE;
		DROP TABLE IF EXISTS votes CASCADE;
		DROP TABLE IF EXISTS messages CASCADE;
		DROP TABLE IF EXISTS chats CASCADE;
		DROP TABLE IF EXISTS schema_migrations CASCADE;
	`

	if _, err := db.Exec(dropSQL); err != nil {
		log.Fatalf("Failed to drop tables: %v", err)
	}

	fmt.Println("All tables dropped successfully")
}
