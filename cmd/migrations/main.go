package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/vncsmyrnk/pollstate/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/pollstate/internal/config"
)

// Usage: migrations <name>   e.g. "create_catalog.up", or "all" for every up migration.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("a migration name is required.")
	}
	migrationName := os.Args[1]

	if err := config.LoadEnv(); err != nil {
		log.Fatal(err)
	}

	cfg, err := config.Load("migrations", append([]string{"-source", config.SourcePostgres}, os.Args[2:]...))
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := postgres.Open(ctx, cfg.Postgres.ConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if migrationName == "all" {
		if err := postgres.MigrateUp(ctx, db); err != nil {
			log.Fatal(err)
		}
		fmt.Println("All migrations executed successfully.")
		return
	}

	fileContent, err := postgres.MigrationSQL(migrationName)
	if err != nil {
		log.Fatal(err)
	}

	if _, err := db.ExecContext(ctx, string(fileContent)); err != nil {
		log.Fatalf("Failed to execute SQL file: %v", err)
	}

	fmt.Println("Migration file executed successfully.")
}
