package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/forgo/gather/internal/config"
	"github.com/forgo/gather/internal/database"
	"github.com/forgo/gather/internal/service"
)

func main() {
	// Flags for customization
	events := flag.Int("events", 10, "Number of events to create")
	rsvps := flag.Int("rsvps", 30, "Number of RSVPs to create")
	category := flag.String("category", "", "Category for seeded events (random when empty)")
	prefix := flag.String("prefix", "seed_", "Prefix identifying seeded records")
	cleanup := flag.Bool("cleanup", false, "Delete previously seeded records instead of creating new ones")
	stats := flag.Bool("stats", false, "Print record counts and exit")

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	if err := database.Migrate(ctx, db, cfg.Database.MigrationsDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error applying migrations: %v\n", err)
		os.Exit(1)
	}

	seeder := service.NewSeederService(db)

	switch {
	case *stats:
		result, err := seeder.Stats(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stats: %v\n", err)
			os.Exit(1)
		}
		printJSON(result)

	case *cleanup:
		result, err := seeder.Cleanup(ctx, *prefix)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error cleaning up: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Removed seeded records with prefix %q in %dms\n", *prefix, result.Duration)

	default:
		eventResult, err := seeder.SeedEvents(ctx, service.SeedEventsRequest{
			Count:    *events,
			Category: *category,
			Prefix:   *prefix,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error seeding events: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Created %d events in %dms\n", eventResult.Created, eventResult.Duration)

		rsvpResult, err := seeder.SeedRSVPs(ctx, service.SeedRSVPsRequest{
			Count:  *rsvps,
			Prefix: *prefix,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error seeding rsvps: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Created %d rsvps in %dms\n", rsvpResult.Created, rsvpResult.Duration)
	}
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
