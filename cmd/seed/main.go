// Command main seeds the dwitter database with generated or fixture data.
package main

import (
	"context"
	"flag"
	"os"

	"dwitter/internal/config"
	"dwitter/internal/database"
	"dwitter/internal/observability"
	"dwitter/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of generated users")
	dweetsPerUser := flag.Int("dweets", 5, "Dweets per generated user")
	commentsPerDweet := flag.Int("comments", 3, "Comments per generated dweet")
	fixture := flag.String("fixture", "", "YAML fixture to load instead of generated data")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	randSeed := flag.Int64("seed", 0, "Random seed (0 picks one)")
	flag.Parse()

	log := observability.Logger
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.IsProduction() {
		log.Error("refusing to seed a production database")
		os.Exit(1)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	factory := seed.NewFactory(db, *randSeed)
	seeder := seed.NewSeeder(db, factory)

	if *shouldClean {
		if err := seeder.ClearAll(ctx); err != nil {
			log.Error("cleanup failed", "error", err)
			os.Exit(1)
		}
	}

	if *fixture != "" {
		fx, err := seed.LoadFixtureFile(*fixture)
		if err != nil {
			log.Error("failed to read fixture", "error", err)
			os.Exit(1)
		}
		if _, err := factory.ApplyFixture(ctx, fx); err != nil {
			log.Error("fixture seeding failed", "error", err)
			os.Exit(1)
		}
		log.Info("fixture loaded", "path", *fixture)
		return
	}

	if _, err := seeder.Generate(ctx, seed.Options{
		Users:            *numUsers,
		DweetsPerUser:    *dweetsPerUser,
		CommentsPerDweet: *commentsPerDweet,
	}); err != nil {
		log.Error("seeding failed", "error", err)
		os.Exit(1)
	}
	log.Info("seeding complete", "password", seed.DefaultPassword)
}
