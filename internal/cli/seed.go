package cli

import (
	"context"
	"log"

	"heritage-quiz-service/internal/config"
	"heritage-quiz-service/internal/infra/memory"
	pgstore "heritage-quiz-service/internal/infra/postgres"
	"github.com/spf13/cobra"
)

// NewSeedCmd loads the built-in heritage question bank into Postgres.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the built-in question bank into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), *configPath)
		},
	}
}

func runSeed(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := runMigrationsWithConfig(ctx, cfg); err != nil {
		return err
	}

	db, err := openBunDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := pgstore.SeedBank(ctx, db, memory.HeritageBank())
	if err != nil {
		return err
	}
	log.Printf("seeded %d categories", n)
	return nil
}
