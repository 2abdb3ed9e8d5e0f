package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mynetwrk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mynetwrk-backend/internal/adapter/postgres/interactiontype"
	"github.com/heartmarshall/mynetwrk-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/mynetwrk-backend/internal/app/seeder"
	"github.com/heartmarshall/mynetwrk-backend/internal/config"
)

// Seed fills the reference tables. An empty phases list runs every phase.
func Seed(ctx context.Context, cfg *config.Config, logger *slog.Logger, seedCfg *seeder.Config, phases []string) error {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	p := seeder.NewPipeline(logger.With("component", "seeder"), user.New(pool), interactiontype.New(pool), *seedCfg)
	if err := p.Run(ctx, phases); err != nil {
		return err
	}
	if p.HasErrors() {
		return fmt.Errorf("seeding finished with errors")
	}
	return nil
}
