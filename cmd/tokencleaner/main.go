// Command tokencleaner removes expired and long-revoked refresh tokens.
// It runs once and exits, meant to be driven by cron or a Kubernetes CronJob
// so cleanup never competes with the request path.
package main

import (
	"context"
	"log/slog"

	"bazaar/config"
	"bazaar/internal/domain/repository"
	logs "bazaar/internal/infra/log"
	"bazaar/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewTokenRepository,
		),
		fx.Invoke(runCleanup),
	).Run()
}

type cleanupParams struct {
	fx.In

	Ctx       context.Context
	Logger    *slog.Logger
	TokenRepo repository.TokenRepository
	Shutdown  fx.Shutdowner
}

func runCleanup(params cleanupParams) {
	go func() {
		removed, err := params.TokenRepo.CleanupExpired(params.Ctx)
		if err != nil {
			params.Logger.Error("Token cleanup failed", slog.Any("error", err))
			_ = params.Shutdown.Shutdown(fx.ExitCode(1))

			return
		}

		params.Logger.Info("Token cleanup completed", slog.Int64("removed", removed))
		_ = params.Shutdown.Shutdown()
	}()
}
