package bot

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"hookbot/pkg/config"
	"hookbot/pkg/logger"
)

// Module provides the interactions server for fx dependency injection.
var Module = fx.Module("bot",
	fx.Provide(NewServer),
	fx.Invoke(registerLifecycle),
)

func registerLifecycle(lc fx.Lifecycle, s *Server, cfg *config.Config, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Commands.RegisterOnStartup {
				if err := s.RegisterCommands(ctx); err != nil {
					log.Error("startup command registration failed", zap.Error(err))
					return err
				}
			}
			return s.Start()
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return s.Stop(shutdownCtx)
		},
	})
}
