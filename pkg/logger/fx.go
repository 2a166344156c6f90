package logger

import (
	"context"

	"go.uber.org/fx"
)

// Module provides the logger for fx dependency injection. The *Config
// comes from the application's config module.
var Module = fx.Module("logger",
	fx.Provide(ProvideLogger),
)

// ProvideLogger builds a logger from the supplied configuration and
// hooks a final Sync into shutdown.
func ProvideLogger(cfg *Config, lc fx.Lifecycle) (*Logger, error) {
	log, err := New(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = log.Sync()
			return nil
		},
	})

	return log, nil
}
