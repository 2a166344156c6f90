package rest

import (
	"go.uber.org/fx"

	"hookbot/pkg/config"
	"hookbot/pkg/logger"
)

// Module provides the REST client for fx dependency injection.
var Module = fx.Module("rest",
	fx.Provide(ProvideClient),
)

// ProvideClient builds the client from the configured bot token.
func ProvideClient(cfg *config.Config, log *logger.Logger) *Client {
	return New(cfg.App.Token, log)
}
