package command

import (
	"go.uber.org/fx"

	"hookbot/pkg/logger"
)

// Module provides the command registry for fx dependency injection.
// Applications register their commands in an fx.Invoke before the
// server starts.
var Module = fx.Module("command",
	fx.Provide(ProvideRegistry),
)

// ProvideRegistry builds an empty registry.
func ProvideRegistry(log *logger.Logger) *Registry {
	return NewRegistry(log)
}
