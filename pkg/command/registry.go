package command

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"hookbot/pkg/discord"
	"hookbot/pkg/logger"
)

// ErrUnknownCommand means an interaction named a command or sub-command
// path the registry does not hold.
var ErrUnknownCommand = errors.New("unknown command")

type registryKey struct {
	Type discord.CommandType
	Name string
}

// Registry holds the command tree. Commands are registered during
// startup and only read afterwards, so lookups take no lock.
type Registry struct {
	commands map[registryKey]*Command
	order    []*Command
	log      *logger.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(log *logger.Logger) *Registry {
	return &Registry{
		commands: make(map[registryKey]*Command),
		log:      log,
	}
}

// Register validates a command tree and adds it. Commands of different
// types may share a name; two commands of the same type may not.
func (r *Registry) Register(cmd *Command) error {
	if err := cmd.validate(0); err != nil {
		return err
	}
	key := registryKey{Type: cmd.Type, Name: cmd.Name}
	if _, exists := r.commands[key]; exists {
		return fmt.Errorf("command %q (type %d) registered twice", cmd.Name, cmd.Type)
	}
	r.commands[key] = cmd
	r.order = append(r.order, cmd)
	r.log.Debug("command registered",
		zap.String("name", cmd.Name),
		zap.Int("type", int(cmd.Type)),
		zap.Bool("group", cmd.IsGroup()),
	)
	return nil
}

// MustRegister is Register for startup wiring, panicking on schema
// errors.
func (r *Registry) MustRegister(cmd *Command) {
	if err := r.Register(cmd); err != nil {
		panic(err)
	}
}

// Lookup finds a top-level command by type and name.
func (r *Registry) Lookup(t discord.CommandType, name string) (*Command, bool) {
	cmd, ok := r.commands[registryKey{Type: t, Name: name}]
	return cmd, ok
}

// Len reports the number of registered top-level commands.
func (r *Registry) Len() int {
	return len(r.order)
}

// MarshalWire serializes every registered command into the bulk
// registration payload, in registration order.
func (r *Registry) MarshalWire() []wireCommand {
	out := make([]wireCommand, 0, len(r.order))
	for _, cmd := range r.order {
		out = append(out, cmd.marshalWire())
	}
	return out
}
