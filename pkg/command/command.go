package command

import (
	"context"
	"fmt"

	"hookbot/pkg/discord"
	"hookbot/pkg/interaction"
)

// Handler runs a leaf command and produces its response.
type Handler func(ctx context.Context, ic *interaction.Interaction, opts Options) (*interaction.Response, error)

// AutocompleteProvider suggests choices for a partially typed option
// value.
type AutocompleteProvider func(ctx context.Context, ic *interaction.Interaction, value string) ([]interaction.Choice, error)

// Command is one node of the command tree: either a leaf with a handler
// or a group with children, never both. Commands are built once before
// registration and read-only afterwards.
type Command struct {
	Name        string
	Description string
	Type        discord.CommandType

	Handler  Handler
	Children []*Command

	Options      []*Option
	Autocomplete map[string]AutocompleteProvider

	Contexts         []discord.ContextType
	IntegrationTypes []discord.IntegrationType

	// AutoDefer acks the interaction before the handler runs, trading
	// the synchronous response path for freedom from the three-second
	// window.
	AutoDefer      bool
	DeferEphemeral bool

	Locale *discord.Locale
}

// New creates a chat-input leaf command.
func New(name, description string, handler Handler) *Command {
	return &Command{
		Name:        name,
		Description: description,
		Type:        discord.CommandChatInput,
		Handler:     handler,
	}
}

// NewGroup creates a chat-input group node whose children are invoked
// as sub-commands.
func NewGroup(name, description string, children ...*Command) *Command {
	return &Command{
		Name:        name,
		Description: description,
		Type:        discord.CommandChatInput,
		Children:    children,
	}
}

// NewContextMenu creates a user or message context-menu command.
// Context-menu commands carry no description and no options.
func NewContextMenu(name string, t discord.CommandType, handler Handler) *Command {
	return &Command{Name: name, Type: t, Handler: handler}
}

// WithOptions sets the declared options, in the order they will appear
// to users.
func (c *Command) WithOptions(opts ...*Option) *Command {
	c.Options = opts
	return c
}

// WithAutocomplete registers a suggestion provider for the named
// option.
func (c *Command) WithAutocomplete(option string, p AutocompleteProvider) *Command {
	if c.Autocomplete == nil {
		c.Autocomplete = make(map[string]AutocompleteProvider)
	}
	c.Autocomplete[option] = p
	return c
}

// WithAutoDefer acks the interaction before the handler runs.
func (c *Command) WithAutoDefer(ephemeral bool) *Command {
	c.AutoDefer = true
	c.DeferEphemeral = ephemeral
	return c
}

// WithContexts restricts where the command can be invoked.
func (c *Command) WithContexts(contexts ...discord.ContextType) *Command {
	c.Contexts = contexts
	return c
}

// WithIntegrationTypes restricts how the command's application can be
// installed.
func (c *Command) WithIntegrationTypes(types ...discord.IntegrationType) *Command {
	c.IntegrationTypes = types
	return c
}

// WithLocale attaches name and description translations.
func (c *Command) WithLocale(l *discord.Locale) *Command {
	c.Locale = l
	return c
}

// validate checks the node and its subtree. depth 0 is a top-level
// command; Discord allows two levels of nesting below that.
func (c *Command) validate(depth int) error {
	if c.Name == "" {
		return fmt.Errorf("command has no name")
	}
	if c.Handler != nil && len(c.Children) > 0 {
		return fmt.Errorf("command %q has both a handler and sub-commands", c.Name)
	}
	if c.Handler == nil && len(c.Children) == 0 {
		return fmt.Errorf("command %q has neither a handler nor sub-commands", c.Name)
	}
	if len(c.Children) > 0 && len(c.Options) > 0 {
		return fmt.Errorf("command %q is a group and cannot declare its own options", c.Name)
	}
	if depth > 0 && c.Type != discord.CommandChatInput {
		return fmt.Errorf("command %q: sub-commands must be chat-input", c.Name)
	}
	if c.Type == discord.CommandChatInput && c.Description == "" {
		return fmt.Errorf("command %q has no description", c.Name)
	}
	if c.Type != discord.CommandChatInput {
		if len(c.Children) > 0 {
			return fmt.Errorf("command %q: only chat-input commands have sub-commands", c.Name)
		}
		if len(c.Options) > 0 {
			return fmt.Errorf("command %q: only chat-input commands have options", c.Name)
		}
		if len(c.Autocomplete) > 0 {
			return fmt.Errorf("command %q: only chat-input commands have autocomplete", c.Name)
		}
	}
	if depth > 2 {
		return fmt.Errorf("command %q nests deeper than Discord allows", c.Name)
	}

	names := make(map[string]bool, len(c.Options))
	for _, o := range c.Options {
		if err := o.validate(); err != nil {
			return fmt.Errorf("command %q: %w", c.Name, err)
		}
		if names[o.Name] {
			return fmt.Errorf("command %q: duplicate option %q", c.Name, o.Name)
		}
		names[o.Name] = true
	}
	for name := range c.Autocomplete {
		opt := c.option(name)
		if opt == nil {
			return fmt.Errorf("command %q: autocomplete provider for undeclared option %q", c.Name, name)
		}
		if opt.Enum != nil {
			return fmt.Errorf("command %q: option %q cannot have both autocomplete and fixed choices", c.Name, name)
		}
	}

	childNames := make(map[string]bool, len(c.Children))
	for _, child := range c.Children {
		if childNames[child.Name] {
			return fmt.Errorf("command %q: duplicate sub-command %q", c.Name, child.Name)
		}
		childNames[child.Name] = true
		if err := child.validate(depth + 1); err != nil {
			return err
		}
	}
	return nil
}

// option returns the declared option with the given name, or nil.
func (c *Command) option(name string) *Option {
	for _, o := range c.Options {
		if o.Name == name {
			return o
		}
	}
	return nil
}

// child returns the sub-command with the given name, or nil.
func (c *Command) child(name string) *Command {
	for _, ch := range c.Children {
		if ch.Name == name {
			return ch
		}
	}
	return nil
}

// IsGroup reports whether the node routes to sub-commands instead of a
// handler.
func (c *Command) IsGroup() bool {
	return len(c.Children) > 0
}

// marshalOptions serializes the node's parameter list: nested
// sub-command descriptors for a group, option descriptors for a leaf.
func (c *Command) marshalOptions() []wireOption {
	if c.IsGroup() {
		opts := make([]wireOption, 0, len(c.Children))
		for _, child := range c.Children {
			opts = append(opts, child.marshalSubcommand())
		}
		return opts
	}
	opts := make([]wireOption, 0, len(c.Options))
	for _, o := range c.Options {
		_, auto := c.Autocomplete[o.Name]
		opts = append(opts, o.marshalWire(auto))
	}
	return opts
}

func (c *Command) marshalSubcommand() wireOption {
	t := discord.OptionSubCommand
	if c.IsGroup() {
		t = discord.OptionSubCommandGroup
	}
	w := wireOption{
		Type:        t,
		Name:        c.Name,
		Description: c.Description,
		Options:     c.marshalOptions(),
	}
	if c.Locale != nil {
		w.NameLocalizations = c.Locale.Names
		w.DescriptionLocalizations = c.Locale.Descriptions
	}
	return w
}

// wireCommand is the registration wire shape of a top-level command.
type wireCommand struct {
	Name                     string                    `json:"name"`
	NameLocalizations        discord.LocaleMap         `json:"name_localizations,omitempty"`
	Type                     discord.CommandType       `json:"type"`
	Description              string                    `json:"description,omitempty"`
	DescriptionLocalizations discord.LocaleMap         `json:"description_localizations,omitempty"`
	Options                  []wireOption              `json:"options,omitempty"`
	Contexts                 []discord.ContextType     `json:"contexts,omitempty"`
	IntegrationTypes         []discord.IntegrationType `json:"integration_types,omitempty"`
}

func (c *Command) marshalWire() wireCommand {
	w := wireCommand{
		Name:             c.Name,
		Type:             c.Type,
		Description:      c.Description,
		Options:          c.marshalOptions(),
		Contexts:         c.Contexts,
		IntegrationTypes: c.IntegrationTypes,
	}
	if c.Locale != nil {
		w.NameLocalizations = c.Locale.Names
		w.DescriptionLocalizations = c.Locale.Descriptions
	}
	return w
}
