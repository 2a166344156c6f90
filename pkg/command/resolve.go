package command

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"hookbot/pkg/discord"
	"hookbot/pkg/interaction"
)

// Options is the materialized option set handed to a handler: declared
// name to typed value. Reference-typed options hold the resolved entity
// itself, never a bare snowflake. Optional options the user omitted are
// simply absent.
type Options map[string]any

// String returns the named string option.
func (o Options) String(name string) (string, bool) {
	v, ok := o[name].(string)
	return v, ok
}

// Int returns the named integer option.
func (o Options) Int(name string) (int64, bool) {
	v, ok := o[name].(int64)
	return v, ok
}

// Float returns the named float option.
func (o Options) Float(name string) (float64, bool) {
	v, ok := o[name].(float64)
	return v, ok
}

// Bool returns the named boolean option.
func (o Options) Bool(name string) (bool, bool) {
	v, ok := o[name].(bool)
	return v, ok
}

// User returns the named user option.
func (o Options) User(name string) (*discord.User, bool) {
	v, ok := o[name].(*discord.User)
	return v, ok
}

// Member returns the named member option.
func (o Options) Member(name string) (*discord.Member, bool) {
	v, ok := o[name].(*discord.Member)
	return v, ok
}

// Channel returns the named channel option.
func (o Options) Channel(name string) (*discord.Channel, bool) {
	v, ok := o[name].(*discord.Channel)
	return v, ok
}

// Role returns the named role option.
func (o Options) Role(name string) (*discord.Role, bool) {
	v, ok := o[name].(*discord.Role)
	return v, ok
}

// Attachment returns the named attachment option.
func (o Options) Attachment(name string) (*discord.Attachment, bool) {
	v, ok := o[name].(*discord.Attachment)
	return v, ok
}

// Mentionable returns the named mentionable option; the value is a
// *discord.Role, *discord.Member or *discord.User.
func (o Options) Mentionable(name string) (any, bool) {
	v, ok := o[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, ok
}

// Invocation is a fully resolved command call: the leaf that will run
// and its typed options.
type Invocation struct {
	Command *Command
	Path    []string
	Options Options
}

// Resolve walks an application-command payload down the registered tree
// and materializes the handler's options. Any disagreement between the
// payload and the registered schema fails the request.
func Resolve(reg *Registry, ic *interaction.Interaction) (*Invocation, error) {
	leaf, path, rawOpts, err := descend(reg, ic)
	if err != nil {
		return nil, err
	}

	opts := make(Options, len(rawOpts))
	for _, raw := range rawOpts {
		decl := leaf.option(raw.Name)
		if decl == nil {
			return nil, fmt.Errorf("command %s: payload names undeclared option %q", strings.Join(path, " "), raw.Name)
		}
		val, err := materialize(decl, raw, ic.Resolved)
		if err != nil {
			return nil, fmt.Errorf("command %s: option %q: %w", strings.Join(path, " "), raw.Name, err)
		}
		opts[raw.Name] = val
	}
	for _, decl := range leaf.Options {
		if decl.Required {
			if _, ok := opts[decl.Name]; !ok {
				return nil, fmt.Errorf("command %s: required option %q missing from payload", strings.Join(path, " "), decl.Name)
			}
		}
	}

	return &Invocation{Command: leaf, Path: path, Options: opts}, nil
}

// ResolveAutocomplete walks an autocomplete payload to the leaf, finds
// the focused option and asks its provider for suggestions. The result
// is capped at the 25-choice platform limit.
func ResolveAutocomplete(ctx context.Context, reg *Registry, ic *interaction.Interaction) ([]interaction.Choice, error) {
	leaf, path, rawOpts, err := descend(reg, ic)
	if err != nil {
		return nil, err
	}

	var focused *discord.RawOption
	for i := range rawOpts {
		if rawOpts[i].Focused {
			focused = &rawOpts[i]
			break
		}
	}
	if focused == nil {
		return nil, fmt.Errorf("command %s: autocomplete payload has no focused option", strings.Join(path, " "))
	}
	provider, ok := leaf.Autocomplete[focused.Name]
	if !ok {
		return nil, fmt.Errorf("command %s: no autocomplete provider for option %q", strings.Join(path, " "), focused.Name)
	}

	choices, err := provider(ctx, ic, focusedValue(*focused))
	if err != nil {
		return nil, err
	}
	if len(choices) > 25 {
		choices = choices[:25]
	}
	return choices, nil
}

// descend finds the top-level command for the payload and follows the
// sub-command path to the leaf, returning the leaf's flat option list.
func descend(reg *Registry, ic *interaction.Interaction) (*Command, []string, []discord.RawOption, error) {
	if ic.Data == nil {
		return nil, nil, nil, fmt.Errorf("interaction %s has no command data", ic.ID)
	}
	cmd, ok := reg.Lookup(ic.Data.Type, ic.Data.Name)
	if !ok {
		return nil, nil, nil, fmt.Errorf("%w: %q (type %d)", ErrUnknownCommand, ic.Data.Name, ic.Data.Type)
	}

	path := []string{cmd.Name}
	rawOpts := ic.Data.Options
	for cmd.IsGroup() {
		if len(rawOpts) != 1 || !isSubcommandOption(rawOpts[0].Type) {
			return nil, nil, nil, fmt.Errorf("command %s: group invoked without a sub-command", strings.Join(path, " "))
		}
		child := cmd.child(rawOpts[0].Name)
		if child == nil {
			return nil, nil, nil, fmt.Errorf("%w: %s %s", ErrUnknownCommand, strings.Join(path, " "), rawOpts[0].Name)
		}
		path = append(path, child.Name)
		rawOpts = rawOpts[0].Options
		cmd = child
	}
	return cmd, path, rawOpts, nil
}

func isSubcommandOption(t discord.OptionType) bool {
	return t == discord.OptionSubCommand || t == discord.OptionSubCommandGroup
}

// materialize turns one raw option into the typed value the handler
// sees, swapping reference kinds for their resolved entities.
func materialize(decl *Option, raw discord.RawOption, resolved *interaction.Resolved) (any, error) {
	if decl.Enum != nil {
		return decl.Enum.Lookup(raw.Value)
	}

	switch decl.Kind {
	case KindString:
		var s string
		if err := json.Unmarshal(raw.Value, &s); err != nil {
			return nil, fmt.Errorf("decoding string value: %w", err)
		}
		return s, nil
	case KindInt:
		var n int64
		if err := json.Unmarshal(raw.Value, &n); err != nil {
			return nil, fmt.Errorf("decoding integer value: %w", err)
		}
		return n, nil
	case KindFloat:
		var f float64
		if err := json.Unmarshal(raw.Value, &f); err != nil {
			return nil, fmt.Errorf("decoding float value: %w", err)
		}
		return f, nil
	case KindBool:
		var b bool
		if err := json.Unmarshal(raw.Value, &b); err != nil {
			return nil, fmt.Errorf("decoding boolean value: %w", err)
		}
		return b, nil
	case KindUser:
		id, err := decodeSnowflake(raw.Value)
		if err != nil {
			return nil, err
		}
		return resolved.User(id)
	case KindMember:
		id, err := decodeSnowflake(raw.Value)
		if err != nil {
			return nil, err
		}
		return resolved.Member(id)
	case KindChannel:
		id, err := decodeSnowflake(raw.Value)
		if err != nil {
			return nil, err
		}
		return resolved.Channel(id)
	case KindRole:
		id, err := decodeSnowflake(raw.Value)
		if err != nil {
			return nil, err
		}
		return resolved.Role(id)
	case KindMentionable:
		id, err := decodeSnowflake(raw.Value)
		if err != nil {
			return nil, err
		}
		return resolved.Mentionable(id)
	case KindAttachment:
		id, err := decodeSnowflake(raw.Value)
		if err != nil {
			return nil, err
		}
		return resolved.Attachment(id)
	default:
		return nil, fmt.Errorf("unsupported option kind %s", decl.Kind)
	}
}

func decodeSnowflake(raw json.RawMessage) (discord.Snowflake, error) {
	var id discord.Snowflake
	if err := json.Unmarshal(raw, &id); err != nil {
		return 0, fmt.Errorf("decoding entity id: %w", err)
	}
	return id, nil
}

// focusedValue returns the partial input as typed by the user. Numeric
// partials arrive as JSON numbers; providers get the textual form
// either way.
func focusedValue(raw discord.RawOption) string {
	var s string
	if err := json.Unmarshal(raw.Value, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw.Value))
}
