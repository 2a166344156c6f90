// Package command implements the command tree: option schemas, the
// registry, wire serialization for registration, and the resolver that
// turns an inbound payload into typed handler arguments.
package command

import (
	"fmt"

	"hookbot/pkg/discord"
)

// Kind is the declared data type of an option. It decides both the wire
// type sent to Discord and how the resolver materializes the value.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindUser
	KindMember
	KindChannel
	KindRole
	KindMentionable
	KindAttachment
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindUser:
		return "user"
	case KindMember:
		return "member"
	case KindChannel:
		return "channel"
	case KindRole:
		return "role"
	case KindMentionable:
		return "mentionable"
	case KindAttachment:
		return "attachment"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// wireType maps a declared kind to its wire option type. Discord has no
// member type, so members travel as USER and the resolver materializes
// the member record instead. Anything unrecognized degrades to STRING.
func (k Kind) wireType() discord.OptionType {
	switch k {
	case KindInt:
		return discord.OptionInteger
	case KindFloat:
		return discord.OptionNumber
	case KindBool:
		return discord.OptionBoolean
	case KindUser, KindMember:
		return discord.OptionUser
	case KindChannel:
		return discord.OptionChannel
	case KindRole:
		return discord.OptionRole
	case KindMentionable:
		return discord.OptionMentionable
	case KindAttachment:
		return discord.OptionAttachment
	default:
		return discord.OptionString
	}
}

// Option is one declared command parameter. Options are plain data
// built once at registration; nothing mutates them afterwards.
type Option struct {
	Name        string
	Description string
	Kind        Kind
	Required    bool
	Enum        *Enum
	Constraints []Constraint
	Locale      *discord.Locale
}

// NewOption creates an option with the given name, description and
// declared kind.
func NewOption(name, description string, kind Kind) *Option {
	return &Option{Name: name, Description: description, Kind: kind}
}

// AsRequired marks the option as mandatory.
func (o *Option) AsRequired() *Option {
	o.Required = true
	return o
}

// WithEnum restricts the option to a fixed choice set.
func (o *Option) WithEnum(e *Enum) *Option {
	o.Enum = e
	return o
}

// WithConstraint attaches a value constraint. Constraints that do not
// apply to the declared kind are ignored; the declared kind wins.
func (o *Option) WithConstraint(c Constraint) *Option {
	o.Constraints = append(o.Constraints, c)
	return o
}

// WithLocale attaches name and description translations.
func (o *Option) WithLocale(l *discord.Locale) *Option {
	o.Locale = l
	return o
}

func (o *Option) validate() error {
	if o.Name == "" {
		return fmt.Errorf("option has no name")
	}
	if o.Description == "" {
		return fmt.Errorf("option %q has no description", o.Name)
	}
	if o.Enum != nil {
		if err := o.Enum.compatibleWith(o.Kind); err != nil {
			return fmt.Errorf("option %q: %w", o.Name, err)
		}
	}
	return nil
}

// marshalWire serializes the option into its registration descriptor.
// Serialization never mutates the option and is safe to repeat.
func (o *Option) marshalWire(autocomplete bool) wireOption {
	w := wireOption{
		Type:         o.Kind.wireType(),
		Name:         o.Name,
		Description:  o.Description,
		Required:     o.Required,
		Autocomplete: autocomplete,
	}
	if o.Locale != nil {
		w.NameLocalizations = o.Locale.Names
		w.DescriptionLocalizations = o.Locale.Descriptions
	}
	if o.Enum != nil {
		w.Type = o.Enum.wireType()
		w.Choices = o.Enum.wireChoices()
	}
	for _, c := range o.Constraints {
		if c.appliesTo(o.Kind) {
			c.apply(&w)
		}
	}
	return w
}

// wireOption is the registration wire shape of one option descriptor.
// Sub-command and sub-command-group nodes reuse it with nested Options.
type wireOption struct {
	Type                     discord.OptionType `json:"type"`
	Name                     string             `json:"name"`
	NameLocalizations        discord.LocaleMap  `json:"name_localizations,omitempty"`
	Description              string             `json:"description,omitempty"`
	DescriptionLocalizations discord.LocaleMap  `json:"description_localizations,omitempty"`
	Required                 bool               `json:"required,omitempty"`
	Choices                  []wireChoice       `json:"choices,omitempty"`
	Options                  []wireOption       `json:"options,omitempty"`
	MinValue                 *float64           `json:"min_value,omitempty"`
	MaxValue                 *float64           `json:"max_value,omitempty"`
	MinLength                *int               `json:"min_length,omitempty"`
	MaxLength                *int               `json:"max_length,omitempty"`
	Autocomplete             bool               `json:"autocomplete,omitempty"`
}

// wireChoice is one fixed choice in a registration descriptor.
type wireChoice struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}
