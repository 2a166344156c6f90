package command

import (
	"encoding/json"
	"fmt"

	"hookbot/pkg/discord"
)

// EnumMember is one entry of a fixed choice set. Label is what the user
// sees, Key is what travels on the wire, Value is what the handler
// receives when the key comes back.
type EnumMember struct {
	Label string
	Key   any
	Value any
}

// Enum is an ordered, closed choice set for an option. The wire type of
// an enum option follows the key type, not the declared kind.
type Enum struct {
	members []EnumMember
	wire    discord.OptionType
}

// NewEnum builds a choice set. All keys must share one primitive type
// (string, int64 or float64) and be distinct.
func NewEnum(members ...EnumMember) (*Enum, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("enum has no members")
	}
	if len(members) > 25 {
		return nil, fmt.Errorf("enum has %d members, the limit is 25", len(members))
	}

	wire, err := enumWireType(members[0].Key)
	if err != nil {
		return nil, fmt.Errorf("enum member %q: %w", members[0].Label, err)
	}
	seen := make(map[any]bool, len(members))
	for _, m := range members {
		if m.Label == "" {
			return nil, fmt.Errorf("enum member with key %v has no label", m.Key)
		}
		mw, err := enumWireType(m.Key)
		if err != nil {
			return nil, fmt.Errorf("enum member %q: %w", m.Label, err)
		}
		if mw != wire {
			return nil, fmt.Errorf("enum member %q: key type differs from first member", m.Label)
		}
		if seen[m.Key] {
			return nil, fmt.Errorf("enum member %q: duplicate key %v", m.Label, m.Key)
		}
		seen[m.Key] = true
	}

	return &Enum{members: members, wire: wire}, nil
}

func enumWireType(key any) (discord.OptionType, error) {
	switch key.(type) {
	case string:
		return discord.OptionString, nil
	case int, int64:
		return discord.OptionInteger, nil
	case float64:
		return discord.OptionNumber, nil
	default:
		return 0, fmt.Errorf("key %v (%T) is not a string, int or float", key, key)
	}
}

// compatibleWith rejects enums whose key type contradicts the option's
// declared kind. Reference kinds cannot carry choice sets at all.
func (e *Enum) compatibleWith(k Kind) error {
	switch k {
	case KindString:
		if e.wire != discord.OptionString {
			return fmt.Errorf("enum keys are not strings")
		}
	case KindInt:
		if e.wire != discord.OptionInteger {
			return fmt.Errorf("enum keys are not integers")
		}
	case KindFloat:
		if e.wire != discord.OptionNumber {
			return fmt.Errorf("enum keys are not floats")
		}
	default:
		return fmt.Errorf("kind %s cannot carry an enum", k)
	}
	return nil
}

func (e *Enum) wireType() discord.OptionType {
	return e.wire
}

// wireChoices expands the member list into choice descriptors, in
// declaration order.
func (e *Enum) wireChoices() []wireChoice {
	choices := make([]wireChoice, len(e.members))
	for i, m := range e.members {
		choices[i] = wireChoice{Name: m.Label, Value: m.Key}
	}
	return choices
}

// Lookup resolves an inbound raw key back to the member's value. A key
// outside the set means the payload disagrees with the registered
// schema.
func (e *Enum) Lookup(raw json.RawMessage) (any, error) {
	for _, m := range e.members {
		match, err := keyMatches(m.Key, raw)
		if err != nil {
			return nil, err
		}
		if match {
			return m.Value, nil
		}
	}
	return nil, fmt.Errorf("value %s is not a member of the choice set", string(raw))
}

func keyMatches(key any, raw json.RawMessage) (bool, error) {
	switch k := key.(type) {
	case string:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return false, fmt.Errorf("decoding choice value: %w", err)
		}
		return s == k, nil
	case int:
		var n int64
		if err := json.Unmarshal(raw, &n); err != nil {
			return false, fmt.Errorf("decoding choice value: %w", err)
		}
		return n == int64(k), nil
	case int64:
		var n int64
		if err := json.Unmarshal(raw, &n); err != nil {
			return false, fmt.Errorf("decoding choice value: %w", err)
		}
		return n == k, nil
	case float64:
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil {
			return false, fmt.Errorf("decoding choice value: %w", err)
		}
		return f == k, nil
	default:
		return false, fmt.Errorf("unsupported enum key type %T", key)
	}
}
