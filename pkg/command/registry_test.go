package command

import (
	"context"
	"encoding/json"
	"testing"

	"go.uber.org/zap"

	"hookbot/pkg/discord"
	"hookbot/pkg/interaction"
	"hookbot/pkg/logger"
)

func testLogger() *logger.Logger {
	return &logger.Logger{Logger: zap.NewNop()}
}

func noopHandler(ctx context.Context, ic *interaction.Interaction, opts Options) (*interaction.Response, error) {
	return interaction.NewResponse("ok"), nil
}

func TestRegister_HandlerXorChildren(t *testing.T) {
	reg := NewRegistry(testLogger())

	both := New("bad", "Has both", noopHandler)
	both.Children = []*Command{New("sub", "A sub", noopHandler)}
	if err := reg.Register(both); err == nil {
		t.Fatal("handler plus children should fail registration")
	}

	neither := &Command{Name: "empty", Description: "Nothing", Type: discord.CommandChatInput}
	if err := reg.Register(neither); err == nil {
		t.Fatal("no handler and no children should fail registration")
	}
}

func TestRegister_DuplicateNameSameTypeFails(t *testing.T) {
	reg := NewRegistry(testLogger())
	if err := reg.Register(New("ping", "Ping", noopHandler)); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := reg.Register(New("ping", "Ping again", noopHandler)); err == nil {
		t.Fatal("duplicate (type, name) should fail")
	}
	// Same name under a different command type is a distinct key.
	if err := reg.Register(NewContextMenu("ping", discord.CommandUser, noopHandler)); err != nil {
		t.Fatalf("same name, different type: %v", err)
	}
}

func TestRegister_AutocompleteValidation(t *testing.T) {
	reg := NewRegistry(testLogger())

	provider := func(ctx context.Context, ic *interaction.Interaction, value string) ([]interaction.Choice, error) {
		return nil, nil
	}

	undeclared := New("c1", "Cmd", noopHandler).WithAutocomplete("ghost", provider)
	if err := reg.Register(undeclared); err == nil {
		t.Fatal("autocomplete for undeclared option should fail")
	}

	e, err := NewEnum(EnumMember{Label: "A", Key: "a", Value: "a"})
	if err != nil {
		t.Fatalf("enum: %v", err)
	}
	clash := New("c2", "Cmd", noopHandler).
		WithOptions(NewOption("topic", "Topic", KindString).WithEnum(e)).
		WithAutocomplete("topic", provider)
	if err := reg.Register(clash); err == nil {
		t.Fatal("autocomplete plus fixed choices should fail")
	}

	menu := NewContextMenu("c3", discord.CommandUser, noopHandler)
	menu.Autocomplete = map[string]AutocompleteProvider{"x": provider}
	if err := reg.Register(menu); err == nil {
		t.Fatal("autocomplete on a context-menu command should fail")
	}
}

func TestMarshalWire_PreservesDeclarationOrder(t *testing.T) {
	reg := NewRegistry(testLogger())

	reg.MustRegister(New("zeta", "Last name, first registered", noopHandler).
		WithOptions(
			NewOption("b", "Second letter", KindString).AsRequired(),
			NewOption("a", "First letter", KindString),
		))
	reg.MustRegister(New("alpha", "First name, second registered", noopHandler))

	wire := reg.MarshalWire()
	if len(wire) != 2 {
		t.Fatalf("got %d commands, want 2", len(wire))
	}
	if wire[0].Name != "zeta" || wire[1].Name != "alpha" {
		t.Fatalf("registration order lost: %s, %s", wire[0].Name, wire[1].Name)
	}
	opts := wire[0].Options
	if len(opts) != 2 || opts[0].Name != "b" || opts[1].Name != "a" {
		t.Fatalf("option declaration order lost: %+v", opts)
	}
}

func TestMarshalWire_NestsSubcommandTrees(t *testing.T) {
	reg := NewRegistry(testLogger())

	inner := NewGroup("notes", "Note helpers",
		New("add", "Add a note", noopHandler).
			WithOptions(NewOption("text", "Note text", KindString).AsRequired()),
	)
	top := NewGroup("tools", "Tool box",
		New("ping", "Check liveness", noopHandler),
		inner,
	)
	reg.MustRegister(top)

	wire := reg.MarshalWire()
	data, err := json.Marshal(wire)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded []struct {
		Name    string `json:"name"`
		Options []struct {
			Type    int    `json:"type"`
			Name    string `json:"name"`
			Options []struct {
				Type int    `json:"type"`
				Name string `json:"name"`
			} `json:"options"`
		} `json:"options"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	opts := decoded[0].Options
	if opts[0].Type != int(discord.OptionSubCommand) || opts[0].Name != "ping" {
		t.Fatalf("first child should be SUB_COMMAND ping, got %+v", opts[0])
	}
	if opts[1].Type != int(discord.OptionSubCommandGroup) || opts[1].Name != "notes" {
		t.Fatalf("second child should be SUB_COMMAND_GROUP notes, got %+v", opts[1])
	}
	if len(opts[1].Options) != 1 || opts[1].Options[0].Name != "add" {
		t.Fatalf("nested sub-command missing: %+v", opts[1].Options)
	}
}

func TestRegister_GroupDepthLimit(t *testing.T) {
	reg := NewRegistry(testLogger())
	tooDeep := NewGroup("a", "L0",
		NewGroup("b", "L1",
			NewGroup("c", "L2",
				New("d", "L3", noopHandler),
			),
		),
	)
	if err := reg.Register(tooDeep); err == nil {
		t.Fatal("three levels of nesting should fail registration")
	}
}
