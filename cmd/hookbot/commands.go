package main

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"hookbot/pkg/command"
	"hookbot/pkg/discord"
	"hookbot/pkg/interaction"
)

// registerCommands wires the demo command set into the registry.
func registerCommands(reg *command.Registry) error {
	echoBounds, err := command.NewStringBounds(command.LenPtr(3), command.LenPtr(10))
	if err != nil {
		return err
	}
	echo := command.New("echo", "Echo a message back", handleEcho).
		WithOptions(
			command.NewOption("message", "What to say back", command.KindString).
				AsRequired().
				WithConstraint(echoBounds),
			command.NewOption("ephemeral", "Only you see the reply", command.KindBool),
		)

	rollBounds, err := command.NewIntegerBounds(command.IntPtr(2), command.IntPtr(1000))
	if err != nil {
		return err
	}
	roll := command.New("roll", "Roll a die", handleRoll).
		WithOptions(
			command.NewOption("sides", "Number of sides", command.KindInt).
				WithConstraint(rollBounds),
		)

	drinkEnum, err := command.NewEnum(
		command.EnumMember{Label: "Coffee", Key: "coffee", Value: "a cup of coffee"},
		command.EnumMember{Label: "Tea", Key: "tea", Value: "a pot of tea"},
		command.EnumMember{Label: "Water", Key: "water", Value: "a glass of water"},
	)
	if err != nil {
		return err
	}
	order := command.New("order", "Order a drink", handleOrder).
		WithOptions(
			command.NewOption("drink", "What to order", command.KindString).
				AsRequired().
				WithEnum(drinkEnum),
		)

	avatar := command.New("avatar", "Show a member's avatar", handleAvatar).
		WithOptions(
			command.NewOption("who", "Whose avatar to show", command.KindMember).AsRequired(),
		).
		WithContexts(discord.ContextGuild)

	quote := command.New("quote", "Quote a classic line", handleQuote).
		WithOptions(
			command.NewOption("topic", "Topic to quote about", command.KindString).AsRequired(),
		).
		WithAutocomplete("topic", suggestTopics)

	math := command.NewGroup("math", "Small arithmetic helpers",
		command.New("add", "Add two integers", handleAdd).
			WithOptions(
				command.NewOption("a", "First operand", command.KindInt).AsRequired(),
				command.NewOption("b", "Second operand", command.KindInt).AsRequired(),
			),
		command.New("mul", "Multiply two integers", handleMul).
			WithOptions(
				command.NewOption("a", "First operand", command.KindInt).AsRequired(),
				command.NewOption("b", "Second operand", command.KindInt).AsRequired(),
			),
	)

	whois := command.NewContextMenu("Who is this", discord.CommandUser, handleWhois)

	for _, cmd := range []*command.Command{echo, roll, order, avatar, quote, math, whois} {
		if err := reg.Register(cmd); err != nil {
			return err
		}
	}
	return nil
}

func handleEcho(ctx context.Context, ic *interaction.Interaction, opts command.Options) (*interaction.Response, error) {
	msg, _ := opts.String("message")
	resp := interaction.NewResponse(msg)
	if eph, _ := opts.Bool("ephemeral"); eph {
		resp.AsEphemeral()
	}
	return resp, nil
}

func handleRoll(ctx context.Context, ic *interaction.Interaction, opts command.Options) (*interaction.Response, error) {
	sides, ok := opts.Int("sides")
	if !ok {
		sides = 6
	}
	n := rand.Int63n(sides) + 1
	return interaction.NewResponse(fmt.Sprintf("🎲 %d (d%d)", n, sides)), nil
}

func handleOrder(ctx context.Context, ic *interaction.Interaction, opts command.Options) (*interaction.Response, error) {
	drink, _ := opts.String("drink")
	return interaction.NewResponse(fmt.Sprintf("Here you go: %s.", drink)), nil
}

func handleAvatar(ctx context.Context, ic *interaction.Interaction, opts command.Options) (*interaction.Response, error) {
	member, ok := opts.Member("who")
	if !ok {
		return nil, fmt.Errorf("member option missing")
	}

	asset, ok := member.GuildAvatar()
	if !ok {
		if member.User == nil {
			return nil, fmt.Errorf("member has no user record")
		}
		asset = member.User.Avatar()
	}

	embed := &discord.Embed{
		Title: member.DisplayName(),
		Image: &discord.EmbedMedia{URL: asset.URL(512)},
	}
	return interaction.NewResponse("").AddEmbed(embed), nil
}

var quotes = map[string]string{
	"time":    "Time is an illusion. Lunchtime doubly so.",
	"towels":  "A towel is about the most massively useful thing an interstellar hitchhiker can have.",
	"answers": "Forty-two.",
	"tea":     "Share and enjoy.",
}

func handleQuote(ctx context.Context, ic *interaction.Interaction, opts command.Options) (*interaction.Response, error) {
	topic, _ := opts.String("topic")
	q, ok := quotes[topic]
	if !ok {
		return interaction.NewResponse("No quote on that, sorry.").AsEphemeral(), nil
	}
	return interaction.NewResponse(q), nil
}

func suggestTopics(ctx context.Context, ic *interaction.Interaction, value string) ([]interaction.Choice, error) {
	var choices []interaction.Choice
	for topic := range quotes {
		if strings.HasPrefix(topic, strings.ToLower(value)) {
			choices = append(choices, interaction.Choice{Name: topic, Value: topic})
		}
	}
	return choices, nil
}

func handleAdd(ctx context.Context, ic *interaction.Interaction, opts command.Options) (*interaction.Response, error) {
	a, _ := opts.Int("a")
	b, _ := opts.Int("b")
	return interaction.NewResponse(fmt.Sprintf("%d + %d = %d", a, b, a+b)), nil
}

func handleMul(ctx context.Context, ic *interaction.Interaction, opts command.Options) (*interaction.Response, error) {
	a, _ := opts.Int("a")
	b, _ := opts.Int("b")
	return interaction.NewResponse(fmt.Sprintf("%d × %d = %d", a, b, a*b)), nil
}

func handleWhois(ctx context.Context, ic *interaction.Interaction, opts command.Options) (*interaction.Response, error) {
	if ic.Data == nil || ic.Data.TargetID == 0 {
		return nil, fmt.Errorf("context menu payload has no target")
	}
	user, err := ic.Resolved.User(ic.Data.TargetID)
	if err != nil {
		return nil, err
	}
	return interaction.NewResponse(fmt.Sprintf("%s (%s)", user.DisplayName(), user.Mention())).AsEphemeral(), nil
}
