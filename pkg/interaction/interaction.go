// Package interaction models one inbound Discord interaction: the
// decoded request, its resolved entities, and the response lifecycle.
// An interaction moves Fresh -> Deferred -> Responded; illegal
// transitions error out before any network call is made, so a double
// respond can never reach Discord.
package interaction

import (
	"context"
	"errors"
	"fmt"

	"hookbot/pkg/discord"
	"hookbot/pkg/rest"
)

// State is the response lifecycle position of an interaction.
type State int

const (
	// StateFresh means no response has been sent yet.
	StateFresh State = iota
	// StateDeferred means the deferral ack went out and the original
	// response is still pending a patch.
	StateDeferred
	// StateResponded means the original response is final.
	StateResponded
)

func (s State) String() string {
	switch s {
	case StateFresh:
		return "fresh"
	case StateDeferred:
		return "deferred"
	case StateResponded:
		return "responded"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// ErrAlreadyResponded means the interaction already has its final
// response; a second respond or defer is a caller bug.
var ErrAlreadyResponded = errors.New("interaction already responded to")

// ErrNotDeferred means an original-response patch was attempted before
// the deferral ack.
var ErrNotDeferred = errors.New("interaction has not been deferred")

// Interaction is one inbound interaction request plus the client used
// to answer it out of band. It is not safe for concurrent use; one
// request is handled by one goroutine.
type Interaction struct {
	ID            discord.Snowflake
	ApplicationID discord.Snowflake
	Type          discord.InteractionType
	Token         string
	GuildID       discord.Snowflake
	ChannelID     discord.Snowflake
	Channel       *discord.Channel
	Member        *discord.Member
	User          *discord.User
	Locale        string
	GuildLocale   string
	Data          *discord.InteractionData
	Resolved      *Resolved

	state  State
	client *rest.Client
}

// New builds an Interaction from a decoded payload. The resolved tables
// are materialized up front so a malformed payload fails before any
// handler runs.
func New(p *discord.InteractionPayload, client *rest.Client) (*Interaction, error) {
	ic := &Interaction{
		ID:            p.ID,
		ApplicationID: p.ApplicationID,
		Type:          p.Type,
		Token:         p.Token,
		GuildID:       p.GuildID,
		ChannelID:     p.ChannelID,
		Channel:       p.Channel,
		Member:        p.Member,
		User:          p.User,
		Locale:        p.Locale,
		GuildLocale:   p.GuildLocale,
		Data:          p.Data,
		state:         StateFresh,
		client:        client,
	}
	if ic.Member != nil {
		ic.Member.GuildID = p.GuildID
		if ic.User == nil {
			ic.User = ic.Member.User
		}
	}

	var resolvedPayload *discord.ResolvedPayload
	if p.Data != nil {
		resolvedPayload = p.Data.Resolved
	}
	resolved, err := newResolved(resolvedPayload, p.GuildID)
	if err != nil {
		return nil, err
	}
	ic.Resolved = resolved
	return ic, nil
}

// Sender returns the invoking user, whether the interaction came from a
// guild or a DM.
func (ic *Interaction) Sender() *discord.User {
	return ic.User
}

// State reports where the interaction is in its response lifecycle.
func (ic *Interaction) State() State {
	return ic.state
}

// Defer sends the deferral ack, buying the handler time past the
// three-second response window. The user sees a loading message until
// the original response is patched in. Ephemeral marks the eventual
// response as invoker-only.
func (ic *Interaction) Defer(ctx context.Context, ephemeral bool) error {
	env := &Envelope{Type: discord.ResponseDeferredChannelMessageWithSource}
	if ephemeral {
		env.Data = &EnvelopeData{Flags: discord.FlagEphemeral}
	}
	return ic.ack(ctx, env)
}

// DeferUpdate sends the message-less deferral ack: no loading state is
// shown and the patched response replaces the message the interaction
// came from.
func (ic *Interaction) DeferUpdate(ctx context.Context) error {
	return ic.ack(ctx, &Envelope{Type: discord.ResponseDeferredUpdateMessage})
}

func (ic *Interaction) ack(ctx context.Context, env *Envelope) error {
	switch ic.state {
	case StateDeferred:
		return fmt.Errorf("defer: %w: already deferred", ErrAlreadyResponded)
	case StateResponded:
		return fmt.Errorf("defer: %w", ErrAlreadyResponded)
	}

	path := fmt.Sprintf("/interactions/%s/%s/callback", ic.ID, ic.Token)
	if _, err := ic.client.Post(ctx, path, env, nil); err != nil {
		return fmt.Errorf("deferring interaction: %w", err)
	}
	ic.state = StateDeferred
	return nil
}

// PatchOriginal edits the deferred original response into its final
// form. The ephemeral flag is fixed by the deferral ack, so the patch
// body never carries it.
func (ic *Interaction) PatchOriginal(ctx context.Context, resp *Response) error {
	switch ic.state {
	case StateFresh:
		return fmt.Errorf("patch original: %w", ErrNotDeferred)
	case StateResponded:
		return fmt.Errorf("patch original: %w", ErrAlreadyResponded)
	}
	if err := resp.validate(); err != nil {
		return err
	}

	path := fmt.Sprintf("/webhooks/%s/%s/messages/@original", ic.ApplicationID, ic.Token)
	if _, err := ic.client.Patch(ctx, path, resp.webhookPayload(false), resp.Files); err != nil {
		return fmt.Errorf("patching original response: %w", err)
	}
	ic.state = StateResponded
	return nil
}

// Followup posts an additional message after the original response.
// Unlike the original response it can be sent any number of times.
func (ic *Interaction) Followup(ctx context.Context, resp *Response) error {
	if ic.state == StateFresh {
		return fmt.Errorf("followup: interaction has no response yet")
	}
	if err := resp.validate(); err != nil {
		return err
	}

	path := fmt.Sprintf("/webhooks/%s/%s", ic.ApplicationID, ic.Token)
	if _, err := ic.client.Post(ctx, path, resp.webhookPayload(true), resp.Files); err != nil {
		return fmt.Errorf("sending followup: %w", err)
	}
	return nil
}

// MarkResponded records that the original response went out in the
// synchronous HTTP body. Dispatch calls this right before writing the
// envelope.
func (ic *Interaction) MarkResponded() error {
	if ic.state != StateFresh {
		return fmt.Errorf("respond: %w", ErrAlreadyResponded)
	}
	ic.state = StateResponded
	return nil
}
