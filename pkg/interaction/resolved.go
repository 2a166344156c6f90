package interaction

import (
	"errors"
	"fmt"

	"hookbot/pkg/discord"
)

// ErrUnresolved means a reference-typed option named an entity that the
// request's resolved tables do not contain. The payload is malformed;
// the request fails rather than handing the handler a nil entity.
var ErrUnresolved = errors.New("entity missing from resolved data")

// Resolved gives typed access to the entities Discord ships alongside a
// command payload. Member records are stitched back together with their
// user object, which the wire format strips out.
type Resolved struct {
	users       map[discord.Snowflake]*discord.User
	members     map[discord.Snowflake]*discord.Member
	channels    map[discord.Snowflake]*discord.Channel
	roles       map[discord.Snowflake]*discord.Role
	messages    map[discord.Snowflake]*discord.PartialMessage
	attachments map[discord.Snowflake]*discord.Attachment
}

func newResolved(p *discord.ResolvedPayload, guildID discord.Snowflake) (*Resolved, error) {
	r := &Resolved{
		users:       make(map[discord.Snowflake]*discord.User),
		members:     make(map[discord.Snowflake]*discord.Member),
		channels:    make(map[discord.Snowflake]*discord.Channel),
		roles:       make(map[discord.Snowflake]*discord.Role),
		messages:    make(map[discord.Snowflake]*discord.PartialMessage),
		attachments: make(map[discord.Snowflake]*discord.Attachment),
	}
	if p == nil {
		return r, nil
	}

	for key, u := range p.Users {
		id, err := discord.ParseSnowflake(key)
		if err != nil {
			return nil, fmt.Errorf("resolved user key %q: %w", key, err)
		}
		r.users[id] = u
	}
	for key, m := range p.Members {
		id, err := discord.ParseSnowflake(key)
		if err != nil {
			return nil, fmt.Errorf("resolved member key %q: %w", key, err)
		}
		u, ok := r.users[id]
		if !ok {
			return nil, fmt.Errorf("%w: user %s for resolved member", ErrUnresolved, id)
		}
		m.User = u
		m.GuildID = guildID
		r.members[id] = m
	}
	for key, c := range p.Channels {
		id, err := discord.ParseSnowflake(key)
		if err != nil {
			return nil, fmt.Errorf("resolved channel key %q: %w", key, err)
		}
		r.channels[id] = c
	}
	for key, role := range p.Roles {
		id, err := discord.ParseSnowflake(key)
		if err != nil {
			return nil, fmt.Errorf("resolved role key %q: %w", key, err)
		}
		r.roles[id] = role
	}
	for key, msg := range p.Messages {
		id, err := discord.ParseSnowflake(key)
		if err != nil {
			return nil, fmt.Errorf("resolved message key %q: %w", key, err)
		}
		r.messages[id] = msg
	}
	for key, a := range p.Attachments {
		id, err := discord.ParseSnowflake(key)
		if err != nil {
			return nil, fmt.Errorf("resolved attachment key %q: %w", key, err)
		}
		r.attachments[id] = a
	}
	return r, nil
}

// User returns the resolved user with the given ID.
func (r *Resolved) User(id discord.Snowflake) (*discord.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", ErrUnresolved, id)
	}
	return u, nil
}

// Member returns the resolved guild member with the given user ID.
func (r *Resolved) Member(id discord.Snowflake) (*discord.Member, error) {
	m, ok := r.members[id]
	if !ok {
		return nil, fmt.Errorf("%w: member %s", ErrUnresolved, id)
	}
	return m, nil
}

// Channel returns the resolved channel with the given ID.
func (r *Resolved) Channel(id discord.Snowflake) (*discord.Channel, error) {
	c, ok := r.channels[id]
	if !ok {
		return nil, fmt.Errorf("%w: channel %s", ErrUnresolved, id)
	}
	return c, nil
}

// Role returns the resolved role with the given ID.
func (r *Resolved) Role(id discord.Snowflake) (*discord.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, fmt.Errorf("%w: role %s", ErrUnresolved, id)
	}
	return role, nil
}

// Message returns the resolved message with the given ID.
func (r *Resolved) Message(id discord.Snowflake) (*discord.PartialMessage, error) {
	m, ok := r.messages[id]
	if !ok {
		return nil, fmt.Errorf("%w: message %s", ErrUnresolved, id)
	}
	return m, nil
}

// Attachment returns the resolved attachment with the given ID.
func (r *Resolved) Attachment(id discord.Snowflake) (*discord.Attachment, error) {
	a, ok := r.attachments[id]
	if !ok {
		return nil, fmt.Errorf("%w: attachment %s", ErrUnresolved, id)
	}
	return a, nil
}

// Mentionable returns the resolved role or user with the given ID,
// preferring a member when the guild shipped one.
func (r *Resolved) Mentionable(id discord.Snowflake) (any, error) {
	if role, ok := r.roles[id]; ok {
		return role, nil
	}
	if m, ok := r.members[id]; ok {
		return m, nil
	}
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("%w: mentionable %s", ErrUnresolved, id)
}
