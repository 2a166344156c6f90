package discord

import "encoding/json"

// InteractionPayload is the decoded body of an inbound interaction POST.
type InteractionPayload struct {
	ID            Snowflake        `json:"id"`
	ApplicationID Snowflake        `json:"application_id"`
	Type          InteractionType  `json:"type"`
	Token         string           `json:"token"`
	Version       int              `json:"version"`
	GuildID       Snowflake        `json:"guild_id,omitempty"`
	Channel       *Channel         `json:"channel,omitempty"`
	ChannelID     Snowflake        `json:"channel_id,omitempty"`
	Member        *Member          `json:"member,omitempty"`
	User          *User            `json:"user,omitempty"`
	Locale        string           `json:"locale,omitempty"`
	GuildLocale   string           `json:"guild_locale,omitempty"`
	Data          *InteractionData `json:"data,omitempty"`
}

// InteractionData is the command-specific part of an interaction
// payload.
type InteractionData struct {
	ID       Snowflake        `json:"id"`
	Name     string           `json:"name"`
	Type     CommandType      `json:"type"`
	Options  []RawOption      `json:"options,omitempty"`
	Resolved *ResolvedPayload `json:"resolved,omitempty"`
	GuildID  Snowflake        `json:"guild_id,omitempty"`
	TargetID Snowflake        `json:"target_id,omitempty"`
}

// RawOption is one entry of an inbound option list. For sub-command and
// sub-command-group entries Value is empty and Options carries the
// nested list.
type RawOption struct {
	Name    string          `json:"name"`
	Type    OptionType      `json:"type"`
	Value   json.RawMessage `json:"value,omitempty"`
	Options []RawOption     `json:"options,omitempty"`
	Focused bool            `json:"focused,omitempty"`
}

// ResolvedPayload is the raw resolved-entity substructure of a command
// payload, keyed by snowflake string. Member records here omit their
// inner user object; it lives in the users table under the same key.
type ResolvedPayload struct {
	Users       map[string]*User           `json:"users,omitempty"`
	Members     map[string]*Member         `json:"members,omitempty"`
	Channels    map[string]*Channel        `json:"channels,omitempty"`
	Roles       map[string]*Role           `json:"roles,omitempty"`
	Messages    map[string]*PartialMessage `json:"messages,omitempty"`
	Attachments map[string]*Attachment     `json:"attachments,omitempty"`
}
