package discord

import "time"

// ChannelType is the channel-type discriminant.
type ChannelType int

const (
	ChannelGuildText          ChannelType = 0
	ChannelDM                 ChannelType = 1
	ChannelGuildVoice         ChannelType = 2
	ChannelGroupDM            ChannelType = 3
	ChannelGuildCategory      ChannelType = 4
	ChannelGuildAnnouncement  ChannelType = 5
	ChannelAnnouncementThread ChannelType = 10
	ChannelPublicThread       ChannelType = 11
	ChannelPrivateThread      ChannelType = 12
	ChannelGuildStageVoice    ChannelType = 13
	ChannelGuildDirectory     ChannelType = 14
	ChannelGuildForum         ChannelType = 15
	ChannelGuildMedia         ChannelType = 16
)

// ChannelVariant classifies a channel into the closed set of shapes this
// library distinguishes. The discrimination by raw channel type happens
// in exactly one place, Channel.Variant.
type ChannelVariant int

const (
	VariantGuild ChannelVariant = iota
	VariantDM
	VariantGroupDM
	VariantOther
)

// Channel is a read-only view of any channel shape the platform can
// embed in an interaction payload. Fields beyond the base set are only
// populated for the variants that carry them; Variant tells callers
// which view applies.
type Channel struct {
	ID               Snowflake   `json:"id"`
	Type             ChannelType `json:"type"`
	Flags            int         `json:"flags,omitempty"`
	LastMessageID    Snowflake   `json:"last_message_id,omitempty"`
	LastPinTimestamp *time.Time  `json:"last_pin_timestamp,omitempty"`

	// Guild channel fields.
	GuildID          Snowflake `json:"guild_id,omitempty"`
	Name             string    `json:"name,omitempty"`
	Topic            string    `json:"topic,omitempty"`
	NSFW             bool      `json:"nsfw,omitempty"`
	Position         int       `json:"position,omitempty"`
	ParentID         Snowflake `json:"parent_id,omitempty"`
	RateLimitPerUser int       `json:"rate_limit_per_user,omitempty"`
	Permissions      string    `json:"permissions,omitempty"`

	// DM and group DM fields.
	Recipients []User    `json:"recipients,omitempty"`
	IconHash   string    `json:"icon,omitempty"`
	OwnerID    Snowflake `json:"owner_id,omitempty"`
}

// Variant maps the raw channel type onto the closed variant set.
func (c *Channel) Variant() ChannelVariant {
	switch c.Type {
	case ChannelDM:
		return VariantDM
	case ChannelGroupDM:
		return VariantGroupDM
	case ChannelGuildText, ChannelGuildVoice, ChannelGuildCategory,
		ChannelGuildAnnouncement, ChannelAnnouncementThread,
		ChannelPublicThread, ChannelPrivateThread, ChannelGuildStageVoice,
		ChannelGuildDirectory, ChannelGuildForum, ChannelGuildMedia:
		return VariantGuild
	default:
		return VariantOther
	}
}

// Icon returns the group DM icon asset, if set.
func (c *Channel) Icon() (Asset, bool) {
	if c.IconHash == "" {
		return Asset{}, false
	}
	return Asset{
		BaseURL: CDNBase + "/channel-icons/" + c.ID.String(),
		Code:    c.IconHash,
	}, true
}

// Mention returns the chat mention string for the channel.
func (c *Channel) Mention() string {
	return "<#" + c.ID.String() + ">"
}
