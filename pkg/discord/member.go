package discord

import (
	"fmt"
	"time"
)

// Member is a guild-scoped view of a user. Resolved member records in
// interaction payloads omit the inner user object; the resolution layer
// merges it back in from the resolved users table.
type Member struct {
	User                       *User       `json:"user,omitempty"`
	GuildID                    Snowflake   `json:"-"`
	Nick                       string      `json:"nick,omitempty"`
	AvatarHash                 string      `json:"avatar,omitempty"`
	BannerHash                 string      `json:"banner,omitempty"`
	Roles                      []Snowflake `json:"roles"`
	JoinedAt                   time.Time   `json:"joined_at"`
	PremiumSince               *time.Time  `json:"premium_since,omitempty"`
	CommunicationDisabledUntil *time.Time  `json:"communication_disabled_until,omitempty"`
	Permissions                string      `json:"permissions,omitempty"`
	Pending                    bool        `json:"pending,omitempty"`
	Deaf                       bool        `json:"deaf,omitempty"`
	Mute                       bool        `json:"mute,omitempty"`
	Flags                      int         `json:"flags,omitempty"`
}

// DisplayName returns the guild nickname, falling back to the user's
// display name.
func (m *Member) DisplayName() string {
	if m.Nick != "" {
		return m.Nick
	}
	if m.User != nil {
		return m.User.DisplayName()
	}
	return ""
}

// GuildAvatar returns the member's guild-specific avatar asset, if set.
func (m *Member) GuildAvatar() (Asset, bool) {
	if m.AvatarHash == "" || m.User == nil {
		return Asset{}, false
	}
	return Asset{
		BaseURL: fmt.Sprintf("%s/guilds/%s/users/%s/avatars", CDNBase, m.GuildID, m.User.ID),
		Code:    m.AvatarHash,
	}, true
}

// Banner returns the member's banner asset, if set.
func (m *Member) Banner() (Asset, bool) {
	if m.BannerHash == "" || m.User == nil {
		return Asset{}, false
	}
	return Asset{
		BaseURL: fmt.Sprintf("%s/banners/%s", CDNBase, m.User.ID),
		Code:    m.BannerHash,
	}, true
}
