package discord

import "fmt"

// Number of built-in default avatars the CDN serves.
const defaultAvatarCount = 6

// User is a read-only view of a Discord user as embedded in interaction
// payloads and resolved entity tables.
type User struct {
	ID          Snowflake `json:"id"`
	Username    string    `json:"username"`
	GlobalName  string    `json:"global_name,omitempty"`
	AvatarHash  string    `json:"avatar,omitempty"`
	BannerHash  string    `json:"banner,omitempty"`
	Bot         bool      `json:"bot,omitempty"`
	PublicFlags int       `json:"public_flags,omitempty"`
}

// DisplayName returns the global display name, falling back to the
// username.
func (u *User) DisplayName() string {
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}

// Avatar returns the user's avatar asset, or the default avatar when the
// user has not set one.
func (u *User) Avatar() Asset {
	if u.AvatarHash == "" {
		return u.DefaultAvatar()
	}
	return Asset{
		BaseURL: fmt.Sprintf("%s/avatars/%s", CDNBase, u.ID),
		Code:    u.AvatarHash,
	}
}

// DefaultAvatar returns the index-derived default avatar asset.
func (u *User) DefaultAvatar() Asset {
	idx := (uint64(u.ID) >> 22) % defaultAvatarCount
	return Asset{
		BaseURL: CDNBase + "/embed/avatars",
		Code:    fmt.Sprintf("%d", idx),
	}
}

// Mention returns the chat mention string for the user.
func (u *User) Mention() string {
	return fmt.Sprintf("<@%s>", u.ID)
}
