package discord

import (
	"encoding/json"
	"fmt"
)

// Role is a read-only view of a guild role.
type Role struct {
	ID           Snowflake   `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description,omitempty"`
	Color        int         `json:"color"`
	Colors       *RoleColors `json:"colors,omitempty"`
	Hoist        bool        `json:"hoist"`
	IconHash     string      `json:"icon,omitempty"`
	UnicodeEmoji string      `json:"unicode_emoji,omitempty"`
	Position     int         `json:"position"`
	Permissions  string      `json:"permissions"`
	Managed      bool        `json:"managed"`
	Mentionable  bool        `json:"mentionable"`
	Flags        int         `json:"flags,omitempty"`
	Tags         *RoleTags   `json:"tags,omitempty"`
}

// Icon returns the role's icon asset, if set.
func (r *Role) Icon() (Asset, bool) {
	if r.IconHash == "" {
		return Asset{}, false
	}
	return Asset{
		BaseURL: fmt.Sprintf("%s/role-icons/%s", CDNBase, r.ID),
		Code:    r.IconHash,
	}, true
}

// Mention returns the chat mention string for the role.
func (r *Role) Mention() string {
	return fmt.Sprintf("<@&%s>", r.ID)
}

// RoleColors holds the gradient role colour set.
type RoleColors struct {
	Primary   int `json:"primary_color"`
	Secondary int `json:"secondary_color"`
	Tertiary  int `json:"tertiary_color"`
}

// RoleTags describes what manages a role. The boolean tags use Discord's
// null-presence convention: the key is present with a null value when
// true and absent when false, so decoding keys off presence is required.
type RoleTags struct {
	BotID                 Snowflake
	IntegrationID         Snowflake
	SubscriptionListingID Snowflake
	PremiumSubscriber     bool
	AvailableForPurchase  bool
	GuildConnections      bool
}

func (t *RoleTags) UnmarshalJSON(data []byte) error {
	var raw struct {
		BotID                 Snowflake `json:"bot_id"`
		IntegrationID         Snowflake `json:"integration_id"`
		SubscriptionListingID Snowflake `json:"subscription_listing_id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	_, premium := keys["premium_subscriber"]
	_, purchase := keys["available_for_purchase"]
	_, connections := keys["guild_connections"]
	*t = RoleTags{
		BotID:                 raw.BotID,
		IntegrationID:         raw.IntegrationID,
		SubscriptionListingID: raw.SubscriptionListingID,
		PremiumSubscriber:     premium,
		AvailableForPurchase:  purchase,
		GuildConnections:      connections,
	}
	return nil
}
