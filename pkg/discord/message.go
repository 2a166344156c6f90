package discord

// PartialMessage is the trimmed message record embedded in resolved
// message tables (message-context commands reference their target this
// way).
type PartialMessage struct {
	ID            Snowflake `json:"id"`
	ChannelID     Snowflake `json:"channel_id"`
	Type          int       `json:"type"`
	Content       string    `json:"content"`
	Author        *User     `json:"author,omitempty"`
	Flags         int       `json:"flags,omitempty"`
	ApplicationID Snowflake `json:"application_id,omitempty"`
	Channel       *Channel  `json:"channel,omitempty"`
}
