package discord

// Attachment is a file a user attached to a command option, as delivered
// in the resolved attachments table.
type Attachment struct {
	ID                 Snowflake `json:"id"`
	Filename           string    `json:"filename"`
	ContentType        string    `json:"content_type,omitempty"`
	Size               int       `json:"size"`
	URL                string    `json:"url"`
	ProxyURL           string    `json:"proxy_url"`
	Height             int       `json:"height,omitempty"`
	Width              int       `json:"width,omitempty"`
	Placeholder        string    `json:"placeholder,omitempty"`
	PlaceholderVersion int       `json:"placeholder_version,omitempty"`
	Ephemeral          bool      `json:"ephemeral,omitempty"`
}
