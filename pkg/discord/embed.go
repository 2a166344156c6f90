package discord

// Embed is a rich message embed. Build one with the setter methods and
// attach it to a response; zero values are omitted on the wire.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	URL         string       `json:"url,omitempty"`
	Color       int          `json:"color,omitempty"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
	Image       *EmbedMedia  `json:"image,omitempty"`
	Thumbnail   *EmbedMedia  `json:"thumbnail,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

// EmbedField is a single name/value pair in an embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// EmbedFooter is the embed footer line.
type EmbedFooter struct {
	Text    string `json:"text"`
	IconURL string `json:"icon_url,omitempty"`
}

// EmbedMedia is an image or thumbnail reference.
type EmbedMedia struct {
	URL string `json:"url"`
}

// AddField appends a field and returns the embed for chaining.
func (e *Embed) AddField(name, value string, inline bool) *Embed {
	e.Fields = append(e.Fields, EmbedField{Name: name, Value: value, Inline: inline})
	return e
}

// SetFooter sets the footer and returns the embed for chaining.
func (e *Embed) SetFooter(text, iconURL string) *Embed {
	e.Footer = &EmbedFooter{Text: text, IconURL: iconURL}
	return e
}
