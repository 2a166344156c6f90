package interaction

import (
	"fmt"

	"hookbot/pkg/discord"
)

// Response is what a command handler returns: the message Discord shows
// in reply to the interaction.
type Response struct {
	Content   string
	Embeds    []*discord.Embed
	Files     []*discord.File
	Ephemeral bool
	TTS       bool
}

// NewResponse creates a plain text response.
func NewResponse(content string) *Response {
	return &Response{Content: content}
}

// AddEmbed appends an embed and returns the response for chaining.
func (r *Response) AddEmbed(e *discord.Embed) *Response {
	r.Embeds = append(r.Embeds, e)
	return r
}

// AddFile attaches a file upload and returns the response for chaining.
func (r *Response) AddFile(f *discord.File) *Response {
	r.Files = append(r.Files, f)
	return r
}

// AsEphemeral marks the response as visible only to the invoking user.
func (r *Response) AsEphemeral() *Response {
	r.Ephemeral = true
	return r
}

// Choice is one autocomplete suggestion.
type Choice struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Envelope is the wire shape of an interaction callback body.
type Envelope struct {
	Type discord.InteractionResponseType `json:"type"`
	Data *EnvelopeData                   `json:"data,omitempty"`
}

// EnvelopeData is the data part of a callback body. Only the fields
// relevant to the chosen response type are populated.
type EnvelopeData struct {
	Content     string               `json:"content,omitempty"`
	Embeds      []*discord.Embed     `json:"embeds,omitempty"`
	Flags       discord.MessageFlags `json:"flags,omitempty"`
	TTS         bool                 `json:"tts,omitempty"`
	Attachments []AttachmentStub     `json:"attachments,omitempty"`
	Choices     []Choice             `json:"choices,omitempty"`
}

// AttachmentStub describes one pending upload inside a multipart
// payload; the index ties it to its files[i] body part.
type AttachmentStub struct {
	ID          int    `json:"id"`
	Filename    string `json:"filename"`
	Description string `json:"description,omitempty"`
	Spoiler     bool   `json:"spoiler,omitempty"`
}

// Envelope converts the response into a synchronous callback body. The
// caller must have no files attached; uploads go through the defer-patch
// path instead.
func (r *Response) Envelope() *Envelope {
	data := &EnvelopeData{
		Content: r.Content,
		Embeds:  r.Embeds,
		TTS:     r.TTS,
	}
	if r.Ephemeral {
		data.Flags = discord.FlagEphemeral
	}
	return &Envelope{
		Type: discord.ResponseChannelMessageWithSource,
		Data: data,
	}
}

// webhookBody is the wire shape of a webhook message create or edit.
type webhookBody struct {
	Content     string               `json:"content,omitempty"`
	Embeds      []*discord.Embed     `json:"embeds,omitempty"`
	Flags       discord.MessageFlags `json:"flags,omitempty"`
	TTS         bool                 `json:"tts,omitempty"`
	Attachments []AttachmentStub     `json:"attachments,omitempty"`
}

// webhookPayload builds the body for a webhook POST or PATCH. The
// ephemeral flag is only meaningful on the initial callback, so edits
// drop it.
func (r *Response) webhookPayload(includeFlags bool) *webhookBody {
	body := &webhookBody{
		Content: r.Content,
		Embeds:  r.Embeds,
		TTS:     r.TTS,
	}
	if includeFlags && r.Ephemeral {
		body.Flags = discord.FlagEphemeral
	}
	for i, f := range r.Files {
		body.Attachments = append(body.Attachments, AttachmentStub{
			ID:          i,
			Filename:    f.Name,
			Description: f.Description,
			Spoiler:     f.Spoiler,
		})
	}
	return body
}

// AutocompleteEnvelope wraps suggestion choices into a callback body,
// truncating to the 25-choice platform limit.
func AutocompleteEnvelope(choices []Choice) *Envelope {
	if len(choices) > 25 {
		choices = choices[:25]
	}
	return &Envelope{
		Type: discord.ResponseAutocompleteResult,
		Data: &EnvelopeData{Choices: choices},
	}
}

func (r *Response) validate() error {
	if r.Content == "" && len(r.Embeds) == 0 && len(r.Files) == 0 {
		return fmt.Errorf("response has no content, embeds or files")
	}
	return nil
}
