package discord

// InteractionType is the `type` discriminator of an inbound interaction
// request.
type InteractionType int

const (
	InteractionPing                           InteractionType = 1
	InteractionApplicationCommand             InteractionType = 2
	InteractionMessageComponent               InteractionType = 3
	InteractionApplicationCommandAutocomplete InteractionType = 4
	InteractionModalSubmit                    InteractionType = 5
)

// InteractionResponseType is the `type` of an interaction response
// envelope.
type InteractionResponseType int

const (
	ResponsePong                             InteractionResponseType = 1
	ResponseChannelMessageWithSource         InteractionResponseType = 4
	ResponseDeferredChannelMessageWithSource InteractionResponseType = 5
	ResponseDeferredUpdateMessage            InteractionResponseType = 6
	ResponseUpdateMessage                    InteractionResponseType = 7
	ResponseAutocompleteResult               InteractionResponseType = 8
	ResponseModal                            InteractionResponseType = 9
)

// CommandType is the surface a command is invoked from.
type CommandType int

const (
	CommandChatInput         CommandType = 1
	CommandUser              CommandType = 2
	CommandMessage           CommandType = 3
	CommandPrimaryEntryPoint CommandType = 4
)

// OptionType is the wire tag identifying an option's data type,
// independent of the Go type a handler declares for it.
type OptionType int

const (
	OptionSubCommand      OptionType = 1
	OptionSubCommandGroup OptionType = 2
	OptionString          OptionType = 3
	OptionInteger         OptionType = 4
	OptionBoolean         OptionType = 5
	OptionUser            OptionType = 6
	OptionChannel         OptionType = 7
	OptionRole            OptionType = 8
	OptionMentionable     OptionType = 9
	OptionNumber          OptionType = 10
	OptionAttachment      OptionType = 11
)

// IntegrationType is an installation surface for an application command.
type IntegrationType int

const (
	IntegrationGuildInstall IntegrationType = 0
	IntegrationUserInstall  IntegrationType = 1
)

// ContextType is an interaction invocation context.
type ContextType int

const (
	ContextGuild          ContextType = 0
	ContextBotDM          ContextType = 1
	ContextPrivateChannel ContextType = 2
)

// MessageFlags are bitfield flags on a response message.
type MessageFlags int

const (
	// FlagEphemeral makes the response visible only to the invoking user.
	FlagEphemeral MessageFlags = 1 << 6
)
