package discord

// Friendly message constants for Discord responses
const (
	MsgUnknownCodesFmt   = "❓ **Unknown ingredient codes:** %s\nUse `/ingredients` to see the valid codes."
	MsgNotEnoughFmt      = "🥣 **Not enough %s**\nThe recipe needs %d but only %d exist."
	MsgInvalidRecipeFmt  = "✏️ **Invalid recipe:** %s"
	MsgAPIUnauthorized   = "🔒 The bot is not allowed to talk to the dish service."
	MsgAPIUnavailable    = "📡 The dish service is unavailable. Try again in a moment."
	MsgNoDishesFmt       = "No dish can be built from `%s`."
	MsgMoreDishesFmt     = "…and %d more."
	MsgNoIngredientTypes = "The catalog has no ingredient types yet."
	MsgCachePurged       = "🧹 Catalog cache purged."

	MsgGenericError = "❌ Something went wrong."
)

// Embed colors
const (
	ColorDishes      = 0xe67e22
	ColorIngredients = 0x2ecc71
	ColorAdmin       = 0x3498db
)

// Footer constants for embeds
const (
	FooterDishForge      = "DishForge"
	FooterDishForgeAdmin = "DishForge Admin"
)

// Bot lifecycle messages
const (
	ErrMsgCreateSession      = "error creating Discord session"
	ErrMsgOpenSession        = "error opening Discord connection"
	LogMsgBotRunning         = "Discord bot is now running"
	LogMsgBotReady           = "Bot is ready"
	LogMsgBotStopping        = "Discord bot stopping"
	LogMsgSessionCloseFailed = "Failed to close Discord session"
)

// Command registration messages
const (
	ErrMsgFetchCommands     = "failed to fetch existing commands"
	ErrMsgOverwriteCommands = "failed to overwrite commands"
	LogMsgCommandsUnchanged = "Commands unchanged, skipping registration"
	LogMsgCommandsChanged   = "Commands changed, updating"
	LogMsgCommandsUpdated   = "Commands updated"
	LogMsgUnknownCommand    = "Unknown command"
)
