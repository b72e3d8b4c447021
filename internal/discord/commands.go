package discord

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/bwmarrin/discordgo"
)

// CommandHandler handles a slash command
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient)

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// Handle dispatches an interaction to its command handler
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	name := i.ApplicationCommandData().Name
	h, ok := r.Handlers[name]
	if !ok {
		slog.Warn(LogMsgUnknownCommand, "command", name)
		return
	}
	RecordCommand()
	h(s, i, client)
}

// Sorted returns the registered commands ordered by name
func (r *CommandRegistry) Sorted() []*discordgo.ApplicationCommand {
	cmds := make([]*discordgo.ApplicationCommand, 0, len(r.Commands))
	for _, cmd := range r.Commands {
		cmds = append(cmds, cmd)
	}
	slices.SortFunc(cmds, func(a, b *discordgo.ApplicationCommand) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return cmds
}

// RegisterCommands pushes the registry to Discord when it differs from what is registered.
// forceUpdate overwrites without comparing.
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) error {
	desired := registry.Sorted()

	if !forceUpdate {
		existing, err := b.Session.ApplicationCommands(b.AppID, "")
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFetchCommands, err)
		}
		if commandsEqual(existing, desired) {
			slog.Info(LogMsgCommandsUnchanged, "count", len(existing))
			return nil
		}
		slog.Info(LogMsgCommandsChanged, "existing", len(existing), "desired", len(desired))
	}

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desired); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgOverwriteCommands, err)
	}
	slog.Info(LogMsgCommandsUpdated, "count", len(desired), "forced", forceUpdate)
	return nil
}

// commandsEqual reports whether two command sets match regardless of order
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	byName := make(map[string]*discordgo.ApplicationCommand, len(existing))
	for _, cmd := range existing {
		byName[cmd.Name] = cmd
	}
	for _, want := range desired {
		got, ok := byName[want.Name]
		if !ok || !commandEqual(got, want) {
			return false
		}
	}
	return true
}

// commandEqual compares the fields this bot sets on its commands
func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	return a.Name == b.Name &&
		a.Description == b.Description &&
		ptrEqual(a.DefaultMemberPermissions, b.DefaultMemberPermissions) &&
		slices.EqualFunc(a.Options, b.Options, optionEqual)
}

func optionEqual(a, b *discordgo.ApplicationCommandOption) bool {
	if a.Type != b.Type || a.Name != b.Name || a.Description != b.Description || a.Required != b.Required {
		return false
	}
	// Discord omits a zero min_length, so a missing value on either side matches
	if a.MinLength != nil && b.MinLength != nil && *a.MinLength != *b.MinLength {
		return false
	}
	return a.MaxLength == b.MaxLength &&
		slices.EqualFunc(a.Choices, b.Choices, func(x, y *discordgo.ApplicationCommandOptionChoice) bool {
			return x.Name == y.Name && x.Value == y.Value
		})
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
