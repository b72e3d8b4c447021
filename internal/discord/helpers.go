package discord

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// commandTimeout bounds a single command's API calls, including retries
const commandTimeout = 12 * time.Second

// Discord embed limits
const (
	maxEmbedFields     = 25
	maxFieldValueRunes = 1024
)

var titleCaser = cases.Title(language.English, cases.NoLower)

// deferResponse acknowledges an interaction with a deferred message.
// Returns false if deferral failed and the handler should return.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error("Failed to send deferred response", "error", err)
		return false
	}
	return true
}

// commandContext returns the context command handlers run API calls under
func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), commandTimeout)
}

// getOptions extracts command options from an interaction
func getOptions(i *discordgo.InteractionCreate) []*discordgo.ApplicationCommandInteractionDataOption {
	return i.ApplicationCommandData().Options
}

// stringOption returns the named string option or ""
func stringOption(i *discordgo.InteractionCreate, name string) string {
	for _, opt := range getOptions(i) {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

// respondError replaces the deferred response with a plain message
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

// respondFriendlyError logs err and answers with a message users can act on
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, command string, err error) {
	slog.Error("Command failed", "command", command, "error", err)
	respondError(s, i, formatFriendlyError(err))
}

// formatFriendlyError maps API errors to user-facing messages
func formatFriendlyError(err error) string {
	apiErr, ok := IsAPIError(err)
	if !ok {
		return MsgAPIUnavailable
	}

	switch {
	case len(apiErr.Codes) > 0:
		quoted := make([]string, len(apiErr.Codes))
		for i, code := range apiErr.Codes {
			quoted[i] = "`" + code + "`"
		}
		return fmt.Sprintf(MsgUnknownCodesFmt, strings.Join(quoted, ", "))
	case apiErr.Code != "" && apiErr.Available != nil:
		return fmt.Sprintf(MsgNotEnoughFmt, "`"+apiErr.Code+"`", apiErr.Required, *apiErr.Available)
	case len(apiErr.Fields) > 0:
		keys := make([]string, 0, len(apiErr.Fields))
		for k := range apiErr.Fields {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		return fmt.Sprintf(MsgInvalidRecipeFmt, strings.ToLower(apiErr.Fields[keys[0]]))
	case apiErr.Status == http.StatusUnauthorized:
		return MsgAPIUnauthorized
	case apiErr.Message != "":
		return "❌ " + apiErr.Message
	default:
		return MsgGenericError
	}
}

// sendEmbed replaces the deferred response with an embed
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error("Failed to send response", "error", err)
	}
}

// createEmbed creates a standard embed; an empty footer defaults to FooterDishForge
func createEmbed(title, description string, color int, footerText string) *discordgo.MessageEmbed {
	if footerText == "" {
		footerText = FooterDishForge
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: footerText,
		},
	}
}

// truncateRunes cuts s to at most n runes, marking the cut with an ellipsis
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

func adminPermission() *int64 {
	p := int64(discordgo.PermissionAdministrator)
	return &p
}
