package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/DishForge_Go/internal/domain"
)

// IngredientsCommand returns the /ingredients command definition and handler
func IngredientsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ingredients",
		Description: "List the ingredient type codes usable in recipes",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		ctx, cancel := commandContext()
		defer cancel()

		types, err := client.GetIngredientTypes(ctx)
		if err != nil {
			respondFriendlyError(s, i, "ingredients", err)
			return
		}

		sendEmbed(s, i, createEmbed("🧺 Ingredient Types", formatIngredientTypes(types), ColorIngredients, ""))
	}

	return cmd, handler
}

func formatIngredientTypes(types []domain.IngredientType) string {
	if len(types) == 0 {
		return MsgNoIngredientTypes
	}
	lines := make([]string, len(types))
	for n, t := range types {
		lines[n] = fmt.Sprintf("`%s` %s", t.Code, titleCaser.String(t.Title))
	}
	return strings.Join(lines, "\n")
}
