package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/DishForge_Go/internal/handler"
)

// MaxDishesShown is how many dishes one reply lists
const MaxDishesShown = 10

// DishesCommand returns the /dishes command definition and handler
func DishesCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minLength := 1
	cmd := &discordgo.ApplicationCommand{
		Name:        "dishes",
		Description: "List every distinct dish for a recipe",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "recipe",
				Description: "One ingredient type code per slot, e.g. dcii",
				Required:    true,
				MinLength:   &minLength,
				MaxLength:   100,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		recipe := stringOption(i, "recipe")

		ctx, cancel := commandContext()
		defer cancel()

		resp, err := client.GenerateDishes(ctx, recipe)
		if err != nil {
			respondFriendlyError(s, i, "dishes", err)
			return
		}

		sendEmbed(s, i, formatDishesEmbed(resp))
	}

	return cmd, handler
}

// formatDishesEmbed renders up to MaxDishesShown dishes, one field each
func formatDishesEmbed(resp *handler.DishesResponse) *discordgo.MessageEmbed {
	title := fmt.Sprintf("🍽️ Dishes for %s", resp.Recipe)

	if resp.Count == 0 {
		return createEmbed(title, fmt.Sprintf(MsgNoDishesFmt, resp.Recipe), ColorDishes, "")
	}

	noun := "dishes"
	if resp.Count == 1 {
		noun = "dish"
	}
	description := fmt.Sprintf("Found **%d** %s.", resp.Count, noun)

	shown := min(len(resp.Dishes), MaxDishesShown, maxEmbedFields)
	if hidden := resp.Count - shown; hidden > 0 {
		description += "\n" + fmt.Sprintf(MsgMoreDishesFmt, hidden)
	}

	embed := createEmbed(title, description, ColorDishes, "")
	embed.Fields = make([]*discordgo.MessageEmbedField, shown)
	for n, d := range resp.Dishes[:shown] {
		embed.Fields[n] = &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("#%d · %s", n+1, d.Price),
			Value: truncateRunes(formatProducts(d.Products), maxFieldValueRunes),
		}
	}
	return embed
}

func formatProducts(products []handler.ProductResponse) string {
	var b strings.Builder
	for n, p := range products {
		if n > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "**%s**: %s (%s)", titleCaser.String(p.Type), titleCaser.String(p.Value), p.Price)
	}
	return b.String()
}
