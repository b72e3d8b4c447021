package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// AdminCacheStatsCommand returns the cache stats command definition and handler
func AdminCacheStatsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:                     "admin-cache-stats",
		Description:              "[Admin] View catalog cache statistics",
		DefaultMemberPermissions: adminPermission(),
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		ctx, cancel := commandContext()
		defer cancel()

		stats, err := client.GetCacheStats(ctx)
		if err != nil {
			respondFriendlyError(s, i, "admin-cache-stats", err)
			return
		}

		hitRate := 0.0
		if total := stats.Hits + stats.Misses; total > 0 {
			hitRate = float64(stats.Hits) / float64(total) * 100
		}

		description := fmt.Sprintf(
			"**Hit Rate:** %.1f%%\n"+
				"**Hits:** %d\n"+
				"**Misses:** %d\n"+
				"**Entries:** %d / %d\n"+
				"**TTL:** %s",
			hitRate, stats.Hits, stats.Misses, stats.Entries, stats.Size, stats.TTL,
		)

		sendEmbed(s, i, createEmbed("📊 Catalog Cache Statistics", description, ColorAdmin, FooterDishForgeAdmin))
	}

	return cmd, handler
}

// AdminCachePurgeCommand returns the cache purge command definition and handler
func AdminCachePurgeCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:                     "admin-cache-purge",
		Description:              "[Admin] Drop every cached catalog entry",
		DefaultMemberPermissions: adminPermission(),
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		ctx, cancel := commandContext()
		defer cancel()

		if _, err := client.PurgeCache(ctx); err != nil {
			respondFriendlyError(s, i, "admin-cache-purge", err)
			return
		}

		sendEmbed(s, i, createEmbed("Catalog Cache", MsgCachePurged, ColorAdmin, FooterDishForgeAdmin))
	}

	return cmd, handler
}
