package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"github.com/osse101/DishForge_Go/internal/config"
	"github.com/osse101/DishForge_Go/internal/discord"
	"github.com/osse101/DishForge_Go/internal/logger"
)

// Default values for optional configuration
const (
	DefaultWebhookPort = "8082"
	DefaultAPIURL      = "http://localhost:8080"
	DiscordServiceName = "dishforge-discord"
)

// CommandFactory creates a Discord command and its handler
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	_ = godotenv.Load()

	logger.InitLogger(logger.ForEnvironment(
		getEnv("LOG_LEVEL", logger.LogLevelInfo),
		getEnv("LOG_FORMAT", logger.LogFormatText),
		DiscordServiceName,
		getEnv("VERSION", logger.DefaultVersion),
		getEnv("ENVIRONMENT", logger.EnvironmentDev),
	))

	if err := config.ValidateDiscordEnv(); err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	cfg := discord.Config{
		Token:  os.Getenv("DISCORD_TOKEN"),
		AppID:  os.Getenv("DISCORD_APP_ID"),
		APIURL: getEnv("API_URL", DefaultAPIURL),
		APIKey: os.Getenv("API_KEY"),
	}
	slog.Info("Configured API URL", "url", cfg.APIURL)

	bot, err := discord.New(cfg)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	httpServer := discord.NewHTTPServer(getEnv("DISCORD_WEBHOOK_PORT", DefaultWebhookPort), bot)
	httpServer.Start()
	defer httpServer.Stop()

	registerCommands(bot, getCommandFactories())

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if forceUpdate {
		slog.Info("Force command update enabled via environment variable")
	}
	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		// Commands registered earlier keep working
		slog.Error("Failed to register commands", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bot.Run(ctx); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// getCommandFactories lists every slash command the bot serves
func getCommandFactories() []CommandFactory {
	return []CommandFactory{
		discord.PingCommand,
		discord.DishesCommand,
		discord.IngredientsCommand,

		// Admin
		discord.AdminCacheStatsCommand,
		discord.AdminCachePurgeCommand,
	}
}

func registerCommands(bot *discord.Bot, factories []CommandFactory) {
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
}
