package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	discordhook "github.com/lakeward/discordhook"
)

// Sends a message through the webhook configured in the environment:
//
//	WEBHOOK_ID=245037420704169985
//	WEBHOOK_TOKEN=ig5AO-wdVWpCBtUUMxmgsWryqgsW3DChbKYOINftJ4DC
func main() {
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(zerolog.DebugLevel)

	webhookID, err := strconv.ParseInt(os.Getenv("WEBHOOK_ID"), 10, 64)
	if err != nil {
		logger.Fatal().Err(err).Msg("WEBHOOK_ID must be a webhook id")
	}

	webhookToken := os.Getenv("WEBHOOK_TOKEN")
	if webhookToken == "" {
		logger.Fatal().Msg("WEBHOOK_TOKEN must be set")
	}

	restInterface := discordhook.NewInterface(&http.Client{
		Timeout: 20 * time.Second,
	}, discordhook.EndpointDiscord, discordhook.APIVersion, discordhook.UserAgent, logger)

	session := discordhook.NewSession(context.Background(), "", restInterface)

	webhook, err := discordhook.FetchWebhookWithToken(session, discordhook.Snowflake(webhookID), webhookToken)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to fetch webhook")
	}

	logger.Info().Str("name", webhook.Name).Msg("Fetched webhook")

	embed := discordhook.NewEmbed().
		SetTitle("Deployment finished").
		SetDescription("discordhook example ran successfully.").
		SetColor(0x2ECC71).
		SetTimestamp(discordhook.NewTimestamp(time.Now().UTC())).
		AddField(discordhook.NewEmbedField("region", "eu-west", true))

	builder := discordhook.NewExecuteWebhookBuilder().
		SetUsername("discordhook").
		SetContent("Hello from discordhook").
		SetEmbeds([]discordhook.EmbedValue{embed.Raw()})

	message, err := webhook.ExecuteWait(session, builder)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to execute webhook")
	}

	logger.Info().
		Str("message_id", message.ID.String()).
		Str("channel_id", message.ChannelID.String()).
		Msg("Webhook delivered")
}
