package discordhook

import (
	"fmt"
	"net/http"
	"time"
)

// webhook.go contains the webhook model and the operations that execute it.

// WebhookType is the type of webhook.
type WebhookType uint8

// Webhook type.
const (
	WebhookTypeIncoming WebhookType = iota + 1
	WebhookTypeChannelFollower
	WebhookTypeApplication
)

// Rate limit applied per webhook before executing.
const (
	WebhookRateLimitDuration = 5 * time.Second
	WebhookRateLimitLimit    = 5
)

// Webhook represents a webhook on discord.
type Webhook struct {
	GuildID       *Snowflake  `json:"guild_id,omitempty"`
	ChannelID     *Snowflake  `json:"channel_id,omitempty"`
	ApplicationID *Snowflake  `json:"application_id,omitempty"`
	Name          string      `json:"name,omitempty"`
	Avatar        string      `json:"avatar,omitempty"`
	Token         string      `json:"token"`
	ID            Snowflake   `json:"id"`
	Type          WebhookType `json:"type"`
}

// Message is the subset of a created message returned when executing a
// webhook with wait enabled.
type Message struct {
	Timestamp Timestamp  `json:"timestamp"`
	WebhookID *Snowflake `json:"webhook_id,omitempty"`
	Content   string     `json:"content"`
	Embeds    []Embed    `json:"embeds"`
	ID        Snowflake  `json:"id"`
	ChannelID Snowflake  `json:"channel_id"`
	TTS       bool       `json:"tts"`
}

// EndpointWebhookToken is the endpoint of a webhook addressed by its id and
// secret token.
func EndpointWebhookToken(webhookID Snowflake, token string) string {
	return "/webhooks/" + webhookID.String() + "/" + token
}

// FetchWebhookWithToken returns a webhook by its id and token. No
// authorization is required.
func FetchWebhookWithToken(s *Session, webhookID Snowflake, token string) (*Webhook, error) {
	var webhook Webhook

	err := s.Interface.FetchBJ(s, http.MethodGet, EndpointWebhookToken(webhookID, token), "", nil, nil, &webhook)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch webhook: %w", err)
	}

	return &webhook, nil
}

// Execute delivers the passed payload through the webhook. The created
// message is not returned; use ExecuteWait when it is needed.
func (w *Webhook) Execute(s *Session, builder *ExecuteWebhookBuilder) error {
	return w.execute(s, builder, false, nil)
}

// ExecuteWait delivers the passed payload through the webhook and waits for
// the created message.
func (w *Webhook) ExecuteWait(s *Session, builder *ExecuteWebhookBuilder) (*Message, error) {
	var message Message

	err := w.execute(s, builder, true, &message)
	if err != nil {
		return nil, err
	}

	return &message, nil
}

func (w *Webhook) execute(s *Session, builder *ExecuteWebhookBuilder, wait bool, response interface{}) error {
	endpoint := EndpointWebhookToken(w.ID, w.Token)
	if wait {
		endpoint += "?wait=true"
	}

	s.WaitForWebhookBucket(w.ID)

	start := time.Now()
	err := s.Interface.FetchJJ(s, http.MethodPost, endpoint, builder, nil, response)
	RecordWebhookExecution(w.ID, time.Since(start), err)

	if err != nil {
		return fmt.Errorf("failed to execute webhook: %w", err)
	}

	return nil
}
