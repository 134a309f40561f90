package discordhook

import (
	"bytes"
	stdjson "encoding/json"
)

// payload.go contains the builder for the inner content of a webhook execution.

// Payload field names understood by the webhook execution endpoint.
const (
	FieldContent   = "content"
	FieldUsername  = "username"
	FieldAvatarURL = "avatar_url"
	FieldTTS       = "tts"
	FieldEmbeds    = "embeds"
)

// EmbedValue is an opaque, pre-serialized embed object. The payload builder
// stores embed values without inspecting their shape; Embed.Raw produces them.
type EmbedValue = stdjson.RawMessage

// FieldKind discriminates which variant of a FieldValue is set.
type FieldKind uint8

const (
	FieldKindString FieldKind = iota
	FieldKindBool
	FieldKindEmbeds
)

// FieldValue is a closed variant over the value types a payload field carries:
// a string, a boolean or a sequence of embed values.
type FieldValue struct {
	Embeds []EmbedValue
	String string
	Kind   FieldKind
	Bool   bool
}

func StringValue(value string) FieldValue {
	return FieldValue{Kind: FieldKindString, String: value}
}

func BoolValue(value bool) FieldValue {
	return FieldValue{Kind: FieldKindBool, Bool: value}
}

func EmbedsValue(embeds []EmbedValue) FieldValue {
	return FieldValue{Kind: FieldKindEmbeds, Embeds: embeds}
}

func (v FieldValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case FieldKindBool:
		if v.Bool {
			return []byte("true"), nil
		}

		return []byte("false"), nil
	case FieldKindEmbeds:
		if len(v.Embeds) == 0 {
			return []byte("[]"), nil
		}

		return json.Marshal(v.Embeds)
	default:
		return json.Marshal(v.String)
	}
}

// PayloadField is a single named entry in an execution payload.
type PayloadField struct {
	Name  string
	Value FieldValue
}

// ExecuteWebhookBuilder assembles the payload of a single webhook execution.
// Fields keep their insertion order and setting the same field twice replaces
// its value in place. A fresh builder contains exactly one field, tts set to
// false, so the flag is always present on the wire.
//
// The builder performs no validation: restrictions such as content length,
// embed counts or the content/embeds combination are reported by the API when
// the payload is executed. A builder is owned by one pending execution and
// must not be shared across goroutines.
type ExecuteWebhookBuilder struct {
	fields []PayloadField
}

// NewExecuteWebhookBuilder returns a builder in its default state.
func NewExecuteWebhookBuilder() *ExecuteWebhookBuilder {
	builder := &ExecuteWebhookBuilder{
		fields: make([]PayloadField, 0, 5),
	}

	builder.SetTTS(false)

	return builder
}

func (b *ExecuteWebhookBuilder) set(name string, value FieldValue) {
	for i := range b.fields {
		if b.fields[i].Name == name {
			b.fields[i].Value = value

			return
		}
	}

	b.fields = append(b.fields, PayloadField{Name: name, Value: value})
}

// SetContent sets the content of the message.
func (b *ExecuteWebhookBuilder) SetContent(content string) *ExecuteWebhookBuilder {
	b.set(FieldContent, StringValue(content))

	return b
}

// SetUsername overrides the default name of the webhook.
func (b *ExecuteWebhookBuilder) SetUsername(username string) *ExecuteWebhookBuilder {
	b.set(FieldUsername, StringValue(username))

	return b
}

// SetAvatarURL overrides the default avatar of the webhook with an image URL.
func (b *ExecuteWebhookBuilder) SetAvatarURL(avatarURL string) *ExecuteWebhookBuilder {
	b.set(FieldAvatarURL, StringValue(avatarURL))

	return b
}

// SetTTS sets whether the message is a text-to-speech message.
func (b *ExecuteWebhookBuilder) SetTTS(tts bool) *ExecuteWebhookBuilder {
	b.set(FieldTTS, BoolValue(tts))

	return b
}

// SetEmbeds sets the embeds associated with the message. The sequence replaces
// any previously set embeds, it is never appended to.
func (b *ExecuteWebhookBuilder) SetEmbeds(embeds []EmbedValue) *ExecuteWebhookBuilder {
	b.set(FieldEmbeds, EmbedsValue(embeds))

	return b
}

// Fields returns the payload fields in insertion order.
func (b *ExecuteWebhookBuilder) Fields() []PayloadField {
	return b.fields
}

// Get returns the value of a named field and whether it is present.
func (b *ExecuteWebhookBuilder) Get(name string) (FieldValue, bool) {
	for i := range b.fields {
		if b.fields[i].Name == name {
			return b.fields[i].Value, true
		}
	}

	return FieldValue{}, false
}

// Len returns the number of fields currently set.
func (b *ExecuteWebhookBuilder) Len() int {
	return len(b.fields)
}

// MarshalJSON emits the payload as a JSON object with its fields in insertion
// order.
func (b *ExecuteWebhookBuilder) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i := range b.fields {
		if i > 0 {
			buf.WriteByte(',')
		}

		name, err := json.Marshal(b.fields[i].Name)
		if err != nil {
			return nil, err
		}

		buf.Write(name)
		buf.WriteByte(':')

		value, err := b.fields[i].Value.MarshalJSON()
		if err != nil {
			return nil, err
		}

		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
