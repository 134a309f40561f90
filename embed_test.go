package discordhook_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	discordhook "github.com/lakeward/discordhook"
)

func TestEmbedBuilder(t *testing.T) {
	t.Parallel()

	embed := discordhook.NewEmbed().
		SetTitle("Rust Resources").
		SetDescription("A few resources to help with learning Rust").
		SetURL("https://www.rust-lang.org").
		SetColor(0xDEA584).
		SetFooter(discordhook.NewEmbedFooter("sent by discordhook", "")).
		AddField(discordhook.NewEmbedField("The Rust Book", "A comprehensive resource for Rust.", false)).
		AddField(discordhook.NewEmbedField("Rust by Example", "A collection of Rust examples", false))

	assert.Equal(t, "Rust Resources", embed.Title)
	assert.Equal(t, int32(0xDEA584), embed.Color)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "Rust by Example", embed.Fields[1].Name)
}

func TestEmbedRaw(t *testing.T) {
	t.Parallel()

	embed := discordhook.NewEmbed().
		SetTitle("The Rust Language Website").
		SetDescription("Rust is a systems programming language.").
		SetColor(0xDEA584)

	raw := embed.Raw()

	var decoded discordhook.Embed
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, *embed, decoded)
}

func TestEmbedRawOmitsEmptyFields(t *testing.T) {
	t.Parallel()

	raw := discordhook.NewEmbed().SetTitle("only a title").Raw()

	assert.JSONEq(t, `{"title":"only a title"}`, string(raw))
}

func TestEmbedTimestampMarshal(t *testing.T) {
	t.Parallel()

	timestamp := discordhook.Timestamp("2024-02-10T21:38:07Z")
	embed := discordhook.NewEmbed().SetTimestamp(&timestamp)

	assert.JSONEq(t, `{"timestamp":"2024-02-10T21:38:07Z"}`, string(embed.Raw()))
}
