package discordhook_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	discordhook "github.com/lakeward/discordhook"
)

func TestSnowflakeUnmarshal(t *testing.T) {
	t.Parallel()

	var quoted, bare, nullable discordhook.Snowflake

	require.NoError(t, json.Unmarshal([]byte(`"245037420704169985"`), &quoted))
	require.NoError(t, json.Unmarshal([]byte(`245037420704169985`), &bare))
	require.NoError(t, json.Unmarshal([]byte(`null`), &nullable))

	assert.Equal(t, discordhook.Snowflake(245037420704169985), quoted)
	assert.Equal(t, discordhook.Snowflake(245037420704169985), bare)
	assert.True(t, nullable.IsNil())
}

func TestSnowflakeMarshal(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(discordhook.Snowflake(245037420704169985))
	require.NoError(t, err)
	assert.Equal(t, `"245037420704169985"`, string(out))
}

func TestSnowflakeUnmarshalInvalid(t *testing.T) {
	t.Parallel()

	var s discordhook.Snowflake

	assert.Error(t, json.Unmarshal([]byte(`"not a number"`), &s))
}

func TestTimestampMarshalEmpty(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(discordhook.Timestamp(""))
	require.NoError(t, err)
	assert.Equal(t, `null`, string(out))
}
