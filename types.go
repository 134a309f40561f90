package discordhook

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// types.go contains the scalar types shared by the webhook API surface.

const DiscordCreation = 1420070400000

var null = []byte("null")

// Snowflake is a discord object id. It is transmitted as a string on the wire
// but handled as an int64.
type Snowflake int64

func (s Snowflake) IsNil() bool {
	return s == 0
}

func (s Snowflake) String() string {
	return strconv.FormatInt(int64(s), 10)
}

// Time returns the creation time of the Snowflake.
func (s Snowflake) Time() time.Time {
	nsec := (int64(s) >> 22) + DiscordCreation

	return time.Unix(0, nsec*1000000)
}

func (s *Snowflake) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, null) {
		*s = 0

		return nil
	}

	if len(b) >= 2 && b[0] == '"' {
		b = b[1 : len(b)-1]
	}

	i, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("failed to unmarshal snowflake: %w", err)
	}

	*s = Snowflake(i)

	return nil
}

func (s Snowflake) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 22)

	buf = append(buf, '"')
	buf = strconv.AppendInt(buf, int64(s), 10)
	buf = append(buf, '"')

	return buf, nil
}

// Timestamp is an RFC 3339 timestamp. An empty timestamp marshals to null.
type Timestamp string

func NewTimestamp(t time.Time) *Timestamp {
	timestamp := Timestamp(t.Format(time.RFC3339))

	return &timestamp
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t == "" {
		return null, nil
	}

	return json.Marshal(string(t))
}
