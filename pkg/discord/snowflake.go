// Package discord contains the wire-level data types exchanged with the
// Discord API: entity views (users, members, roles, channels), interaction
// payloads, locale tables and CDN asset helpers. Everything here is plain
// data mapping; the command pipeline lives in pkg/command.
package discord

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// Epoch is the Discord epoch (first second of 2015) in milliseconds.
const Epoch = 1420070400000

// Snowflake is a Discord object ID. The API serializes snowflakes as
// decimal strings to avoid JSON number precision loss; this type accepts
// both string and number forms on decode and always encodes as a string.
type Snowflake uint64

func (s Snowflake) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// Time returns the creation time encoded in the snowflake.
func (s Snowflake) Time() time.Time {
	ms := int64(s>>22) + Epoch
	return time.UnixMilli(ms).UTC()
}

// ParseSnowflake parses a decimal snowflake string.
func ParseSnowflake(v string) (Snowflake, error) {
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid snowflake %q: %w", v, err)
	}
	return Snowflake(id), nil
}

func (s Snowflake) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

func (s *Snowflake) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = 0
		return nil
	}
	id, err := ParseSnowflake(string(data))
	if err != nil {
		return err
	}
	*s = id
	return nil
}
