package discord

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSnowflake_DecodesStringAndNumberForms(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Snowflake
	}{
		{"quoted string", `"175928847299117063"`, 175928847299117063},
		{"bare number", `175928847299117063`, 175928847299117063},
		{"null", `null`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got Snowflake
			if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestSnowflake_AlwaysEncodesAsString(t *testing.T) {
	out, err := json.Marshal(Snowflake(175928847299117063))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"175928847299117063"` {
		t.Fatalf("got %s, want quoted decimal string", out)
	}
}

func TestSnowflake_TimeUsesDiscordEpoch(t *testing.T) {
	// 175928847299117063 >> 22 = 41944705796 ms past the epoch.
	got := Snowflake(175928847299117063).Time()
	want := time.UnixMilli(Epoch + 41944705796).UTC()
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseSnowflake_RejectsGarbage(t *testing.T) {
	if _, err := ParseSnowflake("not-a-number"); err == nil {
		t.Fatal("expected error for non-numeric snowflake")
	}
}
