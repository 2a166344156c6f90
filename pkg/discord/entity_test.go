package discord

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestUser_AvatarFallsBackToDefault(t *testing.T) {
	u := &User{ID: 80351110224678912, Username: "nelly"}

	url := u.Avatar().URL(256)
	// (80351110224678912 >> 22) % 6 = 5
	if !strings.Contains(url, "/embed/avatars/5.png") {
		t.Fatalf("expected default avatar index 5, got %s", url)
	}

	u.AvatarHash = "a_1269e74af4df7417b13759eae50c83dc"
	url = u.Avatar().URL(256)
	if !strings.HasSuffix(url, ".gif?size=256") {
		t.Fatalf("animated hash should yield a gif URL, got %s", url)
	}
	if !strings.Contains(url, "/avatars/80351110224678912/") {
		t.Fatalf("avatar URL missing user id path, got %s", url)
	}
}

func TestUser_DisplayNamePrefersGlobalName(t *testing.T) {
	u := &User{Username: "nelly", GlobalName: "Nelly"}
	if got := u.DisplayName(); got != "Nelly" {
		t.Fatalf("got %q, want global name", got)
	}
	u.GlobalName = ""
	if got := u.DisplayName(); got != "nelly" {
		t.Fatalf("got %q, want username fallback", got)
	}
}

func TestRoleTags_NullPresenceMeansTrue(t *testing.T) {
	var tags RoleTags
	raw := `{"bot_id":"123","premium_subscriber":null}`
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if tags.BotID != 123 {
		t.Fatalf("bot_id: got %d, want 123", tags.BotID)
	}
	if !tags.PremiumSubscriber {
		t.Fatal("premium_subscriber key present, flag should be true")
	}
	if tags.AvailableForPurchase {
		t.Fatal("available_for_purchase key absent, flag should be false")
	}
}

func TestChannel_VariantIsExhaustive(t *testing.T) {
	cases := []struct {
		typ  ChannelType
		want ChannelVariant
	}{
		{ChannelGuildText, VariantGuild},
		{ChannelPublicThread, VariantGuild},
		{ChannelGuildForum, VariantGuild},
		{ChannelDM, VariantDM},
		{ChannelGroupDM, VariantGroupDM},
		{ChannelType(99), VariantOther},
	}
	for _, tc := range cases {
		c := &Channel{Type: tc.typ}
		if got := c.Variant(); got != tc.want {
			t.Fatalf("type %d: got variant %d, want %d", tc.typ, got, tc.want)
		}
	}
}

func TestMember_GuildAvatarNeedsHashAndUser(t *testing.T) {
	m := &Member{GuildID: 41771983423143937}
	if _, ok := m.GuildAvatar(); ok {
		t.Fatal("member without hash should have no guild avatar")
	}

	m.User = &User{ID: 80351110224678912}
	m.AvatarHash = "abc123"
	asset, ok := m.GuildAvatar()
	if !ok {
		t.Fatal("expected guild avatar asset")
	}
	url := asset.URL(128)
	if !strings.Contains(url, "/guilds/41771983423143937/users/80351110224678912/avatars/") {
		t.Fatalf("unexpected guild avatar URL %s", url)
	}
}

func TestFile_ReadCachesReaderContents(t *testing.T) {
	f := NewFileReader(strings.NewReader("payload"), "data.txt")
	first, err := f.Read()
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	second, err := f.Read()
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if string(first) != "payload" || string(second) != "payload" {
		t.Fatalf("reads disagree: %q vs %q", first, second)
	}
}
