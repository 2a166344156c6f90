package bot

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"hookbot/pkg/command"
	"hookbot/pkg/config"
	"hookbot/pkg/discord"
	"hookbot/pkg/interaction"
	"hookbot/pkg/logger"
	"hookbot/pkg/rest"
)

type testHarness struct {
	server   *Server
	private  ed25519.PrivateKey
	registry *command.Registry
	outbound *[]string
}

// newHarness builds a server with a fresh signing key, a recording
// outbound client and an empty registry.
func newHarness(t *testing.T) *testHarness {
	t.Helper()

	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("generating key: %v", err)
	}

	var outbound []string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		outbound = append(outbound, r.Method+" "+r.URL.Path)
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(upstream.Close)

	log := &logger.Logger{Logger: zap.NewNop()}
	cfg := &config.Config{
		App: config.AppConfig{
			ID:        7,
			PublicKey: hex.EncodeToString(pub),
			Token:     "test-token",
		},
		Server: config.ServerConfig{
			Host: "127.0.0.1",
			Port: 8330,
			Path: "/api/interactions",
		},
	}
	client := rest.New(cfg.App.Token, log, rest.WithBaseURL(upstream.URL))
	registry := command.NewRegistry(log)

	srv, err := NewServer(cfg, log, registry, client)
	if err != nil {
		t.Fatalf("building server: %v", err)
	}
	return &testHarness{server: srv, private: priv, registry: registry, outbound: &outbound}
}

// post signs and delivers an interaction payload, returning the
// recorded response.
func (h *testHarness) post(t *testing.T, payload any, sign bool) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("encoding payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/interactions", bytes.NewReader(body))
	if sign {
		ts := "1700000000"
		msg := append([]byte(ts), body...)
		sig := ed25519.Sign(h.private, msg)
		req.Header.Set(headerTimestamp, ts)
		req.Header.Set(headerSignature, hex.EncodeToString(sig))
	}

	rec := httptest.NewRecorder()
	h.server.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, r io.Reader, into any) {
	t.Helper()
	if err := json.NewDecoder(r).Decode(into); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
}

func TestNewServer_AcceptsPaddedPublicKey(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("generating key: %v", err)
	}

	log := &logger.Logger{Logger: zap.NewNop()}
	cfg := &config.Config{
		App: config.AppConfig{
			ID:        7,
			PublicKey: "  " + hex.EncodeToString(pub) + "\n",
		},
		Server: config.ServerConfig{Port: 8330, Path: "/api/interactions"},
	}
	if err := config.Validate(cfg); err != nil {
		t.Fatalf("padded key should validate: %v", err)
	}
	// Any key that passes validation must also build a server.
	if _, err := NewServer(cfg, log, command.NewRegistry(log), rest.New("", log)); err != nil {
		t.Fatalf("building server with padded key: %v", err)
	}
}

func TestDispatch_UnsignedRequestIs401(t *testing.T) {
	h := newHarness(t)

	rec := h.post(t, discord.InteractionPayload{ID: 1, Type: discord.InteractionPing}, false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", rec.Code)
	}
	var body map[string]string
	decodeJSON(t, rec.Body, &body)
	if body["error"] != "Bad request signature" {
		t.Fatalf("error body: got %+v", body)
	}
}

func TestDispatch_TamperedBodyIs401(t *testing.T) {
	h := newHarness(t)

	body := []byte(`{"id":"1","type":1}`)
	ts := "1700000000"
	sig := ed25519.Sign(h.private, append([]byte(ts), body...))

	// Deliver different bytes than were signed.
	req := httptest.NewRequest(http.MethodPost, "/api/interactions", bytes.NewReader([]byte(`{"id":"2","type":1}`)))
	req.Header.Set(headerTimestamp, ts)
	req.Header.Set(headerSignature, hex.EncodeToString(sig))
	rec := httptest.NewRecorder()
	h.server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", rec.Code)
	}
}

func TestDispatch_PingPong(t *testing.T) {
	h := newHarness(t)

	rec := h.post(t, discord.InteractionPayload{ID: 1, Type: discord.InteractionPing}, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	var env struct {
		Type int `json:"type"`
	}
	decodeJSON(t, rec.Body, &env)
	if env.Type != int(discord.ResponsePong) {
		t.Fatalf("type: got %d, want pong", env.Type)
	}
}

func TestDispatch_SyncCommandResponse(t *testing.T) {
	h := newHarness(t)
	h.registry.MustRegister(command.New("echo", "Echo back", func(ctx context.Context, ic *interaction.Interaction, opts command.Options) (*interaction.Response, error) {
		msg, _ := opts.String("message")
		return interaction.NewResponse(msg), nil
	}).WithOptions(command.NewOption("message", "What to say", command.KindString).AsRequired()))

	rec := h.post(t, discord.InteractionPayload{
		ID:    2,
		Type:  discord.InteractionApplicationCommand,
		Token: "tok",
		Data: &discord.InteractionData{
			Name: "echo",
			Type: discord.CommandChatInput,
			Options: []discord.RawOption{
				{Name: "message", Type: discord.OptionString, Value: json.RawMessage(`"hi there"`)},
			},
		},
	}, true)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200, body %s", rec.Code, rec.Body)
	}
	var env struct {
		Type int `json:"type"`
		Data struct {
			Content string `json:"content"`
		} `json:"data"`
	}
	decodeJSON(t, rec.Body, &env)
	if env.Type != int(discord.ResponseChannelMessageWithSource) {
		t.Fatalf("type: got %d", env.Type)
	}
	if env.Data.Content != "hi there" {
		t.Fatalf("content: got %q", env.Data.Content)
	}
	if len(*h.outbound) != 0 {
		t.Fatalf("sync response must not call Discord, saw %v", *h.outbound)
	}
}

func TestDispatch_UnknownCommandIs404(t *testing.T) {
	h := newHarness(t)

	rec := h.post(t, discord.InteractionPayload{
		ID:    3,
		Type:  discord.InteractionApplicationCommand,
		Token: "tok",
		Data:  &discord.InteractionData{Name: "ghost", Type: discord.CommandChatInput},
	}, true)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", rec.Code)
	}
}

func TestDispatch_AutoDeferRunsDeferThenPatch(t *testing.T) {
	h := newHarness(t)
	h.registry.MustRegister(command.New("slow", "Takes a while", func(ctx context.Context, ic *interaction.Interaction, opts command.Options) (*interaction.Response, error) {
		if ic.State() != interaction.StateDeferred {
			t.Errorf("handler should run deferred, state %v", ic.State())
		}
		return interaction.NewResponse("finally"), nil
	}).WithAutoDefer(false))

	rec := h.post(t, discord.InteractionPayload{
		ID:            4,
		ApplicationID: 7,
		Type:          discord.InteractionApplicationCommand,
		Token:         "tok",
		Data:          &discord.InteractionData{Name: "slow", Type: discord.CommandChatInput},
	}, true)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status: got %d, want 202, body %s", rec.Code, rec.Body)
	}
	want := []string{
		"POST /interactions/4/tok/callback",
		"PATCH /webhooks/7/tok/messages/@original",
	}
	if len(*h.outbound) != len(want) {
		t.Fatalf("outbound calls: got %v, want %v", *h.outbound, want)
	}
	for i, w := range want {
		if (*h.outbound)[i] != w {
			t.Fatalf("outbound call %d: got %s, want %s", i, (*h.outbound)[i], w)
		}
	}
}

func TestDispatch_FilesForceDeferPatchFlow(t *testing.T) {
	h := newHarness(t)
	h.registry.MustRegister(command.New("report", "Send a file", func(ctx context.Context, ic *interaction.Interaction, opts command.Options) (*interaction.Response, error) {
		return interaction.NewResponse("attached").
			AddFile(discord.NewFileReader(bytes.NewReader([]byte("data")), "r.txt")), nil
	}))

	rec := h.post(t, discord.InteractionPayload{
		ID:            5,
		ApplicationID: 7,
		Type:          discord.InteractionApplicationCommand,
		Token:         "tok",
		Data:          &discord.InteractionData{Name: "report", Type: discord.CommandChatInput},
	}, true)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status: got %d, want 202, body %s", rec.Code, rec.Body)
	}
	if len(*h.outbound) != 2 {
		t.Fatalf("expected defer then patch, saw %v", *h.outbound)
	}
}

func TestDispatch_AutocompleteReturnsChoices(t *testing.T) {
	h := newHarness(t)
	h.registry.MustRegister(command.New("quote", "Quote a line", func(ctx context.Context, ic *interaction.Interaction, opts command.Options) (*interaction.Response, error) {
		return interaction.NewResponse("x"), nil
	}).
		WithOptions(command.NewOption("topic", "Topic", command.KindString).AsRequired()).
		WithAutocomplete("topic", func(ctx context.Context, ic *interaction.Interaction, value string) ([]interaction.Choice, error) {
			return []interaction.Choice{{Name: "towels", Value: "towels"}}, nil
		}))

	rec := h.post(t, discord.InteractionPayload{
		ID:    6,
		Type:  discord.InteractionApplicationCommandAutocomplete,
		Token: "tok",
		Data: &discord.InteractionData{
			Name: "quote",
			Type: discord.CommandChatInput,
			Options: []discord.RawOption{
				{Name: "topic", Type: discord.OptionString, Value: json.RawMessage(`"tow"`), Focused: true},
			},
		},
	}, true)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200, body %s", rec.Code, rec.Body)
	}
	var env struct {
		Type int `json:"type"`
		Data struct {
			Choices []struct {
				Name string `json:"name"`
			} `json:"choices"`
		} `json:"data"`
	}
	decodeJSON(t, rec.Body, &env)
	if env.Type != int(discord.ResponseAutocompleteResult) {
		t.Fatalf("type: got %d", env.Type)
	}
	if len(env.Data.Choices) != 1 || env.Data.Choices[0].Name != "towels" {
		t.Fatalf("choices: got %+v", env.Data.Choices)
	}
}

func TestRegisterCommands_PutsFullTree(t *testing.T) {
	h := newHarness(t)
	h.registry.MustRegister(command.New("one", "First", func(ctx context.Context, ic *interaction.Interaction, opts command.Options) (*interaction.Response, error) {
		return interaction.NewResponse("1"), nil
	}))

	if err := h.server.RegisterCommands(context.Background()); err != nil {
		t.Fatalf("register: %v", err)
	}
	if len(*h.outbound) != 1 || (*h.outbound)[0] != "PUT /applications/7/commands" {
		t.Fatalf("outbound: got %v", *h.outbound)
	}
}
