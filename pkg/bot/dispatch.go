package bot

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
	"go.uber.org/zap"

	"hookbot/pkg/command"
	"hookbot/pkg/discord"
	"hookbot/pkg/interaction"
	"hookbot/pkg/logger"
)

// handleInteraction is the single inbound route. The body must be read
// raw before decoding because the signature covers the exact bytes.
func (s *Server) handleInteraction(c *echo.Context) error {
	reqID := uuid.NewString()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unreadable body"})
	}

	sig := c.Request().Header.Get(headerSignature)
	ts := c.Request().Header.Get(headerTimestamp)
	if !verifySignature(s.publicKey, sig, ts, body) {
		s.logger.Warn("rejected unsigned interaction",
			zap.String("request_id", reqID),
			zap.String("remote", c.Request().RemoteAddr),
		)
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Bad request signature"})
	}

	var payload discord.InteractionPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		s.logger.Warn("undecodable interaction payload",
			zap.String("request_id", reqID),
			zap.Error(err),
		)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	log := s.logger.WithFields(
		zap.String("request_id", reqID),
		zap.String("interaction_id", payload.ID.String()),
		zap.Int("type", int(payload.Type)),
	)

	switch payload.Type {
	case discord.InteractionPing:
		log.Debug("ping acknowledged")
		return c.JSON(http.StatusOK, interaction.Envelope{Type: discord.ResponsePong})

	case discord.InteractionApplicationCommandAutocomplete:
		return s.handleAutocomplete(c, &payload, log)

	case discord.InteractionApplicationCommand:
		return s.handleCommand(c, &payload, log)

	default:
		log.Warn("unsupported interaction type")
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unsupported interaction type"})
	}
}

func (s *Server) handleAutocomplete(c *echo.Context, payload *discord.InteractionPayload, log *logger.Logger) error {
	ic, err := interaction.New(payload, s.rest)
	if err != nil {
		log.Warn("malformed autocomplete payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	choices, err := command.ResolveAutocomplete(c.Request().Context(), s.registry, ic)
	if err != nil {
		log.Warn("autocomplete resolution failed", zap.Error(err))
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, interaction.AutocompleteEnvelope(choices))
}

func (s *Server) handleCommand(c *echo.Context, payload *discord.InteractionPayload, log *logger.Logger) error {
	ctx := c.Request().Context()

	ic, err := interaction.New(payload, s.rest)
	if err != nil {
		log.Warn("malformed command payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	inv, err := command.Resolve(s.registry, ic)
	if err != nil {
		if errors.Is(err, command.ErrUnknownCommand) {
			log.Warn("unknown command", zap.Error(err))
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		log.Warn("command resolution failed", zap.Error(err))
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	log = log.WithFields(zap.Strings("command", inv.Path))

	if inv.Command.AutoDefer {
		if err := ic.Defer(ctx, inv.Command.DeferEphemeral); err != nil {
			log.Error("auto-defer failed", zap.Error(err))
			return c.JSON(http.StatusBadGateway, map[string]string{"error": "deferral failed"})
		}
	}

	resp, err := inv.Command.Handler(ctx, ic, inv.Options)
	if err != nil {
		log.Error("command handler failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "command failed"})
	}

	return s.deliver(c, ic, resp, log)
}

// deliver routes the handler's response through the right channel: the
// synchronous HTTP body when the interaction is still fresh and carries
// no files, otherwise the defer-then-patch flow.
func (s *Server) deliver(c *echo.Context, ic *interaction.Interaction, resp *interaction.Response, log *logger.Logger) error {
	ctx := c.Request().Context()

	if resp == nil {
		// The handler answered out of band (or deliberately stayed
		// silent after a defer); nothing left to send.
		if ic.State() == interaction.StateFresh {
			log.Error("handler returned no response for a fresh interaction")
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "command produced no response"})
		}
		return c.NoContent(http.StatusAccepted)
	}

	if ic.State() == interaction.StateFresh && len(resp.Files) == 0 {
		if err := ic.MarkResponded(); err != nil {
			log.Error("response state error", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, resp.Envelope())
	}

	if ic.State() == interaction.StateFresh {
		if err := ic.Defer(ctx, resp.Ephemeral); err != nil {
			log.Error("defer before upload failed", zap.Error(err))
			return c.JSON(http.StatusBadGateway, map[string]string{"error": "deferral failed"})
		}
	}
	if err := ic.PatchOriginal(ctx, resp); err != nil {
		log.Error("patching original response failed", zap.Error(err))
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "response delivery failed"})
	}
	return c.NoContent(http.StatusAccepted)
}
