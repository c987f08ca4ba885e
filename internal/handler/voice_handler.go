package handler

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"voice-ecommerce-be/internal/config"
	"voice-ecommerce-be/internal/model"
	"voice-ecommerce-be/internal/pkg/logger"
	"voice-ecommerce-be/internal/realtime"
	"voice-ecommerce-be/internal/repository/memory"
	"voice-ecommerce-be/internal/service"
	"voice-ecommerce-be/internal/voice"
	internalWS "voice-ecommerce-be/internal/websocket"
)

// VoiceHandler owns the /ws endpoint: one client connection, one upstream
// bridge, one session state. It wires the bridge's sink onto the client
// session queues and relays microphone audio the other way.
type VoiceHandler struct {
	catalog  service.ICatalogService
	registry *internalWS.Registry
	sessions *memory.SessionRepository
	cfg      *config.Config
	logger   logger.ILogger
}

func NewVoiceHandler(
	catalog service.ICatalogService,
	registry *internalWS.Registry,
	sessions *memory.SessionRepository,
	cfg *config.Config,
	log logger.ILogger,
) *VoiceHandler {
	return &VoiceHandler{
		catalog:  catalog,
		registry: registry,
		sessions: sessions,
		cfg:      cfg,
		logger:   log,
	}
}

// ServeWs upgrades the request and runs the voice session to completion.
func (h *VoiceHandler) ServeWs(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	remoteAddr := c.IP()
	return websocket.New(func(conn *websocket.Conn) {
		h.serve(conn, remoteAddr)
	})(c)
}

func (h *VoiceHandler) serve(conn *websocket.Conn, remoteAddr string) {
	session := internalWS.NewSession(conn, h.logger)
	h.logger.Info("VoiceHandler", "voice client connected", map[string]interface{}{
		"session_id": session.ID,
	})

	if !h.cfg.VoiceEnabled() {
		// Pumps have not started yet, so a direct write is safe.
		_ = conn.WriteJSON(realtime.NewErrorEvent(
			json.RawMessage(`{"message": "Voice features not configured - missing API key"}`)))
		session.Close()
		return
	}

	bridge, err := realtime.NewClient(realtime.ClientConfig{
		APIKey:     h.cfg.Keys.OpenAI,
		Model:      h.cfg.Realtime.Model,
		Sink:       &sessionSink{session: session},
		Dispatcher: voice.NewDispatcher(h.catalog, voice.NewState()),
		Logger:     h.logger,
	})
	if err != nil {
		h.logger.Error("VoiceHandler", "failed to build bridge", map[string]interface{}{
			"session_id": session.ID,
			"error":      err.Error(),
		})
		session.Close()
		return
	}

	if err := bridge.Connect(); err != nil {
		h.logger.Error("VoiceHandler", "upstream connect failed", map[string]interface{}{
			"session_id": session.ID,
			"error":      err.Error(),
		})
		_ = conn.WriteJSON(realtime.NewErrorEvent(
			json.RawMessage(`{"message": "Could not reach the voice service"}`)))
		session.Close()
		return
	}

	h.registry.Register(session)
	h.sessions.Save(&model.VoiceSession{
		ID:         session.ID,
		Model:      h.cfg.Realtime.Model,
		ClientAddr: remoteAddr,
		StartedAt:  time.Now(),
	})

	defer func() {
		bridge.Disconnect()
		h.registry.Unregister(session)
		h.sessions.Delete(session.ID)
		session.Close()
		h.logger.Info("VoiceHandler", "voice connection closed", map[string]interface{}{
			"session_id": session.ID,
		})
	}()

	// If the upstream drops first, tear down the client side too.
	go func() {
		<-bridge.Done()
		session.Close()
	}()

	// Blocks until the client disconnects. Binary frames are microphone
	// audio, forwarded verbatim.
	session.Run(bridge.SendAudio)
}

// sessionSink adapts bridge output onto the session's outbound queues.
type sessionSink struct {
	session *internalWS.Session
}

func (s *sessionSink) OnAudioDelta(pcm []byte) {
	s.session.EmitAudio(pcm)
}

func (s *sessionSink) OnEvent(event interface{}) {
	s.session.EmitJSON(event)
}

func (s *sessionSink) OnUIUpdate(update realtime.UIUpdate) {
	s.session.EmitJSON(update)
}
