package websocket

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"voice-ecommerce-be/internal/pkg/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// Microphone chunks from the browser are small, but leave headroom.
	maxMessageSize = 1 << 20

	sendBufferSize  = 256
	audioBufferSize = 256
)

// Session is one client voice connection. Two outbound queues feed a single
// writePump: Send for JSON events, Audio for raw PCM. Keeping them separate
// lets the pump coalesce audio frames without delaying control events, and
// lets an interruption drop buffered audio without touching events.
type Session struct {
	ID   string
	Conn *websocket.Conn

	send  chan []byte
	audio chan []byte

	closed    atomic.Bool
	closeOnce sync.Once

	logger logger.ILogger
}

func NewSession(conn *websocket.Conn, log logger.ILogger) *Session {
	return &Session{
		ID:     uuid.NewString(),
		Conn:   conn,
		send:   make(chan []byte, sendBufferSize),
		audio:  make(chan []byte, audioBufferSize),
		logger: log,
	}
}

// Run starts the write pump and then reads client frames until the connection
// drops. Binary frames are microphone audio and go to onBinary; text frames
// are reserved for future control messages and are logged and ignored. Run
// blocks for the lifetime of the connection.
func (s *Session) Run(onBinary func(pcm []byte)) {
	go s.writePump()
	s.readPump(onBinary)
}

// EmitJSON queues one event for the client. Never blocks: if the client
// cannot keep up the event is dropped and logged, not allowed to stall the
// upstream loop.
func (s *Session) EmitJSON(v interface{}) {
	if s.closed.Load() {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("websocket", "failed to encode event", map[string]interface{}{
			"session_id": s.ID,
			"error":      err.Error(),
		})
		return
	}
	select {
	case s.send <- data:
	default:
		s.logger.Warn("websocket", "send buffer full, dropping event", map[string]interface{}{
			"session_id": s.ID,
		})
	}
}

// EmitAudio queues one PCM chunk for the client. Same non-blocking contract
// as EmitJSON; a slow client loses audio rather than backpressuring upstream.
func (s *Session) EmitAudio(pcm []byte) {
	if s.closed.Load() {
		return
	}
	select {
	case s.audio <- pcm:
	default:
		s.logger.Warn("websocket", "audio buffer full, dropping chunk", map[string]interface{}{
			"session_id": s.ID,
		})
	}
}

// Close is idempotent and safe from any goroutine.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		if s.Conn != nil {
			_ = s.Conn.Close()
		}
	})
}

func (s *Session) readPump(onBinary func(pcm []byte)) {
	defer s.Close()

	s.Conn.SetReadLimit(maxMessageSize)
	_ = s.Conn.SetReadDeadline(time.Now().Add(pongWait))
	s.Conn.SetPongHandler(func(string) error {
		_ = s.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		messageType, data, err := s.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("websocket", "client read failed", map[string]interface{}{
					"session_id": s.ID,
					"error":      err.Error(),
				})
			}
			return
		}

		switch messageType {
		case websocket.BinaryMessage:
			onBinary(data)
		case websocket.TextMessage:
			s.logger.Debug("websocket", "ignoring text frame", map[string]interface{}{
				"session_id": s.ID,
				"message":    string(data),
			})
		}
	}
}

func (s *Session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.Close()
	}()

	for {
		select {
		case data := <-s.send:
			_ = s.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case pcm := <-s.audio:
			_ = s.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.Conn.WriteMessage(websocket.BinaryMessage, pcm); err != nil {
				return
			}
			// Drain whatever else is already queued so audio keeps up with
			// upstream delta arrival.
			n := len(s.audio)
			for i := 0; i < n; i++ {
				if err := s.Conn.WriteMessage(websocket.BinaryMessage, <-s.audio); err != nil {
					return
				}
			}

		case <-ticker.C:
			_ = s.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
