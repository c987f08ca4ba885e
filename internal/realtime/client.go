package realtime

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"voice-ecommerce-be/internal/constant"
	"voice-ecommerce-be/internal/pkg/logger"
	"voice-ecommerce-be/internal/voice"
)

const (
	// DefaultModel is the upstream realtime speech model.
	DefaultModel = "gpt-realtime-mini-2025-12-15"

	defaultEndpoint = "wss://api.openai.com/v1/realtime"

	connectTimeout = 15 * time.Second
	greetingDelay  = 500 * time.Millisecond

	// The session is configured for pcm16 output at 24kHz, so one millisecond
	// of played audio is outputSampleRateHz/1000 samples. The truncate offset
	// sent upstream is derived from this, not hardcoded.
	outputSampleRateHz = 24000
	samplesPerMs       = outputSampleRateHz / 1000
)

// ClientConfig configures one upstream bridge.
type ClientConfig struct {
	APIKey     string
	Model      string
	Endpoint   string // ws(s) URL without query; overridden in tests
	Sink       Sink
	Dispatcher *voice.Dispatcher
	Logger     logger.ILogger
}

// Client owns exactly one upstream realtime connection for one client
// session. It translates between the client-facing event vocabulary and the
// upstream wire protocol, and enforces the interruption contract.
//
// currentResponseID and audioSamplesSent are touched only from readLoop, so
// the interruption protocol is atomic with respect to audio-delta handling by
// construction.
type Client struct {
	cfg  ClientConfig
	conn *websocket.Conn

	writeMu   sync.Mutex
	closeOnce sync.Once
	connected atomic.Bool
	done      chan struct{}

	greetTimer *time.Timer

	currentResponseID string
	audioSamplesSent  int
}

// NewClient validates the config and returns an unconnected bridge.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("realtime: api key is required")
	}
	if cfg.Sink == nil {
		return nil, errors.New("realtime: sink is required")
	}
	if cfg.Dispatcher == nil {
		return nil, errors.New("realtime: dispatcher is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	return &Client{cfg: cfg, done: make(chan struct{})}, nil
}

// Connect dials the upstream API, configures the session, starts the event
// loop, and schedules the initial greeting. A failed handshake leaves the
// client unusable; callers must not reuse it.
func (c *Client) Connect() error {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	header.Set("OpenAI-Beta", "realtime=v1")

	dialer := websocket.Dialer{HandshakeTimeout: connectTimeout}
	url := c.cfg.Endpoint + "?model=" + c.cfg.Model

	conn, _, err := dialer.Dial(url, header)
	if err != nil {
		return errors.Wrap(err, "realtime: upstream handshake failed")
	}
	c.conn = conn
	c.connected.Store(true)

	if err := c.configureSession(); err != nil {
		c.Disconnect()
		return errors.Wrap(err, "realtime: session configuration failed")
	}

	go c.readLoop()

	// Delay the greeting so it cannot race session configuration upstream.
	c.greetTimer = time.AfterFunc(greetingDelay, c.sendInitialGreeting)

	c.cfg.Logger.Info("realtime", "connected to upstream", map[string]interface{}{
		"model": c.cfg.Model,
	})
	return nil
}

// Connected reports whether the upstream connection is live.
func (c *Client) Connected() bool {
	return c.connected.Load()
}

// Done is closed when the upstream event loop exits.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// SendAudio forwards one raw microphone chunk upstream. Fire-and-forget: a
// no-op when disconnected, and send errors are logged, not returned upward.
func (c *Client) SendAudio(pcm []byte) {
	if !c.connected.Load() {
		return
	}
	frame := inputAudioAppendFrame{
		Type:  "input_audio_buffer.append",
		Audio: base64.StdEncoding.EncodeToString(pcm),
	}
	if err := c.writeJSON(frame); err != nil {
		c.cfg.Logger.Error("realtime", "failed to send audio", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// Disconnect closes the upstream connection. Idempotent and safe from any
// goroutine, including failure-cleanup paths.
func (c *Client) Disconnect() {
	c.closeOnce.Do(func() {
		c.connected.Store(false)
		if c.greetTimer != nil {
			c.greetTimer.Stop()
		}
		if c.conn != nil {
			c.writeMu.Lock()
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(2*time.Second))
			c.writeMu.Unlock()
			_ = c.conn.Close()
		}
		c.cfg.Logger.Info("realtime", "disconnected from upstream", nil)
	})
}

func (c *Client) configureSession() error {
	frame := sessionUpdateFrame{
		Type: "session.update",
		Session: map[string]interface{}{
			"modalities":          []string{"text", "audio"},
			"instructions":        constant.AssistantInstructions,
			"voice":               "sage",
			"input_audio_format":  "pcm16",
			"output_audio_format": "pcm16",
			"input_audio_transcription": map[string]interface{}{
				"model": "whisper-1",
			},
			"turn_detection": map[string]interface{}{
				"type":                "server_vad",
				"threshold":           0.5,
				"prefix_padding_ms":   300,
				"silence_duration_ms": 600,
			},
			"tools":       voice.ToolDefinitions(),
			"tool_choice": "auto",
			"temperature": 0.7,
		},
	}
	return c.writeJSON(frame)
}

func (c *Client) sendInitialGreeting() {
	if !c.connected.Load() {
		return
	}
	frame := responseCreateFrame{
		Type: "response.create",
		Response: map[string]interface{}{
			"modalities":   []string{"text", "audio"},
			"instructions": constant.GreetingInstructions,
		},
	}
	if err := c.writeJSON(frame); err != nil {
		c.cfg.Logger.Error("realtime", "failed to trigger greeting", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	c.cfg.Logger.Info("realtime", "initial greeting triggered", nil)
}

// readLoop consumes upstream messages one at a time for the lifetime of the
// connection. A malformed message is logged and skipped; a closed connection
// terminates the loop and marks the session disconnected. No reconnects here.
func (c *Client) readLoop() {
	defer close(c.done)
	defer c.connected.Store(false)

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.cfg.Logger.Info("realtime", "upstream connection closed", nil)
			} else if c.connected.Load() {
				c.cfg.Logger.Error("realtime", "upstream read failed", map[string]interface{}{
					"error": err.Error(),
				})
			}
			return
		}

		var event serverEvent
		if err := json.Unmarshal(data, &event); err != nil {
			c.cfg.Logger.Warn("realtime", "dropping malformed upstream event", map[string]interface{}{
				"error": err.Error(),
			})
			continue
		}
		c.handleEvent(event)
	}
}

func (c *Client) handleEvent(event serverEvent) {
	switch event.Type {
	case "response.audio.delta":
		if event.ItemID != "" {
			c.currentResponseID = event.ItemID
		}
		if event.Delta == "" {
			return
		}
		pcm, err := base64.StdEncoding.DecodeString(event.Delta)
		if err != nil {
			c.cfg.Logger.Warn("realtime", "dropping undecodable audio delta", map[string]interface{}{
				"error": err.Error(),
			})
			return
		}
		c.audioSamplesSent += len(pcm) / 2 // 16-bit samples
		c.cfg.Sink.OnAudioDelta(pcm)

	case "input_audio_buffer.speech_started":
		c.handleInterruption()

	case "response.audio.done":
		c.currentResponseID = ""
		c.audioSamplesSent = 0

	case "response.function_call_arguments.done":
		c.handleFunctionCall(event)

	case "conversation.item.input_audio_transcription.completed":
		c.cfg.Logger.Info("realtime", "user transcript", map[string]interface{}{
			"transcript": event.Transcript,
		})
		c.cfg.Sink.OnEvent(NewUserTranscriptEvent(event.Transcript))

	case "response.audio_transcript.delta":
		c.cfg.Sink.OnEvent(NewTranscriptDeltaEvent(event.Delta))

	case "response.audio_transcript.done":
		c.cfg.Logger.Info("realtime", "assistant transcript", map[string]interface{}{
			"transcript": event.Transcript,
		})
		c.cfg.Sink.OnEvent(NewAssistantTranscriptEvent(event.Transcript))

	case "error":
		c.cfg.Logger.Error("realtime", "upstream error event", map[string]interface{}{
			"error": string(event.Error),
		})
		c.cfg.Sink.OnEvent(NewErrorEvent(event.Error))
	}
}

// handleInterruption runs when upstream VAD reports the user speaking over an
// in-flight response. The truncate offset tells upstream exactly how much
// audio the user already heard; counters are reset before any further delta
// can be processed, so no stale audio for the interrupted response escapes.
func (c *Client) handleInterruption() {
	if c.currentResponseID != "" {
		audioEndMs := c.audioSamplesSent / samplesPerMs
		frame := itemTruncateFrame{
			Type:         "conversation.item.truncate",
			ItemID:       c.currentResponseID,
			ContentIndex: 0,
			AudioEndMs:   audioEndMs,
		}
		if err := c.writeJSON(frame); err != nil {
			c.cfg.Logger.Error("realtime", "failed to truncate response", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			c.cfg.Logger.Info("realtime", "response truncated", map[string]interface{}{
				"item_id":      c.currentResponseID,
				"audio_end_ms": audioEndMs,
			})
		}
		c.currentResponseID = ""
		c.audioSamplesSent = 0
	}
	c.cfg.Sink.OnEvent(NewClearAudioQueueEvent())
}

// handleFunctionCall executes one tool call and closes the loop both ways: a
// ui_update to the client, and a function_call_output plus response.create
// upstream so the model narrates the outcome. Unknown functions and failures
// follow the same path; they never kill the session.
func (c *Client) handleFunctionCall(event serverEvent) {
	c.cfg.Logger.Info("realtime", "function call", map[string]interface{}{
		"name":      event.Name,
		"arguments": event.Arguments,
	})

	result := c.cfg.Dispatcher.Dispatch(event.Name, []byte(event.Arguments))

	c.cfg.Sink.OnUIUpdate(NewUIUpdate(result))

	output, err := json.Marshal(result)
	if err != nil {
		c.cfg.Logger.Error("realtime", "failed to encode function result", map[string]interface{}{
			"name":  event.Name,
			"error": err.Error(),
		})
		return
	}

	create := itemCreateFrame{
		Type: "conversation.item.create",
		Item: functionCallOutput{
			Type:   "function_call_output",
			CallID: event.CallID,
			Output: string(output),
		},
	}
	if err := c.writeJSON(create); err != nil {
		c.cfg.Logger.Error("realtime", "failed to send function output", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if err := c.writeJSON(responseCreateFrame{Type: "response.create"}); err != nil {
		c.cfg.Logger.Error("realtime", "failed to request response", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (c *Client) writeJSON(v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(v)
}
