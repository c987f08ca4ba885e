package realtime

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-ecommerce-be/internal/repository/memory"
	"voice-ecommerce-be/internal/service"
	"voice-ecommerce-be/internal/voice"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// recordSink captures everything the bridge emits, in order.
type recordSink struct {
	mu        sync.Mutex
	audio     [][]byte
	events    []interface{}
	uiUpdates []UIUpdate
	signal    chan struct{}
}

func newRecordSink() *recordSink {
	return &recordSink{signal: make(chan struct{}, 64)}
}

func (s *recordSink) OnAudioDelta(pcm []byte) {
	s.mu.Lock()
	s.audio = append(s.audio, pcm)
	s.mu.Unlock()
	s.signal <- struct{}{}
}

func (s *recordSink) OnEvent(event interface{}) {
	s.mu.Lock()
	s.events = append(s.events, event)
	s.mu.Unlock()
	s.signal <- struct{}{}
}

func (s *recordSink) OnUIUpdate(update UIUpdate) {
	s.mu.Lock()
	s.uiUpdates = append(s.uiUpdates, update)
	s.mu.Unlock()
	s.signal <- struct{}{}
}

func (s *recordSink) wait(t *testing.T, pred func() bool) {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		s.mu.Lock()
		ok := pred()
		s.mu.Unlock()
		if ok {
			return
		}
		select {
		case <-s.signal:
		case <-deadline:
			t.Fatal("timed out waiting for sink state")
		}
	}
}

func newUpstreamTestServer(t *testing.T, handler func(conn *websocket.Conn)) (string, func()) {
	t.Helper()

	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		handler(conn)
	}))

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	return wsURL, server.Close
}

func newTestDispatcher() *voice.Dispatcher {
	catalog := service.NewCatalogService(memory.NewCatalogRepository())
	return voice.NewDispatcher(catalog, voice.NewState())
}

func newTestClient(t *testing.T, endpoint string, sink Sink) *Client {
	t.Helper()
	client, err := NewClient(ClientConfig{
		APIKey:     "sk-test",
		Endpoint:   endpoint,
		Sink:       sink,
		Dispatcher: newTestDispatcher(),
		Logger:     nopLogger{},
	})
	require.NoError(t, err)
	return client
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(ClientConfig{Sink: newRecordSink(), Dispatcher: newTestDispatcher(), Logger: nopLogger{}})
	assert.Error(t, err)

	_, err = NewClient(ClientConfig{APIKey: "sk-test", Dispatcher: newTestDispatcher(), Logger: nopLogger{}})
	assert.Error(t, err)

	_, err = NewClient(ClientConfig{APIKey: "sk-test", Sink: newRecordSink(), Logger: nopLogger{}})
	assert.Error(t, err)
}

func TestClient_ConnectSendsSessionConfiguration(t *testing.T) {
	configured := make(chan map[string]interface{}, 1)

	endpoint, closeServer := newUpstreamTestServer(t, func(conn *websocket.Conn) {
		defer conn.Close()
		var frame map[string]interface{}
		if err := conn.ReadJSON(&frame); err != nil {
			return
		}
		configured <- frame
	})
	defer closeServer()

	client := newTestClient(t, endpoint, newRecordSink())
	require.NoError(t, client.Connect())
	defer client.Disconnect()

	select {
	case frame := <-configured:
		assert.Equal(t, "session.update", frame["type"])
		session, ok := frame["session"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "sage", session["voice"])
		assert.Equal(t, "pcm16", session["input_audio_format"])
		assert.Equal(t, "pcm16", session["output_audio_format"])
		assert.Equal(t, "auto", session["tool_choice"])
		tools, ok := session["tools"].([]interface{})
		require.True(t, ok)
		assert.Len(t, tools, 5)
	case <-time.After(3 * time.Second):
		t.Fatal("session configuration never arrived")
	}
}

func TestClient_InterruptionTruncatesInFlightResponse(t *testing.T) {
	frames := make(chan map[string]interface{}, 32)
	pcm := bytes.Repeat([]byte{0x01, 0x02}, 2400) // 2400 samples = 100ms at 24kHz

	endpoint, closeServer := newUpstreamTestServer(t, func(conn *websocket.Conn) {
		defer conn.Close()
		var sessionUpdate map[string]interface{}
		if err := conn.ReadJSON(&sessionUpdate); err != nil {
			return
		}

		_ = conn.WriteJSON(map[string]interface{}{
			"type":    "response.audio.delta",
			"item_id": "item_1",
			"delta":   base64.StdEncoding.EncodeToString(pcm),
		})
		_ = conn.WriteJSON(map[string]interface{}{"type": "input_audio_buffer.speech_started"})
		// Second barge-in with no response in flight: clear only, no truncate.
		_ = conn.WriteJSON(map[string]interface{}{"type": "input_audio_buffer.speech_started"})

		for {
			var frame map[string]interface{}
			if err := conn.ReadJSON(&frame); err != nil {
				return
			}
			frames <- frame
		}
	})
	defer closeServer()

	sink := newRecordSink()
	client := newTestClient(t, endpoint, sink)
	require.NoError(t, client.Connect())
	defer client.Disconnect()

	sink.wait(t, func() bool {
		clears := 0
		for _, ev := range sink.events {
			if _, ok := ev.(ClearAudioQueueEvent); ok {
				clears++
			}
		}
		return len(sink.audio) == 1 && clears == 2
	})

	sink.mu.Lock()
	assert.Equal(t, pcm, sink.audio[0])
	sink.mu.Unlock()

	select {
	case frame := <-frames:
		require.Equal(t, "conversation.item.truncate", frame["type"])
		assert.Equal(t, "item_1", frame["item_id"])
		assert.Equal(t, float64(0), frame["content_index"])
		assert.Equal(t, float64(100), frame["audio_end_ms"])
	case <-time.After(3 * time.Second):
		t.Fatal("truncate frame never arrived")
	}

	// The second speech_started must not produce another truncate.
	select {
	case frame := <-frames:
		assert.NotEqual(t, "conversation.item.truncate", frame["type"])
	case <-time.After(200 * time.Millisecond):
	}
}

func TestClient_UnknownFunctionRoundTrip(t *testing.T) {
	frames := make(chan map[string]interface{}, 32)

	endpoint, closeServer := newUpstreamTestServer(t, func(conn *websocket.Conn) {
		defer conn.Close()
		var sessionUpdate map[string]interface{}
		if err := conn.ReadJSON(&sessionUpdate); err != nil {
			return
		}

		_ = conn.WriteJSON(map[string]interface{}{
			"type":      "response.function_call_arguments.done",
			"call_id":   "call_1",
			"name":      "foo",
			"arguments": "{}",
		})

		for {
			var frame map[string]interface{}
			if err := conn.ReadJSON(&frame); err != nil {
				return
			}
			frames <- frame
		}
	})
	defer closeServer()

	sink := newRecordSink()
	client := newTestClient(t, endpoint, sink)
	require.NoError(t, client.Connect())
	defer client.Disconnect()

	sink.wait(t, func() bool { return len(sink.uiUpdates) == 1 })

	sink.mu.Lock()
	update := sink.uiUpdates[0]
	sink.mu.Unlock()
	assert.Equal(t, "ui_update", update.Type)
	assert.Equal(t, voice.ActionNone, update.Action)
	assert.False(t, update.Success)

	var create map[string]interface{}
	select {
	case create = <-frames:
	case <-time.After(3 * time.Second):
		t.Fatal("function output never arrived")
	}
	require.Equal(t, "conversation.item.create", create["type"])
	item, ok := create["item"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "function_call_output", item["type"])
	assert.Equal(t, "call_1", item["call_id"])

	var result voice.Result
	require.NoError(t, json.Unmarshal([]byte(item["output"].(string)), &result))
	assert.False(t, result.Success)
	assert.Equal(t, "Unknown function: foo", result.Error)

	select {
	case frame := <-frames:
		assert.Equal(t, "response.create", frame["type"])
	case <-time.After(3 * time.Second):
		t.Fatal("response.create never arrived")
	}
}

func TestClient_FunctionCallUpdatesSessionState(t *testing.T) {
	frames := make(chan map[string]interface{}, 32)

	endpoint, closeServer := newUpstreamTestServer(t, func(conn *websocket.Conn) {
		defer conn.Close()
		var sessionUpdate map[string]interface{}
		if err := conn.ReadJSON(&sessionUpdate); err != nil {
			return
		}

		_ = conn.WriteJSON(map[string]interface{}{
			"type":      "response.function_call_arguments.done",
			"call_id":   "call_1",
			"name":      "search_products",
			"arguments": `{"category": "laptops"}`,
		})

		for {
			var frame map[string]interface{}
			if err := conn.ReadJSON(&frame); err != nil {
				return
			}
			frames <- frame
		}
	})
	defer closeServer()

	sink := newRecordSink()
	client := newTestClient(t, endpoint, sink)
	require.NoError(t, client.Connect())
	defer client.Disconnect()

	sink.wait(t, func() bool { return len(sink.uiUpdates) == 1 })

	sink.mu.Lock()
	update := sink.uiUpdates[0]
	sink.mu.Unlock()
	assert.Equal(t, voice.ActionShowProducts, update.Action)
	assert.Equal(t, "/products", update.NavigateTo)
	assert.Equal(t, "laptops", update.Filters["category"])
	assert.True(t, update.Success)
}

func TestClient_TranscriptEventsReachSink(t *testing.T) {
	endpoint, closeServer := newUpstreamTestServer(t, func(conn *websocket.Conn) {
		defer conn.Close()
		var sessionUpdate map[string]interface{}
		if err := conn.ReadJSON(&sessionUpdate); err != nil {
			return
		}

		_ = conn.WriteJSON(map[string]interface{}{
			"type":       "conversation.item.input_audio_transcription.completed",
			"transcript": "show me laptops",
		})
		_ = conn.WriteJSON(map[string]interface{}{
			"type":  "response.audio_transcript.delta",
			"delta": "I found",
		})
		_ = conn.WriteJSON(map[string]interface{}{
			"type":       "response.audio_transcript.done",
			"transcript": "I found 10 laptops.",
		})

		// Keep the connection open until the client disconnects.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
	defer closeServer()

	sink := newRecordSink()
	client := newTestClient(t, endpoint, sink)
	require.NoError(t, client.Connect())
	defer client.Disconnect()

	sink.wait(t, func() bool { return len(sink.events) == 3 })

	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.Equal(t, NewUserTranscriptEvent("show me laptops"), sink.events[0])
	assert.Equal(t, NewTranscriptDeltaEvent("I found"), sink.events[1])
	assert.Equal(t, NewAssistantTranscriptEvent("I found 10 laptops."), sink.events[2])
}

func TestClient_DisconnectIsIdempotent(t *testing.T) {
	endpoint, closeServer := newUpstreamTestServer(t, func(conn *websocket.Conn) {
		defer conn.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
	defer closeServer()

	client := newTestClient(t, endpoint, newRecordSink())
	require.NoError(t, client.Connect())
	assert.True(t, client.Connected())

	client.Disconnect()
	client.Disconnect()
	assert.False(t, client.Connected())

	select {
	case <-client.Done():
	case <-time.After(3 * time.Second):
		t.Fatal("event loop did not exit after disconnect")
	}
}

func TestClient_SendAudioIsNoOpWhenDisconnected(t *testing.T) {
	client, err := NewClient(ClientConfig{
		APIKey:     "sk-test",
		Sink:       newRecordSink(),
		Dispatcher: newTestDispatcher(),
		Logger:     nopLogger{},
	})
	require.NoError(t, err)

	// Never connected: must not panic or touch the nil connection.
	client.SendAudio([]byte{0x01, 0x02})
}

func TestClient_ConnectFailsAgainstClosedEndpoint(t *testing.T) {
	endpoint, closeServer := newUpstreamTestServer(t, func(conn *websocket.Conn) { conn.Close() })
	closeServer()

	client := newTestClient(t, endpoint, newRecordSink())
	assert.Error(t, client.Connect())
}
