package realtime

import (
	"encoding/json"

	"voice-ecommerce-be/internal/voice"
)

// Client-facing events. These are the only upstream-derived messages the
// frontend ever sees; everything else stays inside the bridge.

type ClearAudioQueueEvent struct {
	Type string `json:"type"`
}

func NewClearAudioQueueEvent() ClearAudioQueueEvent {
	return ClearAudioQueueEvent{Type: "clear_audio_queue"}
}

type UserTranscriptEvent struct {
	Type       string `json:"type"`
	Transcript string `json:"transcript"`
}

func NewUserTranscriptEvent(transcript string) UserTranscriptEvent {
	return UserTranscriptEvent{Type: "user_transcript", Transcript: transcript}
}

type AssistantTranscriptEvent struct {
	Type       string `json:"type"`
	Transcript string `json:"transcript"`
}

func NewAssistantTranscriptEvent(transcript string) AssistantTranscriptEvent {
	return AssistantTranscriptEvent{Type: "assistant_transcript", Transcript: transcript}
}

// TranscriptDeltaEvent streams partial assistant transcript text so the UI can
// render captions while audio is still playing.
type TranscriptDeltaEvent struct {
	Type  string `json:"type"`
	Delta string `json:"delta"`
}

func NewTranscriptDeltaEvent(delta string) TranscriptDeltaEvent {
	return TranscriptDeltaEvent{Type: "response.audio_transcript.delta", Delta: delta}
}

type ErrorEvent struct {
	Type  string          `json:"type"`
	Error json.RawMessage `json:"error"`
}

func NewErrorEvent(detail json.RawMessage) ErrorEvent {
	if len(detail) == 0 {
		detail = json.RawMessage(`{}`)
	}
	return ErrorEvent{Type: "error", Error: detail}
}

// UIUpdate tells the frontend to mutate the page after a function call. It is
// emitted for every dispatched call, failures included, so the UI is never
// left guessing.
type UIUpdate struct {
	Type       string                 `json:"type"`
	Action     string                 `json:"action"`
	NavigateTo string                 `json:"navigate_to,omitempty"`
	Filters    map[string]interface{} `json:"filters,omitempty"`
	Data       map[string]interface{} `json:"data,omitempty"`
	Success    bool                   `json:"success"`
}

func NewUIUpdate(result voice.Result) UIUpdate {
	return UIUpdate{
		Type:       "ui_update",
		Action:     result.UIAction.Kind,
		NavigateTo: result.UIAction.NavigateTo,
		Filters:    result.UIAction.Filters,
		Data:       result.Data,
		Success:    result.Success,
	}
}

// Sink receives everything the bridge produces for one client session. The
// handler layer adapts it onto the client websocket; tests substitute a
// recording fake.
type Sink interface {
	// OnAudioDelta receives one decoded PCM chunk, in arrival order.
	OnAudioDelta(pcm []byte)
	// OnEvent receives one of the client-facing event structs above.
	OnEvent(event interface{})
	// OnUIUpdate receives the UI directive produced by a function call.
	OnUIUpdate(update UIUpdate)
}

// serverEvent is the superset envelope for every upstream message the bridge
// consumes. Fields irrelevant to a given tag are simply zero.
type serverEvent struct {
	Type       string          `json:"type"`
	ItemID     string          `json:"item_id"`
	Delta      string          `json:"delta"`
	Transcript string          `json:"transcript"`
	CallID     string          `json:"call_id"`
	Name       string          `json:"name"`
	Arguments  string          `json:"arguments"`
	Error      json.RawMessage `json:"error"`
}

// Outbound upstream frames.

type sessionUpdateFrame struct {
	Type    string                 `json:"type"`
	Session map[string]interface{} `json:"session"`
}

type inputAudioAppendFrame struct {
	Type  string `json:"type"`
	Audio string `json:"audio"`
}

type itemTruncateFrame struct {
	Type         string `json:"type"`
	ItemID       string `json:"item_id"`
	ContentIndex int    `json:"content_index"`
	AudioEndMs   int    `json:"audio_end_ms"`
}

type functionCallOutput struct {
	Type   string `json:"type"`
	CallID string `json:"call_id"`
	Output string `json:"output"`
}

type itemCreateFrame struct {
	Type string             `json:"type"`
	Item functionCallOutput `json:"item"`
}

type responseCreateFrame struct {
	Type     string                 `json:"type"`
	Response map[string]interface{} `json:"response,omitempty"`
}
