package model

import "time"

// VoiceSession is the durable record of one live voice connection.
type VoiceSession struct {
	ID         string    `json:"id"`
	Model      string    `json:"model"`
	ClientAddr string    `json:"client_addr"`
	StartedAt  time.Time `json:"started_at"`
}
