package model

import "time"

// ChatRequest is a chat widget message. Message is untyped so that a
// non-string value degrades to an empty message instead of a 400.
type ChatRequest struct {
	Message any `json:"message"`
}

// Text returns the message if it is a string, "" otherwise.
func (r ChatRequest) Text() string {
	s, _ := r.Message.(string)
	return s
}

// ChatLog records one chat exchange.
type ChatLog struct {
	ID         string    `json:"id" db:"id"`
	Message    string    `json:"message" db:"message"`
	Intent     string    `json:"intent" db:"intent"`
	Confidence float64   `json:"confidence" db:"confidence"`
	Source     string    `json:"source" db:"source"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
