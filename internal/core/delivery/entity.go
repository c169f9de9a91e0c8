package delivery

import (
	"time"

	"github.com/google/uuid"
	"wristweather.app/internal/ports"
)

// Delivery results recorded in metrics
const (
	ResultAck       = "ack"
	ResultRetry     = "retry"
	ResultAbandoned = "abandoned"
)

// Attempt tracks one message through the retry driver
type Attempt struct {
	ID        string
	Message   ports.AppMessage
	Retries   int
	StartedAt time.Time
}

// NewAttempt creates an attempt with a fresh correlation ID
func NewAttempt(msg ports.AppMessage) *Attempt {
	return &Attempt{
		ID:        uuid.New().String(),
		Message:   msg,
		StartedAt: time.Now(),
	}
}

// Nack registers a negative acknowledgment and reports whether the attempt may be resent
func (a *Attempt) Nack(maxRetry int) bool {
	a.Retries++
	return a.Retries < maxRetry
}
