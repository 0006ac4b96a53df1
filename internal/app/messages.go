package app

import (
	"time"

	"github.com/Elekcktra/cars-analyzer/internal/session"
)

// contentReadyMsg is sent when content generation for a unit finishes.
type contentReadyMsg struct {
	Key session.Key
	Err error
}

// replyReadyMsg is sent when a follow-up reply finishes.
type replyReadyMsg struct {
	Key session.Key
	Err error
}

// spinnerTickMsg is sent at short intervals to animate the loading spinner.
type spinnerTickMsg time.Time
