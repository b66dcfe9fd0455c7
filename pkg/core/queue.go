package core

import (
	"context"
	"encoding/json"
)

// NotifyMessage is the payload of one notification received over HTTP or the queue.
type NotifyMessage struct {
	NotificationRequest
	BuildContext json.RawMessage `json:"buildContext,omitempty"`
}

// Request returns the validated request carried by the message, accepting the
// status in any letter case.
func (m *NotifyMessage) Request() (*NotificationRequest, error) {
	req := m.NotificationRequest
	state, err := ParseCommitState(string(req.Status))
	if err != nil {
		return nil, err
	}
	req.Status = state
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

// NotifyConsumer consumes queued notifications.
type NotifyConsumer interface {
	// Run consumes messages until ctx is done.
	Run(ctx context.Context) error
	// Close closes the underlying reader.
	Close() error
}
