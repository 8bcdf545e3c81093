package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
)

type Notifier struct {
	webhook *string
	client  *http.Client
}

func NewNotifier(webhook *string) *Notifier {
	return &Notifier{
		webhook: webhook,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// LogMessage posts content to the Discord webhook, if configured, and to
// Sentry.
func (n *Notifier) LogMessage(content string) {
	if n.webhook != nil && *n.webhook != "" {
		if err := n.post(content); err != nil {
			sentry.CaptureException(err)
		}
	}

	sentry.CaptureMessage(content)
}

func (n *Notifier) post(content string) error {
	body, err := json.Marshal(map[string]string{"content": content})
	if err != nil {
		return err
	}

	resp, err := n.client.Post(*n.webhook, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("failed to log to discord: %s", resp.Status)
	}
	return nil
}
