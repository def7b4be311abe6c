package ntfy

import (
	"context"
	"fmt"
	"net/http"
	"sale-alerts/services/notifier"
	"strings"
)

func New(url string, client *http.Client) *Impl {
	if client == nil {
		client = &http.Client{}
	}

	return &Impl{url: url, client: client}
}

func (sink *Impl) Name() string {
	return "ntfy"
}

// Send publishes the message body to the topic URL; subject, priority, tags and actions go in headers.
func (sink *Impl) Send(ctx context.Context, msg notifier.Message) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sink.url, strings.NewReader(msg.Body))
	if err != nil {
		return fmt.Errorf("ntfy new request: %w", err)
	}

	req.Header.Set("Title", msg.Subject)
	if msg.Priority != "" {
		req.Header.Set("Priority", msg.Priority)
	}
	if len(msg.Tags) > 0 {
		req.Header.Set("Tags", strings.Join(msg.Tags, ","))
	}
	if actions := formatActions(msg.Actions); actions != "" {
		req.Header.Set("Actions", actions)
	}

	resp, err := sink.client.Do(req)
	if err != nil {
		return fmt.Errorf("ntfy do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: HTTP %d", ErrRejected, resp.StatusCode)
	}

	return nil
}

// formatActions uses the ntfy short action format: "view, <label>, <url>; ...".
func formatActions(actions []notifier.Action) string {
	parts := make([]string, 0, len(actions))
	for _, action := range actions {
		parts = append(parts, "view, "+action.Label+", "+action.URL)
	}

	return strings.Join(parts, "; ")
}
