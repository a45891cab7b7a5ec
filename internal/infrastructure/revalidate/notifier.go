package revalidate

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
	"mintfire.backend/pkg/logger"
)

// Notifier tells the public site's cache layer which pages to
// revalidate after an admin write. Delivery is best effort: failures are
// logged and never propagated to the caller.
type Notifier struct {
	webhookURL string
	client     *http.Client
}

// NewNotifier creates a notifier. An empty webhook URL disables it.
func NewNotifier(webhookURL string) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 5 * time.Second},
	}
}

// Notify posts the changed paths to the revalidation webhook
func (n *Notifier) Notify(ctx context.Context, paths ...string) {
	if n == nil || n.webhookURL == "" || len(paths) == 0 {
		return
	}

	body, err := json.Marshal(map[string][]string{"paths": paths})
	if err != nil {
		logger.Warn(ctx, "revalidate payload encode failed", zap.Error(err))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		logger.Warn(ctx, "revalidate request build failed", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		logger.Warn(ctx, "revalidate webhook unreachable", zap.Error(err), zap.Strings("paths", paths))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		logger.Warn(ctx, "revalidate webhook rejected", zap.Int("status", resp.StatusCode), zap.Strings("paths", paths))
	}
}
