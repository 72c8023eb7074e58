package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/groupvault/pkg/clients"
)

type WebhookNotifier struct {
	url    string
	client clients.HTTPClientI
}

func NewWebhookNotifier(url string, client clients.HTTPClientI) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		client: client,
	}
}

func (w *WebhookNotifier) Notify(_ context.Context, n Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return err
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	status, _, err := w.client.Post(w.url, headers, body)
	if err != nil {
		zap.L().Error("webhook request failed", zap.Error(err), zap.String("url", w.url))
		return err
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook responded with status %d", status)
	}
	return nil
}
