// Package notify wraps the transactional email provider. Sends are
// fire-and-forget from the shop's point of view: callers log failures and
// never block a user flow on them.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Template identifiers registered with the provider.
const (
	TemplateWelcome      = "moso-welcome"
	TemplateOrderConfirm = "moso-order-confirmation"
)

// Mailer is implemented by the provider client and by test fakes.
type Mailer interface {
	Send(ctx context.Context, template string, params map[string]string) error
}

// Client talks to the provider's HTTP API.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

type sendRequest struct {
	TemplateID string            `json:"template_id"`
	Params     map[string]string `json:"params"`
}

// Send queues one templated email. There is no retry; a non-2xx status is
// returned as an error and the message is considered lost.
func (c *Client) Send(ctx context.Context, template string, params map[string]string) error {
	body, err := json.Marshal(sendRequest{TemplateID: template, Params: params})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/send", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notify: send %s failed with HTTP %d", template, resp.StatusCode)
	}
	return nil
}
