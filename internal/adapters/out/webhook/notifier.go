// Package webhook delivers customer notifications by posting JSON messages
// to an external messaging gateway.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// message is the JSON payload the gateway accepts.
type message struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// NotificationClient posts customer messages to the gateway URL. The gateway
// handles channel selection (SMS, email) from the recipient contact; this
// client only composes and delivers payloads.
type NotificationClient struct {
	gatewayURL string
	client     *http.Client
}

// NewNotificationClient creates a gateway client for the given URL.
func NewNotificationClient(gatewayURL string) *NotificationClient {
	return &NotificationClient{
		gatewayURL: gatewayURL,
		client:     &http.Client{Timeout: defaultTimeout},
	}
}

// SendOTPMessage dispatches a one-time code to the recipient contact,
// labelled with the fulfillment unit it completes.
func (c *NotificationClient) SendOTPMessage(ctx context.Context, recipient, code, unitLabel string) error {
	return c.post(ctx, message{
		Recipient: recipient,
		Subject:   fmt.Sprintf("Delivery verification for %s", unitLabel),
		Body:      fmt.Sprintf("Your delivery verification code is %s.", code),
	})
}

// SendCustomerUpdate sends a free-form status update to the customer.
func (c *NotificationClient) SendCustomerUpdate(ctx context.Context, recipient, subject, body string) error {
	return c.post(ctx, message{
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
	})
}

func (c *NotificationClient) post(ctx context.Context, msg message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gatewayURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("post to messaging gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("messaging gateway returned %s", resp.Status)
	}

	return nil
}
