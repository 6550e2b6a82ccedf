package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// BulkSMSClient talks to the bulk SMS provider over HTTP. The provider
// answers every request with a JSON body carrying a response_code; 202
// means the message was accepted for delivery.
type BulkSMSClient struct {
	GatewayURL string
	APIKey     string
	SenderID   string
	HTTPClient *http.Client
}

func NewBulkSMSClient(gatewayURL, apiKey, senderID string) *BulkSMSClient {
	return &BulkSMSClient{
		GatewayURL: gatewayURL,
		APIKey:     apiKey,
		SenderID:   senderID,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *BulkSMSClient) Send(ctx context.Context, phoneNumber, message string) (*GatewayResponse, error) {
	if strings.TrimSpace(c.GatewayURL) == "" {
		return nil, fmt.Errorf("sms gateway not configured")
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}

	form := url.Values{}
	form.Set("api_key", c.APIKey)
	form.Set("senderid", c.SenderID)
	form.Set("number", phoneNumber)
	form.Set("message", message)

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.GatewayURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := c.HTTPClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	body, _ := io.ReadAll(response.Body)

	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusAccepted {
		return nil, fmt.Errorf("gateway returned status %d body=%q", response.StatusCode, string(body))
	}

	var decoded GatewayResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("invalid JSON response: %w body=%q", err, string(body))
	}
	decoded.Raw = body
	return &decoded, nil
}
