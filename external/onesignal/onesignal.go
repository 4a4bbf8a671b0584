package onesignal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	logPrefix = "onesignal"
	apiServer = "https://onesignal.com"
)

// NotificationRequest - payload for creating a onesignal notification
type NotificationRequest struct {
	AppID          string                 `json:"app_id"`
	TemplateID     string                 `json:"template_id,omitempty"`
	Headings       map[string]string      `json:"headings,omitempty"`
	Contents       map[string]string      `json:"contents,omitempty"`
	Filters        []map[string]string    `json:"filters,omitempty"`
	Data           map[string]interface{} `json:"data,omitempty"`
	LocalChannelID string                 `json:"existing_android_channel_id,omitempty"`
}

// OneSignalClient - client for the onesignal REST API
type OneSignalClient struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewClient - new onesignal api client
func NewClient(client *http.Client) *OneSignalClient {
	return &OneSignalClient{
		endpoint: apiServer,
		apiKey:   viper.GetString("onesignal.key"),
		client:   client,
	}
}

// SendNotification submits a notification creation request
func (c *OneSignalClient) SendNotification(ctx context.Context, notification *NotificationRequest) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/api/v1/notifications", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.WithField("prefix", logPrefix).
			WithField("status", resp.StatusCode).
			Error("unexpected response from onesignal")
		return fmt.Errorf("onesignal responds with status: %d", resp.StatusCode)
	}

	return nil
}
