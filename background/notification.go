package background

import (
	"context"

	"github.com/bitmark-inc/aid-api/external/onesignal"
)

// NotificationCenter is the best-effort push delivery sink. Failures
// from it never feed back into request lifecycle state.
type NotificationCenter interface {
	NotifyProfileByText(profileID string, headings, contents map[string]string, data map[string]interface{}) error
	NotifyProfilesByTemplate(profileIDs []string, templateID string, data map[string]interface{}) error
}

type OnesignalNotificationCenter struct {
	appID  string
	client *onesignal.OneSignalClient
}

func NewOnesignalNotificationCenter(appID string, client *onesignal.OneSignalClient) *OnesignalNotificationCenter {
	return &OnesignalNotificationCenter{
		appID:  appID,
		client: client,
	}
}

func (o *OnesignalNotificationCenter) NotifyProfileByText(profileID string, headings, contents map[string]string, data map[string]interface{}) error {
	filters := []map[string]string{
		{
			"field":    "tag",
			"key":      "profile_id",
			"relation": "=",
			"value":    profileID,
		},
	}

	req := &onesignal.NotificationRequest{
		AppID:          o.appID,
		Headings:       headings,
		Contents:       contents,
		Filters:        filters,
		Data:           data,
		LocalChannelID: "important_alert",
	}
	return o.client.SendNotification(context.Background(), req)
}

// onesignal limits filter expressions per notification; profile tags
// are chunked into OR-joined filter sets of at most notifyBatchSize
const notifyBatchSize = 100

func batchProfileFilters(profileIDs []string) [][]map[string]string {
	batches := [][]map[string]string{}
	filters := []map[string]string{}
	for i, p := range profileIDs {
		if i%notifyBatchSize != 0 {
			filters = append(filters, map[string]string{"operator": "OR"})
		}
		filters = append(filters, map[string]string{
			"field":    "tag",
			"key":      "profile_id",
			"relation": "=",
			"value":    p,
		})
		if i%notifyBatchSize == notifyBatchSize-1 {
			batches = append(batches, filters)
			filters = []map[string]string{}
		}
	}

	// an empty filter set would address every subscriber, so the
	// remainder only forms a batch when it carries at least one tag
	if len(filters) > 0 {
		batches = append(batches, filters)
	}
	return batches
}

func (o *OnesignalNotificationCenter) NotifyProfilesByTemplate(profileIDs []string, templateID string, data map[string]interface{}) error {
	for _, filters := range batchProfileFilters(profileIDs) {
		req := &onesignal.NotificationRequest{
			AppID:          o.appID,
			TemplateID:     templateID,
			Filters:        filters,
			Data:           data,
			LocalChannelID: "important_alert",
		}
		if err := o.client.SendNotification(context.Background(), req); err != nil {
			return err
		}
	}
	return nil
}
