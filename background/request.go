package background

import (
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/aid-api/schema"
	"github.com/bitmark-inc/aid-api/store"
)

const (
	BROADCAST_NEW_REQUEST   = "8a6d1f70-54b3-41dc-9fbc-05f97eaf7d5a"
	NOTIFY_REQUEST_ACCEPTED = "c41a2a53-91d8-45f6-8f0a-6f2f1f0a33be"
)

// candidate fan-out cap for a single new-request broadcast
const broadcastCandidateLimit = 500

// BroadcastNewRequest is a background job to notify candidate helper
// profiles about a new help request. Dispatch delivery is
// at-least-once, so the job re-reads the request and becomes a no-op
// when it is no longer pending.
func (m *BackgroundManager) BroadcastNewRequest(requestID, profileID string) error {
	request, err := m.requests.GetRequest(requestID)
	if err != nil {
		if err == store.ErrRequestNotFound {
			log.WithField("prefix", "background").
				WithField("request_id", requestID).
				Warn("broadcast for a missing request")
			return nil
		}
		return err
	}

	if request.Status != schema.RequestStatusPending {
		return nil
	}

	candidates, err := m.profiles.ListCandidateProfiles(profileID, broadcastCandidateLimit)
	if err != nil {
		return err
	}

	if len(candidates) == 0 {
		return nil
	}

	profileIDs := make([]string, 0, len(candidates))
	for _, p := range candidates {
		profileIDs = append(profileIDs, p.ID)
	}

	return m.notifier.NotifyProfilesByTemplate(profileIDs, BROADCAST_NEW_REQUEST, map[string]interface{}{
		"notification_type": "BROADCAST_NEW_REQUEST",
		"request_id":        requestID,
	})
}

// NotifyRequestAccepted is a background job to tell the requester that
// a helper has claimed the request
func (m *BackgroundManager) NotifyRequestAccepted(requestID string) error {
	request, err := m.requests.GetRequest(requestID)
	if err != nil {
		if err == store.ErrRequestNotFound {
			return nil
		}
		return err
	}

	if request.Status != schema.RequestStatusAccepted {
		// stale or reordered delivery; the store is authoritative
		return nil
	}

	acceptor, err := m.profiles.GetProfile(request.AcceptorProfileID)
	if err != nil {
		return err
	}

	headings, contents := acceptedMessage(acceptor.ShortName)
	return m.notifier.NotifyProfileByText(request.RequesterProfileID, headings, contents, map[string]interface{}{
		"notification_type": "NOTIFY_REQUEST_ACCEPTED",
		"request_id":        requestID,
	})
}
