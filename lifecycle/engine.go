package lifecycle

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"

	"github.com/bitmark-inc/aid-api/dispatch"
	"github.com/bitmark-inc/aid-api/schema"
	"github.com/bitmark-inc/aid-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "lifecycle")
}

var (
	// ErrInvalidTransition - the request is already in a terminal state
	// and the asked transition is not legal from there
	ErrInvalidTransition = fmt.Errorf("request is not open for this transition")
	// ErrSelfResponse - a profile tried to accept its own request
	ErrSelfResponse = fmt.Errorf("cannot accept your own help request")
	// ErrNotParticipant - the profile takes no part in the request
	ErrNotParticipant = fmt.Errorf("profile is not a participant of this request")
)

const (
	// number of attempts against the store for infrastructure failures
	// before the error is surfaced to the caller
	storeAttempts   = 3
	storeRetryPause = 200 * time.Millisecond
)

// RequestCoordinator drives the help request lifecycle:
// PENDING -> CANCELLED | ACCEPTED, with exactly one acceptor per
// request no matter how many profiles race for it.
type RequestCoordinator interface {
	CreateRequest(userID, profileID string) (*schema.HelpRequest, error)
	CancelRequest(requestID, userID, profileID string) error
	AcceptRequest(requestID, profileID string) error
	GetRequestProfiles(requestID, profileID string) ([]schema.Profile, error)
}

// Engine is the only component holding lifecycle business rules. All
// collaborators are injected; the engine itself keeps no state beyond
// them, so it is safe for concurrent use.
type Engine struct {
	requests  store.RequestStore
	profiles  store.ProfileDirectory
	publisher dispatch.Publisher
}

func NewEngine(requests store.RequestStore, profiles store.ProfileDirectory, publisher dispatch.Publisher) *Engine {
	return &Engine{
		requests:  requests,
		profiles:  profiles,
		publisher: publisher,
	}
}

// CreateRequest opens a new help request for a profile owned by the
// calling user and announces it to the dispatch workers. The announce
// is best-effort: once the record is committed a publish failure is
// reported to monitoring but never rolls the request back.
func (e *Engine) CreateRequest(userID, profileID string) (*schema.HelpRequest, error) {
	if err := e.profiles.ValidateProfileOwnership(profileID, userID); err != nil {
		return nil, err
	}

	profile, err := e.profiles.GetProfile(profileID)
	if err != nil {
		return nil, err
	}

	var request *schema.HelpRequest
	err = e.withStoreRetry(func() error {
		var err error
		request, err = e.requests.CreateRequest(profileID, schema.RequestTypeMisc, profile.ShortName)
		return err
	})
	if err != nil {
		return nil, err
	}

	e.publish(request.ID, func() error {
		return e.publisher.PublishRequestCreated(dispatch.RequestCreatedEvent{
			RequestID: request.ID,
			ProfileID: profileID,
		})
	})

	return request, nil
}

// CancelRequest moves a pending request to CANCELLED. Cancelling an
// already cancelled or accepted request fails with ErrInvalidTransition
// so that the caller observes that nothing was applied. Losing the race
// against a concurrent transition fails with ErrRequestTransitioned;
// both outcomes are final and not retryable.
func (e *Engine) CancelRequest(requestID, userID, profileID string) error {
	if err := e.profiles.ValidateProfileOwnership(profileID, userID); err != nil {
		return err
	}

	request, err := e.requests.GetRequest(requestID)
	if err != nil {
		return err
	}
	if request.Status.Terminal() {
		return ErrInvalidTransition
	}

	_, err = e.requests.TransitionRequest(requestID, schema.RequestStatusPending, schema.RequestStatusCancelled, "")
	return err
}

// AcceptRequest claims a pending request for a candidate profile. The
// conditional transition at the store is the serialization point: for
// any number of concurrent acceptors exactly one transition lands, the
// rest observe ErrRequestTransitioned. Which acceptor wins is whichever
// conditional update reaches the store first.
func (e *Engine) AcceptRequest(requestID, profileID string) error {
	if err := e.validateResponseEligibility(requestID, profileID); err != nil {
		return err
	}

	if _, err := e.requests.TransitionRequest(requestID, schema.RequestStatusPending, schema.RequestStatusAccepted, profileID); err != nil {
		return err
	}

	e.publish(requestID, func() error {
		return e.publisher.PublishRequestAccepted(dispatch.RequestAcceptedEvent{
			RequestID: requestID,
		})
	})

	return nil
}

// GetRequestProfiles returns the profiles involved in a request. Only
// a participant (the requester or the acceptor) may read them.
func (e *Engine) GetRequestProfiles(requestID, profileID string) ([]schema.Profile, error) {
	request, err := e.requests.GetRequest(requestID)
	if err != nil {
		return nil, err
	}

	if profileID != request.RequesterProfileID && profileID != request.AcceptorProfileID {
		return nil, ErrNotParticipant
	}

	profileIDs := []string{request.RequesterProfileID}
	if request.AcceptorProfileID != "" && request.AcceptorProfileID != request.RequesterProfileID {
		profileIDs = append(profileIDs, request.AcceptorProfileID)
	}

	profiles := make([]schema.Profile, 0, len(profileIDs))
	for _, id := range profileIDs {
		p, err := e.profiles.GetProfile(id)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}

	return profiles, nil
}

// validateResponseEligibility confirms a candidate profile may respond
// to a request: the profile must exist and must not be the requester's
// own profile. A request that already found its acceptor reads the same
// to the caller as losing the conditional update, so it reports
// store.ErrRequestTransitioned; a cancelled request was never
// acceptable and reports ErrInvalidTransition.
func (e *Engine) validateResponseEligibility(requestID, candidateProfileID string) error {
	if _, err := e.profiles.GetProfile(candidateProfileID); err != nil {
		return err
	}

	request, err := e.requests.GetRequest(requestID)
	if err != nil {
		return err
	}

	if request.RequesterProfileID == candidateProfileID {
		return ErrSelfResponse
	}

	switch request.Status {
	case schema.RequestStatusAccepted:
		return store.ErrRequestTransitioned
	case schema.RequestStatusCancelled:
		return ErrInvalidTransition
	}

	return nil
}

// withStoreRetry re-attempts an operation on infrastructure failures.
// Sentinel errors carry caller-input meaning and are surfaced at once.
func (e *Engine) withStoreRetry(fn func() error) error {
	var err error
	for attempt := 0; attempt < storeAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(storeRetryPause)
		}
		err = fn()
		if err == nil || !isTransient(err) {
			return err
		}
		log.WithError(err).Warn("store operation failed, retrying")
	}
	return err
}

func isTransient(err error) bool {
	switch err {
	case store.ErrRequestNotFound,
		store.ErrRequestTransitioned,
		store.ErrProfileNotFound,
		store.ErrProfileNotOwned:
		return false
	}
	return true
}

// publish attempts an event publication for a committed transition and
// deliberately discards the failure after reporting it. The store is
// the source of truth; a lost event can be re-derived by scanning
// request state.
func (e *Engine) publish(requestID string, fn func() error) {
	if err := fn(); err != nil {
		log.WithError(err).WithField("request_id", requestID).Error("fail to publish lifecycle event")
		sentry.CaptureException(err)
	}
}
