package lifecycle

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/aid-api/dispatch"
	dispatchmocks "github.com/bitmark-inc/aid-api/dispatch/mocks"
	"github.com/bitmark-inc/aid-api/schema"
	"github.com/bitmark-inc/aid-api/store"
	storemocks "github.com/bitmark-inc/aid-api/store/mocks"
)

type engineMocks struct {
	requests  *storemocks.MockRequestStore
	profiles  *storemocks.MockProfileDirectory
	publisher *dispatchmocks.MockPublisher
}

func newTestEngine(ctl *gomock.Controller) (*Engine, engineMocks) {
	m := engineMocks{
		requests:  storemocks.NewMockRequestStore(ctl),
		profiles:  storemocks.NewMockProfileDirectory(ctl),
		publisher: dispatchmocks.NewMockPublisher(ctl),
	}
	return NewEngine(m.requests, m.profiles, m.publisher), m
}

func TestCreateRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, m := newTestEngine(ctl)

	m.profiles.EXPECT().ValidateProfileOwnership("profile-1", "user-1").Return(nil)
	m.profiles.EXPECT().GetProfile("profile-1").Return(&schema.Profile{
		ID:        "profile-1",
		UserID:    "user-1",
		ShortName: "Alice",
	}, nil)
	m.requests.EXPECT().CreateRequest("profile-1", schema.RequestTypeMisc, "Alice").Return(&schema.HelpRequest{
		ID:                 "request-1",
		RequesterProfileID: "profile-1",
		Status:             schema.RequestStatusPending,
		Type:               schema.RequestTypeMisc,
		RequesterShortName: "Alice",
	}, nil)
	m.publisher.EXPECT().PublishRequestCreated(dispatch.RequestCreatedEvent{
		RequestID: "request-1",
		ProfileID: "profile-1",
	}).Return(nil)

	request, err := e.CreateRequest("user-1", "profile-1")
	assert.NoError(t, err)
	assert.Equal(t, "request-1", request.ID)
	assert.Equal(t, schema.RequestStatusPending, request.Status)
	assert.Empty(t, request.AcceptorProfileID)
}

func TestCreateRequestNotOwned(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, m := newTestEngine(ctl)

	m.profiles.EXPECT().ValidateProfileOwnership("profile-1", "user-2").Return(store.ErrProfileNotOwned)

	request, err := e.CreateRequest("user-2", "profile-1")
	assert.Equal(t, store.ErrProfileNotOwned, err)
	assert.Nil(t, request)
}

func TestCreateRequestStoreRetry(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, m := newTestEngine(ctl)

	m.profiles.EXPECT().ValidateProfileOwnership("profile-1", "user-1").Return(nil)
	m.profiles.EXPECT().GetProfile("profile-1").Return(&schema.Profile{
		ID:        "profile-1",
		UserID:    "user-1",
		ShortName: "Alice",
	}, nil)
	m.requests.EXPECT().CreateRequest("profile-1", schema.RequestTypeMisc, "Alice").
		Return(nil, errors.New("connection reset")).Times(2)
	m.requests.EXPECT().CreateRequest("profile-1", schema.RequestTypeMisc, "Alice").
		Return(&schema.HelpRequest{
			ID:                 "request-1",
			RequesterProfileID: "profile-1",
			Status:             schema.RequestStatusPending,
		}, nil)
	m.publisher.EXPECT().PublishRequestCreated(gomock.Any()).Return(nil)

	request, err := e.CreateRequest("user-1", "profile-1")
	assert.NoError(t, err)
	assert.Equal(t, "request-1", request.ID)
}

func TestCreateRequestPublishFailureIsNonFatal(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, m := newTestEngine(ctl)

	m.profiles.EXPECT().ValidateProfileOwnership("profile-1", "user-1").Return(nil)
	m.profiles.EXPECT().GetProfile("profile-1").Return(&schema.Profile{
		ID:        "profile-1",
		UserID:    "user-1",
		ShortName: "Alice",
	}, nil)
	m.requests.EXPECT().CreateRequest("profile-1", schema.RequestTypeMisc, "Alice").Return(&schema.HelpRequest{
		ID:                 "request-1",
		RequesterProfileID: "profile-1",
		Status:             schema.RequestStatusPending,
	}, nil)
	m.publisher.EXPECT().PublishRequestCreated(gomock.Any()).Return(errors.New("broker is gone"))

	request, err := e.CreateRequest("user-1", "profile-1")
	assert.NoError(t, err)
	assert.NotNil(t, request)
}

func TestCancelRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, m := newTestEngine(ctl)

	m.profiles.EXPECT().ValidateProfileOwnership("profile-1", "user-1").Return(nil)
	m.requests.EXPECT().GetRequest("request-1").Return(&schema.HelpRequest{
		ID:                 "request-1",
		RequesterProfileID: "profile-1",
		Status:             schema.RequestStatusPending,
	}, nil)
	m.requests.EXPECT().TransitionRequest("request-1", schema.RequestStatusPending, schema.RequestStatusCancelled, "").
		Return(&schema.HelpRequest{
			ID:     "request-1",
			Status: schema.RequestStatusCancelled,
		}, nil)

	assert.NoError(t, e.CancelRequest("request-1", "user-1", "profile-1"))
}

func TestCancelRequestAlreadyTerminal(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, m := newTestEngine(ctl)

	for _, status := range []schema.RequestStatus{
		schema.RequestStatusAccepted,
		schema.RequestStatusCancelled,
	} {
		m.profiles.EXPECT().ValidateProfileOwnership("profile-1", "user-1").Return(nil)
		m.requests.EXPECT().GetRequest("request-1").Return(&schema.HelpRequest{
			ID:                 "request-1",
			RequesterProfileID: "profile-1",
			Status:             status,
		}, nil)

		err := e.CancelRequest("request-1", "user-1", "profile-1")
		assert.Equal(t, ErrInvalidTransition, err)
	}
}

func TestCancelRequestLostRace(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, m := newTestEngine(ctl)

	m.profiles.EXPECT().ValidateProfileOwnership("profile-1", "user-1").Return(nil)
	m.requests.EXPECT().GetRequest("request-1").Return(&schema.HelpRequest{
		ID:                 "request-1",
		RequesterProfileID: "profile-1",
		Status:             schema.RequestStatusPending,
	}, nil)
	m.requests.EXPECT().TransitionRequest("request-1", schema.RequestStatusPending, schema.RequestStatusCancelled, "").
		Return(nil, store.ErrRequestTransitioned)

	err := e.CancelRequest("request-1", "user-1", "profile-1")
	assert.Equal(t, store.ErrRequestTransitioned, err)
}

func TestCancelRequestNotOwned(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, m := newTestEngine(ctl)

	m.profiles.EXPECT().ValidateProfileOwnership("profile-1", "user-2").Return(store.ErrProfileNotOwned)

	err := e.CancelRequest("request-1", "user-2", "profile-1")
	assert.Equal(t, store.ErrProfileNotOwned, err)
}

func TestAcceptRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, m := newTestEngine(ctl)

	m.profiles.EXPECT().GetProfile("profile-2").Return(&schema.Profile{
		ID:     "profile-2",
		UserID: "user-2",
	}, nil)
	m.requests.EXPECT().GetRequest("request-1").Return(&schema.HelpRequest{
		ID:                 "request-1",
		RequesterProfileID: "profile-1",
		Status:             schema.RequestStatusPending,
	}, nil)
	m.requests.EXPECT().TransitionRequest("request-1", schema.RequestStatusPending, schema.RequestStatusAccepted, "profile-2").
		Return(&schema.HelpRequest{
			ID:                 "request-1",
			RequesterProfileID: "profile-1",
			AcceptorProfileID:  "profile-2",
			Status:             schema.RequestStatusAccepted,
		}, nil)
	m.publisher.EXPECT().PublishRequestAccepted(dispatch.RequestAcceptedEvent{
		RequestID: "request-1",
	}).Return(nil)

	assert.NoError(t, e.AcceptRequest("request-1", "profile-2"))
}

func TestAcceptRequestOwnRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, m := newTestEngine(ctl)

	m.profiles.EXPECT().GetProfile("profile-1").Return(&schema.Profile{
		ID:     "profile-1",
		UserID: "user-1",
	}, nil)
	m.requests.EXPECT().GetRequest("request-1").Return(&schema.HelpRequest{
		ID:                 "request-1",
		RequesterProfileID: "profile-1",
		Status:             schema.RequestStatusPending,
	}, nil)

	err := e.AcceptRequest("request-1", "profile-1")
	assert.Equal(t, ErrSelfResponse, err)
}

func TestAcceptRequestAlreadyAccepted(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, m := newTestEngine(ctl)

	// another helper committed before this caller's read; the outcome
	// is the same lost race as losing the conditional update itself
	m.profiles.EXPECT().GetProfile("profile-3").Return(&schema.Profile{
		ID:     "profile-3",
		UserID: "user-3",
	}, nil)
	m.requests.EXPECT().GetRequest("request-1").Return(&schema.HelpRequest{
		ID:                 "request-1",
		RequesterProfileID: "profile-1",
		AcceptorProfileID:  "profile-2",
		Status:             schema.RequestStatusAccepted,
	}, nil)

	err := e.AcceptRequest("request-1", "profile-3")
	assert.Equal(t, store.ErrRequestTransitioned, err)
}

func TestAcceptRequestCancelledRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, m := newTestEngine(ctl)

	m.profiles.EXPECT().GetProfile("profile-2").Return(&schema.Profile{
		ID:     "profile-2",
		UserID: "user-2",
	}, nil)
	m.requests.EXPECT().GetRequest("request-1").Return(&schema.HelpRequest{
		ID:                 "request-1",
		RequesterProfileID: "profile-1",
		Status:             schema.RequestStatusCancelled,
	}, nil)

	err := e.AcceptRequest("request-1", "profile-2")
	assert.Equal(t, ErrInvalidTransition, err)
}

func TestAcceptRequestLostRace(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, m := newTestEngine(ctl)

	m.profiles.EXPECT().GetProfile("profile-3").Return(&schema.Profile{
		ID:     "profile-3",
		UserID: "user-3",
	}, nil)
	m.requests.EXPECT().GetRequest("request-1").Return(&schema.HelpRequest{
		ID:                 "request-1",
		RequesterProfileID: "profile-1",
		Status:             schema.RequestStatusPending,
	}, nil)
	m.requests.EXPECT().TransitionRequest("request-1", schema.RequestStatusPending, schema.RequestStatusAccepted, "profile-3").
		Return(nil, store.ErrRequestTransitioned)

	err := e.AcceptRequest("request-1", "profile-3")
	assert.Equal(t, store.ErrRequestTransitioned, err)
}

func TestGetRequestProfiles(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, m := newTestEngine(ctl)

	m.requests.EXPECT().GetRequest("request-1").Return(&schema.HelpRequest{
		ID:                 "request-1",
		RequesterProfileID: "profile-1",
		AcceptorProfileID:  "profile-2",
		Status:             schema.RequestStatusAccepted,
	}, nil)
	m.profiles.EXPECT().GetProfile("profile-1").Return(&schema.Profile{ID: "profile-1"}, nil)
	m.profiles.EXPECT().GetProfile("profile-2").Return(&schema.Profile{ID: "profile-2"}, nil)

	profiles, err := e.GetRequestProfiles("request-1", "profile-2")
	assert.NoError(t, err)
	assert.Len(t, profiles, 2)
}

func TestGetRequestProfilesNotParticipant(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, m := newTestEngine(ctl)

	m.requests.EXPECT().GetRequest("request-1").Return(&schema.HelpRequest{
		ID:                 "request-1",
		RequesterProfileID: "profile-1",
		Status:             schema.RequestStatusPending,
	}, nil)

	profiles, err := e.GetRequestProfiles("request-1", "profile-9")
	assert.Equal(t, ErrNotParticipant, err)
	assert.Nil(t, profiles)
}
