package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/aid-api/api/mocks"
	"github.com/bitmark-inc/aid-api/lifecycle"
	"github.com/bitmark-inc/aid-api/schema"
	"github.com/bitmark-inc/aid-api/store"
)

func testRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userID", "user-1")
	})
	router.POST("/requests", s.createRequest)
	router.POST("/requests/:requestID/cancel", s.cancelRequest)
	router.POST("/requests/:requestID/accept", s.acceptRequest)
	router.GET("/requests/:requestID/profiles/:profileID", s.getRequestProfiles)
	return router
}

func TestCreateRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	coordinator := mocks.NewMockRequestCoordinator(ctl)
	s := &Server{coordinator: coordinator}

	coordinator.EXPECT().CreateRequest("user-1", "profile-1").Return(&schema.HelpRequest{
		ID:                 "request-1",
		RequesterProfileID: "profile-1",
		Status:             schema.RequestStatusPending,
		Type:               schema.RequestTypeMisc,
	}, nil)

	req := httptest.NewRequest("POST", "/requests", strings.NewReader(`{"profile_id":"profile-1"}`))
	w := httptest.NewRecorder()
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp schema.HelpRequest
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "request-1", jResp.ID)
	assert.Equal(t, schema.RequestStatusPending, jResp.Status)
}

func TestCreateRequestMissingProfileID(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := &Server{coordinator: mocks.NewMockRequestCoordinator(ctl)}

	req := httptest.NewRequest("POST", "/requests", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1011), jResp.Code)
}

func TestCreateRequestForbidden(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	coordinator := mocks.NewMockRequestCoordinator(ctl)
	s := &Server{coordinator: coordinator}

	coordinator.EXPECT().CreateRequest("user-1", "profile-9").Return(nil, store.ErrProfileNotOwned)

	req := httptest.NewRequest("POST", "/requests", strings.NewReader(`{"profile_id":"profile-9"}`))
	w := httptest.NewRecorder()
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1101), jResp.Code)
}

func TestCancelRequestInvalidTransition(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	coordinator := mocks.NewMockRequestCoordinator(ctl)
	s := &Server{coordinator: coordinator}

	coordinator.EXPECT().CancelRequest("request-1", "user-1", "profile-1").Return(lifecycle.ErrInvalidTransition)

	req := httptest.NewRequest("POST", "/requests/request-1/cancel", strings.NewReader(`{"profile_id":"profile-1"}`))
	w := httptest.NewRecorder()
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1202), jResp.Code)
}

func TestAcceptRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	coordinator := mocks.NewMockRequestCoordinator(ctl)
	s := &Server{coordinator: coordinator}

	coordinator.EXPECT().AcceptRequest("request-1", "profile-2").Return(nil)

	req := httptest.NewRequest("POST", "/requests/request-1/accept", strings.NewReader(`{"profile_id":"profile-2"}`))
	w := httptest.NewRecorder()
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "OK", jResp["result"])
}

func TestAcceptRequestLostRace(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	coordinator := mocks.NewMockRequestCoordinator(ctl)
	s := &Server{coordinator: coordinator}

	coordinator.EXPECT().AcceptRequest("request-1", "profile-3").Return(store.ErrRequestTransitioned)

	req := httptest.NewRequest("POST", "/requests/request-1/accept", strings.NewReader(`{"profile_id":"profile-3"}`))
	w := httptest.NewRecorder()
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1201), jResp.Code)
}

func TestAcceptRequestSelfResponse(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	coordinator := mocks.NewMockRequestCoordinator(ctl)
	s := &Server{coordinator: coordinator}

	coordinator.EXPECT().AcceptRequest("request-1", "profile-1").Return(lifecycle.ErrSelfResponse)

	req := httptest.NewRequest("POST", "/requests/request-1/accept", strings.NewReader(`{"profile_id":"profile-1"}`))
	w := httptest.NewRecorder()
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}

func TestGetRequestProfiles(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	coordinator := mocks.NewMockRequestCoordinator(ctl)
	s := &Server{coordinator: coordinator}

	coordinator.EXPECT().GetRequestProfiles("request-1", "profile-2").Return([]schema.Profile{
		{ID: "profile-1", ShortName: "Alice"},
		{ID: "profile-2", ShortName: "Bob"},
	}, nil)

	req := httptest.NewRequest("GET", "/requests/request-1/profiles/profile-2", nil)
	w := httptest.NewRecorder()
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string][]schema.Profile
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, jResp["profiles"], 2)
}

func TestGetRequestProfilesNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	coordinator := mocks.NewMockRequestCoordinator(ctl)
	s := &Server{coordinator: coordinator}

	coordinator.EXPECT().GetRequestProfiles("request-9", "profile-2").Return(nil, store.ErrRequestNotFound)

	req := httptest.NewRequest("GET", "/requests/request-9/profiles/profile-2", nil)
	w := httptest.NewRecorder()
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}
