package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/aid-api/external/onesignal"
	"github.com/bitmark-inc/aid-api/lifecycle"
	"github.com/bitmark-inc/aid-api/store"
)

// createRequest is the API for raising a new help request
func (s *Server) createRequest(c *gin.Context) {
	userID := c.GetString("userID")

	var params struct {
		ProfileID string `json:"profile_id" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	request, err := s.coordinator.CreateRequest(userID, params.ProfileID)
	if err != nil {
		abortWithLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// cancelRequest is the API for withdrawing a pending help request
func (s *Server) cancelRequest(c *gin.Context) {
	requestID := c.Param("requestID")
	userID := c.GetString("userID")

	var params struct {
		ProfileID string `json:"profile_id" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := s.coordinator.CancelRequest(requestID, userID, params.ProfileID); err != nil {
		abortWithLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// acceptRequest is the API for claiming a pending help request
func (s *Server) acceptRequest(c *gin.Context) {
	requestID := c.Param("requestID")

	var params struct {
		ProfileID string `json:"profile_id" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := s.coordinator.AcceptRequest(requestID, params.ProfileID); err != nil {
		abortWithLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// getRequestProfiles is the API for reading the profiles involved in a
// help request
func (s *Server) getRequestProfiles(c *gin.Context) {
	requestID := c.Param("requestID")
	profileID := c.Param("profileID")

	profiles, err := s.coordinator.GetRequestProfiles(requestID, profileID)
	if err != nil {
		abortWithLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

// pushTest is an admin probe for push delivery. The send result is
// deliberately logged and discarded: push delivery is best-effort and
// its failures never affect server state.
func (s *Server) pushTest(c *gin.Context) {
	var params struct {
		ProfileID string `json:"profile_id" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	err := s.oneSignalClient.SendNotification(context.Background(), &onesignal.NotificationRequest{
		AppID: viper.GetString("onesignal.appid"),
		Filters: []map[string]string{
			{
				"field":    "tag",
				"key":      "profile_id",
				"relation": "=",
				"value":    params.ProfileID,
			},
		},
		Headings: map[string]string{"en": "dummy title"},
		Contents: map[string]string{"en": "this is the message body."},
	})
	if err != nil {
		log.WithError(err).Warn("push test delivery failed")
	}

	c.JSON(http.StatusOK, gin.H{"delivered": err == nil})
}

// abortWithLifecycleError maps engine and store errors to API error
// codes and statuses
func abortWithLifecycleError(c *gin.Context, err error) {
	switch err {
	case store.ErrRequestNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
	case store.ErrProfileNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorProfileNotFound, err)
	case store.ErrProfileNotOwned:
		abortWithEncoding(c, http.StatusForbidden, errorProfileNotOwned, err)
	case lifecycle.ErrSelfResponse:
		abortWithEncoding(c, http.StatusForbidden, errorSelfResponse, err)
	case lifecycle.ErrNotParticipant:
		abortWithEncoding(c, http.StatusForbidden, errorNotParticipant, err)
	case lifecycle.ErrInvalidTransition:
		abortWithEncoding(c, http.StatusConflict, errorInvalidTransition, err)
	case store.ErrRequestTransitioned:
		abortWithEncoding(c, http.StatusConflict, errorRequestTransitioned, err)
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}
