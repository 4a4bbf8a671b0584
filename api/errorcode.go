package api

import (
	"github.com/bitmark-inc/aid-api/lifecycle"
	"github.com/bitmark-inc/aid-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1011: "cannot parse request",

		1100: store.ErrProfileNotFound.Error(),
		1101: store.ErrProfileNotOwned.Error(),

		1200: store.ErrRequestNotFound.Error(),
		1201: store.ErrRequestTransitioned.Error(),
		1202: lifecycle.ErrInvalidTransition.Error(),
		1203: lifecycle.ErrSelfResponse.Error(),
		1204: lifecycle.ErrNotParticipant.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorCannotParseRequest = errorJSON(1011)

	errorProfileNotFound = errorJSON(1100)
	errorProfileNotOwned = errorJSON(1101)

	errorRequestNotFound     = errorJSON(1200)
	errorRequestTransitioned = errorJSON(1201)
	errorInvalidTransition   = errorJSON(1202)
	errorSelfResponse        = errorJSON(1203)
	errorNotParticipant      = errorJSON(1204)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
