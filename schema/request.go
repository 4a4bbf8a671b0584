package schema

import (
	"time"
)

const (
	RequestCollection = "helpRequest"
)

// RequestStatus is the lifecycle state of a help request. A request
// starts as PENDING and ends in exactly one of CANCELLED or ACCEPTED.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "PENDING"
	RequestStatusCancelled RequestStatus = "CANCELLED"
	RequestStatusAccepted  RequestStatus = "ACCEPTED"
)

const (
	RequestTypeMisc = "misc"
)

// HelpRequest - a help request raised by a profile, claimed by at
// most one other profile
type HelpRequest struct {
	ID                 string        `bson:"id" json:"id"`
	RequesterProfileID string        `bson:"requester_profile_id" json:"requester_profile_id"`
	AcceptorProfileID  string        `bson:"acceptor_profile_id,omitempty" json:"acceptor_profile_id,omitempty"`
	Status             RequestStatus `bson:"status" json:"status"`
	Type               string        `bson:"type" json:"type"`
	RequesterShortName string        `bson:"requester_short_name,omitempty" json:"requester_short_name,omitempty"`
	CreatedAt          time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time     `bson:"updated_at" json:"updated_at"`
}

// Terminal reports whether the status permits no further transitions.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusCancelled || s == RequestStatusAccepted
}
