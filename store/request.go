package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/aid-api/schema"
)

var (
	ErrRequestNotFound     = fmt.Errorf("help request not found")
	ErrRequestTransitioned = fmt.Errorf("help request has already been transitioned")
)

// RequestStore - help request persistence. TransitionRequest is the
// only mutation primitive: a transition is applied only when the stored
// status still equals the expected one, so concurrent accept and cancel
// attempts on the same request serialize at the database without any
// application-level lock.
type RequestStore interface {
	CreateRequest(requesterProfileID, requestType, shortName string) (*schema.HelpRequest, error)
	GetRequest(id string) (*schema.HelpRequest, error)
	TransitionRequest(id string, expected, next schema.RequestStatus, acceptorProfileID string) (*schema.HelpRequest, error)
}

// CreateRequest inserts a new help request in PENDING state
func (m *mongoDB) CreateRequest(requesterProfileID, requestType, shortName string) (*schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	now := time.Now().UTC()
	request := schema.HelpRequest{
		ID:                 uuid.New().String(),
		RequesterProfileID: requesterProfileID,
		Status:             schema.RequestStatusPending,
		Type:               requestType,
		RequesterShortName: shortName,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if _, err := c.InsertOne(ctx, request); err != nil {
		return nil, err
	}

	return &request, nil
}

// GetRequest returns a help request by its identifier
func (m *mongoDB) GetRequest(id string) (*schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	var request schema.HelpRequest
	if err := c.FindOne(ctx, bson.M{"id": id}).Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	return &request, nil
}

// TransitionRequest conditionally moves a request from the expected
// status to the next one. The expected status is part of the update
// filter, so the document is mutated only if no concurrent caller got
// there first. When the conditional update matches nothing, a follow-up
// read distinguishes a missing request from a lost race.
func (m *mongoDB) TransitionRequest(id string, expected, next schema.RequestStatus, acceptorProfileID string) (*schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	set := bson.M{
		"status":     next,
		"updated_at": time.Now().UTC(),
	}
	if acceptorProfileID != "" {
		set["acceptor_profile_id"] = acceptorProfileID
	}

	query := bson.M{
		"id":     id,
		"status": expected,
	}

	var request schema.HelpRequest
	err := c.FindOneAndUpdate(ctx, query, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&request)
	if err == nil {
		return &request, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	count, err := c.CountDocuments(ctx, bson.M{"id": id})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrRequestNotFound
	}

	return nil, ErrRequestTransitioned
}
