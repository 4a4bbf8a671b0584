package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/aid-api/schema"
)

var (
	ErrProfileNotFound = fmt.Errorf("profile not found")
	ErrProfileNotOwned = fmt.Errorf("profile does not belong to the user")
)

// ProfileDirectory - read-only access to helper profiles. The identity
// service owns the records; this server only resolves and verifies them.
type ProfileDirectory interface {
	GetProfile(id string) (*schema.Profile, error)
	ValidateProfileOwnership(profileID, userID string) error
	ListCandidateProfiles(excludeProfileID string, limit int64) ([]schema.Profile, error)
}

// GetProfile returns a profile by its identifier
func (m *mongoDB) GetProfile(id string) (*schema.Profile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	var profile schema.Profile
	if err := c.FindOne(ctx, bson.M{"id": id}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return &profile, nil
}

// ValidateProfileOwnership checks that a profile exists and is owned
// by the given user
func (m *mongoDB) ValidateProfileOwnership(profileID, userID string) error {
	profile, err := m.GetProfile(profileID)
	if err != nil {
		return err
	}

	if profile.UserID != userID {
		return ErrProfileNotOwned
	}

	return nil
}

// ListCandidateProfiles returns profiles that may respond to a request,
// excluding the requester's own profile. The dispatch worker uses it to
// fan out new-request notifications.
func (m *mongoDB) ListCandidateProfiles(excludeProfileID string, limit int64) ([]schema.Profile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	cursor, err := c.Find(ctx,
		bson.M{"id": bson.M{"$ne": excludeProfileID}},
		options.Find().SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}

	profiles := []schema.Profile{}
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}

	return profiles, nil
}
