package schema

const (
	ProfileCollection = "profile"
)

// Profile - helper profile data. Profiles are owned and written by the
// identity service; this server only reads them for ownership and
// eligibility checks and for display hydration.
type Profile struct {
	ID        string `bson:"id" json:"id"`
	UserID    string `bson:"user_id" json:"user_id"`
	ShortName string `bson:"short_name" json:"short_name"`
	LastName  string `bson:"last_name,omitempty" json:"last_name,omitempty"`
	Language  string `bson:"language,omitempty" json:"language,omitempty"`
}
