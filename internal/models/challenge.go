package models

// Challenge is a top-level content unit. Steps holds the ids of the child
// steps in presentation order; every id must reference an existing Step whose
// ChallengeID points back here, and the sequence never contains duplicates.
// The datastore is the only writer of this sequence.
type Challenge struct {
	ID          string   `bson:"-" json:"id"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	CoverImage  string   `bson:"coverImage" json:"coverImage"`
	Steps       []string `bson:"steps" json:"steps"`
}
