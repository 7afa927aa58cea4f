package models

// User is the stored account record. PasswordHash and PermissionLevel stay
// inside the store boundary; outbound payloads go through dto.UserDTO which
// carries neither.
type User struct {
	ID              string            `bson:"-" json:"id"`
	Name            string            `bson:"name" json:"name"`
	Birthday        string            `bson:"birthday" json:"birthday"`
	Email           string            `bson:"email" json:"email"`
	APIKey          string            `bson:"apiKey" json:"apiKey"`
	PasswordHash    string            `bson:"passwordHash" json:"-"`
	PermissionLevel int               `bson:"permissionLevel" json:"permissionLevel"`
	Challenges      []ActiveChallenge `bson:"challenges" json:"challenges"`
}

// ActiveChallenge attaches a challenge to a user together with their progress.
// At most one exists per (user, challenge) pair.
type ActiveChallenge struct {
	ChallengeID string            `bson:"challengeId" json:"challengeId"`
	Progress    ChallengeProgress `bson:"challengeProgress" json:"challengeProgress"`
}

// ChallengeProgress tracks where a user is inside an attached challenge.
// Timestamps are ISO-8601 strings, same as the rest of the wire format.
type ChallengeProgress struct {
	StartedDate  string `bson:"startedDate" json:"startedDate"`
	CurrentStep  string `bson:"currentStep" json:"currentStep"`
	LastWorkedOn string `bson:"lastWorkedOn" json:"lastWorkedOn"`
}

// HasChallenge reports whether the challenge is attached to this user.
func (u *User) HasChallenge(challengeID string) bool {
	for _, ac := range u.Challenges {
		if ac.ChallengeID == challengeID {
			return true
		}
	}
	return false
}
