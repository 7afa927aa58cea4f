package datastore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lumenlearn/challenge-api/internal/apierrors"
	"github.com/lumenlearn/challenge-api/internal/models"
	"github.com/lumenlearn/challenge-api/internal/repository"
)

// CreateUser stores a new user. If the supplied api key collides with an
// existing one it is regenerated until unique; the whole generate-and-check
// loop holds signupMu so concurrent signups cannot race the check against the
// insert.
func (s *DataStore) CreateUser(ctx context.Context, name, email, birthday, passwordHash, apiKey string) (*models.User, error) {
	const op = "create user"

	s.signupMu.Lock()
	defer s.signupMu.Unlock()

	for {
		_, err := s.users.FindByKey(ctx, apiKey)
		if errors.Is(err, repository.ErrNotFound) {
			break
		}
		if err != nil {
			return nil, apierrors.NewDatabase("Failed to check api key", op, err)
		}
		s.log.Warn("api key collision on signup; regenerating")
		apiKey = uuid.NewString()
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		Birthday:     birthday,
		APIKey:       apiKey,
		PasswordHash: passwordHash,
		Challenges:   []models.ActiveChallenge{},
	}

	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, apierrors.NewDatabase("Failed to create user", op, err)
	}
	user.ID = id

	s.log.WithField("user_id", id).Debug("created user")
	return user, nil
}

// User is the soft user lookup; absence is ErrNotFound.
func (s *DataStore) User(ctx context.Context, id string) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

// UserStrict fetches a user that is expected to exist.
func (s *DataStore) UserStrict(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabase("User "+id+" does not exist", "get user", err)
	}
	return user, nil
}

// UserByEmail is the soft lookup used by login and signup, where absence is
// an ordinary outcome.
func (s *DataStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.users.FindByEmail(ctx, email)
}

// UserByKey resolves an api key to its user; absence is ErrNotFound.
func (s *DataStore) UserByKey(ctx context.Context, apiKey string) (*models.User, error) {
	return s.users.FindByKey(ctx, apiKey)
}

// AttachChallenge appends an ActiveChallenge to the user. The one-per-
// (user, challenge) invariant is enforced here, not by callers; a duplicate
// attach returns ErrChallengeAttached. The check and the push run under the
// user's lock so concurrent attaches cannot both pass the check.
func (s *DataStore) AttachChallenge(ctx context.Context, userID, challengeID string) error {
	const op = "attach challenge"

	unlock := s.userLocks.lock(userID)
	defer unlock()

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return apierrors.NewDatabase("Cannot attach challenge to nonexistent user "+userID, op, err)
	}
	if _, err := s.challenges.FindByID(ctx, challengeID); err != nil {
		return apierrors.NewDatabase("Cannot attach nonexistent challenge "+challengeID+" to user", op, err)
	}
	if user.HasChallenge(challengeID) {
		return ErrChallengeAttached
	}

	now := time.Now().Format(time.RFC3339)
	ac := models.ActiveChallenge{
		ChallengeID: challengeID,
		Progress: models.ChallengeProgress{
			StartedDate:  now,
			LastWorkedOn: now,
		},
	}

	if err := s.users.PushChallenge(ctx, userID, ac); err != nil {
		return apierrors.NewDatabase("Failed to attach challenge "+challengeID+" to user", op, err)
	}

	s.log.WithFields(map[string]interface{}{
		"user_id":      userID,
		"challenge_id": challengeID,
	}).Debug("attached challenge to user")
	return nil
}

// UpdateProgress moves the user's current-step pointer for an attached
// challenge and touches its last-worked-on timestamp.
func (s *DataStore) UpdateProgress(ctx context.Context, userID, challengeID, currentStep string) error {
	const op = "update progress"

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return apierrors.NewDatabase("Cannot update progress on nonexistent user "+userID, op, err)
	}

	var progress *models.ChallengeProgress
	for _, ac := range user.Challenges {
		if ac.ChallengeID == challengeID {
			p := ac.Progress
			progress = &p
			break
		}
	}
	if progress == nil {
		return apierrors.NewDatabase("User "+userID+" has no challenge "+challengeID, op, nil)
	}

	progress.CurrentStep = currentStep
	progress.LastWorkedOn = time.Now().Format(time.RFC3339)

	if err := s.users.SetProgress(ctx, userID, challengeID, *progress); err != nil {
		return apierrors.NewDatabase("Failed to update progress for challenge "+challengeID, op, err)
	}
	return nil
}
