package datastore

import (
	"context"

	"github.com/lumenlearn/challenge-api/internal/apierrors"
	"github.com/lumenlearn/challenge-api/internal/models"
)

// CreateChallenge stores a new challenge with an empty step sequence.
func (s *DataStore) CreateChallenge(ctx context.Context, title, description, coverImage string) (*models.Challenge, error) {
	challenge := &models.Challenge{
		Title:       title,
		Description: description,
		CoverImage:  coverImage,
		Steps:       []string{},
	}

	id, err := s.challenges.Insert(ctx, challenge)
	if err != nil {
		return nil, apierrors.NewDatabase("Failed to create challenge", "create challenge", err)
	}
	challenge.ID = id

	s.log.WithField("challenge_id", id).Debug("created challenge")
	return challenge, nil
}

// Challenge is the soft challenge lookup; absence is ErrNotFound.
func (s *DataStore) Challenge(ctx context.Context, id string) (*models.Challenge, error) {
	return s.challenges.FindByID(ctx, id)
}

// ChallengeStrict fetches a challenge that is expected to exist.
func (s *DataStore) ChallengeStrict(ctx context.Context, id string) (*models.Challenge, error) {
	challenge, err := s.challenges.FindByID(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabase("Challenge "+id+" does not exist", "get challenge", err)
	}
	return challenge, nil
}

// ListChallenges returns every challenge.
func (s *DataStore) ListChallenges(ctx context.Context) ([]models.Challenge, error) {
	challenges, err := s.challenges.List(ctx)
	if err != nil {
		return nil, apierrors.NewDatabase("Failed to list challenges", "list challenges", err)
	}
	return challenges, nil
}

// RenameChallenge sets a new title on an existing challenge.
func (s *DataStore) RenameChallenge(ctx context.Context, id, title string) (*models.Challenge, error) {
	const op = "rename challenge"

	challenge, err := s.ChallengeStrict(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.challenges.SetTitle(ctx, id, title); err != nil {
		return nil, apierrors.NewDatabase("Failed to rename challenge "+id, op, err)
	}

	challenge.Title = title
	return challenge, nil
}

// DeleteChallenge removes a challenge after deleting its child steps. Under
// the best-effort policy a failing child delete is logged and the cascade
// continues; under fail-fast it aborts the whole operation. The challenge
// lock is held end to end so no step can be created between the cascade
// snapshot and the challenge delete.
func (s *DataStore) DeleteChallenge(ctx context.Context, id string) error {
	const op = "delete challenge"

	unlock := s.challengeLocks.lock(id)
	defer unlock()

	challenge, err := s.ChallengeStrict(ctx, id)
	if err != nil {
		return apierrors.NewDatabase("Cannot delete nonexistent challenge "+id, op, err)
	}

	for _, stepID := range challenge.Steps {
		if err := s.deleteStepLocked(ctx, stepID); err != nil {
			if s.cascade == CascadeFailFast {
				return err
			}
			s.log.WithFields(map[string]interface{}{
				"challenge_id": id,
				"step_id":      stepID,
			}).Warn("failed to delete step during challenge cascade")
		}
	}

	if err := s.challenges.Delete(ctx, id); err != nil {
		return apierrors.NewDatabase("Failed to delete challenge "+id, op, err)
	}

	s.log.WithField("challenge_id", id).Info("deleted challenge")
	return nil
}

// SetChallengeSteps replaces the challenge's ordered step sequence. The given
// ids must be exactly the currently attached ids, only reordered: extra,
// missing, or duplicated ids are rejected and nothing is written. This is the
// single choke point keeping the sequence referencing only real, attached
// steps.
func (s *DataStore) SetChallengeSteps(ctx context.Context, challengeID string, stepIDs []string) error {
	const op = "set challenge steps"

	unlock := s.challengeLocks.lock(challengeID)
	defer unlock()

	challenge, err := s.ChallengeStrict(ctx, challengeID)
	if err != nil {
		return err
	}

	if !sameIDMultiset(challenge.Steps, stepIDs) {
		return apierrors.NewDatabase("Step ids do not match the challenge's current steps", op, nil)
	}

	if err := s.challenges.SetSteps(ctx, challengeID, stepIDs); err != nil {
		return apierrors.NewDatabase("Failed to set challenge "+challengeID+" steps", op, err)
	}
	return nil
}

// ReorderChallengeSteps is SetChallengeSteps under its caller-facing name.
func (s *DataStore) ReorderChallengeSteps(ctx context.Context, challengeID string, stepIDs []string) error {
	return s.SetChallengeSteps(ctx, challengeID, stepIDs)
}

// sameIDMultiset reports whether a and b contain exactly the same ids with
// the same multiplicities.
func sameIDMultiset(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := map[string]int{}
	for _, id := range a {
		counts[id]++
	}
	for _, id := range b {
		counts[id]--
		if counts[id] < 0 {
			return false
		}
	}
	return true
}
