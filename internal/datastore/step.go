package datastore

import (
	"context"

	"github.com/lumenlearn/challenge-api/internal/apierrors"
	"github.com/lumenlearn/challenge-api/internal/models"
)

// CreateStep inserts a step and pushes its id onto the parent challenge's
// ordered sequence. Both writes happen under the challenge's lock so no
// concurrent workflow can observe the step detached from its parent.
func (s *DataStore) CreateStep(ctx context.Context, challengeID, stepName, videoPath string) (*models.Step, error) {
	const op = "create step"

	unlock := s.challengeLocks.lock(challengeID)
	defer unlock()

	if _, err := s.challenges.FindByID(ctx, challengeID); err != nil {
		return nil, apierrors.NewDatabase(challengeID+" is not a valid challenge id", op, err)
	}

	step := &models.Step{
		ChallengeID:   challengeID,
		StepName:      stepName,
		VideoPath:     videoPath,
		HelpResources: []models.StepResource{},
	}

	id, err := s.steps.Insert(ctx, step)
	if err != nil {
		return nil, apierrors.NewDatabase("Failed to create new step", op, err)
	}
	step.ID = id

	if err := s.challenges.PushStep(ctx, challengeID, id); err != nil {
		return nil, apierrors.NewDatabase("Failed to attach step "+id+" to challenge "+challengeID, op, err)
	}

	s.log.WithFields(map[string]interface{}{
		"step_id":      id,
		"challenge_id": challengeID,
	}).Debug("created step")
	return step, nil
}

// Step is the soft step lookup; absence is ErrNotFound.
func (s *DataStore) Step(ctx context.Context, id string) (*models.Step, error) {
	return s.steps.FindByID(ctx, id)
}

// StepStrict fetches a step that is expected to exist.
func (s *DataStore) StepStrict(ctx context.Context, id string) (*models.Step, error) {
	step, err := s.steps.FindByID(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabase("Step "+id+" does not exist", "get step", err)
	}
	return step, nil
}

// ListSteps resolves the challenge's ordered step ids to step records. A
// dangling id is logged and skipped rather than failing the listing.
func (s *DataStore) ListSteps(ctx context.Context, challengeID string) ([]models.Step, error) {
	challenge, err := s.ChallengeStrict(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	steps := []models.Step{}
	for _, stepID := range challenge.Steps {
		step, err := s.steps.FindByID(ctx, stepID)
		if err != nil {
			s.log.WithFields(map[string]interface{}{
				"challenge_id": challengeID,
				"step_id":      stepID,
			}).Error("challenge references nonexistent step")
			continue
		}
		steps = append(steps, *step)
	}
	return steps, nil
}

// ModifyStepPath updates the step's primary video path.
func (s *DataStore) ModifyStepPath(ctx context.Context, stepID, path string) (*models.Step, error) {
	const op = "modify step path"

	step, err := s.StepStrict(ctx, stepID)
	if err != nil {
		return nil, err
	}

	if err := s.steps.SetVideoPath(ctx, stepID, path); err != nil {
		return nil, apierrors.NewDatabase("Failed to update video path on step "+stepID, op, err)
	}

	step.VideoPath = path
	return step, nil
}

// DeleteStep detaches the step from its parent challenge's sequence, then
// deletes the step document. A step id missing from its parent's sequence
// indicates index corruption and fails the delete.
func (s *DataStore) DeleteStep(ctx context.Context, stepID string) error {
	step, err := s.steps.FindByID(ctx, stepID)
	if err != nil {
		return apierrors.NewDatabase("Cannot delete nonexistent step "+stepID, "delete step", err)
	}

	unlock := s.challengeLocks.lock(step.ChallengeID)
	defer unlock()

	return s.deleteStepLocked(ctx, stepID)
}

// deleteStepLocked is DeleteStep's body. The caller must hold the parent
// challenge's lock; the step is refetched under it.
func (s *DataStore) deleteStepLocked(ctx context.Context, stepID string) error {
	const op = "delete step"

	step, err := s.steps.FindByID(ctx, stepID)
	if err != nil {
		return apierrors.NewDatabase("Cannot delete nonexistent step "+stepID, op, err)
	}

	challenge, err := s.challenges.FindByID(ctx, step.ChallengeID)
	if err != nil {
		return apierrors.NewDatabase("Step belongs to nonexistent challenge "+step.ChallengeID, op, err)
	}

	reduced, found := removeID(challenge.Steps, stepID)
	if !found {
		return apierrors.NewDatabase("Step "+stepID+" does not belong to challenge "+challenge.ID, op, nil)
	}

	if err := s.challenges.SetSteps(ctx, challenge.ID, reduced); err != nil {
		return apierrors.NewDatabase("Failed to detach step "+stepID+" from challenge "+challenge.ID, op, err)
	}

	if err := s.steps.Delete(ctx, stepID); err != nil {
		return apierrors.NewDatabase("Failed to delete step "+stepID, op, err)
	}

	s.log.WithField("step_id", stepID).Info("deleted step")
	return nil
}

// removeID returns ids without the first occurrence of id, and whether it was
// present.
func removeID(ids []string, id string) ([]string, bool) {
	out := make([]string, 0, len(ids))
	found := false
	for _, v := range ids {
		if !found && v == id {
			found = true
			continue
		}
		out = append(out, v)
	}
	return out, found
}
