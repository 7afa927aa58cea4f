package datastore

import (
	"context"

	"github.com/lumenlearn/challenge-api/internal/apierrors"
	"github.com/lumenlearn/challenge-api/internal/models"
)

// AddStepResource embeds a new help resource in the step. The parent step is
// confirmed to exist before anything is written.
func (s *DataStore) AddStepResource(ctx context.Context, stepID, prompt string, resourceType models.ResourceType, resourcePath, resourceID string) (*models.StepResource, error) {
	const op = "add step resource"

	if _, err := s.steps.FindByID(ctx, stepID); err != nil {
		return nil, apierrors.NewDatabase(stepID+" is not a valid step id", op, err)
	}

	resource := models.StepResource{
		Prompt:       prompt,
		ResourceType: resourceType,
		ResourcePath: resourcePath,
		ResourceID:   resourceID,
	}

	if err := s.steps.PushResource(ctx, stepID, resource); err != nil {
		return nil, apierrors.NewDatabase("Failed to add resource to step "+stepID, op, err)
	}

	s.log.WithFields(map[string]interface{}{
		"step_id":     stepID,
		"resource_id": resourceID,
	}).Debug("added step resource")
	return &resource, nil
}

// StepResource is the soft resource lookup; absence of either the step or the
// resource is ErrNotFound.
func (s *DataStore) StepResource(ctx context.Context, stepID, resourceID string) (*models.StepResource, error) {
	step, err := s.steps.FindByID(ctx, stepID)
	if err != nil {
		return nil, err
	}
	resource := step.Resource(resourceID)
	if resource == nil {
		return nil, ErrNotFound
	}
	return resource, nil
}

// StepResourceStrict fetches a resource that is expected to exist.
func (s *DataStore) StepResourceStrict(ctx context.Context, stepID, resourceID string) (*models.StepResource, error) {
	resource, err := s.StepResource(ctx, stepID, resourceID)
	if err != nil {
		return nil, apierrors.NewDatabase("Could not find resource "+resourceID+" on step "+stepID, "get step resource", err)
	}
	return resource, nil
}

// ModifyStepResourcePrompt updates the prompt of one embedded resource.
func (s *DataStore) ModifyStepResourcePrompt(ctx context.Context, stepID, resourceID, prompt string) (*models.StepResource, error) {
	const op = "modify step resource prompt"

	resource, err := s.StepResourceStrict(ctx, stepID, resourceID)
	if err != nil {
		return nil, err
	}

	if err := s.steps.SetResourcePrompt(ctx, stepID, resourceID, prompt); err != nil {
		return nil, apierrors.NewDatabase("Failed to update resource "+resourceID+" prompt", op, err)
	}

	resource.Prompt = prompt
	return resource, nil
}

// ModifyStepResourcePath updates the content path of one embedded resource.
func (s *DataStore) ModifyStepResourcePath(ctx context.Context, stepID, resourceID, path string) (*models.StepResource, error) {
	const op = "modify step resource path"

	resource, err := s.StepResourceStrict(ctx, stepID, resourceID)
	if err != nil {
		return nil, err
	}

	if err := s.steps.SetResourcePath(ctx, stepID, resourceID, path); err != nil {
		return nil, apierrors.NewDatabase("Failed to update resource "+resourceID+" path", op, err)
	}

	resource.ResourcePath = path
	return resource, nil
}

// DeleteStepResource removes one embedded resource from the step.
func (s *DataStore) DeleteStepResource(ctx context.Context, stepID, resourceID string) error {
	const op = "delete step resource"

	if _, err := s.StepResourceStrict(ctx, stepID, resourceID); err != nil {
		return err
	}

	if err := s.steps.PullResource(ctx, stepID, resourceID); err != nil {
		return apierrors.NewDatabase("Failed to delete resource "+resourceID+" from step "+stepID, op, err)
	}

	s.log.WithFields(map[string]interface{}{
		"step_id":     stepID,
		"resource_id": resourceID,
	}).Info("deleted step resource")
	return nil
}
