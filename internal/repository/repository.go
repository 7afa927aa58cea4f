// Package repository provides raw per-collection document access. It knows
// nothing about cross-document invariants; those live in the datastore, which
// is the only consumer of these interfaces.
package repository

import (
	"context"
	"errors"

	"github.com/lumenlearn/challenge-api/internal/models"
)

var (
	// ErrNotFound is returned when a lookup or filtered update matches no document.
	ErrNotFound = errors.New("repository: document not found")
	// ErrNoChange is returned when a write is acknowledged but modified nothing.
	ErrNoChange = errors.New("repository: no documents modified")
)

// UserRepository accesses the users collection.
type UserRepository interface {
	// Insert stores a new user and returns its generated id.
	Insert(ctx context.Context, user *models.User) (string, error)

	// FindByID finds a user by id.
	FindByID(ctx context.Context, id string) (*models.User, error)

	// FindByEmail finds a user by email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// FindByKey finds a user by api key.
	FindByKey(ctx context.Context, apiKey string) (*models.User, error)

	// PushChallenge appends an active challenge to the user's list.
	PushChallenge(ctx context.Context, userID string, ac models.ActiveChallenge) error

	// SetProgress updates the progress of one attached challenge.
	SetProgress(ctx context.Context, userID, challengeID string, progress models.ChallengeProgress) error
}

// ChallengeRepository accesses the challenges collection.
type ChallengeRepository interface {
	// Insert stores a new challenge and returns its generated id.
	Insert(ctx context.Context, challenge *models.Challenge) (string, error)

	// FindByID finds a challenge by id.
	FindByID(ctx context.Context, id string) (*models.Challenge, error)

	// List returns all challenges in insertion order.
	List(ctx context.Context) ([]models.Challenge, error)

	// SetTitle renames a challenge.
	SetTitle(ctx context.Context, id, title string) error

	// SetSteps replaces the ordered step-id sequence.
	SetSteps(ctx context.Context, id string, stepIDs []string) error

	// PushStep appends a step id to the ordered sequence.
	PushStep(ctx context.Context, id, stepID string) error

	// Delete removes the challenge document.
	Delete(ctx context.Context, id string) error
}

// StepRepository accesses the steps collection, including the embedded
// help-resource array.
type StepRepository interface {
	// Insert stores a new step and returns its generated id.
	Insert(ctx context.Context, step *models.Step) (string, error)

	// FindByID finds a step by id.
	FindByID(ctx context.Context, id string) (*models.Step, error)

	// SetVideoPath updates the primary video path.
	SetVideoPath(ctx context.Context, id, path string) error

	// PushResource appends an embedded help resource.
	PushResource(ctx context.Context, id string, res models.StepResource) error

	// SetResourcePrompt updates one embedded resource's prompt, filtered by
	// resource id.
	SetResourcePrompt(ctx context.Context, stepID, resourceID, prompt string) error

	// SetResourcePath updates one embedded resource's content path.
	SetResourcePath(ctx context.Context, stepID, resourceID, path string) error

	// PullResource removes one embedded resource.
	PullResource(ctx context.Context, stepID, resourceID string) error

	// Delete removes the step document.
	Delete(ctx context.Context, id string) error
}
