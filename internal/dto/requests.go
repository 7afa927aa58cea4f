// Package dto defines the wire request/response records. JSON field names are
// the camelCase aliases of the stored records; binding tags reject malformed
// bodies before any handler body runs.
package dto

import "github.com/lumenlearn/challenge-api/internal/models"

// BenchmarkRequest is used by the test endpoints.
type BenchmarkRequest struct {
	AnAttribute string `json:"anAttribute"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest carries new-account details.
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Birthday string `json:"birthday" binding:"required"`
}

// UserRequest addresses a user by id.
type UserRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// ChallengeRequest addresses a challenge by id.
type ChallengeRequest struct {
	ChallengeID string `json:"challengeId" binding:"required"`
}

// ChallengeCreateRequest carries a new challenge's fields.
type ChallengeCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	CoverImage  string `json:"coverImage" binding:"required"`
}

// ChallengeRenameRequest renames an existing challenge.
type ChallengeRenameRequest struct {
	ChallengeID string `json:"challengeId" binding:"required"`
	Title       string `json:"title" binding:"required"`
}

// ProgressUpdateRequest moves the caller's current-step pointer.
type ProgressUpdateRequest struct {
	ChallengeID string `json:"challengeId" binding:"required"`
	CurrentStep string `json:"currentStep" binding:"required"`
}

// StepRequest addresses a step by id.
type StepRequest struct {
	StepID string `json:"stepId" binding:"required"`
}

// StepCreateRequest carries a new step's fields.
type StepCreateRequest struct {
	ChallengeID string `json:"challengeId" binding:"required"`
	StepName    string `json:"stepName" binding:"required"`
	VideoPath   string `json:"videoPath" binding:"required"`
}

// StepReorderRequest replaces a challenge's step order with a permutation of
// the current one.
type StepReorderRequest struct {
	ChallengeID string   `json:"challengeId" binding:"required"`
	Steps       []string `json:"steps" binding:"required"`
}

// StepResourceRequest addresses one embedded resource.
type StepResourceRequest struct {
	StepID     string `json:"stepId" binding:"required"`
	ResourceID string `json:"resourceId" binding:"required"`
}

// StepResourceAddRequest embeds a new help resource in a step.
type StepResourceAddRequest struct {
	StepID       string              `json:"stepId" binding:"required"`
	Prompt       string              `json:"prompt" binding:"required"`
	ResourceType models.ResourceType `json:"resourceType" binding:"required,oneof=VIDEO MARKDOWN"`
	ResourcePath string              `json:"resourcePath" binding:"required"`
}

// CheckSyntaxRequest asks whether content matches a named structure.
type CheckSyntaxRequest struct {
	Structure string `json:"structure" binding:"required"`
	Content   string `json:"content" binding:"required"`
}
