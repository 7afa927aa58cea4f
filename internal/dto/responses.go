package dto

import "github.com/lumenlearn/challenge-api/internal/models"

// BenchmarkResponse is used by the test endpoints.
type BenchmarkResponse struct {
	AnotherAttribute string `json:"anotherAttribute"`
}

// RecursiveBenchmarkResponse checks nested record serialization.
type RecursiveBenchmarkResponse struct {
	AnotherAttribute string            `json:"anotherAttribute"`
	Child            *BenchmarkRequest `json:"child"`
}

// MessageResponse carries a bare human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserDTO is the outbound user record. The password hash and permission level
// never appear here; the api key does, and is only ever sent to the owning or
// admin caller.
type UserDTO struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Birthday   string               `json:"birthday"`
	Email      string               `json:"email"`
	APIKey     string               `json:"apiKey"`
	Challenges []ActiveChallengeDTO `json:"challenges"`
}

// ActiveChallengeDTO is a user's attachment to a challenge.
type ActiveChallengeDTO struct {
	ChallengeID string               `json:"challengeId"`
	Progress    ChallengeProgressDTO `json:"challengeProgress"`
}

// ChallengeProgressDTO is a user's progress inside a challenge.
type ChallengeProgressDTO struct {
	StartedDate  string `json:"startedDate"`
	CurrentStep  string `json:"currentStep"`
	LastWorkedOn string `json:"lastWorkedOn"`
}

// LoginResponse reports a login attempt. Business-level failures (unknown
// email syntax and the like) come back with Success=false rather than a
// taxonomy error.
type LoginResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	User    *UserDTO `json:"user"`
}

// SignupResponse reports a signup attempt.
type SignupResponse struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message"`
	ErrorCode int      `json:"errorCode"`
	User      *UserDTO `json:"user"`
}

// GetAPIKeyResponse returns a user's api key to an admin.
type GetAPIKeyResponse struct {
	APIKey  string `json:"apiKey"`
	Message string `json:"message"`
}

// WhoamiResponse identifies the caller.
type WhoamiResponse struct {
	User    *UserDTO `json:"user"`
	Message string   `json:"message"`
}

// CheckSyntaxResponse reports a syntax probe.
type CheckSyntaxResponse struct {
	ValidSyntax bool `json:"validSyntax"`
}

// ChallengeDTO is the outbound challenge record.
type ChallengeDTO struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CoverImage  string   `json:"coverImage"`
	Steps       []string `json:"steps"`
}

// ChallengeListResponse wraps a list of challenges.
type ChallengeListResponse struct {
	Challenges []ChallengeDTO `json:"challenges"`
}

// StepDTO is the outbound step record.
type StepDTO struct {
	ID            string            `json:"id"`
	ChallengeID   string            `json:"challengeId"`
	StepName      string            `json:"stepName"`
	VideoPath     string            `json:"videoPath"`
	HelpResources []StepResourceDTO `json:"helpResources"`
}

// StepListResponse wraps a list of steps.
type StepListResponse struct {
	Steps []StepDTO `json:"steps"`
}

// StepResourceDTO is the outbound help-resource record.
type StepResourceDTO struct {
	Prompt       string              `json:"prompt"`
	ResourceType models.ResourceType `json:"resourceType"`
	ResourcePath string              `json:"resourcePath"`
	ResourceID   string              `json:"resourceId"`
}

// StepResourceListResponse wraps a step's resources.
type StepResourceListResponse struct {
	Resources []StepResourceDTO `json:"resources"`
}
