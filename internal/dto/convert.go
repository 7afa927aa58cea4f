package dto

import "github.com/lumenlearn/challenge-api/internal/models"

// ToUserDTO converts a stored user to its outbound shape.
func ToUserDTO(user models.User) UserDTO {
	challenges := make([]ActiveChallengeDTO, len(user.Challenges))
	for i, ac := range user.Challenges {
		challenges[i] = ActiveChallengeDTO{
			ChallengeID: ac.ChallengeID,
			Progress: ChallengeProgressDTO{
				StartedDate:  ac.Progress.StartedDate,
				CurrentStep:  ac.Progress.CurrentStep,
				LastWorkedOn: ac.Progress.LastWorkedOn,
			},
		}
	}

	return UserDTO{
		ID:         user.ID,
		Name:       user.Name,
		Birthday:   user.Birthday,
		Email:      user.Email,
		APIKey:     user.APIKey,
		Challenges: challenges,
	}
}

// ToChallengeDTO converts a stored challenge to its outbound shape.
func ToChallengeDTO(challenge models.Challenge) ChallengeDTO {
	steps := challenge.Steps
	if steps == nil {
		steps = []string{}
	}
	return ChallengeDTO{
		ID:          challenge.ID,
		Title:       challenge.Title,
		Description: challenge.Description,
		CoverImage:  challenge.CoverImage,
		Steps:       steps,
	}
}

// ToChallengeListResponse wraps stored challenges for listing.
func ToChallengeListResponse(challenges []models.Challenge) ChallengeListResponse {
	out := make([]ChallengeDTO, len(challenges))
	for i, ch := range challenges {
		out[i] = ToChallengeDTO(ch)
	}
	return ChallengeListResponse{Challenges: out}
}

// ToStepResourceDTO converts an embedded resource to its outbound shape.
func ToStepResourceDTO(res models.StepResource) StepResourceDTO {
	return StepResourceDTO{
		Prompt:       res.Prompt,
		ResourceType: res.ResourceType,
		ResourcePath: res.ResourcePath,
		ResourceID:   res.ResourceID,
	}
}

// ToStepDTO converts a stored step to its outbound shape.
func ToStepDTO(step models.Step) StepDTO {
	resources := make([]StepResourceDTO, len(step.HelpResources))
	for i, res := range step.HelpResources {
		resources[i] = ToStepResourceDTO(res)
	}
	return StepDTO{
		ID:            step.ID,
		ChallengeID:   step.ChallengeID,
		StepName:      step.StepName,
		VideoPath:     step.VideoPath,
		HelpResources: resources,
	}
}

// ToStepListResponse wraps stored steps for listing.
func ToStepListResponse(steps []models.Step) StepListResponse {
	out := make([]StepDTO, len(steps))
	for i, st := range steps {
		out[i] = ToStepDTO(st)
	}
	return StepListResponse{Steps: out}
}

// ToStepResourceListResponse wraps a step's resources for listing.
func ToStepResourceListResponse(resources []models.StepResource) StepResourceListResponse {
	out := make([]StepResourceDTO, len(resources))
	for i, res := range resources {
		out[i] = ToStepResourceDTO(res)
	}
	return StepResourceListResponse{Resources: out}
}
