package models

// ResourceType classifies a step's help resource.
type ResourceType string

const (
	ResourceVideo    ResourceType = "VIDEO"
	ResourceMarkdown ResourceType = "MARKDOWN"
)

// Step belongs to exactly one challenge. HelpResources is an unordered set of
// embedded resources, each unique by ResourceID within the step.
type Step struct {
	ID            string         `bson:"-" json:"id"`
	ChallengeID   string         `bson:"challengeId" json:"challengeId"`
	StepName      string         `bson:"stepName" json:"stepName"`
	VideoPath     string         `bson:"videoPath" json:"videoPath"`
	HelpResources []StepResource `bson:"helpResources" json:"helpResources"`
}

// StepResource is an auxiliary help asset embedded in a step document.
type StepResource struct {
	Prompt       string       `bson:"prompt" json:"prompt"`
	ResourceType ResourceType `bson:"resourceType" json:"resourceType"`
	ResourcePath string       `bson:"resourcePath" json:"resourcePath"`
	ResourceID   string       `bson:"resourceId" json:"resourceId"`
}

// Resource returns the embedded resource with the given id, or nil.
func (s *Step) Resource(resourceID string) *StepResource {
	for i := range s.HelpResources {
		if s.HelpResources[i].ResourceID == resourceID {
			return &s.HelpResources[i]
		}
	}
	return nil
}
