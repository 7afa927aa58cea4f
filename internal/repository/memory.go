package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lumenlearn/challenge-api/internal/models"
)

// In-memory repository implementations backed by maps. They mirror the Mongo
// acknowledgement semantics (ErrNotFound on zero matches) so the datastore
// behaves identically in tests and in production.

// MemoryUserRepository is an in-memory UserRepository.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewMemoryUserRepository creates an empty in-memory user repository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: map[string]models.User{}}
}

func copyUser(u models.User) *models.User {
	out := u
	out.Challenges = append([]models.ActiveChallenge{}, u.Challenges...)
	return &out
}

func (r *MemoryUserRepository) Insert(_ context.Context, user *models.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID().Hex()
	stored := *copyUser(*user)
	stored.ID = id
	r.users[id] = stored
	return id, nil
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyUser(u), nil
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return r.findFirst(func(u models.User) bool { return u.Email == email })
}

func (r *MemoryUserRepository) FindByKey(_ context.Context, apiKey string) (*models.User, error) {
	return r.findFirst(func(u models.User) bool { return u.APIKey == apiKey })
}

func (r *MemoryUserRepository) findFirst(match func(models.User) bool) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if match(u) {
			return copyUser(u), nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) PushChallenge(_ context.Context, userID string, ac models.ActiveChallenge) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return ErrNotFound
	}
	u.Challenges = append(append([]models.ActiveChallenge{}, u.Challenges...), ac)
	r.users[userID] = u
	return nil
}

func (r *MemoryUserRepository) SetProgress(_ context.Context, userID, challengeID string, progress models.ChallengeProgress) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return ErrNotFound
	}
	challenges := append([]models.ActiveChallenge{}, u.Challenges...)
	for i := range challenges {
		if challenges[i].ChallengeID == challengeID {
			challenges[i].Progress = progress
			u.Challenges = challenges
			r.users[userID] = u
			return nil
		}
	}
	return ErrNotFound
}

// MemoryChallengeRepository is an in-memory ChallengeRepository.
type MemoryChallengeRepository struct {
	mu         sync.RWMutex
	challenges map[string]models.Challenge
	order      []string
}

// NewMemoryChallengeRepository creates an empty in-memory challenge repository.
func NewMemoryChallengeRepository() *MemoryChallengeRepository {
	return &MemoryChallengeRepository{challenges: map[string]models.Challenge{}}
}

func copyChallenge(ch models.Challenge) *models.Challenge {
	out := ch
	out.Steps = append([]string{}, ch.Steps...)
	return &out
}

func (r *MemoryChallengeRepository) Insert(_ context.Context, challenge *models.Challenge) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID().Hex()
	stored := *copyChallenge(*challenge)
	stored.ID = id
	r.challenges[id] = stored
	r.order = append(r.order, id)
	return id, nil
}

func (r *MemoryChallengeRepository) FindByID(_ context.Context, id string) (*models.Challenge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ch, ok := r.challenges[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyChallenge(ch), nil
}

func (r *MemoryChallengeRepository) List(_ context.Context) ([]models.Challenge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Challenge{}
	for _, id := range r.order {
		if ch, ok := r.challenges[id]; ok {
			out = append(out, *copyChallenge(ch))
		}
	}
	return out, nil
}

func (r *MemoryChallengeRepository) SetTitle(_ context.Context, id, title string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch, ok := r.challenges[id]
	if !ok {
		return ErrNotFound
	}
	ch.Title = title
	r.challenges[id] = ch
	return nil
}

func (r *MemoryChallengeRepository) SetSteps(_ context.Context, id string, stepIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch, ok := r.challenges[id]
	if !ok {
		return ErrNotFound
	}
	ch.Steps = append([]string{}, stepIDs...)
	r.challenges[id] = ch
	return nil
}

func (r *MemoryChallengeRepository) PushStep(_ context.Context, id, stepID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch, ok := r.challenges[id]
	if !ok {
		return ErrNoChange
	}
	ch.Steps = append(append([]string{}, ch.Steps...), stepID)
	r.challenges[id] = ch
	return nil
}

func (r *MemoryChallengeRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.challenges[id]; !ok {
		return ErrNotFound
	}
	delete(r.challenges, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// MemoryStepRepository is an in-memory StepRepository.
type MemoryStepRepository struct {
	mu    sync.RWMutex
	steps map[string]models.Step
}

// NewMemoryStepRepository creates an empty in-memory step repository.
func NewMemoryStepRepository() *MemoryStepRepository {
	return &MemoryStepRepository{steps: map[string]models.Step{}}
}

func copyStep(st models.Step) *models.Step {
	out := st
	out.HelpResources = append([]models.StepResource{}, st.HelpResources...)
	return &out
}

func (r *MemoryStepRepository) Insert(_ context.Context, step *models.Step) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID().Hex()
	stored := *copyStep(*step)
	stored.ID = id
	r.steps[id] = stored
	return id, nil
}

func (r *MemoryStepRepository) FindByID(_ context.Context, id string) (*models.Step, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.steps[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyStep(st), nil
}

func (r *MemoryStepRepository) SetVideoPath(_ context.Context, id, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.steps[id]
	if !ok {
		return ErrNotFound
	}
	st.VideoPath = path
	r.steps[id] = st
	return nil
}

func (r *MemoryStepRepository) PushResource(_ context.Context, id string, res models.StepResource) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.steps[id]
	if !ok {
		return ErrNotFound
	}
	st.HelpResources = append(append([]models.StepResource{}, st.HelpResources...), res)
	r.steps[id] = st
	return nil
}

func (r *MemoryStepRepository) SetResourcePrompt(_ context.Context, stepID, resourceID, prompt string) error {
	return r.updateResource(stepID, resourceID, func(res *models.StepResource) {
		res.Prompt = prompt
	})
}

func (r *MemoryStepRepository) SetResourcePath(_ context.Context, stepID, resourceID, path string) error {
	return r.updateResource(stepID, resourceID, func(res *models.StepResource) {
		res.ResourcePath = path
	})
}

func (r *MemoryStepRepository) updateResource(stepID, resourceID string, apply func(*models.StepResource)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.steps[stepID]
	if !ok {
		return ErrNotFound
	}
	resources := append([]models.StepResource{}, st.HelpResources...)
	for i := range resources {
		if resources[i].ResourceID == resourceID {
			apply(&resources[i])
			st.HelpResources = resources
			r.steps[stepID] = st
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryStepRepository) PullResource(_ context.Context, stepID, resourceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.steps[stepID]
	if !ok {
		return ErrNotFound
	}
	kept := []models.StepResource{}
	for _, res := range st.HelpResources {
		if res.ResourceID != resourceID {
			kept = append(kept, res)
		}
	}
	st.HelpResources = kept
	r.steps[stepID] = st
	return nil
}

func (r *MemoryStepRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.steps[id]; !ok {
		return ErrNotFound
	}
	delete(r.steps, id)
	return nil
}
