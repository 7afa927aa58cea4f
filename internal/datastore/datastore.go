// Package datastore is the data access layer. Every mutation routes through
// it: existence and consistency checks run before each write, and write
// acknowledgements are checked after. Multi-document workflows (step creation,
// step deletion, sequence rewrites) are serialized behind a per-challenge lock
// because the underlying store only guarantees single-document atomicity.
package datastore

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/lumenlearn/challenge-api/internal/repository"
)

// ErrNotFound reports an expected, non-exceptional absence from a soft lookup.
var ErrNotFound = repository.ErrNotFound

// ErrChallengeAttached is returned by AttachChallenge when the user already
// has the challenge.
var ErrChallengeAttached = errors.New("datastore: challenge already attached to user")

// CascadePolicy controls how DeleteChallenge treats a failing child-step
// delete.
type CascadePolicy int

const (
	// CascadeBestEffort logs the failed step and continues the cascade.
	CascadeBestEffort CascadePolicy = iota
	// CascadeFailFast aborts the cascade on the first failing step.
	CascadeFailFast
)

// DataStore owns the user, challenge, and step record families and enforces
// the referential and ordering invariants across them.
type DataStore struct {
	users      repository.UserRepository
	challenges repository.ChallengeRepository
	steps      repository.StepRepository
	log        *logrus.Logger
	cascade    CascadePolicy

	// challengeLocks serializes the non-transactional multi-document
	// workflows per challenge aggregate.
	challengeLocks keyedMutex
	// userLocks serializes the check-then-push attach workflow per user.
	userLocks keyedMutex
	// signupMu serializes the api-key generate-and-check loop.
	signupMu sync.Mutex
}

// Option configures a DataStore.
type Option func(*DataStore)

// WithCascadePolicy sets the challenge-delete cascade policy.
func WithCascadePolicy(p CascadePolicy) Option {
	return func(s *DataStore) { s.cascade = p }
}

// New creates a DataStore over the given repositories.
func New(users repository.UserRepository, challenges repository.ChallengeRepository, steps repository.StepRepository, log *logrus.Logger, opts ...Option) *DataStore {
	s := &DataStore{
		users:      users,
		challenges: challenges,
		steps:      steps,
		log:        log,
		cascade:    CascadeBestEffort,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// keyedMutex hands out one mutex per key.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// lock acquires the mutex for key and returns its unlock func.
func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = map[string]*sync.Mutex{}
	}
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
