package auth

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"chaski/internal/domain/entity"
)

const oauthStateTTL = 10 * time.Minute

type pendingState struct {
	provider  entity.ProviderType
	expiresAt time.Time
}

// stateStore keeps the CSRF state of in-flight provider redirects. A state is
// valid once, for the provider it was issued to.
type stateStore struct {
	mu     sync.Mutex
	states map[string]pendingState
	now    func() time.Time
}

func newStateStore() *stateStore {
	return &stateStore{states: make(map[string]pendingState), now: time.Now}
}

func (s *stateStore) issue(provider entity.ProviderType) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	state := hex.EncodeToString(buf)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, pending := range s.states {
		if now.After(pending.expiresAt) {
			delete(s.states, key)
		}
	}
	s.states[state] = pendingState{provider: provider, expiresAt: now.Add(oauthStateTTL)}

	return state, nil
}

// consume validates and removes state.
func (s *stateStore) consume(provider entity.ProviderType, state string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, ok := s.states[state]
	if !ok {
		return false
	}
	delete(s.states, state)

	return pending.provider == provider && !s.now().After(pending.expiresAt)
}
