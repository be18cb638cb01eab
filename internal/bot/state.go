package bot

import "sync"

const actionAddIngredient = "add_ingredient"

// FlowState - where a user is in a multi-step admin flow
type FlowState struct {
	Action   string
	Step     int
	TempData map[string]string
}

// FlowStore keeps one flow per Telegram user. Safe for concurrent use.
type FlowStore struct {
	mu     sync.Mutex
	states map[int64]*FlowState
}

func NewFlowStore() *FlowStore {
	return &FlowStore{states: make(map[int64]*FlowState)}
}

func (s *FlowStore) Get(userID int64) (*FlowState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.states[userID]
	return state, ok
}

func (s *FlowStore) Set(userID int64, state *FlowState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[userID] = state
}

// Delete reports whether a flow was in progress.
func (s *FlowStore) Delete(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.states[userID]
	delete(s.states, userID)
	return ok
}
