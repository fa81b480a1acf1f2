package shell

import "sync"

// PendingActionKey is the session key a quick action writes for the next active panel.
const PendingActionKey = "pendingAction"

// Session is session scoped key/value storage. It lives as long as the process.
type Session struct {
	mu     *sync.Mutex
	values map[string]string
}

func NewSession() *Session {
	return &Session{mu: &sync.Mutex{}, values: make(map[string]string)}
}

func (s *Session) Set(key string, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
}

func (s *Session) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, found := s.values[key]

	return value, found
}

// Take returns and removes the value.
func (s *Session) Take(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, found := s.values[key]
	delete(s.values, key)

	return value, found
}

// SetPendingAction stores an action for whichever panel becomes active next. An empty action
// leaves any existing value untouched.
func (s *Session) SetPendingAction(action string) {
	if action == "" {
		return
	}

	s.Set(PendingActionKey, action)
}

func (s *Session) TakePendingAction() (string, bool) {
	return s.Take(PendingActionKey)
}
