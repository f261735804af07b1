package roster

import (
	"slices"
	"sync"
)

// Store is the process-wide activity roster. All methods are safe for
// concurrent use; each holds the store lock for its full critical section
// so membership checks and the mutation they guard are atomic.
type Store struct {
	mu         sync.Mutex
	activities map[string]*Activity
}

// NewStore creates a Store seeded with the given activities. The seed is
// deep-copied; the caller's map is not retained.
func NewStore(seed map[string]Activity) *Store {
	activities := make(map[string]*Activity, len(seed))
	for name, activity := range seed {
		a := activity.clone()
		activities[name] = &a
	}
	return &Store{activities: activities}
}

// List returns a deep copy of the full mapping of activity name to record.
func (s *Store) List() map[string]Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]Activity, len(s.activities))
	for name, activity := range s.activities {
		out[name] = activity.clone()
	}
	return out
}

// Signup registers email for the named activity.
// Returns ErrActivityNotFound if the activity does not exist, and
// ErrAlreadySignedUp if the email is already registered for it.
func (s *Store) Signup(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	if slices.Contains(activity.Participants, email) {
		return ErrAlreadySignedUp
	}
	activity.Participants = append(activity.Participants, email)
	return nil
}

// Unregister removes email from the named activity.
// Returns ErrActivityNotFound if the activity does not exist, and
// ErrNotSignedUp if the email is not registered for it.
func (s *Store) Unregister(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	i := slices.Index(activity.Participants, email)
	if i < 0 {
		return ErrNotSignedUp
	}
	activity.Participants = slices.Delete(activity.Participants, i, i+1)
	return nil
}

// Sizes returns the current participant count per activity.
func (s *Store) Sizes() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]int, len(s.activities))
	for name, activity := range s.activities {
		out[name] = len(activity.Participants)
	}
	return out
}

// Names returns the activity names in no particular order.
func (s *Store) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.activities))
	for name := range s.activities {
		out = append(out, name)
	}
	return out
}
