// Package roster holds the in-memory activity roster for the signup server.
//
// The roster is seeded once at startup and lives for the process lifetime.
// Activities are never created or destroyed at runtime; only their
// participant lists change, via Signup and Unregister. All access goes
// through Store, which serializes check-then-mutate sequences so that a
// student can never be signed up twice for the same activity.
//
// # Example
//
//	store := roster.NewStore(roster.DefaultActivities())
//
//	if err := store.Signup("Chess Club", "test@mergington.edu"); err != nil {
//	    if errors.Is(err, roster.ErrAlreadySignedUp) {
//	        // Duplicate signup attempt
//	    }
//	}
//
//	for name, activity := range store.List() {
//	    fmt.Printf("%s: %d/%d\n", name, len(activity.Participants), activity.MaxParticipants)
//	}
package roster

// Activity is a single extracurricular offering.
type Activity struct {
	// Description is a short human-readable summary of the activity.
	Description string `json:"description" yaml:"description"`
	// Schedule is free-form text describing when the activity meets.
	Schedule string `json:"schedule" yaml:"schedule"`
	// MaxParticipants is the advertised capacity. It is advisory only and
	// is not enforced as a signup limit.
	MaxParticipants int `json:"max_participants" yaml:"max_participants"`
	// Participants holds registered student emails in signup order.
	Participants []string `json:"participants" yaml:"participants"`
}

// clone returns a deep copy so callers cannot mutate stored state.
func (a Activity) clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}
