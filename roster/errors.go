package roster

import "errors"

var (
	// ErrActivityNotFound is returned when the named activity does not exist.
	ErrActivityNotFound = errors.New("activity not found")

	// ErrAlreadySignedUp is returned when the email is already registered
	// for the activity.
	ErrAlreadySignedUp = errors.New("student is already signed up")

	// ErrNotSignedUp is returned when unregistering an email that is not
	// registered for the activity.
	ErrNotSignedUp = errors.New("student is not signed up for this activity")
)
