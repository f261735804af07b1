// Package handlers provides HTTP handlers for the activity signup server.
//
// Each handler is in its own file and implements http.Handler.
// Handlers use interfaces to access server dependencies, avoiding
// circular imports.
package handlers

import (
	"github.com/mergington/activities/config"
	"github.com/mergington/activities/roster"
)

// ActivityLister provides read access to the activity roster.
type ActivityLister interface {
	List() map[string]roster.Activity
}

// RosterStore provides the mutating roster operations.
type RosterStore interface {
	Signup(activity, email string) error
	Unregister(activity, email string) error
	Sizes() map[string]int
}

// ConfigProvider provides access to the current configuration.
type ConfigProvider interface {
	Config() *config.ServerConfig
}

// RosterRecorder observes signup traffic and roster sizes for metrics.
type RosterRecorder interface {
	RecordSignup(activity, status string)
	RecordUnregister(activity, status string)
	ObserveSizes(sizes map[string]int)
}
