package roster

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// DefaultActivities returns the built-in activity catalog used when no seed
// file is configured.
func DefaultActivities() map[string]Activity {
	return map[string]Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Basketball Team": {
			Description:     "Practice and compete in basketball tournaments",
			Schedule:        "Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"liam@mergington.edu", "ava@mergington.edu"},
		},
		"Tennis Club": {
			Description:     "Improve your tennis skills through drills and friendly matches",
			Schedule:        "Tuesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 10,
			Participants:    []string{"noah@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Act, direct, and produce school theater performances",
			Schedule:        "Mondays and Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"isabella@mergington.edu", "mia@mergington.edu"},
		},
		"Art Studio": {
			Description:     "Explore painting, drawing, and sculpture techniques",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"amelia@mergington.edu"},
		},
	}
}

// LoadSeed reads a YAML activity catalog from path. When present it replaces
// the built-in defaults entirely.
func LoadSeed(path string) (map[string]Activity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file %s: %w", path, err)
	}
	defer f.Close()

	var activities map[string]Activity
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&activities); err != nil {
		return nil, fmt.Errorf("failed to decode YAML seed file %s: %w", path, err)
	}

	if err := validateSeed(activities); err != nil {
		return nil, fmt.Errorf("invalid seed file %s: %w", path, err)
	}
	return activities, nil
}

// validateSeed checks the invariants the store relies on after seeding.
func validateSeed(activities map[string]Activity) error {
	if len(activities) == 0 {
		return fmt.Errorf("no activities defined")
	}
	for name, activity := range activities {
		if name == "" {
			return fmt.Errorf("activity with empty name")
		}
		if activity.MaxParticipants < 0 {
			return fmt.Errorf("activity %q: max_participants must not be negative", name)
		}
		for i, email := range activity.Participants {
			if email == "" {
				return fmt.Errorf("activity %q: empty participant email", name)
			}
			if slices.Contains(activity.Participants[:i], email) {
				return fmt.Errorf("activity %q: duplicate participant %s", name, email)
			}
		}
	}
	return nil
}
