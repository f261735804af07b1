package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "activities.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultActivities(t *testing.T) {
	activities := DefaultActivities()

	require.Contains(t, activities, "Chess Club")
	assert.Equal(t, "Learn strategies and compete in chess tournaments",
		activities["Chess Club"].Description)
	assert.Equal(t, 12, activities["Chess Club"].MaxParticipants)
	assert.Contains(t, activities["Chess Club"].Participants, "michael@mergington.edu")

	require.NoError(t, validateSeed(activities))
}

func TestLoadSeed(t *testing.T) {
	path := writeSeedFile(t, `
Robotics Club:
  description: Build and program competition robots
  schedule: Saturdays, 10:00 AM - 12:00 PM
  max_participants: 8
  participants:
    - lucas@mergington.edu
Choir:
  description: Sing in the school choir
  schedule: Wednesdays, 3:30 PM - 4:30 PM
  max_participants: 25
  participants: []
`)

	activities, err := LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, activities, 2)

	robotics := activities["Robotics Club"]
	assert.Equal(t, "Build and program competition robots", robotics.Description)
	assert.Equal(t, 8, robotics.MaxParticipants)
	assert.Equal(t, []string{"lucas@mergington.edu"}, robotics.Participants)
}

func TestLoadSeed_MissingFile(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadSeed_InvalidYAML(t *testing.T) {
	path := writeSeedFile(t, "not: [valid: yaml")
	_, err := LoadSeed(path)
	assert.Error(t, err)
}

func TestLoadSeed_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "empty catalog",
			content: "{}\n",
		},
		{
			name: "negative capacity",
			content: `
Bad Club:
  description: d
  schedule: s
  max_participants: -1
  participants: []
`,
		},
		{
			name: "duplicate participant",
			content: `
Bad Club:
  description: d
  schedule: s
  max_participants: 5
  participants:
    - same@mergington.edu
    - same@mergington.edu
`,
		},
		{
			name: "empty participant email",
			content: `
Bad Club:
  description: d
  schedule: s
  max_participants: 5
  participants:
    - ""
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSeedFile(t, tt.content)
			_, err := LoadSeed(path)
			assert.Error(t, err)
		})
	}
}
