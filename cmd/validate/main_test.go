package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validScenario = `name: Tiny
opening_location: hall
locations:
  - id: hall
    area: house
    description: A hall.
`

func writeScenario(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestIsValidID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"hall", true},
		{"cliff_top", true},
		{"room2", true},
		{"a", true},
		{"Cliff", false},
		{"cliff-top", false},
		{"cliff_", false},
		{"2rooms", false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.valid, isValidID(tt.id))
		})
	}
}

func TestIsValidScenarioFilename(t *testing.T) {
	assert.True(t, isValidScenarioFilename("lighthouse_cove"))
	assert.True(t, isValidScenarioFilename("x.draft_world"))
	assert.False(t, isValidScenarioFilename("Lighthouse-Cove"))
}

func TestValidateFile(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		v := &ScenarioValidator{}
		assert.NoError(t, v.validateFile(writeScenario(t, "tiny.yaml", validScenario)))
	})

	t.Run("bundled scenario", func(t *testing.T) {
		v := &ScenarioValidator{}
		assert.NoError(t, v.validateFile(filepath.Join("..", "..", "data", "scenarios", "lighthouse_cove.yaml")))
	})

	t.Run("wrong extension", func(t *testing.T) {
		v := &ScenarioValidator{}
		err := v.validateFile(writeScenario(t, "tiny.json", validScenario))
		assert.ErrorContains(t, err, ".yaml extension")
	})

	t.Run("bad filename", func(t *testing.T) {
		v := &ScenarioValidator{}
		err := v.validateFile(writeScenario(t, "Tiny-World.yaml", validScenario))
		assert.ErrorContains(t, err, "snake_case")
	})

	t.Run("bad ids and structure", func(t *testing.T) {
		v := &ScenarioValidator{}
		err := v.validateFile(writeScenario(t, "broken.yaml", `name: Broken
opening_location: Hall
locations:
  - id: Hall
    exits:
      - label: Out
        to: garden
`))
		require.Error(t, err)
		assert.ErrorContains(t, err, "location ID 'Hall' should be lowercase snake_case")
		assert.ErrorContains(t, err, `leads to unknown location "garden"`)
	})
}
