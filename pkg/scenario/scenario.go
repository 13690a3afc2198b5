// Package scenario reads world definitions from YAML and builds the
// runtime locations, exits and items they describe.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jwebster45206/text-adventure/pkg/item"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScenario wraps every validation failure.
var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario is the template for a game world.
type Scenario struct {
	Name             string         `yaml:"name"`                        // Name of the scenario
	FileName         string         `yaml:"-"`                           // Set by Load
	Story            string         `yaml:"story,omitempty"`             // Brief description of the scenario
	OpeningLocation  string         `yaml:"opening_location"`            // Initial location for the player
	OpeningInventory []ItemSpec     `yaml:"opening_inventory,omitempty"` // Items the player starts with
	Locations        []LocationSpec `yaml:"locations"`
}

// LocationSpec describes one location.
type LocationSpec struct {
	ID          string     `yaml:"id"`
	Area        string     `yaml:"area,omitempty"` // groups locations for exploration tracking
	Description string     `yaml:"description"`
	X           int        `yaml:"x,omitempty"`
	Y           int        `yaml:"y,omitempty"`
	Exits       []ExitSpec `yaml:"exits,omitempty"`
	Items       []ItemSpec `yaml:"items,omitempty"`
}

// ExitSpec describes a one-way exit to another location.
type ExitSpec struct {
	Label     string `yaml:"label"`
	To        string `yaml:"to"`
	Direction string `yaml:"direction,omitempty"` // north, south, east, west or empty
	Visible   *bool  `yaml:"visible,omitempty"`   // defaults to true
}

// ItemSpec describes an item placed in a location or the opening inventory.
type ItemSpec struct {
	ID              string            `yaml:"id"`
	Name            string            `yaml:"name"`
	Description     string            `yaml:"description,omitempty"`
	Prefix          string            `yaml:"prefix,omitempty"`
	MidSentenceName string            `yaml:"mid_sentence_name,omitempty"`
	Visible         *bool             `yaml:"visible,omitempty"`  // defaults to true
	Takeable        *bool             `yaml:"takeable,omitempty"` // defaults to true
	Talkable        bool              `yaml:"talkable,omitempty"`
	Talk            []item.TalkPhrase `yaml:"talk,omitempty"`
}

// Parse decodes a scenario document. Unknown fields are rejected.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	return &s, nil
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.FileName = filepath.Base(path)
	return s, nil
}

// Location returns the spec of the location with the given id.
func (s *Scenario) Location(id string) (LocationSpec, bool) {
	for _, l := range s.Locations {
		if l.ID == id {
			return l, true
		}
	}
	return LocationSpec{}, false
}

// Areas returns the distinct area ids in document order.
func (s *Scenario) Areas() []string {
	seen := make(map[string]bool)
	var areas []string
	for _, l := range s.Locations {
		if !seen[l.Area] {
			seen[l.Area] = true
			areas = append(areas, l.Area)
		}
	}
	return areas
}

// toItem builds the runtime item.
func (is ItemSpec) toItem() *item.Item {
	i := item.New(is.ID, is.Name, is.Description)
	if is.Prefix != "" {
		i.SetCountableNounPrefix(is.Prefix)
	}
	if is.MidSentenceName != "" {
		i.SetMidSentenceCasedName(is.MidSentenceName)
	}
	if is.Visible != nil {
		i.SetVisible(*is.Visible)
	}
	if is.Takeable != nil {
		i.SetTakeable(*is.Takeable)
	}
	if is.Talkable {
		i.SetCanTalkTo(true)
	}
	for _, p := range is.Talk {
		i.AddTalkPhrase(p.Say, p.Response)
	}
	return i
}
