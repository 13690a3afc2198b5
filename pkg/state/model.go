// Package state holds the running game: the registered locations, the
// player's current location and inventory, and the observers that react
// when the player moves.
package state

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jwebster45206/text-adventure/pkg/action"
	"github.com/jwebster45206/text-adventure/pkg/item"
	"github.com/jwebster45206/text-adventure/pkg/world"
)

// ErrUnknownLocation is returned when a location id has not been registered.
var ErrUnknownLocation = errors.New("unknown location")

// MovementSubscriber is notified after the current location changes.
type MovementSubscriber interface {
	CurrentLocationChanged()
}

// GameModel is one game session.
type GameModel struct {
	id          uuid.UUID
	locations   map[string]*world.Location
	current     *world.Location
	inventory   *world.Inventory
	subscribers []MovementSubscriber
	logger      *slog.Logger
}

// NewGameModel creates an empty session. A nil inventory gets a fresh one
// and a nil logger discards output.
func NewGameModel(inventory *world.Inventory, logger *slog.Logger) *GameModel {
	if inventory == nil {
		inventory = world.NewInventory()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	id := uuid.New()
	return &GameModel{
		id:        id,
		locations: make(map[string]*world.Location),
		inventory: inventory,
		logger:    logger.With("game_id", id.String()),
	}
}

func (m *GameModel) ID() uuid.UUID { return m.id }

// AddLocation registers a location, replacing any with the same id.
func (m *GameModel) AddLocation(l *world.Location) {
	if l == nil {
		return
	}
	m.locations[l.ID()] = l
}

// Location returns a registered location by id.
func (m *GameModel) Location(id string) (*world.Location, bool) {
	l, ok := m.locations[id]
	return l, ok
}

// SetCurrentLocation moves the player to a registered location and notifies
// subscribers.
func (m *GameModel) SetCurrentLocation(id string) error {
	l, ok := m.locations[id]
	if !ok {
		return fmt.Errorf("set current location %q: %w", id, ErrUnknownLocation)
	}
	m.moveTo(l)
	return nil
}

// CurrentLocation is nil until a location has been set.
func (m *GameModel) CurrentLocation() *world.Location { return m.current }

func (m *GameModel) CurrentLocationDescription() string {
	if m.current == nil {
		return ""
	}
	return m.current.Description()
}

func (m *GameModel) CurrentLocationExits() []*world.Exit {
	if m.current == nil {
		return nil
	}
	return m.current.VisibleExits()
}

func (m *GameModel) CurrentLocationActions() ([]action.Action, error) {
	if m.current == nil {
		return nil, nil
	}
	return m.current.Actions()
}

func (m *GameModel) ItemsInCurrentLocation() []*item.Item {
	if m.current == nil {
		return nil
	}
	return m.current.Items()
}

func (m *GameModel) Inventory() *world.Inventory { return m.inventory }

func (m *GameModel) InventoryItems() []*item.Item { return m.inventory.Items() }

// MoveThroughExit moves the player through an exit of the current location.
// Exits that cannot be used, or that lead nowhere known, are ignored.
func (m *GameModel) MoveThroughExit(e *world.Exit) {
	if m.current == nil || !m.current.Exitable(e) {
		m.logger.Debug("ignoring move through unusable exit", "exit", e)
		return
	}

	destination := m.current.ExitDestinationFor(e)
	next, ok := m.locations[destination]
	if !ok {
		m.logger.Warn("exit leads to unknown location",
			"location", m.current.ID(),
			"exit", e.Label(),
			"destination", destination)
		return
	}

	m.moveTo(next)
}

// SubscribeForEvents adds a subscriber. Subscribers are notified in the
// order they were added.
func (m *GameModel) SubscribeForEvents(s MovementSubscriber) {
	if s == nil {
		return
	}
	m.subscribers = append(m.subscribers, s)
}

func (m *GameModel) moveTo(l *world.Location) {
	from := ""
	if m.current != nil {
		from = m.current.ID()
	}
	m.current = l
	m.logger.Info("location changed", "from", from, "location", l.ID(), "area", l.AreaID())

	for _, s := range m.subscribers {
		s.CurrentLocationChanged()
	}
}
