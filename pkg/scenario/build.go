package scenario

import (
	"fmt"
	"log/slog"

	"github.com/jwebster45206/text-adventure/pkg/action"
	"github.com/jwebster45206/text-adventure/pkg/state"
	"github.com/jwebster45206/text-adventure/pkg/world"
)

// Build validates the scenario and creates its locations in document order.
// Every location shares the factory and the inventory.
func (s *Scenario) Build(factory world.ActionFactory, inventory *world.Inventory) ([]*world.Location, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	var inv action.Inventory
	if inventory != nil {
		inv = inventory
	}

	locations := make([]*world.Location, 0, len(s.Locations))
	for _, ls := range s.Locations {
		l := world.NewLocation(ls.ID, ls.Description, inv, factory)
		l.SetAreaID(ls.Area)
		l.SetX(ls.X)
		l.SetY(ls.Y)

		for _, es := range ls.Exits {
			hint, _ := world.ParseDirectionHint(es.Direction) // checked by Validate
			e := world.NewExitTo(es.Label, es.To, hint)
			if es.Visible != nil {
				e.WithVisible(*es.Visible)
			}
			l.AddExit(e)
		}

		for _, is := range ls.Items {
			l.AddItem(is.toItem())
		}

		locations = append(locations, l)
	}

	return locations, nil
}

// NewGameModel builds the world into a new game placed at the opening
// location, carrying the opening inventory.
func (s *Scenario) NewGameModel(factory world.ActionFactory, logger *slog.Logger) (*state.GameModel, error) {
	m := state.NewGameModel(world.NewInventory(), logger)

	locations, err := s.Build(factory, m.Inventory())
	if err != nil {
		return nil, err
	}
	for _, l := range locations {
		m.AddLocation(l)
	}
	for _, is := range s.OpeningInventory {
		m.Inventory().AddItem(is.toItem())
	}

	if err := m.SetCurrentLocation(s.OpeningLocation); err != nil {
		return nil, fmt.Errorf("failed to start scenario %q: %w", s.Name, err)
	}
	return m, nil
}
