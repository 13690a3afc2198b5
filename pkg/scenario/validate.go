package scenario

import (
	"errors"
	"fmt"

	"github.com/jwebster45206/text-adventure/pkg/world"
)

// Validate checks the scenario for structural problems and returns all of
// them joined, wrapped in ErrInvalidScenario.
func (s *Scenario) Validate() error {
	var errs []error

	if s.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if len(s.Locations) == 0 {
		errs = append(errs, errors.New("at least one location is required"))
	}

	ids := make(map[string]bool, len(s.Locations))
	for n, l := range s.Locations {
		switch {
		case l.ID == "":
			errs = append(errs, fmt.Errorf("location %d: id is required", n))
		case ids[l.ID]:
			errs = append(errs, fmt.Errorf("location %q: duplicate id", l.ID))
		}
		ids[l.ID] = true
	}

	if s.OpeningLocation == "" {
		errs = append(errs, errors.New("opening_location is required"))
	} else if !ids[s.OpeningLocation] {
		errs = append(errs, fmt.Errorf("opening_location %q does not exist", s.OpeningLocation))
	}

	itemIDs := make(map[string]bool)
	checkItem := func(where string, is ItemSpec) {
		if is.ID == "" {
			errs = append(errs, fmt.Errorf("%s: item %q has no id", where, is.Name))
			return
		}
		if is.Name == "" {
			errs = append(errs, fmt.Errorf("%s: item %q has no name", where, is.ID))
		}
		if itemIDs[is.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate item id %q", where, is.ID))
		}
		itemIDs[is.ID] = true
		for _, p := range is.Talk {
			if p.Say == "" {
				errs = append(errs, fmt.Errorf("%s: item %q has a talk phrase with nothing to say", where, is.ID))
			}
		}
	}

	for _, is := range s.OpeningInventory {
		checkItem("opening_inventory", is)
	}

	for _, l := range s.Locations {
		where := fmt.Sprintf("location %q", l.ID)
		for _, e := range l.Exits {
			if e.Label == "" {
				errs = append(errs, fmt.Errorf("%s: exit to %q has no label", where, e.To))
			}
			if !ids[e.To] {
				errs = append(errs, fmt.Errorf("%s: exit %q leads to unknown location %q", where, e.Label, e.To))
			}
			if _, err := world.ParseDirectionHint(e.Direction); err != nil {
				errs = append(errs, fmt.Errorf("%s: exit %q: %w", where, e.Label, err))
			}
		}
		for _, is := range l.Items {
			checkItem(where, is)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidScenario, errors.Join(errs...))
}
