package state

import (
	"slices"
	"sync"

	"github.com/jwebster45206/text-adventure/pkg/world"
	"github.com/zyedidia/generic/mapset"
)

// LocationSource reports where the player currently is.
type LocationSource interface {
	CurrentLocation() *world.Location
}

// MovementMonitor records every area the player has entered. Register it
// with GameModel.SubscribeForEvents.
type MovementMonitor struct {
	source LocationSource

	mu       sync.Mutex
	explored mapset.Set[string]
}

var _ MovementSubscriber = (*MovementMonitor)(nil)

func NewMovementMonitor(source LocationSource) *MovementMonitor {
	return &MovementMonitor{
		source:   source,
		explored: mapset.New[string](),
	}
}

func (mm *MovementMonitor) CurrentLocationChanged() {
	l := mm.source.CurrentLocation()
	if l == nil {
		return
	}

	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.explored.Put(l.AreaID())
}

// ExploredAreas returns a sorted copy of the explored area ids.
func (mm *MovementMonitor) ExploredAreas() []string {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	areas := make([]string, 0, mm.explored.Size())
	mm.explored.Each(func(area string) {
		areas = append(areas, area)
	})
	slices.Sort(areas)
	return areas
}

// HasExplored reports whether the area has been entered.
func (mm *MovementMonitor) HasExplored(area string) bool {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	return mm.explored.Has(area)
}
