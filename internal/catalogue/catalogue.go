// Package catalogue is the in-memory data model: stops, buses, the two-level
// distance table and the stop-to-buses reverse index. It is populated once
// during the load phase and is read-only for the rest of the process
// lifetime — there is no locking because nothing mutates it concurrently
// with reads.
package catalogue

import (
	"fmt"
	"sort"

	"github.com/antigravity/morocco-transport/internal/geo"
)

// Stop is a named geodetic point. Identity is by pointer: every lookup for
// the same name returns the same *Stop for the life of the Catalogue.
type Stop struct {
	Name        string
	Coordinates geo.Coordinates
}

// Bus is a named, ordered walk over stops. Stops holds the materialised
// route: for a non-round-trip bus this is already the palindrome, for a
// round-trip bus it is the declared list verbatim.
type Bus struct {
	Name        string
	Stops       []*Stop
	IsRoundtrip bool
}

// UniqueStopCount returns the number of distinct stops referenced by the bus.
func (b *Bus) UniqueStopCount() int {
	seen := make(map[*Stop]struct{}, len(b.Stops))
	for _, s := range b.Stops {
		seen[s] = struct{}{}
	}
	return len(seen)
}

type distanceKey struct {
	from, to *Stop
}

// Catalogue is the stop/bus store plus its reverse indices.
type Catalogue struct {
	stops     []*Stop
	stopIndex map[string]*Stop

	buses     []*Bus
	busIndex  map[string]*Bus

	distances map[distanceKey]int

	busesByStop map[*Stop][]*Bus
}

// New returns an empty Catalogue.
func New() *Catalogue {
	return &Catalogue{
		stopIndex:   make(map[string]*Stop),
		busIndex:    make(map[string]*Bus),
		distances:   make(map[distanceKey]int),
		busesByStop: make(map[*Stop][]*Bus),
	}
}

// AddStop inserts a new stop. Fails if the name repeats.
func (c *Catalogue) AddStop(name string, coords geo.Coordinates) (*Stop, error) {
	if _, ok := c.stopIndex[name]; ok {
		return nil, fmt.Errorf("add stop %q: %w", name, ErrDuplicateStop)
	}
	s := &Stop{Name: name, Coordinates: coords}
	c.stopIndex[name] = s
	c.stops = append(c.stops, s)
	return s, nil
}

// SetDistance records D[from,to] = meters, overwriting any previous value.
func (c *Catalogue) SetDistance(fromName, toName string, meters int) error {
	from, ok := c.GetStop(fromName)
	if !ok {
		return fmt.Errorf("set distance from %q: %w", fromName, ErrUnknownStop)
	}
	to, ok := c.GetStop(toName)
	if !ok {
		return fmt.Errorf("set distance to %q: %w", toName, ErrUnknownStop)
	}
	c.distances[distanceKey{from, to}] = meters
	return nil
}

// AddBus resolves stopNames to Stop references, materialises the route,
// and registers the bus in the name index and reverse index.
func (c *Catalogue) AddBus(name string, stopNames []string, isRoundtrip bool) (*Bus, error) {
	if _, ok := c.busIndex[name]; ok {
		return nil, fmt.Errorf("add bus %q: %w", name, ErrDuplicateBus)
	}

	declared := make([]*Stop, 0, len(stopNames))
	for _, sn := range stopNames {
		stop, ok := c.GetStop(sn)
		if !ok {
			return nil, fmt.Errorf("add bus %q: stop %q: %w", name, sn, ErrUnknownStop)
		}
		declared = append(declared, stop)
	}

	var materialised []*Stop
	if isRoundtrip {
		if len(declared) > 0 && declared[0] != declared[len(declared)-1] {
			return nil, fmt.Errorf("add bus %q: %w", name, ErrBadRoundtrip)
		}
		materialised = declared
	} else if len(declared) == 0 {
		materialised = declared
	} else {
		materialised = make([]*Stop, 0, 2*len(declared)-1)
		materialised = append(materialised, declared...)
		for i := len(declared) - 2; i >= 0; i-- {
			materialised = append(materialised, declared[i])
		}
	}

	bus := &Bus{Name: name, Stops: materialised, IsRoundtrip: isRoundtrip}
	c.busIndex[name] = bus
	c.buses = append(c.buses, bus)

	seen := make(map[*Stop]struct{}, len(materialised))
	for _, s := range materialised {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		c.busesByStop[s] = append(c.busesByStop[s], bus)
	}

	return bus, nil
}

// GetStop looks up a stop by name.
func (c *Catalogue) GetStop(name string) (*Stop, bool) {
	s, ok := c.stopIndex[name]
	return s, ok
}

// GetBus looks up a bus by name.
func (c *Catalogue) GetBus(name string) (*Bus, bool) {
	b, ok := c.busIndex[name]
	return b, ok
}

// BusesThrough returns the lexicographically sorted names of buses passing
// through stopName. The second return distinguishes "unknown stop" (false)
// from "known stop with no buses" (true, empty slice).
func (c *Catalogue) BusesThrough(stopName string) ([]string, bool) {
	stop, ok := c.GetStop(stopName)
	if !ok {
		return nil, false
	}
	buses := c.busesByStop[stop]
	names := make([]string, 0, len(buses))
	for _, b := range buses {
		names = append(names, b.Name)
	}
	sort.Strings(names)
	return names, true
}

// Distance applies the fallback rule: D[a,b] if present, else D[b,a].
func (c *Catalogue) Distance(a, b *Stop) (int, bool) {
	if d, ok := c.distances[distanceKey{a, b}]; ok {
		return d, true
	}
	if d, ok := c.distances[distanceKey{b, a}]; ok {
		return d, true
	}
	return 0, false
}

// AllStops returns stops in insertion order.
func (c *Catalogue) AllStops() []*Stop { return c.stops }

// AllBuses returns buses in insertion order.
func (c *Catalogue) AllBuses() []*Bus { return c.buses }
