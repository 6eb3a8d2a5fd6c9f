// Package planner provides shortest-path planners for the autonomous agent
// and a global registry for planner factories. Planners register themselves
// in init() functions, allowing the CLI to discover and instantiate them
// without hardcoded dependencies.
package planner

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vandriyan/autosnake/internal/core"
)

// Occupancy answers membership queries against the cells currently covered
// by the agent's body. Implemented by game.CellSet.
type Occupancy interface {
	Contains(c core.Cell) bool
}

// Planner computes a route from the agent's head to the current target.
//
// FindPath returns the cells from start to end inclusive, where each
// consecutive pair is an orthogonal neighbor and no interior cell is
// occupied. The end cell is exempt from the occupancy check: the target is
// never body by construction. A nil result means no route exists this tick,
// a valid negative answer rather than an error. If start == end the path is the
// single-element sequence [start].
type Planner interface {
	// ID returns a unique identifier for this planner (e.g. "astar").
	ID() string

	// FindPath plans a route over the free cells of the grid.
	FindPath(start, end core.Cell, b core.Bounds, occ Occupancy) []core.Cell
}

// Info contains metadata about a registered planner.
type Info struct {
	ID          string
	Description string
}

// Factory is a function that creates a new instance of a planner.
type Factory func() Planner

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a planner factory to the registry.
// Typically called from a planner's init() function.
// Panics if a planner with the same ID is already registered.
func Register(id, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("planner: %q already registered", id))
	}

	factories[id] = f
	descriptions[id] = description
}

// List returns information about all registered planners, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:          id,
			Description: descriptions[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new planner by its ID.
// Returns an error if the planner ID is not registered.
func Create(id string) (Planner, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("planner: unknown planner %q", id)
	}

	return f(), nil
}

// Exists checks if a planner with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
