package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/megaverse-cli/internal/domain"
	"github.com/bnema/megaverse-cli/internal/ports"
)

// Endpoint keeps placements in process memory. Dry runs submit against
// it instead of the remote service, and tests use it as a drop-in
// endpoint double.
type Endpoint struct {
	mu      sync.RWMutex
	goal    domain.GoalGrid
	objects map[domain.Position]domain.PlacementObject
}

var _ ports.MegaverseAPI = (*Endpoint)(nil)

func NewEndpoint() *Endpoint {
	return &Endpoint{objects: map[domain.Position]domain.PlacementObject{}}
}

func (e *Endpoint) SetGoal(grid domain.GoalGrid) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.goal = grid
}

func (e *Endpoint) CreateObject(ctx context.Context, obj domain.PlacementObject) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := obj.Validate(); err != nil {
		return fmt.Errorf("create object: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.objects[obj.Position] = obj
	return nil
}

func (e *Endpoint) DeleteObject(ctx context.Context, kind domain.ObjectKind, pos domain.Position) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !kind.Valid() {
		return fmt.Errorf("delete object: unsupported object kind %q", kind)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if existing, ok := e.objects[pos]; ok && existing.Kind == kind {
		delete(e.objects, pos)
	}
	return nil
}

func (e *Endpoint) FetchGoal(ctx context.Context) (domain.GoalGrid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	if len(e.goal) == 0 {
		return nil, fmt.Errorf("%w: no goal configured", domain.ErrInvalidGoal)
	}

	grid := make(domain.GoalGrid, len(e.goal))
	for i, row := range e.goal {
		grid[i] = append([]string(nil), row...)
	}
	return grid, nil
}

func (e *Endpoint) ObjectAt(pos domain.Position) (domain.PlacementObject, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	obj, ok := e.objects[pos]
	return obj, ok
}

func (e *Endpoint) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.objects)
}

// Objects returns current placements in row-major order.
func (e *Endpoint) Objects() []domain.PlacementObject {
	e.mu.RLock()
	defer e.mu.RUnlock()

	objects := make([]domain.PlacementObject, 0, len(e.objects))
	for _, obj := range e.objects {
		objects = append(objects, obj)
	}
	sort.Slice(objects, func(i, j int) bool {
		if objects[i].Position.Row != objects[j].Position.Row {
			return objects[i].Position.Row < objects[j].Position.Row
		}
		return objects[i].Position.Column < objects[j].Position.Column
	})

	return objects
}
