package memory

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"icpc-contest/internal/apperrors"
	"icpc-contest/internal/domain/model"
	"icpc-contest/internal/domain/ports"
)

// DefaultCapacity is the catalog size used when none is configured.
const DefaultCapacity = 100

// Catalog is a bounded, in-process ProblemCatalog.
type Catalog struct {
	mu       sync.RWMutex
	problems []model.Problem
	capacity int
}

var _ ports.ProblemCatalog = (*Catalog)(nil)

// NewCatalog creates an empty catalog holding at most capacity problems.
// A non-positive capacity falls back to DefaultCapacity.
func NewCatalog(capacity int) *Catalog {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Catalog{capacity: capacity}
}

// Capacity returns the maximum number of problems.
func (c *Catalog) Capacity() int {
	return c.capacity
}

// Exists reports whether a stored problem has the statement, ignoring case.
func (c *Catalog) Exists(statement string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.indexOf(statement) >= 0
}

// Add appends the problem. It does not check for duplicates; callers use
// Exists first, or AddIfAbsent.
func (c *Catalog) Add(problem model.Problem) (model.Problem, error) {
	const op = "memory.Catalog.Add"

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.problems) >= c.capacity {
		return model.Problem{}, fmt.Errorf("%s: %w (capacity %d)", op, apperrors.ErrCapacityExceeded, c.capacity)
	}
	return c.appendLocked(problem), nil
}

// AddIfAbsent checks for a duplicate statement and appends under one lock.
func (c *Catalog) AddIfAbsent(problem model.Problem) (model.Problem, error) {
	const op = "memory.Catalog.AddIfAbsent"

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexOf(problem.Statement) >= 0 {
		return model.Problem{}, fmt.Errorf("%s: %w", op, apperrors.ErrDuplicateProblem)
	}
	if len(c.problems) >= c.capacity {
		return model.Problem{}, fmt.Errorf("%s: %w (capacity %d)", op, apperrors.ErrCapacityExceeded, c.capacity)
	}
	return c.appendLocked(problem), nil
}

// Len returns the number of stored problems.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.problems)
}

// Problems returns a copy of the stored problems in insertion order.
func (c *Catalog) Problems() []model.Problem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Problem, len(c.problems))
	copy(out, c.problems)
	return out
}

func (c *Catalog) appendLocked(problem model.Problem) model.Problem {
	if problem.ID == "" {
		problem.ID = uuid.NewString()
	}
	c.problems = append(c.problems, problem)
	return problem
}

func (c *Catalog) indexOf(statement string) int {
	key := model.StatementKey(statement)
	for i, p := range c.problems {
		if model.StatementKey(p.Statement) == key {
			return i
		}
	}
	return -1
}
