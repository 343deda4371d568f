package ports

import "icpc-contest/internal/domain/model"

// ProblemCatalog stores accepted problems in insertion order.
type ProblemCatalog interface {
	// Exists reports whether a stored problem has the statement, ignoring case.
	Exists(statement string) bool
	// Add appends the problem without checking for duplicates.
	Add(problem model.Problem) (model.Problem, error)
	// AddIfAbsent appends the problem unless its statement is already stored.
	AddIfAbsent(problem model.Problem) (model.Problem, error)
	Len() int
	Capacity() int
	Problems() []model.Problem
}
