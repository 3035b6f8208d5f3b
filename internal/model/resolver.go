package model

// Requirement is a named obligation satisfiable by exactly one of its
// groups; a group is the set of courses that must be taken together.
type Requirement struct {
	Name   string
	Groups [][]*Course
}

// Resolver concretizes the declarative requirements spec against the course
// table and expands the per-requirement group choices into course slates.
// A requirement left with zero concrete groups makes the whole search yield
// zero schedules; that is a valid outcome, not an error.
type Resolver interface {
	Resolve(table CourseTable, options OptimizationOptions) []Requirement
	BuildSlates(requirements []Requirement) [][]*Course
}

func NewResolver() Resolver {
	return &resolverImplementation{}
}
