package model

import (
	"slices"

	"github.com/samber/lo"
)

// ElectiveRequirementName labels the synthesized elective requirement.
const ElectiveRequirementName = "electives"

type resolverImplementation struct{}

func (resolver *resolverImplementation) Resolve(table CourseTable, options OptimizationOptions) []Requirement {
	// Requirement names are processed in sorted order so candidate order,
	// and therefore tie-breaking in the ranking, is deterministic.
	names := lo.Keys(options.RequirementsSpec)
	slices.Sort(names)

	requirements := make([]Requirement, 0, len(names)+1)
	for _, name := range names {
		groups := make([][]*Course, 0, len(options.RequirementsSpec[name]))
		for _, group := range options.RequirementsSpec[name] {
			concrete := make([]*Course, 0, len(group))
			missing := false
			for _, code := range group {
				course, ok := table.Courses[code]
				if !ok || len(course.Sections) == 0 {
					missing = true
					break
				}
				concrete = append(concrete, course)
			}
			if !missing {
				groups = append(groups, concrete)
			}
		}
		requirements = append(requirements, Requirement{Name: name, Groups: groups})
	}

	//** Electives: every offered elective course is its own singleton group
	electiveCodes := lo.Keys(table.Electives)
	slices.Sort(electiveCodes)

	electiveGroups := make([][]*Course, 0, len(electiveCodes))
	for _, code := range electiveCodes {
		if course := table.Electives[code]; len(course.Sections) > 0 {
			electiveGroups = append(electiveGroups, []*Course{course})
		}
	}
	requirements = append(requirements, Requirement{Name: ElectiveRequirementName, Groups: electiveGroups})

	return requirements
}

func (resolver *resolverImplementation) BuildSlates(requirements []Requirement) [][]*Course {
	slates := [][]*Course{{}}
	for _, requirement := range requirements {
		if len(requirement.Groups) == 0 {
			// Unsatisfiable requirement: zero schedules overall
			return nil
		}
		next := make([][]*Course, 0, len(slates)*len(requirement.Groups))
		for _, group := range requirement.Groups {
			for _, slate := range slates {
				next = append(next, append(slices.Clone(slate), group...))
			}
		}
		slates = next
	}
	return slates
}
