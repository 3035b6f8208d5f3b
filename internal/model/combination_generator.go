package model

import "log/slog"

// CombinationGenerator expands a course slate into every conflict-free
// choice of exactly one section per course.
type CombinationGenerator interface {
	SectionCombinations(slate []*Course) [][]*Section
}

// NewCombinationGenerator builds a generator with an optional cap on the
// live frontier of partial combinations (0 disables the cap). The cap is a
// safety valve against pathological catalogs; under it results may be
// incomplete but the run stays bounded.
func NewCombinationGenerator(maxFrontierSize int) CombinationGenerator {
	return &combinationGeneratorImplementation{maxFrontierSize: maxFrontierSize}
}

type combinationGeneratorImplementation struct {
	maxFrontierSize int
}

// SectionCombinations enumerates with incremental pruning: a frontier of
// mutually non-conflicting partial section lists grows one course at a
// time, and an extension is admitted only if the new section conflicts with
// none of the sections already in the partial list. An empty frontier
// terminates the slate immediately, so later courses are never examined.
func (generator *combinationGeneratorImplementation) SectionCombinations(slate []*Course) [][]*Section {
	combinations := [][]*Section{{}}

	for _, course := range slate {
		if len(course.Sections) == 0 {
			// The resolver never emits such a course; yield nothing rather than panic
			return nil
		}

		admitted := make([][]*Section, 0, len(combinations))
		capped := false
		for _, section := range course.Sections {
			for _, combination := range combinations {
				if conflictsWithAny(section, combination) {
					continue
				}

				extended := make([]*Section, len(combination)+1)
				copy(extended, combination)
				extended[len(combination)] = section
				admitted = append(admitted, extended)

				if generator.maxFrontierSize > 0 && len(admitted) >= generator.maxFrontierSize {
					capped = true
					break
				}
			}
			if capped {
				slog.Debug("frontier cap reached; truncating combinations", "course", course.SubjectCourse, "cap", generator.maxFrontierSize)
				break
			}
		}

		combinations = admitted
		if len(combinations) == 0 {
			return nil
		}
	}

	return combinations
}

func conflictsWithAny(section *Section, combination []*Section) bool {
	for _, existing := range combination {
		if section.ConflictsWith(existing) {
			return true
		}
	}
	return false
}
