package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionCombinationsSingleSectionPerCourse(t *testing.T) {
	// Arrange: every course has exactly one section and none conflict
	a := testCourse("A")
	a1 := withSection(a, "A1", meeting(Monday, 540, 590))
	b := testCourse("B")
	b1 := withSection(b, "B1", meeting(Tuesday, 540, 590))
	c := testCourse("C")
	c1 := withSection(c, "C1", meeting(Monday, 600, 650))

	// Act
	combinations := NewCombinationGenerator(0).SectionCombinations([]*Course{a, b, c})

	// Assert: exactly one candidate containing all sections
	assert.Equal(t, [][]*Section{{a1, b1, c1}}, combinations)
}

func TestSectionCombinationsSectionlessCourse(t *testing.T) {
	// Arrange
	a := testCourse("A")
	withSection(a, "A1", meeting(Monday, 540, 590))
	empty := testCourse("B")

	// Act
	combinations := NewCombinationGenerator(0).SectionCombinations([]*Course{a, empty})

	// Assert
	assert.Empty(t, combinations)
}

func TestSectionCombinationsAllPairingsConflict(t *testing.T) {
	// Arrange: both sections of B collide with the only section of A
	a := testCourse("A")
	withSection(a, "A1", meeting(Monday, 540, 650))
	b := testCourse("B")
	withSection(b, "B1", meeting(Monday, 560, 610))
	withSection(b, "B2", meeting(Monday, 600, 700))

	// Act
	combinations := NewCombinationGenerator(0).SectionCombinations([]*Course{a, b})

	// Assert
	assert.Empty(t, combinations)
}

func TestSectionCombinationsPrunesConflictingExtensions(t *testing.T) {
	// Arrange: A1 Mon 09:00-09:50; B1 Mon 09:30-10:20 conflicts, B2 Tue does not
	a := testCourse("A")
	a1 := withSection(a, "A1", meeting(Monday, 540, 590))
	b := testCourse("B")
	withSection(b, "B1", meeting(Monday, 570, 620))
	b2 := withSection(b, "B2", meeting(Tuesday, 540, 590))

	// Act
	combinations := NewCombinationGenerator(0).SectionCombinations([]*Course{a, b})

	// Assert
	assert.Equal(t, [][]*Section{{a1, b2}}, combinations)
}

func TestSectionCombinationsMultiMeetingConflicts(t *testing.T) {
	// Arrange: the conflict is on the second meeting of each section
	a := testCourse("A")
	withSection(a, "A1", meeting(Monday, 540, 590), meeting(Wednesday, 840, 890))
	b := testCourse("B")
	withSection(b, "B1", meeting(Tuesday, 540, 590), meeting(Wednesday, 860, 910))

	// Act
	combinations := NewCombinationGenerator(0).SectionCombinations([]*Course{a, b})

	// Assert
	assert.Empty(t, combinations)
}

func TestSectionCombinationsFrontierCap(t *testing.T) {
	// Arrange: 3x3 non-conflicting sections would yield 9 combinations
	a := testCourse("A")
	b := testCourse("B")
	for i, begin := range []int{540, 600, 660} {
		withSection(a, "A"+string(rune('1'+i)), meeting(Monday, begin, begin+50))
		withSection(b, "B"+string(rune('1'+i)), meeting(Tuesday, begin, begin+50))
	}

	// Act
	combinations := NewCombinationGenerator(4).SectionCombinations([]*Course{a, b})

	// Assert
	assert.Len(t, combinations, 4)
}
