package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeOptionsFile(t *testing.T, contents string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "options.json")
	assert.NoError(t, os.WriteFile(file, []byte(contents), 0644))
	return file
}

func TestValidateMaxSchedules(t *testing.T) {
	scenarios := []struct {
		maxSchedules int
		valid        bool
	}{
		{-1, false},
		{0, false},
		{1, true},
		{25, true},
	}

	for _, scenario := range scenarios {
		options := DefaultOptions()
		options.MaxSchedules = scenario.maxSchedules

		err := options.Validate()

		if scenario.valid {
			assert.NoError(t, err)
		} else {
			assert.ErrorIs(t, err, ErrNonPositiveMaxSchedules)
		}
	}
}

func TestValidateInvertedIdealRange(t *testing.T) {
	options := DefaultOptions()
	options.Scoring.ActiveDayIdealRange = [2]int{4, 3}

	assert.Error(t, options.Validate())
}

func TestCloneIsAliasingFree(t *testing.T) {
	// Arrange
	options := DefaultOptions()
	options.IncludeSubjects = []string{"CSCI"}

	// Act
	cloned := options.Clone()
	cloned.RequirementsSpec["cs_requirement"][0][0] = "CSCI9999"
	cloned.RequirementsSpec["new_requirement"] = [][]string{{"PHYS1100"}}
	cloned.IncludeSubjects[0] = "PHYS"

	// Assert
	assert.Equal(t, "CSCI1200", options.RequirementsSpec["cs_requirement"][0][0])
	assert.NotContains(t, options.RequirementsSpec, "new_requirement")
	assert.Equal(t, []string{"CSCI"}, options.IncludeSubjects)
}

func TestOptionsFromJsonReplacesSpecWholesale(t *testing.T) {
	// Arrange
	file := writeOptionsFile(t, `{
		"requirements_spec": {"phys_requirement": [["PHYS1100"]]},
		"include_subjects": ["PHYS"],
		"max_schedules": 5
	}`)

	// Act
	options, err := OptionsFromJson(file)

	// Assert: the supplied spec replaces the default one wholesale
	assert.NoError(t, err)
	assert.Equal(t, map[string][][]string{"phys_requirement": {{"PHYS1100"}}}, options.RequirementsSpec)
	assert.Equal(t, []string{"PHYS"}, options.IncludeSubjects)
	assert.Equal(t, 5, options.MaxSchedules)

	// Fields the file does not mention keep their defaults
	assert.Equal(t, DefaultElectiveSubject, options.ElectiveSubject)
	assert.Equal(t, DefaultScoringWeights(), options.Scoring)
}

func TestOptionsFromJsonKeepsDefaultsForAbsentFields(t *testing.T) {
	// Arrange
	file := writeOptionsFile(t, `{"elective_subject": "ARTS"}`)

	// Act
	options, err := OptionsFromJson(file)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "ARTS", options.ElectiveSubject)
	assert.Equal(t, DefaultOptions().RequirementsSpec, options.RequirementsSpec)
	assert.Equal(t, DefaultMaxSchedules, options.MaxSchedules)
}

func TestDefaultOptionsAreIndependent(t *testing.T) {
	// Act
	first := DefaultOptions()
	second := DefaultOptions()
	first.RequirementsSpec["cs_requirement"][0][0] = "CSCI9999"

	// Assert
	assert.Equal(t, "CSCI1200", second.RequirementsSpec["cs_requirement"][0][0])
}
