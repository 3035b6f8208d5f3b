package model

// Normalizer turns raw registration-feed records into the typed course
// table the resolver works on. Malformed records and meeting blocks are
// absorbed (skipped and logged at debug level), never surfaced as errors.
type Normalizer interface {
	ExtractCourses(records []SectionRecord, options OptimizationOptions) CourseTable
}

func NewNormalizer() Normalizer {
	return &normalizerImplementation{}
}
