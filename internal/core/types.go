package core

// FieldCategory groups canonical fields by their role in the catalog.
type FieldCategory string

const (
	CategoryIdentification FieldCategory = "identification"
	CategoryTracking       FieldCategory = "tracking"
	CategoryLocation       FieldCategory = "location"
	CategoryStatus         FieldCategory = "status"
	CategoryTechnical      FieldCategory = "technical"
	CategoryAdmin          FieldCategory = "admin"
)

// CanonicalField is one immutable catalog entry. The Key is the stable
// identifier used everywhere else in the system; display names and aliases
// are only ever compared after normalization.
type CanonicalField struct {
	Key         string        `json:"key"`
	DisplayName string        `json:"displayName"`
	Aliases     []string      `json:"aliases"`
	Category    FieldCategory `json:"category"`
	Description string        `json:"description"`
}

// MatchType describes which tier of matching produced a FieldMatch.
type MatchType string

const (
	MatchExact MatchType = "exact" // normalized display-name equality
	MatchAlias MatchType = "alias" // normalized alias equality
	MatchFuzzy MatchType = "fuzzy" // alias similarity below 1.0
)

// FieldMatch is the ephemeral result of matching one header string against
// the registry. It is recomputed per call and never persisted.
type FieldMatch struct {
	Field        CanonicalField
	Confidence   float64
	Type         MatchType
	MatchedAlias string // empty for display-name matches
}

// Grid is a bounded scan window of raw cell text: an ordered sequence of
// rows, each an ordered sequence of cells. Rows may be ragged. The core
// never mutates a Grid it is given.
type Grid [][]string

// FieldMapping is one committed column assignment from auto-mapping.
type FieldMapping struct {
	FieldKey     string    `json:"fieldKey"`
	Column       int       `json:"column"`
	ColumnLetter string    `json:"columnLetter"`
	Header       string    `json:"header"`
	Confidence   float64   `json:"confidence"`
	MatchType    MatchType `json:"matchType"`
}

// ColumnCandidate is one possible column for a field that matched more than
// once. Candidates are returned for external disambiguation; the core never
// tie-breaks them itself.
type ColumnCandidate struct {
	Column       int     `json:"column"`
	ColumnLetter string  `json:"columnLetter"`
	Header       string  `json:"header"`
	Confidence   float64 `json:"confidence"`
}

// AutoMappingResult partitions the requested field keys: every requested key
// appears in exactly one of Mappings, UnmatchedFields, or AmbiguousMatches.
// No two mappings reference the same column.
type AutoMappingResult struct {
	Mappings         []FieldMapping               `json:"mappings"`
	UnmatchedFields  []string                     `json:"unmatchedFields"`
	AmbiguousMatches map[string][]ColumnCandidate `json:"ambiguousMatches"`
}

// MappedColumns returns fieldKey -> column index for the committed mappings,
// in the shape GenerateSmartName consumes.
func (r AutoMappingResult) MappedColumns() map[string]int {
	cols := make(map[string]int, len(r.Mappings))
	for _, m := range r.Mappings {
		cols[m.FieldKey] = m.Column
	}
	return cols
}
