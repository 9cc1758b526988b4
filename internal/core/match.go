package core

// match.go resolves a single raw header string to a canonical field.
//
// Matching is tiered: an exact (post-normalization) display-name hit always
// wins outright, before any alias of any field is considered. Alias matches
// are scored by Similarity and filtered by a caller-supplied threshold — each
// use site picks its own floor (header scanning is permissive, auto-mapping
// strict), so the threshold is a parameter rather than package config.

// Default confidence floors used by the higher-level operations.
const (
	// DefaultScanConfidence is the permissive floor used while scoring
	// candidate header rows, tolerating header paraphrases.
	DefaultScanConfidence = 0.7

	// DefaultMapConfidence is the stricter floor used when committing
	// column assignments during auto-mapping.
	DefaultMapConfidence = 0.8
)

// FindBestMatch returns the best-matching canonical field for a header
// string, or nil when nothing clears minConfidence. A nil result is a valid
// outcome, not an error.
//
// Among alias candidates only a strictly higher confidence displaces the
// current best, so ties keep the first field in registry order.
func FindBestMatch(headerText string, minConfidence float64) *FieldMatch {
	if Normalize(headerText) == "" {
		return nil
	}

	for _, f := range catalog {
		if Similarity(headerText, f.DisplayName) == 1.0 {
			return &FieldMatch{Field: f, Confidence: 1.0, Type: MatchExact}
		}
	}

	var best *FieldMatch
	for _, f := range catalog {
		m := bestAliasMatch(f, headerText, minConfidence)
		if m == nil {
			continue
		}
		if best == nil || m.Confidence > best.Confidence {
			best = m
		}
	}
	return best
}

// MatchField matches a header string against one specific field, used by the
// auto-mapper to test candidate columns for a requested key. Display-name
// exactness still wins over alias scores.
func MatchField(field CanonicalField, headerText string, minConfidence float64) *FieldMatch {
	if Normalize(headerText) == "" {
		return nil
	}
	if Similarity(headerText, field.DisplayName) == 1.0 {
		return &FieldMatch{Field: field, Confidence: 1.0, Type: MatchExact}
	}
	return bestAliasMatch(field, headerText, minConfidence)
}

// bestAliasMatch returns the highest-scoring alias of a single field at or
// above minConfidence, or nil. Ties keep the earlier alias.
func bestAliasMatch(field CanonicalField, headerText string, minConfidence float64) *FieldMatch {
	var best *FieldMatch
	for _, alias := range field.Aliases {
		score := Similarity(headerText, alias)
		if score < minConfidence {
			continue
		}
		if best != nil && score <= best.Confidence {
			continue
		}
		matchType := MatchFuzzy
		if score == 1.0 {
			matchType = MatchAlias
		}
		best = &FieldMatch{
			Field:        field,
			Confidence:   score,
			Type:         matchType,
			MatchedAlias: alias,
		}
	}
	return best
}
