package core

import "strings"

// automap.go assigns requested canonical field keys to header-row columns.
//
// Assignment is conservative: a key with several qualifying columns is
// reported as ambiguous rather than tie-broken, because a silently chosen
// column may not be the one a user would have picked. Ambiguity is a
// caller-visible outcome.

// AutoMapFields resolves each requested field key, in list order, against the
// cells of a single header row.
//
// For each key, header cells are scanned left to right from startColumn,
// skipping columns already consumed by an earlier key's unique assignment.
// Zero qualifying columns sends the key to UnmatchedFields; exactly one
// commits a mapping and consumes the column for the remainder of the call;
// two or more land in AmbiguousMatches with every candidate listed.
//
// Keys not present in the registry go straight to UnmatchedFields.
// minConfidence <= 0 selects DefaultMapConfidence. The result always
// partitions the requested list.
func AutoMapFields(requested []string, headerRow []string, startColumn int, minConfidence float64) AutoMappingResult {
	if minConfidence <= 0 {
		minConfidence = DefaultMapConfidence
	}
	if startColumn < 0 {
		startColumn = 0
	}

	result := AutoMappingResult{
		Mappings:         []FieldMapping{},
		UnmatchedFields:  []string{},
		AmbiguousMatches: map[string][]ColumnCandidate{},
	}
	usedColumns := make(map[int]bool)

	for _, key := range requested {
		field, known := FieldByKey(key)
		if !known {
			result.UnmatchedFields = append(result.UnmatchedFields, key)
			continue
		}

		var candidates []ColumnCandidate
		var matches []*FieldMatch
		for col := startColumn; col < len(headerRow); col++ {
			if usedColumns[col] {
				continue
			}
			text := strings.TrimSpace(headerRow[col])
			if text == "" {
				continue
			}
			m := MatchField(field, text, minConfidence)
			if m == nil {
				continue
			}
			candidates = append(candidates, ColumnCandidate{
				Column:       col,
				ColumnLetter: ColumnLetter(col),
				Header:       text,
				Confidence:   m.Confidence,
			})
			matches = append(matches, m)
		}

		switch len(candidates) {
		case 0:
			result.UnmatchedFields = append(result.UnmatchedFields, key)
		case 1:
			c := candidates[0]
			usedColumns[c.Column] = true
			result.Mappings = append(result.Mappings, FieldMapping{
				FieldKey:     key,
				Column:       c.Column,
				ColumnLetter: c.ColumnLetter,
				Header:       c.Header,
				Confidence:   c.Confidence,
				MatchType:    matches[0].Type,
			})
		default:
			result.AmbiguousMatches[key] = candidates
		}
	}

	return result
}
