package core

import (
	"math"
	"regexp"
	"strings"
)

// header.go picks the most plausible header row out of a bounded scan window.
//
// Naive best-header heuristics are fooled by instructional rows ("select
// from the dropdown...") and by placeholder labels ("Column 1"). Two measures
// anchor the decision in more than label text: decoy cells are penalized and
// excluded from matching entirely, and matches on strict-format fields are
// corroborated by looking ahead at actual data values in the same column.

// Scoring terms. The detector is a running total of named terms, not a rule
// engine: the rule set is fixed and small.
const (
	// DefaultScanWindow is how many rows of the grid are considered as
	// header candidates.
	DefaultScanWindow = 5

	// lookAheadRows bounds the forward search for a validating data value
	// below a strong-field header cell.
	lookAheadRows = 5

	// decoyPenalty is charged per cell matching a generic/decoy pattern.
	decoyPenalty = 2.0

	// confidentMatchFloor and confidentMatchBonus reward near-exact header
	// matches, which indicate genuine headers rather than paraphrases.
	confidentMatchFloor = 0.9
	confidentMatchBonus = 0.5

	// validatedStrongBonus is granted per strong field whose look-ahead
	// found a value satisfying the field's validator.
	validatedStrongBonus = 1.0

	// unvalidatedStrongPenalty is charged per strong field the row claims
	// but whose look-ahead found nothing.
	unvalidatedStrongPenalty = 0.75

	// noValidatedStrongPenalty is charged once when a row claims at least
	// one strong field and validates none of them.
	noValidatedStrongPenalty = 0.5

	// coverageBonusPerField rewards rows matching two or more distinct
	// fields, preferring broad coverage over one lucky alias hit.
	coverageBonusPerField = 0.25
)

// genericHeaderPatterns match decoy cells: placeholder column labels,
// boilerplate instruction fragments, and generic sheet titles. Patterns run
// against normalized text. A decoy cell is excluded from field matching, so
// the decoy penalty always takes precedence over any alias it resembles.
var genericHeaderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^column \d+$`),
	regexp.MustCompile(`^field \d+$`),
	regexp.MustCompile(`^(unnamed|untitled|blank|tbd|n a)$`),
	regexp.MustCompile(`^(sheet|table|export|data|report)( \d+)?$`),
	regexp.MustCompile(`^(asset|device|inventory|equipment) (list|inventory|register|sheet)$`),
	regexp.MustCompile(`\b(select|choose|pick) (from|one|an option)\b`),
	regexp.MustCompile(`\b(please|do not|don t) (fill|enter|edit|modify|delete)\b`),
	regexp.MustCompile(`\binstructions?\b`),
	regexp.MustCompile(`^(enter|fill in|type) `),
	regexp.MustCompile(`\bdropdown\b`),
}

// DetectOptions tunes header detection. Zero values select the defaults, so
// DetectHeaderRow(grid, DetectOptions{}) is the common call.
type DetectOptions struct {
	// ScanWindow is the number of leading rows considered (default 5).
	ScanWindow int

	// MinConfidence is the permissive matching floor used while scanning
	// (default DefaultScanConfidence). It is deliberately looser than the
	// auto-mapping floor to tolerate header paraphrases.
	MinConfidence float64
}

// DetectHeaderRow returns the index of the row most likely to contain column
// labels. A best-effort row is always returned: if nothing in the window
// scores, the result is row 0. Deterministic for an unchanged grid; exact
// ties keep the earliest row.
func DetectHeaderRow(grid Grid, opts DetectOptions) int {
	window := opts.ScanWindow
	if window <= 0 {
		window = DefaultScanWindow
	}
	minConfidence := opts.MinConfidence
	if minConfidence <= 0 {
		minConfidence = DefaultScanConfidence
	}

	limit := min(window, len(grid))
	bestRow := 0
	bestScore := math.Inf(-1)
	for row := 0; row < limit; row++ {
		score := scoreHeaderRow(grid, row, minConfidence)
		if score > bestScore {
			bestScore = score
			bestRow = row
		}
	}
	return bestRow
}

// scoreHeaderRow computes the normalized header score for one row.
func scoreHeaderRow(grid Grid, row int, minConfidence float64) float64 {
	width := 0
	matchScore := 0.0
	penalty := 0.0
	matchedFields := make(map[string]bool)
	strongClaimed := 0
	strongValidated := 0

	for col, cell := range grid[row] {
		text := strings.TrimSpace(cell)
		if text == "" {
			continue
		}
		width++

		if isGenericHeader(text) {
			penalty += decoyPenalty
			continue
		}

		m := FindBestMatch(text, minConfidence)
		if m == nil {
			continue
		}

		matchScore += m.Confidence
		if m.Confidence >= confidentMatchFloor {
			matchScore += confidentMatchBonus
		}
		matchedFields[m.Field.Key] = true

		if IsStrongField(m.Field.Key) {
			strongClaimed++
			if lookAheadValidates(grid, row, col, m.Field.Key) {
				strongValidated++
			} else {
				penalty += unvalidatedStrongPenalty
			}
		}
	}

	if width == 0 {
		return 0.0
	}

	bonus := 0.0
	if len(matchedFields) >= 2 {
		bonus += float64(len(matchedFields)) * coverageBonusPerField
	}
	bonus += float64(strongValidated) * validatedStrongBonus
	if strongClaimed > 0 && strongValidated == 0 {
		penalty += noValidatedStrongPenalty
	}

	// Normalize by populated width so wide and narrow sheets are comparable.
	return (matchScore - penalty + bonus) / float64(width)
}

// lookAheadValidates searches up to lookAheadRows below the candidate header
// for a same-column value satisfying the field's strict validator. Stops at
// the first hit.
func lookAheadValidates(grid Grid, headerRow, col int, fieldKey string) bool {
	end := min(headerRow+lookAheadRows, len(grid)-1)
	for row := headerRow + 1; row <= end; row++ {
		if col >= len(grid[row]) {
			continue
		}
		value := strings.TrimSpace(grid[row][col])
		if value == "" {
			continue
		}
		if ValidateValue(fieldKey, value) {
			return true
		}
	}
	return false
}

// isGenericHeader reports whether a cell matches a decoy pattern.
func isGenericHeader(text string) bool {
	normalized := Normalize(text)
	if normalized == "" {
		return false
	}
	for _, re := range genericHeaderPatterns {
		if re.MatchString(normalized) {
			return true
		}
	}
	return false
}
