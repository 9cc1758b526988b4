package core

import (
	"strings"
	"unicode"
)

// similarity.go implements header-text normalization and the Jaro-Winkler
// similarity used for fuzzy alias matching. Jaro-Winkler suits short header
// labels: it rewards shared prefixes ("serial no" vs "serial number") while
// staying conservative about transposed interiors.

// Normalize lower-cases text, replaces punctuation with spaces, and collapses
// runs of whitespace to single spaces. Total over all input; "" stays "".
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Similarity returns a score in [0,1] between two strings after
// normalization: 1.0 on normalized equality (including both empty),
// 0.0 when exactly one side normalizes to empty, Jaro-Winkler otherwise.
// Symmetric in its arguments.
func Similarity(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)
	if na == nb {
		return 1.0
	}
	if na == "" || nb == "" {
		return 0.0
	}
	return jaroWinkler(na, nb)
}

// jaroWinkler computes the standard Jaro similarity with the Winkler common
// prefix adjustment (prefix capped at 4, scale 0.1). Inputs are non-equal,
// non-empty normalized strings, so the result is always below 1.0.
func jaroWinkler(a, b string) float64 {
	ar, br := []rune(a), []rune(b)

	window := max(len(ar), len(br))/2 - 1
	if window < 0 {
		window = 0
	}

	aMatched := make([]bool, len(ar))
	bMatched := make([]bool, len(br))
	matches := 0
	for i := range ar {
		lo := max(i-window, 0)
		hi := min(i+window, len(br)-1)
		for j := lo; j <= hi; j++ {
			if bMatched[j] || ar[i] != br[j] {
				continue
			}
			aMatched[i] = true
			bMatched[j] = true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0.0
	}

	// Count transpositions among matched characters in left-to-right order.
	transpositions := 0
	j := 0
	for i := range ar {
		if !aMatched[i] {
			continue
		}
		for !bMatched[j] {
			j++
		}
		if ar[i] != br[j] {
			transpositions++
		}
		j++
	}

	m := float64(matches)
	jaro := (m/float64(len(ar)) + m/float64(len(br)) + (m-float64(transpositions)/2)/m) / 3.0

	prefix := 0
	for i := 0; i < len(ar) && i < len(br) && i < 4; i++ {
		if ar[i] != br[i] {
			break
		}
		prefix++
	}

	return jaro + 0.1*float64(prefix)*(1.0-jaro)
}
