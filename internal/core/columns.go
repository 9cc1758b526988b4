package core

import "strings"

// columns.go converts between zero-based column indices and standard
// spreadsheet column letters (A..Z, AA..AZ, ...). Persisted mappings store
// letters, not indices, so both directions must agree exactly.

// ColumnLetter returns the spreadsheet letter for a zero-based column index:
// 0 -> "A", 25 -> "Z", 26 -> "AA". Negative indices return "".
func ColumnLetter(index int) string {
	if index < 0 {
		return ""
	}
	var letters []byte
	for index >= 0 {
		letters = append([]byte{byte('A' + index%26)}, letters...)
		index = index/26 - 1
	}
	return string(letters)
}

// ColumnIndex is the inverse of ColumnLetter. Case-insensitive; returns -1
// for empty or non-letter input.
func ColumnIndex(letter string) int {
	letter = strings.ToUpper(strings.TrimSpace(letter))
	if letter == "" {
		return -1
	}
	n := 0
	for _, r := range letter {
		if r < 'A' || r > 'Z' {
			return -1
		}
		n = n*26 + int(r-'A') + 1
	}
	return n - 1
}
