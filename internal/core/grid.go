package core

import (
	"bytes"
	"encoding/csv"
	"strings"
	"unicode/utf8"
)

// grid.go adapts raw CSV bytes into a Grid. Spreadsheet exports arrive with
// BOMs, broken encodings, Excel formula-quoting, and ragged rows, so parsing
// is deliberately lenient.

// ParseGrid parses CSV data into a Grid. Rows may have differing lengths;
// invalid UTF-8 is replaced rather than rejected.
func ParseGrid(data []byte) (Grid, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	data = sanitizeUTF8(data)

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	return Grid(records), nil
}

// CleanCell strips the wrapping Excel and export tools add around cell
// values: surrounding whitespace, leading '=' formula quoting, and stray
// quote characters.
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if len(s) >= 3 && strings.HasPrefix(s, `="`) && strings.HasSuffix(s, `"`) {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	s = strings.Trim(s, `"'`)

	return strings.TrimSpace(s)
}

// sanitizeUTF8 replaces invalid byte sequences with the replacement rune.
func sanitizeUTF8(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}

	var buf bytes.Buffer
	buf.Grow(len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune('�')
			data = data[1:]
		} else {
			buf.WriteRune(r)
			data = data[size:]
		}
	}
	return buf.Bytes()
}
