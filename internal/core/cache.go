package core

// cache.go provides the one concession to performance the core makes: a
// caller-owned memo of a sheet's resolved header index and column display
// names. The core never retains a cache and provides no invalidation — the
// caller must drop it whenever the source grid or requested fields change.

// SheetCache carries per-sheet resolution results between ResolveSheet calls.
// The zero value means "no cache"; Valid distinguishes a cached header row 0
// from an absent cache.
type SheetCache struct {
	Valid        bool              `json:"valid"`
	HeaderRow    int               `json:"headerRow"`
	DisplayNames map[string]string `json:"displayNames"` // column letter -> display name
}

// SheetResolution bundles the outcome of a full sheet resolution pass.
type SheetResolution struct {
	HeaderRow int               `json:"headerRow"`
	Mapping   AutoMappingResult `json:"mapping"`
	Cache     SheetCache        `json:"cache"`
}

// ResolveSheet runs header detection and auto-mapping in one pass.
//
// When cache.Valid is set and the cached header row still lies inside the
// grid, detection is skipped and the cached index reused. The returned
// resolution always carries a fresh cache for the caller to keep or discard.
// Degenerate input (empty grid, empty key list) yields the documented
// defaults: header row 0 and empty mapping sets.
func ResolveSheet(grid Grid, requested []string, cache SheetCache) SheetResolution {
	headerRow := 0
	if cache.Valid && cache.HeaderRow >= 0 && cache.HeaderRow < len(grid) {
		headerRow = cache.HeaderRow
	} else {
		headerRow = DetectHeaderRow(grid, DetectOptions{})
	}

	var header []string
	if headerRow < len(grid) {
		header = grid[headerRow]
	}
	mapping := AutoMapFields(requested, header, 0, DefaultMapConfidence)

	names := make(map[string]string, len(mapping.Mappings))
	for _, m := range mapping.Mappings {
		if f, ok := FieldByKey(m.FieldKey); ok {
			names[m.ColumnLetter] = f.DisplayName
		}
	}

	return SheetResolution{
		HeaderRow: headerRow,
		Mapping:   mapping,
		Cache: SheetCache{
			Valid:        true,
			HeaderRow:    headerRow,
			DisplayNames: names,
		},
	}
}
