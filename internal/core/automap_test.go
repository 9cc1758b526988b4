package core

import "testing"

// checkPartition verifies the structural invariant: every requested key shows
// up exactly once across mappings, unmatched, and ambiguous, and no column is
// claimed twice.
func checkPartition(t *testing.T, requested []string, result AutoMappingResult) {
	t.Helper()

	seen := make(map[string]int)
	for _, m := range result.Mappings {
		seen[m.FieldKey]++
	}
	for _, key := range result.UnmatchedFields {
		seen[key]++
	}
	for key := range result.AmbiguousMatches {
		seen[key]++
	}

	if len(seen) != len(requested) {
		t.Errorf("result covers %d keys, requested %d", len(seen), len(requested))
	}
	for _, key := range requested {
		if seen[key] != 1 {
			t.Errorf("key %q appears %d times in result, want exactly 1", key, seen[key])
		}
	}

	columns := make(map[int]string)
	for _, m := range result.Mappings {
		if prev, taken := columns[m.Column]; taken {
			t.Errorf("column %d assigned to both %q and %q", m.Column, prev, m.FieldKey)
		}
		columns[m.Column] = m.FieldKey
	}
}

func TestAutoMapFieldsBasic(t *testing.T) {
	header := []string{"Name", "Serial Number", "Asset Tag", "Location"}
	requested := []string{FieldName, FieldSerialNumber, FieldAssetTag}

	result := AutoMapFields(requested, header, 0, 0)
	checkPartition(t, requested, result)

	if len(result.Mappings) != 3 {
		t.Fatalf("got %d mappings, want 3", len(result.Mappings))
	}
	want := map[string]int{FieldName: 0, FieldSerialNumber: 1, FieldAssetTag: 2}
	for _, m := range result.Mappings {
		if want[m.FieldKey] != m.Column {
			t.Errorf("%s mapped to column %d, want %d", m.FieldKey, m.Column, want[m.FieldKey])
		}
		if m.MatchType != MatchExact {
			t.Errorf("%s match type = %s, want exact", m.FieldKey, m.MatchType)
		}
		if m.ColumnLetter != ColumnLetter(m.Column) {
			t.Errorf("%s column letter = %q, want %q", m.FieldKey, m.ColumnLetter, ColumnLetter(m.Column))
		}
	}
}

func TestAutoMapFieldsDuplicateColumnIsAmbiguous(t *testing.T) {
	header := []string{"Name", "Serial Number", "Serial Number", "Asset Tag"}
	requested := []string{FieldName, FieldSerialNumber, FieldAssetTag}

	result := AutoMapFields(requested, header, 0, 0)
	checkPartition(t, requested, result)

	candidates, ok := result.AmbiguousMatches[FieldSerialNumber]
	if !ok {
		t.Fatal("serialNumber not reported as ambiguous")
	}
	if len(candidates) != 2 {
		t.Fatalf("got %d serialNumber candidates, want 2", len(candidates))
	}
	cols := map[int]bool{candidates[0].Column: true, candidates[1].Column: true}
	if !cols[1] || !cols[2] {
		t.Errorf("ambiguous columns = %v, want columns 1 and 2", cols)
	}

	// The ambiguous field must not silently land in mappings.
	for _, m := range result.Mappings {
		if m.FieldKey == FieldSerialNumber {
			t.Error("ambiguous serialNumber was committed to mappings")
		}
	}
}

func TestAutoMapFieldsUnmatched(t *testing.T) {
	header := []string{"Name", "Location"}
	requested := []string{FieldName, FieldSerialNumber}

	result := AutoMapFields(requested, header, 0, 0)
	checkPartition(t, requested, result)

	if len(result.UnmatchedFields) != 1 || result.UnmatchedFields[0] != FieldSerialNumber {
		t.Errorf("unmatched = %v, want [serialNumber]", result.UnmatchedFields)
	}
}

func TestAutoMapFieldsUnknownKey(t *testing.T) {
	header := []string{"Name"}
	requested := []string{"flavor", FieldName}

	result := AutoMapFields(requested, header, 0, 0)
	checkPartition(t, requested, result)

	if len(result.UnmatchedFields) != 1 || result.UnmatchedFields[0] != "flavor" {
		t.Errorf("unknown key not routed to unmatched: %v", result.UnmatchedFields)
	}
}

func TestAutoMapFieldsColumnConsumedOnce(t *testing.T) {
	// "Tag" is an assetTag alias. With assetTag requested first, the single
	// column is consumed and nothing remains for a later key that might also
	// resemble it.
	header := []string{"Tag"}
	requested := []string{FieldAssetTag, FieldSerialNumber}

	result := AutoMapFields(requested, header, 0, 0)
	checkPartition(t, requested, result)

	if len(result.Mappings) != 1 || result.Mappings[0].FieldKey != FieldAssetTag {
		t.Fatalf("mappings = %+v, want single assetTag mapping", result.Mappings)
	}
	if len(result.UnmatchedFields) != 1 || result.UnmatchedFields[0] != FieldSerialNumber {
		t.Errorf("unmatched = %v, want [serialNumber]", result.UnmatchedFields)
	}
}

func TestAutoMapFieldsStartColumn(t *testing.T) {
	header := []string{"Serial Number", "Serial Number"}

	result := AutoMapFields([]string{FieldSerialNumber}, header, 1, 0)
	if len(result.Mappings) != 1 {
		t.Fatalf("mappings = %+v, want one mapping", result.Mappings)
	}
	if result.Mappings[0].Column != 1 {
		t.Errorf("mapped column = %d, want 1 (offset skips column 0)", result.Mappings[0].Column)
	}
}

func TestAutoMapFieldsDegenerateInput(t *testing.T) {
	if r := AutoMapFields(nil, []string{"Name"}, 0, 0); len(r.Mappings)+len(r.UnmatchedFields)+len(r.AmbiguousMatches) != 0 {
		t.Errorf("empty request produced non-empty result: %+v", r)
	}

	requested := []string{FieldName}
	r := AutoMapFields(requested, nil, 0, 0)
	checkPartition(t, requested, r)
	if len(r.UnmatchedFields) != 1 {
		t.Errorf("empty header row: unmatched = %v, want [name]", r.UnmatchedFields)
	}
}

func TestAutoMapFieldsStricterThreshold(t *testing.T) {
	// "Serial Nr" is a paraphrase: good enough for header scanning, not for
	// committing a mapping at a near-exact floor.
	header := []string{"Serial Nr"}

	loose := AutoMapFields([]string{FieldSerialNumber}, header, 0, DefaultScanConfidence)
	if len(loose.Mappings) != 1 {
		t.Errorf("permissive threshold: mappings = %+v, want 1", loose.Mappings)
	}

	strict := AutoMapFields([]string{FieldSerialNumber}, header, 0, 0.99)
	if len(strict.Mappings) != 0 || len(strict.UnmatchedFields) != 1 {
		t.Errorf("strict threshold: %+v, want unmatched", strict)
	}
}
