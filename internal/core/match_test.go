package core

import "testing"

func TestFindBestMatchExactDisplayName(t *testing.T) {
	tests := []struct {
		header  string
		wantKey string
	}{
		{"Serial Number", FieldSerialNumber},
		{"serial number", FieldSerialNumber},
		{"Asset Tag", FieldAssetTag},
		{"ASSET-TAG", FieldAssetTag},
		{"Model", FieldModelID},
		{"Manufacturer", FieldManufacturer},
	}

	for _, tt := range tests {
		m := FindBestMatch(tt.header, DefaultMapConfidence)
		if m == nil {
			t.Fatalf("FindBestMatch(%q) = nil, want %s", tt.header, tt.wantKey)
		}
		if m.Field.Key != tt.wantKey {
			t.Errorf("FindBestMatch(%q) matched %s, want %s", tt.header, m.Field.Key, tt.wantKey)
		}
		if m.Type != MatchExact {
			t.Errorf("FindBestMatch(%q) type = %s, want exact", tt.header, m.Type)
		}
		if m.Confidence != 1.0 {
			t.Errorf("FindBestMatch(%q) confidence = %v, want 1.0", tt.header, m.Confidence)
		}
	}
}

func TestFindBestMatchAlias(t *testing.T) {
	m := FindBestMatch("Service Tag", DefaultMapConfidence)
	if m == nil {
		t.Fatal("expected a match for Service Tag")
	}
	if m.Field.Key != FieldSerialNumber {
		t.Errorf("matched %s, want serialNumber", m.Field.Key)
	}
	if m.Type != MatchAlias {
		t.Errorf("type = %s, want alias", m.Type)
	}
	if m.Confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0 for exact alias", m.Confidence)
	}
	if m.MatchedAlias != "service tag" {
		t.Errorf("matched alias = %q, want %q", m.MatchedAlias, "service tag")
	}
}

func TestFindBestMatchFuzzy(t *testing.T) {
	m := FindBestMatch("Serial Nr", DefaultScanConfidence)
	if m == nil {
		t.Fatal("expected a fuzzy match for Serial Nr")
	}
	if m.Field.Key != FieldSerialNumber {
		t.Errorf("matched %s, want serialNumber", m.Field.Key)
	}
	if m.Type != MatchFuzzy {
		t.Errorf("type = %s, want fuzzy", m.Type)
	}
	if m.Confidence >= 1.0 || m.Confidence < DefaultScanConfidence {
		t.Errorf("confidence = %v, want in [%v, 1.0)", m.Confidence, DefaultScanConfidence)
	}
}

func TestFindBestMatchThreshold(t *testing.T) {
	// "Serial Nr" clears the permissive floor but not an impossibly strict one.
	if FindBestMatch("Serial Nr", 0.999) != nil {
		t.Error("expected no match above a 0.999 floor")
	}
	if FindBestMatch("Serial Nr", DefaultScanConfidence) == nil {
		t.Error("expected a match at the scan floor")
	}
}

func TestFindBestMatchNoMatch(t *testing.T) {
	for _, header := range []string{"", "   ", "!!!", "zzzzqqqq"} {
		if m := FindBestMatch(header, DefaultScanConfidence); m != nil {
			t.Errorf("FindBestMatch(%q) = %v, want nil", header, m)
		}
	}
}

func TestFindBestMatchExactBeatsAlias(t *testing.T) {
	// "Tag" is an alias of assetTag; no display name equals it, so the alias
	// tier resolves it. "Asset Tag" is a display name and must short-circuit
	// as exact even though it is also listed as an alias.
	m := FindBestMatch("Tag", DefaultMapConfidence)
	if m == nil || m.Field.Key != FieldAssetTag || m.Type != MatchAlias {
		t.Fatalf("FindBestMatch(Tag) = %+v, want assetTag alias match", m)
	}

	m = FindBestMatch("Asset Tag", DefaultMapConfidence)
	if m == nil || m.Type != MatchExact {
		t.Fatalf("FindBestMatch(Asset Tag) = %+v, want exact match", m)
	}
}

func TestMatchField(t *testing.T) {
	serial, _ := FieldByKey(FieldSerialNumber)

	if m := MatchField(serial, "Serial Number", DefaultMapConfidence); m == nil || m.Type != MatchExact {
		t.Errorf("MatchField(serial, Serial Number) = %+v, want exact", m)
	}
	if m := MatchField(serial, "SN", DefaultMapConfidence); m == nil || m.Type != MatchAlias {
		t.Errorf("MatchField(serial, SN) = %+v, want alias", m)
	}
	// A header that belongs to a different field must not match.
	if m := MatchField(serial, "Asset Tag", DefaultMapConfidence); m != nil {
		t.Errorf("MatchField(serial, Asset Tag) = %+v, want nil", m)
	}
	if m := MatchField(serial, "", DefaultMapConfidence); m != nil {
		t.Errorf("MatchField(serial, empty) = %+v, want nil", m)
	}
}
