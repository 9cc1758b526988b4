package core

import "testing"

func TestParseGrid(t *testing.T) {
	data := []byte("Name,Serial Number,Asset Tag\nweb-01,SN-00912,A012345\nweb-02,SN-00913\n")

	grid, err := ParseGrid(data)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	if len(grid) != 3 {
		t.Fatalf("got %d rows, want 3", len(grid))
	}
	// Ragged rows are preserved, not padded.
	if len(grid[2]) != 2 {
		t.Errorf("row 2 has %d cells, want 2", len(grid[2]))
	}
	if grid[1][2] != "A012345" {
		t.Errorf("cell = %q, want A012345", grid[1][2])
	}
}

func TestParseGridStripsBOM(t *testing.T) {
	data := []byte("\xEF\xBB\xBFName,Location\n")

	grid, err := ParseGrid(data)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	if grid[0][0] != "Name" {
		t.Errorf("first cell = %q, want Name (BOM not stripped)", grid[0][0])
	}
}

func TestParseGridInvalidUTF8(t *testing.T) {
	data := []byte{'a', 0xFF, 'b', ',', 'c', '\n'}

	grid, err := ParseGrid(data)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	if len(grid) != 1 || len(grid[0]) != 2 {
		t.Fatalf("unexpected shape: %v", grid)
	}
	if grid[0][0] != "a�b" {
		t.Errorf("cell = %q, want replacement rune inserted", grid[0][0])
	}
}

func TestCleanCell(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  plain  ", "plain"},
		{`="0012345"`, "0012345"},
		{"=SUM(A1)", "SUM(A1)"},
		{`"quoted"`, "quoted"},
		{"'quoted'", "quoted"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CleanCell(tt.in); got != tt.want {
			t.Errorf("CleanCell(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
