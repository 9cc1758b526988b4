package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("command %v failed: %v\noutput: %s", args, err, out.String())
	}
	return out.String()
}

func TestDetectCommandJSON(t *testing.T) {
	path := writeTempCSV(t, "Column 1,Column 2\nSerial Number,Asset Tag\nSN-00912,A048213\n")

	out := runCommand(t, "detect", path, "--json")

	var resp struct {
		HeaderRow int `json:"headerRow"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("unmarshal: %v\noutput: %s", err, out)
	}
	if resp.HeaderRow != 1 {
		t.Errorf("headerRow = %d, want 1", resp.HeaderRow)
	}
}

func TestMapCommandJSON(t *testing.T) {
	path := writeTempCSV(t, "Model,Serial Number\nT490,SN-00912\n")

	out := runCommand(t, "map", path, "--fields", "modelId,serialNumber", "--json")

	var resp struct {
		HeaderRow   int      `json:"headerRow"`
		SampleNames []string `json:"sampleNames"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("unmarshal: %v\noutput: %s", err, out)
	}
	if resp.HeaderRow != 0 {
		t.Errorf("headerRow = %d, want 0", resp.HeaderRow)
	}
	if len(resp.SampleNames) != 1 || resp.SampleNames[0] != "T490 - SN-00912" {
		t.Errorf("sampleNames = %v", resp.SampleNames)
	}
}

func TestMapCommandTableOutput(t *testing.T) {
	path := writeTempCSV(t, "Name,Serial Number,Serial Number\nweb-01,SN-1000A,SN-1000B\n")

	out := runCommand(t, "map", path, "--fields", "name,serialNumber")

	if !strings.Contains(out, "ambiguous: serialNumber") {
		t.Errorf("expected ambiguity note in output:\n%s", out)
	}
}

func TestFieldsCommand(t *testing.T) {
	out := runCommand(t, "fields")

	for _, want := range []string{"serialNumber", "Asset Tag", "identification"} {
		if !strings.Contains(out, want) {
			t.Errorf("fields output missing %q:\n%s", want, out)
		}
	}
}
