package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	headers := []string{"Film", "Genre", "Rentals"}
	rows := [][]string{
		{"The Matrix", "Sci-Fi", "12"},
		{"Amelie, the movie", "Comedy", "9"},
	}

	if err := writeCSV(path, headers, rows); err != nil {
		t.Fatalf("writeCSV returned error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 3 {
		t.Fatalf("csv has %d lines, want 3", len(lines))
	}
	if lines[0] != "Film,Genre,Rentals" {
		t.Fatalf("header = %q, want Film,Genre,Rentals", lines[0])
	}
	// Commas inside a cell must be quoted
	if !strings.Contains(lines[2], `"Amelie, the movie"`) {
		t.Fatalf("row = %q, want quoted title", lines[2])
	}
}

func TestExportPath_NameAndExtension(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := exportPath("most-rented")
	base := filepath.Base(path)
	if !strings.HasPrefix(base, "rentdesk-most-rented-") {
		t.Fatalf("path = %q, want rentdesk-most-rented- prefix", base)
	}
	if !strings.HasSuffix(base, ".csv") {
		t.Fatalf("path = %q, want .csv suffix", base)
	}
	if filepath.Dir(path) != home {
		t.Fatalf("dir = %q, want %q", filepath.Dir(path), home)
	}
}
