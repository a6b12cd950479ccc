package ui

import "testing"

func TestColumnWidths_FlexSharesRemaining(t *testing.T) {
	cols := []column{
		{title: "ID", width: 5},
		{title: "Name", width: 0},
		{title: "Status", width: 8},
	}
	widths := columnWidths(cols, 40)
	if widths[0] != 5 || widths[2] != 8 {
		t.Fatalf("fixed widths = %v, want [5 _ 8]", widths)
	}
	// 40 total - 13 fixed - 2 separators = 25 for the flex column
	if widths[1] != 25 {
		t.Fatalf("flex width = %d, want 25", widths[1])
	}
}

func TestColumnWidths_FlexMinimum(t *testing.T) {
	cols := []column{
		{title: "A", width: 30},
		{title: "B", width: 0},
	}
	widths := columnWidths(cols, 20)
	if widths[1] < 4 {
		t.Fatalf("flex width = %d, want >= 4", widths[1])
	}
}

func TestClampScroll(t *testing.T) {
	cases := []struct {
		name       string
		selected   int
		offset     int
		visible    int
		total      int
		wantSel    int
		wantOffset int
	}{
		{"empty", 3, 1, 5, 0, 0, 0},
		{"negative selection", -2, 0, 5, 10, 0, 0},
		{"past end", 15, 0, 5, 10, 9, 5},
		{"scroll down", 7, 0, 5, 10, 7, 3},
		{"scroll up", 1, 4, 5, 10, 1, 1},
		{"in window", 3, 1, 5, 10, 3, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sel, off := clampScroll(tc.selected, tc.offset, tc.visible, tc.total)
			if sel != tc.wantSel || off != tc.wantOffset {
				t.Fatalf("clampScroll = (%d, %d), want (%d, %d)", sel, off, tc.wantSel, tc.wantOffset)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello world", 8); got != "hello..." {
		t.Fatalf("truncate = %q, want hello...", got)
	}
	if got := truncate("short", 8); got != "short" {
		t.Fatalf("truncate = %q, want short", got)
	}
	if got := truncate("abcdef", 2); got != "ab" {
		t.Fatalf("truncate limit<=3 = %q, want ab", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Fatalf("padRight = %q, want %q", got, "ab   ")
	}
	if got := padRight("abcdef", 3); got != "abcdef" {
		t.Fatalf("padRight = %q, want unchanged", got)
	}
}
