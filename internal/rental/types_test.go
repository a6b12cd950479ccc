package rental

import (
	"testing"
	"unicode/utf8"
)

func TestStatusDisplay(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"active", "Active"},
		{"RETURNED", "Returned"},
		{"  canceled ", "Canceled"},
		{"", ""},
		{"   ", ""},
		// Verbatim upstream statuses may start with a multi-byte rune.
		{"último día", "Último día"},
		{"ñoño", "Ñoño"},
	}
	for _, tc := range cases {
		got := Status(tc.in).Display()
		if got != tc.want {
			t.Fatalf("Status(%q).Display() = %q, want %q", tc.in, got, tc.want)
		}
		if !utf8.ValidString(got) {
			t.Fatalf("Status(%q).Display() = %q, invalid UTF-8", tc.in, got)
		}
	}
}

func TestCustomerFullName(t *testing.T) {
	t.Parallel()

	c := Customer{FirstName: "  Ana ", LastName: " Lopez "}
	if got := c.FullName(); got != "Ana Lopez" {
		t.Fatalf("FullName = %q, want %q", got, "Ana Lopez")
	}
	if got := (Customer{}).FullName(); got != "" {
		t.Fatalf("FullName = %q, want empty", got)
	}
}
