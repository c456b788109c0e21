package assistant

import "testing"

func TestExtractSearchTerm(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"find running shoes", "running shoes"},
		{"I'm looking for a denim jacket", "a denim jacket"},
		{"i want headphones", "headphones"},
		{"Need new boots", "new boots"},
		{"search winter coats", "winter coats"},
		{"show me everything", ""},
		{"hello", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ExtractSearchTerm(tc.in); got != tc.want {
			t.Fatalf("ExtractSearchTerm(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExtractOrderNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"track my order #AB123", "AB123"},
		{"status of #XYZ999 please", "XYZ999"},
		{"where is my order", ""},
		{"order # missing token", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ExtractOrderNumber(tc.in); got != tc.want {
			t.Fatalf("ExtractOrderNumber(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
