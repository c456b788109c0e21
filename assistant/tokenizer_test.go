package assistant

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Hello There", []string{"hello", "there"}},
		{"  find   Running Shoes ", []string{"find", "running", "shoes"}},
		{"ONE", []string{"one"}},
	}
	for _, tc := range cases {
		got := Tokenize(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("Tokenize(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Fatalf("expected no tokens, got %v", got)
	}
	if got := Tokenize("   \t\n "); len(got) != 0 {
		t.Fatalf("expected no tokens for whitespace, got %v", got)
	}
}
