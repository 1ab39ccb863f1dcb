package util_test

import (
	"testing"

	"github.com/blackwell-systems/hubctl/internal/util"
)

func TestHumanBytes(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KB"},
		{10485760, "10.0 MB"},
	}
	for _, c := range cases {
		if got := util.HumanBytes(c.in); got != c.want {
			t.Errorf("HumanBytes(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := util.Truncate("short", 24); got != "short" {
		t.Errorf("Truncate = %q", got)
	}
	if got := util.Truncate("abcdef", 4); got != "abc…" {
		t.Errorf("Truncate = %q", got)
	}
}

func TestHumanDate(t *testing.T) {
	if got := util.HumanDate("2026-03-01T12:30:00Z"); got != "2026-03-01" {
		t.Errorf("HumanDate = %q", got)
	}
	if got := util.HumanDate("yesterday"); got != "yesterday" {
		t.Errorf("unparseable input should pass through: %q", got)
	}
	if got := util.HumanDate(""); got != "" {
		t.Errorf("empty input: %q", got)
	}
}
