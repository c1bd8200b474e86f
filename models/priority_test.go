package models

import "testing"

func TestNormalizePriority(t *testing.T) {
	cases := []struct {
		in   Priority
		want Priority
	}{
		{PriorityHigh, PriorityHigh},
		{PriorityMed, PriorityMed},
		{PriorityLow, PriorityLow},
		{"", PriorityMed},
		{"urgent", PriorityMed},
		{"HIGH", PriorityMed},
		{"medium", PriorityMed},
	}
	for _, c := range cases {
		if got := NormalizePriority(c.in); got != c.want {
			t.Errorf("NormalizePriority(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
