package pagination

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   Params
		want Params
	}{
		{"defaults", Params{}, Params{Page: 1, Limit: DefaultLimit}},
		{"negative page", Params{Page: -3, Limit: 10}, Params{Page: 1, Limit: 10}},
		{"limit capped", Params{Page: 2, Limit: 500}, Params{Page: 2, Limit: MaxLimit}},
		{"passthrough", Params{Page: 4, Limit: 25}, Params{Page: 4, Limit: 25}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	if got := (Params{Page: 1, Limit: 12}).Offset(); got != 0 {
		t.Fatalf("expected offset 0, got %d", got)
	}
	if got := (Params{Page: 3, Limit: 12}).Offset(); got != 24 {
		t.Fatalf("expected offset 24, got %d", got)
	}
	if got := (Params{Page: -1, Limit: 12}).Offset(); got != 0 {
		t.Fatalf("expected clamped offset 0, got %d", got)
	}
}

func TestPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 12, 0},
		{-5, 12, 0},
		{1, 12, 1},
		{12, 12, 1},
		{13, 12, 2},
		{100, 10, 10},
		{101, 10, 11},
		{4, 3, 2},
	}

	for _, tc := range cases {
		if got := Pages(tc.total, tc.limit); got != tc.want {
			t.Fatalf("Pages(%d, %d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}
