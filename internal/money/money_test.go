package money

import "testing"

func TestTaxEightPercent(t *testing.T) {
	cases := []struct {
		subtotal int64
		want     int64
	}{
		{5600000, 448000},
		{2800000, 224000},
		{0, 0},
		// 8% of 13 is 1.04, rounds down to the whole đồng.
		{13, 1},
		// 8% of 25 is exactly 2.
		{25, 2},
		// 8% of 31 is 2.48 -> 2; of 32 is 2.56 -> 3.
		{31, 2},
		{32, 3},
	}
	for _, tc := range cases {
		if got := Tax(tc.subtotal, 8); got != tc.want {
			t.Fatalf("Tax(%d, 8) = %d, want %d", tc.subtotal, got, tc.want)
		}
	}
}

func TestTaxHalfUp(t *testing.T) {
	// 10% of 15 is exactly 1.5 and must round up.
	if got := Tax(15, 10); got != 2 {
		t.Fatalf("Tax(15, 10) = %d, want 2", got)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "0đ"},
		{999, "999đ"},
		{1000, "1.000đ"},
		{2800000, "2.800.000đ"},
		{45000000, "45.000.000đ"},
		{6048000, "6.048.000đ"},
	}
	for _, tc := range cases {
		if got := Format(tc.amount); got != tc.want {
			t.Fatalf("Format(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
