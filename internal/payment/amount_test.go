package payment

import (
	"errors"
	"testing"
)

func TestFenToYuan(t *testing.T) {
	cases := []struct {
		fen      int64
		expected string
	}{
		{0, "0.00"},
		{1, "0.01"},
		{10, "0.10"},
		{100, "1.00"},
		{12345, "123.45"},
		{10000000, "100000.00"},
	}
	for _, tc := range cases {
		if got := FenToYuan(tc.fen); got != tc.expected {
			t.Fatalf("fen=%d expected %s, got %s", tc.fen, tc.expected, got)
		}
	}
}

func TestYuanToFen(t *testing.T) {
	cases := []struct {
		yuan     string
		expected int64
	}{
		{"0", 0},
		{"0.00", 0},
		{"0.01", 1},
		{"1", 100},
		{"1.5", 150},
		{"123.45", 12345},
		{" 2.00 ", 200},
	}
	for _, tc := range cases {
		got, err := YuanToFen(tc.yuan)
		if err != nil {
			t.Fatalf("yuan=%q unexpected error: %v", tc.yuan, err)
		}
		if got != tc.expected {
			t.Fatalf("yuan=%q expected %d, got %d", tc.yuan, tc.expected, got)
		}
	}
}

func TestYuanToFenRejectsInvalidAmount(t *testing.T) {
	for _, yuan := range []string{"", "abc", "-0.01", "0.001", "1.005"} {
		if _, err := YuanToFen(yuan); !errors.Is(err, ErrResponseInvalid) {
			t.Fatalf("yuan=%q expected ErrResponseInvalid, got: %v", yuan, err)
		}
	}
}

func TestFenYuanRoundTrip(t *testing.T) {
	roundTrip := func(fen int64) {
		got, err := YuanToFen(FenToYuan(fen))
		if err != nil {
			t.Fatalf("fen=%d round trip failed: %v", fen, err)
		}
		if got != fen {
			t.Fatalf("fen=%d round trip mismatch: %d", fen, got)
		}
	}
	for fen := int64(0); fen <= 10000000; fen += 97 {
		roundTrip(fen)
	}
	roundTrip(10000000)
}
