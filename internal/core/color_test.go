package core

import "testing"

func TestColorString(t *testing.T) {
	tests := []struct {
		c        Color
		expected string
	}{
		{ColorDefault, "default"},
		{ColorBrightGreen, "bright-green"},
		{ColorHotPink, "hot-pink"},
		{ColorGray, "gray"},
		{ColorGray + 1, "unknown"},
	}
	for _, tc := range tests {
		if got := tc.c.String(); got != tc.expected {
			t.Errorf("Color(%d).String() = %q, expected %q", tc.c, got, tc.expected)
		}
	}
}
