package core

import "testing"

func TestButtonString(t *testing.T) {
	tests := []struct {
		b        Button
		expected string
	}{
		{ButtonLeft, "Left"},
		{ButtonCenter, "Center"},
		{ButtonRight, "Right"},
		{Button(9), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.b.String(); got != tc.expected {
			t.Errorf("Button(%d).String() = %q, expected %q", tc.b, got, tc.expected)
		}
	}
}

func TestParseButton(t *testing.T) {
	for _, name := range []string{"left", "center", "right", "l", "c", "r"} {
		if _, ok := ParseButton(name); !ok {
			t.Errorf("ParseButton(%q) should succeed", name)
		}
	}
	if b, _ := ParseButton("right"); b != ButtonRight {
		t.Errorf("Expected ButtonRight, got %v", b)
	}
	if _, ok := ParseButton("up"); ok {
		t.Error("ParseButton(\"up\") should fail")
	}
}
