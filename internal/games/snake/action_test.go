package snake

import "testing"

func TestActionConstructors(t *testing.T) {
	tests := []struct {
		name     string
		a        Action
		kind     ActionKind
		str      string
		expected bool // IsNone
	}{
		{"zero value", Action{}, ActionNone, "none", true},
		{"move", Move(DirUp), ActionMove, "move up", false},
		{"quit", Quit(), ActionQuit, "quit", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.a.Kind != tc.kind {
				t.Errorf("Kind = %v, expected %v", tc.a.Kind, tc.kind)
			}
			if tc.a.IsNone() != tc.expected {
				t.Errorf("IsNone() = %v, expected %v", tc.a.IsNone(), tc.expected)
			}
			if tc.a.String() != tc.str {
				t.Errorf("String() = %q, expected %q", tc.a.String(), tc.str)
			}
		})
	}
}
