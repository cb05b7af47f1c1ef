package slug

import (
	"regexp"
	"testing"
)

var safe = regexp.MustCompile(`^[a-z0-9-]+$`)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "a red bicycle", want: "a-red-bicycle"},
		{name: "mixed case", in: "A Red BICYCLE", want: "a-red-bicycle"},
		{name: "punctuation runs", in: "neon -- lighting!!", want: "neon-lighting"},
		{name: "leading and trailing junk", in: "  ...golden hour... ", want: "golden-hour"},
		{name: "no alphanumerics", in: "!!!", want: "image"},
		{name: "empty", in: "", want: "image"},
		{name: "unicode collapsed", in: "café déjà vu", want: "caf-d-j-vu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Make(tt.in); got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMake_Idempotent(t *testing.T) {
	inputs := []string{"a red bicycle", "Neon -- Lighting!!", "!!!", "already-a-slug"}
	for _, in := range inputs {
		once := Make(in)
		if twice := Make(once); twice != once {
			t.Errorf("Make not idempotent for %q: %q != %q", in, twice, once)
		}
		if !safe.MatchString(once) {
			t.Errorf("Make(%q) = %q contains unsafe characters", in, once)
		}
		if once[0] == '-' || once[len(once)-1] == '-' {
			t.Errorf("Make(%q) = %q has leading or trailing dash", in, once)
		}
	}
}
