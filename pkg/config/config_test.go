package config

import "testing"

func TestDefault_Validates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
}

func TestValidate_RejectsNegativeLimits(t *testing.T) {
	cases := []struct {
		name string
		cfg  *Config
		want error
	}{
		{"nodes", &Config{MaxNodes: -1}, ErrInvalidMaxNodes},
		{"edges", &Config{MaxEdges: -1}, ErrInvalidMaxEdges},
		{"plan size", &Config{MaxPlanSize: -1}, ErrInvalidMaxPlanSize},
		{"run duration", &Config{MaxRunDuration: -1}, ErrInvalidRunDuration},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.cfg.Validate(); err != tc.want {
				t.Fatalf("Validate() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestClone_IsIndependent(t *testing.T) {
	c := Default()
	clone := c.Clone()
	clone.MaxNodes = 1

	if c.MaxNodes == clone.MaxNodes {
		t.Fatalf("Clone() shares state with the original")
	}
}
