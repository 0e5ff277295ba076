package analysis

import (
	"slices"
	"testing"

	"resumelens/internal/catalog"
)

func TestMatchRole(t *testing.T) {
	role := catalog.Role("software_engineer")

	tests := []struct {
		name        string
		detected    []string
		wantPercent int
		wantMissing []string
	}{
		{
			name:        "nothing detected",
			detected:    nil,
			wantPercent: 0,
			wantMissing: role.Skills,
		},
		{
			name:        "full coverage",
			detected:    role.Skills,
			wantPercent: 100,
			wantMissing: []string{},
		},
		{
			// Python and JavaScript weigh 2, REST API weighs 1, of a 13 total
			name:        "case insensitive match",
			detected:    []string{"python", "JAVASCRIPT", "Rest Api"},
			wantPercent: 38,
			wantMissing: []string{"React", "Git", "SQL", "Data Structures", "Algorithms", "Problem Solving", "OOP"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			percent, missing := MatchRole(tt.detected, role)
			if percent != tt.wantPercent {
				t.Errorf("percent = %d, want %d", percent, tt.wantPercent)
			}
			if !slices.Equal(missing, tt.wantMissing) {
				t.Errorf("missing = %v, want %v", missing, tt.wantMissing)
			}
			if percent < 0 || percent > 100 {
				t.Errorf("percent = %d, out of [0,100]", percent)
			}
		})
	}
}

func TestMatchRoleWeights(t *testing.T) {
	role := catalog.RoleProfile{
		ID:     "test",
		Title:  "Test",
		Skills: []string{"A", "B"},
		Weight: map[string]float64{"A": 3},
	}

	// A carries weight 3 of a total 4, so matching only A gives 75
	percent, missing := MatchRole([]string{"A"}, role)
	if percent != 75 {
		t.Errorf("percent = %d, want 75", percent)
	}
	if !slices.Equal(missing, []string{"B"}) {
		t.Errorf("missing = %v, want [B]", missing)
	}
}

func TestMatchRoleDegenerate(t *testing.T) {
	role := catalog.RoleProfile{ID: "empty", Title: "Empty"}

	percent, missing := MatchRole([]string{"Python"}, role)
	if percent != 0 {
		t.Errorf("percent = %d, want 0 for role with no required skills", percent)
	}
	if len(missing) != 0 {
		t.Errorf("missing = %v, want empty", missing)
	}
}
