package analysis

import (
	"strings"
	"testing"
)

func TestCritiquePhrasing(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		wantCount     int
		wantOriginal  string
		wantCorrected string
	}{
		{
			name:          "clean text gets placeholder",
			text:          "Developed scalable microservices serving 2M users.",
			wantCount:     1,
			wantOriginal:  "No major grammar issues detected",
			wantCorrected: "Your resume language is professional. Consider adding more accomplishment-focused statements.",
		},
		{
			name:          "weak phrase flagged",
			text:          "I was responsible for the payments system.",
			wantCorrected: "Consider: Replace 'responsible for' with action verbs. Use 'Led' instead.",
		},
		{
			name:          "passive voice flagged",
			text:          "The system was created by the team.",
			wantOriginal:  "Found passive voice: 'was created'",
			wantCorrected: "Use active voice: 'Created' something",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := CritiquePhrasing(tt.text)
			if tt.wantCount > 0 && len(issues) != tt.wantCount {
				t.Errorf("got %d issues, want %d", len(issues), tt.wantCount)
			}
			if len(issues) == 0 {
				t.Fatal("issues must never be empty")
			}
			if len(issues) > 5 {
				t.Errorf("got %d issues, want at most 5", len(issues))
			}

			found := false
			for _, issue := range issues {
				if tt.wantOriginal != "" && issue.Original == tt.wantOriginal {
					found = true
				}
				if tt.wantOriginal == "" && issue.Corrected == tt.wantCorrected {
					found = true
				}
			}
			if !found {
				t.Errorf("issues %v missing expected entry (original %q / corrected %q)",
					issues, tt.wantOriginal, tt.wantCorrected)
			}
		})
	}
}

func TestCritiquePhrasingCap(t *testing.T) {
	// Six weak phrases plus passive voice; output must stop at five
	text := "I am a hard worker. I have experience. Responsible for builds. " +
		"Worked on tooling. Helped with releases. Good at testing. The site was developed quickly."

	issues := CritiquePhrasing(text)
	if len(issues) != 5 {
		t.Errorf("got %d issues, want exactly 5", len(issues))
	}
}

func TestCritiquePhrasingExcerpt(t *testing.T) {
	text := strings.Repeat("x", 50) + " responsible for deployments " + strings.Repeat("y", 50)

	issues := CritiquePhrasing(text)
	if len(issues) == 0 {
		t.Fatal("expected at least one issue")
	}

	original := issues[0].Original
	if !strings.HasPrefix(original, "...") || !strings.HasSuffix(original, "...") {
		t.Errorf("excerpt %q should be clipped on both sides", original)
	}
	if !strings.Contains(original, "responsible for") {
		t.Errorf("excerpt %q should contain the weak phrase", original)
	}
}
