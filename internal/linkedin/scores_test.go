package linkedin

import (
	"strings"
	"testing"
)

func TestScoreHeadline(t *testing.T) {
	tests := []struct {
		name     string
		headline string
		role     string
		want     int
	}{
		{"empty", "", "", 0},
		{"too short", "Engineer", "", 0},
		{
			// 25 length + 20 title + 20 skill + 20 value + 15 separator
			name:     "strong headline",
			headline: "Software Engineer | Python, AWS | Building scalable systems",
			want:     100,
		},
		{
			// 15 short-length only
			name:     "short plain headline",
			headline: "Hard worker at Acme Inc",
			want:     15,
		},
		{
			// 25 length + 20 via current role match
			name:     "role match without title word",
			headline: "Growth Hacker improving conversion funnels",
			role:     "Growth Hacker",
			want:     45,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scoreHeadline(tt.headline, tt.role); got != tt.want {
				t.Errorf("scoreHeadline(%q, %q) = %d, want %d", tt.headline, tt.role, got, tt.want)
			}
		})
	}
}

func TestScoreAbout(t *testing.T) {
	if got := scoreAbout("Too short."); got != 0 {
		t.Errorf("short about = %d, want 0", got)
	}

	rich := "I am a software leader with deep expertise and professional experience.\n\n" +
		"I help teams ship faster and increased delivery speed by 40% over 3 years. " +
		strings.Repeat("My work spans many domains and I enjoy mentoring engineers every day. ", 15) +
		"Reach out if you want to connect."
	got := scoreAbout(rich)
	if got != 100 {
		t.Errorf("rich about = %d, want 100", got)
	}

	// 40-79 words, no metrics or call to action
	moderate := strings.Repeat("building software products for enterprise clients ", 9)
	if got := scoreAbout(moderate); got != 10 {
		t.Errorf("moderate about = %d, want 10", got)
	}
}

func TestAverageSentenceLength(t *testing.T) {
	// The empty segment after a trailing terminator counts toward the divisor
	if got := averageSentenceLength("one two three four five six seven eight nine ten."); got != 5.0 {
		t.Errorf("average with trailing period = %v, want 5", got)
	}
	if got := averageSentenceLength("one two three four five six seven eight nine ten"); got != 10.0 {
		t.Errorf("average without terminator = %v, want 10", got)
	}
	if got := averageSentenceLength(""); got != 0 {
		t.Errorf("empty text average = %v, want 0", got)
	}
}

func TestScoreEngagementBounds(t *testing.T) {
	texts := []string{
		"",
		"connect with me. i achieved, delivered, increased, improved, led, grew, built things. passionate about work.",
		strings.Repeat("plain words without any signals whatsoever here now ", 20),
	}
	for _, text := range texts {
		got := scoreEngagement(strings.ToLower(text))
		if got < 0 || got > 100 {
			t.Errorf("scoreEngagement out of range: %d", got)
		}
	}
}

func TestScoreVisibility(t *testing.T) {
	if got := scoreVisibility("", ""); got != 0 {
		t.Errorf("empty visibility = %d, want 0", got)
	}

	combined := strings.Repeat("software engineer building cloud data products with leadership and strategy ", 15) +
		"based in Berlin area"
	headline := "Senior Software Engineer | Cloud | Data | Leadership | Strategy"
	got := scoreVisibility(combined, headline)
	if got != 100 {
		t.Errorf("strong visibility = %d, want 100", got)
	}
}

func TestScoreBranding(t *testing.T) {
	text := "Passionate engineer. I help companies deliver results. Shipped 12 products."
	got := scoreBranding(text, strings.ToLower(text), 10)
	// 25 storytelling + 30 digits + 20 outcomes, word count below 100
	if got != 75 {
		t.Errorf("branding = %d, want 75", got)
	}
}

func TestBuildChecklist(t *testing.T) {
	text := "Experienced professional who increased revenue and improved retention. Certified expert."
	signals := buildChecklist("Senior Platform Engineer | Kubernetes | Golang", strings.ToLower(text), 90)

	if !signals.professionalHeadline {
		t.Error("long headline should set professionalHeadline")
	}
	if !signals.detailedSummary {
		t.Error("90 words should set detailedSummary")
	}
	if !signals.experienceMetrics {
		t.Error("'increased' should set experienceMetrics")
	}
	if !signals.sufficientKeywords {
		t.Error("two keyword hits should set sufficientKeywords")
	}
	if got := signals.completeness(); got != 100 {
		t.Errorf("completeness = %d, want 100", got)
	}
}

func TestBuildChecklistKeywordDensity(t *testing.T) {
	// Only whole-word expert/specialist/professional/certified/experienced
	// count toward keyword density; "expertise" and "experience" do not
	text := strings.ToLower("My expertise covers cloud platforms and years of experience. I am a certified architect.")
	signals := buildChecklist("Senior Platform Engineer | Kubernetes | Golang", text, 90)

	if signals.sufficientKeywords {
		t.Error("a single keyword hit must not set sufficientKeywords")
	}

	text = strings.ToLower("An experienced professional who ships reliable systems.")
	signals = buildChecklist("Senior Platform Engineer | Kubernetes | Golang", text, 90)
	if !signals.sufficientKeywords {
		t.Error("two keyword hits should set sufficientKeywords")
	}
}
