package analysis

import (
	"slices"
	"strings"
	"testing"
)

func TestScoreATSEmptyText(t *testing.T) {
	score, feedback := ScoreATS("", nil)

	if score != 5 {
		t.Errorf("ScoreATS(\"\") = %d, want 5", score)
	}
	if !slices.Contains(feedback, "Resume is too short - add more content") {
		t.Errorf("feedback = %v, want too-short item", feedback)
	}
	if len(feedback) > 5 {
		t.Errorf("feedback has %d items, want at most 5", len(feedback))
	}
}

func TestScoreATSBuckets(t *testing.T) {
	longText := strings.Repeat("developed improved systems ", 120) // well over 300 words

	tests := []struct {
		name         string
		text         string
		detected     []string
		minScore     int
		maxScore     int
		wantFeedback string
	}{
		{
			name:         "medium length resume",
			text:         strings.Repeat("software engineering work ", 60),
			minScore:     10,
			maxScore:     60,
			wantFeedback: "Resume could be more detailed",
		},
		{
			name:     "long structured resume",
			text:     longText + " education at university, experience at company, skills: many, projects built, email me@example.com, increased revenue by 30%",
			detected: []string{"Python", "Sql", "Git", "Docker", "React"},
			minScore: 80,
			maxScore: 100,
		},
		{
			name:         "no quantifiable achievements",
			text:         "education at university, work experience, technical skills, projects portfolio, email contact",
			wantFeedback: "Include quantifiable achievements (e.g., 'increased efficiency by 30%')",
			minScore:     40,
			maxScore:     60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, feedback := ScoreATS(tt.text, tt.detected)
			if score < tt.minScore || score > tt.maxScore {
				t.Errorf("score = %d, want in [%d,%d]", score, tt.minScore, tt.maxScore)
			}
			if score < 0 || score > 100 {
				t.Errorf("score = %d, out of [0,100]", score)
			}
			if tt.wantFeedback != "" && !slices.Contains(feedback, tt.wantFeedback) {
				t.Errorf("feedback = %v, want %q present", feedback, tt.wantFeedback)
			}
			if len(feedback) == 0 {
				t.Error("feedback must never be empty")
			}
			if len(feedback) > 5 {
				t.Errorf("feedback has %d items, want at most 5", len(feedback))
			}
		})
	}
}

func TestScoreATSClamped(t *testing.T) {
	// Everything maxed out: length, all sections, action verbs, skills, numbers
	text := strings.Repeat("achieved developed implemented designed created built improved increased reduced optimized ", 40) +
		"education degree university experience employment skills technologies projects portfolio email phone linkedin " +
		"increased efficiency by 30% over 5 years across 12 projects"
	detected := []string{"Python", "Sql", "Git", "Docker", "React", "Aws", "Linux"}

	score, _ := ScoreATS(text, detected)
	if score != 100 {
		t.Errorf("score = %d, want clamped 100", score)
	}
}

func TestScoreATSFeedbackOrder(t *testing.T) {
	// Short text with no sections: word-count feedback first, then sections
	_, feedback := ScoreATS("hello world", nil)

	if feedback[0] != "Resume is too short - add more content" {
		t.Errorf("feedback[0] = %q, want the word-count item first", feedback[0])
	}
	if feedback[1] != "Add a clear Education section" {
		t.Errorf("feedback[1] = %q, want Education section feedback", feedback[1])
	}
}

func BenchmarkScoreATS(b *testing.B) {
	text := strings.Repeat("Developed scalable services with Python, improved latency by 40%. ", 30)
	detected := []string{"Python", "Sql", "Git"}

	for b.Loop() {
		ScoreATS(text, detected)
	}
}
