package analysis

import (
	"regexp"
	"strings"
)

// atsActionKeywords are the terms applicant tracking systems reward.
// Matched as substrings, like the systems themselves tend to do.
var atsActionKeywords = []string{
	"achieved", "developed", "implemented", "designed", "created", "built",
	"improved", "increased", "reduced", "optimized", "managed", "led",
	"collaborated", "analyzed", "automated", "delivered", "launched",
	"experience", "skills", "education", "projects", "certification",
	"proficient", "expertise", "responsible", "contributed",
}

// sectionProbes detect the presence of the standard resume sections
var sectionProbes = []struct {
	title    string
	keywords []string
}{
	{"Education", []string{"education", "degree", "university", "college", "bachelor", "master", "b.tech", "m.tech", "bsc", "msc"}},
	{"Experience", []string{"experience", "work history", "employment", "internship", "worked at", "worked as"}},
	{"Skills", []string{"skills", "technical skills", "technologies", "proficient in"}},
	{"Projects", []string{"projects", "portfolio", "developed", "built", "created"}},
	{"Contact", []string{"email", "phone", "linkedin", "github", "@"}},
}

var quantifiablePattern = regexp.MustCompile(`\d+%|\d+ years?|\d+ projects?|\d+ users?|\$\d+`)

// ScoreATS rates how well a resume will fare in an applicant tracking
// system, given the text and the skills already detected in it. The score
// is additive and capped at 100; feedback is capped at five entries with a
// positive placeholder when nothing is wrong.
func ScoreATS(text string, detected []string) (int, []string) {
	textLower := strings.ToLower(text)
	wordCount := len(strings.Fields(text))

	score := 0
	feedback := []string{}

	switch {
	case wordCount >= 300:
		score += 15
	case wordCount >= 150:
		score += 10
		feedback = append(feedback, "Resume could be more detailed")
	default:
		score += 5
		feedback = append(feedback, "Resume is too short - add more content")
	}

	for _, probe := range sectionProbes {
		if containsAny(textLower, probe.keywords) {
			score += 8
		} else {
			feedback = append(feedback, "Add a clear "+probe.title+" section")
		}
	}

	actionHits := 0
	for _, keyword := range atsActionKeywords {
		if strings.Contains(textLower, keyword) {
			actionHits++
		}
	}
	score += min(actionHits*2, 20)
	if actionHits < 5 {
		feedback = append(feedback, "Use more action verbs (developed, implemented, achieved)")
	}

	score += min(len(detected)*3, 15)
	if len(detected) < 5 {
		feedback = append(feedback, "Add more technical skills to your resume")
	}

	if quantifiablePattern.MatchString(textLower) {
		score += 10
	} else {
		feedback = append(feedback, "Include quantifiable achievements (e.g., 'increased efficiency by 30%')")
	}

	score = min(score, 100)
	if len(feedback) == 0 {
		feedback = []string{"Resume structure looks good!"}
	}
	if len(feedback) > 5 {
		feedback = feedback[:5]
	}
	return score, feedback
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
