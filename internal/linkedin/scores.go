package linkedin

import (
	"regexp"
	"strings"
)

var (
	metricsPattern        = regexp.MustCompile(`\d+%|\d+\+|increased|improved|reduced`)
	keywordDensityPattern = regexp.MustCompile(`\b(expert|specialist|professional|certified|experienced)\b`)
	tenurePattern         = regexp.MustCompile(`\d+\s*(?:years?|months?)`)
	locationPattern       = regexp.MustCompile(`\b(remote|based in|located|area|region)\b`)
	headlineSkillPattern  = regexp.MustCompile(`\b(python|java|react|aws|sql|marketing|sales|design|data|ai|ml)\b`)
	headlineSepPattern    = regexp.MustCompile(`[|•–]`)
	firstPersonPattern    = regexp.MustCompile(`\b(i am|i've|i help|my|i specialize)\b`)
	aboutMetricsPattern   = regexp.MustCompile(`\d+%|\d+x|\d+ years|increased|grew|achieved`)
	aboutDensityPattern   = regexp.MustCompile(`\b(experience|expertise|specialist|professional|skilled|certified)\b`)
	sentenceSplitPattern  = regexp.MustCompile(`[.!?]+`)
)

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func countMatches(text string, terms []string) int {
	count := 0
	for _, term := range terms {
		if strings.Contains(text, term) {
			count++
		}
	}
	return count
}

// buildChecklist derives the completeness signals from the combined profile
// text. URL presence is checked by the caller.
func buildChecklist(headlineText, textLower string, wordCount int) checklistSignals {
	return checklistSignals{
		professionalHeadline: len(headlineText) > 30,
		detailedSummary:      wordCount > 80,
		experienceMetrics:    metricsPattern.MatchString(textLower),
		sufficientKeywords:   len(keywordDensityPattern.FindAllString(textLower, -1)) >= 2,
	}
}

type checklistSignals struct {
	professionalHeadline bool
	detailedSummary      bool
	experienceMetrics    bool
	sufficientKeywords   bool
}

func (c checklistSignals) completeness() int {
	score := 20 // custom URL slot always counts in the full analysis
	for _, hit := range []bool{c.professionalHeadline, c.detailedSummary, c.experienceMetrics, c.sufficientKeywords} {
		if hit {
			score += 20
		}
	}
	return score
}

func scoreBranding(profileText, textLower string, wordCount int) int {
	score := 0
	if containsAny(textLower, []string{"passionate", "dedicated", "experienced", "expert", "specialist"}) {
		score += 25
	}
	if wordCount >= 100 {
		score += 25
	}
	if strings.ContainsAny(profileText, "0123456789") {
		score += 30
	}
	if containsAny(textLower, []string{"help", "solve", "deliver"}) {
		score += 20
	}
	return score
}

func scoreOptimization(textLower string) int {
	score := 0
	if containsAny(textLower, []string{"develop", "lead", "manage", "create", "build", "design", "implement", "drive", "optimize"}) {
		score += 30
	}
	if tenurePattern.MatchString(textLower) {
		score += 20
	}
	score += min(countMatches(textLower, []string{"technical", "business", "strategy", "innovation", "growth", "digital"})*10, 50)
	return score
}

func scoreEngagement(textLower string) int {
	score := 0
	if containsAny(textLower, []string{"connect", "collaborate", "reach out", "let's talk", "get in touch", "message me"}) {
		score += 30
	}
	score += min(countMatches(textLower, []string{"achieved", "delivered", "increased", "improved", "led", "grew", "built"})*10, 40)
	if containsAny(textLower, []string{"passionate", "love", "enjoy", "thrive", "excited", "enthusiastic"}) {
		score += 20
	}
	if avg := averageSentenceLength(textLower); avg >= 10 && avg <= 20 {
		score += 10
	}
	return min(score, 100)
}

// averageSentenceLength divides the word count by every split segment,
// including the empty one a trailing terminator produces.
func averageSentenceLength(text string) float64 {
	sentences := sentenceSplitPattern.Split(text, -1)
	totalWords := 0
	for _, s := range sentences {
		totalWords += len(strings.Fields(s))
	}
	return float64(totalWords) / float64(len(sentences))
}

func scoreVisibility(combined, headline string) int {
	lower := strings.ToLower(combined)
	words := len(strings.Fields(lower))

	score := 0
	switch {
	case words > 100:
		score += 20
	case words > 50:
		score += 10
	}
	if containsAny(lower, []string{"engineer", "developer", "manager", "designer", "analyst", "consultant", "director", "specialist"}) {
		score += 20
	}
	score += min(countMatches(lower, []string{"leadership", "strategy", "data", "digital", "cloud", "software", "product", "project"})*8, 32)
	if locationPattern.MatchString(lower) {
		score += 8
	}
	if len(strings.Fields(headline)) >= 5 {
		score += 20
	}
	return min(score, 100)
}

func scoreHeadline(headline, currentRole string) int {
	if len(headline) < 10 {
		return 0
	}
	lower := strings.ToLower(headline)

	score := 0
	switch {
	case len(headline) >= 30 && len(headline) <= 120:
		score += 25
	case len(headline) >= 20:
		score += 15
	}

	roleLower := strings.ToLower(currentRole)
	if (roleLower != "" && strings.Contains(lower, roleLower)) ||
		containsAny(lower, []string{"engineer", "manager", "developer", "designer", "analyst", "consultant", "director"}) {
		score += 20
	}
	if headlineSkillPattern.MatchString(lower) {
		score += 20
	}
	if containsAny(lower, []string{"helping", "building", "creating", "driving", "leading", "expert", "specialist", "focused on"}) {
		score += 20
	}
	if headlineSepPattern.MatchString(headline) {
		score += 15
	}
	return min(score, 100)
}

func scoreAbout(about string) int {
	if len(about) < 20 {
		return 0
	}
	lower := strings.ToLower(about)
	words := len(strings.Fields(about))

	score := 0
	switch {
	case words >= 150:
		score += 30
	case words >= 80:
		score += 20
	case words >= 40:
		score += 10
	}
	if firstPersonPattern.MatchString(lower) {
		score += 15
	}
	if aboutMetricsPattern.MatchString(lower) {
		score += 20
	}
	if containsAny(lower, []string{"connect", "reach out", "contact", "let's", "email", "message"}) {
		score += 10
	}
	if len(aboutDensityPattern.FindAllString(lower, -1)) >= 2 {
		score += 15
	}
	if strings.Count(about, "\n") >= 2 {
		score += 10
	}
	return min(score, 100)
}
