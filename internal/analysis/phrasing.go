package analysis

import (
	"strings"

	"resumelens/internal/types"
)

// weakPhrases are common resume phrasings that read poorly to recruiters,
// each with a stronger replacement and the advice shown to the user
var weakPhrases = []struct {
	phrase string
	better string
	tip    string
}{
	{"responsible for", "Led", "Replace 'responsible for' with action verbs"},
	{"worked on", "Developed/Implemented", "Replace 'worked on' with specific actions"},
	{"helped with", "Contributed to/Assisted in", "Be more specific than 'helped with'"},
	{"i am", "Professional with", "Use third person in resumes"},
	{"i have", "[state directly]", "Avoid 'I have' - state skills directly"},
	{"good at", "Proficient in/Expertise in", "Replace 'good at' with professional terms"},
	{"knows", "Proficient in", "Use 'proficient in' instead of 'knows'"},
	{"did a project", "Developed a project", "Use action verbs for projects"},
	{"basic knowledge", "Foundational understanding", "Rephrase 'basic knowledge'"},
	{"hard worker", "Dedicated professional", "Use professional descriptors"},
}

var passiveIndicators = []string{
	"was created", "was developed", "was implemented", "was designed",
}

const maxPhrasingIssues = 5

// CritiquePhrasing flags weak wording and passive voice in resume text.
// Each weak phrase is reported once, with a short excerpt around the first
// occurrence. At most one passive voice issue is reported. Output is capped
// at five issues; clean text gets a single placeholder issue.
func CritiquePhrasing(text string) []types.GrammarIssue {
	textLower := strings.ToLower(text)
	issues := []types.GrammarIssue{}

	for _, weak := range weakPhrases {
		idx := strings.Index(textLower, weak.phrase)
		if idx < 0 {
			continue
		}
		issues = append(issues, types.GrammarIssue{
			Original:  excerptAround(text, idx, len(weak.phrase)),
			Corrected: "Consider: " + weak.tip + ". Use '" + weak.better + "' instead.",
		})
	}

	for _, passive := range passiveIndicators {
		if strings.Contains(textLower, passive) {
			verb := strings.TrimPrefix(passive, "was ")
			issues = append(issues, types.GrammarIssue{
				Original:  "Found passive voice: '" + passive + "'",
				Corrected: "Use active voice: '" + capitalize(verb) + "' something",
			})
			break
		}
	}

	if len(issues) == 0 {
		issues = append(issues, types.GrammarIssue{
			Original:  "No major grammar issues detected",
			Corrected: "Your resume language is professional. Consider adding more accomplishment-focused statements.",
		})
	}
	if len(issues) > maxPhrasingIssues {
		issues = issues[:maxPhrasingIssues]
	}
	return issues
}

// excerptAround extracts a trimmed context window around a match, with
// ellipses marking truncation on either side
func excerptAround(text string, idx, matchLen int) string {
	start := max(idx-20, 0)
	end := min(idx+matchLen+30, len(text))

	excerpt := strings.TrimSpace(text[start:end])
	if start > 0 {
		excerpt = "..." + excerpt
	}
	if end < len(text) {
		excerpt += "..."
	}
	return excerpt
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
