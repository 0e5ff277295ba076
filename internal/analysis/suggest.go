package analysis

import "strings"

const maxSuggestions = 6

// Suggest produces actionable next steps for improving a resume, ordered
// from most to least specific. The generic tailoring advice is always last
// and the list is capped at six entries.
func Suggest(text string, missing []string, atsScore, detectedCount int) []string {
	textLower := strings.ToLower(text)
	suggestions := []string{}

	if len(missing) > 0 {
		top := missing
		if len(top) > 3 {
			top = top[:3]
		}
		suggestions = append(suggestions, "Learn or highlight these skills: "+strings.Join(top, ", "))
	}

	if atsScore < 50 {
		suggestions = append(suggestions, "Restructure resume with clear sections: Summary, Skills, Experience, Education, Projects")
	}
	if atsScore < 70 {
		suggestions = append(suggestions, "Add measurable achievements (e.g., 'Reduced load time by 40%')")
	}

	if !strings.Contains(textLower, "github") && !strings.Contains(textLower, "portfolio") {
		suggestions = append(suggestions, "Add links to your GitHub profile or portfolio website")
	}

	if !strings.Contains(textLower, "certification") && !strings.Contains(textLower, "certified") {
		suggestions = append(suggestions, "Consider adding relevant certifications to stand out")
	}

	if !strings.Contains(textLower, "project") {
		suggestions = append(suggestions, "Add a dedicated Projects section with 2-3 detailed projects")
	}

	if detectedCount < 8 {
		suggestions = append(suggestions, "Expand your Skills section with more relevant technologies")
	}

	suggestions = append(suggestions, "Tailor your resume keywords to match each job description")

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
