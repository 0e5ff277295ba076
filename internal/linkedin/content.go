package linkedin

import (
	"fmt"
	"strings"
)

func percentileRank(score int) int {
	switch {
	case score >= 90:
		return 95
	case score >= 80:
		return 85
	case score >= 70:
		return 70
	case score >= 60:
		return 55
	case score >= 50:
		return 40
	default:
		return max(20, score/2)
	}
}

func visibilityMultiplier(score int) float64 {
	switch {
	case score >= 80:
		return 1.2
	case score >= 60:
		return 2.0
	case score >= 40:
		return 3.5
	default:
		return 5.0
	}
}

var baseKeywords = []string{
	"Leadership",
	"Strategy",
	"Innovation",
	"Digital Transformation",
	"Cross-functional Collaboration",
}

var roleKeywordOrder = []string{"engineer", "developer", "manager", "designer", "analyst", "consultant"}

var roleKeywords = map[string][]string{
	"engineer":   {"Software Development", "System Architecture", "Code Review", "CI/CD", "Agile/Scrum"},
	"developer":  {"Full-Stack Development", "API Design", "Database Optimization", "Cloud Services", "Version Control"},
	"manager":    {"Team Leadership", "Project Management", "Stakeholder Communication", "Budget Management", "Process Improvement"},
	"designer":   {"User Experience (UX)", "User Interface (UI)", "Design Thinking", "Prototyping", "Visual Design"},
	"analyst":    {"Data Analysis", "Business Intelligence", "Statistical Modeling", "Data Visualization", "Insights Generation"},
	"consultant": {"Client Relations", "Solution Architecture", "Change Management", "Requirements Gathering", "Strategic Planning"},
}

const maxKeywordRecommendations = 8

// recommendKeywords suggests keywords missing from the profile, mixing
// role-specific terms with broadly valuable ones.
func recommendKeywords(currentRole, combinedText string) []string {
	existing := strings.ToLower(combinedText)
	roleLower := strings.ToLower(currentRole)

	recommendations := []string{}
	for _, roleKey := range roleKeywordOrder {
		if !strings.Contains(roleLower, roleKey) {
			continue
		}
		for _, kw := range roleKeywords[roleKey] {
			if strings.Contains(existing, strings.ToLower(kw)) {
				continue
			}
			recommendations = append(recommendations, kw)
			if len(recommendations) >= maxKeywordRecommendations {
				return recommendations
			}
		}
		break
	}

	for _, kw := range baseKeywords {
		if len(recommendations) >= maxKeywordRecommendations {
			break
		}
		if strings.Contains(existing, strings.ToLower(kw)) {
			continue
		}
		recommendations = append(recommendations, kw)
	}
	return recommendations
}

// sampleHeadlines builds example headlines, adding role-tailored ones when
// the current role is recognizable.
func sampleHeadlines(currentRole string) []string {
	role := currentRole
	if role == "" {
		role = "Professional"
	}

	headlines := []string{
		fmt.Sprintf("%s | Driving Innovation & Results | Passionate About Technology & Growth", role),
		fmt.Sprintf("Experienced %s | Helping Organizations Scale | Expert in Digital Solutions", role),
		fmt.Sprintf("%s Specializing in [Your Key Skill] | Building High-Performance Teams | [Industry] Leader", role),
	}

	roleLower := strings.ToLower(currentRole)
	switch {
	case strings.Contains(roleLower, "engineer"):
		headlines = append(headlines,
			"Senior Software Engineer | Full-Stack Expert (React, Node.js, AWS) | Building Scalable Applications",
			"Software Engineer | Cloud Architecture Specialist | Passionate About Clean Code & Innovation")
	case strings.Contains(roleLower, "manager"):
		headlines = append(headlines,
			"Product Manager | Driving Data-Driven Decisions | Launching Products That Users Love",
			"Engineering Manager | Building & Scaling High-Performance Teams | Agile Enthusiast")
	case strings.Contains(roleLower, "designer"):
		headlines = append(headlines,
			"UX/UI Designer | Creating Delightful User Experiences | Design Systems Expert",
			"Product Designer | User-Centered Design Advocate | Turning Ideas Into Beautiful Products")
	}

	if len(headlines) > 5 {
		headlines = headlines[:5]
	}
	return headlines
}

func sampleSummaryPoints(currentRole string) []string {
	role := currentRole
	if role == "" {
		role = "professional"
	}
	return []string{
		"Start with a compelling hook about your passion or unique value proposition",
		fmt.Sprintf("Experienced %s with [X] years of expertise in [key skill/industry]", role),
		"Proven track record of [specific achievement with metrics - e.g., 'increasing efficiency by 40%']",
		"Specializing in [your core competencies - list 3-4 key skills]",
		"Passionate about [what drives you professionally - innovation, problem-solving, mentoring, etc.]",
		"Looking to [your goal - e.g., 'connect with fellow industry leaders' or 'explore new opportunities in...']",
		"Let's connect! I'm always open to discussing [relevant topics in your field]",
	}
}
