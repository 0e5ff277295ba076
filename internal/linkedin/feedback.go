package linkedin

import (
	"fmt"
	"strings"

	"resumelens/internal/types"
)

func headlineFeedback(score int) types.SectionFeedback {
	switch {
	case score >= 80:
		return types.SectionFeedback{
			Score:       score,
			Rating:      "Excellent",
			Feedback:    "Your headline is compelling and effectively communicates your value proposition. It includes key skills and is well-structured.",
			Strength:    "Strong use of keywords and clear professional identity",
			Improvement: "Consider A/B testing different headlines to maximize profile views",
		}
	case score >= 60:
		return types.SectionFeedback{
			Score:       score,
			Rating:      "Good",
			Feedback:    "Your headline is decent but could be more impactful. Consider adding specific skills or value propositions.",
			Strength:    "Includes role information",
			Improvement: `Add 2-3 key skills and a value proposition (e.g., "| Helping companies scale efficiently")`,
		}
	default:
		return types.SectionFeedback{
			Score:       score,
			Rating:      "Needs Improvement",
			Feedback:    "Your headline needs significant enhancement. It should be 30-120 characters and include your role, key skills, and value proposition.",
			Strength:    "Has basic structure",
			Improvement: `Rewrite using this formula: [Role] | [Key Skills] | [Value Proposition]. Example: "Software Engineer | Python, AWS, React | Building scalable web applications"`,
		}
	}
}

func aboutFeedback(score int, about string) types.SectionFeedback {
	wordCount := len(strings.Fields(about))
	switch {
	case score >= 80:
		return types.SectionFeedback{
			Score:       score,
			Rating:      "Excellent",
			Feedback:    fmt.Sprintf("Your About section is well-crafted with %d words. It tells a compelling story and includes metrics.", wordCount),
			Strength:    "Strong narrative with quantifiable achievements",
			Improvement: "Ensure it ends with a clear call-to-action",
		}
	case score >= 60:
		return types.SectionFeedback{
			Score:       score,
			Rating:      "Good",
			Feedback:    fmt.Sprintf("Your About section has %d words and provides solid information, but could be more engaging.", wordCount),
			Strength:    "Covers key professional information",
			Improvement: `Add specific achievements with numbers (e.g., "increased revenue by 30%") and inject more personality`,
		}
	default:
		return types.SectionFeedback{
			Score:       score,
			Rating:      "Needs Expansion",
			Feedback:    fmt.Sprintf("Your About section is too brief (%d words). Aim for 150-300 words to fully showcase your value.", wordCount),
			Strength:    "Space for significant improvement",
			Improvement: "Write 3-4 paragraphs covering: (1) Who you are and what drives you, (2) Key achievements with metrics, (3) Core competencies, (4) What you're looking for / call-to-action",
		}
	}
}

func experienceFeedback(experience string) types.SectionFeedback {
	if len(experience) > 50 {
		return types.SectionFeedback{
			Score:       75,
			Rating:      "Good",
			Feedback:    "Experience section is populated with work history.",
			Strength:    "Shows professional background",
			Improvement: `For each role, use bullet points with metrics (e.g., "Led team of 5 engineers, delivered 20+ features")`,
		}
	}
	return types.SectionFeedback{
		Score:       30,
		Rating:      "Limited",
		Feedback:    "Experience section appears incomplete or brief.",
		Strength:    "Opportunity to showcase achievements",
		Improvement: "Add detailed descriptions for each role with bullet points highlighting key accomplishments and metrics",
	}
}

func educationFeedback(education string) types.SectionFeedback {
	if len(education) > 20 {
		return types.SectionFeedback{
			Score:       80,
			Rating:      "Complete",
			Feedback:    "Education section is filled out.",
			Strength:    "Shows educational background",
			Improvement: "Add relevant coursework, honors, or activities if applicable",
		}
	}
	return types.SectionFeedback{
		Score:       40,
		Rating:      "Incomplete",
		Feedback:    "Education section needs more detail.",
		Strength:    "Basic structure exists",
		Improvement: "Add your degree, institution, graduation year, and any relevant achievements",
	}
}

func skillsFeedback(skillCount int) types.SectionFeedback {
	switch {
	case skillCount >= 10:
		return types.SectionFeedback{
			Score:       85,
			Rating:      "Excellent",
			Feedback:    fmt.Sprintf("You have %d skills listed, which is great for visibility.", skillCount),
			Strength:    "Comprehensive skills coverage",
			Improvement: "Ensure your top 3-5 skills have 10+ endorsements by asking colleagues",
		}
	case skillCount >= 5:
		return types.SectionFeedback{
			Score:       65,
			Rating:      "Good",
			Feedback:    fmt.Sprintf("You have %d skills listed. Aim for 10-15 relevant skills.", skillCount),
			Strength:    "Core skills identified",
			Improvement: "Add 5-8 more industry-relevant skills and get endorsements",
		}
	default:
		return types.SectionFeedback{
			Score:       35,
			Rating:      "Insufficient",
			Feedback:    fmt.Sprintf("Only %d skills listed. LinkedIn allows up to 50 skills.", skillCount),
			Strength:    "Significant opportunity for improvement",
			Improvement: "Add at least 10-15 core skills relevant to your industry and role. This dramatically improves search visibility.",
		}
	}
}

func buildSectionFeedback(input types.LinkedInProfileInput, headlineScore, aboutScore int) map[string]types.SectionFeedback {
	return map[string]types.SectionFeedback{
		"headline":   headlineFeedback(headlineScore),
		"about":      aboutFeedback(aboutScore, input.About),
		"experience": experienceFeedback(input.Experience),
		"education":  educationFeedback(input.Education),
		"skills":     skillsFeedback(len(input.Skills)),
	}
}

// industryPositioning renders a markdown block placing the profile against
// the competition at its score tier.
func industryPositioning(profileScore, percentile int, visibilityMult float64, currentRole, industry string) string {
	roleText := ""
	if industry != "" {
		roleText = fmt.Sprintf(" in the %s industry", industry)
	}
	roleTitle := currentRole
	if roleTitle == "" {
		roleTitle = "your field"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `## Industry Positioning Analysis

Your LinkedIn profile currently ranks in the **top %d%%** of professionals%s.

### Visibility Potential
With optimization, your profile visibility could increase by **%.1fx**, meaning you could appear in %d times more recruiter and hiring manager searches.

### Competitive Standing
`, 100-percentile, roleText, visibilityMult, int(visibilityMult))

	switch {
	case profileScore >= 80:
		fmt.Fprintf(&b, `You're in the **elite tier** for %s profiles. Your profile stands out and effectively positions you as a top professional. Continue fine-tuning to maintain this competitive edge.

**Key Competitive Advantages:**
- Strong keyword optimization for search visibility
- Compelling personal branding and storytelling
- Complete profile sections with detailed information
- Professional presentation that builds credibility
`, roleTitle)
	case profileScore >= 65:
		fmt.Fprintf(&b, `You're in the **strong performer** tier for %s profiles. You're ahead of most professionals, but there's room to reach elite status.

**To Reach Top 10%%:**
- Enhance keyword density for better search ranking
- Add more quantified achievements and metrics
- Expand About section with compelling narrative
- Get 5-10 endorsements on top skills
`, roleTitle)
	case profileScore >= 45:
		fmt.Fprintf(&b, `You're in the **solid foundation** tier for %s profiles. You have the basics covered but need optimization to compete for top opportunities.

**To Reach Top 30%%:**
- Rewrite headline with role + skills + value proposition
- Expand About section to 150+ words with achievements
- Add industry-specific keywords throughout profile
- Complete all profile sections (experience, education, skills)
`, roleTitle)
	default:
		fmt.Fprintf(&b, `You're in the **significant opportunity** tier for %s profiles. Most professionals have more optimized profiles, but this means you have huge upside potential.

**Quick Wins to Jump to Top 50%%:**
- Create a professional headline (30+ characters)
- Write a 150+ word About section with your story
- Add 10+ relevant skills
- Include metrics in experience descriptions
- Upload a professional profile photo (if missing)
`, roleTitle)
	}
	return b.String()
}

// finalSummary renders the closing motivational markdown with next steps.
func finalSummary(profileScore, percentile int, improvements []string) string {
	switch {
	case profileScore >= 80:
		return fmt.Sprintf(`## 🌟 Congratulations! You're in the Top %d%%

Your LinkedIn profile is **excellent** and positions you as a standout professional. You've done the hard work of building a strong online presence.

### Next Steps to Maintain Excellence:
1. **Stay Active**: Share industry insights, engage with posts, and publish articles to boost visibility
2. **Network Strategically**: Connect with 10-15 new professionals in your field each week
3. **Gather Recommendations**: Aim for 3-5 recommendations from colleagues or clients
4. **A/B Test**: Try variations of your headline and track profile views
5. **Keep Updated**: Refresh your profile quarterly with new achievements

### Your Competitive Edge
With your optimized profile, you're **%d%% more likely** to be contacted by recruiters compared to the average professional. Keep up the great work!
`, 100-percentile, (100-percentile)*5)
	case profileScore >= 60:
		var b strings.Builder
		fmt.Fprintf(&b, `## 💪 Strong Foundation - You're Almost There!

Your LinkedIn profile is **good** and you're in the top %d%% of professionals. With a few strategic improvements, you can reach elite status.

### Priority Action Items (Next 48 Hours):
`, 100-percentile)
		for i, improvement := range improvements {
			if i >= 3 {
				break
			}
			fmt.Fprintf(&b, "%d. %s\n", i+1, improvement)
		}
		b.WriteString(`
### The Impact
Implementing these changes could **double your profile visibility** and increase recruiter outreach by 40-60%.

### Mini Challenge
Can you dedicate 2 hours this week to LinkedIn optimization? The ROI on your career could be substantial. Set a calendar reminder right now!
`)
		return b.String()
	default:
		return `## 🚀 Huge Opportunity Ahead!

Your LinkedIn profile has **significant room for growth**, which is actually exciting news! Every improvement you make will have a big impact.

### Your 7-Day LinkedIn Transformation Plan:

**Days 1-2: Foundation**
- Craft a compelling headline (use the samples provided)
- Write a 200-word About section telling your professional story

**Days 3-4: Content**
- Add bullet points with metrics to your top 3 work experiences
- List 10-15 relevant skills

**Days 5-6: Polish**
- Complete education section
- Ask 5 colleagues for skill endorsements

**Day 7: Visibility**
- Share an industry article with your thoughts
- Connect with 10 professionals in your field

### The Prize
A fully optimized profile could **increase your visibility by 5x** and open doors to opportunities you didn't even know existed. Many professionals have found their dream jobs simply by having a strong LinkedIn presence.

**Start today** - future you will be grateful! 🎯
`
	}
}
