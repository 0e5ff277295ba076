package linkedin

import (
	"fmt"
	"regexp"
	"strings"

	"resumelens/internal/errors"
	"resumelens/internal/types"
)

// quantifiedPattern deliberately matches case-sensitively; lowercase verb
// forms are how achievements are normally written.
var quantifiedPattern = regexp.MustCompile(`\d+%|\d+x|increased|grew|reduced`)

const minAnalyzableLength = 10

// Analyzer scores LinkedIn profiles with local heuristics. It needs no
// external services, so results are deterministic for a given input.
type Analyzer struct {
	logger *errors.Logger
}

func NewAnalyzer(logger *errors.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}

// Analyze produces the full profile review. Profiles with a valid URL but
// almost no text get a starter analysis instead of a scored one.
func (a *Analyzer) Analyze(input types.LinkedInProfileInput) *types.LinkedInAnalysisOutput {
	urlValid := false
	if input.ProfileURL != "" {
		urlValid = ValidateProfileURL(input.ProfileURL)
	}

	combined := strings.TrimSpace(joinNonEmpty(
		input.ProfileText, input.Headline, input.About, input.Experience, input.Education))
	if len(input.Skills) > 0 {
		combined += " " + strings.Join(input.Skills, " ")
	}

	if len(combined) < minAnalyzableLength {
		if a.logger != nil {
			a.logger.Debug("profile text too short, returning starter analysis", "url_valid", urlValid)
		}
		return minimalAnalysis(urlValid)
	}

	return a.fullAnalysis(input, combined)
}

func (a *Analyzer) fullAnalysis(input types.LinkedInProfileInput, combined string) *types.LinkedInAnalysisOutput {
	textLower := strings.ToLower(combined)
	wordCount := len(strings.Fields(combined))

	headlineText := input.Headline
	if headlineText == "" {
		if idx := strings.IndexByte(combined, '\n'); idx >= 0 {
			headlineText = combined[:idx]
		} else {
			headlineText = truncateRunes(combined, 100)
		}
	}
	aboutText := input.About
	if aboutText == "" {
		aboutText = combined
	}

	headlineScore := scoreHeadline(headlineText, input.CurrentRole)
	aboutScore := scoreAbout(aboutText)

	signals := buildChecklist(headlineText, textLower, wordCount)
	completeness := signals.completeness()
	branding := scoreBranding(combined, textLower, wordCount)
	optimization := scoreOptimization(textLower)
	engagement := scoreEngagement(textLower)
	visibility := scoreVisibility(combined+" "+headlineText+" "+aboutText, headlineText)

	profileScore := (headlineScore + aboutScore + completeness + branding + optimization + visibility + engagement) / 7

	strengths := collectStrengths(completeness, headlineScore, branding, optimization, engagement)
	improvements := collectImprovements(combined, headlineScore, aboutScore, visibility, optimization, engagement)

	percentile := percentileRank(profileScore)
	visibilityMult := visibilityMultiplier(visibility)

	if a.logger != nil {
		a.logger.Debug("linkedin profile scored",
			"profile_score", profileScore,
			"headline_score", headlineScore,
			"about_score", aboutScore,
			"visibility_score", visibility)
	}

	return &types.LinkedInAnalysisOutput{
		ProfileScore:         profileScore,
		CompletenessScore:    min(completeness, 100),
		BrandingScore:        min(branding, 100),
		OptimizationScore:    min(optimization, 100),
		HeadlineScore:        headlineScore,
		AboutScore:           aboutScore,
		VisibilityScore:      visibility,
		EngagementScore:      engagement,
		HeadlineQuality:      qualityLabel(headlineScore, "Needs improvement"),
		AboutQuality:         qualityLabel(aboutScore, "Needs expansion"),
		VisibilityRating:     visibilityLabel(visibility),
		Strengths:            strengths,
		Improvements:         improvements,
		KeywordsToAdd:        recommendKeywords(input.CurrentRole, combined),
		SampleHeadlines:      sampleHeadlines(input.CurrentRole),
		SampleSummaryPoints:  sampleSummaryPoints(input.CurrentRole),
		ProfileChecklist:     signals.toChecklist(true),
		SectionFeedback:      buildSectionFeedback(input, headlineScore, aboutScore),
		IndustryPositioning:  industryPositioning(profileScore, percentile, visibilityMult, input.CurrentRole, input.Industry),
		FinalSummary:         finalSummary(profileScore, percentile, improvements),
		Percentile:           percentile,
		VisibilityMultiplier: visibilityMult,
		OverallRating:        float64(profileScore) / 10,
		CurrentHeadline:      orDefault(truncateRunes(headlineText, 150), "No headline provided"),
		CurrentAboutPreview:  orDefault(truncateRunes(aboutText, 200), "No about section provided"),
		Summary:              buildSummary(profileScore, percentile),
	}
}

func collectStrengths(completeness, headlineScore, branding, optimization, engagement int) []string {
	strengths := []string{}
	if completeness >= 70 {
		strengths = append(strengths, "Profile sections are well-filled with key information")
	}
	if headlineScore >= 70 {
		strengths = append(strengths, "Headline effectively communicates value proposition")
	}
	if branding >= 60 {
		strengths = append(strengths, "Strong professional branding and storytelling elements")
	}
	if optimization >= 70 {
		strengths = append(strengths, "Good use of keywords and action verbs for visibility")
	}
	if engagement >= 70 {
		strengths = append(strengths, "Profile content is engaging and results-oriented")
	}
	if len(strengths) == 0 {
		strengths = append(strengths, "Profile has been created - foundation established")
	}
	if len(strengths) > 5 {
		strengths = strengths[:5]
	}
	return strengths
}

func collectImprovements(combined string, headlineScore, aboutScore, visibility, optimization, engagement int) []string {
	improvements := []string{}
	if headlineScore < 70 {
		improvements = append(improvements, "Enhance headline with specific skills and value proposition")
	}
	if aboutScore < 70 {
		improvements = append(improvements, "Expand About section with compelling career narrative (aim for 150+ words)")
	}
	if visibility < 70 {
		improvements = append(improvements, "Add industry-specific keywords to improve search visibility by 3-5x")
	}
	if !quantifiedPattern.MatchString(combined) {
		improvements = append(improvements, "Include quantifiable achievements (e.g., 'Increased revenue by 25%')")
	}
	if optimization < 60 {
		improvements = append(improvements, "Use more action verbs (led, built, designed) to strengthen impact")
	}
	if engagement < 60 {
		improvements = append(improvements, "Add call-to-action elements to increase profile engagement")
	}
	if len(improvements) > 6 {
		improvements = improvements[:6]
	}
	return improvements
}

func minimalAnalysis(hasURL bool) *types.LinkedInAnalysisOutput {
	strengths := []string{"Ready to analyze your LinkedIn profile - just add your information above"}
	improvements := []string{
		"Add your complete LinkedIn headline for detailed analysis (30+ characters recommended)",
		"Paste your About/Summary section (150+ words for best results)",
		`Include specific achievements with metrics (e.g., "Increased revenue by 25%")`,
		"List your key technical skills and industry expertise",
		"Add your current role and industry for personalized recommendations",
	}
	if hasURL {
		strengths = []string{
			"LinkedIn profile URL provided - good first step!",
			"Profile exists and is accessible",
		}
	} else {
		improvements = append([]string{"Provide your LinkedIn profile URL to enable analysis"}, improvements...)
	}

	out := &types.LinkedInAnalysisOutput{
		HeadlineQuality:  "Not provided - add your headline for analysis",
		AboutQuality:     "Not provided - paste your About section for detailed review",
		VisibilityRating: "Unknown",
		Strengths:        strengths,
		Improvements:     improvements,
		KeywordsToAdd: []string{
			"Leadership",
			"Strategy",
			"Innovation",
			"Results-Driven",
			"Industry Expertise",
			"Team Collaboration",
			"Problem Solving",
			"Data-Driven",
		},
		SampleHeadlines: []string{
			"Your Role | Key Skill | Value Proposition",
			"Industry Expert | Problem Solver | Innovation Driver",
			"Experienced Professional | Passionate About [Your Field] | Helping Teams Succeed",
		},
		SampleSummaryPoints: []string{
			"Start with a compelling hook about your unique value",
			"Highlight X years of experience in your field",
			"Showcase specific achievements with measurable results",
			"List 3-4 core competencies",
			"Express your professional passion and goals",
			"Include a call-to-action to connect",
		},
		ProfileChecklist:     types.ProfileChecklist{CustomURL: hasURL},
		SectionFeedback:      map[string]types.SectionFeedback{},
		VisibilityMultiplier: 5.0,
		Summary:              "Add your headline, about section, and experience details to receive a comprehensive professional analysis with personalized recommendations and sample content.",
	}
	if hasURL {
		out.ProfileScore = 25
		out.CompletenessScore = 20
		out.VisibilityScore = 15
		out.VisibilityRating = "Basic"
		out.Percentile = 20
		out.Summary = "LinkedIn profile URL detected. " + out.Summary
	}
	return out
}

func (c checklistSignals) toChecklist(hasURL bool) types.ProfileChecklist {
	return types.ProfileChecklist{
		ProfessionalHeadline: c.professionalHeadline,
		DetailedSummary:      c.detailedSummary,
		ExperienceMetrics:    c.experienceMetrics,
		SufficientKeywords:   c.sufficientKeywords,
		CustomURL:            hasURL,
	}
}

func qualityLabel(score int, lowLabel string) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	default:
		return lowLabel
	}
}

func visibilityLabel(score int) string {
	switch {
	case score >= 75:
		return "High"
	case score >= 50:
		return "Moderate"
	default:
		return "Low"
	}
}

func buildSummary(profileScore, percentile int) string {
	summary := fmt.Sprintf("LinkedIn profile scores %d/100 (Top %d%% of professionals). ", profileScore, 100-percentile)
	switch {
	case profileScore >= 75:
		return summary + "Excellent professional presence - fine-tune for maximum impact."
	case profileScore >= 60:
		return summary + "Strong foundation - enhance visibility and keyword optimization for better reach."
	case profileScore >= 40:
		return summary + "Good start - expand key sections and add more specific achievements."
	default:
		return summary + "Significant opportunity for improvement - focus on completeness and compelling content."
	}
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
