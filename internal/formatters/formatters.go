package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumelens/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "AnalyzeResumeOutput", &AnalyzeTextFormatter{})
	registry.RegisterFormatter("markdown", "AnalyzeResumeOutput", &AnalyzeMarkdownFormatter{})
	registry.RegisterFormatter("text", "LinkedInAnalysisOutput", &LinkedInTextFormatter{})
	registry.RegisterFormatter("markdown", "LinkedInAnalysisOutput", &LinkedInMarkdownFormatter{})
	registry.RegisterFormatter("text", "RoleList", &RoleListTextFormatter{})
	registry.RegisterFormatter("markdown", "RoleList", &RoleListMarkdownFormatter{})
	registry.RegisterFormatter("text", "InterviewGuide", &InterviewGuideTextFormatter{})
	registry.RegisterFormatter("markdown", "InterviewGuide", &InterviewGuideMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.AnalyzeResumeOutput:
		return "AnalyzeResumeOutput"
	case types.LinkedInAnalysisOutput:
		return "LinkedInAnalysisOutput"
	case types.RoleList:
		return "RoleList"
	case types.InterviewGuide:
		return "InterviewGuide"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// AnalyzeTextFormatter handles text formatting for resume analysis results
type AnalyzeTextFormatter struct{}

func (atf *AnalyzeTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnalyzeResumeOutput)
	if !ok {
		return "", fmt.Errorf("expected AnalyzeResumeOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== RESUME ANALYSIS ===\n\n")
	output.WriteString(fmt.Sprintf("ATS Score: %d/100\n", result.ATSScore))
	output.WriteString(fmt.Sprintf("Job Match: %d%%\n\n", result.JobMatchPercent))

	output.WriteString("Summary:\n")
	output.WriteString(result.Summary)
	output.WriteString("\n\n")

	if len(result.DetectedSkills) > 0 {
		output.WriteString("=== DETECTED SKILLS ===\n")
		for _, skill := range result.DetectedSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.MissingSkills) > 0 {
		output.WriteString("=== MISSING SKILLS ===\n")
		for _, skill := range result.MissingSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.ATSFeedback) > 0 {
		output.WriteString("=== ATS FEEDBACK ===\n")
		for _, feedback := range result.ATSFeedback {
			output.WriteString(fmt.Sprintf("- %s\n", feedback))
		}
		output.WriteString("\n")
	}

	if len(result.GrammarIssues) > 0 {
		output.WriteString("=== PHRASING ISSUES ===\n")
		for i, issue := range result.GrammarIssues {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, issue.Original))
			output.WriteString("   Suggestion: ")
			output.WriteString(issue.Corrected)
			output.WriteString("\n\n")
		}
	}

	if len(result.Suggestions) > 0 {
		output.WriteString("=== SUGGESTIONS ===\n")
		for i, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, suggestion))
		}
	}

	return output.String(), nil
}

func (atf *AnalyzeTextFormatter) SupportedType() string {
	return "AnalyzeResumeOutput"
}

// AnalyzeMarkdownFormatter handles markdown formatting for resume analysis results
type AnalyzeMarkdownFormatter struct{}

func (amf *AnalyzeMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnalyzeResumeOutput)
	if !ok {
		return "", fmt.Errorf("expected AnalyzeResumeOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Resume Analysis\n\n")
	output.WriteString(fmt.Sprintf("**ATS Score:** %d/100\n\n", result.ATSScore))
	output.WriteString(fmt.Sprintf("**Job Match:** %d%%\n\n", result.JobMatchPercent))

	output.WriteString("## Summary\n\n")
	output.WriteString(result.Summary)
	output.WriteString("\n\n")

	if len(result.DetectedSkills) > 0 {
		output.WriteString("## Detected Skills\n")
		for _, skill := range result.DetectedSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.MissingSkills) > 0 {
		output.WriteString("## Missing Skills\n")
		for _, skill := range result.MissingSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.ATSFeedback) > 0 {
		output.WriteString("## ATS Feedback\n")
		for _, feedback := range result.ATSFeedback {
			output.WriteString(fmt.Sprintf("- %s\n", feedback))
		}
		output.WriteString("\n")
	}

	if len(result.GrammarIssues) > 0 {
		output.WriteString("## Phrasing Issues\n\n")
		for i, issue := range result.GrammarIssues {
			output.WriteString(fmt.Sprintf("### %d. Original\n\n", i+1))
			output.WriteString(issue.Original)
			output.WriteString("\n\n")
			output.WriteString("**Suggestion:** ")
			output.WriteString(issue.Corrected)
			output.WriteString("\n\n")
		}
	}

	if len(result.Suggestions) > 0 {
		output.WriteString("## Suggestions\n\n")
		for i, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, suggestion))
		}
	}

	return output.String(), nil
}

func (amf *AnalyzeMarkdownFormatter) SupportedType() string {
	return "AnalyzeResumeOutput"
}

// LinkedInTextFormatter handles text formatting for LinkedIn analysis results
type LinkedInTextFormatter struct{}

func (ltf *LinkedInTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.LinkedInAnalysisOutput)
	if !ok {
		return "", fmt.Errorf("expected LinkedInAnalysisOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== LINKEDIN PROFILE ANALYSIS ===\n\n")
	output.WriteString(fmt.Sprintf("Profile Score: %d/100\n", result.ProfileScore))
	output.WriteString(fmt.Sprintf("Percentile Rank: Top %d%%\n", 100-result.Percentile))
	output.WriteString(fmt.Sprintf("Visibility Multiplier: %.1fx\n\n", result.VisibilityMultiplier))

	output.WriteString("=== SECTION SCORES ===\n")
	output.WriteString(fmt.Sprintf("Completeness: %d/100\n", result.CompletenessScore))
	output.WriteString(fmt.Sprintf("Visibility: %d/100 (%s)\n", result.VisibilityScore, result.VisibilityRating))
	output.WriteString(fmt.Sprintf("Branding: %d/100\n", result.BrandingScore))
	output.WriteString(fmt.Sprintf("Optimization: %d/100\n", result.OptimizationScore))
	output.WriteString(fmt.Sprintf("Headline: %d/100 (%s)\n", result.HeadlineScore, result.HeadlineQuality))
	output.WriteString(fmt.Sprintf("About: %d/100 (%s)\n", result.AboutScore, result.AboutQuality))
	output.WriteString(fmt.Sprintf("Engagement: %d/100\n\n", result.EngagementScore))

	if len(result.Strengths) > 0 {
		output.WriteString("=== STRENGTHS ===\n")
		for _, strength := range result.Strengths {
			output.WriteString(fmt.Sprintf("- %s\n", strength))
		}
		output.WriteString("\n")
	}

	if len(result.Improvements) > 0 {
		output.WriteString("=== IMPROVEMENTS ===\n")
		for i, improvement := range result.Improvements {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, improvement))
		}
		output.WriteString("\n")
	}

	if len(result.KeywordsToAdd) > 0 {
		output.WriteString("=== KEYWORDS TO ADD ===\n")
		for _, keyword := range result.KeywordsToAdd {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
		output.WriteString("\n")
	}

	if len(result.SampleHeadlines) > 0 {
		output.WriteString("=== SAMPLE HEADLINES ===\n")
		for i, headline := range result.SampleHeadlines {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, headline))
		}
		output.WriteString("\n")
	}

	output.WriteString("=== INDUSTRY POSITIONING ===\n")
	output.WriteString(result.IndustryPositioning)
	output.WriteString("\n\n")

	output.WriteString("=== SUMMARY ===\n")
	output.WriteString(result.FinalSummary)
	output.WriteString("\n")

	return output.String(), nil
}

func (ltf *LinkedInTextFormatter) SupportedType() string {
	return "LinkedInAnalysisOutput"
}

// LinkedInMarkdownFormatter handles markdown formatting for LinkedIn analysis results
type LinkedInMarkdownFormatter struct{}

func (lmf *LinkedInMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.LinkedInAnalysisOutput)
	if !ok {
		return "", fmt.Errorf("expected LinkedInAnalysisOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# LinkedIn Profile Analysis\n\n")
	output.WriteString(fmt.Sprintf("**Profile Score:** %d/100\n\n", result.ProfileScore))
	output.WriteString(fmt.Sprintf("**Percentile Rank:** Top %d%%\n\n", 100-result.Percentile))
	output.WriteString(fmt.Sprintf("**Visibility Multiplier:** %.1fx\n\n", result.VisibilityMultiplier))

	output.WriteString("## Section Scores\n\n")
	output.WriteString(fmt.Sprintf("- Completeness: %d/100\n", result.CompletenessScore))
	output.WriteString(fmt.Sprintf("- Visibility: %d/100 (%s)\n", result.VisibilityScore, result.VisibilityRating))
	output.WriteString(fmt.Sprintf("- Branding: %d/100\n", result.BrandingScore))
	output.WriteString(fmt.Sprintf("- Optimization: %d/100\n", result.OptimizationScore))
	output.WriteString(fmt.Sprintf("- Headline: %d/100 (%s)\n", result.HeadlineScore, result.HeadlineQuality))
	output.WriteString(fmt.Sprintf("- About: %d/100 (%s)\n", result.AboutScore, result.AboutQuality))
	output.WriteString(fmt.Sprintf("- Engagement: %d/100\n\n", result.EngagementScore))

	if len(result.Strengths) > 0 {
		output.WriteString("## Strengths\n")
		for _, strength := range result.Strengths {
			output.WriteString(fmt.Sprintf("- %s\n", strength))
		}
		output.WriteString("\n")
	}

	if len(result.Improvements) > 0 {
		output.WriteString("## Improvements\n")
		for i, improvement := range result.Improvements {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, improvement))
		}
		output.WriteString("\n")
	}

	if len(result.KeywordsToAdd) > 0 {
		output.WriteString("## Keywords to Add\n")
		for _, keyword := range result.KeywordsToAdd {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
		output.WriteString("\n")
	}

	if len(result.SampleHeadlines) > 0 {
		output.WriteString("## Sample Headlines\n")
		for i, headline := range result.SampleHeadlines {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, headline))
		}
		output.WriteString("\n")
	}

	if len(result.SampleSummaryPoints) > 0 {
		output.WriteString("## Sample Summary Points\n")
		for _, point := range result.SampleSummaryPoints {
			output.WriteString(fmt.Sprintf("- %s\n", point))
		}
		output.WriteString("\n")
	}

	// Positioning and final summary are already markdown
	output.WriteString(result.IndustryPositioning)
	output.WriteString("\n\n")
	output.WriteString(result.FinalSummary)
	output.WriteString("\n")

	return output.String(), nil
}

func (lmf *LinkedInMarkdownFormatter) SupportedType() string {
	return "LinkedInAnalysisOutput"
}

// RoleListTextFormatter handles text formatting for the role catalog
type RoleListTextFormatter struct{}

func (rtf *RoleListTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.RoleList)
	if !ok {
		return "", fmt.Errorf("expected RoleList, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== AVAILABLE ROLES ===\n\n")
	for _, role := range result.Roles {
		output.WriteString(fmt.Sprintf("%-25s %s\n", role.ID, role.Title))
	}

	return output.String(), nil
}

func (rtf *RoleListTextFormatter) SupportedType() string {
	return "RoleList"
}

// RoleListMarkdownFormatter handles markdown formatting for the role catalog
type RoleListMarkdownFormatter struct{}

func (rmf *RoleListMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.RoleList)
	if !ok {
		return "", fmt.Errorf("expected RoleList, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Available Roles\n\n")
	output.WriteString("| ID | Title |\n")
	output.WriteString("|----|-------|\n")
	for _, role := range result.Roles {
		output.WriteString(fmt.Sprintf("| %s | %s |\n", role.ID, role.Title))
	}

	return output.String(), nil
}

func (rmf *RoleListMarkdownFormatter) SupportedType() string {
	return "RoleList"
}

// InterviewGuideTextFormatter handles text formatting for interview guides
type InterviewGuideTextFormatter struct{}

func (itf *InterviewGuideTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.InterviewGuide)
	if !ok {
		return "", fmt.Errorf("expected InterviewGuide, got %T", data)
	}

	var output strings.Builder

	output.WriteString(fmt.Sprintf("=== INTERVIEW GUIDE: %s ===\n\n", strings.ToUpper(result.Title)))

	output.WriteString("=== PREPARATION TIPS ===\n")
	for i, tip := range result.Tips {
		output.WriteString(fmt.Sprintf("%d. %s\n", i+1, tip))
	}
	output.WriteString("\n")

	output.WriteString("=== COMMON QUESTIONS ===\n")
	for i, question := range result.Questions {
		output.WriteString(fmt.Sprintf("%d. %s\n", i+1, question))
	}

	return output.String(), nil
}

func (itf *InterviewGuideTextFormatter) SupportedType() string {
	return "InterviewGuide"
}

// InterviewGuideMarkdownFormatter handles markdown formatting for interview guides
type InterviewGuideMarkdownFormatter struct{}

func (imf *InterviewGuideMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.InterviewGuide)
	if !ok {
		return "", fmt.Errorf("expected InterviewGuide, got %T", data)
	}

	var output strings.Builder

	output.WriteString(fmt.Sprintf("# Interview Guide: %s\n\n", result.Title))

	output.WriteString("## Preparation Tips\n\n")
	for i, tip := range result.Tips {
		output.WriteString(fmt.Sprintf("%d. %s\n", i+1, tip))
	}
	output.WriteString("\n")

	output.WriteString("## Common Questions\n\n")
	for i, question := range result.Questions {
		output.WriteString(fmt.Sprintf("%d. %s\n", i+1, question))
	}

	return output.String(), nil
}

func (imf *InterviewGuideMarkdownFormatter) SupportedType() string {
	return "InterviewGuide"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
