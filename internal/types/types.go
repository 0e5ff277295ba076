package types

// AnalyzeResumeInput represents the input for analyzing a resume against a role
type AnalyzeResumeInput struct {
	ResumeText string `json:"resume_text"`
	JobRole    string `json:"job_role"`
}

// GrammarIssue represents a single phrasing problem with a suggested fix
type GrammarIssue struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
}

// AnalyzeResumeOutput represents the full resume analysis result
type AnalyzeResumeOutput struct {
	DetectedSkills  []string       `json:"detected_skills"`
	MissingSkills   []string       `json:"missing_skills"`
	ATSScore        int            `json:"ats_score"`
	ATSFeedback     []string       `json:"ats_feedback"`
	GrammarIssues   []GrammarIssue `json:"grammar_issues"`
	JobMatchPercent int            `json:"job_match_percent"`
	Suggestions     []string       `json:"suggestions"`
	Summary         string         `json:"summary"`
}

// RoleInfo identifies a role available in the catalog
type RoleInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// RoleList is the catalog listing returned by the roles operation
type RoleList struct {
	Roles []RoleInfo `json:"roles"`
}

// InterviewGuide holds preparation material for a role
type InterviewGuide struct {
	Role      string   `json:"role"`
	Title     string   `json:"title"`
	Tips      []string `json:"tips"`
	Questions []string `json:"questions"`
}

// LinkedInProfileInput represents the input for LinkedIn profile analysis
type LinkedInProfileInput struct {
	ProfileURL  string   `json:"profile_url"`
	ProfileText string   `json:"profile_text"`
	Headline    string   `json:"headline"`
	About       string   `json:"about"`
	Experience  string   `json:"experience"`
	Education   string   `json:"education"`
	Skills      []string `json:"skills"`
	CurrentRole string   `json:"current_role"`
	Industry    string   `json:"industry"`
}

// ProfileChecklist tracks the completeness signals used for scoring
type ProfileChecklist struct {
	ProfessionalHeadline bool `json:"has_professional_headline"`
	DetailedSummary      bool `json:"has_detailed_summary"`
	ExperienceMetrics    bool `json:"has_experience_metrics"`
	SufficientKeywords   bool `json:"has_sufficient_keywords"`
	CustomURL            bool `json:"has_custom_url"`
}

// SectionFeedback holds the review of a single profile section
type SectionFeedback struct {
	Score       int    `json:"score"`
	Rating      string `json:"rating"`
	Feedback    string `json:"feedback"`
	Strength    string `json:"strength"`
	Improvement string `json:"improvement"`
}

// LinkedInAnalysisOutput represents the full LinkedIn profile analysis result
type LinkedInAnalysisOutput struct {
	ProfileScore         int                        `json:"profile_score"`
	CompletenessScore    int                        `json:"completeness_score"`
	VisibilityScore      int                        `json:"visibility_score"`
	BrandingScore        int                        `json:"branding_score"`
	OptimizationScore    int                        `json:"optimization_score"`
	HeadlineScore        int                        `json:"headline_score"`
	AboutScore           int                        `json:"about_score"`
	EngagementScore      int                        `json:"engagement_score"`
	HeadlineQuality      string                     `json:"headline_quality"`
	AboutQuality         string                     `json:"about_quality"`
	VisibilityRating     string                     `json:"visibility_rating"`
	Strengths            []string                   `json:"strengths"`
	Improvements         []string                   `json:"improvements"`
	KeywordsToAdd        []string                   `json:"keywords_to_add"`
	SampleHeadlines      []string                   `json:"sample_headlines"`
	SampleSummaryPoints  []string                   `json:"sample_summary_points"`
	ProfileChecklist     ProfileChecklist           `json:"completeness_checklist"`
	SectionFeedback      map[string]SectionFeedback `json:"section_feedback"`
	IndustryPositioning  string                     `json:"industry_positioning"`
	FinalSummary         string                     `json:"final_summary"`
	Percentile           int                        `json:"percentile_rank"`
	VisibilityMultiplier float64                    `json:"visibility_multiplier"`
	OverallRating        float64                    `json:"overall_rating"`
	CurrentHeadline      string                     `json:"current_headline"`
	CurrentAboutPreview  string                     `json:"current_about_preview"`
	Summary              string                     `json:"summary"`
}
