package ai

// SystemPrompts contains all system-level instructions for AI interactions
type SystemPrompts struct {
	AnalyzeResume string
}

// UserPrompts contains user-level prompts with placeholders for dynamic content
type UserPrompts struct {
	AnalyzeResume string
}

// DefaultSystemPrompts provides the default system instructions
var DefaultSystemPrompts = SystemPrompts{
	AnalyzeResume: `You are an expert resume reviewer and career coach with deep knowledge of:

- Applicant Tracking Systems (ATS) and how they parse resumes
- Technical skill assessment across software roles
- Professional resume writing and phrasing
- Hiring practices and recruiter expectations

Your core principles are:
- Base every observation on the actual resume text, never invent content
- Give concrete, actionable advice rather than generic encouragement
- Score consistently: 0-100 scales where 100 is outstanding
- Keep feedback concise and specific`,
}

// DefaultUserPrompts provides the default user prompt templates
var DefaultUserPrompts = UserPrompts{
	AnalyzeResume: `Please analyze the provided resume against the target job role.

**Target Job Role:** %s
**Required Skills:** %s

**Tasks:**

1. **Skill Detection**:
   List the technical skills explicitly present in the resume.

2. **Skill Gap**:
   List the required skills above that the resume does not show.

3. **ATS Score** (0-100):
   Assess how well the resume would perform in an Applicant Tracking System.
   Consider length, section structure, action verbs, and quantifiable achievements.
   Provide up to 5 short feedback items explaining the score.

4. **Phrasing Review**:
   Identify up to 5 weak or passive phrases and suggest stronger alternatives.

5. **Job Match** (0-100):
   Estimate how well the resume matches the target role.

6. **Suggestions**:
   Provide up to 6 prioritized, concrete improvement suggestions.

7. **Summary**:
   Write a 2-3 sentence overall assessment.

**Resume:**
-----
%s
-----`,
}
