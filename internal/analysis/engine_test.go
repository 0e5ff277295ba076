package analysis

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"testing"
	"time"

	"resumelens/internal/errors"
	"resumelens/internal/types"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	logger, err := errors.New("error")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	engine := NewEngine(logger)
	engine.retryDelay = time.Millisecond
	return engine
}

func TestHeuristicFullMatch(t *testing.T) {
	engine := newTestEngine(t)

	input := types.AnalyzeResumeInput{
		ResumeText: "Python, JavaScript, React, Node.js, SQL, Git, REST API development, Data structures, Algorithms, Problem solving, OOP",
		JobRole:    "software_engineer",
	}
	result := engine.Heuristic(input)

	wantDetected := []string{"Python", "Javascript", "React", "Node.Js", "Sql", "Git", "Rest Api", "Data Structures", "Algorithms", "Problem Solving", "Oop"}
	for _, skill := range wantDetected {
		if !slices.Contains(result.DetectedSkills, skill) {
			t.Errorf("detected %v, missing %q", result.DetectedSkills, skill)
		}
	}
	if result.JobMatchPercent != 100 {
		t.Errorf("job match = %d, want 100", result.JobMatchPercent)
	}
	if len(result.MissingSkills) != 1 || !strings.HasPrefix(result.MissingSkills[0], "None - all required skills present!") {
		t.Errorf("missing skills = %v, want the all-present placeholder", result.MissingSkills)
	}
	if !strings.HasPrefix(result.Summary, "Excellent! Resume contains all ") {
		t.Errorf("summary = %q, want the full-match opener", result.Summary)
	}
}

func TestHeuristicEmptyText(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Heuristic(types.AnalyzeResumeInput{ResumeText: "", JobRole: "software_engineer"})

	if result.ATSScore != 5 {
		t.Errorf("ats score = %d, want 5", result.ATSScore)
	}
	if result.JobMatchPercent != 0 {
		t.Errorf("job match = %d, want 0", result.JobMatchPercent)
	}
	if len(result.DetectedSkills) != 1 || result.DetectedSkills[0] != "No specific skills detected - add a skills section" {
		t.Errorf("detected = %v, want the no-skills placeholder", result.DetectedSkills)
	}
	if len(result.MissingSkills) != 10 {
		t.Errorf("missing has %d entries, want all 10 required skills", len(result.MissingSkills))
	}
	if result.Summary == "" {
		t.Error("summary must not be empty")
	}
}

func TestHeuristicScoreBounds(t *testing.T) {
	engine := newTestEngine(t)

	texts := []string{
		"",
		"short",
		strings.Repeat("python sql docker kubernetes developed improved 30% ", 100),
		"I am responsible for everything and was created to work on things",
	}
	for _, text := range texts {
		for _, role := range []string{"software_engineer", "data_analyst", "web_developer", "ml_engineer", "devops_engineer", "unknown"} {
			result := engine.Heuristic(types.AnalyzeResumeInput{ResumeText: text, JobRole: role})
			if result.ATSScore < 0 || result.ATSScore > 100 {
				t.Errorf("ats score %d out of range for role %s", result.ATSScore, role)
			}
			if result.JobMatchPercent < 0 || result.JobMatchPercent > 100 {
				t.Errorf("job match %d out of range for role %s", result.JobMatchPercent, role)
			}
			if len(result.Suggestions) > 6 {
				t.Errorf("%d suggestions for role %s, want at most 6", len(result.Suggestions), role)
			}
			if len(result.ATSFeedback) > 5 {
				t.Errorf("%d feedback items for role %s, want at most 5", len(result.ATSFeedback), role)
			}
		}
	}
}

func TestAnalyzeWithoutDelegate(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.Analyze(context.Background(), types.AnalyzeResumeInput{
		ResumeText: "Python developer",
		JobRole:    "software_engineer",
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if strings.HasSuffix(result.Summary, FallbackSummarySuffix) {
		t.Error("heuristic-only analysis must not carry the fallback suffix")
	}
}

func TestAnalyzeDelegateSuccess(t *testing.T) {
	engine := newTestEngine(t)

	want := &types.AnalyzeResumeOutput{
		DetectedSkills:  []string{"Python"},
		MissingSkills:   []string{"SQL"},
		ATSScore:        80,
		ATSFeedback:     []string{"Looks good"},
		GrammarIssues:   []types.GrammarIssue{{Original: "x", Corrected: "y"}},
		JobMatchPercent: 60,
		Suggestions:     []string{"Learn SQL"},
		Summary:         "Solid resume.",
	}
	engine.SetDelegate(func(ctx context.Context, input types.AnalyzeResumeInput) (*types.AnalyzeResumeOutput, error) {
		return want, nil
	})

	got, err := engine.Analyze(context.Background(), types.AnalyzeResumeInput{ResumeText: "x", JobRole: "software_engineer"})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if got.Summary != want.Summary {
		t.Errorf("summary = %q, want delegate result", got.Summary)
	}
}

func TestAnalyzePermanentErrorFallsBackImmediately(t *testing.T) {
	engine := newTestEngine(t)

	calls := 0
	engine.SetDelegate(func(ctx context.Context, input types.AnalyzeResumeInput) (*types.AnalyzeResumeOutput, error) {
		calls++
		return nil, errors.NewAIError(errors.ErrCodeMissingAPIKey, "authentication failed", nil)
	})

	result, err := engine.Analyze(context.Background(), types.AnalyzeResumeInput{
		ResumeText: "Python developer with SQL",
		JobRole:    "software_engineer",
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v, fallback must not fail", err)
	}
	if calls != 1 {
		t.Errorf("delegate called %d times, want 1 for a permanent error", calls)
	}
	if !strings.HasSuffix(result.Summary, FallbackSummarySuffix) {
		t.Errorf("summary = %q, want fallback suffix", result.Summary)
	}
	if result.ATSScore < 0 || result.ATSScore > 100 {
		t.Errorf("fallback result has invalid ats score %d", result.ATSScore)
	}
	if len(result.DetectedSkills) == 0 || len(result.Suggestions) == 0 {
		t.Error("fallback result must be complete")
	}
}

func TestAnalyzeRetriesTransientErrors(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCalls int
	}{
		{"rate limit text", fmt.Errorf("provider said rate_limit exceeded"), 3},
		{"timeout text", fmt.Errorf("request timeout after 30s"), 3},
		{"malformed payload", errors.NewAIError(errors.ErrCodeAIInvalidResponse, "bad json", nil), 3},
		{"permanent", fmt.Errorf("invalid api key"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestEngine(t)
			calls := 0
			engine.SetDelegate(func(ctx context.Context, input types.AnalyzeResumeInput) (*types.AnalyzeResumeOutput, error) {
				calls++
				return nil, tt.err
			})

			result, err := engine.Analyze(context.Background(), types.AnalyzeResumeInput{
				ResumeText: "Python",
				JobRole:    "software_engineer",
			})
			if err != nil {
				t.Fatalf("Analyze() error = %v", err)
			}
			if calls != tt.wantCalls {
				t.Errorf("delegate called %d times, want %d", calls, tt.wantCalls)
			}
			if !strings.HasSuffix(result.Summary, FallbackSummarySuffix) {
				t.Errorf("summary = %q, want fallback suffix", result.Summary)
			}
		})
	}
}

func TestAnalyzeRejectsInvalidDelegatePayload(t *testing.T) {
	engine := newTestEngine(t)

	engine.SetDelegate(func(ctx context.Context, input types.AnalyzeResumeInput) (*types.AnalyzeResumeOutput, error) {
		return &types.AnalyzeResumeOutput{ATSScore: 250, JobMatchPercent: 50, Summary: "x"}, nil
	})

	result, err := engine.Analyze(context.Background(), types.AnalyzeResumeInput{
		ResumeText: "Python",
		JobRole:    "software_engineer",
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if result.ATSScore < 0 || result.ATSScore > 100 {
		t.Errorf("invalid delegate payload leaked through: ats %d", result.ATSScore)
	}
	if !strings.HasSuffix(result.Summary, FallbackSummarySuffix) {
		t.Errorf("summary = %q, want fallback suffix", result.Summary)
	}
}
