package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"resumelens/internal/catalog"
	"resumelens/internal/errors"
	"resumelens/internal/types"
)

// FallbackSummarySuffix is appended to the heuristic summary when a
// delegated analysis had to fall back to local scoring
const FallbackSummarySuffix = " (Using local analysis - API unavailable)"

const (
	defaultMaxAttempts = 3
	defaultRetryDelay  = time.Second
)

// DelegateFunc performs the analysis through an external AI provider. It
// must return the same payload shape the heuristic path produces.
type DelegateFunc func(ctx context.Context, input types.AnalyzeResumeInput) (*types.AnalyzeResumeOutput, error)

// Engine orchestrates resume analysis. Without a delegate it scores
// heuristically; with one it tries the delegate first and falls back to the
// heuristic result when the delegate cannot produce a usable payload.
type Engine struct {
	lexicon     *catalog.Lexicon
	logger      *errors.Logger
	delegate    DelegateFunc
	maxAttempts int
	retryDelay  time.Duration
}

// NewEngine creates a heuristic-only analysis engine
func NewEngine(logger *errors.Logger) *Engine {
	return &Engine{
		lexicon:     catalog.DefaultLexicon(),
		logger:      logger,
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
	}
}

// SetDelegate enables delegated analysis through the given function
func (e *Engine) SetDelegate(fn DelegateFunc) {
	e.delegate = fn
}

// Analyze runs the full analysis for a resume against a role. In delegated
// mode transient failures (rate limiting, timeouts) and malformed payloads
// are retried with a doubling delay; permanent failures stop immediately.
// Exhausting the delegate never fails the operation: the heuristic result
// is returned with the fallback suffix on its summary.
func (e *Engine) Analyze(ctx context.Context, input types.AnalyzeResumeInput) (*types.AnalyzeResumeOutput, error) {
	if e.delegate == nil {
		return e.Heuristic(input), nil
	}

	delay := e.retryDelay
	var lastErr error
	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		result, err := e.delegate(ctx, input)
		if err == nil {
			err = validateDelegateResult(result)
			if err == nil {
				return result, nil
			}
		}
		lastErr = err

		if !isRetryableDelegateError(err) {
			e.logger.Warn("Delegated analysis failed permanently, falling back",
				"attempt", attempt, "error", err.Error())
			break
		}
		if attempt == e.maxAttempts {
			break
		}

		e.logger.Warn("Delegated analysis failed, retrying",
			"attempt", attempt, "retry_delay", delay.String(), "error", err.Error())
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	e.logger.Warn("Delegated analysis exhausted, using heuristic fallback",
		"error", lastErr.Error())
	result := e.Heuristic(input)
	result.Summary += FallbackSummarySuffix
	return result, nil
}

// Heuristic scores the resume locally. It is the complete analysis in its
// own right and also serves as the fallback for delegated mode.
func (e *Engine) Heuristic(input types.AnalyzeResumeInput) *types.AnalyzeResumeOutput {
	role := catalog.Role(input.JobRole)

	detected := e.lexicon.Detect(input.ResumeText)
	skillCount := len(detected)

	matchPercent, missing := MatchRole(detected, role)
	atsScore, atsFeedback := ScoreATS(input.ResumeText, detected)
	grammarIssues := CritiquePhrasing(input.ResumeText)
	suggestions := Suggest(input.ResumeText, missing, atsScore, skillCount)

	summary := buildSummary(role, skillCount, matchPercent, atsScore, len(missing) == 0)

	if len(detected) == 0 {
		detected = []string{"No specific skills detected - add a skills section"}
	}
	if len(missing) == 0 {
		missing = []string{"None - all required skills present! 🎉"}
	}

	return &types.AnalyzeResumeOutput{
		DetectedSkills:  detected,
		MissingSkills:   missing,
		ATSScore:        atsScore,
		ATSFeedback:     atsFeedback,
		GrammarIssues:   grammarIssues,
		JobMatchPercent: matchPercent,
		Suggestions:     suggestions,
		Summary:         summary,
	}
}

func buildSummary(role catalog.RoleProfile, skillCount, matchPercent, atsScore int, fullMatch bool) string {
	if fullMatch {
		return fmt.Sprintf("Excellent! Resume contains all %d required skills for %s. "+
			"Strong skill alignment - focus on highlighting experience and achievements.",
			skillCount, role.Title)
	}

	summary := fmt.Sprintf("Resume shows %d relevant skills with %d%% match for %s. ",
		skillCount, matchPercent, role.Title)
	switch {
	case atsScore >= 70:
		summary += "Good ATS compatibility - focus on adding missing skills."
	case atsScore >= 50:
		summary += "Moderate ATS score - improve structure and add quantifiable achievements."
	default:
		summary += "Needs improvement - restructure with clear sections and more keywords."
	}
	return summary
}

// validateDelegateResult checks that a delegated payload is complete enough
// to hand to callers. Incomplete payloads are retried like transport errors.
func validateDelegateResult(result *types.AnalyzeResumeOutput) error {
	if result == nil {
		return errors.NewAIError(errors.ErrCodeAIInvalidResponse, "delegate returned no result", nil)
	}
	if result.ATSScore < 0 || result.ATSScore > 100 {
		return errors.NewAIError(errors.ErrCodeAIInvalidResponse,
			fmt.Sprintf("ats_score out of range: %d", result.ATSScore), nil)
	}
	if result.JobMatchPercent < 0 || result.JobMatchPercent > 100 {
		return errors.NewAIError(errors.ErrCodeAIInvalidResponse,
			fmt.Sprintf("job_match_percent out of range: %d", result.JobMatchPercent), nil)
	}
	if result.Summary == "" {
		return errors.NewAIError(errors.ErrCodeAIInvalidResponse, "summary field is empty", nil)
	}
	return nil
}

// isRetryableDelegateError reports whether a delegate failure is worth
// another attempt: malformed payloads, rate limiting, and timeouts are;
// everything else (auth failures, bad requests) is not.
func isRetryableDelegateError(err error) bool {
	if err == nil {
		return false
	}
	if appErr, ok := err.(*errors.AppError); ok {
		switch appErr.Code {
		case errors.ErrCodeAIInvalidResponse, errors.ErrCodeAITimeout, errors.ErrCodeNetworkTimeout:
			return true
		}
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "rate_limit") ||
		strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "timeout")
}
