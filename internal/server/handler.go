package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"resumelens/internal/ai"
	"resumelens/internal/analysis"
	"resumelens/internal/catalog"
	"resumelens/internal/linkedin"
	"resumelens/internal/observability"
	"resumelens/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// createAnalyzeHandler wraps the resume analysis handler with observability
func (s *Server) createAnalyzeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.analyze")
		defer span.End()

		// Parse request
		var req AnalyzeRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		// Validation. The job role is optional: unknown or empty roles fall
		// back to the catalog default inside the engine.
		if strings.TrimSpace(req.ResumeText) == "" {
			err := fmt.Errorf("missing resume text")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume text", "resumeText field is required", http.StatusBadRequest)
			return
		}

		// Size validation
		if len(req.ResumeText) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("resume text too large: %d chars", len(req.ResumeText))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Resume text too large", fmt.Sprintf("resumeText exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}

		// Add request attributes to span
		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.String("request.job_role", req.JobRole),
			attribute.String("ai.mode", s.AppConfig.AI.Mode),
			attribute.String("operation", "analyze"),
		)

		input := types.AnalyzeResumeInput{
			ResumeText: req.ResumeText,
			JobRole:    req.JobRole,
		}

		metrics := om.GetMetrics()
		engine := analysis.NewEngine(s.Logger)

		var result *types.AnalyzeResumeOutput
		var err error

		if s.AppConfig.AI.Mode == "gemini" {
			// Delegated mode: the engine tries the AI provider first and
			// falls back to the local heuristic result.
			analyzeConfig := s.AppConfig.GetAnalyzeConfig()
			aiService, svcErr := ai.NewService(&analyzeConfig, "analyze", s.Logger)
			if svcErr != nil {
				span.RecordError(svcErr)
				span.SetAttributes(attribute.String("error.type", "service_creation"))
				writeErrorResponse(w, "Failed to create AI service", svcErr.Error(), http.StatusInternalServerError)
				return
			}

			var tokenUsage *ai.TokenUsage
			engine.SetDelegate(func(ctx context.Context, in types.AnalyzeResumeInput) (*types.AnalyzeResumeOutput, error) {
				output, usage, aiErr := aiService.Provider.AnalyzeResume(ctx, in)
				tokenUsage = usage
				if aiErr != nil {
					return nil, aiErr
				}
				return &output, nil
			})

			// Track AI operation with observability and token usage
			err = metrics.TrackAIOperationWithTokens(ctx, "analyze", func(ctx context.Context) *observability.AIOperationResult {
				output, engineErr := engine.Analyze(ctx, input)
				result = output
				return &observability.AIOperationResult{
					Error:      engineErr,
					TokenUsage: (*observability.TokenUsage)(tokenUsage),
				}
			}, om)
		} else {
			result, err = engine.Analyze(ctx, input)
		}

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "analysis"))
			metrics.RecordBusinessMetric(ctx, "resume_analyzed", false, om,
				attribute.String("error", err.Error()))
			writeErrorResponse(w, "Failed to analyze resume", err.Error(), http.StatusInternalServerError)
			return
		}

		// The engine signals a fallback by tagging the summary
		if strings.HasSuffix(result.Summary, analysis.FallbackSummarySuffix) {
			metrics.RecordBusinessMetric(ctx, "fallback_analysis", true, om,
				attribute.String("operation", "analyze"))
			span.SetAttributes(attribute.Bool("analysis.fallback", true))
		}

		// Record success metrics
		metrics.RecordBusinessMetric(ctx, "resume_analyzed", true, om,
			attribute.Int("ats.score", result.ATSScore),
			attribute.Int("job_match.percent", result.JobMatchPercent),
			attribute.Int("detected_skills.count", len(result.DetectedSkills)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("ats.score", result.ATSScore),
			attribute.Int("job_match.percent", result.JobMatchPercent),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createLinkedInHandler wraps the LinkedIn profile analysis handler with observability
func (s *Server) createLinkedInHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.linkedin")
		defer span.End()

		var req types.LinkedInProfileInput
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		// Validation: some profile content is required
		if strings.TrimSpace(req.ProfileText) == "" &&
			strings.TrimSpace(req.Headline) == "" &&
			strings.TrimSpace(req.About) == "" {
			err := fmt.Errorf("missing profile content")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing profile content", "at least one of profile_text, headline, or about is required", http.StatusBadRequest)
			return
		}

		// Size validation
		if len(req.ProfileText) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("profile text too large: %d chars", len(req.ProfileText))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Profile text too large", fmt.Sprintf("profile_text exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.profile_length", len(req.ProfileText)),
			attribute.String("request.industry", req.Industry),
			attribute.String("operation", "linkedin"),
		)

		analyzer := linkedin.NewAnalyzer(s.Logger)
		result := analyzer.Analyze(req)

		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(ctx, "profile_analyzed", true, om,
			attribute.Int("profile.score", result.ProfileScore),
			attribute.Int("profile.percentile", result.Percentile))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("profile.score", result.ProfileScore),
			attribute.Int("profile.percentile", result.Percentile),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// rolesHandler lists the job roles known to the catalog
func (s *Server) rolesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(catalog.Roles()); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// tipsHandler returns interview preparation material for a role. The role is
// selected with the "role" query parameter and defaults to the catalog default.
func (s *Server) tipsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	role := r.URL.Query().Get("role")
	if role == "" {
		role = catalog.DefaultRoleID
	}
	if !catalog.HasRole(role) {
		writeErrorResponse(w, "Unknown role", fmt.Sprintf("role %q is not in the catalog (see /roles)", role), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(catalog.InterviewGuide(role)); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Check if this request was rate limited by examining the response
			// We'll wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
