package cli

import (
	"context"
	"fmt"

	"resumelens/internal/ai"
	"resumelens/internal/analysis"
	"resumelens/internal/common"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [resume-file]",
	Short: "Analyze a resume against a target job role",
	Long: `Analyze a resume to evaluate how well it fits a target job role.

The analysis includes:
- Detected and missing skills for the role
- ATS compatibility scoring with feedback
- Weighted job match percentage
- Phrasing critique with suggested rewrites
- Actionable improvement suggestions

In heuristic mode the analysis runs entirely locally. In gemini mode the
analysis is delegated to the AI provider, with the local engine as fallback.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if analyzeConfig.OutputFormat == "" {
			analyzeConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(analyzeConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAnalyze,
}

var (
	analyzeConfig common.CommandConfig
	analyzeRole   string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	analyzeCmd.Flags().StringVarP(&analyzeRole, "role", "r", "", "Target job role id (default: software_engineer, see 'resumelens roles')")

	// Add completion for format flag
	_ = analyzeCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	engine := analysis.NewEngine(logger)

	// In gemini mode the engine delegates to the AI provider and keeps the
	// heuristic result as fallback
	var tokenUsage *ai.TokenUsage
	if cfg.AI.Mode == "gemini" {
		analyzeAIConfig := cfg.GetAnalyzeConfig()
		aiService, err := ai.NewService(&analyzeAIConfig, "analyze", logger)
		if err != nil {
			return fmt.Errorf("failed to create AI service: %w", err)
		}
		engine.SetDelegate(func(ctx context.Context, input types.AnalyzeResumeInput) (*types.AnalyzeResumeOutput, error) {
			output, usage, aiErr := aiService.Provider.AnalyzeResume(ctx, input)
			tokenUsage = usage
			if aiErr != nil {
				return nil, aiErr
			}
			return &output, nil
		})
	}

	createInput := func(contents []string) (types.AnalyzeResumeInput, error) {
		if len(contents) != 1 {
			return types.AnalyzeResumeInput{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return types.AnalyzeResumeInput{
			ResumeText: contents[0],
			JobRole:    analyzeRole,
		}, nil
	}

	logDetails := func(input types.AnalyzeResumeInput, cfg common.CommandConfig) {
		logger.Info("Starting resume analysis",
			"resume_chars", len(input.ResumeText),
			"job_role", input.JobRole,
			"output_format", cfg.OutputFormat)
	}

	analyzeOperation := func(ctx context.Context, input types.AnalyzeResumeInput) (types.AnalyzeResumeOutput, *ai.TokenUsage, error) {
		result, err := engine.Analyze(ctx, input)
		if err != nil {
			return types.AnalyzeResumeOutput{}, nil, err
		}
		return *result, tokenUsage, nil
	}

	err := common.RunAnalysisCommand(
		cmd.Context(),
		logger,
		analyzeConfig,
		args,
		createInput,
		analyzeOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to analyze resume: %w", err)
	}
	logger.Info("Resume analysis completed successfully")
	return nil
}
