package cli

import (
	"context"
	"fmt"

	"resumelens/internal/ai"
	"resumelens/internal/common"
	"resumelens/internal/linkedin"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var linkedinCmd = &cobra.Command{
	Use:   "linkedin [profile-file]",
	Short: "Analyze a LinkedIn profile for visibility and completeness",
	Long: `Analyze a LinkedIn profile text export and score it across seven
dimensions: completeness, visibility, branding, keyword optimization,
headline, about section, and engagement potential.

The analysis runs entirely locally and includes:
- Overall profile score with percentile rank
- Per-section feedback with concrete improvements
- Keywords to add and sample headlines
- Industry positioning guidance`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if linkedinConfig.OutputFormat == "" {
			linkedinConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(linkedinConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runLinkedIn,
}

var (
	linkedinConfig      common.CommandConfig
	linkedinURL         string
	linkedinIndustry    string
	linkedinCurrentRole string
)

func init() {
	linkedinCmd.Flags().StringVarP(&linkedinConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	linkedinCmd.Flags().StringVar(&linkedinConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	linkedinCmd.Flags().StringVar(&linkedinURL, "url", "", "Profile URL (used for custom URL detection)")
	linkedinCmd.Flags().StringVar(&linkedinIndustry, "industry", "", "Industry for keyword and positioning guidance")
	linkedinCmd.Flags().StringVar(&linkedinCurrentRole, "current-role", "", "Current role for headline suggestions")

	_ = linkedinCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runLinkedIn(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	analyzer := linkedin.NewAnalyzer(logger)

	createInput := func(contents []string) (types.LinkedInProfileInput, error) {
		if len(contents) != 1 {
			return types.LinkedInProfileInput{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return types.LinkedInProfileInput{
			ProfileText: contents[0],
			ProfileURL:  linkedinURL,
			Industry:    linkedinIndustry,
			CurrentRole: linkedinCurrentRole,
		}, nil
	}

	logDetails := func(input types.LinkedInProfileInput, cfg common.CommandConfig) {
		logger.Info("Starting LinkedIn profile analysis",
			"profile_chars", len(input.ProfileText),
			"industry", input.Industry,
			"output_format", cfg.OutputFormat)
	}

	// Profile analysis is purely heuristic, so there is never token usage
	linkedinOperation := func(ctx context.Context, input types.LinkedInProfileInput) (types.LinkedInAnalysisOutput, *ai.TokenUsage, error) {
		return *analyzer.Analyze(input), nil, nil
	}

	err := common.RunAnalysisCommand(
		cmd.Context(),
		logger,
		linkedinConfig,
		args,
		createInput,
		linkedinOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to analyze LinkedIn profile: %w", err)
	}
	logger.Info("LinkedIn profile analysis completed successfully")
	return nil
}
