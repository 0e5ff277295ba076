package cli

import (
	"fmt"

	"resumelens/internal/catalog"
	"resumelens/internal/common"
	"resumelens/internal/errors"

	"github.com/spf13/cobra"
)

var tipsCmd = &cobra.Command{
	Use:   "tips [role]",
	Short: "Show interview preparation tips and questions for a role",
	Long: `Show interview preparation material for a job role: practical tips for
getting ready and the questions candidates are most likely to face.

Without an argument the default role (software_engineer) is used. Run
'resumelens roles' to see the available role ids.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if tipsConfig.OutputFormat == "" {
			tipsConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(tipsConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runTips,
}

var tipsConfig common.CommandConfig

func init() {
	tipsCmd.Flags().StringVarP(&tipsConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	tipsCmd.Flags().StringVar(&tipsConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
}

func runTips(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	role := catalog.DefaultRoleID
	if len(args) == 1 {
		role = args[0]
	}
	if !catalog.HasRole(role) {
		return errors.NewValidationError(errors.ErrCodeUnknownRole,
			fmt.Sprintf("Unknown role %q, run 'resumelens roles' to list available roles", role), nil)
	}

	outputHandler := common.NewOutputHandler(logger)
	return outputHandler.HandleOutput(catalog.InterviewGuide(role), tipsConfig)
}
