package cli

import (
	"resumelens/internal/catalog"
	"resumelens/internal/common"

	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the job roles known to the catalog",
	Long: `List every job role the analysis catalog knows about, with its id and
display title. Role ids are accepted by 'resumelens analyze --role' and
'resumelens tips'.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if rolesConfig.OutputFormat == "" {
			rolesConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(rolesConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runRoles,
}

var rolesConfig common.CommandConfig

func init() {
	rolesCmd.Flags().StringVarP(&rolesConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	rolesCmd.Flags().StringVar(&rolesConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
}

func runRoles(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	outputHandler := common.NewOutputHandler(logger)
	return outputHandler.HandleOutput(catalog.Roles(), rolesConfig)
}
