package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global flags
var jsonOutput bool

// rootCmd is the root command for encheck.
var rootCmd = &cobra.Command{
	Use:     "encheck",
	Version: "dev",
	Short:   "Instruction-encoding conflict validator",
	Long: `encheck checks a proposed 32-bit instruction encoding against a catalog of
existing encodings and reports every entry whose decode space overlaps it.

Encodings are given as 32-character bit-pattern tokens over {0,1,-} or as
explicit match/mask hex pairs; each reported conflict is classified and
comes with a concrete witness word proving the overlap.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// SetVersion overrides the version reported by the root command.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "validation",
		Title: "Validation:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "catalog-inspection",
		Title: "Catalog Inspection:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "cli-tooling",
		Title: "CLI & Tooling:",
	})

	// CLI & Tooling commands
	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the encheck CLI version",
		Args:    cobra.NoArgs,
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(os.Stdout, rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	helpCmd := &cobra.Command{
		Use:     "help [command]",
		Short:   "Help about any command",
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Root().Help()
		},
	}
	rootCmd.SetHelpCommand(helpCmd)

	completionCmd := &cobra.Command{
		Use:     "completion",
		Short:   "Generate the autocompletion script for the specified shell",
		GroupID: "cli-tooling",
		Long: `Generate the autocompletion script for encheck for the specified shell.
See each sub-command's help for details on how to use the generated script.`,
	}
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "bash",
		Short:                 "Generate the autocompletion script for bash",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenBashCompletion(os.Stdout)
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "zsh",
		Short:                 "Generate the autocompletion script for zsh",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenZshCompletion(os.Stdout)
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "fish",
		Short:                 "Generate the autocompletion script for fish",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenFishCompletion(os.Stdout, true)
		},
	})
	rootCmd.AddCommand(completionCmd)

	// Validation commands
	checkCmd.GroupID = "validation"
	parseCmd.GroupID = "validation"
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(parseCmd)

	// Catalog Inspection commands
	catalogCmd.GroupID = "catalog-inspection"
	rootCmd.AddCommand(catalogCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
