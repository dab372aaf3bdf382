package cli

import (
	"github.com/spf13/cobra"
)

var (
	parseMatch string
	parseMask  string
)

// parseResult is the output of the parse command in both directions.
type parseResult struct {
	Encoding string `json:"encoding"`
	Match    string `json:"match"`
	Mask     string `json:"mask"`
}

var parseCmd = &cobra.Command{
	Use:   "parse [token]",
	Short: "Convert between encoding token and match/mask forms",
	Long: `Convert an instruction encoding between its two representations.

Given a 32-character {0,1,-} token, prints the derived match/mask hex pair.
Given --match and --mask instead, prints the token form. When a token and
an explicit pair are both supplied they are cross-checked and any
disagreement is an error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		token := ""
		if len(args) == 1 {
			token = args[0]
		}

		pattern, err := resolveEncoding(token, parseMatch, parseMask)
		if err != nil {
			return err
		}

		result := parseResult{
			Encoding: pattern.Token(),
			Match:    hex32(pattern.Match),
			Mask:     hex32(pattern.Mask),
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintLabelValue("Encoding", result.Encoding)
		PrintLabelValue("Match", result.Match)
		PrintLabelValue("Mask", result.Mask)
		return nil
	},
}

func init() {
	parseCmd.Flags().StringVar(&parseMatch, "match", "", "Match value in hex (requires --mask)")
	parseCmd.Flags().StringVar(&parseMask, "mask", "", "Mask value in hex (requires --match)")
}
