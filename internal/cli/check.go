package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/encheck/internal/catalog"
	"github.com/danieljhkim/encheck/internal/checker"
)

var (
	checkEncoding string
	checkMatch    string
	checkMask     string
	checkCatalog  string
	checkStrict   bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a proposed encoding against the catalog",
	Long: `Check whether a proposed instruction encoding's decode space overlaps any
cataloged encoding.

The proposal may be given as a 32-character token (--encoding), as an
explicit match/mask hex pair (--match/--mask), or as both, in which case
the two forms must agree exactly. Every overlapping catalog entry is
reported with its overlap kind, the bit positions both encodings constrain,
and one concrete witness word that decodes under both.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		proposed, err := resolveEncoding(checkEncoding, checkMatch, checkMask)
		if err != nil {
			return err
		}

		cat, skipped, err := loadCatalog(checkCatalog)
		if err != nil {
			return err
		}

		report := checker.Validate(proposed, cat)

		if jsonOutput {
			if err := outputJSON(report); err != nil {
				return err
			}
		} else {
			formatCheckOutput(report, cat.Len(), skipped)
		}

		if checkStrict && report.HasConflicts() {
			return fmt.Errorf("%d conflicting encoding(s) found", len(report.Conflicts))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkEncoding, "encoding", "e", "", "Proposed encoding as a 32-character {0,1,-} token")
	checkCmd.Flags().StringVar(&checkMatch, "match", "", "Proposed match value in hex (requires --mask)")
	checkCmd.Flags().StringVar(&checkMask, "mask", "", "Proposed mask value in hex (requires --match)")
	checkCmd.Flags().StringVarP(&checkCatalog, "catalog", "c", "", "Catalog file to check against (default: configured catalog)")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Exit with an error when conflicts are found")
}

// formatCheckOutput formats the conflict report for display.
func formatCheckOutput(report *checker.Report, catalogSize int, skipped []catalog.Skipped) {
	PrintSection("Proposed encoding")
	PrintLabelValue("Encoding", report.Proposed.Token())
	PrintLabelValue("Match", hex32(report.Proposed.Match))
	PrintLabelValue("Mask", hex32(report.Proposed.Mask))

	for _, s := range skipped {
		PrintWarning(fmt.Sprintf("skipped catalog entry %s: %s", s.ID, s.Reason))
	}

	if !report.HasConflicts() {
		PrintSuccess(fmt.Sprintf("No conflicts against %s", PrintCount(catalogSize, "catalog entry", "catalog entries")))
		return
	}

	PrintWarning(fmt.Sprintf("%s found", PrintCount(len(report.Conflicts), "conflict", "conflicts")))

	headers := []string{"ENTRY", "KIND", "COMMON MASK", "WITNESS"}
	rows := make([][]string, 0, len(report.Conflicts))
	for _, c := range report.Conflicts {
		rows = append(rows, []string{
			c.Entry.ID,
			c.Kind.String(),
			hex32(c.CommonMask),
			hex32(c.Witness),
		})
	}
	PrintTable(headers, rows)
}
