package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var catalogPath string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the encoding catalog",
	Long:  `Inspect the read-only catalog of instruction encodings that proposals are checked against.`,
}

var catalogLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List cataloged encodings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, skipped, err := loadCatalog(catalogPath)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(struct {
				Entries interface{} `json:"entries"`
				Skipped interface{} `json:"skipped,omitempty"`
			}{cat.Entries(), skipped})
		}

		for _, s := range skipped {
			PrintWarning(fmt.Sprintf("skipped catalog entry %s: %s", s.ID, s.Reason))
		}

		if cat.Len() == 0 {
			PrintEmptyState("No cataloged encodings")
			return nil
		}

		headers := []string{"ID", "ENCODING"}
		rows := make([][]string, 0, cat.Len())
		for _, e := range cat.Entries() {
			rows = append(rows, []string{e.ID, e.Pattern.Token()})
		}
		PrintTable(headers, rows)
		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one cataloged encoding in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, _, err := loadCatalog(catalogPath)
		if err != nil {
			return err
		}

		entry, ok := cat.Find(args[0])
		if !ok {
			return fmt.Errorf("catalog entry %q not found", args[0])
		}

		if jsonOutput {
			return outputJSON(entry)
		}

		PrintLabelValue("ID", entry.ID)
		PrintLabelValue("Extension", entry.Extension)
		PrintLabelValue("Name", entry.Name)
		PrintLabelValue("Encoding", entry.Pattern.Token())
		PrintLabelValue("Match", hex32(entry.Pattern.Match))
		PrintLabelValue("Mask", hex32(entry.Pattern.Mask))
		return nil
	},
}

func init() {
	catalogCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", "", "Catalog file to inspect (default: configured catalog)")
	catalogCmd.AddCommand(catalogLsCmd)
	catalogCmd.AddCommand(catalogShowCmd)
}
