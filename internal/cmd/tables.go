package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/klearrshipping/cudabot/constants"
)

var tablesBox string

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the loaded code tables",
	Long: `Tables prints every loaded code table with its entry count and default
code. With --box it dumps the entries of a single table, in the declared
order the classifier uses for tie-breaking.`,
	RunE: runTables,
}

func init() {
	rootCmd.AddCommand(tablesCmd)

	tablesCmd.Flags().StringVar(&tablesBox, "box", "", "Dump the entries of one box instead of the summary")
}

func runTables(cmd *cobra.Command, args []string) error {
	reg, err := newRegistry()
	if err != nil {
		return fmt.Errorf("loading code tables: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	defer w.Flush()

	if tablesBox != "" {
		proc, err := reg.Get(constants.Box(tablesBox))
		if err != nil {
			return fmt.Errorf("box %q is not supported: %w", tablesBox, err)
		}
		tbl := proc.Table()
		fmt.Fprintln(w, "CODE\tLABEL\tPATTERNS\tDEFAULT")
		for _, e := range tbl.Entries() {
			def := ""
			if e.Code == tbl.Default().Code {
				def = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Code, e.Label, strings.Join(e.Patterns, "|"), def)
		}
		return nil
	}

	fmt.Fprintln(w, "BOX\tENTRIES\tDEFAULT")
	for _, proc := range reg.Processors() {
		tbl := proc.Table()
		fmt.Fprintf(w, "%s\t%d\t%s %s\n", proc.Box(), tbl.Len(), tbl.Default().Code, tbl.Default().Label)
	}
	return nil
}
