package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/klearrshipping/cudabot/constants"
	"github.com/klearrshipping/cudabot/internal/extract"
)

var classifyJSON bool

var classifyCmd = &cobra.Command{
	Use:   "classify <box> <signal...>",
	Short: "Classify one signal for one ESAD box",
	Long: `Classify runs a raw text signal through the code table for a single box
and prints the resolved code. The remaining arguments are joined into the
signal, so quoting is optional.

  cudabot classify 25 "Vessel SEABOARD GEMINI, Voyage SGM19"
  cudabot classify 25 Shipped by Truck via Highway 95 --json`,
	Args: cobra.MinimumNArgs(2),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "Print the full diagnostic record as JSON")
}

func runClassify(cmd *cobra.Command, args []string) error {
	box := constants.Box(args[0])
	signal := strings.Join(args[1:], " ")

	reg, err := newRegistry()
	if err != nil {
		return fmt.Errorf("loading code tables: %w", err)
	}
	proc, err := reg.Get(box)
	if err != nil {
		return fmt.Errorf("box %q is not supported: %w", box, err)
	}

	out := proc.Process(extract.DocumentData{Text: signal})
	if !classifyJSON {
		fmt.Println(out.Value())
		return nil
	}

	rec := out.Record(string(box))
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
