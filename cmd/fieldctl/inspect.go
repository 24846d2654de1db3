package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/binfield/internal/mmfile"
	"github.com/joshuapare/binfield/pkg/codec"
)

func init() {
	rootCmd.AddCommand(newInspectCmd())
}

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file> <layout.json>",
		Short: "Decode every field of a layout descriptor",
		Long: `The inspect command evaluates a JSON layout descriptor against a file
and prints every field. A layout names fields with a kind, offset, and byte
order:

  {"fields": [
    {"name": "magic", "kind": "uint32", "offset": 0, "order": "be"},
    {"name": "version", "kind": "uint16", "offset": 4, "order": "le"}
  ]}

All layout violations (out-of-range spans, missing byte orders) are reported
together before anything is decoded.

Example:
  fieldctl inspect image.bin header-layout.json
  fieldctl inspect image.bin header-layout.json --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args)
		},
	}
	return cmd
}

func runInspect(args []string) error {
	path := args[0]
	layoutPath := args[1]

	raw, err := os.ReadFile(layoutPath)
	if err != nil {
		return fmt.Errorf("failed to read layout: %w", err)
	}
	var layout codec.Layout
	if err := json.Unmarshal(raw, &layout); err != nil {
		return fmt.Errorf("failed to parse layout: %w", err)
	}

	printVerbose("Mapping file: %s\n", path)
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return fmt.Errorf("failed to map file: %w", err)
	}
	defer cleanup()

	values, err := layout.Read(codec.New(data))
	if err != nil {
		return fmt.Errorf("layout does not fit file: %w", err)
	}

	if jsonOut {
		return printJSON(values)
	}
	// Print in layout order, not map order.
	for _, f := range layout.Fields {
		fmt.Printf("%-20s %v\n", f.Name, values[f.Name])
	}
	return nil
}
