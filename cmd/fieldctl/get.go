package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/binfield/internal/mmfile"
	"github.com/joshuapare/binfield/pkg/codec"
	"github.com/joshuapare/binfield/pkg/types"
)

var (
	getOrder string
	getHex   bool
)

func init() {
	cmd := newGetCmd()
	cmd.Flags().StringVar(&getOrder, "order", "le", "Byte order for multi-byte fields (le, be)")
	cmd.Flags().BoolVar(&getHex, "hex", false, "Output integer values as hex")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <offset> <type>",
		Short: "Decode a single field from a file",
		Long: `The get command decodes one fixed-width field at the given offset.

Offsets accept decimal or 0x-prefixed hex. Types are uint8, uint16, uint32,
int8, int16, int32, float32, and float64.

Example:
  fieldctl get image.bin 0x10 uint32 --order be
  fieldctl get samples.dat 24 float64
  fieldctl get header.bin 0 uint16 --order le --hex`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	path := args[0]

	off, err := parseOffset(args[1])
	if err != nil {
		return err
	}
	kind, err := types.ParseKind(args[2])
	if err != nil {
		return err
	}
	order, err := types.ParseByteOrder(getOrder)
	if err != nil {
		return err
	}

	printVerbose("Mapping file: %s\n", path)
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return fmt.Errorf("failed to map file: %w", err)
	}
	defer cleanup()

	v, err := codec.New(data).ReadValue(kind, off, order)
	if err != nil {
		return fmt.Errorf("failed to read field: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]any{
			"offset": off,
			"kind":   kind.String(),
			"order":  order.String(),
			"value":  v,
		})
	}
	if getHex && !kind.Float() {
		fmt.Printf("0x%x\n", v)
		return nil
	}
	fmt.Printf("%v\n", v)
	return nil
}

// parseOffset accepts decimal or 0x-prefixed hex offsets.
func parseOffset(s string) (int, error) {
	off, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid offset %q: %w", s, err)
	}
	return int(off), nil
}
