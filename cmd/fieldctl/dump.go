package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/binfield/internal/mmfile"
)

var (
	dumpOffset string
	dumpLength int
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVar(&dumpOffset, "offset", "0", "Offset to start dumping from")
	cmd.Flags().IntVar(&dumpLength, "length", 0, "Number of bytes to dump (0 = to end of file)")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Hex+ASCII dump of file contents",
		Long: `The dump command prints a canonical hex dump with an ASCII column.

Example:
  fieldctl dump image.bin
  fieldctl dump image.bin --offset 0x200 --length 64`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	path := args[0]

	off, err := parseOffset(dumpOffset)
	if err != nil {
		return err
	}

	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return fmt.Errorf("failed to map file: %w", err)
	}
	defer cleanup()

	if off < 0 || off > len(data) {
		return fmt.Errorf("offset %d outside file of %d bytes", off, len(data))
	}
	end := len(data)
	if dumpLength > 0 && off+dumpLength < end {
		end = off + dumpLength
	}

	fmt.Print(hexDump(data[off:end], off))
	return nil
}

// hexDump renders 16 bytes per line with the absolute offset, the hex bytes
// split into two groups of eight, and a printable-ASCII column.
func hexDump(data []byte, base int) string {
	var sb strings.Builder
	for line := 0; line < len(data); line += 16 {
		chunk := data[line:min(line+16, len(data))]

		fmt.Fprintf(&sb, "%08x  ", base+line)
		for i := 0; i < 16; i++ {
			if i == 8 {
				sb.WriteByte(' ')
			}
			if i < len(chunk) {
				fmt.Fprintf(&sb, "%02x ", chunk[i])
			} else {
				sb.WriteString("   ")
			}
		}
		sb.WriteString(" |")
		for _, c := range chunk {
			if c >= 0x20 && c < 0x7f {
				sb.WriteByte(c)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}
