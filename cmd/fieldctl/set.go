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
	setOrder      string
	setNoValidate bool
)

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVar(&setOrder, "order", "le", "Byte order for multi-byte fields (le, be)")
	cmd.Flags().BoolVar(&setNoValidate, "no-validate", false,
		"Skip precondition checks (out-of-domain values write garbage bytes)")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file> <offset> <type> <value>",
		Short: "Write a single field into a file in place",
		Long: `The set command encodes one fixed-width field at the given offset and
flushes the change to disk. The value must belong to the type's numeric
domain unless --no-validate is given.

Example:
  fieldctl set image.bin 0x10 uint32 305419896 --order be
  fieldctl set samples.dat 24 float64 -- -2.5
  fieldctl set header.bin 6 int16 -1 --order le`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	path := args[0]

	off, err := parseOffset(args[1])
	if err != nil {
		return err
	}
	kind, err := types.ParseKind(args[2])
	if err != nil {
		return err
	}
	value, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[3], err)
	}
	order, err := types.ParseByteOrder(setOrder)
	if err != nil {
		return err
	}

	printVerbose("Mapping file read-write: %s\n", path)
	f, err := mmfile.OpenRW(path)
	if err != nil {
		return fmt.Errorf("failed to map file: %w", err)
	}
	defer f.Close()

	buf := codec.New(f.Data)
	if setNoValidate {
		// Keep the span guard even here: a panic on a short file would be
		// hostile for a CLI. Domain checks are what --no-validate skips.
		if off < 0 || off+kind.Width() > len(f.Data) {
			return fmt.Errorf("%d-byte field at offset %d exceeds file size %d",
				kind.Width(), off, len(f.Data))
		}
		if err := writeRaw(buf.Raw(), kind, off, order, value); err != nil {
			return err
		}
	} else if err := buf.WriteValue(kind, off, order, value); err != nil {
		return fmt.Errorf("failed to write field: %w", err)
	}

	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to flush changes: %w", err)
	}
	printVerbose("Wrote %s %v at offset %d\n", kind, value, off)
	return nil
}

// writeRaw routes a dynamic value through the unchecked surface: domain
// checks are skipped and the value is truncated to the field width.
func writeRaw(raw codec.RawBuffer, kind types.Kind, off int, order types.ByteOrder, v float64) error {
	bigEndian := order == types.BigEndian
	switch kind {
	case types.Uint8:
		raw.WriteUint8(off, uint8(v))
	case types.Uint16:
		if bigEndian {
			raw.WriteUint16BE(off, uint16(v))
		} else {
			raw.WriteUint16LE(off, uint16(v))
		}
	case types.Uint32:
		if bigEndian {
			raw.WriteUint32BE(off, uint32(v))
		} else {
			raw.WriteUint32LE(off, uint32(v))
		}
	case types.Int8:
		raw.WriteInt8(off, int8(v))
	case types.Int16:
		if bigEndian {
			raw.WriteInt16BE(off, int16(v))
		} else {
			raw.WriteInt16LE(off, int16(v))
		}
	case types.Int32:
		if bigEndian {
			raw.WriteInt32BE(off, int32(v))
		} else {
			raw.WriteInt32LE(off, int32(v))
		}
	case types.Float32:
		if bigEndian {
			raw.WriteFloat32BE(off, float32(v))
		} else {
			raw.WriteFloat32LE(off, float32(v))
		}
	case types.Float64:
		if bigEndian {
			raw.WriteFloat64BE(off, v)
		} else {
			raw.WriteFloat64LE(off, v)
		}
	default:
		return fmt.Errorf("unknown field kind %v", kind)
	}
	return nil
}
