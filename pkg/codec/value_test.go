package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/binfield/pkg/types"
)

func TestWriteValueDomainRejection(t *testing.T) {
	b := New(make([]byte, 8))

	cases := []struct {
		name string
		kind types.Kind
		v    float64
		want types.ViolationKind
	}{
		{"uint8 overflow", types.Uint8, 256, types.KindDomain},
		{"uint8 negative", types.Uint8, -1, types.KindDomain},
		{"int8 overflow", types.Int8, 128, types.KindDomain},
		{"int8 underflow", types.Int8, -129, types.KindDomain},
		{"uint16 overflow", types.Uint16, 65536, types.KindDomain},
		{"int16 fractional", types.Int16, 3.5, types.KindNotIntegral},
		{"uint32 overflow", types.Uint32, 4294967296, types.KindDomain},
		{"int32 overflow", types.Int32, 2147483648, types.KindDomain},
		{"integer NaN", types.Int32, math.NaN(), types.KindNotIntegral},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := b.WriteValue(tc.kind, 0, types.LittleEndian, tc.v)
			var viol *types.InvariantError
			require.ErrorAs(t, err, &viol)
			require.Equal(t, tc.want, viol.Kind)
		})
	}
}

func TestWriteValueFloatRange(t *testing.T) {
	b := New(make([]byte, 8))

	// Beyond single-precision range: rejected as float32, accepted as float64.
	huge := 1e39
	err := b.WriteValue(types.Float32, 0, types.BigEndian, huge)
	var viol *types.InvariantError
	require.ErrorAs(t, err, &viol)
	require.Equal(t, types.KindDomain, viol.Kind)

	require.NoError(t, b.WriteValue(types.Float64, 0, types.BigEndian, huge))
	got, err := b.ReadValue(types.Float64, 0, types.BigEndian)
	require.NoError(t, err)
	require.Equal(t, huge, got)

	// Infinite magnitude exceeds the single-precision bound too.
	err = b.WriteValue(types.Float32, 0, types.BigEndian, math.Inf(1))
	require.ErrorAs(t, err, &viol)

	// NaN carries no magnitude and is accepted on both widths.
	require.NoError(t, b.WriteValue(types.Float32, 0, types.BigEndian, math.NaN()))
	require.NoError(t, b.WriteValue(types.Float64, 0, types.BigEndian, math.NaN()))
}

func TestWriteValueMissingOrder(t *testing.T) {
	b := New(make([]byte, 4))

	err := b.WriteValue(types.Uint16, 0, 0, 1)
	var viol *types.InvariantError
	require.ErrorAs(t, err, &viol)
	require.Equal(t, types.KindBadOrder, viol.Kind)

	_, err = b.ReadValue(types.Uint32, 0, types.ByteOrder(9))
	require.ErrorAs(t, err, &viol)
	require.Equal(t, types.KindBadOrder, viol.Kind)

	// One-byte kinds have no order to validate.
	require.NoError(t, b.WriteValue(types.Uint8, 0, 0, 42))
	v, err := b.ReadValue(types.Uint8, 0, 0)
	require.NoError(t, err)
	require.Equal(t, uint8(42), v)
}

func TestValueRoundTripAllKinds(t *testing.T) {
	b := New(make([]byte, 8))

	cases := []struct {
		kind types.Kind
		v    float64
		want any
	}{
		{types.Uint8, 255, uint8(255)},
		{types.Uint16, 0x1234, uint16(0x1234)},
		{types.Uint32, 4294967295, uint32(4294967295)},
		{types.Int8, -128, int8(-128)},
		{types.Int16, -32768, int16(-32768)},
		{types.Int32, -2147483648, int32(-2147483648)},
		{types.Float32, 1.5, float32(1.5)},
		{types.Float64, -1e300, -1e300},
	}
	for _, order := range []types.ByteOrder{types.LittleEndian, types.BigEndian} {
		for _, tc := range cases {
			require.NoError(t, b.WriteValue(tc.kind, 0, order, tc.v), "%v %v", tc.kind, order)
			got, err := b.ReadValue(tc.kind, 0, order)
			require.NoError(t, err)
			require.Equal(t, tc.want, got, "%v %v", tc.kind, order)
		}
	}
}

func TestWriteValueRejectedLeavesBufferUntouched(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	b := New(data)

	require.Error(t, b.WriteValue(types.Uint16, 2, types.LittleEndian, 70000))
	require.Error(t, b.WriteValue(types.Int32, 2, types.BigEndian, 0))
	require.Equal(t, []byte{1, 2, 3, 4}, data)
}
