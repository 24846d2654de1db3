package codec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/binfield/pkg/types"
)

func TestLayoutReadDecodesAllFields(t *testing.T) {
	b := New(make([]byte, 16))
	require.NoError(t, b.WriteUint8(0, 7))
	require.NoError(t, b.WriteUint16BE(1, 0x1234))
	require.NoError(t, b.WriteInt32LE(4, -5))
	require.NoError(t, b.WriteFloat64LE(8, 2.5))

	l := Layout{Fields: []Field{
		{Name: "tag", Kind: types.Uint8, Offset: 0},
		{Name: "magic", Kind: types.Uint16, Offset: 1, Order: types.BigEndian},
		{Name: "delta", Kind: types.Int32, Offset: 4, Order: types.LittleEndian},
		{Name: "scale", Kind: types.Float64, Offset: 8, Order: types.LittleEndian},
	}}

	got, err := l.Read(b)
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"tag":   uint8(7),
		"magic": uint16(0x1234),
		"delta": int32(-5),
		"scale": 2.5,
	}, got)
}

func TestLayoutValidateAggregatesViolations(t *testing.T) {
	b := New(make([]byte, 4))

	l := Layout{Fields: []Field{
		{Name: "ok", Kind: types.Uint16, Offset: 0, Order: types.LittleEndian},
		{Name: "past-end", Kind: types.Uint32, Offset: 2, Order: types.BigEndian},
		{Name: "no-order", Kind: types.Uint16, Offset: 0},
		{Name: "bad-kind", Kind: types.Kind(42), Offset: 0},
	}}

	err := l.Validate(b)
	require.Error(t, err)
	// All three bad fields are reported, not just the first.
	require.Contains(t, err.Error(), "past-end")
	require.Contains(t, err.Error(), "no-order")
	require.Contains(t, err.Error(), "bad-kind")
	require.NotContains(t, err.Error(), "field ok")

	_, readErr := l.Read(b)
	require.Error(t, readErr)
}

func TestLayoutJSONRoundTrip(t *testing.T) {
	src := `{"fields":[
		{"name":"count","kind":"uint32","offset":0,"order":"be"},
		{"name":"flag","kind":"uint8","offset":4}
	]}`

	var l Layout
	require.NoError(t, json.Unmarshal([]byte(src), &l))
	require.Len(t, l.Fields, 2)
	require.Equal(t, types.Uint32, l.Fields[0].Kind)
	require.Equal(t, types.BigEndian, l.Fields[0].Order)
	require.Equal(t, types.Uint8, l.Fields[1].Kind)
	require.False(t, l.Fields[1].Order.Valid())

	out, err := json.Marshal(l)
	require.NoError(t, err)
	require.Contains(t, string(out), `"kind":"uint32"`)
	require.Contains(t, string(out), `"order":"be"`)
}
