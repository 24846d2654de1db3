package ieee754

import (
	"math"
	"testing"
)

var singleValues = []float64{
	0, 1, -1, 0.5, -0.5, 1.5, 2, 100.25, -3.75,
	math.Pi, -math.E, 1e-10, -1e-10, 1e38, -1e38,
	math.MaxFloat32, -math.MaxFloat32,
	math.SmallestNonzeroFloat32, // subnormal single
	1.0 / 3.0,                   // needs rounding at 23 bits
	float64(math.Float32frombits(0x00000001)), // smallest subnormal single
	float64(math.Float32frombits(0x007fffff)), // largest subnormal single
	float64(math.Float32frombits(0x00800000)), // smallest normal single
}

func TestPackSingleMatchesFloat32bits(t *testing.T) {
	for _, v := range singleValues {
		var b [4]byte
		Pack(b[:], 0, v, true, MantissaSingle, WidthSingle)
		got := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
		want := math.Float32bits(float32(v))
		if got != want {
			t.Fatalf("Pack(%g) = 0x%08x, want 0x%08x", v, got, want)
		}
	}
}

func TestUnpackSingleMatchesFloat32frombits(t *testing.T) {
	patterns := []uint32{
		0x00000000, 0x80000000, // ±0
		0x3f800000, 0xbf800000, // ±1
		0x40490fdb,             // pi
		0x00000001, 0x007fffff, // subnormals
		0x00800000, 0x7f7fffff, // smallest/largest normal
		0x7f800000, 0xff800000, // ±Inf
	}
	for _, p := range patterns {
		b := []byte{byte(p >> 24), byte(p >> 16), byte(p >> 8), byte(p)}
		got := Unpack(b, 0, true, MantissaSingle, WidthSingle)
		want := float64(math.Float32frombits(p))
		if got != want || math.Signbit(got) != math.Signbit(want) {
			t.Fatalf("Unpack(0x%08x) = %g, want %g", p, got, want)
		}
	}
}

func TestDoubleRoundTripExact(t *testing.T) {
	values := []float64{
		0, math.Copysign(0, -1), 1, -1, math.Pi, -math.E,
		1e-300, -1e-300, 1e308, -1e308,
		math.MaxFloat64, -math.MaxFloat64,
		math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64,
		1.0 / 3.0,
		math.Inf(1), math.Inf(-1),
	}
	for _, bigEndian := range []bool{false, true} {
		for _, v := range values {
			var b [8]byte
			Pack(b[:], 0, v, bigEndian, MantissaDouble, WidthDouble)
			got := Unpack(b[:], 0, bigEndian, MantissaDouble, WidthDouble)
			if got != v || math.Signbit(got) != math.Signbit(v) {
				t.Fatalf("bigEndian %v: round trip of %g gave %g", bigEndian, v, got)
			}
		}
	}
}

func TestNaN(t *testing.T) {
	var b [8]byte
	Pack(b[:], 0, math.NaN(), false, MantissaDouble, WidthDouble)
	if got := Unpack(b[:], 0, false, MantissaDouble, WidthDouble); !math.IsNaN(got) {
		t.Fatalf("double NaN round trip gave %g", got)
	}
	var s [4]byte
	Pack(s[:], 0, math.NaN(), true, MantissaSingle, WidthSingle)
	if got := Unpack(s[:], 0, true, MantissaSingle, WidthSingle); !math.IsNaN(got) {
		t.Fatalf("single NaN round trip gave %g", got)
	}
}

func TestByteOrderLayout(t *testing.T) {
	var le, be [8]byte
	Pack(le[:], 0, 1.0, false, MantissaDouble, WidthDouble)
	Pack(be[:], 0, 1.0, true, MantissaDouble, WidthDouble)
	// 1.0 is 0x3ff0000000000000.
	if be != [8]byte{0x3f, 0xf0, 0, 0, 0, 0, 0, 0} {
		t.Fatalf("BE layout = % x", be)
	}
	if le != [8]byte{0, 0, 0, 0, 0, 0, 0xf0, 0x3f} {
		t.Fatalf("LE layout = % x", le)
	}
}

func TestPackSingleOverflowToInf(t *testing.T) {
	var b [4]byte
	Pack(b[:], 0, 1e39, true, MantissaSingle, WidthSingle)
	if got := Unpack(b[:], 0, true, MantissaSingle, WidthSingle); !math.IsInf(got, 1) {
		t.Fatalf("1e39 packed as %g, want +Inf", got)
	}
}

func TestUnpackAtOffset(t *testing.T) {
	b := make([]byte, 12)
	Pack(b, 3, -2.5, false, MantissaDouble, WidthDouble)
	if got := Unpack(b, 3, false, MantissaDouble, WidthDouble); got != -2.5 {
		t.Fatalf("offset round trip gave %g", got)
	}
}
