package codec_test

import (
	"fmt"
	"log"

	"github.com/joshuapare/binfield/pkg/codec"
	"github.com/joshuapare/binfield/pkg/types"
)

func ExampleBuffer() {
	buf := codec.New(make([]byte, 4))

	if err := buf.WriteInt16BE(0, -2); err != nil {
		log.Fatal(err)
	}

	signed, _ := buf.ReadInt16BE(0)
	unsigned, _ := buf.ReadUint16BE(0)
	fmt.Printf("bytes: % x\n", buf.Bytes()[:2])
	fmt.Println(signed, unsigned)
	// Output:
	// bytes: ff fe
	// -2 65534
}

func ExampleBuffer_Raw() {
	buf := codec.New(make([]byte, 4))

	// The raw view trades validation for speed; the byte layout is the same.
	buf.Raw().WriteUint32BE(0, 0xdeadbeef)
	fmt.Printf("% x\n", buf.Bytes())
	// Output: de ad be ef
}

func ExampleLayout_Read() {
	data := []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x00}
	layout := codec.Layout{Fields: []codec.Field{
		{Name: "magic", Kind: types.Uint32, Offset: 0, Order: types.BigEndian},
		{Name: "version", Kind: types.Uint16, Offset: 4, Order: types.LittleEndian},
	}}

	values, err := layout.Read(codec.New(data))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(values["magic"], values["version"])
	// Output: 3735928559 1
}
