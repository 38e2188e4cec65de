package amqpwire

import (
	"bytes"
	"testing"
)

func FuzzDecodeValue(f *testing.F) {
	seeds := [][]byte{
		{CodeBoolTrue},
		{CodeBoolFalse},
		{CodeUbyte, 0x2a},
		{CodeShort, 0xff, 0xd6},
		{CodeUint, 0x00, 0x00, 0x30, 0x39},
		{CodeLong, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xcf, 0xc7},
		{CodeFloat, 0x3e, 0x00, 0x00, 0x00},
		{CodeDouble, 0x3f, 0xc0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0xa1, 0x02, 'h', 'i'},
	}
	for _, seed := range seeds {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		v, n, err := DecodeValue(data)
		if err != nil {
			if !IsDecodeError(err) {
				t.Fatalf("non-DecodeError failure: %v", err)
			}
			return
		}
		if n < 1 || n > len(data) {
			t.Fatalf("consumed %d of %d bytes", n, len(data))
		}
		if n != 1+v.Tag().Width() {
			t.Fatalf("consumed %d bytes for %s (width %d)", n, v.Tag(), v.Tag().Width())
		}

		e := NewEncoder()
		if err := e.WriteValue(v); err != nil {
			t.Fatalf("re-encode: %v", err)
		}
		wire := e.Encode()
		if !bytes.Equal(wire, data[:n]) {
			t.Fatalf("re-encode differs:\n got %x\nwant %x", wire, data[:n])
		}
		again, m, err := DecodeValue(wire)
		if err != nil || m != n {
			t.Fatalf("second decode: %d %v", m, err)
		}
		if again != v {
			t.Fatalf("value changed across roundtrip: %#v != %#v", again, v)
		}
	})
}

func FuzzSequenceRoundTrip(f *testing.F) {
	f.Add([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a})
	f.Add([]byte{0x00})
	f.Add([]byte{0x0a, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff})
	f.Fuzz(func(t *testing.T, data []byte) {
		e := NewEncoder()
		for i := 0; i < len(data); {
			v, n := valueFromFuzzBytes(data[i:])
			i += n
			if err := e.WriteValue(v); err != nil {
				t.Fatalf("write: %v", err)
			}
		}
		wire := e.Encode()

		d := NewDecoder(wire)
		round := NewEncoder()
		for d.More() {
			v, err := d.ReadValue()
			if err != nil {
				t.Fatalf("decode own output: %v", err)
			}
			if err := round.WriteValue(v); err != nil {
				t.Fatalf("rewrite: %v", err)
			}
		}
		if round.Len() != e.Len() {
			t.Fatalf("decoded %d values, wrote %d", round.Len(), e.Len())
		}
		if got := round.Encode(); !bytes.Equal(got, wire) {
			t.Fatalf("sequence roundtrip differs:\n got %x\nwant %x", got, wire)
		}
		if e.String() != NewDecoder(wire).String() {
			t.Fatal("encoder and decoder renderings differ")
		}
	})
}

// valueFromFuzzBytes derives one scalar from the front of data: the first
// byte picks the tag, the following bytes seed the payload.
func valueFromFuzzBytes(data []byte) (Value, int) {
	tag := TypeTag(data[0]%11) + TagBool
	width := tag.Width()
	var pay [8]byte
	n := copy(pay[:width], data[1:])

	var v Value
	switch tag {
	case TagBool:
		v.SetBool(data[0]&0x10 != 0)
	case TagUbyte:
		v.SetUbyte(pay[0])
	case TagByte:
		v.SetByte(int8(pay[0]))
	case TagUshort:
		v.SetUshort(uint16(pay[0])<<8 | uint16(pay[1]))
	case TagShort:
		v.SetShort(int16(uint16(pay[0])<<8 | uint16(pay[1])))
	case TagUint:
		v.SetUint(beUint32(pay))
	case TagInt:
		v.SetInt(int32(beUint32(pay)))
	case TagUlong:
		v.SetUlong(beUint64(pay))
	case TagLong:
		v.SetLong(int64(beUint64(pay)))
	case TagFloat:
		v.SetFloat(float32(beUint32(pay)) / 64)
	case TagDouble:
		v.SetDouble(float64(beUint64(pay)) / 64)
	}
	return v, 1 + n
}

func beUint32(pay [8]byte) uint32 {
	return uint32(pay[0])<<24 | uint32(pay[1])<<16 | uint32(pay[2])<<8 | uint32(pay[3])
}

func beUint64(pay [8]byte) uint64 {
	return uint64(beUint32(pay))<<32 |
		uint64(pay[4])<<24 | uint64(pay[5])<<16 | uint64(pay[6])<<8 | uint64(pay[7])
}
