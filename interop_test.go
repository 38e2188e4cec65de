package amqpwire

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const primitivesRendered = "true, false, 42, 42, -42, 12345, -12345, 12345, -12345, 0.125, 0.125"

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "interop", name+".amqp"))
	if err != nil {
		t.Fatalf("fixture %s: %v", name, err)
	}
	return data
}

func TestDecoderRendering(t *testing.T) {
	d := NewDecoder(readFixture(t, "primitives"))
	if got := d.String(); got != primitivesRendered {
		t.Fatalf("rendering mismatch:\n got %q\nwant %q", got, primitivesRendered)
	}
	// Rendering is a pure peek.
	if d.Offset() != 0 {
		t.Fatalf("rendering moved the cursor to %d", d.Offset())
	}
	if got := d.String(); got != primitivesRendered {
		t.Fatalf("second rendering differs: %q", got)
	}
}

func TestDecoderPrimitivesExact(t *testing.T) {
	d := NewDecoder(readFixture(t, "primitives"))

	if !d.More() {
		t.Fatal("expected more elements")
	}
	if _, err := d.ReadInt8(); err == nil {
		t.Fatal("got bool as byte")
	}
	if v, err := d.ReadBool(); err != nil || v != true {
		t.Fatalf("bool true: %v %v", v, err)
	}
	if v, err := d.ReadBool(); err != nil || v != false {
		t.Fatalf("bool false: %v %v", v, err)
	}
	if _, err := d.ReadInt8(); err == nil {
		t.Fatal("got ubyte as byte")
	}
	if v, err := d.ReadUint8(); err != nil || v != 42 {
		t.Fatalf("ubyte: %v %v", v, err)
	}
	if _, err := d.ReadInt32(); err == nil {
		t.Fatal("got ushort as int")
	}
	if v, err := d.ReadUint16(); err != nil || v != 42 {
		t.Fatalf("ushort: %v %v", v, err)
	}
	if _, err := d.ReadUint16(); err == nil {
		t.Fatal("got short as ushort")
	}
	if v, err := d.ReadInt16(); err != nil || v != -42 {
		t.Fatalf("short: %v %v", v, err)
	}
	if v, err := d.ReadUint32(); err != nil || v != 12345 {
		t.Fatalf("uint: %v %v", v, err)
	}
	if v, err := d.ReadInt32(); err != nil || v != -12345 {
		t.Fatalf("int: %v %v", v, err)
	}
	if v, err := d.ReadUint64(); err != nil || v != 12345 {
		t.Fatalf("ulong: %v %v", v, err)
	}
	if v, err := d.ReadInt64(); err != nil || v != -12345 {
		t.Fatalf("long: %v %v", v, err)
	}
	if _, err := d.ReadFloat64(); err == nil {
		t.Fatal("got float as double")
	}
	if v, err := d.ReadFloat32(); err != nil || v != 0.125 {
		t.Fatalf("float: %v %v", v, err)
	}
	if _, err := d.ReadFloat32(); err == nil {
		t.Fatal("got double as float")
	}
	if v, err := d.ReadFloat64(); err != nil || v != 0.125 {
		t.Fatalf("double: %v %v", v, err)
	}
	if d.More() {
		t.Fatal("expected no more elements")
	}
	if _, err := d.ReadBool(); err == nil {
		t.Fatal("read past end of buffer succeeded")
	} else if !IsDecodeError(err) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
}

func writePrimitives(e *Encoder) {
	e.WriteBool(true)
	e.WriteBool(false)
	e.WriteUint8(42)
	e.WriteUint16(42)
	e.WriteInt16(-42)
	e.WriteUint32(12345)
	e.WriteInt32(-12345)
	e.WriteUint64(12345)
	e.WriteInt64(-12345)
	e.WriteFloat32(0.125)
	e.WriteFloat64(0.125)
}

func TestEncoderPrimitives(t *testing.T) {
	e := NewEncoder()
	writePrimitives(e)

	if got := e.String(); got != primitivesRendered {
		t.Fatalf("rendering mismatch:\n got %q\nwant %q", got, primitivesRendered)
	}
	want := readFixture(t, "primitives")
	if got := e.Encode(); !bytes.Equal(got, want) {
		t.Fatalf("encoded bytes differ from fixture:\n got %x\nwant %x", got, want)
	}
}

func TestEncoderDecoderRenderIdentically(t *testing.T) {
	e := NewEncoder()
	writePrimitives(e)
	d := NewDecoder(e.Encode())
	if e.String() != d.String() {
		t.Fatalf("encoder renders %q, decoder renders %q", e.String(), d.String())
	}
}

func TestValueConversions(t *testing.T) {
	var v Value

	v.SetBool(true)
	if b, err := v.Bool(); err != nil || b != true {
		t.Fatalf("bool: %v %v", b, err)
	}
	v.SetByte(2)
	if i, err := v.AsInt32(); err != nil || i != 2 {
		t.Fatalf("byte as int32: %v %v", i, err)
	}
	v.SetByte(3)
	if i, err := v.AsInt64(); err != nil || i != 3 {
		t.Fatalf("byte as int64: %v %v", i, err)
	}
	v.SetByte(1)
	if _, err := v.Bool(); err == nil {
		t.Fatal("got byte as bool")
	}
	v.SetBool(true)
	if _, err := v.Float(); err == nil {
		t.Fatal("got bool as float")
	}
	v.SetFloat(1.0)
	if _, err := v.Double(); err == nil {
		t.Fatal("got float as double")
	}
	v.SetDouble(1.0)
	if _, err := v.Float(); err == nil {
		t.Fatal("got double as float")
	}
}
