package amqpwire

import (
	"github.com/delaneyj/toolbelt/bytebufferpool"
)

// Encoder accumulates scalar values in insertion order and serializes them
// to the wire format. The zero Encoder is ready to use.
type Encoder struct {
	values []Value
}

// NewEncoder returns an empty Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Len returns the number of values written so far.
func (e *Encoder) Len() int {
	return len(e.values)
}

// Reset drops all written values, keeping the backing storage.
func (e *Encoder) Reset() {
	for i := range e.values {
		e.values[i] = Value{}
	}
	e.values = e.values[:0]
}

// WriteValue appends a held value. The value must be non-empty.
func (e *Encoder) WriteValue(v Value) error {
	if !v.IsSet() {
		return decodeErrorf("cannot encode empty value")
	}
	e.values = append(e.values, v)
	return nil
}

func (e *Encoder) WriteBool(b bool) {
	var v Value
	v.SetBool(b)
	e.values = append(e.values, v)
}

func (e *Encoder) WriteUint8(u uint8) {
	var v Value
	v.SetUbyte(u)
	e.values = append(e.values, v)
}

func (e *Encoder) WriteInt8(i int8) {
	var v Value
	v.SetByte(i)
	e.values = append(e.values, v)
}

func (e *Encoder) WriteUint16(u uint16) {
	var v Value
	v.SetUshort(u)
	e.values = append(e.values, v)
}

func (e *Encoder) WriteInt16(i int16) {
	var v Value
	v.SetShort(i)
	e.values = append(e.values, v)
}

func (e *Encoder) WriteUint32(u uint32) {
	var v Value
	v.SetUint(u)
	e.values = append(e.values, v)
}

func (e *Encoder) WriteInt32(i int32) {
	var v Value
	v.SetInt(i)
	e.values = append(e.values, v)
}

func (e *Encoder) WriteUint64(u uint64) {
	var v Value
	v.SetUlong(u)
	e.values = append(e.values, v)
}

func (e *Encoder) WriteInt64(i int64) {
	var v Value
	v.SetLong(i)
	e.values = append(e.values, v)
}

func (e *Encoder) WriteFloat32(f float32) {
	var v Value
	v.SetFloat(f)
	e.values = append(e.values, v)
}

func (e *Encoder) WriteFloat64(f float64) {
	var v Value
	v.SetDouble(f)
	e.values = append(e.values, v)
}

// Encode serializes the written values in insertion order and returns the
// wire bytes. The output is recomputed from the value sequence on every
// call, so repeated calls without intervening writes yield identical bytes.
func (e *Encoder) Encode() []byte {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	for _, v := range e.values {
		encodeValueToBuffer(buf, v)
	}
	out := append([]byte{}, buf.Bytes()...)
	return out
}

// EncodedLen returns the byte length Encode will produce.
func (e *Encoder) EncodedLen() int {
	n := 0
	for _, v := range e.values {
		n += 1 + v.tag.Width()
	}
	return n
}

func encodeValueToBuffer(buf *bytebufferpool.ByteBuffer, v Value) {
	switch v.tag {
	case TagBool:
		if v.pay[0] != 0 {
			buf.WriteByte(CodeBoolTrue)
		} else {
			buf.WriteByte(CodeBoolFalse)
		}
	case TagUbyte:
		buf.WriteByte(CodeUbyte)
		buf.WriteByte(v.pay[0])
	case TagByte:
		buf.WriteByte(CodeByte)
		buf.WriteByte(v.pay[0])
	case TagUshort:
		buf.WriteByte(CodeUshort)
		buf.Write(v.pay[:2])
	case TagShort:
		buf.WriteByte(CodeShort)
		buf.Write(v.pay[:2])
	case TagUint:
		buf.WriteByte(CodeUint)
		buf.Write(v.pay[:4])
	case TagInt:
		buf.WriteByte(CodeInt)
		buf.Write(v.pay[:4])
	case TagUlong:
		buf.WriteByte(CodeUlong)
		buf.Write(v.pay[:8])
	case TagLong:
		buf.WriteByte(CodeLong)
		buf.Write(v.pay[:8])
	case TagFloat:
		buf.WriteByte(CodeFloat)
		buf.Write(v.pay[:4])
	case TagDouble:
		buf.WriteByte(CodeDouble)
		buf.Write(v.pay[:8])
	}
}
