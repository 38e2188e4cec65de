package amqpwire

import (
	"strconv"

	"github.com/delaneyj/toolbelt/bytebufferpool"
)

// Canonical textual rendering, shared by Decoder and Encoder so that a
// Decoder over an Encoder's output always prints the same string as the
// Encoder itself.

// Render returns the canonical printed form of a single value: booleans as
// true/false, integers in decimal, floats in shortest decimal form.
func (v Value) Render() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	appendValueText(buf, v)
	return buf.String()
}

func appendValueText(buf *bytebufferpool.ByteBuffer, v Value) {
	switch v.tag {
	case TagBool:
		if v.pay[0] != 0 {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case TagUbyte:
		u, _ := v.Ubyte()
		buf.WriteString(strconv.FormatUint(uint64(u), 10))
	case TagByte:
		i, _ := v.Byte()
		buf.WriteString(strconv.FormatInt(int64(i), 10))
	case TagUshort:
		u, _ := v.Ushort()
		buf.WriteString(strconv.FormatUint(uint64(u), 10))
	case TagShort:
		i, _ := v.Short()
		buf.WriteString(strconv.FormatInt(int64(i), 10))
	case TagUint:
		u, _ := v.Uint()
		buf.WriteString(strconv.FormatUint(uint64(u), 10))
	case TagInt:
		i, _ := v.Int()
		buf.WriteString(strconv.FormatInt(int64(i), 10))
	case TagUlong:
		u, _ := v.Ulong()
		buf.WriteString(strconv.FormatUint(u, 10))
	case TagLong:
		i, _ := v.Long()
		buf.WriteString(strconv.FormatInt(i, 10))
	case TagFloat:
		f, _ := v.Float()
		buf.WriteString(strconv.FormatFloat(float64(f), 'g', -1, 32))
	case TagDouble:
		f, _ := v.Double()
		buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	default:
		buf.WriteString("<empty>")
	}
}

// String renders the values written so far, comma separated, in insertion
// order.
func (e *Encoder) String() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	for i, v := range e.values {
		if i > 0 {
			buf.WriteString(", ")
		}
		appendValueText(buf, v)
	}
	return buf.String()
}

// String renders the remaining unread elements, comma separated, without
// moving the cursor. Iteration runs on a copy of the cursor state; a
// malformed tail is rendered as a trailing error marker.
func (d *Decoder) String() string {
	return d.renderFrom(d.pos)
}

// RenderAll renders every element from the start of the buffer, regardless
// of the cursor position. The cursor does not move.
func (d *Decoder) RenderAll() string {
	return d.renderFrom(0)
}

func (d *Decoder) renderFrom(pos int) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	first := true
	for pos < len(d.buf) {
		v, n, err := DecodeValue(d.buf[pos:])
		if err != nil {
			if !first {
				buf.WriteString(", ")
			}
			buf.WriteString("<" + err.Error() + ">")
			break
		}
		if !first {
			buf.WriteString(", ")
		}
		appendValueText(buf, v)
		first = false
		pos += n
	}
	return buf.String()
}
