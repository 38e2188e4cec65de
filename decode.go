package amqpwire

// DecodeValue decodes one scalar element from the front of b and returns the
// value and the number of bytes consumed (code byte plus payload).
func DecodeValue(b []byte) (Value, int, error) {
	if len(b) == 0 {
		return Value{}, 0, decodeErrorf("buffer exhausted")
	}
	code := b[0]
	tag, ok := TagFromCode(code)
	if !ok {
		return Value{}, 0, decodeErrorf("unknown wire code 0x%02x", code)
	}
	width := tag.Width()
	if len(b) < 1+width {
		return Value{}, 0, decodeErrorf("truncated %s payload: need %d bytes, have %d", tag, width, len(b)-1)
	}
	v := Value{tag: tag}
	if tag == TagBool {
		if code == CodeBoolTrue {
			v.pay[0] = 1
		}
		return v, 1, nil
	}
	copy(v.pay[:width], b[1:1+width])
	return v, 1 + width, nil
}

// Decoder reads scalar elements sequentially from an immutable byte buffer.
// A failed read consumes nothing, so the caller may retry with a different
// expected type.
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder returns a Decoder positioned at the start of buf. The buffer
// must not be mutated for the Decoder's lifetime.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// More reports whether unread bytes remain.
func (d *Decoder) More() bool {
	return d.pos < len(d.buf)
}

// Offset returns the current cursor position in bytes.
func (d *Decoder) Offset() int {
	return d.pos
}

// peek decodes the next element without moving the cursor.
func (d *Decoder) peek() (Value, int, error) {
	return DecodeValue(d.buf[d.pos:])
}

// ReadValue decodes the next element of any scalar tag and advances past it.
func (d *Decoder) ReadValue() (Value, error) {
	v, n, err := d.peek()
	if err != nil {
		return Value{}, err
	}
	d.pos += n
	return v, nil
}

// Skip advances past the next element without decoding its payload.
func (d *Decoder) Skip() error {
	_, n, err := d.peek()
	if err != nil {
		return err
	}
	d.pos += n
	return nil
}

// ReadBool reads the next element as a boolean. The encoded tag must be
// exactly TagBool; on mismatch the cursor does not move.
func (d *Decoder) ReadBool() (bool, error) {
	v, n, err := d.peek()
	if err != nil {
		return false, err
	}
	out, err := v.Bool()
	if err != nil {
		return false, err
	}
	d.pos += n
	return out, nil
}

// ReadUint8 reads the next element as a ubyte. Exact tag match only.
func (d *Decoder) ReadUint8() (uint8, error) {
	v, n, err := d.peek()
	if err != nil {
		return 0, err
	}
	out, err := v.Ubyte()
	if err != nil {
		return 0, err
	}
	d.pos += n
	return out, nil
}

// ReadInt8 reads the next element as a signed byte. Exact tag match only.
func (d *Decoder) ReadInt8() (int8, error) {
	v, n, err := d.peek()
	if err != nil {
		return 0, err
	}
	out, err := v.Byte()
	if err != nil {
		return 0, err
	}
	d.pos += n
	return out, nil
}

// ReadUint16 reads the next element as a ushort. Exact tag match only.
func (d *Decoder) ReadUint16() (uint16, error) {
	v, n, err := d.peek()
	if err != nil {
		return 0, err
	}
	out, err := v.Ushort()
	if err != nil {
		return 0, err
	}
	d.pos += n
	return out, nil
}

// ReadInt16 reads the next element as a short. Exact tag match only.
func (d *Decoder) ReadInt16() (int16, error) {
	v, n, err := d.peek()
	if err != nil {
		return 0, err
	}
	out, err := v.Short()
	if err != nil {
		return 0, err
	}
	d.pos += n
	return out, nil
}

// ReadUint32 reads the next element as a uint. Exact tag match only.
func (d *Decoder) ReadUint32() (uint32, error) {
	v, n, err := d.peek()
	if err != nil {
		return 0, err
	}
	out, err := v.Uint()
	if err != nil {
		return 0, err
	}
	d.pos += n
	return out, nil
}

// ReadInt32 reads the next element as an int. Exact tag match only.
func (d *Decoder) ReadInt32() (int32, error) {
	v, n, err := d.peek()
	if err != nil {
		return 0, err
	}
	out, err := v.Int()
	if err != nil {
		return 0, err
	}
	d.pos += n
	return out, nil
}

// ReadUint64 reads the next element as a ulong. Exact tag match only.
func (d *Decoder) ReadUint64() (uint64, error) {
	v, n, err := d.peek()
	if err != nil {
		return 0, err
	}
	out, err := v.Ulong()
	if err != nil {
		return 0, err
	}
	d.pos += n
	return out, nil
}

// ReadInt64 reads the next element as a long. Exact tag match only.
func (d *Decoder) ReadInt64() (int64, error) {
	v, n, err := d.peek()
	if err != nil {
		return 0, err
	}
	out, err := v.Long()
	if err != nil {
		return 0, err
	}
	d.pos += n
	return out, nil
}

// ReadFloat32 reads the next element as a float. A double-tagged element does
// not convert.
func (d *Decoder) ReadFloat32() (float32, error) {
	v, n, err := d.peek()
	if err != nil {
		return 0, err
	}
	out, err := v.Float()
	if err != nil {
		return 0, err
	}
	d.pos += n
	return out, nil
}

// ReadFloat64 reads the next element as a double. A float-tagged element does
// not convert.
func (d *Decoder) ReadFloat64() (float64, error) {
	v, n, err := d.peek()
	if err != nil {
		return 0, err
	}
	out, err := v.Double()
	if err != nil {
		return 0, err
	}
	d.pos += n
	return out, nil
}
