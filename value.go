package amqpwire

import (
	"encoding/binary"
	"math"
)

// Value holds a single AMQP primitive scalar: a TypeTag plus the wire-order
// payload bytes. The zero Value is the empty state and converts to nothing.
type Value struct {
	tag TypeTag
	pay [8]byte
}

// Tag returns the held type, or TagInvalid for an empty Value.
func (v Value) Tag() TypeTag {
	return v.tag
}

// IsSet reports whether the Value holds a primitive.
func (v Value) IsSet() bool {
	return v.tag != TagInvalid
}

func (v *Value) SetBool(b bool) {
	*v = Value{tag: TagBool}
	if b {
		v.pay[0] = 1
	}
}

func (v *Value) SetUbyte(u uint8) {
	*v = Value{tag: TagUbyte}
	v.pay[0] = u
}

func (v *Value) SetByte(i int8) {
	*v = Value{tag: TagByte}
	v.pay[0] = byte(i)
}

func (v *Value) SetUshort(u uint16) {
	*v = Value{tag: TagUshort}
	binary.BigEndian.PutUint16(v.pay[:2], u)
}

func (v *Value) SetShort(i int16) {
	*v = Value{tag: TagShort}
	binary.BigEndian.PutUint16(v.pay[:2], uint16(i))
}

func (v *Value) SetUint(u uint32) {
	*v = Value{tag: TagUint}
	binary.BigEndian.PutUint32(v.pay[:4], u)
}

func (v *Value) SetInt(i int32) {
	*v = Value{tag: TagInt}
	binary.BigEndian.PutUint32(v.pay[:4], uint32(i))
}

func (v *Value) SetUlong(u uint64) {
	*v = Value{tag: TagUlong}
	binary.BigEndian.PutUint64(v.pay[:8], u)
}

func (v *Value) SetLong(i int64) {
	*v = Value{tag: TagLong}
	binary.BigEndian.PutUint64(v.pay[:8], uint64(i))
}

func (v *Value) SetFloat(f float32) {
	*v = Value{tag: TagFloat}
	binary.BigEndian.PutUint32(v.pay[:4], math.Float32bits(f))
}

func (v *Value) SetDouble(f float64) {
	*v = Value{tag: TagDouble}
	binary.BigEndian.PutUint64(v.pay[:8], math.Float64bits(f))
}

// Bool extracts the held boolean. Only TagBool converts.
func (v Value) Bool() (bool, error) {
	if v.tag != TagBool {
		return false, errMismatch(TagBool, v.tag)
	}
	return v.pay[0] != 0, nil
}

// Ubyte extracts the held ubyte. Exact tag match only.
func (v Value) Ubyte() (uint8, error) {
	if v.tag != TagUbyte {
		return 0, errMismatch(TagUbyte, v.tag)
	}
	return v.pay[0], nil
}

// Byte extracts the held byte. Exact tag match only.
func (v Value) Byte() (int8, error) {
	if v.tag != TagByte {
		return 0, errMismatch(TagByte, v.tag)
	}
	return int8(v.pay[0]), nil
}

// Ushort extracts the held ushort. Exact tag match only.
func (v Value) Ushort() (uint16, error) {
	if v.tag != TagUshort {
		return 0, errMismatch(TagUshort, v.tag)
	}
	return binary.BigEndian.Uint16(v.pay[:2]), nil
}

// Short extracts the held short. Exact tag match only.
func (v Value) Short() (int16, error) {
	if v.tag != TagShort {
		return 0, errMismatch(TagShort, v.tag)
	}
	return int16(binary.BigEndian.Uint16(v.pay[:2])), nil
}

// Uint extracts the held uint. Exact tag match only.
func (v Value) Uint() (uint32, error) {
	if v.tag != TagUint {
		return 0, errMismatch(TagUint, v.tag)
	}
	return binary.BigEndian.Uint32(v.pay[:4]), nil
}

// Int extracts the held int. Exact tag match only.
func (v Value) Int() (int32, error) {
	if v.tag != TagInt {
		return 0, errMismatch(TagInt, v.tag)
	}
	return int32(binary.BigEndian.Uint32(v.pay[:4])), nil
}

// Ulong extracts the held ulong. Exact tag match only.
func (v Value) Ulong() (uint64, error) {
	if v.tag != TagUlong {
		return 0, errMismatch(TagUlong, v.tag)
	}
	return binary.BigEndian.Uint64(v.pay[:8]), nil
}

// Long extracts the held long. Exact tag match only.
func (v Value) Long() (int64, error) {
	if v.tag != TagLong {
		return 0, errMismatch(TagLong, v.tag)
	}
	return int64(binary.BigEndian.Uint64(v.pay[:8])), nil
}

// Float extracts the held float. Exact tag match only; a double does not
// convert.
func (v Value) Float() (float32, error) {
	if v.tag != TagFloat {
		return 0, errMismatch(TagFloat, v.tag)
	}
	return math.Float32frombits(binary.BigEndian.Uint32(v.pay[:4])), nil
}

// Double extracts the held double. Exact tag match only; a float does not
// convert.
func (v Value) Double() (float64, error) {
	if v.tag != TagDouble {
		return 0, errMismatch(TagDouble, v.tag)
	}
	return math.Float64frombits(binary.BigEndian.Uint64(v.pay[:8])), nil
}

// AsInt32 widens any signed integer tag of width <= 4 to int32. Unsigned
// tags, booleans and floats do not convert.
func (v Value) AsInt32() (int32, error) {
	switch v.tag {
	case TagByte:
		return int32(int8(v.pay[0])), nil
	case TagShort:
		return int32(int16(binary.BigEndian.Uint16(v.pay[:2]))), nil
	case TagInt:
		return int32(binary.BigEndian.Uint32(v.pay[:4])), nil
	default:
		return 0, decodeErrorf("type mismatch: cannot widen %s to int32", v.tag)
	}
}

// AsInt64 widens any signed integer tag to int64.
func (v Value) AsInt64() (int64, error) {
	switch v.tag {
	case TagByte:
		return int64(int8(v.pay[0])), nil
	case TagShort:
		return int64(int16(binary.BigEndian.Uint16(v.pay[:2]))), nil
	case TagInt:
		return int64(int32(binary.BigEndian.Uint32(v.pay[:4]))), nil
	case TagLong:
		return int64(binary.BigEndian.Uint64(v.pay[:8])), nil
	default:
		return 0, decodeErrorf("type mismatch: cannot widen %s to int64", v.tag)
	}
}

// AsUint32 widens any unsigned integer tag of width <= 4 to uint32. Signed
// tags do not convert.
func (v Value) AsUint32() (uint32, error) {
	switch v.tag {
	case TagUbyte:
		return uint32(v.pay[0]), nil
	case TagUshort:
		return uint32(binary.BigEndian.Uint16(v.pay[:2])), nil
	case TagUint:
		return binary.BigEndian.Uint32(v.pay[:4]), nil
	default:
		return 0, decodeErrorf("type mismatch: cannot widen %s to uint32", v.tag)
	}
}

// AsUint64 widens any unsigned integer tag to uint64.
func (v Value) AsUint64() (uint64, error) {
	switch v.tag {
	case TagUbyte:
		return uint64(v.pay[0]), nil
	case TagUshort:
		return uint64(binary.BigEndian.Uint16(v.pay[:2])), nil
	case TagUint:
		return uint64(binary.BigEndian.Uint32(v.pay[:4])), nil
	case TagUlong:
		return binary.BigEndian.Uint64(v.pay[:8]), nil
	default:
		return 0, decodeErrorf("type mismatch: cannot widen %s to uint64", v.tag)
	}
}
