package amqpwire

import (
	stdjson "encoding/json"
	"fmt"
	"math"

	"github.com/minio/simdjson-go"
)

// JSON descriptor form for scalar sequences: an array of objects carrying
// the AMQP type name and the value, e.g.
//
//	[{"type": "boolean", "value": true}, {"type": "ushort", "value": 42}]
//
// This is the authoring format for wire fixtures; FromJSON and ToJSON are
// inverses over the supported scalar set.

type descriptor struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// FromJSON parses a JSON descriptor array using simdjson-go and returns an
// Encoder populated with the described sequence.
func FromJSON(data []byte) (*Encoder, error) {
	parsed, err := simdjson.Parse(data, nil)
	if err != nil {
		return nil, err
	}
	it := parsed.Iter()
	if it.Advance() != simdjson.TypeRoot {
		return nil, fmt.Errorf("json root not found")
	}
	typ, root, err := it.Root(nil)
	if err != nil {
		return nil, err
	}
	if typ != simdjson.TypeArray {
		return nil, fmt.Errorf("descriptor root must be an array, got %v", typ)
	}
	arr, err := root.Array(nil)
	if err != nil {
		return nil, err
	}

	enc := NewEncoder()
	iter := arr.Iter()
	idx := 0
	for {
		t := iter.Advance()
		if t == simdjson.TypeNone {
			break
		}
		if t != simdjson.TypeObject {
			return nil, fmt.Errorf("descriptor %d: expected object, got %v", idx, t)
		}
		elem := iter
		val, err := valueFromDescriptor(&elem)
		if err != nil {
			return nil, fmt.Errorf("descriptor %d: %w", idx, err)
		}
		if err := enc.WriteValue(val); err != nil {
			return nil, fmt.Errorf("descriptor %d: %w", idx, err)
		}
		idx++
	}
	return enc, nil
}

func valueFromDescriptor(it *simdjson.Iter) (Value, error) {
	obj, err := it.Object(nil)
	if err != nil {
		return Value{}, err
	}
	var (
		typeName string
		haveType bool
		valIter  simdjson.Iter
		haveVal  bool
	)
	var iterErr error
	err = obj.ForEach(func(key []byte, elem simdjson.Iter) {
		switch string(key) {
		case "type":
			s, err := elem.StringBytes()
			if err != nil {
				iterErr = err
				return
			}
			typeName = string(s)
			haveType = true
		case "value":
			valIter = elem
			haveVal = true
		}
	}, nil)
	if err != nil {
		return Value{}, err
	}
	if iterErr != nil {
		return Value{}, iterErr
	}
	if !haveType {
		return Value{}, fmt.Errorf("missing \"type\" field")
	}
	if !haveVal {
		return Value{}, fmt.Errorf("missing \"value\" field")
	}
	tag, ok := tagFromName(typeName)
	if !ok {
		return Value{}, fmt.Errorf("unsupported type name %q", typeName)
	}
	return valueFromJSONIter(tag, &valIter)
}

func valueFromJSONIter(tag TypeTag, it *simdjson.Iter) (Value, error) {
	var v Value
	switch tag {
	case TagBool:
		b, err := it.Bool()
		if err != nil {
			return Value{}, err
		}
		v.SetBool(b)
	case TagFloat:
		f, err := jsonFloat(it)
		if err != nil {
			return Value{}, err
		}
		v.SetFloat(float32(f))
	case TagDouble:
		f, err := jsonFloat(it)
		if err != nil {
			return Value{}, err
		}
		v.SetDouble(f)
	default:
		if tag.signedInteger() {
			i, err := it.Int()
			if err != nil {
				return Value{}, err
			}
			return signedValue(tag, i)
		}
		u, err := jsonUint(it)
		if err != nil {
			return Value{}, err
		}
		return unsignedValue(tag, u)
	}
	return v, nil
}

func signedValue(tag TypeTag, i int64) (Value, error) {
	var v Value
	switch tag {
	case TagByte:
		if i < math.MinInt8 || i > math.MaxInt8 {
			return Value{}, fmt.Errorf("value %d out of range for byte", i)
		}
		v.SetByte(int8(i))
	case TagShort:
		if i < math.MinInt16 || i > math.MaxInt16 {
			return Value{}, fmt.Errorf("value %d out of range for short", i)
		}
		v.SetShort(int16(i))
	case TagInt:
		if i < math.MinInt32 || i > math.MaxInt32 {
			return Value{}, fmt.Errorf("value %d out of range for int", i)
		}
		v.SetInt(int32(i))
	case TagLong:
		v.SetLong(i)
	}
	return v, nil
}

func unsignedValue(tag TypeTag, u uint64) (Value, error) {
	var v Value
	switch tag {
	case TagUbyte:
		if u > math.MaxUint8 {
			return Value{}, fmt.Errorf("value %d out of range for ubyte", u)
		}
		v.SetUbyte(uint8(u))
	case TagUshort:
		if u > math.MaxUint16 {
			return Value{}, fmt.Errorf("value %d out of range for ushort", u)
		}
		v.SetUshort(uint16(u))
	case TagUint:
		if u > math.MaxUint32 {
			return Value{}, fmt.Errorf("value %d out of range for uint", u)
		}
		v.SetUint(uint32(u))
	case TagUlong:
		v.SetUlong(u)
	}
	return v, nil
}

func jsonFloat(it *simdjson.Iter) (float64, error) {
	switch it.Type() {
	case simdjson.TypeFloat:
		return it.Float()
	case simdjson.TypeInt:
		i, err := it.Int()
		if err != nil {
			return 0, err
		}
		return float64(i), nil
	case simdjson.TypeUint:
		u, err := it.Uint()
		if err != nil {
			return 0, err
		}
		return float64(u), nil
	default:
		return 0, fmt.Errorf("expected number, got %v", it.Type())
	}
}

func jsonUint(it *simdjson.Iter) (uint64, error) {
	switch it.Type() {
	case simdjson.TypeUint:
		return it.Uint()
	case simdjson.TypeInt:
		i, err := it.Int()
		if err != nil {
			return 0, err
		}
		if i < 0 {
			return 0, fmt.Errorf("negative value %d for unsigned type", i)
		}
		return uint64(i), nil
	default:
		return 0, fmt.Errorf("expected non-negative integer, got %v", it.Type())
	}
}

// ToJSON decodes wire bytes and returns the JSON descriptor array for the
// full sequence.
func ToJSON(buf []byte) ([]byte, error) {
	descs := []descriptor{}
	pos := 0
	for pos < len(buf) {
		v, n, err := DecodeValue(buf[pos:])
		if err != nil {
			return nil, err
		}
		val, err := valueToAny(v)
		if err != nil {
			return nil, err
		}
		descs = append(descs, descriptor{Type: v.tag.String(), Value: val})
		pos += n
	}
	return stdjson.Marshal(descs)
}

func valueToAny(v Value) (any, error) {
	switch v.tag {
	case TagBool:
		return v.Bool()
	case TagUbyte:
		return v.Ubyte()
	case TagByte:
		return v.Byte()
	case TagUshort:
		return v.Ushort()
	case TagShort:
		return v.Short()
	case TagUint:
		return v.Uint()
	case TagInt:
		return v.Int()
	case TagUlong:
		return v.Ulong()
	case TagLong:
		return v.Long()
	case TagFloat:
		return v.Float()
	case TagDouble:
		return v.Double()
	default:
		return nil, decodeErrorf("cannot render empty value")
	}
}
