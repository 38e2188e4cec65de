package amqpwire

// TypeTag identifies one of the fixed-width AMQP primitive scalar types.
type TypeTag uint8

const (
	TagInvalid TypeTag = iota
	TagBool
	TagUbyte
	TagByte
	TagUshort
	TagShort
	TagUint
	TagInt
	TagUlong
	TagLong
	TagFloat
	TagDouble
)

// AMQP 1.0 fixed-width constructor codes. Booleans use two distinct
// zero-payload codes; everything else is one code byte followed by a
// big-endian payload of the tag's width.
const (
	CodeBoolTrue  byte = 0x41
	CodeBoolFalse byte = 0x42
	CodeUbyte     byte = 0x50
	CodeByte      byte = 0x51
	CodeUshort    byte = 0x60
	CodeShort     byte = 0x61
	CodeUint      byte = 0x70
	CodeInt       byte = 0x71
	CodeFloat     byte = 0x72
	CodeUlong     byte = 0x80
	CodeLong      byte = 0x81
	CodeDouble    byte = 0x82
)

var tagWidths = [...]int{0, 0, 1, 1, 2, 2, 4, 4, 8, 8, 4, 8}

var tagNames = [...]string{
	"invalid",
	"boolean",
	"ubyte",
	"byte",
	"ushort",
	"short",
	"uint",
	"int",
	"ulong",
	"long",
	"float",
	"double",
}

func (t TypeTag) String() string {
	if int(t) >= len(tagNames) {
		return "invalid"
	}
	return tagNames[t]
}

// Width returns the payload size in bytes for elements of this tag. The
// boolean width is 0 because the truth value lives in the code byte itself.
func (t TypeTag) Width() int {
	if int(t) >= len(tagWidths) {
		return 0
	}
	return tagWidths[t]
}

// TagFromCode maps a wire code byte back to its TypeTag. Both boolean codes
// map to TagBool. The second result is false for codes outside the closed
// scalar set.
func TagFromCode(code byte) (TypeTag, bool) {
	switch code {
	case CodeBoolTrue, CodeBoolFalse:
		return TagBool, true
	case CodeUbyte:
		return TagUbyte, true
	case CodeByte:
		return TagByte, true
	case CodeUshort:
		return TagUshort, true
	case CodeShort:
		return TagShort, true
	case CodeUint:
		return TagUint, true
	case CodeInt:
		return TagInt, true
	case CodeUlong:
		return TagUlong, true
	case CodeLong:
		return TagLong, true
	case CodeFloat:
		return TagFloat, true
	case CodeDouble:
		return TagDouble, true
	default:
		return TagInvalid, false
	}
}

// tagFromName is the reverse of String for the supported scalar tags.
func tagFromName(name string) (TypeTag, bool) {
	for i := int(TagBool); i < len(tagNames); i++ {
		if tagNames[i] == name {
			return TypeTag(i), true
		}
	}
	return TagInvalid, false
}

func (t TypeTag) signedInteger() bool {
	switch t {
	case TagByte, TagShort, TagInt, TagLong:
		return true
	}
	return false
}

func (t TypeTag) unsignedInteger() bool {
	switch t {
	case TagUbyte, TagUshort, TagUint, TagUlong:
		return true
	}
	return false
}
