package amqpwire

import (
	"errors"
	"fmt"
)

// DecodeError is the single error kind reported by Decoder reads and Value
// conversions: tag mismatch on a typed read, truncated payload, unknown wire
// code, or reading past the end of the buffer.
type DecodeError struct {
	msg string
}

func (e *DecodeError) Error() string {
	return e.msg
}

func decodeErrorf(format string, args ...any) *DecodeError {
	return &DecodeError{msg: fmt.Sprintf(format, args...)}
}

func errMismatch(want, got TypeTag) *DecodeError {
	return decodeErrorf("type mismatch: want %s, have %s", want, got)
}

// IsDecodeError reports whether err is (or wraps) a DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
