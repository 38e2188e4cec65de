package amqpwire

import "github.com/delaneyj/toolbelt"

var encoderPool = toolbelt.New(func() *Encoder {
	return &Encoder{values: make([]Value, 0, 16)}
})

// AcquireEncoder returns a pooled empty Encoder. Callers doing repeated
// encode cycles should pair it with ReleaseEncoder.
func AcquireEncoder() *Encoder {
	return encoderPool.Get()
}

// ReleaseEncoder resets e and returns it to the pool. e must not be used
// afterwards.
func ReleaseEncoder(e *Encoder) {
	if e == nil {
		return
	}
	e.Reset()
	encoderPool.Put(e)
}
