package codec

import "fmt"

const (
	reasonShape = "invalid packed sequence"
	reasonField = "invalid packed field"
)

// DecodeError reports a packed sequence with no valid shape, tag and field
// combination. It is the only error Unpack returns.
type DecodeError struct {
	Reason string
	Len    int
	// Tag is nil when the sequence was rejected before the tag was read.
	Tag   *int
	Cause error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("%s (length %d", e.Reason, e.Len)
	if e.Tag != nil {
		msg += fmt.Sprintf(", tag %d", *e.Tag)
	}
	msg += ")"
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
