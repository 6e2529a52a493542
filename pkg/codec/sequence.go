package codec

import (
	"fmt"
	"strconv"
	"strings"
)

// PackedSequence is the integer encoding of a Color.
type PackedSequence []int

// Equal reports whether s and other hold the same integers in the same order.
func (s PackedSequence) Equal(other []int) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders s as "[1,10,20,30]".
func (s PackedSequence) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')
	return b.String()
}

// ParseSequence reads integers separated by commas or whitespace, optionally
// wrapped in square brackets: "1,10,20,30", "[1, 10, 20, 30]" and
// "1 10 20 30" are equivalent. "[]" and "" yield an empty sequence.
func ParseSequence(s string) (PackedSequence, error) {
	in := strings.TrimSpace(s)
	if strings.HasPrefix(in, "[") {
		if !strings.HasSuffix(in, "]") {
			return nil, fmt.Errorf("unterminated sequence %q", s)
		}
		in = in[1 : len(in)-1]
	}

	fields := strings.FieldsFunc(in, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	seq := make(PackedSequence, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q in sequence: %w", f, err)
		}
		seq = append(seq, v)
	}
	return seq, nil
}
