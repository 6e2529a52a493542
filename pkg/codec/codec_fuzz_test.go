//go:build fuzz
// +build fuzz

package codec

import (
	"encoding/binary"
	"errors"
	"testing"
)

// toInts reinterprets data as little-endian int64 values, one per 8 bytes.
func toInts(data []byte) []int {
	out := make([]int, 0, len(data)/8)
	for len(data) >= 8 {
		out = append(out, int(int64(binary.LittleEndian.Uint64(data))))
		data = data[8:]
	}
	return out
}

func fromInts(vals ...int) []byte {
	buf := make([]byte, 8*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint64(buf[8*i:], uint64(v))
	}
	return buf
}

// FuzzColorCodec_Unpack checks totality and closure on arbitrary sequences
func FuzzColorCodec_Unpack(f *testing.F) {
	codec := NewColorCodec()

	f.Add(fromInts())
	f.Add(fromInts(1, 10, 20, 30))
	f.Add(fromInts(0, 2))
	f.Add(fromInts(0, 99))
	f.Add(fromInts(1, 10, 20, 30, 99))
	f.Add(fromInts(2, 0, 0, 0, 256))

	f.Fuzz(func(t *testing.T, data []byte) {
		seq := toInts(data)

		c, err := codec.Unpack(seq)
		if err != nil {
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("Unpack(%v) returned %T, want *DecodeError", seq, err)
			}
			return
		}

		if packed := codec.Pack(c); !packed.Equal(seq) {
			t.Errorf("Unpack(%v) = %v, which packs to %v", seq, c, packed)
		}
	})
}

// FuzzColorCodec_RoundTrip packs channel values that may or may not be valid
func FuzzColorCodec_RoundTrip(f *testing.F) {
	codec := NewColorCodec()

	f.Add(10, 20, 30, 40)
	f.Add(0, 0, 0, 255)
	f.Add(-1, 256, 0, 0)

	f.Fuzz(func(t *testing.T, a, b, c, d int) {
		for _, seq := range [][]int{{1, a, b, c}, {2, a, b, c, d}, {0, a}} {
			col, err := codec.Unpack(seq)
			if err != nil {
				continue
			}
			back, err := codec.Unpack(codec.Pack(col))
			if err != nil {
				t.Fatalf("round trip of %v failed: %v", col, err)
			}
			if !back.Equal(col) {
				t.Errorf("round trip changed %v into %v", col, back)
			}
		}
	})
}
