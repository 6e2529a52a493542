package property

import (
	"errors"
	"fmt"

	"github.com/leanovate/gopter"

	"github.com/ssargent/chromapack/pkg/arbitrary"
	"github.com/ssargent/chromapack/pkg/codec"
	"github.com/ssargent/chromapack/pkg/color"
	"github.com/ssargent/chromapack/pkg/roster"
)

// maxListLen bounds generated integer lists; anything longer than a CMYK
// sequence is rejected the same way, so longer lists add nothing.
const maxListLen = 8

// PackingRoundTrip checks that unpack(pack(c)) == c for valid colors.
func PackingRoundTrip(cc *codec.ColorCodec) Property {
	return ForAll("packing round trip", arbitrary.Colors(), func(c color.Color) error {
		packed := cc.Pack(c)
		back, err := cc.Unpack(packed)
		if err != nil {
			return fmt.Errorf("unpack %v: %w", packed, err)
		}
		if !back.Equal(c) {
			return fmt.Errorf("got %v back from %v", back, packed)
		}
		return nil
	})
}

// UnpackingTotality checks that every sequence from gen is either rejected
// with a *codec.DecodeError or decodes to a color that packs back to it.
func UnpackingTotality(name string, cc *codec.ColorCodec, gen gopter.Gen) Property {
	return ForAll(name, gen, func(seq []int) error {
		c, err := cc.Unpack(seq)
		if err != nil {
			var decodeErr *codec.DecodeError
			if !errors.As(err, &decodeErr) {
				return fmt.Errorf("unexpected error type %T: %w", err, err)
			}
			return nil
		}
		if packed := cc.Pack(c); !packed.Equal(seq) {
			return fmt.Errorf("decoded %v packs to %v", c, packed)
		}
		return nil
	})
}

// MappingRoundTrip checks that ser.Deserialize(ser.Serialize(m)) == m.
func MappingRoundTrip(name string, ser roster.Serializer, gen gopter.Gen) Property {
	return ForAll(name, gen, func(m roster.Mapping) error {
		text, err := ser.Serialize(m)
		if err != nil {
			return err
		}
		back, err := ser.Deserialize(text)
		if err != nil {
			return err
		}
		if !back.Equal(m) {
			return fmt.Errorf("mapping changed through %q", text)
		}
		return nil
	})
}

// Suite returns the standard property set for a codec and a roster
// serializer.
func Suite(cc *codec.ColorCodec, ser roster.Serializer) []Property {
	return []Property{
		PackingRoundTrip(cc),
		UnpackingTotality("unpacking totality (byte lists)", cc, arbitrary.IntLists(0, 255, maxListLen)),
		UnpackingTotality("unpacking totality (near packed)", cc, arbitrary.NearPacked()),
		UnpackingTotality("unpacking totality (any ints)", cc, arbitrary.SliceOf(arbitrary.AnyInts(), 0, maxListLen)),
		MappingRoundTrip("mapping round trip", ser, arbitrary.Mappings(arbitrary.Lowercase)),
	}
}
