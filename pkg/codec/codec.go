package codec

import (
	"github.com/ssargent/chromapack/pkg/catalog"
	"github.com/ssargent/chromapack/pkg/color"
)

// MaxPackedLen is the length of the longest valid packed sequence (CMYK).
const MaxPackedLen = 5

// ColorCodec converts between Color values and packed sequences.
type ColorCodec struct {
	catalog *catalog.Catalog
}

// NewColorCodec creates a codec bound to the default catalog.
func NewColorCodec() *ColorCodec {
	return &ColorCodec{catalog: catalog.Default()}
}

var defaultCodec = NewColorCodec()

// Pack encodes c with the default codec.
func Pack(c color.Color) PackedSequence {
	return defaultCodec.Pack(c)
}

// Unpack decodes seq with the default codec.
func Unpack(seq []int) (color.Color, error) {
	return defaultCodec.Unpack(seq)
}

// Pack encodes c as [tag, fields...]. The zero Color packs to nil.
func (cc *ColorCodec) Pack(c color.Color) PackedSequence {
	switch c.Kind() {
	case color.KindNamed:
		name, _ := c.Name()
		idx, err := cc.catalog.IndexOf(name)
		if err != nil {
			// Named colors are validated against the default catalog on
			// construction, so this is unreachable.
			panic(err)
		}
		return PackedSequence{c.Tag(), idx}
	case color.KindRGB, color.KindCMYK:
		seq := make(PackedSequence, 0, 1+c.Kind().Arity())
		seq = append(seq, c.Tag())
		return append(seq, c.Channels()...)
	default:
		return nil
	}
}

// Unpack decodes seq into a Color. Every rejection is a *DecodeError.
func (cc *ColorCodec) Unpack(seq []int) (color.Color, error) {
	if len(seq) == 0 || len(seq) > MaxPackedLen {
		return color.Color{}, &DecodeError{Reason: reasonShape, Len: len(seq)}
	}

	tag := seq[0]
	kind, ok := color.KindForTag(tag)
	if !ok || len(seq) != 1+kind.Arity() {
		return color.Color{}, &DecodeError{Reason: reasonShape, Len: len(seq), Tag: &tag}
	}

	var (
		c   color.Color
		err error
	)
	switch kind {
	case color.KindNamed:
		var name string
		name, err = cc.catalog.NameAt(seq[1])
		if err == nil {
			c, err = color.Named(name)
		}
	case color.KindRGB, color.KindCMYK:
		c, err = color.FromChannels(kind, seq[1:]...)
	}
	if err != nil {
		return color.Color{}, &DecodeError{Reason: reasonField, Len: len(seq), Tag: &tag, Cause: err}
	}
	return c, nil
}
