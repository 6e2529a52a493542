// Package color defines Color, a closed sum type over the three color
// representations chromapack can encode: a catalog name, RGB and CMYK.
//
// A Color can only be obtained from a validating constructor (Named, RGB,
// CMYK), from Parse, or from the codec, so every non-zero Color is valid.
// The zero Color is the unset value; Valid reports false for it.
package color

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/ssargent/chromapack/pkg/catalog"
)

const (
	// MinChannel is the smallest value an RGB or CMYK channel may hold.
	MinChannel = 0
	// MaxChannel is the largest value an RGB or CMYK channel may hold.
	MaxChannel = 255
)

// Kind discriminates the Color variants.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNamed
	KindRGB
	KindCMYK
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindNamed:   "named",
	KindRGB:     "rgb",
	KindCMYK:    "cmyk",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindInvalid]
}

// Tag returns the wire tag of the variant, or -1 for KindInvalid.
func (k Kind) Tag() int {
	switch k {
	case KindNamed:
		return 0
	case KindRGB:
		return 1
	case KindCMYK:
		return 2
	default:
		return -1
	}
}

// Arity returns the number of fields that follow the tag on the wire.
func (k Kind) Arity() int {
	switch k {
	case KindNamed:
		return 1
	case KindRGB:
		return 3
	case KindCMYK:
		return 4
	default:
		return 0
	}
}

// KindForTag maps a wire tag back to its variant.
func KindForTag(tag int) (Kind, bool) {
	switch tag {
	case 0:
		return KindNamed, true
	case 1:
		return KindRGB, true
	case 2:
		return KindCMYK, true
	default:
		return KindInvalid, false
	}
}

var channelNames = map[Kind][]string{
	KindRGB:  {"red", "green", "blue"},
	KindCMYK: {"cyan", "magenta", "yellow", "black"},
}

// Color is an immutable, always-valid color value. Colors are comparable with
// == and Equal; values of different kinds are never equal.
type Color struct {
	kind     Kind
	name     string
	channels [4]int
}

// Named creates a Color referring to a catalog entry.
func Named(name string) (Color, error) {
	if !catalog.Default().Contains(name) {
		return Color{}, &catalog.UnknownNameError{Name: name}
	}
	return Color{kind: KindNamed, name: name}, nil
}

// RGB creates an RGB color. Each channel must be in [0, 255].
func RGB(red, green, blue int) (Color, error) {
	return fromChannels(KindRGB, red, green, blue)
}

// CMYK creates a CMYK color. Each channel must be in [0, 255].
func CMYK(cyan, magenta, yellow, black int) (Color, error) {
	return fromChannels(KindCMYK, cyan, magenta, yellow, black)
}

// FromChannels creates an RGB or CMYK color from its channel values in
// declared order.
func FromChannels(kind Kind, values ...int) (Color, error) {
	return fromChannels(kind, values...)
}

func fromChannels(kind Kind, values ...int) (Color, error) {
	names, ok := channelNames[kind]
	if !ok || len(values) != len(names) {
		return Color{}, &ArityError{Kind: kind, Got: len(values)}
	}
	c := Color{kind: kind}
	for i, v := range values {
		if v < MinChannel || v > MaxChannel {
			return Color{}, &catalog.OutOfRangeError{Field: names[i], Value: v, Min: MinChannel, Max: MaxChannel}
		}
		c.channels[i] = v
	}
	return c, nil
}

// MustNamed is like Named but panics on error.
func MustNamed(name string) Color {
	return must(Named(name))
}

// MustRGB is like RGB but panics on error.
func MustRGB(red, green, blue int) Color {
	return must(RGB(red, green, blue))
}

// MustCMYK is like CMYK but panics on error.
func MustCMYK(cyan, magenta, yellow, black int) Color {
	return must(CMYK(cyan, magenta, yellow, black))
}

func must(c Color, err error) Color {
	if err != nil {
		panic(err)
	}
	return c
}

// Kind returns the variant of c.
func (c Color) Kind() Kind { return c.kind }

// Tag returns the wire tag of c.
func (c Color) Tag() int { return c.kind.Tag() }

// Valid reports whether c was produced by a constructor. Only the zero Color
// is invalid.
func (c Color) Valid() bool { return c.kind != KindInvalid }

// Name returns the catalog name of a Named color.
func (c Color) Name() (string, bool) {
	return c.name, c.kind == KindNamed
}

// RGB returns the channels of an RGB color.
func (c Color) RGB() (red, green, blue int, ok bool) {
	if c.kind != KindRGB {
		return 0, 0, 0, false
	}
	return c.channels[0], c.channels[1], c.channels[2], true
}

// CMYK returns the channels of a CMYK color.
func (c Color) CMYK() (cyan, magenta, yellow, black int, ok bool) {
	if c.kind != KindCMYK {
		return 0, 0, 0, 0, false
	}
	return c.channels[0], c.channels[1], c.channels[2], c.channels[3], true
}

// Channels returns the channel values of an RGB or CMYK color in declared
// order, and nil for any other kind.
func (c Color) Channels() []int {
	n := len(channelNames[c.kind])
	if n == 0 {
		return nil
	}
	out := make([]int, n)
	copy(out, c.channels[:n])
	return out
}

// Equal reports whether c and other are the same variant with the same fields.
func (c Color) Equal(other Color) bool {
	return c == other
}

// Hash returns a hash consistent with Equal.
func (c Color) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	buf[0] = byte(c.kind)
	_, _ = d.Write(buf[:1])
	if c.kind == KindNamed {
		_, _ = d.WriteString(c.name)
		return d.Sum64()
	}
	for _, v := range c.channels[:len(channelNames[c.kind])] {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
