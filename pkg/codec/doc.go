// Package codec packs colors into tagged integer sequences and unpacks
// arbitrary integer sequences back into colors.
//
// # Packed Format
//
// A packed color is a flat sequence of integers. The first element is the
// variant tag; the remaining elements are the variant's fields in declared
// order:
//
//	Named  [0][CatalogIndex]
//	RGB    [1][Red][Green][Blue]
//	CMYK   [2][Cyan][Magenta][Yellow][Black]
//
// The length of a sequence is always 1 + arity(tag). Channel values are in
// [0, 255]. A Named color is encoded as the zero-based position of its name in
// the default catalog (Red, Green, Blue, Purple, Orange, Yellow).
//
// There is no version field. The catalog order is part of the format.
//
// # Usage
//
//	c := codec.NewColorCodec()
//
//	packed := c.Pack(color.MustRGB(10, 20, 30)) // [1 10 20 30]
//
//	back, err := c.Unpack(packed)
//	if err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Unpack is total: for any finite input it either returns a valid Color or a
// *DecodeError. It never panics. Structural problems (empty input, input
// longer than five elements, an unknown tag, a length that does not match the
// tag) and field problems (a channel outside [0, 255], a catalog index with no
// entry) are reported by the same error type; the construction error, when
// there is one, is available through errors.Unwrap.
//
// Any sequence that Unpack accepts packs back to exactly the same sequence.
//
// # Thread Safety
//
// ColorCodec holds no mutable state and is safe for concurrent use.
package codec
