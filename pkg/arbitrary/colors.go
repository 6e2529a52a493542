package arbitrary

import (
	"reflect"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"

	"github.com/ssargent/chromapack/pkg/catalog"
	"github.com/ssargent/chromapack/pkg/color"
)

// maxNearPackedLen is one past the longest valid encoding.
const maxNearPackedLen = 7

// Channels generates valid channel values in [0, 255].
func Channels() gopter.Gen {
	return Ints(color.MinChannel, color.MaxChannel)
}

// NamedColors generates colors drawn from the default catalog.
func NamedColors() gopter.Gen {
	cat := catalog.Default()
	return Ints(0, cat.Size()-1).Map(func(i int) color.Color {
		name, _ := cat.NameAt(i)
		return color.MustNamed(name)
	})
}

// RGBColors generates RGB colors with in-range channels.
func RGBColors() gopter.Gen {
	return gen.SliceOfN(3, Channels()).Map(func(ch []int) color.Color {
		return color.MustRGB(ch[0], ch[1], ch[2])
	})
}

// CMYKColors generates CMYK colors with in-range channels.
func CMYKColors() gopter.Gen {
	return gen.SliceOfN(4, Channels()).Map(func(ch []int) color.Color {
		return color.MustCMYK(ch[0], ch[1], ch[2], ch[3])
	})
}

// Colors generates any valid color, choosing the variant uniformly.
func Colors() gopter.Gen {
	return gen.OneGenOf(NamedColors(), RGBColors(), CMYKColors())
}

// NearPacked generates integer sequences shaped like packed colors: short,
// with tags around the valid range and fields around the channel bounds.
// A useful share of them decode; the rest exercise every rejection path.
func NearPacked() gopter.Gen {
	tag := Ints(-1, 3)
	field := gen.Weighted([]gen.WeightedGen{
		{Weight: 1, Gen: Channels()},
		{Weight: 1, Gen: Ints(-2, 257)},
		{Weight: 1, Gen: gen.OneConstOf(0, 5, 6, 255, 256, -1)},
	}).WithShrinker(gen.IntShrinker)

	byLen := make([]gopter.Gen, maxNearPackedLen+1)
	byLen[0] = gen.Const([]int{})
	for n := 1; n <= maxNearPackedLen; n++ {
		byLen[n] = gopter.CombineGens(tag, gen.SliceOfN(n-1, field)).Map(func(parts []interface{}) []int {
			return append([]int{parts[0].(int)}, parts[1].([]int)...)
		})
	}

	return Ints(0, maxNearPackedLen).FlatMap(func(n interface{}) gopter.Gen {
		return byLen[n.(int)]
	}, reflect.TypeOf([]int(nil)))
}
