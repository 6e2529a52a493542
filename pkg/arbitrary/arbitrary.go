// Package arbitrary holds the gopter generators used by the property checks.
package arbitrary

import (
	"math"
	"reflect"
	"unicode/utf8"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
)

// Ints generates integers in [lo, hi].
func Ints(lo, hi int) gopter.Gen {
	if hi < lo {
		lo, hi = hi, lo
	}
	return gen.IntRange(lo, hi)
}

// AnyInts generates integers over the whole int range, biased toward
// boundaries that matter for range checks.
func AnyInts() gopter.Gen {
	return gen.Weighted([]gen.WeightedGen{
		{Weight: 1, Gen: gen.OneConstOf(0, 1, -1, 255, 256, math.MinInt, math.MaxInt)},
		{Weight: 1, Gen: gen.IntRange(math.MinInt, math.MaxInt)},
		{Weight: 2, Gen: gen.IntRange(-300, 300)},
	}).WithShrinker(gen.IntShrinker)
}

// SliceOf generates slices of g's values with a length in [minLen, maxLen].
// Shrinking keeps the length and shrinks elements.
func SliceOf(g gopter.Gen, minLen, maxLen int) gopter.Gen {
	sliceType := reflect.SliceOf(g(gopter.MinGenParams).ResultType)
	return Ints(minLen, maxLen).FlatMap(func(n interface{}) gopter.Gen {
		return gen.SliceOfN(n.(int), g)
	}, sliceType)
}

// IntLists generates integer slices of length [0, maxLen] with elements in
// [lo, hi].
func IntLists(lo, hi, maxLen int) gopter.Gen {
	return SliceOf(Ints(lo, hi), 0, maxLen)
}

// Strings generates strings of [minLen, maxLen] runes drawn from alphabet.
// Shrinking drops runes down to minLen.
func Strings(alphabet []rune, minLen, maxLen int) gopter.Gen {
	allowed := make(map[rune]bool, len(alphabet))
	for _, r := range alphabet {
		allowed[r] = true
	}
	letters := Ints(0, len(alphabet)-1).Map(func(i int) rune { return alphabet[i] })

	return SliceOf(letters, minLen, maxLen).
		Map(func(rs []rune) string { return string(rs) }).
		WithShrinker(gen.StringShrinker).
		SuchThat(func(s string) bool {
			if n := utf8.RuneCountInString(s); n < minLen || n > maxLen {
				return false
			}
			for _, r := range s {
				if !allowed[r] {
					return false
				}
			}
			return true
		})
}

// Alphabets used by the roster generators.
var (
	Lowercase = []rune("abcdefghijklmnopqrstuvwxyz")
	Printable = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 .,;:-_'\"!?#&/\\()[]{}éüßøλжあ😀")
)

// Sample draws n values of type T from g with a source seeded with seed.
// Values rejected by g's sieve are skipped.
func Sample[T any](g gopter.Gen, seed int64, n int) []T {
	params := gopter.DefaultGenParameters().CloneWithSeed(seed)
	out := make([]T, 0, n)
	for len(out) < n {
		if v, ok := g(params).Retrieve(); ok {
			out = append(out, v.(T))
		}
	}
	return out
}
