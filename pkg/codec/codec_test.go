package codec

import (
	"errors"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/chromapack/pkg/arbitrary"
	"github.com/ssargent/chromapack/pkg/catalog"
	"github.com/ssargent/chromapack/pkg/color"
)

func TestColorCodec_Pack(t *testing.T) {
	codec := NewColorCodec()

	testCases := []struct {
		name  string
		color color.Color
		want  PackedSequence
	}{
		{name: "rgb", color: color.MustRGB(10, 20, 30), want: PackedSequence{1, 10, 20, 30}},
		{name: "named blue", color: color.MustNamed("Blue"), want: PackedSequence{0, 2}},
		{name: "named red", color: color.MustNamed("Red"), want: PackedSequence{0, 0}},
		{name: "named yellow", color: color.MustNamed("Yellow"), want: PackedSequence{0, 5}},
		{name: "cmyk", color: color.MustCMYK(0, 0, 0, 255), want: PackedSequence{2, 0, 0, 0, 255}},
		{name: "zero color", color: color.Color{}, want: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, codec.Pack(tc.color))
		})
	}
}

func TestColorCodec_Unpack(t *testing.T) {
	codec := NewColorCodec()

	testCases := []struct {
		name string
		seq  []int
		want color.Color
	}{
		{name: "rgb", seq: []int{1, 10, 20, 30}, want: color.MustRGB(10, 20, 30)},
		{name: "named blue", seq: []int{0, 2}, want: color.MustNamed("Blue")},
		{name: "cmyk bounds", seq: []int{2, 0, 255, 0, 255}, want: color.MustCMYK(0, 255, 0, 255)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := codec.Unpack(tc.seq)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestColorCodec_UnpackRejects(t *testing.T) {
	codec := NewColorCodec()

	testCases := []struct {
		name      string
		seq       []int
		wantCause bool
		wantTag   bool
	}{
		{name: "nil", seq: nil},
		{name: "empty", seq: []int{}},
		{name: "rgb with extra element", seq: []int{1, 10, 20, 30, 99}, wantTag: true},
		{name: "catalog index out of range", seq: []int{0, 99}, wantCause: true, wantTag: true},
		{name: "negative catalog index", seq: []int{0, -1}, wantCause: true, wantTag: true},
		{name: "too long", seq: []int{2, 0, 0, 0, 0, 0}},
		{name: "far too long", seq: make([]int, 1000)},
		{name: "unknown tag", seq: []int{3, 1, 2, 3}, wantTag: true},
		{name: "negative tag", seq: []int{-1, 0}, wantTag: true},
		{name: "tag only", seq: []int{0}, wantTag: true},
		{name: "named too long", seq: []int{0, 1, 2}, wantTag: true},
		{name: "cmyk too short", seq: []int{2, 1, 2, 3}, wantTag: true},
		{name: "rgb channel 256", seq: []int{1, 0, 256, 0}, wantCause: true, wantTag: true},
		{name: "cmyk negative channel", seq: []int{2, 0, 0, -5, 0}, wantCause: true, wantTag: true},
		{name: "extreme values", seq: []int{1, math.MaxInt, math.MinInt, 0}, wantCause: true, wantTag: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := codec.Unpack(tc.seq)
			var decodeErr *DecodeError
			require.True(t, errors.As(err, &decodeErr), "expected DecodeError, got %v", err)
			assert.False(t, got.Valid(), "rejected input must not yield a color")
			assert.Equal(t, len(tc.seq), decodeErr.Len)
			assert.Equal(t, tc.wantTag, decodeErr.Tag != nil)
			assert.Equal(t, tc.wantCause, decodeErr.Cause != nil)
		})
	}
}

func TestColorCodec_UnpackFieldCause(t *testing.T) {
	_, err := Unpack([]int{0, 99})
	var rangeErr *catalog.OutOfRangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, 99, rangeErr.Value)
	assert.Contains(t, err.Error(), "invalid packed field")

	_, err = Unpack([]int{1, 10, 20, 30, 99})
	assert.Contains(t, err.Error(), "invalid packed sequence")
	assert.Contains(t, err.Error(), "tag 1")
}

func TestColorCodec_UnpackDoesNotRetainInput(t *testing.T) {
	seq := []int{1, 10, 20, 30}
	c, err := Unpack(seq)
	require.NoError(t, err)

	seq[1] = 99
	r, _, _, _ := c.RGB()
	assert.Equal(t, 10, r)
}

func TestColorCodec_PackUnpackRoundTrip(t *testing.T) {
	codec := NewColorCodec()
	params := gopter.DefaultTestParametersWithSeed(42)
	params.MinSuccessfulTests = 2000

	properties := gopter.NewProperties(params)
	properties.Property("unpack inverts pack", prop.ForAll(func(c color.Color) bool {
		back, err := codec.Unpack(codec.Pack(c))
		return err == nil && back.Equal(c)
	}, arbitrary.Colors()))
	properties.TestingRun(t)
}

func TestColorCodec_UnpackTotality(t *testing.T) {
	codec := NewColorCodec()
	gens := map[string]gopter.Gen{
		"byte lists":  arbitrary.IntLists(0, 255, 8),
		"near packed": arbitrary.NearPacked(),
		"any ints":    arbitrary.SliceOf(arbitrary.AnyInts(), 0, 8),
	}

	for name, gen := range gens {
		t.Run(name, func(t *testing.T) {
			accepted := 0
			for _, seq := range arbitrary.Sample[[]int](gen, 7, 5000) {
				var (
					c   color.Color
					err error
				)
				require.NotPanics(t, func() { c, err = codec.Unpack(seq) }, "input %v", seq)
				if err != nil {
					var decodeErr *DecodeError
					require.True(t, errors.As(err, &decodeErr), "input %v gave %T", seq, err)
					continue
				}
				accepted++
				require.True(t, codec.Pack(c).Equal(seq), "input %v packed back as %v", seq, codec.Pack(c))
			}
			t.Logf("%s: %d accepted", name, accepted)
		})
	}
}

func TestColorCodec_ExhaustiveShortSequences(t *testing.T) {
	// Every tag/index combination for Named, plus every tag for each length.
	for tag := -1; tag <= 3; tag++ {
		for length := 1; length <= MaxPackedLen+1; length++ {
			seq := make([]int, length)
			seq[0] = tag
			c, err := Unpack(seq)
			kind, ok := color.KindForTag(tag)
			valid := ok && length == 1+kind.Arity()
			if valid {
				require.NoError(t, err, "seq %v", seq)
				assert.True(t, Pack(c).Equal(seq))
			} else {
				assert.Error(t, err, "seq %v", seq)
			}
		}
	}
	for idx := -2; idx < 8; idx++ {
		_, err := Unpack([]int{0, idx})
		assert.Equal(t, idx >= 0 && idx < catalog.Default().Size(), err == nil, "index %d", idx)
	}
}
