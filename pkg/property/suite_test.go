package property

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/chromapack/pkg/arbitrary"
	"github.com/ssargent/chromapack/pkg/codec"
	"github.com/ssargent/chromapack/pkg/roster"
)

func TestSuite_Passes(t *testing.T) {
	serializers := map[string]roster.Serializer{
		"json": roster.JSONSerializer{},
		"yaml": roster.YAMLSerializer{},
	}

	for name, ser := range serializers {
		t.Run(name, func(t *testing.T) {
			props := Suite(codec.NewColorCodec(), ser)
			results, err := RunSuite(context.Background(), props, Config{Runs: 500, Seed: 1})
			require.NoError(t, err)
			require.Len(t, results, len(props))

			for _, res := range results {
				if !assert.True(t, res.OK(), res.Name) {
					t.Logf("%s failed on %s: %v", res.Name, res.Failure.Input, res.Failure.Err)
				}
				assert.Equal(t, 500, res.Runs)
			}
		})
	}
}

func TestMappingRoundTrip_PrintableJSON(t *testing.T) {
	p := MappingRoundTrip("printable json", roster.JSONSerializer{Indent: true}, arbitrary.Mappings(arbitrary.Printable))
	res := Check(context.Background(), p, Config{Runs: 300, Seed: 5})
	assert.True(t, res.OK())
}

// constantSerializer ignores its input and always returns m.
type constantSerializer struct{ m roster.Mapping }

func (s constantSerializer) Serialize(roster.Mapping) (string, error) { return "", nil }

func (s constantSerializer) Deserialize(string) (roster.Mapping, error) { return s.m, nil }

func TestMappingRoundTrip_DetectsLoss(t *testing.T) {
	p := MappingRoundTrip("lossy", constantSerializer{}, arbitrary.Mappings(arbitrary.Lowercase))
	res := Check(context.Background(), p, Config{Runs: 10, Seed: 1})
	require.False(t, res.OK())
	assert.Equal(t, 0, res.Failure.Run)
	assert.Contains(t, res.Failure.Err.Error(), "mapping changed")
	assert.NotEmpty(t, res.Failure.Original)
}

func TestUnpackingTotality_SmallTags(t *testing.T) {
	p := UnpackingTotality("exhaustive tags", codec.NewColorCodec(), arbitrary.SliceOf(arbitrary.Ints(-1, 3), 0, 6))
	res := Check(context.Background(), p, Config{Runs: 1000, Seed: 2})
	assert.True(t, res.OK())
}
