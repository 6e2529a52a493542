package roster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serializers() map[string]Serializer {
	return map[string]Serializer{
		"json":          JSONSerializer{},
		"json indented": JSONSerializer{Indent: true},
		"yaml":          YAMLSerializer{},
	}
}

func TestSerializer_RoundTrip(t *testing.T) {
	mappings := map[string]Mapping{
		"sample":  sampleMapping(),
		"empty":   {Pairs: []Pair{}},
		"symbols": {Pairs: []Pair{{StudentID: `"\:{}#`, Student: Student{Name: "- yes", Interests: []string{"null", "true", "1e3"}, Address: "a: b"}}}},
	}

	for serName, ser := range serializers() {
		for mapName, m := range mappings {
			t.Run(serName+"/"+mapName, func(t *testing.T) {
				text, err := ser.Serialize(m)
				require.NoError(t, err)

				back, err := ser.Deserialize(text)
				require.NoError(t, err)
				assert.True(t, back.Equal(m), "round trip through %q gave %+v", text, back)
			})
		}
	}
}

func TestSerializer_SerializeRejectsInvalid(t *testing.T) {
	invalid := Mapping{Pairs: []Pair{{StudentID: "abc", Student: Student{Name: "x", Interests: []string{"y"}}}}}

	for name, ser := range serializers() {
		t.Run(name, func(t *testing.T) {
			_, err := ser.Serialize(invalid)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "serialize mapping")
		})
	}
}

func TestJSONSerializer_Deserialize(t *testing.T) {
	ser := JSONSerializer{}

	tests := []struct {
		name string
		text string
		want string
	}{
		{"malformed", `{"pairs": [`, "unexpected EOF"},
		{"unknown field", `{"pairs": [], "extra": 1}`, "unknown field"},
		{"trailing data", `{"pairs": []} {"pairs": []}`, "trailing data"},
		{"wrong type", `{"pairs": "none"}`, "cannot unmarshal"},
		{"invalid pair", `{"pairs": [{"student_id": "abc", "student": {"name": "x", "interests": ["y"], "address": ""}}]}`, "student id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ser.Deserialize(tt.text)
			require.Error(t, err)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr), "got %T", err)
			assert.Equal(t, "json", parseErr.Format)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestYAMLSerializer_Deserialize(t *testing.T) {
	ser := YAMLSerializer{}

	tests := []struct {
		name string
		text string
		want string
	}{
		{"malformed", "pairs: [\n", "yaml"},
		{"unknown field", "pairs: []\nextra: 1\n", "not found"},
		{"wrong type", "pairs: none\n", "cannot unmarshal"},
		{"invalid pair", "pairs:\n  - student_id: abc\n    student:\n      name: x\n      interests: [y]\n", "student id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ser.Deserialize(tt.text)
			require.Error(t, err)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr), "got %T", err)
			assert.Equal(t, "yaml", parseErr.Format)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
