package roster

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMapping() Mapping {
	return Mapping{Pairs: []Pair{
		{StudentID: "abc123", Student: Student{Name: "Ada", Interests: []string{"math", "looms"}, Address: "12 Marylebone"}},
		{StudentID: "zürich", Student: Student{Name: "Émile", Interests: []string{"ski"}, Address: "Bahnhofstrasse 1"}},
	}}
}

func TestMapping_Equal(t *testing.T) {
	m := sampleMapping()
	assert.True(t, m.Equal(sampleMapping()))

	reordered := sampleMapping()
	reordered.Pairs[0], reordered.Pairs[1] = reordered.Pairs[1], reordered.Pairs[0]
	assert.False(t, m.Equal(reordered), "order is significant")

	changed := sampleMapping()
	changed.Pairs[1].Student.Interests = []string{"skiing"}
	assert.False(t, m.Equal(changed))

	fewer := sampleMapping()
	fewer.Pairs = fewer.Pairs[:1]
	assert.False(t, m.Equal(fewer))

	assert.True(t, Mapping{}.Equal(Mapping{Pairs: []Pair{}}))
}

func TestMapping_Validate(t *testing.T) {
	require.NoError(t, sampleMapping().Validate())

	t.Run("identifier length counts characters", func(t *testing.T) {
		m := Mapping{Pairs: []Pair{{StudentID: "ßßßßßß", Student: Student{Name: "x", Interests: []string{"y"}}}}}
		assert.NoError(t, m.Validate())
	})

	t.Run("all violations are reported", func(t *testing.T) {
		m := Mapping{Pairs: []Pair{
			{StudentID: "short", Student: Student{Name: "", Interests: nil}},
			{StudentID: "abc123", Student: Student{Name: "ok", Interests: []string{"a"}}},
			{StudentID: "toolong1", Student: Student{Name: "ok", Interests: []string{"a"}}},
		}}

		err := m.Validate()
		require.Error(t, err)

		var merr *multierror.Error
		require.True(t, errors.As(err, &merr))
		assert.Len(t, merr.Errors, 4)
		assert.Contains(t, err.Error(), `pair 0: student id "short" has 5 characters`)
		assert.Contains(t, err.Error(), "pair 0: student name is empty")
		assert.Contains(t, err.Error(), "pair 0: student has no interests")
		assert.Contains(t, err.Error(), "pair 2: student id")
	})
}
