package arbitrary

import (
	"reflect"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"

	"github.com/ssargent/chromapack/pkg/roster"
)

// Students generates students with a 3-10 letter name, 1-5 interests and an
// address of 3-20 characters.
func Students(alphabet []rune) gopter.Gen {
	return gen.Struct(reflect.TypeOf(roster.Student{}), map[string]gopter.Gen{
		"Name":      Strings(Lowercase, 3, 10),
		"Interests": SliceOf(Strings(alphabet, 3, 10), 1, 5),
		"Address":   Strings(alphabet, 3, 20),
	})
}

// Pairs generates identifier/student pairs.
func Pairs(alphabet []rune) gopter.Gen {
	return gen.Struct(reflect.TypeOf(roster.Pair{}), map[string]gopter.Gen{
		"StudentID": Strings(alphabet, roster.IDLength, roster.IDLength),
		"Student":   Students(alphabet),
	})
}

// Mappings generates mappings of 1-10 pairs.
func Mappings(alphabet []rune) gopter.Gen {
	return gen.Struct(reflect.TypeOf(roster.Mapping{}), map[string]gopter.Gen{
		"Pairs": SliceOf(Pairs(alphabet), 1, 10),
	})
}
