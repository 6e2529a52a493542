// Package roster models a mapping from six-character student identifiers to
// student records, and its text serialization.
package roster

import (
	"fmt"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
)

// IDLength is the number of characters in a student identifier.
const IDLength = 6

// Student is a single student record.
type Student struct {
	Name      string   `json:"name" yaml:"name"`
	Interests []string `json:"interests" yaml:"interests"`
	Address   string   `json:"address" yaml:"address"`
}

// Equal reports whether s and other hold the same fields.
func (s Student) Equal(other Student) bool {
	if s.Name != other.Name || s.Address != other.Address || len(s.Interests) != len(other.Interests) {
		return false
	}
	for i := range s.Interests {
		if s.Interests[i] != other.Interests[i] {
			return false
		}
	}
	return true
}

// Pair associates a student identifier with a student.
type Pair struct {
	StudentID string  `json:"student_id" yaml:"student_id"`
	Student   Student `json:"student" yaml:"student"`
}

// Equal reports whether p and other hold the same identifier and student.
func (p Pair) Equal(other Pair) bool {
	return p.StudentID == other.StudentID && p.Student.Equal(other.Student)
}

// Mapping is an ordered list of identifier/student pairs.
type Mapping struct {
	Pairs []Pair `json:"pairs" yaml:"pairs"`
}

// Equal reports whether m and other hold equal pairs in the same order.
func (m Mapping) Equal(other Mapping) bool {
	if len(m.Pairs) != len(other.Pairs) {
		return false
	}
	for i := range m.Pairs {
		if !m.Pairs[i].Equal(other.Pairs[i]) {
			return false
		}
	}
	return true
}

// Validate checks every pair and returns all violations found.
func (m Mapping) Validate() error {
	var result *multierror.Error
	for i, p := range m.Pairs {
		if n := utf8.RuneCountInString(p.StudentID); n != IDLength {
			result = multierror.Append(result, fmt.Errorf("pair %d: student id %q has %d characters, want %d", i, p.StudentID, n, IDLength))
		}
		if p.Student.Name == "" {
			result = multierror.Append(result, fmt.Errorf("pair %d: student name is empty", i))
		}
		if len(p.Student.Interests) == 0 {
			result = multierror.Append(result, fmt.Errorf("pair %d: student has no interests", i))
		}
	}
	return result.ErrorOrNil()
}
