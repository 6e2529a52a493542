package catalog

import "fmt"

// OutOfRangeError reports a numeric value outside its declared bound.
// It is returned by catalog lookups and by color construction.
type OutOfRangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *OutOfRangeError) Error() string {
	if e.Max < e.Min {
		return fmt.Sprintf("%s %d out of range: no valid values", e.Field, e.Value)
	}
	return fmt.Sprintf("%s %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// UnknownNameError reports a color name that is not in the catalog.
type UnknownNameError struct {
	Name string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("unknown color name %q", e.Name)
}
