package color

import "fmt"

// ArityError reports a channel list whose length does not match the variant.
type ArityError struct {
	Kind Kind
	Got  int
}

func (e *ArityError) Error() string {
	if len(channelNames[e.Kind]) == 0 {
		return fmt.Sprintf("%s colors have no channels", e.Kind)
	}
	return fmt.Sprintf("%s expects %d channels, got %d", e.Kind, len(channelNames[e.Kind]), e.Got)
}

// SyntaxError reports text that is not a color literal.
type SyntaxError struct {
	Input  string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid color literal %q: %s", e.Input, e.Reason)
}
