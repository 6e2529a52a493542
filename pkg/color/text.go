package color

import (
	"errors"
	"strconv"
	"strings"
)

// String renders c in the literal form accepted by Parse, for example
// "Named(Blue)", "RGB(10,20,30)" or "CMYK(0,0,0,255)".
func (c Color) String() string {
	var b strings.Builder
	switch c.kind {
	case KindNamed:
		b.WriteString("Named(")
		b.WriteString(c.name)
	case KindRGB:
		b.WriteString("RGB(")
		writeInts(&b, c.channels[:3])
	case KindCMYK:
		b.WriteString("CMYK(")
		writeInts(&b, c.channels[:4])
	default:
		return "Color(invalid)"
	}
	b.WriteByte(')')
	return b.String()
}

func writeInts(b *strings.Builder, vals []int) {
	for i, v := range vals {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
}

// Parse reads a color literal. Accepted forms are a bare catalog name
// ("Blue"), "Named(Blue)", "RGB(r,g,b)" and "CMYK(c,m,y,k)". The variant
// keyword is case-insensitive; catalog names are not.
//
// Validation failures are the same errors the constructors return; malformed
// text yields a *SyntaxError.
func Parse(s string) (Color, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return Color{}, &SyntaxError{Input: s, Reason: "empty"}
	}

	open := strings.IndexByte(in, '(')
	if open < 0 {
		return Named(in)
	}
	if !strings.HasSuffix(in, ")") {
		return Color{}, &SyntaxError{Input: s, Reason: "missing closing parenthesis"}
	}

	keyword := strings.ToLower(strings.TrimSpace(in[:open]))
	body := in[open+1 : len(in)-1]
	if strings.ContainsAny(body, "()") {
		return Color{}, &SyntaxError{Input: s, Reason: "nested parentheses"}
	}

	switch keyword {
	case "named":
		return Named(strings.TrimSpace(body))
	case "rgb":
		vals, err := parseInts(s, body, 3)
		if err != nil {
			return Color{}, err
		}
		return RGB(vals[0], vals[1], vals[2])
	case "cmyk":
		vals, err := parseInts(s, body, 4)
		if err != nil {
			return Color{}, err
		}
		return CMYK(vals[0], vals[1], vals[2], vals[3])
	default:
		return Color{}, &SyntaxError{Input: s, Reason: "unknown variant " + strconv.Quote(keyword)}
	}
}

func parseInts(input, body string, want int) ([]int, error) {
	parts := strings.Split(body, ",")
	if len(parts) != want {
		return nil, &SyntaxError{Input: input, Reason: "expected " + strconv.Itoa(want) + " values, got " + strconv.Itoa(len(parts))}
	}
	vals := make([]int, want)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, &SyntaxError{Input: input, Reason: "value " + strconv.Quote(strings.TrimSpace(p)) + " is not an integer"}
		}
		vals[i] = v
	}
	return vals, nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, errors.New("cannot marshal unset color")
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
