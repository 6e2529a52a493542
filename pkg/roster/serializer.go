package roster

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Serializer converts a Mapping to text and back. For every valid mapping m,
// Deserialize(Serialize(m)) equals m.
type Serializer interface {
	Serialize(m Mapping) (string, error)
	Deserialize(text string) (Mapping, error)
}

// ParseError reports text that does not hold a valid mapping.
type ParseError struct {
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s mapping: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// JSONSerializer stores mappings as JSON objects.
type JSONSerializer struct {
	Indent bool
}

// Serialize implements Serializer.
func (s JSONSerializer) Serialize(m Mapping) (string, error) {
	if err := m.Validate(); err != nil {
		return "", fmt.Errorf("serialize mapping: %w", err)
	}
	var (
		data []byte
		err  error
	)
	if s.Indent {
		data, err = json.MarshalIndent(m, "", "  ")
	} else {
		data, err = json.Marshal(m)
	}
	if err != nil {
		return "", fmt.Errorf("serialize mapping: %w", err)
	}
	return string(data), nil
}

// Deserialize implements Serializer. Unknown fields are rejected.
func (s JSONSerializer) Deserialize(text string) (Mapping, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.DisallowUnknownFields()

	var m Mapping
	if err := dec.Decode(&m); err != nil {
		return Mapping{}, &ParseError{Format: "json", Err: err}
	}
	if dec.More() {
		return Mapping{}, &ParseError{Format: "json", Err: fmt.Errorf("trailing data after mapping")}
	}
	if err := m.Validate(); err != nil {
		return Mapping{}, &ParseError{Format: "json", Err: err}
	}
	return m, nil
}

// YAMLSerializer stores mappings as YAML documents.
type YAMLSerializer struct{}

// Serialize implements Serializer.
func (YAMLSerializer) Serialize(m Mapping) (string, error) {
	if err := m.Validate(); err != nil {
		return "", fmt.Errorf("serialize mapping: %w", err)
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("serialize mapping: %w", err)
	}
	return string(data), nil
}

// Deserialize implements Serializer. Unknown fields are rejected.
func (YAMLSerializer) Deserialize(text string) (Mapping, error) {
	dec := yaml.NewDecoder(bytes.NewReader([]byte(text)))
	dec.KnownFields(true)

	var m Mapping
	if err := dec.Decode(&m); err != nil {
		return Mapping{}, &ParseError{Format: "yaml", Err: err}
	}
	if err := m.Validate(); err != nil {
		return Mapping{}, &ParseError{Format: "yaml", Err: err}
	}
	return m, nil
}
