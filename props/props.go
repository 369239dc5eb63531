// Package props defines the property-publishing surface the dashboard host
// exposes, the static declaration table, and an in-memory store implementing
// both sides for replays and tests.
package props

import (
	"bytes"
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Sink receives computed values. Tasks may call SetValue any number of times per tick.
type Sink interface {
	SetValue(name string, value any)
}

// Declarer registers a named property before the scheduler starts.
// A nil initial value leaves the property unset.
type Declarer interface {
	Declare(name string, initial any, description string)
}

// Version is published as the Version property. Set at build time with
// -ldflags "-X github.com/dahldesign/dahl-properties/props.Version=...".
var Version = "dev"

// Kind is the value type of a declared property.
type Kind string

const (
	KindBool     Kind = "bool"
	KindInt      Kind = "int"
	KindFloat    Kind = "float"
	KindString   Kind = "string"
	KindDuration Kind = "duration"
	KindNone     Kind = "none"    // declared without an initial value
	KindVersion  Kind = "version" // initial value is Version
)

// Property is one entry of the declaration table.
type Property struct {
	Name        string
	Initial     any
	Description string
}

type entry struct {
	Name        string    `yaml:"name"`
	Kind        Kind      `yaml:"kind"`
	Value       yaml.Node `yaml:"value"`
	Description string    `yaml:"description"`
}

//go:embed properties.yaml
var tableYAML []byte

// Table parses the embedded declaration table, preserving its order.
func Table() ([]Property, error) {
	return ParseTable(tableYAML)
}

// ParseTable parses a declaration table. Unknown keys, unknown kinds,
// duplicate names and values that do not match their kind are errors.
func ParseTable(data []byte) ([]Property, error) {
	var entries []entry
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&entries); err != nil {
		return nil, fmt.Errorf("parsing property table: %w", err)
	}

	seen := make(map[string]bool, len(entries))
	table := make([]Property, 0, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("property #%d has no name", i)
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("property %s declared twice", e.Name)
		}
		seen[e.Name] = true

		initial, err := e.initial()
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", e.Name, err)
		}
		table = append(table, Property{Name: e.Name, Initial: initial, Description: e.Description})
	}
	return table, nil
}

func (e entry) initial() (any, error) {
	switch e.Kind {
	case KindNone:
		return nil, nil
	case KindVersion:
		return Version, nil
	case KindBool:
		return decodeAs[bool](e)
	case KindInt:
		return decodeAs[int](e)
	case KindFloat:
		return decodeAs[float64](e)
	case KindString:
		return decodeAs[string](e)
	case KindDuration:
		return decodeAs[time.Duration](e)
	}
	return nil, fmt.Errorf("unknown kind %q", e.Kind)
}

func decodeAs[T any](e entry) (any, error) {
	var v T
	if err := e.decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func (e entry) decode(dst any) error {
	// missing value keeps the zero value of the kind
	if e.Value.Kind == 0 {
		return nil
	}
	if err := e.Value.Decode(dst); err != nil {
		return fmt.Errorf("value does not match kind %s: %w", e.Kind, err)
	}
	return nil
}

// DeclareAll declares every property of table in order.
func DeclareAll(d Declarer, table []Property) {
	for _, p := range table {
		d.Declare(p.Name, p.Initial, p.Description)
	}
}
