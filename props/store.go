package props

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Value is a property as held by a Store.
type Value struct {
	Name        string
	Value       any
	Description string
	Writes      int // SetValue calls since declaration
}

// Store is an in-memory property registry and sink. It stands in for the
// dashboard host when replaying recordings. Reads may happen from other
// goroutines while the scheduler writes.
type Store struct {
	mu     sync.RWMutex
	order  []string
	values map[string]*Value
}

func NewStore() *Store {
	return &Store{values: make(map[string]*Value)}
}

// Declare registers name with its initial value. Redeclaring keeps the
// original position and resets the value.
func (s *Store) Declare(name string, initial any, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.values[name]; ok {
		v.Value, v.Description, v.Writes = initial, description, 0
		return
	}
	s.order = append(s.order, name)
	s.values[name] = &Value{Name: name, Value: initial, Description: description}
}

// SetValue updates a declared property. Writes to undeclared names are
// dropped, matching the host's behavior.
func (s *Store) SetValue(name string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[name]
	if !ok {
		logrus.Debugf("dropping write to undeclared property %s", name)
		return
	}
	v.Value = value
	v.Writes++
}

// Get returns the current value of name.
func (s *Store) Get(name string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[name]
	if !ok {
		return nil, false
	}
	return v.Value, true
}

// Writes returns how many times name has been set since it was declared.
func (s *Store) Writes(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.values[name]; ok {
		return v.Writes
	}
	return 0
}

// Len returns the number of declared properties.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Snapshot copies all properties in declaration order.
func (s *Store) Snapshot() []Value {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Value, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, *s.values[name])
	}
	return out
}
