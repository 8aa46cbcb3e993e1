// Package enum holds the closed vocabularies of the weather payload:
// condition codes, precipitation types, alert classifications, moon phases,
// pressure trends and the UV index.
//
// Every vocabulary resolves raw codes through a Set, which offers two
// policies: Strict rejects unknown codes with an UnknownValueError, Lenient
// reports them as absent. Fields whose vocabulary may grow upstream (condition
// codes) are resolved leniently; everything else strictly.
package enum

import (
	"errors"
	"fmt"
)

// ErrUnknownValue is matched by every UnknownValueError.
var ErrUnknownValue = errors.New("unknown enum value")

// UnknownValueError reports a code outside a closed vocabulary.
type UnknownValueError struct {
	Enum  string
	Value string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("unknown %s value %q", e.Enum, e.Value)
}

func (e *UnknownValueError) Is(target error) bool {
	return target == ErrUnknownValue
}

// Set is the closed set of members of one vocabulary.
type Set[T ~string] struct {
	name    string
	members []T
	index   map[string]T
}

func newSet[T ~string](name string, members ...T) Set[T] {
	index := make(map[string]T, len(members))
	for _, m := range members {
		index[string(m)] = m
	}
	return Set[T]{name: name, members: members, index: index}
}

// Name is the vocabulary name used in errors.
func (s Set[T]) Name() string { return s.name }

// Strict resolves code or fails with an UnknownValueError.
func (s Set[T]) Strict(code string) (T, error) {
	if m, ok := s.index[code]; ok {
		return m, nil
	}
	var zero T
	return zero, &UnknownValueError{Enum: s.name, Value: code}
}

// Lenient resolves code, reporting false instead of failing when the code is
// not a member.
func (s Set[T]) Lenient(code string) (T, bool) {
	m, ok := s.index[code]
	return m, ok
}

// Contains reports whether m is a member.
func (s Set[T]) Contains(m T) bool {
	_, ok := s.index[string(m)]
	return ok
}

// Members returns the members in declaration order.
func (s Set[T]) Members() []T {
	out := make([]T, len(s.members))
	copy(out, s.members)
	return out
}
