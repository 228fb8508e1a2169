package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")
	ErrReference  = errors.New("unknown reference")
	ErrConflict   = errors.New("conflict")
	ErrStore      = errors.New("store failure")
)

type Entity string

const (
	EntityUser    Entity = "user"
	EntityTask    Entity = "task"
	EntityTeam    Entity = "team"
	EntityTag     Entity = "tag"
	EntityComment Entity = "comment"
)

// FieldError describes one failed input constraint.
type FieldError struct {
	Field string
	Rule  string
	Param string
}

type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(field, rule, param string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Rule: rule, Param: param}}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Param != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", f.Field, f.Rule, f.Param))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Rule))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

type NotFoundError struct {
	Entity Entity
	ID     uint64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ReferenceError reports ids that a mutation points at but the store does not hold,
// or a row that cannot be removed while other rows still point at it.
type ReferenceError struct {
	Field  string
	Entity Entity
	IDs    []uint64
	Reason string
}

func (e *ReferenceError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %v: %s", e.Entity, e.IDs, e.Reason)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: unknown %s %v", e.Field, e.Entity, e.IDs)
	}
	return fmt.Sprintf("unknown %s %v", e.Entity, e.IDs)
}

func (e *ReferenceError) Is(target error) bool { return target == ErrReference }

type ConflictError struct {
	Entity Entity
	Field  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %s already in use", e.Entity, e.Field)
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// StoreError wraps failures of the relational store that have no domain meaning.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool { return target == ErrStore }
