package procedure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/dontforgetsemicologne/task-flow/internal/adapter/http/validation"
)

var (
	ErrProcedureNotFound  = errors.New("procedure not found")
	ErrMethodNotSupported = errors.New("method not supported for procedure")
)

// Kind tells reads from writes.
type Kind string

const (
	Query    Kind = "query"
	Mutation Kind = "mutation"
)

// Func runs a procedure against its raw JSON input.
type Func func(ctx context.Context, input json.RawMessage) (any, error)

type Procedure struct {
	Name string
	Kind Kind
	fn   Func
}

// Router is a flat registry of procedures addressed by dotted names.
// It is built once at startup and only read afterwards.
type Router struct {
	procedures map[string]Procedure
}

func NewRouter() *Router {
	return &Router{procedures: make(map[string]Procedure)}
}

func (r *Router) Query(name string, fn Func) *Router {
	return r.add(Procedure{Name: name, Kind: Query, fn: fn})
}

func (r *Router) Mutation(name string, fn Func) *Router {
	return r.add(Procedure{Name: name, Kind: Mutation, fn: fn})
}

// Merge registers every procedure of sub under namespace, e.g. "taskRouter.createTask".
func (r *Router) Merge(namespace string, sub *Router) *Router {
	for _, p := range sub.procedures {
		p.Name = namespace + "." + p.Name
		r.add(p)
	}
	return r
}

func (r *Router) Lookup(name string) (Procedure, bool) {
	p, ok := r.procedures[name]
	return p, ok
}

// Procedures lists the registry sorted by name.
func (r *Router) Procedures() []Procedure {
	out := make([]Procedure, 0, len(r.procedures))
	for _, p := range r.procedures {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Call runs name as kind. Calling a query as a mutation, or the reverse, fails with ErrMethodNotSupported.
func (r *Router) Call(ctx context.Context, kind Kind, name string, input json.RawMessage) (any, error) {
	p, ok := r.procedures[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProcedureNotFound, name)
	}
	if p.Kind != kind {
		return nil, fmt.Errorf("%w: %s is a %s", ErrMethodNotSupported, name, p.Kind)
	}
	return p.fn(ctx, input)
}

func (r *Router) add(p Procedure) *Router {
	if _, exists := r.procedures[p.Name]; exists {
		panic(fmt.Sprintf("procedure %q registered twice", p.Name))
	}
	r.procedures[p.Name] = p
	return r
}

// Handle decodes and validates the input into In before calling fn.
func Handle[In any, Out any](fn func(ctx context.Context, input In) (Out, error)) Func {
	return func(ctx context.Context, raw json.RawMessage) (any, error) {
		var input In
		if err := validation.DecodeInput(raw, &input); err != nil {
			return nil, err
		}
		return fn(ctx, input)
	}
}

// HandleNoInput ignores whatever input the caller sent.
func HandleNoInput[Out any](fn func(ctx context.Context) (Out, error)) Func {
	return func(ctx context.Context, _ json.RawMessage) (any, error) {
		return fn(ctx)
	}
}
