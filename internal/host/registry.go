// Package host exposes markplus operations under the names an editor host
// binds them to. Every operation takes string arguments and returns a
// string result.
package host

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/sahilm/fuzzy"
	"github.com/samsaffron/markplus/internal/checklist"
	"github.com/samsaffron/markplus/internal/markup"
	"github.com/samsaffron/markplus/internal/table"
)

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrArgs             = errors.New("invalid arguments")
)

// Op is a host-callable operation.
type Op struct {
	Name  string
	Usage string
	Arity int
	Run   func(args []string) (string, error)
}

// Registry stores operations by host name.
type Registry struct {
	ops map[string]Op
}

func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]Op)}
}

func (r *Registry) Register(op Op) {
	r.ops[op.Name] = op
}

func (r *Registry) Get(name string) (Op, bool) {
	op, ok := r.ops[name]
	return op, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Suggest returns registered names that fuzzily match name, best first.
func (r *Registry) Suggest(name string) []string {
	names := r.Names()
	matches := fuzzy.Find(name, names)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, names[m.Index])
	}
	return out
}

// Call runs the named operation after checking its arity.
func (r *Registry) Call(name string, args []string) (string, error) {
	op, ok := r.ops[name]
	if !ok {
		if s := r.Suggest(name); len(s) > 0 {
			return "", fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownOperation, name, s[0])
		}
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	if len(args) != op.Arity {
		return "", fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrArgs, name, op.Arity, len(args))
	}
	return op.Run(args)
}

// DefaultRegistry binds every editor operation. Table operations use f; a nil
// f means the default formatter settings.
func DefaultRegistry(f *table.Formatter) *Registry {
	if f == nil {
		f = table.New()
	}

	r := NewRegistry()
	r.Register(Op{Name: "is-checkbox?", Usage: "line", Arity: 1, Run: func(a []string) (string, error) {
		return strconv.FormatBool(checklist.IsCheckbox(a[0])), nil
	}})
	r.Register(Op{Name: "change-checkbox-state!", Usage: "line", Arity: 1, Run: func(a []string) (string, error) {
		return checklist.Toggle(a[0]), nil
	}})
	r.Register(Op{Name: "create-link!", Usage: "text", Arity: 1, Run: func(a []string) (string, error) {
		return markup.CreateLink(a[0]), nil
	}})
	r.Register(Op{Name: "itemize-text!", Usage: "text", Arity: 1, Run: func(a []string) (string, error) {
		return markup.Itemize(a[0]), nil
	}})
	r.Register(Op{Name: "has-table-elements", Usage: "text", Arity: 1, Run: func(a []string) (string, error) {
		return strconv.FormatBool(table.HasTableElements(a[0])), nil
	}})
	r.Register(Op{Name: "is-table-line", Usage: "line", Arity: 1, Run: func(a []string) (string, error) {
		return strconv.FormatBool(table.IsTableLine(a[0])), nil
	}})
	r.Register(Op{Name: "format-tables-in-buffer", Usage: "document", Arity: 1, Run: func(a []string) (string, error) {
		return f.FormatAllTables(a[0]), nil
	}})
	r.Register(Op{Name: "format-current-table-at-cursor", Usage: "document line col", Arity: 3, Run: func(a []string) (string, error) {
		line, col, err := cursor(a[1], a[2])
		if err != nil {
			return "", err
		}
		return f.FormatAtPosition(a[0], line, col), nil
	}})
	r.Register(Op{Name: "detect-table-at-cursor", Usage: "document line col", Arity: 3, Run: func(a []string) (string, error) {
		line, col, err := cursor(a[1], a[2])
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(table.IsCursorInTable(a[0], line, col)), nil
	}})
	return r
}

func cursor(lineArg, colArg string) (int, int, error) {
	line, err := strconv.Atoi(lineArg)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: line %q is not an integer", ErrArgs, lineArg)
	}
	col, err := strconv.Atoi(colArg)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: column %q is not an integer", ErrArgs, colArg)
	}
	return line, col, nil
}
