// Package selector implements the demonstration selector: a static, ordered
// table of example groups, an injectable source for the operator's choice,
// a cosmetic progress indicator and the dispatcher that runs the chosen group.
package selector

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Errors returned by the selector.
var (
	ErrEmptyTable     = errors.New("example table is empty")
	ErrDuplicateGroup = errors.New("duplicate group name")
	ErrInvalidGroup   = errors.New("invalid group")
	ErrOutOfRange     = errors.New("selection out of range")
	ErrUnknownGroup   = errors.New("unknown group")
	ErrAborted        = errors.New("selection aborted")
)

// Group is a named bundle of demonstrations exposed as one menu entry.
// Run executes every demonstration of the group in a fixed order.
type Group struct {
	Name        string
	Description string
	Run         func()
}

// Table is the immutable, ordered list of example groups.
type Table struct {
	groups []Group
}

// NewTable builds a table from groups in the given order. Every index in
// [0, Len()) maps to a group with a name and a run-all procedure.
func NewTable(groups ...Group) (*Table, error) {
	if len(groups) == 0 {
		return nil, ErrEmptyTable
	}

	seen := make(map[string]struct{}, len(groups))
	for i, g := range groups {
		if strings.TrimSpace(g.Name) == "" {
			return nil, fmt.Errorf("%w: group %d has no name", ErrInvalidGroup, i)
		}
		if g.Run == nil {
			return nil, fmt.Errorf("%w: group %q has no run-all procedure", ErrInvalidGroup, g.Name)
		}
		key := strings.ToLower(g.Name)
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateGroup, g.Name)
		}
		seen[key] = struct{}{}
	}

	return &Table{groups: append([]Group(nil), groups...)}, nil
}

// Len returns the number of groups.
func (t *Table) Len() int {
	return len(t.groups)
}

// Names returns the display names in table order.
func (t *Table) Names() []string {
	names := make([]string, len(t.groups))
	for i, g := range t.groups {
		names[i] = g.Name
	}
	return names
}

// Groups returns a copy of the groups in table order.
func (t *Table) Groups() []Group {
	return append([]Group(nil), t.groups...)
}

// At returns the group bound to index i.
func (t *Table) At(i int) (Group, error) {
	if i < 0 || i >= len(t.groups) {
		return Group{}, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, i, len(t.groups))
	}
	return t.groups[i], nil
}

// Index resolves a group reference, either a name (case-insensitive) or a
// 1-based menu number, into a table index.
func (t *Table) Index(ref string) (int, error) {
	return resolve(ref, t.Names())
}

// resolve matches ref against names first and falls back to a 1-based number.
func resolve(ref string, names []string) (int, error) {
	ref = strings.TrimSpace(ref)
	for i, name := range names {
		if strings.EqualFold(name, ref) {
			return i, nil
		}
	}
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(names) {
			return -1, fmt.Errorf("%w: %d not in [1, %d]", ErrOutOfRange, n, len(names))
		}
		return n - 1, nil
	}
	return -1, fmt.Errorf("%w: %q (available: %s)", ErrUnknownGroup, ref, strings.Join(names, ", "))
}

// Dispatch runs the group bound to index i and no other. An index outside
// the table runs nothing and returns ErrOutOfRange.
func (t *Table) Dispatch(i int) error {
	g, err := t.At(i)
	if err != nil {
		return err
	}
	g.Run()
	return nil
}
