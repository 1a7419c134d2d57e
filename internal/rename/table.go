// Package rename implements the namespace-scoped renaming table and the
// reserved-word escaping used for every identifier the translator emits.
package rename

import (
	"fmt"
	"sort"
)

// Namespace separates the value-level and type-level meaning of a name
type Namespace int

const (
	ExprNS Namespace = iota
	TypeNS
)

// String returns the string representation of the namespace
func (ns Namespace) String() string {
	switch ns {
	case ExprNS:
		return "expression"
	case TypeNS:
		return "type"
	default:
		return "unknown"
	}
}

// ParseNamespace is the inverse of Namespace.String, also accepting the
// short forms "value" and "expr"
func ParseNamespace(s string) (Namespace, error) {
	switch s {
	case "expression", "expr", "value":
		return ExprNS, nil
	case "type":
		return TypeNS, nil
	default:
		return 0, fmt.Errorf("unknown namespace %q", s)
	}
}

// Renaming holds the target names of one source identifier, per namespace
type Renaming struct {
	slots [2]string
	set   [2]bool
}

// Get returns the renaming stored for ns, if any
func (r *Renaming) Get(ns Namespace) (string, bool) {
	return r.slots[ns], r.set[ns]
}

// Entry is one namespace slot of the table, as listed by Entries
type Entry struct {
	Namespace Namespace
	Source    string
	Target    string
}

// Table maps source identifiers to their renamings. It is created once per
// run and only grows, except that constructor registration may overwrite
// an existing expression slot.
type Table struct {
	entries map[string]*Renaming
}

// ConstructorPrefix is prepended to every data constructor name so that
// constructors and types never collide in the target's single namespace
const ConstructorPrefix = "Mk_"

// builtins are the correspondences every run starts from
var builtins = []Entry{
	{TypeNS, "*", "Type"},
	{TypeNS, "Type", "Type"},
	{TypeNS, "Bool", "bool"},
	{ExprNS, "True", "true"},
	{ExprNS, "False", "false"},
	{TypeNS, "Int", "Z"},
	{TypeNS, "Integer", "Z"},
	{TypeNS, "Maybe", "option"},
	{ExprNS, "Just", "Some"},
	{ExprNS, "Nothing", "None"},
	{TypeNS, "String", "string"},
	{TypeNS, "[]", "list"},
	{ExprNS, "[]", "nil"},
	{TypeNS, "()", "unit"},
	{ExprNS, "()", "tt"},
	{TypeNS, "(,)", "prod"},
	{ExprNS, "(,)", "pair"},
}

// NewTable creates a table seeded with the built-in correspondences
func NewTable() *Table {
	t := &Table{entries: make(map[string]*Renaming)}
	for _, e := range builtins {
		t.Rename(e.Namespace, e.Source, e.Target)
	}
	return t
}

// Lookup returns the renaming of id in ns, or the escaped id when none is
// stored
func (t *Table) Lookup(ns Namespace, id string) string {
	if r, ok := t.entries[id]; ok {
		if target, ok := r.Get(ns); ok {
			return target
		}
	}
	return Escape(id)
}

// Rename stores target as the ns renaming of source. The other namespace's
// slot is preserved.
func (t *Table) Rename(ns Namespace, source, target string) {
	r, ok := t.entries[source]
	if !ok {
		r = &Renaming{}
		t.entries[source] = r
	}
	r.slots[ns] = target
	r.set[ns] = true
}

// RegisterConstructor records the target name of a data constructor and
// returns it
func (t *Table) RegisterConstructor(con string) string {
	target := ConstructorPrefix + con
	t.Rename(ExprNS, con, target)
	return target
}

// IsTypeTarget reports whether id is the target of some type-namespace
// renaming, i.e. it names a known target type rather than a variable
func (t *Table) IsTypeTarget(id string) bool {
	for _, r := range t.entries {
		if target, ok := r.Get(TypeNS); ok && target == id {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the table
func (t *Table) Clone() *Table {
	c := &Table{entries: make(map[string]*Renaming, len(t.entries))}
	for k, r := range t.entries {
		cp := *r
		c.entries[k] = &cp
	}
	return c
}

// Entries lists every stored slot ordered by source then namespace
func (t *Table) Entries() []Entry {
	var out []Entry
	for src, r := range t.entries {
		for _, ns := range []Namespace{ExprNS, TypeNS} {
			if target, ok := r.Get(ns); ok {
				out = append(out, Entry{Namespace: ns, Source: src, Target: target})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		return out[i].Namespace < out[j].Namespace
	})
	return out
}
