// Package convert translates surface expressions, patterns, types and
// value bindings into target terms.
//
// Every conversion goes through a Converter, which owns the renaming
// table for the run. Conversions either return a complete result or a
// *diagnostic.ConvError describing the first construct that could not be
// translated.
package convert

import (
	"errors"

	"github.com/lhaig/hs2v/internal/diagnostic"
	"github.com/lhaig/hs2v/internal/hsast"
	"github.com/lhaig/hs2v/internal/rename"
)

// Converter carries the state shared by every conversion of a run.
type Converter struct {
	Renames *rename.Table
}

// New creates a converter over table. A nil table starts from the
// built-in renamings.
func New(table *rename.Table) *Converter {
	if table == nil {
		table = rename.NewTable()
	}
	return &Converter{Renames: table}
}

// valueName is the target name of a value-level identifier
func (c *Converter) valueName(id string) string {
	return c.Renames.Lookup(rename.ExprNS, id)
}

// typeName is the target name of a type-level identifier
func (c *Converter) typeName(id string) string {
	return c.Renames.Lookup(rename.TypeNS, id)
}

// at positions err at node when it is a conversion error without a
// position of its own
func at(node hsast.Node, err error) error {
	var ce *diagnostic.ConvError
	if errors.As(err, &ce) {
		line, col := node.Pos()
		ce.At(line, col)
	}
	return err
}
