// Package compiler runs the translation pipeline over one module:
// type-level declarations are converted, grouped and emitted first, then
// value bindings in source order.
package compiler

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lhaig/hs2v/internal/config"
	"github.com/lhaig/hs2v/internal/convert"
	"github.com/lhaig/hs2v/internal/decls"
	"github.com/lhaig/hs2v/internal/diagnostic"
	"github.com/lhaig/hs2v/internal/gallina"
	"github.com/lhaig/hs2v/internal/hsast"
	"github.com/lhaig/hs2v/internal/rename"
)

// Options controls one translation run
type Options struct {
	// Recover replaces failing value bindings with axiom stubs
	Recover bool
	// Preamble emits the Synonym definition before the first mixed group
	Preamble bool
	// Renames is the run's renaming table; nil starts from the built-ins
	Renames *rename.Table
	// Logger receives debug records; nil discards them
	Logger *slog.Logger
}

// OptionsFromConfig derives run options from a loaded configuration
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	table, err := cfg.NewTable()
	if err != nil {
		return Options{}, err
	}
	return Options{
		Recover:  cfg.Recover,
		Preamble: cfg.EmitPreamble(),
		Renames:  table,
	}, nil
}

// Result holds the output of a translation
type Result struct {
	Module      string
	Sentences   []gallina.Sentence
	Diagnostics *diagnostic.Diagnostics
	Renames     *rename.Table
}

// Report renders the run's diagnostics against the module name, or ""
// when there are none
func (r *Result) Report() string {
	return r.Diagnostics.Format(r.Module)
}

// Translate converts mod into target sentences. Type and synonym
// declaration failures always abort; value binding failures abort unless
// opts.Recover is set.
func Translate(mod *hsast.Module, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c := convert.New(opts.Renames)
	res := &Result{Module: mod.Name, Diagnostics: diagnostic.New(), Renames: c.Renames}

	var types []decls.Declaration
	var values []*hsast.ValueDecl
	for _, d := range mod.Decls {
		switch n := d.(type) {
		case *hsast.DataDecl:
			conv, err := decls.ConvertData(c, n)
			if err != nil {
				return nil, fmt.Errorf("converting data type %s: %w", n.Name, err)
			}
			types = append(types, conv)
		case *hsast.SynonymDecl:
			conv, err := decls.ConvertSynonym(c, n)
			if err != nil {
				return nil, fmt.Errorf("converting type synonym %s: %w", n.Name, err)
			}
			types = append(types, conv)
		case *hsast.ValueDecl:
			values = append(values, n)
		default:
			return nil, fmt.Errorf("unknown declaration %T", d)
		}
	}

	groups := decls.GroupDeclarations(types)
	if opts.Preamble && decls.NeedsPreamble(groups) {
		res.Sentences = append(res.Sentences, decls.Preamble()...)
	}
	for _, g := range groups {
		sentences, err := g.Sentences()
		if err != nil {
			return nil, fmt.Errorf("emitting %s: %w", strings.Join(g.Names(), ", "), err)
		}
		logger.Debug("emitted group", "module", mod.Name, "kind", g.Kind.String(), "names", g.Names())
		res.Sentences = append(res.Sentences, sentences...)
	}

	var onError convert.RecoveryHandler
	if opts.Recover {
		onError = func(d *hsast.ValueDecl, err error) ([]gallina.Sentence, error) {
			res.Diagnostics.Recovered(d.Binding.Name, err)
			logger.Debug("recovered binding", "module", mod.Name, "name", d.Binding.Name, "error", err)
			return c.AxiomStub(d, err)
		}
	}
	sentences, err := c.Bindings(values, onError)
	if err != nil {
		return nil, err
	}
	res.Sentences = append(res.Sentences, sentences...)
	if n := res.Diagnostics.WarningCount(); n > 0 {
		logger.Warn("bindings translated as axioms", "module", mod.Name, "count", n, "report", res.Report())
	}
	return res, nil
}

// Render joins the sentences of a result, one per paragraph
func Render(sentences []gallina.Sentence) string {
	var sb strings.Builder
	for i, s := range sentences {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(gallina.PrintSentence(s))
	}
	return sb.String()
}
