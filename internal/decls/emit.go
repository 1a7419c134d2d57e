package decls

import (
	"fmt"

	"github.com/lhaig/hs2v/internal/diagnostic"
	"github.com/lhaig/hs2v/internal/freevars"
	"github.com/lhaig/hs2v/internal/gallina"
)

const (
	// SynonymMarker is the preamble definition wrapping synonym bodies that
	// take part in an inductive knot
	SynonymMarker = "Synonym"
	// placeholderSuffix names the empty inductive standing in for a synonym
	placeholderSuffix = "__raw"
)

// Placeholder returns the name of the placeholder inductive for synonym
func Placeholder(synonym string) string {
	return synonym + placeholderSuffix
}

// Preamble returns the sentences defining SynonymMarker. They must precede
// the first mixed group.
//
//	Definition Synonym {A : Type} (_uniq : Type) (x : A) : A := x.
//	Arguments Synonym {A}%type _uniq%type x%type.
func Preamble() []gallina.Sentence {
	return []gallina.Sentence{
		&gallina.DefinitionSentence{
			Name: SynonymMarker,
			Binders: []*gallina.Binder{
				{Name: "A", Type: gallina.TypeSort(), Implicit: true},
				{Name: "_uniq", Type: gallina.TypeSort()},
				{Name: "x", Type: gallina.V("A")},
			},
			Type: gallina.V("A"),
			Body: gallina.V("x"),
		},
		&gallina.ArgumentsSentence{
			Name: SynonymMarker,
			Args: []string{"{A}%type", "_uniq%type", "x%type"},
		},
	}
}

// NeedsPreamble reports whether any group uses SynonymMarker
func NeedsPreamble(groups []*Group) bool {
	for _, g := range groups {
		if g.Kind == Mixed {
			return true
		}
	}
	return false
}

// Emit produces the sentences for groups in order
func Emit(groups []*Group) ([]gallina.Sentence, error) {
	var out []gallina.Sentence
	for _, g := range groups {
		sentences, err := g.Sentences()
		if err != nil {
			return nil, err
		}
		out = append(out, sentences...)
	}
	return out, nil
}

// Sentences produces the sentences for one group
func (g *Group) Sentences() ([]gallina.Sentence, error) {
	switch g.Kind {
	case Inductives:
		return []gallina.Sentence{&gallina.InductiveSentence{Bodies: g.Inductives}}, nil

	case Synonym:
		syn := g.Synonyms[0]
		return []gallina.Sentence{&gallina.DefinitionSentence{
			Name:    syn.Name,
			Binders: syn.Params,
			Type:    syn.Kind,
			Body:    syn.Def,
		}}, nil

	case Synonyms:
		return nil, diagnostic.Rejected("mutually-recursive type synonyms")

	case Mixed:
		return g.mixedSentences(), nil

	default:
		return nil, diagnostic.Malformed(fmt.Sprintf("unknown group kind %d", g.Kind))
	}
}

// mixedSentences encodes a knot of inductives and synonyms. Each synonym
// gets an empty placeholder inductive inside the block and a reserved
// notation bound in the block's where clause to its real definition,
// wrapped in SynonymMarker so the placeholder is referenced.
func (g *Group) mixedSentences() []gallina.Sentence {
	var out []gallina.Sentence
	block := &gallina.InductiveSentence{}
	block.Bodies = append(block.Bodies, g.Inductives...)

	for _, syn := range g.Synonyms {
		out = append(out, &gallina.ReservedNotationSentence{Name: syn.Name})
		block.Bodies = append(block.Bodies, &gallina.IndBody{
			Name: Placeholder(syn.Name),
			Type: gallina.TypeSort(),
		})
	}

	for i, syn := range g.Synonyms {
		params, def := g.avoidKnotParams(i)
		marked := gallina.Apply(gallina.V(SynonymMarker), gallina.V(Placeholder(syn.Name)), def)
		block.Notations = append(block.Notations, &gallina.NotationBinding{
			Name: syn.Name,
			Term: gallina.Lambda(params, marked),
		})
	}
	return append(out, block)
}

// avoidKnotParams renames the parameters of synonym i that clash with a
// parameter of another member of the knot, appending underscores until
// the name is unused, and rewrites the definition accordingly
func (g *Group) avoidKnotParams(i int) ([]*gallina.Binder, gallina.Term) {
	syn := g.Synonyms[i]

	others := make(freevars.Set)
	for _, ind := range g.Inductives {
		others.AddAll(freevars.NewSet(gallina.BinderNames(ind.Params)...))
	}
	for j, s := range g.Synonyms {
		if j != i {
			others.AddAll(freevars.NewSet(gallina.BinderNames(s.Params)...))
		}
	}

	taken := freevars.Names(syn.Def)
	taken.AddAll(others)
	taken.AddAll(freevars.NewSet(gallina.BinderNames(syn.Params)...))

	renames := make(map[string]string)
	params := make([]*gallina.Binder, len(syn.Params))
	for k, p := range syn.Params {
		renamed := &gallina.Binder{Name: p.Name, Type: gallina.Rename(p.Type, renames), Implicit: p.Implicit}
		if others.Has(p.Name) {
			name := p.Name
			for taken.Has(name) {
				name += "_"
			}
			taken.Add(name)
			renames[p.Name] = name
			renamed.Name = name
		}
		params[k] = renamed
	}
	return params, gallina.Rename(syn.Def, renames)
}
