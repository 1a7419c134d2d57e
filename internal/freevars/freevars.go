// Package freevars computes free-identifier sets of target terms,
// patterns, binder lists and inductive bodies. Names bound by fun, fix,
// forall, let and match arms are excluded within their scope.
package freevars

import (
	"sort"

	"github.com/lhaig/hs2v/internal/gallina"
)

// Set is a set of identifiers
type Set map[string]struct{}

// NewSet builds a set from names
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports membership
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Add inserts name
func (s Set) Add(name string) { s[name] = struct{}{} }

// AddAll inserts every member of other
func (s Set) AddAll(other Set) {
	for n := range other {
		s[n] = struct{}{}
	}
}

// Remove deletes name
func (s Set) Remove(name string) { delete(s, name) }

// Sorted lists the members in ascending lexical order
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Term returns the free identifiers of t
func Term(t gallina.Term) Set {
	s := make(Set)
	collectTerm(s, t)
	return s
}

// Terms returns the union of the free identifiers of ts
func Terms(ts ...gallina.Term) Set {
	s := make(Set)
	for _, t := range ts {
		collectTerm(s, t)
	}
	return s
}

// Pattern returns the identifiers a pattern references, i.e. its
// constructors. Variables a pattern binds are not free.
func Pattern(p gallina.Pattern) Set {
	s := make(Set)
	collectPattern(s, p)
	return s
}

// PatternBinders returns the variables a pattern binds
func PatternBinders(p gallina.Pattern) Set {
	s := make(Set)
	bindPattern(s, p)
	return s
}

// Binders returns the free identifiers of a telescope of binders scoping
// over inner: each binder's type sees the binders before it, and inner
// sees all of them.
func Binders(bs []*gallina.Binder, inner Set) Set {
	s := make(Set)
	scoped := make(Set)
	scoped.AddAll(inner)
	for i := len(bs) - 1; i >= 0; i-- {
		scoped.Remove(bs[i].Name)
		if bs[i].Type != nil {
			collectTerm(scoped, bs[i].Type)
		}
	}
	s.AddAll(scoped)
	return s
}

// IndBody returns the free identifiers of an inductive body. The body's
// parameters scope over its result type and every constructor.
func IndBody(b *gallina.IndBody) Set {
	inner := make(Set)
	if b.Type != nil {
		collectTerm(inner, b.Type)
	}
	for _, con := range b.Constructors {
		conFree := make(Set)
		if con.Type != nil {
			collectTerm(conFree, con.Type)
		}
		inner.AddAll(Binders(con.Binders, conFree))
	}
	return Binders(b.Params, inner)
}

func collectTerm(s Set, t gallina.Term) {
	switch n := t.(type) {
	case nil:
	case *gallina.Var:
		s.Add(n.Name)
	case *gallina.App:
		collectTerm(s, n.Func)
		for _, a := range n.Args {
			collectTerm(s, a)
		}
	case *gallina.Fun:
		s.AddAll(Binders(n.Binders, Term(n.Body)))
	case *gallina.Fix:
		inner := Terms(n.Type, n.Body)
		fv := Binders(n.Binders, inner)
		fv.Remove(n.Name)
		s.AddAll(fv)
	case *gallina.Match:
		for _, sc := range n.Scrutinees {
			collectTerm(s, sc)
		}
		for _, eq := range n.Equations {
			body := Term(eq.Body)
			for _, p := range eq.Patterns {
				for b := range PatternBinders(p) {
					body.Remove(b)
				}
				collectPattern(s, p)
			}
			s.AddAll(body)
		}
	case *gallina.Num, *gallina.String, *gallina.Underscore, *gallina.Sort:
	case *gallina.Parens:
		collectTerm(s, n.Term)
	case *gallina.Forall:
		s.AddAll(Binders(n.Binders, Term(n.Body)))
	case *gallina.Arrow:
		collectTerm(s, n.Dom)
		collectTerm(s, n.Cod)
	case *gallina.If:
		collectTerm(s, n.Cond)
		collectTerm(s, n.Then)
		collectTerm(s, n.Else)
	case *gallina.Let:
		s.AddAll(Binders(n.Binders, Terms(n.Type, n.Value)))
		body := Term(n.Body)
		body.Remove(n.Name)
		s.AddAll(body)
	case *gallina.HasType:
		collectTerm(s, n.Term)
		collectTerm(s, n.Type)
	}
}

func collectPattern(s Set, p gallina.Pattern) {
	switch n := p.(type) {
	case *gallina.AsPat:
		collectPattern(s, n.Pat)
	case *gallina.ConPat:
		s.Add(n.Con)
		for _, a := range n.Args {
			collectPattern(s, a)
		}
	}
}

func bindPattern(s Set, p gallina.Pattern) {
	switch n := p.(type) {
	case *gallina.VarPat:
		s.Add(n.Name)
	case *gallina.AsPat:
		s.Add(n.Name)
		bindPattern(s, n.Pat)
	case *gallina.ConPat:
		for _, a := range n.Args {
			bindPattern(s, a)
		}
	}
}

// Names returns every identifier occurring in t, bound or free. Fresh
// names chosen outside this set can neither capture nor be captured.
func Names(t gallina.Term) Set {
	s := make(Set)
	collectNames(s, t)
	return s
}

func collectNames(s Set, t gallina.Term) {
	addBinders := func(bs []*gallina.Binder) {
		for _, b := range bs {
			s.Add(b.Name)
			collectNames(s, b.Type)
		}
	}
	switch n := t.(type) {
	case *gallina.Var:
		s.Add(n.Name)
	case *gallina.App:
		collectNames(s, n.Func)
		for _, a := range n.Args {
			collectNames(s, a)
		}
	case *gallina.Fun:
		addBinders(n.Binders)
		collectNames(s, n.Body)
	case *gallina.Fix:
		s.Add(n.Name)
		addBinders(n.Binders)
		collectNames(s, n.Type)
		collectNames(s, n.Body)
	case *gallina.Match:
		for _, sc := range n.Scrutinees {
			collectNames(s, sc)
		}
		for _, eq := range n.Equations {
			for _, p := range eq.Patterns {
				s.AddAll(Pattern(p))
				s.AddAll(PatternBinders(p))
			}
			collectNames(s, eq.Body)
		}
	case *gallina.Parens:
		collectNames(s, n.Term)
	case *gallina.Forall:
		addBinders(n.Binders)
		collectNames(s, n.Body)
	case *gallina.Arrow:
		collectNames(s, n.Dom)
		collectNames(s, n.Cod)
	case *gallina.If:
		collectNames(s, n.Cond)
		collectNames(s, n.Then)
		collectNames(s, n.Else)
	case *gallina.Let:
		s.Add(n.Name)
		addBinders(n.Binders)
		collectNames(s, n.Type)
		collectNames(s, n.Value)
		collectNames(s, n.Body)
	case *gallina.HasType:
		collectNames(s, n.Term)
		collectNames(s, n.Type)
	}
}
