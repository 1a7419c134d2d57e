package gallina

// Rename returns a copy of t in which every free occurrence of a key of m
// is replaced by its value. Binders that rebind a key shadow it for their
// scope. Replacement names are assumed not to be captured by binders in t.
func Rename(t Term, m map[string]string) Term {
	if len(m) == 0 || t == nil {
		return t
	}
	switch n := t.(type) {
	case *Var:
		if to, ok := m[n.Name]; ok {
			return &Var{Name: to}
		}
		return &Var{Name: n.Name}
	case *App:
		args := make([]Term, len(n.Args))
		for i, a := range n.Args {
			args[i] = Rename(a, m)
		}
		return &App{Func: Rename(n.Func, m), Args: args}
	case *Fun:
		bs, inner := renameBinders(n.Binders, m)
		return &Fun{Binders: bs, Body: Rename(n.Body, inner)}
	case *Fix:
		scoped := without(m, n.Name)
		bs, inner := renameBinders(n.Binders, scoped)
		return &Fix{Name: n.Name, Binders: bs, Type: Rename(n.Type, inner), Body: Rename(n.Body, inner)}
	case *Match:
		out := &Match{Scrutinees: make([]Term, len(n.Scrutinees))}
		for i, s := range n.Scrutinees {
			out.Scrutinees[i] = Rename(s, m)
		}
		for _, eq := range n.Equations {
			inner := m
			pats := make([]Pattern, len(eq.Patterns))
			for i, p := range eq.Patterns {
				pats[i] = renamePattern(p, m)
				inner = without(inner, patternVars(p)...)
			}
			out.Equations = append(out.Equations, &Equation{Patterns: pats, Body: Rename(eq.Body, inner)})
		}
		return out
	case *Parens:
		return &Parens{Term: Rename(n.Term, m)}
	case *Forall:
		bs, inner := renameBinders(n.Binders, m)
		return &Forall{Binders: bs, Body: Rename(n.Body, inner)}
	case *Arrow:
		return &Arrow{Dom: Rename(n.Dom, m), Cod: Rename(n.Cod, m)}
	case *If:
		return &If{Cond: Rename(n.Cond, m), Then: Rename(n.Then, m), Else: Rename(n.Else, m)}
	case *Let:
		bs, inner := renameBinders(n.Binders, m)
		return &Let{
			Name:    n.Name,
			Binders: bs,
			Type:    Rename(n.Type, inner),
			Value:   Rename(n.Value, inner),
			Body:    Rename(n.Body, without(m, n.Name)),
		}
	case *HasType:
		return &HasType{Term: Rename(n.Term, m), Type: Rename(n.Type, m)}
	default:
		// literals, sorts and underscores have no names
		return t
	}
}

// renameBinders renames inside binder types, where each type sees the
// binders before it, and returns the map that applies under all of them
func renameBinders(bs []*Binder, m map[string]string) ([]*Binder, map[string]string) {
	out := make([]*Binder, len(bs))
	for i, b := range bs {
		out[i] = &Binder{Name: b.Name, Type: Rename(b.Type, m), Implicit: b.Implicit}
		m = without(m, b.Name)
	}
	return out, m
}

func renamePattern(p Pattern, m map[string]string) Pattern {
	switch n := p.(type) {
	case *ConPat:
		out := &ConPat{Con: n.Con}
		if to, ok := m[n.Con]; ok {
			out.Con = to
		}
		for _, a := range n.Args {
			out.Args = append(out.Args, renamePattern(a, m))
		}
		return out
	case *AsPat:
		return &AsPat{Pat: renamePattern(n.Pat, m), Name: n.Name}
	default:
		return p
	}
}

func patternVars(p Pattern) []string {
	switch n := p.(type) {
	case *VarPat:
		return []string{n.Name}
	case *AsPat:
		return append(patternVars(n.Pat), n.Name)
	case *ConPat:
		var names []string
		for _, a := range n.Args {
			names = append(names, patternVars(a)...)
		}
		return names
	default:
		return nil
	}
}

// without returns m minus names, copying only when something is removed
func without(m map[string]string, names ...string) map[string]string {
	var out map[string]string
	for _, name := range names {
		if _, ok := m[name]; !ok {
			continue
		}
		if out == nil {
			out = make(map[string]string, len(m))
			for k, v := range m {
				out[k] = v
			}
		}
		delete(out, name)
	}
	if out == nil {
		return m
	}
	return out
}
