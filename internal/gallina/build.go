package gallina

import "math/big"

// Constructor and accessor helpers for common term shapes.

// V builds a variable reference.
func V(name string) *Var { return &Var{Name: name} }

// Apply applies f to args, flattening nested applications. With no
// arguments it returns f unchanged.
func Apply(f Term, args ...Term) Term {
	if len(args) == 0 {
		return f
	}
	if app, ok := f.(*App); ok {
		merged := make([]Term, 0, len(app.Args)+len(args))
		merged = append(merged, app.Args...)
		merged = append(merged, args...)
		return &App{Func: app.Func, Args: merged}
	}
	return &App{Func: f, Args: args}
}

// Arrows builds dom1 -> dom2 -> ... -> cod.
func Arrows(doms []Term, cod Term) Term {
	for i := len(doms) - 1; i >= 0; i-- {
		cod = &Arrow{Dom: doms[i], Cod: cod}
	}
	return cod
}

// Lambda builds a function literal, or returns body itself when there are
// no binders.
func Lambda(binders []*Binder, body Term) Term {
	if len(binders) == 0 {
		return body
	}
	return &Fun{Binders: binders, Body: body}
}

// ForallMaybe quantifies body over binders, or returns body itself when
// there are none.
func ForallMaybe(binders []*Binder, body Term) Term {
	if len(binders) == 0 {
		return body
	}
	return &Forall{Binders: binders, Body: body}
}

// ExplicitBinder builds an untyped explicit binder.
func ExplicitBinder(name string) *Binder { return &Binder{Name: name} }

// ImplicitBinder builds an untyped implicit binder.
func ImplicitBinder(name string) *Binder { return &Binder{Name: name, Implicit: true} }

// TypeSort is the Type universe.
func TypeSort() *Sort { return &Sort{Name: "Type"} }

// NumLit builds a numeric literal from an int64.
func NumLit(n int64) *Num { return &Num{Value: big.NewInt(n)} }

// True is the boolean true constant.
func True() *Var { return V("true") }

// SplitForall splits a leading quantifier from a type.
func SplitForall(t Term) ([]*Binder, Term) {
	if fa, ok := t.(*Forall); ok {
		return fa.Binders, fa.Body
	}
	return nil, t
}

// BinderNames lists the names introduced by binders.
func BinderNames(bs []*Binder) []string {
	names := make([]string, 0, len(bs))
	for _, b := range bs {
		names = append(names, b.Name)
	}
	return names
}
