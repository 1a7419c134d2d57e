package gallina

import (
	"fmt"
	"strings"
)

// Print renders a term in concrete syntax on a single line. The output is
// meant for diagnostics and tests; it parenthesizes conservatively.
func Print(t Term) string {
	var sb strings.Builder
	printTerm(&sb, t)
	return sb.String()
}

// PrintPattern renders a pattern on a single line.
func PrintPattern(p Pattern) string {
	var sb strings.Builder
	printPattern(&sb, p)
	return sb.String()
}

// PrintSentence renders one sentence, terminated by a period.
func PrintSentence(s Sentence) string {
	var sb strings.Builder
	switch n := s.(type) {
	case *InductiveSentence:
		for i, body := range n.Bodies {
			if i == 0 {
				sb.WriteString("Inductive ")
			} else {
				sb.WriteString("\nwith ")
			}
			sb.WriteString(body.Name)
			printBinders(&sb, body.Params)
			sb.WriteString(" : ")
			printTerm(&sb, body.Type)
			sb.WriteString(" :=")
			for _, con := range body.Constructors {
				sb.WriteString("\n  | " + con.Name)
				printBinders(&sb, con.Binders)
				sb.WriteString(" : ")
				printTerm(&sb, con.Type)
			}
		}
		for i, nb := range n.Notations {
			if i == 0 {
				sb.WriteString("\nwhere ")
			} else {
				sb.WriteString("\nand   ")
			}
			sb.WriteString(fmt.Sprintf("\"'%s'\" := (", nb.Name))
			printTerm(&sb, nb.Term)
			sb.WriteString(")")
		}
	case *DefinitionSentence:
		sb.WriteString("Definition " + n.Name)
		printBinders(&sb, n.Binders)
		if n.Type != nil {
			sb.WriteString(" : ")
			printTerm(&sb, n.Type)
		}
		sb.WriteString(" := ")
		printTerm(&sb, n.Body)
	case *ReservedNotationSentence:
		sb.WriteString(fmt.Sprintf("Reserved Notation \"'%s'\"", n.Name))
	case *ArgumentsSentence:
		sb.WriteString("Arguments " + n.Name + " " + strings.Join(n.Args, " "))
	case *CommentSentence:
		return "(* " + strings.ReplaceAll(n.Text, "*)", "* )") + " *)"
	case *AxiomSentence:
		sb.WriteString("Axiom " + n.Name + " : ")
		printTerm(&sb, n.Type)
	default:
		return fmt.Sprintf("(* unknown sentence %T *)", s)
	}
	sb.WriteString(".")
	return sb.String()
}

func printBinders(sb *strings.Builder, bs []*Binder) {
	for _, b := range bs {
		sb.WriteString(" ")
		printBinder(sb, b)
	}
}

func printBinder(sb *strings.Builder, b *Binder) {
	lb, rb := "(", ")"
	if b.Implicit {
		lb, rb = "{", "}"
	}
	if b.Type == nil {
		if b.Implicit {
			sb.WriteString(lb + b.Name + rb)
		} else {
			sb.WriteString(b.Name)
		}
		return
	}
	sb.WriteString(lb + b.Name + " : ")
	printTerm(sb, b.Type)
	sb.WriteString(rb)
}

func isAtom(t Term) bool {
	switch t.(type) {
	case *Var, *Num, *String, *Parens, *Underscore, *Sort:
		return true
	}
	return false
}

func printArg(sb *strings.Builder, t Term) {
	if isAtom(t) {
		printTerm(sb, t)
		return
	}
	sb.WriteString("(")
	printTerm(sb, t)
	sb.WriteString(")")
}

func printTerm(sb *strings.Builder, t Term) {
	switch n := t.(type) {
	case nil:
		sb.WriteString("<nil>")
	case *Var:
		sb.WriteString(n.Name)
	case *App:
		printArg(sb, n.Func)
		for _, a := range n.Args {
			sb.WriteString(" ")
			printArg(sb, a)
		}
	case *Fun:
		sb.WriteString("fun")
		printBinders(sb, n.Binders)
		sb.WriteString(" => ")
		printTerm(sb, n.Body)
	case *Fix:
		sb.WriteString("fix " + n.Name)
		printBinders(sb, n.Binders)
		if n.Type != nil {
			sb.WriteString(" : ")
			printTerm(sb, n.Type)
		}
		sb.WriteString(" := ")
		printTerm(sb, n.Body)
	case *Match:
		sb.WriteString("match ")
		for i, s := range n.Scrutinees {
			if i > 0 {
				sb.WriteString(", ")
			}
			printTerm(sb, s)
		}
		sb.WriteString(" with")
		for _, eq := range n.Equations {
			sb.WriteString(" | ")
			for i, p := range eq.Patterns {
				if i > 0 {
					sb.WriteString(", ")
				}
				printPattern(sb, p)
			}
			sb.WriteString(" => ")
			printTerm(sb, eq.Body)
		}
		sb.WriteString(" end")
	case *Num:
		sb.WriteString(n.Value.String())
	case *String:
		sb.WriteString("\"" + strings.ReplaceAll(n.Value, "\"", "\"\"") + "\"")
	case *Parens:
		sb.WriteString("(")
		printTerm(sb, n.Term)
		sb.WriteString(")")
	case *Forall:
		sb.WriteString("forall")
		printBinders(sb, n.Binders)
		sb.WriteString(", ")
		printTerm(sb, n.Body)
	case *Arrow:
		if _, ok := n.Dom.(*Arrow); ok {
			printArg(sb, n.Dom)
		} else if _, ok := n.Dom.(*Forall); ok {
			printArg(sb, n.Dom)
		} else {
			printTerm(sb, n.Dom)
		}
		sb.WriteString(" -> ")
		printTerm(sb, n.Cod)
	case *If:
		sb.WriteString("if ")
		printTerm(sb, n.Cond)
		sb.WriteString(" then ")
		printTerm(sb, n.Then)
		sb.WriteString(" else ")
		printTerm(sb, n.Else)
	case *Let:
		sb.WriteString("let " + n.Name)
		printBinders(sb, n.Binders)
		if n.Type != nil {
			sb.WriteString(" : ")
			printTerm(sb, n.Type)
		}
		sb.WriteString(" := ")
		printTerm(sb, n.Value)
		sb.WriteString(" in ")
		printTerm(sb, n.Body)
	case *HasType:
		printArg(sb, n.Term)
		sb.WriteString(" : ")
		printTerm(sb, n.Type)
	case *Underscore:
		sb.WriteString("_")
	case *Sort:
		sb.WriteString(n.Name)
	default:
		sb.WriteString(fmt.Sprintf("<%T>", t))
	}
}

func printPattern(sb *strings.Builder, p Pattern) {
	switch n := p.(type) {
	case *WildPat:
		sb.WriteString("_")
	case *VarPat:
		sb.WriteString(n.Name)
	case *AsPat:
		printPatArg(sb, n.Pat)
		sb.WriteString(" as " + n.Name)
	case *ConPat:
		sb.WriteString(n.Con)
		for _, a := range n.Args {
			sb.WriteString(" ")
			printPatArg(sb, a)
		}
	case *NumPat:
		sb.WriteString(n.Value.String())
	case *StringPat:
		sb.WriteString("\"" + n.Value + "\"")
	default:
		sb.WriteString(fmt.Sprintf("<%T>", p))
	}
}

func printPatArg(sb *strings.Builder, p Pattern) {
	switch n := p.(type) {
	case *ConPat:
		if len(n.Args) == 0 {
			printPattern(sb, p)
			return
		}
	case *AsPat:
	default:
		printPattern(sb, p)
		return
	}
	sb.WriteString("(")
	printPattern(sb, p)
	sb.WriteString(")")
}
