package rename

import "strings"

// reserved holds the identifiers that cannot be used verbatim in the
// target language: Gallina keywords, sorts, and vernacular commands.
var reserved = map[string]bool{
	"as": true, "at": true, "cofix": true, "else": true, "end": true,
	"exists": true, "exists2": true, "fix": true, "for": true,
	"forall": true, "fun": true, "if": true, "IF": true, "in": true,
	"let": true, "match": true, "mod": true, "return": true,
	"then": true, "using": true, "where": true, "with": true,
	"Prop": true, "Set": true, "Type": true, "SProp": true,

	"Definition": true, "Inductive": true, "CoInductive": true,
	"Variant": true, "Fixpoint": true, "CoFixpoint": true,
	"Notation": true, "Axiom": true, "Axioms": true, "Parameter": true,
	"Variable": true, "Hypothesis": true, "Theorem": true,
	"Lemma": true, "Record": true, "Structure": true, "Class": true,
	"Instance": true, "Module": true, "Section": true, "End": true,
	"Require": true, "Import": true, "Export": true, "Open": true,
	"Scope": true, "Local": true, "Global": true, "Let": true,
	"Proof": true, "Qed": true, "Defined": true, "Admitted": true,
}

// IsReserved reports whether id is a reserved word of the target language
func IsReserved(id string) bool {
	return reserved[id]
}

// Escape makes id safe to emit. When id is a reserved word followed by
// zero or more underscores, one more underscore is appended; any other
// identifier is returned unchanged.
func Escape(id string) string {
	if reserved[strings.TrimRight(id, "_")] {
		return id + "_"
	}
	return id
}
