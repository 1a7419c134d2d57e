package gallina

// Sentence is one top-level target sentence.
type Sentence interface {
	sentenceNode()
}

// IndBody is one body of an inductive block.
type IndBody struct {
	Name         string
	Params       []*Binder
	Type         Term // result kind, e.g. Type
	Constructors []*Constructor
}

// Constructor is one data constructor of an inductive body. Type is the
// arrow chain of field types ending in the inductive's result type.
type Constructor struct {
	Name    string
	Binders []*Binder
	Type    Term
}

// NotationBinding binds a notation identifier to a term; used in the
// `where` clause of an inductive block and by standalone notations.
type NotationBinding struct {
	Name string
	Term Term
}

// InductiveSentence is a (possibly mutual) inductive block with optional
// `where` notation bindings.
type InductiveSentence struct {
	Bodies    []*IndBody
	Notations []*NotationBinding
}

func (*InductiveSentence) sentenceNode() {}

// DefinitionSentence is `Definition Name binders : Type := Body.`
type DefinitionSentence struct {
	Name    string
	Binders []*Binder
	Type    Term // nil when absent
	Body    Term
}

func (*DefinitionSentence) sentenceNode() {}

// ReservedNotationSentence reserves an identifier as notation.
type ReservedNotationSentence struct {
	Name string
}

func (*ReservedNotationSentence) sentenceNode() {}

// ArgumentsSentence declares implicit arguments and scopes for Name.
type ArgumentsSentence struct {
	Name string
	Args []string
}

func (*ArgumentsSentence) sentenceNode() {}

// CommentSentence is a comment in the output.
type CommentSentence struct {
	Text string
}

func (*CommentSentence) sentenceNode() {}

// AxiomSentence is `Axiom Name : Type.`
type AxiomSentence struct {
	Name string
	Type Term
}

func (*AxiomSentence) sentenceNode() {}
