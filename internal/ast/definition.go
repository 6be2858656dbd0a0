package ast

import "fmt"

type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// File is the synthetic root: the top-level definitions of one source unit in
// source order.
type File struct {
	Name        string
	Pos         Position
	EndPos      Position
	Definitions []Definition
}

// Definition is the closed set of constructs recognized at expression level.
type Definition interface {
	Node
	isDefinition()
}

func (*Init) isDefinition()      {}
func (*Assign) isDefinition()    {}
func (*If) isDefinition()        {}
func (*Func) isDefinition()      {}
func (*Block) isDefinition()     {}
func (*Tuple) isDefinition()     {}
func (*Chain) isDefinition()     {}
func (*StringLit) isDefinition() {}
func (*NumberLit) isDefinition() {}
func (*Variable) isDefinition()  {}

// Init introduces a binding: `target := source`.
// Target is a *Variable or *Tuple.
type Init struct {
	Pos    Position
	EndPos Position
	Target Definition
	Source Definition
}

// Assign mutates: `target = source`.
// Target is a *Variable, *Tuple, *Block, *StringLit or *NumberLit.
type Assign struct {
	Pos    Position
	EndPos Position
	Target Definition
	Source Definition
}

// If is `if condition then [else else]`. Else is nil when the clause is absent.
type If struct {
	Pos       Position
	EndPos    Position
	Condition Definition
	Then      Definition
	Else      Definition
}

// Func is a single-argument function literal `arg -> body`.
// Arg is a *Variable or *Tuple.
type Func struct {
	Pos    Position
	EndPos Position
	Arg    Definition
	Body   Definition
}

type Block struct {
	Pos    Position
	EndPos Position
	Body   []Definition
}

type Tuple struct {
	Pos      Position
	EndPos   Position
	Elements []Definition
}

// Chain is `base.link`. Chains nest to the left: a.b.c is Chain(Chain(a, b), c).
type Chain struct {
	Pos    Position
	EndPos Position
	Base   Definition
	Link   Definition
}

// StringLit holds the raw text between the quotes; escapes are not processed.
type StringLit struct {
	Pos     Position
	EndPos  Position
	Content string
}

// NumberLit holds the matched text, sign included.
type NumberLit struct {
	Pos    Position
	EndPos Position
	Text   string
}

type Variable struct {
	Pos    Position
	EndPos Position
	Name   string
}
