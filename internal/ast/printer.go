package ast

import (
	"strings"
)

// The String methods print canonical concrete syntax. Parsing the output
// yields a structurally identical tree.

func (f *File) String() string {
	var b strings.Builder
	for _, d := range f.Definitions {
		b.WriteString(d.String())
		b.WriteString("\n")
	}
	return b.String()
}

func (i *Init) String() string {
	return i.Target.String() + " := " + i.Source.String()
}

func (a *Assign) String() string {
	return a.Target.String() + " = " + a.Source.String()
}

func (i *If) String() string {
	var b strings.Builder
	b.WriteString("if ")
	b.WriteString(i.Condition.String())
	b.WriteString(" ")
	b.WriteString(i.Then.String())
	if i.Else != nil {
		b.WriteString(" else ")
		b.WriteString(i.Else.String())
	}
	return b.String()
}

func (f *Func) String() string {
	return f.Arg.String() + " -> " + f.Body.String()
}

func (b *Block) String() string {
	if len(b.Body) == 0 {
		return "{}"
	}
	return "{ " + joinDefinitions(b.Body, " ") + " }"
}

func (t *Tuple) String() string {
	return "(" + joinDefinitions(t.Elements, ", ") + ")"
}

func (c *Chain) String() string {
	// A lone parenthesized link is read back as a grouping, so a one-element
	// tuple whose element is not itself a valid link keeps its comma.
	if t, ok := c.Link.(*Tuple); ok && len(t.Elements) == 1 && !IsChainLink(t.Elements[0]) {
		return c.Base.String() + ".(" + t.Elements[0].String() + ",)"
	}
	// `1 .5` would read as the number 1.5 without the space.
	if _, ok := c.Link.(*NumberLit); ok && endsWithNumber(c.Base) {
		return c.Base.String() + " ." + c.Link.String()
	}
	return c.Base.String() + "." + c.Link.String()
}

func endsWithNumber(d Definition) bool {
	switch v := d.(type) {
	case *NumberLit:
		return true
	case *Chain:
		_, ok := v.Link.(*NumberLit)
		return ok
	}
	return false
}

func (s *StringLit) String() string {
	return `"` + s.Content + `"`
}

func (n *NumberLit) String() string {
	return n.Text
}

func (v *Variable) String() string {
	return v.Name
}

func joinDefinitions(defs []Definition, sep string) string {
	parts := make([]string, len(defs))
	for i, d := range defs {
		parts[i] = d.String()
	}
	return strings.Join(parts, sep)
}
