package grammar

import (
	"strings"
)

// The String methods print the participle tree back as source. Tuple
// separators are kept as parsed, so a tree prints close to its input.

func (f *File) String() string {
	var b strings.Builder
	for _, d := range f.Definitions {
		b.WriteString(d.String())
		b.WriteString("\n")
	}
	return b.String()
}

func (d *Definition) String() string {
	if d.If != nil {
		return d.If.String()
	}
	return d.Postfix.String()
}

func (i *If) String() string {
	s := "if " + i.Condition.String() + " " + i.Then.String()
	if i.Else != nil {
		s += " else " + i.Else.String()
	}
	return s
}

func (p *Postfix) String() string {
	var b strings.Builder
	b.WriteString(p.Primary.String())
	for _, link := range p.Links {
		b.WriteString(".")
		b.WriteString(link.String())
	}
	switch {
	case p.Init != nil:
		b.WriteString(" := " + p.Init.String())
	case p.Assign != nil:
		b.WriteString(" = " + p.Assign.String())
	case p.Func != nil:
		b.WriteString(" -> " + p.Func.String())
	}
	return b.String()
}

func (p *Primary) String() string {
	switch {
	case p.Block != nil:
		return p.Block.String()
	case p.Tuple != nil:
		return p.Tuple.String()
	case p.Str != nil:
		return *p.Str
	case p.Number != nil:
		return *p.Number
	case p.Ident != nil:
		return *p.Ident
	}
	return ""
}

func (b *Block) String() string {
	if len(b.Body) == 0 {
		return "{}"
	}
	parts := make([]string, len(b.Body))
	for i, d := range b.Body {
		parts[i] = d.String()
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

func (t *Tuple) String() string {
	var b strings.Builder
	b.WriteString("(")
	for i, e := range t.Elements {
		b.WriteString(e.Definition.String())
		switch {
		case e.Comma && i == len(t.Elements)-1:
			b.WriteString(",")
		case e.Comma:
			b.WriteString(", ")
		case i < len(t.Elements)-1:
			b.WriteString(" ")
		}
	}
	b.WriteString(")")
	return b.String()
}
