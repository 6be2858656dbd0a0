package ast

import (
	"strings"
)

// Dump renders n as an S-expression that shows the tree shape explicitly,
// e.g. `(init (variable x) (number 5))`.
func Dump(n Node) string {
	var b strings.Builder
	dump(&b, n)
	return b.String()
}

func dump(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case *File:
		b.WriteString("(file")
		for _, d := range v.Definitions {
			b.WriteString(" ")
			dump(b, d)
		}
		b.WriteString(")")
	case *StringLit:
		b.WriteString(`(string "` + v.Content + `")`)
	case *NumberLit:
		b.WriteString("(number " + v.Text + ")")
	case *Variable:
		b.WriteString("(variable " + v.Name + ")")
	default:
		b.WriteString("(" + Describe(n))
		for _, c := range Children(n) {
			b.WriteString(" ")
			dump(b, c)
		}
		b.WriteString(")")
	}
}
