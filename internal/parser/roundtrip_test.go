package parser

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"

	"mers/internal/ast"
)

// program is filled by the fuzzer with a random, printable tree.
type program struct {
	File *ast.File
}

var identAlphabet = []rune("abcdefghijklmnopqrstuvwxyz_&")

type treeGen struct {
	r *rand.Rand
}

func (g treeGen) name() string {
	for {
		n := 1 + g.r.Intn(6)
		buf := make([]rune, n)
		for i := range buf {
			buf[i] = identAlphabet[g.r.Intn(len(identAlphabet))]
		}
		name := string(buf)
		if _, keyword := KEYWORDS[name]; !keyword {
			return name
		}
	}
}

func (g treeGen) number() *ast.NumberLit {
	text := []string{"0", "7", "42", "-3", "+12", "1.5", "-0.25"}[g.r.Intn(7)]
	return &ast.NumberLit{Text: text}
}

func (g treeGen) str() *ast.StringLit {
	contents := []string{"", "hello", `a\"b`, `tab\t`, "two words", `back\\`}
	return &ast.StringLit{Content: contents[g.r.Intn(len(contents))]}
}

func (g treeGen) leaf() ast.Definition {
	switch g.r.Intn(3) {
	case 0:
		return &ast.Variable{Name: g.name()}
	case 1:
		return g.number()
	}
	return g.str()
}

func (g treeGen) definitions(depth, max int) []ast.Definition {
	n := g.r.Intn(max + 1)
	if n == 0 {
		return nil
	}
	defs := make([]ast.Definition, n)
	for i := range defs {
		defs[i] = g.definition(depth - 1)
	}
	return defs
}

func (g treeGen) initable(depth int) ast.Definition {
	if depth <= 0 || g.r.Intn(3) > 0 {
		return &ast.Variable{Name: g.name()}
	}
	return &ast.Tuple{Elements: g.definitions(depth, 3)}
}

func (g treeGen) primary(depth int) ast.Definition {
	if depth <= 0 {
		return g.leaf()
	}
	switch g.r.Intn(5) {
	case 0:
		return &ast.Block{Body: g.definitions(depth, 3)}
	case 1:
		return &ast.Tuple{Elements: g.definitions(depth, 3)}
	}
	return g.leaf()
}

func (g treeGen) definition(depth int) ast.Definition {
	if depth <= 0 {
		return g.leaf()
	}
	switch g.r.Intn(7) {
	case 0:
		return &ast.Init{Target: g.initable(depth - 1), Source: g.definition(depth - 1)}
	case 1:
		target := g.primary(depth - 1)
		return &ast.Assign{Target: target, Source: g.definition(depth - 1)}
	case 2:
		return &ast.Func{Arg: g.initable(depth - 1), Body: g.definition(depth - 1)}
	case 3:
		var base ast.Definition = g.primary(depth - 1)
		for i := 1 + g.r.Intn(3); i > 0; i-- {
			base = &ast.Chain{Base: base, Link: g.primary(depth - 1)}
		}
		return base
	case 4:
		node := &ast.If{Condition: g.definition(depth - 1), Then: g.definition(depth - 1)}
		if g.r.Intn(2) == 0 {
			if endsWithOpenIf(node.Then) {
				return node
			}
			node.Else = g.definition(depth - 1)
		}
		return node
	}
	return g.primary(depth)
}

// endsWithOpenIf reports whether the printed form of d ends in an if that has
// no else, which would capture an else printed right after it.
func endsWithOpenIf(d ast.Definition) bool {
	switch v := d.(type) {
	case *ast.If:
		if v.Else == nil {
			return true
		}
		return endsWithOpenIf(v.Else)
	case *ast.Init:
		return endsWithOpenIf(v.Source)
	case *ast.Assign:
		return endsWithOpenIf(v.Source)
	case *ast.Func:
		return endsWithOpenIf(v.Body)
	}
	return false
}

func newProgramFuzzer(seed int64) *fuzz.Fuzzer {
	return fuzz.New().RandSource(rand.NewSource(seed)).Funcs(
		func(p *program, c fuzz.Continue) {
			g := treeGen{r: c.Rand}
			p.File = &ast.File{Name: "gen.mers", Definitions: g.definitions(4, 5)}
		},
	)
}

var ignorePositions = cmp.Options{
	cmpopts.IgnoreTypes(ast.Position{}),
	cmpopts.EquateEmpty(),
}

func TestPrintParseRoundTrip(t *testing.T) {
	f := newProgramFuzzer(1)

	for i := 0; i < 500; i++ {
		var p program
		f.Fuzz(&p)

		source := p.File.String()
		parsed, err := ParseSource("gen.mers", source)
		require.NoError(t, err, "source:\n%s", source)

		if diff := cmp.Diff(p.File, parsed, ignorePositions); diff != "" {
			t.Fatalf("round trip mismatch (-generated +parsed):\n%s\nsource:\n%s", diff, source)
		}
	}
}

func TestReprintIsStable(t *testing.T) {
	f := newProgramFuzzer(7)

	for i := 0; i < 200; i++ {
		var p program
		f.Fuzz(&p)

		first := p.File.String()
		parsed, err := ParseSource("gen.mers", first)
		require.NoError(t, err)
		require.Equal(t, first, parsed.String())
	}
}
