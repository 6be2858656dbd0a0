package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"

	"mers/internal/ast"
	"mers/internal/parser"
)

// Lower converts a participle tree into ast nodes, applying the restrictions
// the grammar itself does not express: Init and Func targets, Assign targets,
// and the single-element grouping rule for chain links.
func Lower(path string, tree *File) (*ast.File, error) {
	l := &lowerer{filename: path}
	file := &ast.File{Name: path}

	for _, d := range tree.Definitions {
		def, err := l.definition(d)
		if err != nil {
			return nil, err
		}
		file.Definitions = append(file.Definitions, def)
	}

	if n := len(file.Definitions); n > 0 {
		file.Pos = file.Definitions[0].NodePos()
		file.EndPos = file.Definitions[n-1].NodeEndPos()
	}
	return file, nil
}

type lowerer struct {
	filename string
}

func (l *lowerer) definition(d *Definition) (ast.Definition, error) {
	if d.If != nil {
		return l.ifNode(d.If)
	}
	return l.postfix(d.Postfix)
}

func (l *lowerer) ifNode(n *If) (ast.Definition, error) {
	condition, err := l.definition(n.Condition)
	if err != nil {
		return nil, err
	}
	then, err := l.definition(n.Then)
	if err != nil {
		return nil, err
	}

	node := &ast.If{
		Pos:       l.pos(n.Pos),
		EndPos:    then.NodeEndPos(),
		Condition: condition,
		Then:      then,
	}
	if n.Else != nil {
		other, err := l.definition(n.Else)
		if err != nil {
			return nil, err
		}
		node.Else = other
		node.EndPos = other.NodeEndPos()
	}
	return node, nil
}

func (l *lowerer) postfix(n *Postfix) (ast.Definition, error) {
	target, err := l.primary(n.Primary)
	if err != nil {
		return nil, err
	}

	for _, link := range n.Links {
		linkNode, err := l.chainLink(link)
		if err != nil {
			return nil, err
		}
		target = &ast.Chain{
			Pos:    target.NodePos(),
			EndPos: linkNode.NodeEndPos(),
			Base:   target,
			Link:   linkNode,
		}
	}

	switch {
	case n.Init != nil:
		if !ast.IsInitable(target) {
			return nil, restrictionError(target, parser.ExpectedInitTarget)
		}
		source, err := l.definition(n.Init)
		if err != nil {
			return nil, err
		}
		return &ast.Init{Pos: target.NodePos(), EndPos: source.NodeEndPos(), Target: target, Source: source}, nil

	case n.Assign != nil:
		if !ast.IsAssignable(target) {
			return nil, restrictionError(target, parser.ExpectedAssignTarget)
		}
		source, err := l.definition(n.Assign)
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Pos: target.NodePos(), EndPos: source.NodeEndPos(), Target: target, Source: source}, nil

	case n.Func != nil:
		if !ast.IsInitable(target) {
			return nil, restrictionError(target, parser.ExpectedFuncArg)
		}
		body, err := l.definition(n.Func)
		if err != nil {
			return nil, err
		}
		return &ast.Func{Pos: target.NodePos(), EndPos: body.NodeEndPos(), Arg: target, Body: body}, nil
	}

	return target, nil
}

func (l *lowerer) chainLink(p *Primary) (ast.Definition, error) {
	link, err := l.primary(p)
	if err != nil {
		return nil, err
	}
	if p.Tuple != nil && len(p.Tuple.Elements) == 1 && !p.Tuple.Elements[0].Comma {
		inner := link.(*ast.Tuple).Elements[0]
		if !ast.IsChainLink(inner) {
			return nil, restrictionError(inner, parser.ExpectedChainLink)
		}
	}
	return link, nil
}

func (l *lowerer) primary(p *Primary) (ast.Definition, error) {
	switch {
	case p.Block != nil:
		block := &ast.Block{Pos: l.pos(p.Block.Pos), EndPos: l.endOf(p.Block.Tokens)}
		for _, d := range p.Block.Body {
			def, err := l.definition(d)
			if err != nil {
				return nil, err
			}
			block.Body = append(block.Body, def)
		}
		return block, nil

	case p.Tuple != nil:
		tuple := &ast.Tuple{Pos: l.pos(p.Tuple.Pos), EndPos: l.endOf(p.Tuple.Tokens)}
		for _, e := range p.Tuple.Elements {
			def, err := l.definition(e.Definition)
			if err != nil {
				return nil, err
			}
			tuple.Elements = append(tuple.Elements, def)
		}
		return tuple, nil

	case p.Str != nil:
		text := *p.Str
		return &ast.StringLit{Pos: l.pos(p.Pos), EndPos: l.after(p.Pos, text), Content: text[1 : len(text)-1]}, nil

	case p.Number != nil:
		return &ast.NumberLit{Pos: l.pos(p.Pos), EndPos: l.after(p.Pos, *p.Number), Text: *p.Number}, nil
	}

	return &ast.Variable{Pos: l.pos(p.Pos), EndPos: l.after(p.Pos, *p.Ident), Name: *p.Ident}, nil
}

func (l *lowerer) pos(p lexer.Position) ast.Position {
	return ast.Position{Filename: l.filename, Offset: p.Offset, Line: p.Line, Column: p.Column}
}

// after mirrors parser.Token.End: the column advances by the text length
// even when the text spans a newline.
func (l *lowerer) after(p lexer.Position, text string) ast.Position {
	return ast.Position{
		Filename: l.filename,
		Offset:   p.Offset + len(text),
		Line:     p.Line,
		Column:   p.Column + len(text),
	}
}

func (l *lowerer) endOf(tokens []lexer.Token) ast.Position {
	last := tokens[len(tokens)-1]
	return l.after(last.Pos, last.Value)
}

func restrictionError(n ast.Node, expected string) error {
	pos := n.NodePos()
	return &parser.ParseError{
		Position: parser.Position{Line: pos.Line, Column: pos.Column, Offset: pos.Offset},
		Expected: expected,
		Found:    ast.Describe(n),
	}
}

func position(p lexer.Position) parser.Position {
	return parser.Position{Line: p.Line, Column: p.Column, Offset: p.Offset}
}

func describeToken(tok lexer.Token) string {
	if tok.EOF() {
		return "end of input"
	}
	return "'" + tok.Value + "'"
}
