package parser

import (
	"mers/internal/ast"
)

// parseDefinition parses one definition. `if` is recognized from its keyword;
// everything else starts as a primary, optionally extended by `.` links, and
// then by at most one of `:=`, `=` or `->`, whose right side is again a full
// definition. expected names the construct for the error if nothing can start
// here.
func (p *Parser) parseDefinition(expected string) (ast.Definition, error) {
	if !p.startsDefinition() {
		return nil, p.errorAtCurrent(expected)
	}

	if p.check(IF) {
		return p.parseIf()
	}

	target, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	if p.check(CHAIN_DOT) {
		target, err = p.parseChain(target)
		if err != nil {
			return nil, err
		}
	}

	switch {
	case p.check(COLON_EQUALS):
		if !ast.IsInitable(target) {
			return nil, p.errorAtNode(target, ExpectedInitTarget)
		}
		p.advance()
		source, err := p.parseDefinition("definition after ':='")
		if err != nil {
			return nil, err
		}
		return &ast.Init{
			Pos:    target.NodePos(),
			EndPos: source.NodeEndPos(),
			Target: target,
			Source: source,
		}, nil

	case p.check(EQUALS):
		if !ast.IsAssignable(target) {
			return nil, p.errorAtNode(target, ExpectedAssignTarget)
		}
		p.advance()
		source, err := p.parseDefinition("definition after '='")
		if err != nil {
			return nil, err
		}
		return &ast.Assign{
			Pos:    target.NodePos(),
			EndPos: source.NodeEndPos(),
			Target: target,
			Source: source,
		}, nil

	case p.check(ARROW):
		if !ast.IsInitable(target) {
			return nil, p.errorAtNode(target, ExpectedFuncArg)
		}
		p.advance()
		body, err := p.parseDefinition("function body after '->'")
		if err != nil {
			return nil, err
		}
		return &ast.Func{
			Pos:    target.NodePos(),
			EndPos: body.NodeEndPos(),
			Arg:    target,
			Body:   body,
		}, nil
	}

	return target, nil
}

// parseIf parses `if cond then [else other]`. The else clause is taken
// greedily, so it always attaches to the nearest unmatched if.
func (p *Parser) parseIf() (ast.Definition, error) {
	ifTok := p.advance()

	condition, err := p.parseDefinition("condition after 'if'")
	if err != nil {
		return nil, err
	}

	then, err := p.parseDefinition("then branch after if condition")
	if err != nil {
		return nil, err
	}

	node := &ast.If{
		Pos:       p.makePos(ifTok),
		EndPos:    then.NodeEndPos(),
		Condition: condition,
		Then:      then,
	}

	if p.match(ELSE) {
		other, err := p.parseDefinition("definition after 'else'")
		if err != nil {
			return nil, err
		}
		node.Else = other
		node.EndPos = other.NodeEndPos()
	}

	return node, nil
}

func (p *Parser) parsePrimary() (ast.Definition, error) {
	switch p.peek().Type {
	case BLOCK_START:
		return p.parseBlock()

	case TUPLE_START:
		tuple, _, err := p.parseTuple()
		if err != nil {
			return nil, err
		}
		return tuple, nil

	case STRING:
		tok := p.advance()
		return &ast.StringLit{
			Pos:     p.makePos(tok),
			EndPos:  p.makeEndPos(tok),
			Content: tok.Lexeme[1 : len(tok.Lexeme)-1],
		}, nil

	case NUMBER:
		tok := p.advance()
		return &ast.NumberLit{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Text:   tok.Lexeme,
		}, nil

	case IDENTIFIER:
		tok := p.advance()
		return &ast.Variable{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Name:   tok.Lexeme,
		}, nil
	}

	return nil, p.errorAtCurrent("definition")
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	open := p.advance()
	block := &ast.Block{Pos: p.makePos(open)}

	for !p.check(BLOCK_END) {
		def, err := p.parseDefinition("definition or '}'")
		if err != nil {
			return nil, err
		}
		block.Body = append(block.Body, def)
	}

	block.EndPos = p.makeEndPos(p.advance())
	return block, nil
}

// parseTuple parses `( (definition separator?)* )`. A separator is a comma
// or nothing at all: whitespace between elements has already been dropped by
// the scanner. separated reports whether any comma was seen.
func (p *Parser) parseTuple() (tuple *ast.Tuple, separated bool, err error) {
	open := p.advance()
	tuple = &ast.Tuple{Pos: p.makePos(open)}

	for !p.check(TUPLE_END) {
		def, err := p.parseDefinition("definition or ')'")
		if err != nil {
			return nil, false, err
		}
		tuple.Elements = append(tuple.Elements, def)

		if p.match(TUPLE_SEPARATOR) {
			separated = true
		}
	}

	tuple.EndPos = p.makeEndPos(p.advance())
	return tuple, separated, nil
}

// parseChain folds `.link` repetitions onto base, left-associatively.
func (p *Parser) parseChain(base ast.Definition) (ast.Definition, error) {
	for p.match(CHAIN_DOT) {
		link, err := p.parseChainLink()
		if err != nil {
			return nil, err
		}
		base = &ast.Chain{
			Pos:    base.NodePos(),
			EndPos: link.NodeEndPos(),
			Base:   base,
			Link:   link,
		}
	}
	return base, nil
}

// parseChainLink accepts only Block, Tuple, String, Number or Variable. A
// single parenthesized element without a comma is a grouping, and the
// grouped element must itself be a valid link.
func (p *Parser) parseChainLink() (ast.Definition, error) {
	switch p.peek().Type {
	case TUPLE_START:
		tuple, separated, err := p.parseTuple()
		if err != nil {
			return nil, err
		}
		if len(tuple.Elements) == 1 && !separated && !ast.IsChainLink(tuple.Elements[0]) {
			return nil, p.errorAtNode(tuple.Elements[0], ExpectedChainLink)
		}
		return tuple, nil

	case BLOCK_START, STRING, NUMBER, IDENTIFIER:
		return p.parsePrimary()
	}

	return nil, p.errorAtCurrent(ExpectedChainLink)
}
