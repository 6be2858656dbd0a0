package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// The structs below describe the same language as internal/parser, written
// as a participle grammar. They are lowered to the ast by Lower.

type File struct {
	Definitions []*Definition `@@*`
}

type Definition struct {
	Pos     lexer.Position
	If      *If      `  @@`
	Postfix *Postfix `| @@`
}

type If struct {
	Pos       lexer.Position
	Condition *Definition `"if" @@`
	Then      *Definition `@@`
	Else      *Definition `( "else" @@ )?`
}

// Postfix is a primary with its `.` links and at most one trailing
// connective. Which targets a connective accepts is checked when lowering.
type Postfix struct {
	Pos     lexer.Position
	Primary *Primary    `@@`
	Links   []*Primary  `( "." @@ )*`
	Init    *Definition `( ":=" @@`
	Assign  *Definition `| "=" @@`
	Func    *Definition `| "->" @@ )?`
}

type Primary struct {
	Pos    lexer.Position
	Block  *Block  `  @@`
	Tuple  *Tuple  `| @@`
	Str    *string `| @String`
	Number *string `| @Number`
	Ident  *string `| @Ident`
}

type Block struct {
	Pos    lexer.Position
	Tokens []lexer.Token
	Body   []*Definition `"{" @@* "}"`
}

type Tuple struct {
	Pos      lexer.Position
	Tokens   []lexer.Token
	Elements []*TupleElement `"(" @@* ")"`
}

type TupleElement struct {
	Definition *Definition `@@`
	Comma      bool        `@","?`
}
