package parser

var KEYWORDS = map[string]TokenType{
	"if":   IF,
	"else": ELSE,
}
