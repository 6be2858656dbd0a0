package ast

// IsInitable reports whether d may stand left of `:=` or `->`.
func IsInitable(d Definition) bool {
	switch d.(type) {
	case *Variable, *Tuple:
		return true
	}
	return false
}

// IsAssignable reports whether d may stand left of `=`.
func IsAssignable(d Definition) bool {
	switch d.(type) {
	case *Variable, *Tuple, *Block, *StringLit, *NumberLit:
		return true
	}
	return false
}

// IsChainLink reports whether d may stand right of a `.`.
func IsChainLink(d Definition) bool {
	switch d.(type) {
	case *Block, *Tuple, *StringLit, *NumberLit, *Variable:
		return true
	}
	return false
}

// Describe names the kind of n the way diagnostics and dumps spell it.
func Describe(n Node) string {
	switch n.(type) {
	case *File:
		return "file"
	case *Init:
		return "init"
	case *Assign:
		return "assign"
	case *If:
		return "if"
	case *Func:
		return "func"
	case *Block:
		return "block"
	case *Tuple:
		return "tuple"
	case *Chain:
		return "chain"
	case *StringLit:
		return "string"
	case *NumberLit:
		return "number"
	case *Variable:
		return "variable"
	}
	return "unknown"
}
