package ast

import "fmt"

// ToMap converts a node to a tagged map suitable for JSON or YAML encoding.
// Every node map has a "kind" field and a "pos" field.
func ToMap(n Node) map[string]interface{} {
	if n == nil {
		return nil
	}

	switch v := n.(type) {
	case *File:
		return m(v, "name", v.Name, "definitions", definitionMaps(v.Definitions))
	case *Init:
		return m(v, "target", ToMap(v.Target), "source", ToMap(v.Source))
	case *Assign:
		return m(v, "target", ToMap(v.Target), "source", ToMap(v.Source))
	case *If:
		out := m(v, "condition", ToMap(v.Condition), "then", ToMap(v.Then))
		if v.Else != nil {
			out["else"] = ToMap(v.Else)
		}
		return out
	case *Func:
		return m(v, "arg", ToMap(v.Arg), "body", ToMap(v.Body))
	case *Block:
		return m(v, "body", definitionMaps(v.Body))
	case *Tuple:
		return m(v, "elements", definitionMaps(v.Elements))
	case *Chain:
		return m(v, "base", ToMap(v.Base), "link", ToMap(v.Link))
	case *StringLit:
		return m(v, "content", v.Content)
	case *NumberLit:
		return m(v, "text", v.Text)
	case *Variable:
		return m(v, "name", v.Name)
	}
	return nil
}

func m(n Node, kv ...interface{}) map[string]interface{} {
	pos := n.NodePos()
	out := map[string]interface{}{
		"kind": Describe(n),
		"pos":  fmt.Sprintf("%d:%d", pos.Line, pos.Column),
	}
	for i := 0; i+1 < len(kv); i += 2 {
		out[kv[i].(string)] = kv[i+1]
	}
	return out
}

func definitionMaps(defs []Definition) []interface{} {
	out := make([]interface{}, len(defs))
	for i, d := range defs {
		out[i] = ToMap(d)
	}
	return out
}
