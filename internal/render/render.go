package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"mers/internal/ast"
)

// Write renders file to w in one of the formats named by config.Formats.
func Write(w io.Writer, format string, file *ast.File) error {
	switch format {
	case "tree":
		for _, d := range file.Definitions {
			writeTree(w, d, 0)
		}
		return nil

	case "sexpr":
		for _, d := range file.Definitions {
			if _, err := fmt.Fprintln(w, ast.Dump(d)); err != nil {
				return err
			}
		}
		return nil

	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ast.ToMap(file))

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ast.ToMap(file)); err != nil {
			return err
		}
		return enc.Close()
	}

	return fmt.Errorf("unknown output format %q", format)
}

func indent(level int) string {
	return strings.Repeat("  ", level)
}

// writeTree prints one node per line, children indented below their parent.
func writeTree(w io.Writer, n ast.Node, level int) {
	fmt.Fprintf(w, "%s%s %s\n", indent(level), label(n), n.NodePos())
	for _, c := range ast.Children(n) {
		writeTree(w, c, level+1)
	}
}

func label(n ast.Node) string {
	switch v := n.(type) {
	case *ast.Variable:
		return "variable " + v.Name
	case *ast.NumberLit:
		return "number " + v.Text
	case *ast.StringLit:
		return `string "` + v.Content + `"`
	case *ast.If:
		if v.Else == nil {
			return "if"
		}
		return "if/else"
	}
	return ast.Describe(n)
}
