package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mers/internal/ast"
)

const sampleProgram = `greeting := "hello"
add := (a, b) -> (a, b).sum

counter := 0
{
  counter = (counter, 1).add
  if (counter, 3).eq
    "three".println
  else
    counter.println
}

(x, y) := (1, 2.5)
total := (x y).add
max := (a b) -> if (a, b).gt a else b
`

func TestFullProgramIntegration(t *testing.T) {
	file, err := ParseSource("sample.mers", sampleProgram)
	require.NoError(t, err)
	require.Len(t, file.Definitions, 7)

	kinds := make([]string, len(file.Definitions))
	for i, d := range file.Definitions {
		kinds[i] = ast.Describe(d)
	}
	assert.Equal(t, []string{"init", "init", "init", "block", "init", "init", "init"}, kinds)

	block := file.Definitions[3].(*ast.Block)
	require.Len(t, block.Body, 2)
	assert.Equal(t,
		`(assign (variable counter) (chain (tuple (variable counter) (number 1)) (variable add)))`,
		ast.Dump(block.Body[0]))

	branch := block.Body[1].(*ast.If)
	assert.Equal(t, 7, branch.Pos.Line)
	require.NotNil(t, branch.Else)
	assert.Equal(t, "counter.println", branch.Else.String())

	max := file.Definitions[6].(*ast.Init)
	fn, ok := max.Source.(*ast.Func)
	require.True(t, ok)
	assert.Equal(t, "if", ast.Describe(fn.Body))
	assert.Equal(t, 15, fn.Pos.Line)
	assert.Equal(t, 8, fn.Pos.Column)
}

func TestFullProgramPrintsCanonically(t *testing.T) {
	file, err := ParseSource("sample.mers", sampleProgram)
	require.NoError(t, err)

	printed := file.String()
	lines := strings.Split(strings.TrimSuffix(printed, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, `greeting := "hello"`, lines[0])
	assert.Equal(t, `add := (a, b) -> (a, b).sum`, lines[1])
	assert.Equal(t, `{ counter = (counter, 1).add if (counter, 3).eq "three".println else counter.println }`, lines[3])
	assert.Equal(t, `(x, y) := (1, 2.5)`, lines[4])
	assert.Equal(t, `total := (x, y).add`, lines[5])

	again, err := ParseSource("sample.mers", printed)
	require.NoError(t, err)
	assert.Equal(t, ast.Dump(file), ast.Dump(again))
}

func TestParseFileFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.mers")
	require.NoError(t, os.WriteFile(path, []byte("x := 1\nx.print\n"), 0o644))

	file, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, file.Name)
	assert.Len(t, file.Definitions, 2)
	assert.Equal(t, path, file.Definitions[1].NodePos().Filename)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.mers"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
	assert.True(t, os.IsNotExist(errors.Unwrap(err)))
}
