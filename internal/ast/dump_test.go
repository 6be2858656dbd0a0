package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDump(t *testing.T) {
	file, _, _, _ := sampleTree()
	assert.Equal(t, "(file (init (variable x) (tuple (variable a) (variable b))))", Dump(file))

	branch := &If{Condition: v("c"), Then: &StringLit{Content: "yes"}, Else: &Block{}}
	assert.Equal(t, `(if (variable c) (string "yes") (block))`, Dump(branch))

	fn := &Func{Arg: v("x"), Body: &Chain{Base: v("x"), Link: num("2")}}
	assert.Equal(t, "(func (variable x) (chain (variable x) (number 2)))", Dump(fn))
}

func TestToMap(t *testing.T) {
	file, _, _, _ := sampleTree()
	file.Name = "sample.mers"

	out := ToMap(file)
	assert.Equal(t, "file", out["kind"])
	assert.Equal(t, "sample.mers", out["name"])
	assert.Equal(t, "1:1", out["pos"])

	defs := out["definitions"].([]interface{})
	init := defs[0].(map[string]interface{})
	assert.Equal(t, "init", init["kind"])
	assert.Equal(t, map[string]interface{}{"kind": "variable", "pos": "1:1", "name": "x"}, init["target"])

	source := init["source"].(map[string]interface{})
	assert.Equal(t, "1:6", source["pos"])
	assert.Len(t, source["elements"], 2)
}

func TestToMapIfElse(t *testing.T) {
	out := ToMap(&If{Condition: v("c"), Then: v("t")})
	_, hasElse := out["else"]
	assert.False(t, hasElse)

	out = ToMap(&If{Condition: v("c"), Then: v("t"), Else: v("e")})
	assert.Equal(t, "e", out["else"].(map[string]interface{})["name"])

	assert.Nil(t, ToMap(nil))
}
