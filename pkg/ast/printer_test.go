package ast

import (
	"bytes"
	"testing"

	"github.com/nanocc/nanocc/pkg/token"
	"github.com/stretchr/testify/assert"
)

func TestPrintFunction(t *testing.T) {
	ret := NewUnary(NReturn, NewBinop(token.Plus, NewNum(1), NewNum(2)))
	body := New(NCompStmt)
	body.Stmts = []*Node{ret}
	fn := New(NFunc)
	fn.Name = "main"
	fn.Body = body

	var buf bytes.Buffer
	NewPrinter(&buf).PrintProgram([]*Node{fn})

	want := `Func main
  CompStmt
    Return
      Binop +
        Num 1
        Num 2
`
	assert.Equal(t, want, buf.String())
}

func TestPrintVardef(t *testing.T) {
	v := NewVardef("xs", nil, GlobalScope(12, false))
	v.Ty = ArrayOf(IntType(), 3)
	e := NewVardef("n", nil, GlobalScope(0, true))
	e.Ty = IntType()

	var buf bytes.Buffer
	NewPrinter(&buf).PrintProgram([]*Node{v, e})

	want := `Vardef xs int[3]
Vardef n int extern
`
	assert.Equal(t, want, buf.String())
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "int", TypeString(IntType()))
	assert.Equal(t, "char*", TypeString(PtrTo(CharType())))
	assert.Equal(t, "int*[4]", TypeString(ArrayOf(PtrTo(IntType()), 4)))
	assert.Equal(t, "struct", TypeString(StructOf(nil)))
	assert.Equal(t, "?", TypeString(nil))
}
