package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer outputs the AST in a human-readable indented form
type Printer struct {
	w      io.Writer
	indent int
}

// NewPrinter creates a new AST printer
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// PrintProgram prints a sequence of top-level nodes
func (p *Printer) PrintProgram(prog []*Node) {
	for _, node := range prog {
		p.printNode(node)
	}
}

func (p *Printer) line(format string, args ...interface{}) {
	fmt.Fprint(p.w, strings.Repeat("  ", p.indent))
	fmt.Fprintf(p.w, format, args...)
	fmt.Fprintln(p.w)
}

func (p *Printer) children(nodes ...*Node) {
	p.indent++
	for _, n := range nodes {
		if n != nil {
			p.printNode(n)
		}
	}
	p.indent--
}

func (p *Printer) printNode(node *Node) {
	switch node.Kind {
	case NNum:
		p.line("Num %d", node.Val)
	case NStr:
		p.line("Str %q", node.Str)
	case NIdent:
		p.line("Ident %s", node.Name)
	case NVardef:
		suffix := ""
		if node.Scope.Kind == Global && node.Scope.IsExtern {
			suffix = " extern"
		}
		p.line("Vardef %s %s%s", node.Name, TypeString(node.Ty), suffix)
		p.children(node.Init)
	case NLvar:
		p.line("Lvar")
	case NGvar:
		p.line("Gvar %s", node.Name)
	case NBinop:
		p.line("Binop %s", node.Op)
		p.children(node.Lhs, node.Rhs)
	case NIf:
		p.line("If")
		p.children(node.Cond, node.Then, node.Else)
	case NTernary:
		p.line("Ternary")
		p.children(node.Cond, node.Then, node.Else)
	case NFor:
		p.line("For")
		p.children(node.Init, node.Cond, node.Inc, node.Body)
	case NDoWhile:
		p.line("DoWhile")
		p.children(node.Body, node.Cond)
	case NDot:
		p.line("Dot %s", node.Name)
		p.children(node.Expr)
	case NAddr, NDeref, NNot, NNeg, NReturn, NSizeof, NAlignof, NExprStmt, NStmtExpr:
		p.line("%s", node.Kind)
		p.children(node.Expr)
	case NCall:
		p.line("Call %s", node.Name)
		p.children(node.Args...)
	case NFunc:
		p.line("Func %s", node.Name)
		p.children(node.Args...)
		p.children(node.Body)
	case NCompStmt, NVecStmt:
		p.line("%s", node.Kind)
		p.children(node.Stmts...)
	case NNull:
		p.line("Null")
	default:
		p.line("/* unknown node %d */", node.Kind)
	}
}

// TypeString renders a type in a compact C-like spelling.
func TypeString(ty *Type) string {
	if ty == nil {
		return "?"
	}
	switch ty.Kind {
	case TVoid, TChar, TInt:
		return ty.Kind.String()
	case TPtr:
		return TypeString(ty.Base) + "*"
	case TArray:
		return fmt.Sprintf("%s[%d]", TypeString(ty.Base), ty.Len)
	case TStruct:
		return "struct"
	}
	return "?"
}
