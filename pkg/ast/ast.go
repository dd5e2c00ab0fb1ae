// Package ast defines the abstract syntax tree and the static type
// model produced by the parser.
//
// Every node carries a type slot that defaults to an empty placeholder
// and is filled in where the grammar determines it (literals,
// declarations); the remaining slots, along with struct member byte
// offsets, local stack offsets and function stack sizes, are the
// contract of later passes and stay zero here.
package ast

import "github.com/nanocc/nanocc/pkg/token"

// NodeKind identifies the syntactic construct a Node represents
type NodeKind int

const (
	NNum      NodeKind = iota // integer literal
	NStr                      // string literal
	NIdent                    // bare identifier reference
	NVardef                   // variable definition
	NLvar                     // local variable reference
	NGvar                     // global variable reference
	NBinop                    // binary operation, tagged by token type
	NIf                       // "if" ( cond ) then "else" els
	NTernary                  // cond ? then : els
	NFor                      // "for" ( init; cond; inc ) body
	NDoWhile                  // do body while ( cond )
	NAddr                     // address-of ("&")
	NDeref                    // pointer dereference ("*")
	NDot                      // struct member access
	NNot                      // logical not ("!")
	NNeg                      // unary minus
	NReturn                   // "return"
	NSizeof                   // "sizeof"
	NAlignof                  // "_Alignof"
	NCall                     // function call
	NFunc                     // function definition
	NCompStmt                 // compound statement
	NVecStmt                  // synthetic statement vector (array init)
	NExprStmt                 // expression statement
	NStmtExpr                 // statement expression (GNU extension)
	NNull                     // empty statement
)

var kindNames = map[NodeKind]string{
	NNum:      "Num",
	NStr:      "Str",
	NIdent:    "Ident",
	NVardef:   "Vardef",
	NLvar:     "Lvar",
	NGvar:     "Gvar",
	NBinop:    "Binop",
	NIf:       "If",
	NTernary:  "Ternary",
	NFor:      "For",
	NDoWhile:  "DoWhile",
	NAddr:     "Addr",
	NDeref:    "Deref",
	NDot:      "Dot",
	NNot:      "Not",
	NNeg:      "Neg",
	NReturn:   "Return",
	NSizeof:   "Sizeof",
	NAlignof:  "Alignof",
	NCall:     "Call",
	NFunc:     "Func",
	NCompStmt: "CompStmt",
	NVecStmt:  "VecStmt",
	NExprStmt: "ExprStmt",
	NStmtExpr: "StmtExpr",
	NNull:     "Null",
}

func (k NodeKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// ScopeKind distinguishes local and global variable storage
type ScopeKind int

const (
	Local ScopeKind = iota
	Global
)

// Scope is the storage tag attached to variable definitions and
// references. For locals the offset is a placeholder resolved by a
// later pass; for globals the label is assigned later too.
type Scope struct {
	Kind     ScopeKind
	Offset   int    // Local: stack offset (0 until resolved)
	Label    string // Global: data label (empty until resolved)
	Size     int    // Global: byte length of the storage
	IsExtern bool   // Global: declared extern
}

// LocalScope returns the placeholder storage tag for a local variable.
func LocalScope() Scope {
	return Scope{Kind: Local}
}

// GlobalScope returns the storage tag for a global variable.
func GlobalScope(size int, isExtern bool) Scope {
	return Scope{Kind: Global, Size: size, IsExtern: isExtern}
}

// Node is one AST node. Which fields are meaningful depends on Kind;
// the zero value of every other field is simply unused.
type Node struct {
	Kind NodeKind
	Ty   *Type

	Val int    // NNum: literal value
	Str string // NStr: decoded bytes
	Len int    // NStr: byte length including the trailing NUL

	Name string // NIdent, NVardef, NCall, NFunc, NDot (member name), NGvar

	Op       token.Type // NBinop: operator
	Lhs, Rhs *Node      // NBinop

	// Expr is the single operand of NAddr, NDeref, NNot, NNeg, NReturn,
	// NSizeof, NAlignof, NExprStmt and NStmtExpr, and the accessed
	// value of NDot.
	Expr *Node

	Cond, Then, Else *Node // NIf, NTernary
	Init             *Node // NFor; NVardef initializer (nil if none)
	Inc, Body        *Node // NFor; Body also NDoWhile, NFunc

	Offset int // NDot: member byte offset, filled by a later pass

	Scope Scope // NVardef, NLvar, NGvar

	Args []*Node // NCall arguments, NFunc parameters

	Stmts []*Node // NCompStmt, NVecStmt

	StackSize int // NFunc: frame size, filled by a later pass
}

// New returns a node of the given kind with a placeholder type.
func New(kind NodeKind) *Node {
	return &Node{Kind: kind, Ty: &Type{}}
}

// NewNum returns an int-typed integer literal node.
func NewNum(val int) *Node {
	node := New(NNum)
	node.Val = val
	node.Ty = IntType()
	return node
}

// NewBinop returns a binary operation node tagged with op.
func NewBinop(op token.Type, lhs, rhs *Node) *Node {
	node := New(NBinop)
	node.Op = op
	node.Lhs = lhs
	node.Rhs = rhs
	return node
}

// NewUnary returns a single-operand node of the given kind.
func NewUnary(kind NodeKind, expr *Node) *Node {
	node := New(kind)
	node.Expr = expr
	return node
}

// NewIdent returns a bare identifier reference; whether it names a
// local or a global is resolved by a later pass.
func NewIdent(name string) *Node {
	node := New(NIdent)
	node.Name = name
	return node
}

// NewVardef returns a variable definition node.
func NewVardef(name string, init *Node, scope Scope) *Node {
	node := New(NVardef)
	node.Name = name
	node.Init = init
	node.Scope = scope
	return node
}
