// Package parser implements a recursive descent parser that turns a
// finished token stream into an abstract syntax tree.
//
// The parser knows only the grammar of the C subset and does not check
// its semantics: expressions such as `1+2=3` are accepted here and
// rejected, if at all, by a later pass. Syntactic errors are fatal;
// the first malformed construct aborts the whole parse.
package parser

import (
	"github.com/nanocc/nanocc/pkg/ast"
	"github.com/nanocc/nanocc/pkg/token"
)

type parser struct {
	toks []token.Token
	pos  int
	env  *env
}

// Parse consumes the token slice and returns the ordered sequence of
// top-level nodes (function definitions and global variables).
func Parse(toks []token.Token) (prog []*ast.Node, err error) {
	p := &parser{toks: toks, env: newEnv(nil)}
	defer func() {
		if e := recover(); e != nil {
			pb, ok := e.(parseBreakout)
			if !ok {
				panic(e)
			}
			prog = nil
			err = pb.err
		}
	}()
	for !p.atEOF() {
		prog = append(prog, p.toplevel())
	}
	return prog, nil
}

func (p *parser) peek() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Type: token.EOF}
	}
	return p.toks[p.pos]
}

func (p *parser) next() token.Token {
	t := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *parser) atEOF() bool {
	return p.peek().Type == token.EOF
}

func (p *parser) consume(ty token.Type) bool {
	if p.peek().Type != ty {
		return false
	}
	p.next()
	return true
}

func (p *parser) expect(ty token.Type) {
	if t := p.peek(); t.Type != ty {
		p.bad(t, "%s expected", ty)
	}
	p.next()
}

func (p *parser) ident() string {
	t := p.peek()
	if t.Type != token.Ident {
		p.bad(t, "variable name expected")
	}
	p.next()
	return t.Literal
}

// isTypename reports whether t starts a type: a built-in type keyword,
// struct, or an identifier currently bound as a typedef. The scope
// environment must be consulted here because C's grammar is context
// sensitive; a bare identifier reads as a declaration or an expression
// depending on prior typedefs.
func (p *parser) isTypename(t token.Token) bool {
	if t.Type == token.Ident {
		_, ok := p.env.lookupTypedef(t.Literal)
		return ok
	}
	return t.Type == token.Int || t.Type == token.Char ||
		t.Type == token.Void || t.Type == token.Struct
}

func (p *parser) primary() *ast.Node {
	t := p.next()
	switch t.Type {
	case token.Num:
		return ast.NewNum(t.Val)
	case token.Str:
		node := ast.New(ast.NStr)
		node.Str = t.Str
		node.Len = t.Len
		node.Ty = ast.ArrayOf(ast.CharType(), len(t.Str))
		return node
	case token.Ident:
		if !p.consume(token.LParen) {
			return ast.NewIdent(t.Literal)
		}
		node := ast.New(ast.NCall)
		node.Name = t.Literal
		if p.consume(token.RParen) {
			return node
		}
		node.Args = append(node.Args, p.assign())
		for p.consume(token.Comma) {
			node.Args = append(node.Args, p.assign())
		}
		p.expect(token.RParen)
		return node
	case token.LParen:
		// ({ ... }) is a GNU statement expression.
		if p.consume(token.LBrace) {
			node := ast.NewUnary(ast.NStmtExpr, p.compoundStmt())
			p.expect(token.RParen)
			return node
		}
		node := p.expr()
		p.expect(token.RParen)
		return node
	default:
		p.bad(t, "number expected")
		return nil
	}
}

func (p *parser) postfix() *ast.Node {
	lhs := p.primary()
	for {
		switch {
		case p.consume(token.Dot):
			node := ast.New(ast.NDot)
			node.Expr = lhs
			node.Name = p.ident()
			lhs = node
		case p.consume(token.Arrow):
			// a->b is sugar for (*a).b
			node := ast.New(ast.NDot)
			node.Expr = ast.NewUnary(ast.NDeref, lhs)
			node.Name = p.ident()
			lhs = node
		case p.consume(token.LBracket):
			// a[i] is sugar for *(a + i)
			lhs = ast.NewUnary(ast.NDeref, ast.NewBinop(token.Plus, lhs, p.assign()))
			p.expect(token.RBracket)
		default:
			return lhs
		}
	}
}

func (p *parser) unary() *ast.Node {
	switch {
	case p.consume(token.Minus):
		return ast.NewUnary(ast.NNeg, p.unary())
	case p.consume(token.Star):
		return ast.NewUnary(ast.NDeref, p.unary())
	case p.consume(token.Amp):
		return ast.NewUnary(ast.NAddr, p.unary())
	case p.consume(token.Not):
		return ast.NewUnary(ast.NNot, p.unary())
	case p.consume(token.Sizeof):
		return ast.NewUnary(ast.NSizeof, p.unary())
	case p.consume(token.Alignof):
		return ast.NewUnary(ast.NAlignof, p.unary())
	}
	return p.postfix()
}

func (p *parser) mul() *ast.Node {
	lhs := p.unary()
	for {
		switch {
		case p.consume(token.Star):
			lhs = ast.NewBinop(token.Star, lhs, p.unary())
		case p.consume(token.Slash):
			lhs = ast.NewBinop(token.Slash, lhs, p.unary())
		case p.consume(token.Percent):
			lhs = ast.NewBinop(token.Percent, lhs, p.unary())
		default:
			return lhs
		}
	}
}

func (p *parser) add() *ast.Node {
	lhs := p.mul()
	for {
		switch {
		case p.consume(token.Plus):
			lhs = ast.NewBinop(token.Plus, lhs, p.mul())
		case p.consume(token.Minus):
			lhs = ast.NewBinop(token.Minus, lhs, p.mul())
		default:
			return lhs
		}
	}
}

func (p *parser) shift() *ast.Node {
	lhs := p.add()
	for {
		switch {
		case p.consume(token.Shl):
			lhs = ast.NewBinop(token.Shl, lhs, p.add())
		case p.consume(token.Shr):
			lhs = ast.NewBinop(token.Shr, lhs, p.add())
		default:
			return lhs
		}
	}
}

func (p *parser) relational() *ast.Node {
	lhs := p.shift()
	for {
		switch {
		case p.consume(token.Lt):
			lhs = ast.NewBinop(token.Lt, lhs, p.shift())
		case p.consume(token.Gt):
			// a > b is stored as b < a, halving the comparison set the
			// rest of the compiler has to handle.
			lhs = ast.NewBinop(token.Lt, p.shift(), lhs)
		case p.consume(token.Le):
			lhs = ast.NewBinop(token.Le, lhs, p.shift())
		case p.consume(token.Ge):
			lhs = ast.NewBinop(token.Le, p.shift(), lhs)
		default:
			return lhs
		}
	}
}

func (p *parser) equality() *ast.Node {
	lhs := p.relational()
	for {
		switch {
		case p.consume(token.Eq):
			lhs = ast.NewBinop(token.Eq, lhs, p.relational())
		case p.consume(token.Ne):
			lhs = ast.NewBinop(token.Ne, lhs, p.relational())
		default:
			return lhs
		}
	}
}

func (p *parser) bitAnd() *ast.Node {
	lhs := p.equality()
	for p.consume(token.Amp) {
		lhs = ast.NewBinop(token.Amp, lhs, p.equality())
	}
	return lhs
}

func (p *parser) bitXor() *ast.Node {
	lhs := p.bitAnd()
	for p.consume(token.Caret) {
		lhs = ast.NewBinop(token.Caret, lhs, p.bitAnd())
	}
	return lhs
}

func (p *parser) bitOr() *ast.Node {
	lhs := p.bitXor()
	for p.consume(token.Pipe) {
		lhs = ast.NewBinop(token.Pipe, lhs, p.bitXor())
	}
	return lhs
}

func (p *parser) logAnd() *ast.Node {
	lhs := p.bitOr()
	for p.consume(token.LogAnd) {
		lhs = ast.NewBinop(token.LogAnd, lhs, p.bitOr())
	}
	return lhs
}

func (p *parser) logOr() *ast.Node {
	lhs := p.logAnd()
	for p.consume(token.LogOr) {
		lhs = ast.NewBinop(token.LogOr, lhs, p.logAnd())
	}
	return lhs
}

func (p *parser) conditional() *ast.Node {
	cond := p.logOr()
	if !p.consume(token.Question) {
		return cond
	}
	node := ast.New(ast.NTernary)
	node.Cond = cond
	node.Then = p.expr()
	p.expect(token.Colon)
	node.Else = p.conditional()
	return node
}

func (p *parser) assign() *ast.Node {
	lhs := p.conditional()
	if !p.consume(token.Assign) {
		return lhs
	}
	return ast.NewBinop(token.Assign, lhs, p.assign())
}

func (p *parser) expr() *ast.Node {
	lhs := p.assign()
	for p.consume(token.Comma) {
		lhs = ast.NewBinop(token.Comma, lhs, p.assign())
	}
	return lhs
}

// readType reads a base type if the next token starts one, or returns
// nil without moving the cursor.
func (p *parser) readType() *ast.Type {
	t := p.peek()
	switch t.Type {
	case token.Ident:
		if ty, ok := p.env.lookupTypedef(t.Literal); ok {
			p.next()
			return ty
		}
		return nil
	case token.Int:
		p.next()
		return ast.IntType()
	case token.Char:
		p.next()
		return ast.CharType()
	case token.Void:
		p.next()
		return ast.VoidType()
	case token.Struct:
		p.next()
		return p.structType()
	default:
		return nil
	}
}

// structType parses what follows the struct keyword: an optional tag
// and an optional brace-delimited member list. A tag with a member
// list registers the tag in the current frame, shadowing any outer
// definition; a tag alone reuses a previously registered member list,
// which allows forward references before the full definition is seen.
func (p *parser) structType() *ast.Type {
	var tag string
	if p.peek().Type == token.Ident {
		tag = p.next().Literal
	}

	var members []*ast.Node
	hasBody := false
	if p.consume(token.LBrace) {
		hasBody = true
		for !p.consume(token.RBrace) {
			members = append(members, p.decl())
		}
	}

	if tag == "" {
		if !hasBody {
			p.fail("bad struct definition")
		}
	} else if hasBody {
		p.env.defineTag(tag, members)
	} else if found, ok := p.env.lookupTag(tag); ok {
		members = found
		if len(members) == 0 {
			p.fail("incomplete type: %s", tag)
		}
	}
	return ast.StructOf(members)
}

// ctype reads the first half of a declaration's type: the base type
// followed by any pointer stars.
func (p *parser) ctype() *ast.Type {
	t := p.peek()
	ty := p.readType()
	if ty == nil {
		p.bad(t, "typename expected")
	}
	for p.consume(token.Star) {
		ty = ast.PtrTo(ty)
	}
	return ty
}

// readArray reads the second half of a declaration's type, the array
// brackets after the name. Each length must fold to an integer
// literal.
func (p *parser) readArray(ty *ast.Type) *ast.Type {
	var lens []int
	for p.consume(token.LBracket) {
		t := p.peek()
		length := p.expr()
		if length.Kind != ast.NNum {
			p.bad(t, "number expected")
		}
		p.expect(token.RBracket)
		lens = append(lens, length.Val)
	}
	for _, n := range lens {
		ty = ast.ArrayOf(ty, n)
	}
	return ty
}

// decl parses one declaration: base type and pointer stars, the name,
// array brackets, an optional initializer and the closing semicolon.
func (p *parser) decl() *ast.Node {
	ty := p.ctype()
	name := p.ident()
	ty = p.readArray(ty)
	if ty.Kind == ast.TVoid {
		p.fail("void variable: %s", name)
	}

	var init *ast.Node
	if p.consume(token.Assign) {
		// An array initializer desugars into a synthetic statement
		// vector: the bare declaration followed by one element
		// assignment per value.
		if p.consume(token.LBrace) {
			storage := ast.NewVardef(name, nil, ast.LocalScope())
			storage.Ty = ty
			node := ast.New(ast.NVecStmt)
			node.Stmts = append([]*ast.Node{storage}, p.arrayInit(name)...)
			p.expect(token.Semicolon)
			return node
		}
		init = p.assign()
	}
	p.expect(token.Semicolon)
	node := ast.NewVardef(name, init, ast.LocalScope())
	node.Ty = ty
	return node
}

// arrayInit parses the comma-separated values of a brace initializer,
// consuming the closing brace, and returns one *(name + i) = value
// expression statement per value.
func (p *parser) arrayInit(name string) []*ast.Node {
	var stmts []*ast.Node
	for i := 0; ; i++ {
		val := p.primary()
		slot := ast.NewUnary(ast.NDeref,
			ast.NewBinop(token.Plus, ast.NewIdent(name), ast.NewNum(i)))
		stmts = append(stmts, ast.NewUnary(ast.NExprStmt,
			ast.NewBinop(token.Assign, slot, val)))
		if !p.consume(token.Comma) {
			break
		}
	}
	p.expect(token.RBrace)
	return stmts
}

// param parses one function parameter: a declaration with no
// initializer and no trailing semicolon.
func (p *parser) param() *ast.Node {
	ty := p.ctype()
	node := ast.NewVardef(p.ident(), nil, ast.LocalScope())
	node.Ty = ty
	return node
}

func (p *parser) exprStmt() *ast.Node {
	node := ast.NewUnary(ast.NExprStmt, p.expr())
	p.expect(token.Semicolon)
	return node
}

// typedefDecl registers the declaration that follows the typedef
// keyword in the current frame. Typedefs generate no runtime code, so
// the resulting statement is a null node.
func (p *parser) typedefDecl() *ast.Node {
	node := p.decl()
	if node.Kind != ast.NVardef {
		panic("parser: typedef did not parse as a variable definition")
	}
	p.env.defineTypedef(node.Name, node.Ty)
	return ast.New(ast.NNull)
}

func (p *parser) stmt() *ast.Node {
	switch p.peek().Type {
	case token.Typedef:
		p.next()
		return p.typedefDecl()
	case token.Int, token.Char, token.Void, token.Struct:
		return p.decl()
	case token.If:
		p.next()
		node := ast.New(ast.NIf)
		p.expect(token.LParen)
		node.Cond = p.expr()
		p.expect(token.RParen)
		node.Then = p.stmt()
		if p.consume(token.Else) {
			node.Else = p.stmt()
		}
		return node
	case token.For:
		p.next()
		node := ast.New(ast.NFor)
		p.expect(token.LParen)
		if p.consume(token.Semicolon) {
			node.Init = ast.New(ast.NNull)
		} else if p.isTypename(p.peek()) {
			node.Init = p.decl()
		} else {
			node.Init = p.exprStmt()
		}
		if p.consume(token.Semicolon) {
			node.Cond = ast.New(ast.NNull)
		} else {
			node.Cond = p.expr()
			p.expect(token.Semicolon)
		}
		if p.peek().Type == token.RParen {
			node.Inc = ast.New(ast.NNull)
		} else {
			node.Inc = ast.NewUnary(ast.NExprStmt, p.expr())
		}
		p.expect(token.RParen)
		node.Body = p.stmt()
		return node
	case token.While:
		// while (cond) body is the same node as for (;cond;) body.
		p.next()
		node := ast.New(ast.NFor)
		node.Init = ast.New(ast.NNull)
		node.Inc = ast.New(ast.NNull)
		p.expect(token.LParen)
		node.Cond = p.expr()
		p.expect(token.RParen)
		node.Body = p.stmt()
		return node
	case token.Do:
		p.next()
		node := ast.New(ast.NDoWhile)
		node.Body = p.stmt()
		p.expect(token.While)
		p.expect(token.LParen)
		node.Cond = p.expr()
		p.expect(token.RParen)
		p.expect(token.Semicolon)
		return node
	case token.Return:
		p.next()
		node := ast.NewUnary(ast.NReturn, p.expr())
		p.expect(token.Semicolon)
		return node
	case token.LBrace:
		p.next()
		return p.compoundStmt()
	case token.Semicolon:
		p.next()
		return ast.New(ast.NNull)
	default:
		if p.isTypename(p.peek()) {
			return p.decl()
		}
		return p.exprStmt()
	}
}

// compoundStmt parses statements up to the closing brace inside a
// fresh scope frame. The opening brace is already consumed.
func (p *parser) compoundStmt() *ast.Node {
	node := ast.New(ast.NCompStmt)
	p.env = newEnv(p.env)
	for !p.consume(token.RBrace) {
		node.Stmts = append(node.Stmts, p.stmt())
	}
	p.env = p.env.parent
	return node
}

// toplevel parses one top-level item: a typedef, a function
// definition, or a global variable declaration.
func (p *parser) toplevel() *ast.Node {
	if p.consume(token.Typedef) {
		return p.typedefDecl()
	}
	isExtern := p.consume(token.Extern)
	ty := p.ctype()

	t := p.peek()
	if t.Type != token.Ident {
		p.bad(t, "function or variable name expected")
	}
	name := t.Literal
	p.next()

	// Function definition
	if p.consume(token.LParen) {
		node := ast.New(ast.NFunc)
		node.Name = name
		if !p.consume(token.RParen) {
			node.Args = append(node.Args, p.param())
			for p.consume(token.Comma) {
				node.Args = append(node.Args, p.param())
			}
			p.expect(token.RParen)
		}
		p.expect(token.LBrace)
		node.Body = p.compoundStmt()
		return node
	}

	// Global variable. Extern globals carry no size; it stays
	// unresolved even when the type could supply one.
	ty = p.readArray(ty)
	var node *ast.Node
	if isExtern {
		node = ast.NewVardef(name, nil, ast.GlobalScope(0, true))
	} else {
		node = ast.NewVardef(name, nil, ast.GlobalScope(ty.Size, false))
	}
	node.Ty = ty
	p.expect(token.Semicolon)
	return node
}
