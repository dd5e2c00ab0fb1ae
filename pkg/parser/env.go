package parser

import "github.com/nanocc/nanocc/pkg/ast"

// env is one frame of the lexical scope chain, tracking struct tags
// and typedef names. Definitions go into the innermost frame; lookups
// walk outward. A frame is pushed when a compound block is entered and
// discarded when its closing brace is consumed, so the chain behaves
// as a stack for the duration of one parse.
type env struct {
	parent   *env
	tags     map[string][]*ast.Node
	typedefs map[string]*ast.Type
}

func newEnv(parent *env) *env {
	return &env{
		parent:   parent,
		tags:     make(map[string][]*ast.Node),
		typedefs: make(map[string]*ast.Type),
	}
}

func (e *env) defineTag(name string, members []*ast.Node) {
	e.tags[name] = members
}

func (e *env) defineTypedef(name string, ty *ast.Type) {
	e.typedefs[name] = ty
}

func (e *env) lookupTag(name string) ([]*ast.Node, bool) {
	for s := e; s != nil; s = s.parent {
		if members, ok := s.tags[name]; ok {
			return members, true
		}
	}
	return nil, false
}

func (e *env) lookupTypedef(name string) (*ast.Type, bool) {
	for s := e; s != nil; s = s.parent {
		if ty, ok := s.typedefs[name]; ok {
			return ty, true
		}
	}
	return nil, false
}
