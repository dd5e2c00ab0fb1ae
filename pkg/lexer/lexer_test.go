package lexer

import (
	"testing"

	"github.com/nanocc/nanocc/pkg/token"
)

func TestNextTokenOperators(t *testing.T) {
	input := `+ - * / % = == != < > <= >= << >> & && | || ^ ! ? : . -> [ ] ( ) { } ; ,`

	expected := []token.Type{
		token.Plus, token.Minus, token.Star, token.Slash, token.Percent,
		token.Assign, token.Eq, token.Ne, token.Lt, token.Gt, token.Le,
		token.Ge, token.Shl, token.Shr, token.Amp, token.LogAnd,
		token.Pipe, token.LogOr, token.Caret, token.Not, token.Question,
		token.Colon, token.Dot, token.Arrow, token.LBracket,
		token.RBracket, token.LParen, token.RParen, token.LBrace,
		token.RBrace, token.Semicolon, token.Comma, token.EOF,
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("token %d: got %s, want %s", i, tok.Type, want)
		}
	}
}

func TestNextTokenKeywordsAndIdents(t *testing.T) {
	input := `int char void struct typedef if else for while do return sizeof _Alignof extern foo bar_2`

	expected := []struct {
		ty      token.Type
		literal string
	}{
		{token.Int, "int"},
		{token.Char, "char"},
		{token.Void, "void"},
		{token.Struct, "struct"},
		{token.Typedef, "typedef"},
		{token.If, "if"},
		{token.Else, "else"},
		{token.For, "for"},
		{token.While, "while"},
		{token.Do, "do"},
		{token.Return, "return"},
		{token.Sizeof, "sizeof"},
		{token.Alignof, "_Alignof"},
		{token.Extern, "extern"},
		{token.Ident, "foo"},
		{token.Ident, "bar_2"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want.ty || tok.Literal != want.literal {
			t.Fatalf("token %d: got (%s, %q), want (%s, %q)",
				i, tok.Type, tok.Literal, want.ty, want.literal)
		}
	}
}

func TestNextTokenNumbers(t *testing.T) {
	l := New("0 42 1234")
	for _, want := range []int{0, 42, 1234} {
		tok := l.NextToken()
		if tok.Type != token.Num || tok.Val != want {
			t.Fatalf("got (%s, %d), want (NUM, %d)", tok.Type, tok.Val, want)
		}
	}
}

func TestNextTokenString(t *testing.T) {
	l := New(`"hello"`)
	tok := l.NextToken()
	if tok.Type != token.Str {
		t.Fatalf("got %s, want STR", tok.Type)
	}
	if tok.Str != "hello" {
		t.Errorf("Str = %q, want %q", tok.Str, "hello")
	}
	if tok.Len != 6 {
		t.Errorf("Len = %d, want 6", tok.Len)
	}
}

func TestNextTokenStringEscapes(t *testing.T) {
	l := New(`"a\nb\t\"c\""`)
	tok := l.NextToken()
	if tok.Str != "a\nb\t\"c\"" {
		t.Errorf("Str = %q", tok.Str)
	}
	if tok.Len != len(tok.Str)+1 {
		t.Errorf("Len = %d, want %d", tok.Len, len(tok.Str)+1)
	}
}

func TestComments(t *testing.T) {
	input := `
// line comment
int /* inline */ x; /* multi
line */ 42`

	expected := []token.Type{token.Int, token.Ident, token.Semicolon, token.Num, token.EOF}
	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("token %d: got %s, want %s", i, tok.Type, want)
		}
	}
}

func TestLineTracking(t *testing.T) {
	l := New("a\nb")
	first := l.NextToken()
	second := l.NextToken()
	if first.Line != 1 {
		t.Errorf("first token line = %d, want 1", first.Line)
	}
	if second.Line != 2 {
		t.Errorf("second token line = %d, want 2", second.Line)
	}
}

func TestTokenizeAppendsEOF(t *testing.T) {
	toks := Tokenize("int x;")
	if len(toks) != 4 {
		t.Fatalf("got %d tokens, want 4", len(toks))
	}
	if toks[len(toks)-1].Type != token.EOF {
		t.Errorf("last token = %s, want EOF", toks[len(toks)-1].Type)
	}
}

func TestIllegalCharacter(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	if tok.Type != token.Illegal {
		t.Errorf("got %s, want ILLEGAL", tok.Type)
	}
}
