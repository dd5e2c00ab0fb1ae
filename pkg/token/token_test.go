package token

import "testing"

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		ident string
		want  Type
	}{
		{"int", Int},
		{"char", Char},
		{"void", Void},
		{"struct", Struct},
		{"typedef", Typedef},
		{"sizeof", Sizeof},
		{"_Alignof", Alignof},
		{"extern", Extern},
		{"do", Do},
		{"main", Ident},
		{"intx", Ident},
		{"Struct", Ident},
	}
	for _, tt := range tests {
		if got := LookupIdent(tt.ident); got != tt.want {
			t.Errorf("LookupIdent(%q) = %s, want %s", tt.ident, got, tt.want)
		}
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		ty   Type
		want string
	}{
		{EOF, "EOF"},
		{Num, "NUM"},
		{Arrow, "->"},
		{Le, "<="},
		{LogAnd, "&&"},
		{Type(9999), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.ty.String(); got != tt.want {
			t.Errorf("Type(%d).String() = %q, want %q", int(tt.ty), got, tt.want)
		}
	}
}

func TestDescribe(t *testing.T) {
	tok := Token{Type: Ident, Literal: "foo", Line: 3, Column: 7}
	if got := Describe(tok); got != `3:7: "foo"` {
		t.Errorf("Describe = %q", got)
	}
	eof := Token{Type: EOF, Line: 1, Column: 1}
	if got := Describe(eof); got != "1:1: EOF" {
		t.Errorf("Describe(EOF) = %q", got)
	}
}
