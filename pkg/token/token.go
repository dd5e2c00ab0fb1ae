package token

import "fmt"

// Type identifies the lexical kind of a token
type Type int

const (
	// Special tokens
	EOF Type = iota
	Illegal

	// Literals
	Num   // 42
	Str   // "hello"
	Ident // main, foo, x

	// Keywords
	Int      // int
	Char     // char
	Void     // void
	Struct   // struct
	Typedef  // typedef
	If       // if
	Else     // else
	For      // for
	While    // while
	Do       // do
	Return   // return
	Sizeof   // sizeof
	Alignof  // _Alignof
	Extern   // extern

	// Operators
	Plus     // +
	Minus    // -
	Star     // * (multiply or dereference)
	Slash    // /
	Percent  // %
	Assign   // =
	Eq       // ==
	Ne       // !=
	Lt       // <
	Gt       // >
	Le       // <=
	Ge       // >=
	Shl      // <<
	Shr      // >>
	Amp      // & (bitwise and or address-of)
	Pipe     // |
	Caret    // ^
	Not      // !
	LogAnd   // &&
	LogOr    // ||
	Question // ?
	Colon    // :

	// Delimiters
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
	Semicolon // ;
	Comma     // ,
	Dot       // .
	Arrow     // ->
)

var typeNames = map[Type]string{
	EOF:       "EOF",
	Illegal:   "ILLEGAL",
	Num:       "NUM",
	Str:       "STR",
	Ident:     "IDENT",
	Int:       "int",
	Char:      "char",
	Void:      "void",
	Struct:    "struct",
	Typedef:   "typedef",
	If:        "if",
	Else:      "else",
	For:       "for",
	While:     "while",
	Do:        "do",
	Return:    "return",
	Sizeof:    "sizeof",
	Alignof:   "_Alignof",
	Extern:    "extern",
	Plus:      "+",
	Minus:     "-",
	Star:      "*",
	Slash:     "/",
	Percent:   "%",
	Assign:    "=",
	Eq:        "==",
	Ne:        "!=",
	Lt:        "<",
	Gt:        ">",
	Le:        "<=",
	Ge:        ">=",
	Shl:       "<<",
	Shr:       ">>",
	Amp:       "&",
	Pipe:      "|",
	Caret:     "^",
	Not:       "!",
	LogAnd:    "&&",
	LogOr:     "||",
	Question:  "?",
	Colon:     ":",
	LParen:    "(",
	RParen:    ")",
	LBrace:    "{",
	RBrace:    "}",
	LBracket:  "[",
	RBracket:  "]",
	Semicolon: ";",
	Comma:     ",",
	Dot:       ".",
	Arrow:     "->",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is one lexical token. The parser consumes a finished slice of
// these read-only, indexed by a cursor that only moves forward.
type Token struct {
	Type    Type
	Literal string // raw text as it appeared in the source
	Val     int    // Num: decoded value
	Str     string // Str: decoded bytes
	Len     int    // Str: byte length including the trailing NUL
	Line    int
	Column  int
}

// Describe renders a token with its source position, for diagnostics.
func Describe(tok Token) string {
	if tok.Type == EOF {
		return fmt.Sprintf("%d:%d: EOF", tok.Line, tok.Column)
	}
	return fmt.Sprintf("%d:%d: %q", tok.Line, tok.Column, tok.Literal)
}

var keywords = map[string]Type{
	"int":      Int,
	"char":     Char,
	"void":     Void,
	"struct":   Struct,
	"typedef":  Typedef,
	"if":       If,
	"else":     Else,
	"for":      For,
	"while":    While,
	"do":       Do,
	"return":   Return,
	"sizeof":   Sizeof,
	"_Alignof": Alignof,
	"extern":   Extern,
}

// LookupIdent returns the token type for an identifier (keyword or IDENT)
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return Ident
}
