// Package lexer tokenizes C source code into the token slice consumed
// by the parser.
package lexer

import (
	"strconv"
	"unicode"

	"github.com/nanocc/nanocc/pkg/token"
)

// Lexer walks the input one byte at a time
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // next reading position
	ch      byte // current character
	line    int
	column  int
}

// New creates a new Lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

// Tokenize runs the lexer over the whole input and returns the token
// slice, terminated by an EOF sentinel.
func Tokenize(input string) []token.Token {
	l := New(input)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.column++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()
	l.skipComments()
	l.skipWhitespace()

	tok := token.Token{Line: l.line, Column: l.column}

	switch l.ch {
	case 0:
		tok.Type = token.EOF
		tok.Literal = ""
	case '+':
		tok = l.newToken(token.Plus, l.ch)
	case '-':
		if l.peekChar() == '>' {
			tok.Type = token.Arrow
			tok.Literal = "->"
			l.readChar()
		} else {
			tok = l.newToken(token.Minus, l.ch)
		}
	case '*':
		tok = l.newToken(token.Star, l.ch)
	case '/':
		tok = l.newToken(token.Slash, l.ch)
	case '%':
		tok = l.newToken(token.Percent, l.ch)
	case '=':
		if l.peekChar() == '=' {
			tok.Type = token.Eq
			tok.Literal = "=="
			l.readChar()
		} else {
			tok = l.newToken(token.Assign, l.ch)
		}
	case '!':
		if l.peekChar() == '=' {
			tok.Type = token.Ne
			tok.Literal = "!="
			l.readChar()
		} else {
			tok = l.newToken(token.Not, l.ch)
		}
	case '<':
		if l.peekChar() == '=' {
			tok.Type = token.Le
			tok.Literal = "<="
			l.readChar()
		} else if l.peekChar() == '<' {
			tok.Type = token.Shl
			tok.Literal = "<<"
			l.readChar()
		} else {
			tok = l.newToken(token.Lt, l.ch)
		}
	case '>':
		if l.peekChar() == '=' {
			tok.Type = token.Ge
			tok.Literal = ">="
			l.readChar()
		} else if l.peekChar() == '>' {
			tok.Type = token.Shr
			tok.Literal = ">>"
			l.readChar()
		} else {
			tok = l.newToken(token.Gt, l.ch)
		}
	case '&':
		if l.peekChar() == '&' {
			tok.Type = token.LogAnd
			tok.Literal = "&&"
			l.readChar()
		} else {
			tok = l.newToken(token.Amp, l.ch)
		}
	case '|':
		if l.peekChar() == '|' {
			tok.Type = token.LogOr
			tok.Literal = "||"
			l.readChar()
		} else {
			tok = l.newToken(token.Pipe, l.ch)
		}
	case '^':
		tok = l.newToken(token.Caret, l.ch)
	case '?':
		tok = l.newToken(token.Question, l.ch)
	case ':':
		tok = l.newToken(token.Colon, l.ch)
	case '(':
		tok = l.newToken(token.LParen, l.ch)
	case ')':
		tok = l.newToken(token.RParen, l.ch)
	case '{':
		tok = l.newToken(token.LBrace, l.ch)
	case '}':
		tok = l.newToken(token.RBrace, l.ch)
	case '[':
		tok = l.newToken(token.LBracket, l.ch)
	case ']':
		tok = l.newToken(token.RBracket, l.ch)
	case ';':
		tok = l.newToken(token.Semicolon, l.ch)
	case ',':
		tok = l.newToken(token.Comma, l.ch)
	case '.':
		tok = l.newToken(token.Dot, l.ch)
	case '"':
		raw, str := l.readString()
		tok.Type = token.Str
		tok.Literal = raw
		tok.Str = str
		tok.Len = len(str) + 1 // trailing NUL
		return tok
	default:
		if isLetter(l.ch) {
			tok.Literal = l.readIdentifier()
			tok.Type = token.LookupIdent(tok.Literal)
			return tok
		} else if isDigit(l.ch) {
			tok.Type = token.Num
			tok.Literal = l.readNumber()
			tok.Val, _ = strconv.Atoi(tok.Literal)
			return tok
		}
		tok = l.newToken(token.Illegal, l.ch)
	}

	l.readChar()
	return tok
}

func (l *Lexer) newToken(tokenType token.Type, ch byte) token.Token {
	return token.Token{Type: tokenType, Literal: string(ch), Line: l.line, Column: l.column}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) skipComments() {
	for l.ch == '/' {
		if l.peekChar() == '/' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			l.skipWhitespace()
		} else if l.peekChar() == '*' {
			l.readChar() // consume /
			l.readChar() // consume *
			for {
				if l.ch == 0 {
					break
				}
				if l.ch == '*' && l.peekChar() == '/' {
					l.readChar() // consume *
					l.readChar() // consume /
					break
				}
				l.readChar()
			}
			l.skipWhitespace()
		} else {
			break
		}
	}
}

func (l *Lexer) readIdentifier() string {
	pos := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[pos:l.pos]
}

func (l *Lexer) readNumber() string {
	pos := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[pos:l.pos]
}

// readString consumes a string literal, returning the raw source text
// between the quotes and the escape-decoded bytes.
func (l *Lexer) readString() (raw string, decoded string) {
	l.readChar() // consume opening quote
	pos := l.pos
	var buf []byte
	for l.ch != '"' && l.ch != 0 {
		if l.ch == '\\' {
			l.readChar()
			buf = append(buf, unescape(l.ch))
		} else {
			buf = append(buf, l.ch)
		}
		l.readChar()
	}
	raw = l.input[pos:l.pos]
	l.readChar() // consume closing quote
	return raw, string(buf)
}

func unescape(ch byte) byte {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	default:
		return ch
	}
}

func isLetter(ch byte) bool {
	return unicode.IsLetter(rune(ch)) || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
