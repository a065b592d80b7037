package wkt

import (
	"github.com/hangxie/citygeom/common"
)

type TokenKind int

const (
	EOF TokenKind = iota
	Word
	LeftParen
	RightParen
	Comma
	Semicolon
	Equals
)

func (k TokenKind) String() string {
	switch k {
	case EOF:
		return "end of input"
	case Word:
		return "word"
	case LeftParen:
		return "'('"
	case RightParen:
		return "')'"
	case Comma:
		return "','"
	case Semicolon:
		return "';'"
	case Equals:
		return "'='"
	default:
		return "unknown"
	}
}

// Token is a lexical unit with the byte offset it starts at.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}

// Tokenizer splits WKT into tokens. Words are runs of letters, digits, '.',
// '+' and '-'; '#' starts a comment running to the end of the line. One
// token can be pushed back.
type Tokenizer struct {
	input  string
	pos    int
	pushed *Token
}

func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: input}
}

// Next returns the next token, or an EOF token at the end of input.
func (t *Tokenizer) Next() (Token, error) {
	if t.pushed != nil {
		tok := *t.pushed
		t.pushed = nil
		return tok, nil
	}

	t.skip()
	if t.pos >= len(t.input) {
		return Token{Kind: EOF, Pos: t.pos}, nil
	}

	start := t.pos
	c := t.input[t.pos]
	var kind TokenKind
	switch c {
	case '(':
		kind = LeftParen
	case ')':
		kind = RightParen
	case ',':
		kind = Comma
	case ';':
		kind = Semicolon
	case '=':
		kind = Equals
	default:
		if !isWordChar(c) {
			return Token{}, &ParseError{
				Problem: "unexpected character",
				Token:   string(c),
				Pos:     start,
				input:   t.input,
				cause:   common.ErrMalformedInput,
			}
		}
		for t.pos < len(t.input) && isWordChar(t.input[t.pos]) {
			t.pos++
		}
		return Token{Kind: Word, Text: t.input[start:t.pos], Pos: start}, nil
	}
	t.pos++
	return Token{Kind: kind, Text: string(c), Pos: start}, nil
}

// PushBack makes tok the result of the next call to Next.
func (t *Tokenizer) PushBack(tok Token) {
	t.pushed = &tok
}

// Peek returns the next token without consuming it.
func (t *Tokenizer) Peek() (Token, error) {
	tok, err := t.Next()
	if err != nil {
		return tok, err
	}
	t.PushBack(tok)
	return tok, nil
}

func (t *Tokenizer) skip() {
	for t.pos < len(t.input) {
		switch c := t.input[t.pos]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			t.pos++
		case c == '#':
			for t.pos < len(t.input) && t.input[t.pos] != '\n' {
				t.pos++
			}
		default:
			return
		}
	}
}

func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') ||
		c == '.' || c == '+' || c == '-'
}
