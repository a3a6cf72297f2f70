package rcg

import (
	"fmt"
	"strconv"
	"strings"
)

// TokenType represents the type of an S-expression token.
type TokenType uint8

const (
	TokenEOF TokenType = iota
	TokenError
	TokenLParen // (
	TokenRParen // )
	TokenAtom   // bare word or number
	TokenString // "quoted text"
)

// String returns the token type name.
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenError:
		return "ERROR"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenAtom:
		return "ATOM"
	case TokenString:
		return "STRING"
	default:
		return "UNKNOWN"
	}
}

// Token is one lexical element of an S-expression record.
// String tokens keep their quotes and escapes in Value; use Text.
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

// String returns a debug representation of the token.
func (t Token) String() string {
	if t.Value == "" {
		return t.Type.String()
	}
	return fmt.Sprintf("%s(%q)", t.Type, t.Value)
}

// Text returns the token value with quoting removed.
func (t Token) Text() string {
	if t.Type == TokenString {
		return CleanString(t.Value)
	}
	return t.Value
}

// SyntaxError reports a malformed S-expression.
type SyntaxError struct {
	Reason string
	Offset int
}

func (e *SyntaxError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("rcg: %s at offset %d", e.Reason, e.Offset)
	}
	return fmt.Sprintf("rcg: %s", e.Reason)
}

// Lexer splits one record into tokens.
type Lexer struct {
	input  string
	pos    int
	tokens []Token
	err    error
}

// NewLexer creates a lexer over input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize returns all tokens of the input, ending with TokenEOF.
func (l *Lexer) Tokenize() ([]Token, error) {
	for {
		tok := l.nextToken()
		l.tokens = append(l.tokens, tok)
		if tok.Type == TokenEOF || tok.Type == TokenError {
			break
		}
	}
	return l.tokens, l.err
}

func (l *Lexer) nextToken() Token {
	l.skipWhitespace()
	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Pos: l.pos}
	}

	start := l.pos
	switch ch := l.input[l.pos]; ch {
	case '(':
		l.pos++
		return Token{Type: TokenLParen, Value: "(", Pos: start}
	case ')':
		l.pos++
		return Token{Type: TokenRParen, Value: ")", Pos: start}
	case '"':
		return l.scanString()
	default:
		return l.scanAtom()
	}
}

// scanString scans a double-quoted string. A backslash escapes the next byte.
func (l *Lexer) scanString() Token {
	start := l.pos
	l.pos++ // opening "
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case '\\':
			l.pos += 2
			continue
		case '"':
			l.pos++
			return Token{Type: TokenString, Value: l.input[start:l.pos], Pos: start}
		}
		l.pos++
	}
	l.pos = len(l.input)
	l.err = &SyntaxError{Reason: "unterminated string", Offset: start}
	return Token{Type: TokenError, Value: l.input[start:], Pos: start}
}

func (l *Lexer) scanAtom() Token {
	start := l.pos
	for l.pos < len(l.input) && !isDelimiter(l.input[l.pos]) {
		l.pos++
	}
	return Token{Type: TokenAtom, Value: l.input[start:l.pos], Pos: start}
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.pos++
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDelimiter(ch byte) bool {
	return isSpace(ch) || ch == '(' || ch == ')' || ch == '"'
}

// Tokenize is shorthand for NewLexer(input).Tokenize wrapped in a stream.
func Tokenize(input string) (*TokenStream, error) {
	tokens, err := NewLexer(input).Tokenize()
	if err != nil {
		return nil, err
	}
	return NewTokenStream(tokens), nil
}

// ============================================================
// TokenStream
// ============================================================

// TokenStream provides cursor access over tokens.
type TokenStream struct {
	tokens []Token
	pos    int
}

// NewTokenStream creates a token stream from tokens.
func NewTokenStream(tokens []Token) *TokenStream {
	return &TokenStream{tokens: tokens}
}

// Peek returns the current token without advancing.
func (ts *TokenStream) Peek() Token {
	if ts.pos >= len(ts.tokens) {
		return Token{Type: TokenEOF, Pos: -1}
	}
	return ts.tokens[ts.pos]
}

// PeekN returns the token n positions ahead.
func (ts *TokenStream) PeekN(n int) Token {
	idx := ts.pos + n
	if idx >= len(ts.tokens) {
		return Token{Type: TokenEOF, Pos: -1}
	}
	return ts.tokens[idx]
}

// Advance moves to the next token and returns the current one.
func (ts *TokenStream) Advance() Token {
	tok := ts.Peek()
	if ts.pos < len(ts.tokens) {
		ts.pos++
	}
	return tok
}

// Expect advances if the current token has type typ.
func (ts *TokenStream) Expect(typ TokenType) (Token, error) {
	tok := ts.Peek()
	if tok.Type != typ {
		return tok, &SyntaxError{Reason: fmt.Sprintf("expected %s, got %s", typ, tok), Offset: tok.Pos}
	}
	ts.Advance()
	return tok, nil
}

// Match returns true and advances if the current token has type typ.
func (ts *TokenStream) Match(typ TokenType) bool {
	if ts.Peek().Type == typ {
		ts.Advance()
		return true
	}
	return false
}

// MatchOpen consumes "(" followed by the atom name.
func (ts *TokenStream) MatchOpen(name string) bool {
	if ts.Peek().Type == TokenLParen {
		next := ts.PeekN(1)
		if next.Type == TokenAtom && next.Value == name {
			ts.pos += 2
			return true
		}
	}
	return false
}

// Keyword expects an atom equal to name.
func (ts *TokenStream) Keyword(name string) error {
	tok := ts.Peek()
	if tok.Type != TokenAtom || tok.Value != name {
		return &SyntaxError{Reason: fmt.Sprintf("expected %q, got %s", name, tok), Offset: tok.Pos}
	}
	ts.Advance()
	return nil
}

// Atom returns the next atom.
func (ts *TokenStream) Atom() (string, error) {
	tok, err := ts.Expect(TokenAtom)
	return tok.Value, err
}

// Int parses the next atom as a decimal integer.
func (ts *TokenStream) Int() (int, error) {
	tok, err := ts.Expect(TokenAtom)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok.Value)
	if err != nil {
		return 0, &SyntaxError{Reason: "invalid integer " + strconv.Quote(tok.Value), Offset: tok.Pos}
	}
	return n, nil
}

// Hex parses the next atom as a hexadecimal integer with optional 0x prefix.
func (ts *TokenStream) Hex() (uint32, error) {
	tok, err := ts.Expect(TokenAtom)
	if err != nil {
		return 0, err
	}
	s := strings.TrimPrefix(strings.TrimPrefix(tok.Value, "0x"), "0X")
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, &SyntaxError{Reason: "invalid hex " + strconv.Quote(tok.Value), Offset: tok.Pos}
	}
	return uint32(n), nil
}

// Float parses the next atom as a float32.
func (ts *TokenStream) Float() (float32, error) {
	tok, err := ts.Expect(TokenAtom)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(tok.Value, 32)
	if err != nil {
		return 0, &SyntaxError{Reason: "invalid number " + strconv.Quote(tok.Value), Offset: tok.Pos}
	}
	return float32(f), nil
}

// PeekNumber reports whether the current token is a numeric atom.
func (ts *TokenStream) PeekNumber() bool {
	tok := ts.Peek()
	if tok.Type != TokenAtom {
		return false
	}
	_, err := strconv.ParseFloat(tok.Value, 64)
	return err == nil
}

// Close expects ")".
func (ts *TokenStream) Close() error {
	_, err := ts.Expect(TokenRParen)
	return err
}

// Skip consumes tokens up to and including the ")" closing the current
// list. The opening "(" must already be consumed.
func (ts *TokenStream) Skip() error {
	depth := 1
	for depth > 0 {
		tok := ts.Advance()
		switch tok.Type {
		case TokenLParen:
			depth++
		case TokenRParen:
			depth--
		case TokenEOF, TokenError:
			return &SyntaxError{Reason: "unbalanced parentheses", Offset: tok.Pos}
		}
	}
	return nil
}

// AtEnd returns true if at end of stream.
func (ts *TokenStream) AtEnd() bool {
	return ts.Peek().Type == TokenEOF
}

// ============================================================
// Quoting
// ============================================================

// CleanString strips one pair of matching surrounding quotes (' or ")
// and unescapes that quote character inside.
func CleanString(s string) string {
	if len(s) < 2 {
		return s
	}
	q := s[0]
	if (q != '"' && q != '\'') || s[len(s)-1] != q {
		return s
	}
	s = s[1 : len(s)-1]
	if q == '"' {
		return strings.ReplaceAll(s, `\"`, `"`)
	}
	return strings.ReplaceAll(s, `\'`, `'`)
}

// QuoteString wraps s in double quotes, escaping '"'. It is the inverse
// of CleanString.
func QuoteString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}
