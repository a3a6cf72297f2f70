package rcg

import (
	"errors"
	"testing"
)

// ============================================================
// Lexer Tests
// ============================================================

func TestLexer_Tokens(t *testing.T) {
	tokens, err := NewLexer(`(msg 10 1 "hello (world)")`).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	want := []struct {
		typ TokenType
		val string
	}{
		{TokenLParen, "("},
		{TokenAtom, "msg"},
		{TokenAtom, "10"},
		{TokenAtom, "1"},
		{TokenString, `"hello (world)"`},
		{TokenRParen, ")"},
		{TokenEOF, ""},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, w := range want {
		if tokens[i].Type != w.typ || tokens[i].Value != w.val {
			t.Errorf("token %d = %v, want %s(%q)", i, tokens[i], w.typ, w.val)
		}
	}
}

func TestLexer_EscapedQuote(t *testing.T) {
	ts, err := Tokenize(`("say \"hi\"" next)`)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	ts.Advance()
	tok := ts.Advance()
	if tok.Type != TokenString {
		t.Fatalf("got %v, want string", tok)
	}
	if got := tok.Text(); got != `say "hi"` {
		t.Errorf("Text() = %q, want %q", got, `say "hi"`)
	}
	if atom, _ := ts.Atom(); atom != "next" {
		t.Errorf("next atom = %q, want next", atom)
	}
}

func TestLexer_Unterminated(t *testing.T) {
	_, err := Tokenize(`(msg "open`)
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected SyntaxError, got %v", err)
	}
	if se.Offset != 5 {
		t.Errorf("Offset = %d, want 5", se.Offset)
	}
}

// ============================================================
// TokenStream Tests
// ============================================================

func TestTokenStream_Numbers(t *testing.T) {
	ts, err := Tokenize("(12 0x1f -3.5 abc)")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	ts.Advance()
	if n, err := ts.Int(); err != nil || n != 12 {
		t.Errorf("Int() = %d, %v; want 12", n, err)
	}
	if h, err := ts.Hex(); err != nil || h != 0x1f {
		t.Errorf("Hex() = %d, %v; want 31", h, err)
	}
	if !ts.PeekNumber() {
		t.Error("PeekNumber() = false before -3.5")
	}
	if f, err := ts.Float(); err != nil || f != -3.5 {
		t.Errorf("Float() = %v, %v; want -3.5", f, err)
	}
	if ts.PeekNumber() {
		t.Error("PeekNumber() = true before abc")
	}
	if _, err := ts.Int(); err == nil {
		t.Error("Int() on abc should fail")
	}
}

func TestTokenStream_MatchOpenAndSkip(t *testing.T) {
	ts, err := Tokenize("((pm 3) (tm a b (x y)) z)")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	ts.Advance()
	if ts.MatchOpen("tm") {
		t.Fatal("MatchOpen(tm) matched (pm")
	}
	if !ts.MatchOpen("pm") {
		t.Fatal("MatchOpen(pm) did not match")
	}
	if err := ts.Skip(); err != nil {
		t.Fatalf("Skip failed: %v", err)
	}
	if !ts.MatchOpen("tm") {
		t.Fatal("MatchOpen(tm) did not match")
	}
	if err := ts.Skip(); err != nil {
		t.Fatalf("Skip failed: %v", err)
	}
	if err := ts.Keyword("z"); err != nil {
		t.Fatalf("Keyword failed: %v", err)
	}
	if err := ts.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !ts.AtEnd() {
		t.Error("expected end of stream")
	}
}

func TestTokenStream_SkipUnbalanced(t *testing.T) {
	ts, _ := Tokenize("((a (b)")
	ts.Advance()
	ts.Advance()
	if err := ts.Skip(); err == nil {
		t.Error("Skip on unbalanced input should fail")
	}
}

// ============================================================
// Quoting Tests
// ============================================================

func TestCleanString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`"abc"`, "abc"},
		{`'abc'`, "abc"},
		{`"a\"b"`, `a"b`},
		{`'it\'s'`, "it's"},
		{`"abc'`, `"abc'`},
		{`abc`, "abc"},
		{`"`, `"`},
		{`""`, ""},
	}
	for _, tt := range tests {
		if got := CleanString(tt.in); got != tt.want {
			t.Errorf("CleanString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQuoteString_Inverse(t *testing.T) {
	for _, s := range []string{"", "plain", `say "hi"`, "a\\b", "(paren)"} {
		if got := CleanString(QuoteString(s)); got != s {
			t.Errorf("CleanString(QuoteString(%q)) = %q", s, got)
		}
	}
}
