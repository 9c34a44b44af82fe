package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phpjs/phpjs/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestScanAllEndsWithEOF(t *testing.T) {
	toks := ScanAll(`$x = 1;`)
	require.NotEmpty(t, toks)
	assert.Equal(t, token.EOF, toks[len(toks)-1].Kind)
}

func TestScanPunctuationMaximalMunch(t *testing.T) {
	toks := ScanAll(`+ ++ += - -- -= * ** *= / /= % %= . .=`)
	assert.Equal(t, []token.Kind{
		token.PLUS, token.PLUS_PLUS, token.PLUS_EQUAL,
		token.MINUS, token.MINUS_MINUS, token.MINUS_EQUAL,
		token.STAR, token.STAR_STAR, token.STAR_EQUAL,
		token.SLASH, token.SLASH_EQUAL,
		token.PERCENT, token.PERCENT_EQUAL,
		token.DOT, token.DOT_EQUAL,
		token.EOF,
	}, kinds(toks))
}

func TestScanEqualityAndAssignment(t *testing.T) {
	toks := ScanAll(`= == === ! != !==`)
	assert.Equal(t, []token.Kind{
		token.EQUAL, token.EQUAL_EQUAL, token.EQUAL_EQUAL_EQUAL,
		token.BANG, token.BANG_EQUAL, token.BANG_EQUAL_EQUAL,
		token.EOF,
	}, kinds(toks))
}

func TestScanLogicalAndLoneAmpersandPipeDropped(t *testing.T) {
	toks := ScanAll(`&& & || | true`)
	assert.Equal(t, []token.Kind{token.AND, token.OR, token.TRUE, token.EOF}, kinds(toks))
}

func TestScanLineComment(t *testing.T) {
	toks := ScanAll("echo 1; // trailing comment\necho 2;")
	require.Len(t, toks, 7)
	assert.Equal(t, 2, toks[3].Line) // second "echo" lands on line 2
}

func TestScanBlockCommentCountsNewlines(t *testing.T) {
	toks := ScanAll("echo 1; /* line1\nline2\nline3 */ echo 2;")
	require.Len(t, toks, 7)
	assert.Equal(t, 3, toks[3].Line) // second "echo" after two embedded newlines
}

func TestScanUnterminatedBlockCommentAcceptedSilently(t *testing.T) {
	toks := ScanAll("echo 1; /* never closed")
	assert.Equal(t, []token.Kind{token.ECHO, token.NUMBER, token.SEMICOLON, token.EOF}, kinds(toks))
}

func TestScanString(t *testing.T) {
	toks := ScanAll(`"hello world"`)
	require.Len(t, toks, 2)
	assert.Equal(t, "hello world", toks[0].Literal)
}

func TestScanStringEscapedQuote(t *testing.T) {
	toks := ScanAll(`"she said \"hi\""`)
	require.Len(t, toks, 2)
	assert.Equal(t, `she said "hi"`, toks[0].Literal)
}

func TestScanStringSingleQuoted(t *testing.T) {
	toks := ScanAll(`'it\'s here'`)
	require.Len(t, toks, 2)
	assert.Equal(t, `it's here`, toks[0].Literal)
}

func TestScanStringSpansNewlines(t *testing.T) {
	toks := ScanAll("\"line1\nline2\" echo;")
	require.True(t, len(toks) >= 2)
	assert.Equal(t, "line1\nline2", toks[0].Literal)
	assert.Equal(t, 2, toks[1].Line) // 'echo' after the embedded newline
}

func TestScanUnterminatedStringEmitsNoToken(t *testing.T) {
	toks := ScanAll(`echo "never closed`)
	assert.Equal(t, []token.Kind{token.ECHO, token.EOF}, kinds(toks))
}

func TestScanNumber(t *testing.T) {
	toks := ScanAll(`42 3.14 0.5`)
	require.Len(t, toks, 4)
	assert.Equal(t, 42.0, toks[0].Literal)
	assert.Equal(t, 3.14, toks[1].Literal)
	assert.Equal(t, 0.5, toks[2].Literal)
}

func TestScanIdentifierAndKeyword(t *testing.T) {
	toks := ScanAll(`myFunc function`)
	require.Len(t, toks, 3)
	assert.Equal(t, token.IDENTIFIER, toks[0].Kind)
	assert.Equal(t, "myFunc", toks[0].Literal)
	assert.Equal(t, token.FUNCTION, toks[1].Kind)
}

func TestScanVariable(t *testing.T) {
	toks := ScanAll(`$foo $`)
	require.Len(t, toks, 3)
	assert.Equal(t, token.VARIABLE, toks[0].Kind)
	assert.Equal(t, "$foo", toks[0].Lexeme)
	assert.Equal(t, token.VARIABLE, toks[1].Kind)
	assert.Equal(t, "$", toks[1].Lexeme)
}

func TestScanUnknownCharactersSkipped(t *testing.T) {
	toks := ScanAll("$x # @ = 1")
	assert.Equal(t, []token.Kind{token.VARIABLE, token.EQUAL, token.NUMBER, token.EOF}, kinds(toks))
}

func TestScanRoundTripsLexemes(t *testing.T) {
	src := `$x=10; echo "sum=" . ($x+20);`
	toks := ScanAll(src)
	var rebuilt string
	for _, tk := range toks {
		if tk.Kind == token.EOF {
			continue
		}
		rebuilt += tk.Lexeme
	}
	assert.Equal(t, `$x=10;echo"sum="."($x+20);`, rebuilt)
}

func TestStringLexemeIsVerbatimSourceSpan(t *testing.T) {
	toks := ScanAll(`"a\"b"`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, `"a\"b"`, toks[0].Lexeme)
	assert.Equal(t, `a"b`, toks[0].Literal)
}

func TestEmptyStringLexemeIsNonEmpty(t *testing.T) {
	toks := ScanAll(`""`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, `""`, toks[0].Lexeme)
	assert.Equal(t, "", toks[0].Literal)
}

func TestScanLineNumbering(t *testing.T) {
	toks := ScanAll("$a\n$b\r\n$c")
	require.Len(t, toks, 4)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
	assert.Equal(t, 3, toks[2].Line)
}
