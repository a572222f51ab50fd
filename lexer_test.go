package jsonflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// scanAll feeds the whole input to a fresh lexer in one go and returns
// every complete token it produces, in the table-driven shape
// ccuetoh-maqui-lang's TestLexer uses for its own lexer.
func scanAll(t *testing.T, input string) ([]token, error) {
	t.Helper()
	var buf inputBuffer
	buf.append([]byte(input))
	var lx lexer
	var toks []token
	for {
		tok, ok, err := lx.scan(&buf)
		if err != nil {
			return toks, err
		}
		if !ok {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

func TestLexerStructuralTokens(t *testing.T) {
	toks, err := scanAll(t, `{}[]:,`)
	assert.NoError(t, err)
	want := []tokenKind{tokLBrace, tokRBrace, tokLBracket, tokRBracket, tokColon, tokComma}
	assert.Len(t, toks, len(want))
	for i, k := range want {
		assert.Equal(t, k, toks[i].kind)
	}
}

func TestLexerWhitespaceIsSkipped(t *testing.T) {
	toks, err := scanAll(t, " \t\n\r{ \t\n\r} \t\n\r")
	assert.NoError(t, err)
	assert.Len(t, toks, 2)
	assert.Equal(t, tokLBrace, toks[0].kind)
	assert.Equal(t, tokRBrace, toks[1].kind)
}

func TestLexerString(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", `"hello"`, "hello"},
		{"empty", `""`, ""},
		{"escaped quote", `"a\"b"`, `a\"b`},
		{"escaped backslash", `"a\\b"`, `a\\b`},
		{"unicode", `"日本語"`, "日本語"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := scanAll(t, c.in)
			assert.NoError(t, err)
			assert.Len(t, toks, 1)
			assert.Equal(t, tokString, toks[0].kind)
			assert.True(t, toks[0].terminated)
			assert.Equal(t, c.want, toks[0].text)
		})
	}
}

func TestLexerStringAcrossChunks(t *testing.T) {
	var buf inputBuffer
	var lx lexer

	buf.append([]byte(`"hello`))
	tok, ok, err := lx.scan(&buf)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, tokString, tok.kind)
	assert.False(t, tok.terminated)
	assert.Equal(t, "hello", tok.text)

	// Nothing new yet: should report NeedMore, not an empty token.
	_, ok, err = lx.scan(&buf)
	assert.NoError(t, err)
	assert.False(t, ok)

	buf.append([]byte(` world"`))
	tok, ok, err = lx.scan(&buf)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, tok.terminated)
	assert.Equal(t, " world", tok.text, "terminated report should only hold bytes since the last provisional report")
}

func TestLexerEscapePendingAcrossChunkBoundary(t *testing.T) {
	var buf inputBuffer
	var lx lexer

	// The chunk ends right on an unresolved backslash: the lexer must
	// carry escapePending into the next call rather than treating it as
	// a terminated run.
	buf.append([]byte(`"a\`))
	tok, ok, err := lx.scan(&buf)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, tok.terminated)
	assert.Equal(t, `a\`, tok.text)

	// The escaped byte arriving in the next chunk is a quote that must
	// NOT terminate the string.
	buf.append([]byte(`"b"`))
	tok, ok, err = lx.scan(&buf)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, tok.terminated)
	assert.Equal(t, `"b`, tok.text)
}

func TestLexerNumber(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"integer", "42,", "42"},
		{"negative", "-7,", "-7"},
		{"float", "3.14,", "3.14"},
		{"exponent", "1e10,", "1e10"},
		{"negative exponent", "-1.5e-10,", "-1.5e-10"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := scanAll(t, c.in)
			assert.NoError(t, err)
			assert.Equal(t, tokNumber, toks[0].kind)
			assert.Equal(t, c.want, toks[0].text)
		})
	}
}

func TestLexerNumberNeedsDelimiterToCommit(t *testing.T) {
	var buf inputBuffer
	var lx lexer
	buf.append([]byte("123"))

	_, ok, err := lx.scan(&buf)
	assert.NoError(t, err)
	assert.False(t, ok, "a number run that simply ran out of bytes is NeedMore, not committed")

	buf.append([]byte(","))
	tok, ok, err := lx.scan(&buf)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, tokNumber, tok.kind)
	assert.Equal(t, "123", tok.text)
}

func TestLexerLiteral(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"true,", "true"},
		{"false,", "false"},
		{"null,", "null"},
	}
	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			toks, err := scanAll(t, c.in)
			assert.NoError(t, err)
			assert.Equal(t, tokLiteral, toks[0].kind)
			assert.Equal(t, c.want, toks[0].text)
		})
	}
}

func TestLexerLiteralRejectsInvalidIdentifier(t *testing.T) {
	_, err := scanAll(t, "truthy")
	assert.Error(t, err)
}

func TestLexerLiteralExactAtBufferEndIsNeedMore(t *testing.T) {
	var buf inputBuffer
	var lx lexer
	buf.append([]byte("true"))

	_, ok, err := lx.scan(&buf)
	assert.NoError(t, err)
	assert.False(t, ok, "an exact keyword match right at buffer end might still be a longer identifier")
}

func TestLexerRejectsUnrecognizedStartByte(t *testing.T) {
	_, err := scanAll(t, "@")
	assert.Error(t, err)
}
