package jsonflow

// partialKind identifies which kind of token the lexer is in the middle
// of scanning across a chunk boundary.
type partialKind int

const (
	partialNone partialKind = iota
	partialString
	partialNumber
	partialLiteral
)

// partialToken is the lexer's continuation state for a token whose
// bytes span multiple Consume calls. start is an offset into the
// parser's inputBuffer rather than a copied byte slice: since the
// buffer is never truncated mid-document, re-slicing from the original
// offset is equivalent to accumulating the bytes separately, at the
// cost of one fewer allocation per token.
type partialToken struct {
	kind          partialKind
	start         int
	escapePending bool // string only: last byte consumed was an unescaped backslash
}

// lexer turns the bytes in an inputBuffer into tokens, picking up
// exactly where a previous call left off via partial. It holds no
// other state: everything about "how far we've scanned" lives in the
// buffer's resume cursor.
type lexer struct {
	partial partialToken
}

// scan attempts to produce the next token from buf at its resume
// position. It returns (tok, true, nil) on a complete token, (zero,
// false, nil) when the buffer is exhausted mid-token or mid-whitespace
// (more input is needed — not an error), or (zero, false, err) when the
// bytes observed so far cannot begin any legal token.
func (lx *lexer) scan(buf *inputBuffer) (token, bool, error) {
	if lx.partial.kind == partialNone {
		if !lx.skipWhitespace(buf) {
			return token{}, false, nil
		}
		if buf.resume >= buf.len() {
			return token{}, false, nil
		}
		c := buf.at(buf.resume)
		switch c {
		case '{':
			buf.resume++
			return token{kind: tokLBrace}, true, nil
		case '}':
			buf.resume++
			return token{kind: tokRBrace}, true, nil
		case '[':
			buf.resume++
			return token{kind: tokLBracket}, true, nil
		case ']':
			buf.resume++
			return token{kind: tokRBracket}, true, nil
		case ':':
			buf.resume++
			return token{kind: tokColon}, true, nil
		case ',':
			buf.resume++
			return token{kind: tokComma}, true, nil
		case '"':
			buf.resume++
			lx.partial = partialToken{kind: partialString, start: buf.resume}
			return lx.scanString(buf)
		case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			lx.partial = partialToken{kind: partialNumber, start: buf.resume}
			return lx.scanNumber(buf)
		case 't', 'f', 'n':
			lx.partial = partialToken{kind: partialLiteral, start: buf.resume}
			return lx.scanLiteral(buf)
		default:
			return token{}, false, newMalformed(buf.resume, "", "unrecognized start character %q", c)
		}
	}

	switch lx.partial.kind {
	case partialString:
		return lx.scanString(buf)
	case partialNumber:
		return lx.scanNumber(buf)
	case partialLiteral:
		return lx.scanLiteral(buf)
	default:
		panic("jsonflow: lexer in unknown partial state")
	}
}

// skipWhitespace advances buf.resume past any run of JSON whitespace.
// It returns false if the buffer ran out while still on whitespace
// (nothing more to decide yet).
func (lx *lexer) skipWhitespace(buf *inputBuffer) bool {
	for buf.resume < buf.len() && jsonWhitespace(buf.at(buf.resume)) {
		buf.resume++
	}
	return buf.resume < buf.len()
}

// scanString continues (or starts) a string body from buf.resume,
// honoring an escape pending from a previous call. \ unconditionally
// escapes the next byte without being decoded; only finding the
// terminator is required, not interpreting the content.
//
// On hitting the end of the buffer before the closing quote, it
// reports a provisional, non-terminated token containing only the
// bytes newly seen since the last report (so the state machine can
// append instead of re-installing the whole string), and resets its
// start offset so the next call's provisional report doesn't repeat
// them.
func (lx *lexer) scanString(buf *inputBuffer) (token, bool, error) {
	for buf.resume < buf.len() {
		c := buf.at(buf.resume)
		if lx.partial.escapePending {
			lx.partial.escapePending = false
			buf.resume++
			continue
		}
		if c == '\\' {
			lx.partial.escapePending = true
			buf.resume++
			continue
		}
		if c == '"' {
			text := buf.slice(lx.partial.start, buf.resume)
			buf.resume++
			lx.partial = partialToken{}
			return token{kind: tokString, text: text, terminated: true}, true, nil
		}
		buf.resume++
	}

	if buf.resume > lx.partial.start {
		text := buf.slice(lx.partial.start, buf.resume)
		lx.partial.start = buf.resume
		return token{kind: tokString, text: text, terminated: false}, true, nil
	}
	return token{}, false, nil
}

// scanNumber continues (or starts) a numeric run. The run greedily
// accepts [0-9+-.eE] and ends at the first byte outside that class —
// which, if it happens because more bytes are actually available,
// means the number is complete right there. If the buffer simply runs
// out first, more digits might still be in the next chunk, so the run
// stays uncommitted: a partial number is never exposed, only a
// fully-terminated one.
func (lx *lexer) scanNumber(buf *inputBuffer) (token, bool, error) {
	for buf.resume < buf.len() && numberClass(buf.at(buf.resume)) {
		buf.resume++
	}
	if buf.resume < buf.len() {
		text := buf.slice(lx.partial.start, buf.resume)
		lx.partial = partialToken{}
		return token{kind: tokNumber, text: text}, true, nil
	}
	return token{}, false, nil
}

// scanLiteral continues (or starts) a run of true/false/null. It
// accumulates one byte at a time, rejecting as Malformed the moment the
// accumulated text stops being a prefix of any of the three keywords.
// An exact match is only finalized once a following byte proves the
// keyword isn't the prefix of a longer (invalid) identifier; if the
// buffer ends right after an exact match, that's still NeedMore.
func (lx *lexer) scanLiteral(buf *inputBuffer) (token, bool, error) {
	for {
		text := buf.slice(lx.partial.start, buf.resume)
		if literalExact(text) && buf.resume >= buf.len() {
			return token{}, false, nil
		}
		if buf.resume >= buf.len() {
			return token{}, false, nil
		}
		candidate := buf.slice(lx.partial.start, buf.resume+1)
		if !literalIsPrefix(candidate) {
			if literalExact(text) {
				lx.partial = partialToken{}
				return token{kind: tokLiteral, text: text}, true, nil
			}
			return token{}, false, newMalformed(lx.partial.start, text, "invalid literal %q", candidate)
		}
		buf.resume++
	}
}
