package jsonflow

import "strconv"

// Parser is a single-pass, stack-based streaming JSON parser. It holds
// an input buffer, a chunked lexer, a stack of open containers, and —
// once the document's outermost container has closed — the finished
// root value.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	buf    inputBuffer
	lex    lexer
	stack  []*Frame
	root   *Value
	err    error
	limits Limits
}

// New constructs an empty Parser ready to accept its first Consume
// call.
func New(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Consume appends chunk to the document and advances parsing as far as
// the bytes available allow. Empty input is a no-op. Once Consume has
// returned a *MalformedError, the Parser is done: every subsequent
// Consume call returns that same error immediately without touching the
// buffer, lexer, or stack.
func (p *Parser) Consume(chunk []byte) error {
	if p.err != nil {
		return p.err
	}
	if len(chunk) == 0 {
		return nil
	}

	logger.Debugf("consuming %d bytes", len(chunk))
	p.buf.append(chunk)

	if p.limits.MaxBufferedBytes > 0 && p.buf.len() > p.limits.MaxBufferedBytes {
		return p.fail(newMalformed(p.buf.len(), "", "buffered input exceeds limit of %d bytes", p.limits.MaxBufferedBytes))
	}

	for {
		tok, ok, err := p.lex.scan(&p.buf)
		if err != nil {
			return p.fail(err)
		}
		if !ok {
			// A number or literal run still in progress at the top level
			// can never complete into a legal document no matter what
			// follows it — the very first token must open a container —
			// so there's no reason to wait for a disambiguating byte.
			if len(p.stack) == 0 && p.lex.partial.kind != partialNone && p.lex.partial.kind != partialString {
				return p.fail(newMalformed(p.buf.resume, "", "a document must start with '{' or '['"))
			}
			return nil
		}
		logger.Tracef("token %s %q", tok.kind, tok.text)
		if err := p.feed(tok); err != nil {
			return p.fail(err)
		}
	}
}

// fail records err as the parser's terminal state and returns it.
func (p *Parser) fail(err error) error {
	logger.Errorf("%v", err)
	p.err = err
	return err
}

// Get returns the current snapshot: the closed root if one exists,
// otherwise the outermost open container (a live view that may still
// grow), otherwise (nothing seen yet) ok is false. Get never mutates
// parser state and never raises on well-formed input history, even
// after a *MalformedError — it keeps returning the last sound snapshot
// produced before the error.
func (p *Parser) Get() (*Value, bool) {
	if p.root != nil && len(p.stack) == 0 {
		return p.root, true
	}
	if len(p.stack) == 0 {
		return nil, false
	}
	return p.stack[0].container, true
}

// Compact reclaims memory for bytes already folded into the tree. Only
// call it once Get's root is closed (or the parser is permanently
// Malformed) — compacting mid-document would invalidate the lexer's
// in-flight partial-token offset.
func (p *Parser) Compact() {
	if p.root == nil && p.err == nil {
		return
	}
	p.buf.compact()
}

// feed advances the state machine by exactly one token: the top-level
// rule, the object/array transition tables, and pop semantics.
func (p *Parser) feed(tok token) error {
	if len(p.stack) == 0 {
		return p.feedTopLevel(tok)
	}

	top := p.stack[len(p.stack)-1]

	switch tok.kind {
	case tokLBrace, tokLBracket:
		return p.push(top, tok)
	case tokRBrace:
		return p.pop(top, frameObject, tok)
	case tokRBracket:
		return p.pop(top, frameArray, tok)
	case tokColon:
		if err := top.acceptColon(); err != nil {
			return p.transitionError(tok, err)
		}
		return nil
	case tokComma:
		if err := top.acceptComma(); err != nil {
			return p.transitionError(tok, err)
		}
		return nil
	case tokString:
		return p.feedString(top, tok)
	case tokNumber:
		return p.feedScalar(top, tok, newNumberValue)
	case tokLiteral:
		return p.feedScalar(top, tok, newLiteralValue)
	default:
		panic("jsonflow: unknown token kind")
	}
}

// feedTopLevel enforces the top-level rule: the first non-whitespace
// token must open a container, and once root is set, no further
// non-whitespace token is permitted (no multiple roots, no top-level
// scalars).
func (p *Parser) feedTopLevel(tok token) error {
	if p.root != nil {
		return newMalformed(p.buf.resume, tok.text, "unexpected input after the document closed")
	}
	switch tok.kind {
	case tokLBrace:
		p.stack = append(p.stack, newObjectFrame())
		return nil
	case tokLBracket:
		p.stack = append(p.stack, newArrayFrame())
		return nil
	default:
		text := tok.text
		if text == "" {
			text = tok.kind.String()
		}
		return newMalformed(p.buf.resume, text, "a document must start with '{' or '['")
	}
}

// push handles an opening '{' or '[' encountered while a container is
// already open: it installs the new, empty container as the enclosing
// frame's current value (exactly like committing any other value,
// since "install then move to expect-comma-or-end" is identical either
// way) and pushes a fresh frame for it.
func (p *Parser) push(top *Frame, tok token) error {
	if p.limits.MaxDepth > 0 && len(p.stack) >= p.limits.MaxDepth {
		return newMalformed(p.buf.resume, tok.text, "nesting exceeds limit of %d", p.limits.MaxDepth)
	}

	var child *Frame
	if tok.kind == tokLBrace {
		child = newObjectFrame()
	} else {
		child = newArrayFrame()
	}
	if err := top.installCommittedValue(child.container); err != nil {
		return p.transitionError(tok, err)
	}
	p.stack = append(p.stack, child)
	return nil
}

// pop closes the top frame, which must be of the expected kind (a
// mismatched closer like '{]' is Malformed) and in a state that permits
// closing (this is also what rejects a trailing comma). Popping the
// last frame hands the container over to root.
func (p *Parser) pop(top *Frame, want frameKind, tok token) error {
	if top.kind != want {
		return newMalformed(p.buf.resume, tok.kind.String(), "mismatched closing delimiter %q", tok.kind.String())
	}
	if !top.canClose() {
		return newMalformed(p.buf.resume, tok.kind.String(), "unexpected %q", tok.kind.String())
	}
	p.stack = p.stack[:len(p.stack)-1]
	if len(p.stack) == 0 {
		p.root = top.container
	}
	return nil
}

// feedString routes a String token (terminated or provisional) to
// whichever of key-acceptance, value-install, or partial-growth applies
// in the frame's current state.
func (p *Parser) feedString(top *Frame, tok token) error {
	if top.kind == frameObject && top.state == stateObjectExpectKeyOrEnd {
		if err := top.acceptKeyChunk(tok); err != nil {
			return p.transitionError(tok, err)
		}
		return nil
	}

	if !tok.terminated {
		if err := top.growPartialString(tok.text); err != nil {
			return p.transitionError(tok, err)
		}
		return nil
	}

	if err := top.commitString(tok.text); err != nil {
		return p.transitionError(tok, err)
	}
	return nil
}

// feedScalar installs a fully-lexed number or literal token as a
// committed value, via the same install path container-opens use.
func (p *Parser) feedScalar(top *Frame, tok token, build func(token) (*Value, error)) error {
	v, err := build(tok)
	if err != nil {
		return newMalformed(p.buf.resume, tok.text, "invalid %s %q", tok.kind, tok.text)
	}
	if err := top.installCommittedValue(v); err != nil {
		return p.transitionError(tok, err)
	}
	return nil
}

// transitionError turns the Frame layer's generic errInvalidTransition
// sentinel into a *MalformedError carrying the offset and token text
// the Frame itself doesn't have access to.
func (p *Parser) transitionError(tok token, err error) error {
	if err == errInvalidTransition {
		return newMalformed(p.buf.resume, tok.text, "unexpected token %s", tok.kind)
	}
	return err
}

// newNumberValue parses a fully-lexed number token's text: integer if
// it contains none of '.', 'e', 'E', otherwise floating point. A run
// that looked number-shaped to the lexer's character class but fails
// to parse (e.g. "1.2.3", "1e") is Malformed — the lexer only
// guarantees the byte class, not grammar validity.
func newNumberValue(tok token) (*Value, error) {
	text := tok.text
	isFloat := false
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '.', 'e', 'E':
			isFloat = true
		}
	}
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, newMalformed(0, text, "invalid number %q", text)
		}
		return newFloat(f), nil
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, newMalformed(0, text, "invalid number %q", text)
	}
	return newInteger(i), nil
}

// newLiteralValue converts a fully-lexed literal token into its Value.
// The lexer already guarantees text is exactly "true", "false", or
// "null".
func newLiteralValue(tok token) (*Value, error) {
	switch tok.text {
	case "true":
		return newBool(true), nil
	case "false":
		return newBool(false), nil
	case "null":
		return newNull(), nil
	default:
		return nil, newMalformed(0, tok.text, "invalid literal %q", tok.text)
	}
}
