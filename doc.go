// Package jsonflow implements an incremental, chunk-tolerant JSON parser.
//
// Unlike encoding/json, a Parser accepts the document as an arbitrary
// sequence of byte chunks — tokens may be split across chunk
// boundaries anywhere, including mid-string, mid-number, or mid-literal
// — and after every Consume call it can materialize a best-effort
// partial value reflecting everything unambiguously known so far. It
// is meant for consumers that receive JSON incrementally, such as
// token-by-token LLM output or a network stream, and want a usable
// structured view before the document closes.
//
//	p := jsonflow.New()
//	p.Consume([]byte(`{"foo": "bar`))
//	v, _ := p.Get() // => {"foo": "bar"} (partial string exposed)
//	p.Consume([]byte(`"}`))
//	v, _ = p.Get() // => {"foo": "bar"}
//
// A Parser is not safe for concurrent use; create one per document.
package jsonflow
