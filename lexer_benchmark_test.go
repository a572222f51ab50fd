package jsonflow

import "testing"

// BenchmarkConsumeWhole measures end-to-end parsing when the whole
// document arrives in a single Consume call.
func BenchmarkConsumeWhole(b *testing.B) {
	testCases := []struct {
		name  string
		input string
	}{
		{"flat_object", `{"id": 1, "name": "widget", "active": true, "price": 12.5}`},
		{"nested_object", `{"a": {"b": {"c": {"d": [1, 2, 3, 4, 5]}}}}`},
		{"array_of_objects", `[{"x":1},{"x":2},{"x":3},{"x":4},{"x":5}]`},
		{"long_string", `{"body": "lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod"}`},
		{"deep_nesting", `[[[[[[[[[[1]]]]]]]]]]`},
	}

	for _, tc := range testCases {
		b.Run(tc.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p := New()
				if err := p.Consume([]byte(tc.input)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkConsumeByteAtATime measures the worst case for chunk
// tolerance: every byte arrives in its own Consume call, exercising the
// lexer's partial-token resume path on every step.
func BenchmarkConsumeByteAtATime(b *testing.B) {
	input := []byte(`{"id": 1, "tags": ["alpha", "beta", "gamma"], "nested": {"ok": true}}`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := New()
		for _, c := range input {
			if err := p.Consume([]byte{c}); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkConsumeStrings measures string scanning performance with and
// without escape sequences.
func BenchmarkConsumeStrings(b *testing.B) {
	testCases := []struct {
		name  string
		input string
	}{
		{"simple_string", `{"s": "hello world"}`},
		{"escaped_string", `{"s": "hello \"world\" with \\backslash"}`},
		{"newline_string", `{"s": "line1\nline2\ttab"}`},
		{"multiple_strings", `["one", "two", "three"]`},
	}

	for _, tc := range testCases {
		b.Run(tc.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p := New()
				if err := p.Consume([]byte(tc.input)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
