// Copyright (c) 2023 the crass authors. Licensed under 2-Clause BSD.

package tokenizer

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
)

// Entry point for fuzz testing. Fuzz tokenizes b with comments preserved
// and panics if the stream violates any of the tokenizer's structural
// guarantees: preprocessing is idempotent, tokenization is deterministic,
// raw text concatenates back to the preprocessed input, positions are
// strictly increasing and cover the input exactly, and a render→retokenize
// round trip yields a stream with the same guarantees.
func Fuzz(b []byte) int {
	success := false

	var testLogBuf bytes.Buffer
	defer func() {
		if !success {
			fmt.Print(testLogBuf.String())
		}
	}()

	input := string(b)
	fmt.Fprintf(&testLogBuf, "=== Start fuzz test ===\n%q\n", input)

	preprocessed := Preprocess(input)
	if again := Preprocess(preprocessed); again != preprocessed {
		panic(fmt.Sprintf("preprocess not idempotent: %q vs %q", preprocessed, again))
	}

	opts := Options{PreserveComments: true}
	tokens := Tokenize(input, opts)
	for _, t := range tokens {
		fmt.Fprintf(&testLogBuf, "[OT] %v\n", t)
	}
	checkStream(preprocessed, tokens)

	if rerun := Tokenize(input, opts); !reflect.DeepEqual(tokens, rerun) {
		panic(fmt.Sprintf("tokenize not deterministic on %q", input))
	}

	// Render and retokenize. Serialization is normalizing, so the second
	// stream need not equal the first, but it must be coherent.

	var wr TokenRenderer
	var rerenderBuf strings.Builder
	for _, t := range tokens {
		wr.WriteTokenTo(&rerenderBuf, t)
	}
	rendered := rerenderBuf.String()
	fmt.Fprintf(&testLogBuf, "RE-RENDER BUFFER:\n%s\n", rendered)

	retokenized := Tokenize(rendered, opts)
	for _, t := range retokenized {
		fmt.Fprintf(&testLogBuf, "[RT] %v\n", t)
	}
	checkStream(Preprocess(rendered), retokenized)

	success = true
	return 1
}

// checkStream verifies that tokens tile the preprocessed input: every token
// consumed at least one code point, each starts where the previous one
// ended, and the concatenated raw text reproduces the input.
func checkStream(preprocessed string, tokens []Token) {
	var raw strings.Builder
	pos := 0
	for _, t := range tokens {
		if t.Pos != pos {
			panic(fmt.Sprintf("token %v starts at %d, expected %d", t, t.Pos, pos))
		}
		n := len([]rune(t.Raw))
		if n == 0 {
			panic(fmt.Sprintf("token %v at %d consumed nothing", t, t.Pos))
		}
		if (t.Kind == TokenBadString || t.Kind == TokenBadURL) && !t.Error {
			panic(fmt.Sprintf("token %v at %d missing error flag", t, t.Pos))
		}
		pos += n
		raw.WriteString(t.Raw)
	}
	if pos != len([]rune(preprocessed)) {
		panic(fmt.Sprintf("stream covers %d of %d code points", pos, len([]rune(preprocessed))))
	}
	if raw.String() != preprocessed {
		panic(fmt.Sprintf("raw text diverged:\n%q\n%q", raw.String(), preprocessed))
	}
}
