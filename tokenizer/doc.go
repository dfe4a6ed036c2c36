// Copyright (c) 2023 the crass authors. Licensed under 2-Clause BSD.

/*
Package tokenizer generates tokens for a CSS3 input.

It follows the tokenization algorithm of the CSS Syntax Module Level 3
specification located at:

	http://www.w3.org/TR/css-syntax-3/#tokenizer-algorithms

The simplest way to use it is the one-shot entry point:

	tokens := tokenizer.Tokenize(myCSS, tokenizer.Options{})

For incremental consumption, create a Tokenizer and call Next() until it
returns a token of kind TokenEOF:

	z := tokenizer.New(myCSS, tokenizer.Options{})
	for {
		token := z.Next()
		if token.Kind == tokenizer.TokenEOF {
			break
		}
		// Do something with the token...
	}

Inputs are preprocessed before tokenization: CR LF pairs, lone CR, and form
feeds are folded to LF, NUL bytes become U+FFFD, and invalid UTF-8 sequences
are replaced byte by byte with U+FFFD. Positions and lengths are measured in
code points, not bytes.

Tokenization never fails and never stops early. Parse errors surface as the
TokenBadString and TokenBadURL kinds and as the Error flag on individual
tokens: a lone backslash that does not begin a valid escape is a TokenDelim
with Error set, an unterminated comment is a TokenComment with Error set, and
so on. Every token carries the literal text it consumed in Raw, so the
concatenation of Raw over an entire stream (comments preserved) reproduces
the preprocessed input exactly.

Two options adjust the emitted stream. PreserveComments keeps comment tokens
instead of discarding them. PreserveHacks tolerates the old IE "*property"
syntax inside identifiers.

Note: the tokenizer doesn't perform lexical analysis, it only implements
Section 4 of the CSS Syntax Level 3 specification. See Section 5 for the
parsing rules.
*/
package tokenizer
