// Copyright (c) 2023 the crass authors. Licensed under 2-Clause BSD.
//
// The normalize transformer is adapted from the crlf package for DOS-style
// line endings. Copyright (c) 2015 Andy Balholm. Licensed under 2-Clause BSD.

package tokenizer

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

const replacementCharacter = "�"

// normalize folds CR LF, lone CR, and FF line endings in src to LF in dst,
// and replaces null bytes with U+FFFD REPLACEMENT CHARACTER, per the input
// preprocessing rules of CSS Syntax Level 3 §3.3.
type normalize struct {
	prev byte
}

func (n *normalize) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nDst < len(dst) && nSrc < len(src) {
		c := src[nSrc]
		switch c {
		case '\r', '\f':
			dst[nDst] = '\n'
		case '\n':
			if n.prev == '\r' {
				nSrc++
				n.prev = c
				continue
			}
			dst[nDst] = '\n'
		case 0:
			// nb: len(replacementCharacter) == 3
			if nDst+3 > len(dst) {
				err = transform.ErrShortDst
				return
			}
			copy(dst[nDst:], replacementCharacter)
			nDst += 2
		default:
			dst[nDst] = c
		}
		n.prev = c
		nDst++
		nSrc++
	}
	if nSrc < len(src) {
		err = transform.ErrShortDst
	}
	return
}

func (n *normalize) Reset() {
	n.prev = 0
}

// Preprocess normalizes input the way the tokenizer expects it: newline
// variants folded to LF, NUL replaced with U+FFFD, and invalid UTF-8
// sequences replaced byte by byte with U+FFFD. Tokenize applies it
// automatically; it is exported because the operation is idempotent and
// callers sometimes want the normalized text itself.
func Preprocess(input string) string {
	normalized, _, err := transform.String(&normalize{}, input)
	if err != nil {
		// The transformer never reports an error other than ErrShortDst,
		// which transform.String resolves by growing its buffer.
		normalized = input
	}
	return toValidUTF8(normalized)
}

// toValidUTF8 replaces every invalid byte with U+FFFD. A rune conversion
// round trip substitutes per byte, unlike strings.ToValidUTF8, which
// collapses runs of invalid bytes into a single replacement.
func toValidUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return string([]rune(s))
}
