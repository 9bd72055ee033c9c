package options

import (
	"strings"
	"unicode"

	"vmargs/internal/flags"
)

// Tokenize splits an option string into whitespace-separated tokens. A
// single or double quote opens a quoted run that extends to the matching
// quote; quotes may appear mid-token and there are no escape sequences. An
// unterminated quote is a malformed token.
func Tokenize(s string) ([]string, error) {
	var (
		toks    []string
		cur     strings.Builder
		quote   rune
		inToken bool
	)
	for _, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inToken = true
		case unicode.IsSpace(r):
			if inToken {
				toks = append(toks, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			cur.WriteRune(r)
			inToken = true
		}
	}
	if quote != 0 {
		return nil, flags.Errorf(flags.MalformedToken, cur.String(), "unterminated quote in option string")
	}
	if inToken {
		toks = append(toks, cur.String())
	}
	return toks, nil
}
