package console

import (
	"errors"
	"strings"
	"unicode"
)

var ErrUnterminatedQuote = errors.New("unterminated quote")

// Tokenize splits a command line on white space. Double quotes group words,
// so `"NOVIE LUDI"` is a single token.
func Tokenize(line string) ([]string, error) {

	tokens := []string{}
	current := strings.Builder{}
	inToken := false
	quoted := false

	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			inToken = true
		case unicode.IsSpace(r) && !quoted:
			if inToken {
				tokens = append(tokens, current.String())
				current.Reset()
				inToken = false
			}
		default:
			current.WriteRune(r)
			inToken = true
		}
	}

	if quoted {
		return nil, ErrUnterminatedQuote
	}
	if inToken {
		tokens = append(tokens, current.String())
	}

	return tokens, nil
}
