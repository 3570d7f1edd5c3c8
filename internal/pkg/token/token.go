package token

import (
	"unicode"
)

//Token is a whitespace delimited piece of a sentence with its rune offsets
type Token struct {
	Text  string
	Start int
	End   int
}

//IsWord returns true if token contains at least one letter or digit
func (t Token) IsWord() bool {
	for _, r := range t.Text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

//Tokenize splits a sentence into tokens keeping rune offsets
func Tokenize(sentence string) []Token {
	result := make([]Token, 0)
	current := make([]rune, 0)
	start := 0
	pos := 0
	for _, r := range sentence {
		if unicode.IsSpace(r) {
			if len(current) > 0 {
				result = append(result, Token{Text: string(current), Start: start, End: pos})
				current = current[:0]
			}
		} else {
			if len(current) == 0 {
				start = pos
			}
			current = append(current, r)
		}
		pos++
	}
	if len(current) > 0 {
		result = append(result, Token{Text: string(current), Start: start, End: pos})
	}
	return result
}
