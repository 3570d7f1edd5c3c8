package token

import (
	"strings"

	"github.com/pkg/errors"
)

//Point is one hyphenation point: a token split into prefix and suffix by a marker
type Point struct {
	Prefix     string
	Suffix     string
	Sentence   []Token
	Index      int
	Gold       *bool
	Predicted  *bool
	Confidence float64
}

//Joined returns the token with the marker dropped
func (p *Point) Joined() string {
	return p.Prefix + p.Suffix
}

//Hyphenated returns the token with the marker replaced by a real hyphen
func (p *Point) Hyphenated() string {
	return p.Prefix + "-" + p.Suffix
}

//ExtractPoints finds hyphenation points in a sentence.
//Malformed marker usages are skipped and returned as warnings, they never abort the sentence.
func ExtractPoints(sentence string, marker rune) ([]*Point, []error) {
	tokens := Tokenize(sentence)
	result := make([]*Point, 0)
	var warnings []error
	for i, t := range tokens {
		if !strings.ContainsRune(t.Text, marker) {
			continue
		}
		parts := strings.Split(t.Text, string(marker))
		if len(parts) > 2 {
			warnings = append(warnings, errors.Errorf("several markers in token '%s'", t.Text))
			continue
		}
		if parts[0] == "" || parts[1] == "" {
			warnings = append(warnings, errors.Errorf("marker at token boundary in '%s'", t.Text))
			continue
		}
		result = append(result, &Point{Prefix: parts[0], Suffix: parts[1], Sentence: tokens, Index: i})
	}
	return result, warnings
}
