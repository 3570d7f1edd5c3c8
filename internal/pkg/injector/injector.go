package injector

import (
	"strings"

	"bitbucket.org/adfreiburg/dehyph/internal/pkg/hyphen"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/token"
	"github.com/pkg/errors"
)

//Breaker provides possible split positions for a word
type Breaker interface {
	Breaks(word string) []hyphen.Break
}

//Result is one injected sentence together with its labeled points
type Result struct {
	Hyphenated string
	Original   string
	Points     []*token.Point
}

//Injector inserts line break markers into clean sentences
type Injector struct {
	breaker  Breaker
	distance int
	marker   rune
}

//New creates an Injector. distance is the minimal rune distance between markers
func New(breaker Breaker, distance int, marker rune) (*Injector, error) {
	if breaker == nil {
		return nil, errors.New("No breaker provided")
	}
	if distance < 1 {
		return nil, errors.Errorf("Wrong distance %d", distance)
	}
	return &Injector{breaker: breaker, distance: distance, marker: marker}, nil
}

//Inject deterministically inserts markers into a sentence.
//A break is taken when its absolute rune offset is at least distance runes
//after the previously taken one. A sentence without eligible words passes
//through unchanged.
func (in *Injector) Inject(sentence string) *Result {
	res := &Result{Original: sentence}
	tokens := token.Tokenize(sentence)
	var sb strings.Builder
	last := 0
	pos := 0
	prev := 0
	for i, t := range tokens {
		sb.WriteString(sentence[byteOfRune(sentence, prev):byteOfRune(sentence, t.Start)])
		pos = t.Start
		word, point := in.injectWord(t, i, tokens, pos, &last)
		sb.WriteString(word)
		if point != nil {
			res.Points = append(res.Points, point)
		}
		prev = t.End
	}
	sb.WriteString(sentence[byteOfRune(sentence, prev):])
	res.Hyphenated = sb.String()
	return res
}

func (in *Injector) injectWord(t token.Token, index int, tokens []token.Token, pos int, last *int) (string, *token.Point) {
	if !t.IsWord() {
		return t.Text, nil
	}
	runes := []rune(t.Text)
	for _, b := range in.breaker.Breaks(t.Text) {
		if pos+b.Offset-*last < in.distance {
			continue
		}
		*last = pos + b.Offset
		gold := b.AtHyphen
		var prefix, suffix string
		if b.AtHyphen {
			prefix, suffix = string(runes[:b.Offset]), string(runes[b.Offset+1:])
		} else {
			prefix, suffix = string(runes[:b.Offset]), string(runes[b.Offset:])
		}
		point := &token.Point{Prefix: prefix, Suffix: suffix, Sentence: tokens, Index: index, Gold: &gold}
		return prefix + string(in.marker) + suffix, point
	}
	return t.Text, nil
}

//byteOfRune maps a rune offset to the byte offset in s
func byteOfRune(s string, runeOffset int) int {
	count := 0
	for i := range s {
		if count == runeOffset {
			return i
		}
		count++
	}
	return len(s)
}
