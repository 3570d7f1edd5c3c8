package strategy

import (
	"math"
	"strings"

	"bitbucket.org/adfreiburg/dehyph/internal/pkg/strategy/api"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/token"
	"github.com/pkg/errors"
)

//ProbProvider returns one character to probability map per character
//position of a sentence, taken from a bidirectional character language model
type ProbProvider interface {
	Probabilities(sentence string) ([]map[string]float64, error)
}

//LangModel scores both realizations of a sentence under a pretrained
//character language model and keeps the hyphen when the hyphenated
//realization is more probable around the decision point
type LangModel struct {
	provider ProbProvider
	radius   int
	marker   rune
}

//NewLangModel creates the language model strategy
func NewLangModel(provider ProbProvider, radius int, marker rune) (*LangModel, error) {
	if provider == nil {
		return nil, errors.New("No probability provider")
	}
	if radius < 1 {
		return nil, errors.Errorf("Wrong window radius %d", radius)
	}
	return &LangModel{provider: provider, radius: radius, marker: marker}, nil
}

//Decide builds the kept and the removed realization of the sentence,
//fetches character probabilities for both and compares the aligned windows.
//A tie resolves to remove
func (s *LangModel) Decide(p *token.Point) (api.Decision, error) {
	kept, keptPoint := s.realization(p, true)
	removed, removedPoint := s.realization(p, false)

	keptProbs, err := s.sequence(kept)
	if err != nil {
		return api.Decision{}, errors.Wrap(err, "Can't score kept realization")
	}
	removedProbs, err := s.sequence(removed)
	if err != nil {
		return api.Decision{}, errors.Wrap(err, "Can't score removed realization")
	}

	delta := CompareWindows(keptProbs, keptPoint, removedProbs, removedPoint, s.radius)
	return api.Decision{Keep: delta > 0, Confidence: 1.0 / (1.0 + math.Exp(-delta))}, nil
}

//realization renders the sentence with the point token resolved one way.
//Markers of other points are joined, they are not under decision here.
//The returned offset is the rune position of the decision point, the first
//character after the prefix
func (s *LangModel) realization(p *token.Point, keep bool) (string, int) {
	var sb strings.Builder
	offset := 0
	point := 0
	for i, t := range p.Sentence {
		if i > 0 {
			sb.WriteString(" ")
			offset++
		}
		text := strings.ReplaceAll(t.Text, string(s.marker), "")
		if i == p.Index {
			point = offset + len([]rune(p.Prefix))
			if keep {
				text = p.Hyphenated()
			} else {
				text = p.Joined()
			}
		}
		sb.WriteString(text)
		offset += len([]rune(text))
	}
	return sb.String(), point
}

//sequence maps per position distributions to the probability of the
//character actually at each position. Missing characters score zero and are
//floored later by the window aggregation
func (s *LangModel) sequence(sentence string) ([]float64, error) {
	dists, err := s.provider.Probabilities(sentence)
	if err != nil {
		return nil, err
	}
	runes := []rune(sentence)
	result := make([]float64, len(runes))
	for i, r := range runes {
		if i < len(dists) {
			result[i] = dists[i][string(r)]
		}
	}
	return result, nil
}
