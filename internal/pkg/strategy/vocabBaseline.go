package strategy

import (
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/strategy/api"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/token"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/vocab"
	"github.com/pkg/errors"
)

//VocabBaseline decides by comparing corpus frequencies of both spellings.
//The supplemented variant additionally matches numbers by their digit class.
type VocabBaseline struct {
	vocabulary   *vocab.Vocabulary
	supplemented bool
}

//NewVocabBaseline creates the frequency lookup strategy
func NewVocabBaseline(v *vocab.Vocabulary, supplemented bool) (*VocabBaseline, error) {
	if v == nil {
		return nil, errors.New("No vocabulary provided")
	}
	return &VocabBaseline{vocabulary: v, supplemented: supplemented}, nil
}

//Decide keeps the hyphen only if the hyphenated spelling is more frequent.
//Ties, including two unseen forms, resolve to remove.
func (s *VocabBaseline) Decide(p *token.Point) (api.Decision, error) {
	joined, hyphenated := s.count(p.Joined()), s.count(p.Hyphenated())
	res := api.Decision{Keep: hyphenated > joined}
	total := joined + hyphenated
	if total > 0 {
		if res.Keep {
			res.Confidence = float64(hyphenated) / float64(total)
		} else {
			res.Confidence = float64(joined) / float64(total)
		}
	}
	return res, nil
}

func (s *VocabBaseline) count(word string) int {
	if s.supplemented {
		return s.vocabulary.CountNormalized(word)
	}
	return s.vocabulary.Count(word)
}
