package strategy

import (
	"encoding/gob"
	"io"
	"math"
	"os"

	"bitbucket.org/adfreiburg/dehyph/internal/pkg/strategy/api"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/token"
	"github.com/pkg/errors"
)

//Model is the pretrained linear classifier artifact.
//Weights are keyed by 'feature=value', training is out of scope here.
type Model struct {
	Bias    float64
	Weights map[string]float64
}

//Classifier applies a pretrained linear model to point features
type Classifier struct {
	model Model
}

//NewClassifier loads the model artifact. A missing or malformed file
//fails here, construction time, not per call
func NewClassifier(file string) (*Classifier, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, errors.Wrap(err, "Can't open model "+file)
	}
	defer f.Close()
	return NewClassifierFromReader(f)
}

//NewClassifierFromReader reads a gob encoded model
func NewClassifierFromReader(r io.Reader) (*Classifier, error) {
	res := &Classifier{}
	if err := gob.NewDecoder(r).Decode(&res.model); err != nil {
		return nil, errors.Wrap(err, "Can't decode model")
	}
	if len(res.model.Weights) == 0 {
		return nil, errors.New("Empty model")
	}
	return res, nil
}

//Decide classifies a point. Keep is predicted when the logistic score of the
//extracted features reaches 0.5. Each call depends only on the given point
func (c *Classifier) Decide(p *token.Point) (api.Decision, error) {
	score := c.model.Bias
	for name, value := range Extract(p.Prefix, p.Suffix) {
		score += c.model.Weights[name+"="+value]
	}
	prob := 1.0 / (1.0 + math.Exp(-score))
	if prob >= 0.5 {
		return api.Decision{Keep: true, Confidence: prob}, nil
	}
	return api.Decision{Keep: false, Confidence: 1 - prob}, nil
}

//WriteModel encodes a model artifact, used by the external training tooling
func WriteModel(w io.Writer, m *Model) error {
	return gob.NewEncoder(w).Encode(m)
}
