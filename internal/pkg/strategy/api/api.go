package api

import (
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/token"
)

//Decision is a keep or remove resolution with the strategy confidence
type Decision struct {
	Keep       bool
	Confidence float64
}

//Decider resolves one hyphenation point.
//Implementations are stateless after construction, a decision depends only
//on the given point, so records may be processed in any order or in parallel.
type Decider interface {
	Decide(p *token.Point) (Decision, error)
}
