package mocks

import (
	"testing"

	"github.com/petergtz/pegomock"
)

//go:generate pegomock generate --package=mocks --output=decider.go -m bitbucket.org/adfreiburg/dehyph/internal/pkg/strategy/api Decider

//go:generate pegomock generate --package=mocks --output=estimator.go -m bitbucket.org/adfreiburg/dehyph/internal/app/charprob Estimator

//AttachMockToTest register pegomock verification to be passed to testing engine
func AttachMockToTest(t *testing.T) {
	pegomock.RegisterMockFailHandler(handleByTest(t))
}

func handleByTest(t *testing.T) pegomock.FailHandler {
	return func(message string, callerSkip ...int) {
		if message != "" {
			t.Error(message)
		}
	}
}
