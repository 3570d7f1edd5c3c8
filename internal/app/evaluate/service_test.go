package evaluate

import (
	"bytes"
	"strings"
	"testing"

	"bitbucket.org/adfreiburg/dehyph/internal/pkg/eval"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/strategy"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/strategy/api"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/test/mocks"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/test/mocks/matchers"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/token"
	"github.com/petergtz/pegomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

var deciderMock *mocks.MockDecider

type testLookup map[string]int

func (f testLookup) Count(w string) int { return f[w] }

func initTest(t *testing.T) *ServiceData {
	mocks.AttachMockToTest(t)
	deciderMock = mocks.NewMockDecider()
	pegomock.When(deciderMock.Decide(matchers.AnyPtrToTokenPoint())).ThenReturn(api.Decision{}, nil)
	return &ServiceData{decider: deciderMock, marker: '·', strategyName: strategy.NameBaseline,
		runID: "test-run", topK: 5}
}

func TestEvaluateHyphenated_GoldKeep(t *testing.T) {
	data := initTest(t)
	m, err := evaluateHyphenated(data, strings.NewReader("well·known cases\twell-known cases\n"))
	assert.Nil(t, err)
	assert.Equal(t, 1, m.FalseRemove)
	assert.Equal(t, 1, m.Total())
}

func TestEvaluateHyphenated_GoldRemove(t *testing.T) {
	data := initTest(t)
	m, err := evaluateHyphenated(data, strings.NewReader("well·known cases\twellknown cases\n"))
	assert.Nil(t, err)
	assert.Equal(t, 1, m.TrueRemove)
}

func TestEvaluateHyphenated_Predicted(t *testing.T) {
	data := initTest(t)
	pegomock.When(deciderMock.Decide(matchers.AnyPtrToTokenPoint())).ThenReturn(
		api.Decision{Keep: true, Confidence: 1}, nil)
	m, err := evaluateHyphenated(data, strings.NewReader("well·known cases\twell-known cases\n"))
	assert.Nil(t, err)
	assert.Equal(t, 1, m.TrueKeep)
}

func TestEvaluateHyphenated_CollectsMistakes(t *testing.T) {
	data := initTest(t)
	data.mistakes = eval.NewMistakes(testLookup{})
	m, err := evaluateHyphenated(data, strings.NewReader("well·known cases\twell-known cases\n"))
	assert.Nil(t, err)
	assert.Equal(t, 1, m.FalseRemove)
	assert.Equal(t, 1, data.mistakes.Total())
}

func TestEvaluateHyphenated_SkipsWrongRecord(t *testing.T) {
	data := initTest(t)
	m, err := evaluateHyphenated(data, strings.NewReader("no tabs here\n"))
	assert.Nil(t, err)
	assert.Equal(t, 0, m.Total())
}

func TestEvaluateHyphenated_SkipsMismatch(t *testing.T) {
	data := initTest(t)
	m, err := evaluateHyphenated(data, strings.NewReader("well·known cases\tsomething else\n"))
	assert.Nil(t, err)
	assert.Equal(t, 0, m.Total())
}

func TestEvaluateHyphenated_SkipsOnDeciderError(t *testing.T) {
	data := initTest(t)
	pegomock.When(deciderMock.Decide(matchers.AnyPtrToTokenPoint())).ThenReturn(
		api.Decision{}, errors.New("error"))
	m, err := evaluateHyphenated(data, strings.NewReader(
		"well·known cases\twell-known cases\nto·day case\ttoday case\n"))
	assert.Nil(t, err)
	assert.Equal(t, 0, m.Total())
}

func TestEvaluateLabeled_SkipsOnDeciderError(t *testing.T) {
	data := initTest(t)
	pegomock.When(deciderMock.Decide(matchers.AnyPtrToTokenPoint())).ThenReturn(
		api.Decision{}, errors.New("error"))
	m, err := evaluateLabeled(data, strings.NewReader("1\twell\tknown\n"))
	assert.Nil(t, err)
	assert.Equal(t, 0, m.Total())
}

func TestGoldOf(t *testing.T) {
	p := &token.Point{Prefix: "well", Suffix: "known", Index: 0}
	gold, err := goldOf(p, token.Tokenize("well-known cases"))
	assert.Nil(t, err)
	assert.True(t, gold)
	gold, err = goldOf(p, token.Tokenize("wellknown cases"))
	assert.Nil(t, err)
	assert.False(t, gold)
}

func TestGoldOf_Fail(t *testing.T) {
	p := &token.Point{Prefix: "well", Suffix: "known", Index: 1}
	_, err := goldOf(p, token.Tokenize("one"))
	assert.NotNil(t, err)
	p.Index = 0
	_, err = goldOf(p, token.Tokenize("other cases"))
	assert.NotNil(t, err)
}

func TestEvaluateLabeled(t *testing.T) {
	data := initTest(t)
	data.strategyName = strategy.NameClassifier
	m, err := evaluateLabeled(data, strings.NewReader("1\twell\tknown\n0\tto\tgether\n"))
	assert.Nil(t, err)
	assert.Equal(t, 2, m.Total())
	assert.Equal(t, 1, m.FalseRemove)
	assert.Equal(t, 1, m.TrueRemove)
}

func TestEvaluateLabeled_SkipsWrongRecord(t *testing.T) {
	data := initTest(t)
	m, err := evaluateLabeled(data, strings.NewReader("x\twell\tknown\nwrong\n"))
	assert.Nil(t, err)
	assert.Equal(t, 0, m.Total())
}

func TestEvaluate_SelectsPath(t *testing.T) {
	data := initTest(t)
	data.strategyName = strategy.NameClassifier
	m, err := evaluate(data, strings.NewReader("1\twell\tknown\n"))
	assert.Nil(t, err)
	assert.Equal(t, 1, m.Total())
}

func TestWriteReport(t *testing.T) {
	data := initTest(t)
	m := &eval.Matrix{TrueKeep: 2, FalseKeep: 1, FalseRemove: 1}
	out := bytes.Buffer{}
	err := writeReport(data, m, &out)
	assert.Nil(t, err)
	assert.Contains(t, out.String(), "Run: test-run")
	assert.Contains(t, out.String(), "Strategy: baseline")
	assert.Contains(t, out.String(), "Confusion Matrix")
}
