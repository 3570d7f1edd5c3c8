package resolve

import (
	"bytes"
	"strings"
	"testing"

	"bitbucket.org/adfreiburg/dehyph/internal/pkg/strategy"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/strategy/api"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/test/mocks"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/test/mocks/matchers"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/vocab"
	"github.com/petergtz/pegomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

var deciderMock *mocks.MockDecider

func initTest(t *testing.T) *ServiceData {
	mocks.AttachMockToTest(t)
	deciderMock = mocks.NewMockDecider()
	pegomock.When(deciderMock.Decide(matchers.AnyPtrToTokenPoint())).ThenReturn(api.Decision{}, nil)
	return &ServiceData{decider: deciderMock, marker: '·'}
}

func TestResolveLine_Remove(t *testing.T) {
	data := initTest(t)
	res := resolveLine(data, "the well·known author")
	assert.Equal(t, "the wellknown author", res)
}

func TestResolveLine_Keep(t *testing.T) {
	data := initTest(t)
	pegomock.When(deciderMock.Decide(matchers.AnyPtrToTokenPoint())).ThenReturn(
		api.Decision{Keep: true, Confidence: 1}, nil)
	res := resolveLine(data, "the well·known author")
	assert.Equal(t, "the well-known author", res)
}

func TestResolveLine_NoMarker(t *testing.T) {
	data := initTest(t)
	res := resolveLine(data, "the author")
	assert.Equal(t, "the author", res)
	deciderMock.VerifyWasCalled(pegomock.Never()).Decide(matchers.AnyPtrToTokenPoint())
}

func TestResolveLine_SkipsBoundaryMarker(t *testing.T) {
	data := initTest(t)
	res := resolveLine(data, "the ·known author")
	assert.Equal(t, "the ·known author", res)
	deciderMock.VerifyWasCalled(pegomock.Never()).Decide(matchers.AnyPtrToTokenPoint())
}

func TestResolveLine_FallsBackOnError(t *testing.T) {
	data := initTest(t)
	pegomock.When(deciderMock.Decide(matchers.AnyPtrToTokenPoint())).ThenReturn(
		api.Decision{}, errors.New("error"))
	res := resolveLine(data, "the well·known author")
	assert.Equal(t, "the wellknown author", res)
}

func TestResolveLine_SeveralPoints(t *testing.T) {
	data := initTest(t)
	pegomock.When(deciderMock.Decide(matchers.AnyPtrToTokenPoint())).ThenReturn(
		api.Decision{Keep: true, Confidence: 1}, nil)
	res := resolveLine(data, "well·known sharp·edged")
	assert.Equal(t, "well-known sharp-edged", res)
	deciderMock.VerifyWasCalled(pegomock.Twice()).Decide(matchers.AnyPtrToTokenPoint())
}

func TestResolveLine_WithVocabBaseline(t *testing.T) {
	v, err := vocab.Read(strings.NewReader("well-known\t10\nwellknown\t2\n"))
	assert.Nil(t, err)
	decider, err := strategy.For(strategy.NameBaseline, &strategy.Config{Vocabulary: v})
	assert.Nil(t, err)
	data := &ServiceData{decider: decider, marker: '·'}

	res := resolveLine(data, "the well·known author")
	assert.Equal(t, "the well-known author", res)
}

func TestProcess(t *testing.T) {
	data := initTest(t)
	out := bytes.Buffer{}
	lines, err := process(data, strings.NewReader("well·known cases\twell-known cases\n"), &out)
	assert.Nil(t, err)
	assert.Equal(t, 1, lines)
	assert.Equal(t, "well·known cases\twellknown cases\n", out.String())
}

func TestProcess_NoOriginalColumn(t *testing.T) {
	data := initTest(t)
	out := bytes.Buffer{}
	_, err := process(data, strings.NewReader("well·known cases\n"), &out)
	assert.Nil(t, err)
	assert.Equal(t, "well·known cases\twellknown cases\n", out.String())
}

func TestProcess_Empty(t *testing.T) {
	data := initTest(t)
	out := bytes.Buffer{}
	lines, err := process(data, strings.NewReader(""), &out)
	assert.Nil(t, err)
	assert.Equal(t, 0, lines)
}

func TestMarkerRune_Resolve(t *testing.T) {
	r, err := markerRune("·")
	assert.Nil(t, err)
	assert.Equal(t, '·', r)
	_, err = markerRune("")
	assert.NotNil(t, err)
}
