package charprob

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type testTFWrap struct {
	ids []int32
	res [][]float32
	err error
}

func (f *testTFWrap) Invoke(ids []int32) ([][]float32, error) {
	f.ids = ids
	if f.err != nil {
		return nil, f.err
	}
	if f.res != nil {
		return f.res, nil
	}
	res := make([][]float32, len(ids))
	for i := range res {
		res[i] = []float32{0.5, 0.25, 0.25}
	}
	return res, nil
}

type testProvider struct {
	data *Data
	err  error
}

func (p *testProvider) GetData() (*Data, error) {
	return p.data, p.err
}

func newTestProvider() *testProvider {
	return &testProvider{data: &Data{Charset: []string{"a", "b", "<UNK>"}, UnknownChar: "<UNK>"}}
}

func TestNewEstimator(t *testing.T) {
	e, err := NewEstimatorImpl(newTestProvider(), &testTFWrap{})
	assert.Nil(t, err)
	assert.NotNil(t, e)
}

func TestNewEstimator_FailNoWrapper(t *testing.T) {
	e, err := NewEstimatorImpl(newTestProvider(), nil)
	assert.Nil(t, e)
	assert.NotNil(t, err)
}

func TestNewEstimator_FailProvider(t *testing.T) {
	e, err := NewEstimatorImpl(&testProvider{err: errors.New("error")}, &testTFWrap{})
	assert.Nil(t, e)
	assert.NotNil(t, err)
}

func TestNewEstimator_FailEmptyCharset(t *testing.T) {
	e, err := NewEstimatorImpl(&testProvider{data: &Data{}}, &testTFWrap{})
	assert.Nil(t, e)
	assert.NotNil(t, err)
}

func TestNewEstimator_FailUnknownNotInCharset(t *testing.T) {
	e, err := NewEstimatorImpl(&testProvider{data: &Data{Charset: []string{"a"}, UnknownChar: "x"}}, &testTFWrap{})
	assert.Nil(t, e)
	assert.NotNil(t, err)
}

func TestEstimate(t *testing.T) {
	wrap := &testTFWrap{}
	e, _ := NewEstimatorImpl(newTestProvider(), wrap)
	res, err := e.Estimate("ab")
	assert.Nil(t, err)
	assert.Equal(t, []int32{0, 1}, wrap.ids)
	assert.Equal(t, 2, len(res))
	assert.InDelta(t, 0.5, res[0]["a"], 0.0001)
	assert.InDelta(t, 0.25, res[0]["b"], 0.0001)
}

func TestEstimate_UnknownChar(t *testing.T) {
	wrap := &testTFWrap{}
	e, _ := NewEstimatorImpl(newTestProvider(), wrap)
	_, err := e.Estimate("ax")
	assert.Nil(t, err)
	assert.Equal(t, []int32{0, 2}, wrap.ids)
}

func TestEstimate_FailInvoke(t *testing.T) {
	wrap := &testTFWrap{err: errors.New("error")}
	e, _ := NewEstimatorImpl(newTestProvider(), wrap)
	res, err := e.Estimate("ab")
	assert.Nil(t, res)
	assert.NotNil(t, err)
}

func TestEstimate_FailWrongLen(t *testing.T) {
	wrap := &testTFWrap{res: [][]float32{{0.5, 0.25, 0.25}}}
	e, _ := NewEstimatorImpl(newTestProvider(), wrap)
	res, err := e.Estimate("ab")
	assert.Nil(t, res)
	assert.NotNil(t, err)
}
